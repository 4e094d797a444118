package physics

// Contact describes a resolved collision between a dynamic and a static body
type Contact struct {
	Body   *Body
	Ground *Body
	CollisionResult
	// ImpactSpeed is the closing speed along the normal before resolution
	ImpactSpeed float64
}

// World owns the bodies of a scene and steps them together
type World struct {
	Gravity Vector2D
	Bodies  []*Body
}

// NewWorld creates an empty world with the given gravity
func NewWorld(gravity Vector2D) *World {
	return &World{Gravity: gravity}
}

// Add registers a body with the world
func (w *World) Add(b *Body) {
	w.Bodies = append(w.Bodies, b)
}

// Step integrates every body and resolves box-versus-polyline contacts
func (w *World) Step(deltaTime float64) []Contact {
	for _, b := range w.Bodies {
		b.Integrate(deltaTime, w.Gravity)
	}

	var contacts []Contact
	for _, body := range w.Bodies {
		if body.Kind != Dynamic {
			continue
		}
		for _, ground := range w.Bodies {
			if ground.Kind != Static || ground.Line == nil {
				continue
			}
			result := CheckCollision(body, ground)
			if !result.Collided {
				continue
			}
			speed := resolveContact(body, ground, result)
			contacts = append(contacts, Contact{
				Body:            body,
				Ground:          ground,
				CollisionResult: result,
				ImpactSpeed:     speed,
			})
		}
	}
	return contacts
}

// resolveContact separates the body from the ground and applies normal and
// friction impulses at the contact point. It returns the closing speed.
func resolveContact(body, ground *Body, c CollisionResult) float64 {
	body.Position = body.Position.Add(c.Normal.Scale(c.Penetration))

	invMass := body.InverseMass()
	invInertia := body.InverseInertia()
	r := c.ContactPoint.Sub(body.Position)

	vp := body.Velocity.Add(CrossScalar(body.AngularVelocity, r))
	vn := vp.Dot(c.Normal)
	if vn >= 0 {
		return 0
	}

	friction, restitution := combineMaterials(body.Material, ground.Material)

	rn := r.Cross(c.Normal)
	k := invMass + rn*rn*invInertia
	if k == 0 {
		return -vn
	}
	jn := -(1 + restitution) * vn / k
	body.Velocity = body.Velocity.Add(c.Normal.Scale(jn * invMass))
	body.AngularVelocity += rn * jn * invInertia

	vp = body.Velocity.Add(CrossScalar(body.AngularVelocity, r))
	tangent := vp.Sub(c.Normal.Scale(vp.Dot(c.Normal))).Normalize()
	if tangent == (Vector2D{}) {
		return -vn
	}
	rt := r.Cross(tangent)
	kt := invMass + rt*rt*invInertia
	jt := -vp.Dot(tangent) / kt
	maxFriction := friction * jn
	if jt > maxFriction {
		jt = maxFriction
	} else if jt < -maxFriction {
		jt = -maxFriction
	}
	body.Velocity = body.Velocity.Add(tangent.Scale(jt * invMass))
	body.AngularVelocity += rt * jt * invInertia

	return -vn
}
