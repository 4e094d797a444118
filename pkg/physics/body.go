package physics

// BodyKind distinguishes simulated bodies from fixed geometry
type BodyKind int

const (
	Static BodyKind = iota
	Dynamic
)

// Body is a rigid body with either a box or a polyline collider.
// Impulse and AngularImpulse accumulate between steps and are
// cleared once the world has integrated them.
type Body struct {
	Kind            BodyKind
	Position        Vector2D
	Velocity        Vector2D
	Angle           float64 // radians, counter-clockwise
	AngularVelocity float64
	Mass            float64
	Inertia         float64
	Material        Material

	// HalfExtents is set for box colliders
	HalfExtents Vector2D
	// Line is set for polyline colliders, in body-local coordinates
	Line *Polyline

	Impulse        Vector2D
	AngularImpulse float64
}

// NewBox creates a dynamic box body of the given size and density
func NewBox(position Vector2D, width, height, density float64, material Material) *Body {
	mass := width * height * density
	return &Body{
		Kind:        Dynamic,
		Position:    position,
		Mass:        mass,
		Inertia:     mass * (width*width + height*height) / 12,
		Material:    material,
		HalfExtents: Vector2D{X: width / 2, Y: height / 2},
	}
}

// NewStaticPolyline creates an immovable body whose collider is an open polyline
func NewStaticPolyline(position Vector2D, line *Polyline, material Material) *Body {
	return &Body{
		Kind:     Static,
		Position: position,
		Material: material,
		Line:     line,
	}
}

// Rotation returns the body's current orientation in radians
func (b *Body) Rotation() float64 {
	return b.Angle
}

// ApplyImpulse accumulates a linear impulse for the next step
func (b *Body) ApplyImpulse(impulse Vector2D) {
	b.Impulse = b.Impulse.Add(impulse)
}

// ApplyAngularImpulse accumulates an angular impulse for the next step
func (b *Body) ApplyAngularImpulse(impulse float64) {
	b.AngularImpulse += impulse
}

// InverseMass returns 1/mass, zero for static or massless bodies
func (b *Body) InverseMass() float64 {
	if b.Kind != Dynamic || b.Mass <= 0 {
		return 0
	}
	return 1 / b.Mass
}

// InverseInertia returns 1/inertia, zero for static bodies
func (b *Body) InverseInertia() float64 {
	if b.Kind != Dynamic || b.Inertia <= 0 {
		return 0
	}
	return 1 / b.Inertia
}

// Corners returns the four box corners in world space, counter-clockwise
// from bottom-left. Bodies without a box collider have no corners.
func (b *Body) Corners() []Vector2D {
	if b.HalfExtents == (Vector2D{}) {
		return nil
	}
	hx, hy := b.HalfExtents.X, b.HalfExtents.Y
	local := [4]Vector2D{{X: -hx, Y: -hy}, {X: hx, Y: -hy}, {X: hx, Y: hy}, {X: -hx, Y: hy}}
	corners := make([]Vector2D, 0, 4)
	for _, c := range local {
		corners = append(corners, b.Position.Add(c.Rotate(b.Angle)))
	}
	return corners
}

// Integrate applies pending impulses and gravity, advances the body by
// deltaTime and clears the impulse accumulators.
func (b *Body) Integrate(deltaTime float64, gravity Vector2D) {
	if b.Kind != Dynamic {
		b.Impulse = Vector2D{}
		b.AngularImpulse = 0
		return
	}

	b.Velocity = b.Velocity.Add(b.Impulse.Scale(b.InverseMass()))
	b.AngularVelocity += b.AngularImpulse * b.InverseInertia()
	b.Impulse = Vector2D{}
	b.AngularImpulse = 0

	b.Velocity = b.Velocity.Add(gravity.Scale(deltaTime))
	b.Position = b.Position.Add(b.Velocity.Scale(deltaTime))
	b.Angle += b.AngularVelocity * deltaTime
}
