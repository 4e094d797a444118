// pkg/physics/collision.go
package physics

import "math"

// Polyline is an open chain of segments used as static collision geometry.
// Segments are indexed by midpoint in a quad tree for broad-phase queries.
type Polyline struct {
	Points []Vector2D

	index    *QuadTree
	overflow []int
	reach    float64 // half the longest segment
}

// NewPolyline builds a polyline collider through the given points, in order
func NewPolyline(points []Vector2D) *Polyline {
	p := &Polyline{Points: points}
	if len(points) < 2 {
		return p
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, pt := range points {
		minX, maxX = math.Min(minX, pt.X), math.Max(maxX, pt.X)
		minY, maxY = math.Min(minY, pt.Y), math.Max(maxY, pt.Y)
	}
	bounds := Rect{
		Center: Vector2D{X: (minX + maxX) / 2, Y: (minY + maxY) / 2},
		Width:  maxX - minX + 2,
		Height: maxY - minY + 2,
	}
	p.index = NewQuadTree(bounds, 8)

	for i := 0; i < len(points)-1; i++ {
		a, b := points[i], points[i+1]
		p.reach = math.Max(p.reach, a.Distance(b)/2)
		if !p.index.Insert(a.Add(b).Scale(0.5), i) {
			p.overflow = append(p.overflow, i)
		}
	}
	return p
}

// Segments returns the number of segments in the polyline
func (p *Polyline) Segments() int {
	if len(p.Points) < 2 {
		return 0
	}
	return len(p.Points) - 1
}

// Segment returns the end points of segment i
func (p *Polyline) Segment(i int) (Vector2D, Vector2D) {
	return p.Points[i], p.Points[i+1]
}

// Near returns the indices of segments that may intersect the area
func (p *Polyline) Near(area Rect) []int {
	if p.index == nil {
		return nil
	}
	area.Width += 2 * p.reach
	area.Height += 2 * p.reach
	found := p.index.Query(area)
	return append(found, p.overflow...)
}

// CollisionResult contains information about a collision
type CollisionResult struct {
	Collided     bool
	Normal       Vector2D // points out of the static geometry
	Penetration  float64
	ContactPoint Vector2D
}

// CheckCollision tests the corners of a box body against a static polyline body
// and reports the deepest penetration.
func CheckCollision(box, ground *Body) CollisionResult {
	corners := box.Corners()
	if len(corners) == 0 || ground.Line == nil {
		return CollisionResult{}
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	local := make([]Vector2D, len(corners))
	for i, c := range corners {
		local[i] = c.Sub(ground.Position)
		minX, maxX = math.Min(minX, local[i].X), math.Max(maxX, local[i].X)
		minY, maxY = math.Min(minY, local[i].Y), math.Max(maxY, local[i].Y)
	}
	area := Rect{
		Center: Vector2D{X: (minX + maxX) / 2, Y: (minY + maxY) / 2},
		Width:  maxX - minX,
		Height: maxY - minY,
	}
	maxDepth := box.HalfExtents.Length() * 2

	// deepest penetration per corner
	depth := make([]float64, len(local))
	normals := make([]Vector2D, len(local))
	for _, seg := range ground.Line.Near(area) {
		a, b := ground.Line.Segment(seg)
		d := b.Sub(a)
		lenSq := d.LengthSquared()
		if lenSq == 0 {
			continue
		}
		normal := d.Perp().Normalize()

		for i, c := range local {
			t := c.Sub(a).Dot(d) / lenSq
			if t < 0 || t > 1 {
				continue
			}
			dist := c.Sub(a).Dot(normal)
			if dist >= 0 || -dist > maxDepth {
				continue
			}
			if -dist > depth[i] {
				depth[i] = -dist
				normals[i] = normal
			}
		}
	}

	// Touching corners share one contact at their centroid so that a flat
	// landing produces no spurious torque.
	var best CollisionResult
	var centroid Vector2D
	touching := 0
	for i, pen := range depth {
		if pen <= 0 {
			continue
		}
		touching++
		centroid = centroid.Add(corners[i])
		if pen > best.Penetration {
			best.Collided = true
			best.Penetration = pen
			best.Normal = normals[i]
		}
	}
	if touching > 0 {
		best.ContactPoint = centroid.Scale(1 / float64(touching))
	}
	return best
}

// QuadTree for spatial partitioning of segment midpoints
type QuadTree struct {
	Boundary  Rect
	Capacity  int
	Points    []Vector2D
	Objects   []int
	Divided   bool
	NorthWest *QuadTree
	NorthEast *QuadTree
	SouthWest *QuadTree
	SouthEast *QuadTree
}

// Rect represents a rectangular area
type Rect struct {
	Center Vector2D
	Width  float64
	Height float64
}

// Contains reports whether the point lies inside the rectangle
func (r Rect) Contains(point Vector2D) bool {
	return point.X >= r.Center.X-r.Width/2 &&
		point.X < r.Center.X+r.Width/2 &&
		point.Y >= r.Center.Y-r.Height/2 &&
		point.Y < r.Center.Y+r.Height/2
}

// NewQuadTree creates a new quad tree with the given boundary and capacity
func NewQuadTree(boundary Rect, capacity int) *QuadTree {
	return &QuadTree{
		Boundary: boundary,
		Capacity: capacity,
		Points:   make([]Vector2D, 0, capacity),
		Objects:  make([]int, 0, capacity),
	}
}

// Insert adds an indexed point; it returns false when the point is out of bounds
func (qt *QuadTree) Insert(point Vector2D, object int) bool {
	if !qt.Boundary.Contains(point) {
		return false
	}

	if len(qt.Points) < qt.Capacity && !qt.Divided {
		qt.Points = append(qt.Points, point)
		qt.Objects = append(qt.Objects, object)
		return true
	}

	if !qt.Divided {
		qt.Subdivide()
	}

	return qt.NorthWest.Insert(point, object) ||
		qt.NorthEast.Insert(point, object) ||
		qt.SouthWest.Insert(point, object) ||
		qt.SouthEast.Insert(point, object)
}

// Subdivide splits the quadtree into four quadrants
func (qt *QuadTree) Subdivide() {
	x := qt.Boundary.Center.X
	y := qt.Boundary.Center.Y
	w := qt.Boundary.Width / 2
	h := qt.Boundary.Height / 2

	qt.NorthWest = NewQuadTree(Rect{Center: Vector2D{X: x - w/2, Y: y + h/2}, Width: w, Height: h}, qt.Capacity)
	qt.NorthEast = NewQuadTree(Rect{Center: Vector2D{X: x + w/2, Y: y + h/2}, Width: w, Height: h}, qt.Capacity)
	qt.SouthWest = NewQuadTree(Rect{Center: Vector2D{X: x - w/2, Y: y - h/2}, Width: w, Height: h}, qt.Capacity)
	qt.SouthEast = NewQuadTree(Rect{Center: Vector2D{X: x + w/2, Y: y - h/2}, Width: w, Height: h}, qt.Capacity)
	qt.Divided = true
}

// Query returns the objects whose points fall inside the area
func (qt *QuadTree) Query(area Rect) []int {
	var found []int
	if !qt.intersects(area) {
		return found
	}

	for i, point := range qt.Points {
		if area.Contains(point) {
			found = append(found, qt.Objects[i])
		}
	}

	if !qt.Divided {
		return found
	}

	found = append(found, qt.NorthWest.Query(area)...)
	found = append(found, qt.NorthEast.Query(area)...)
	found = append(found, qt.SouthWest.Query(area)...)
	found = append(found, qt.SouthEast.Query(area)...)
	return found
}

func (qt *QuadTree) intersects(area Rect) bool {
	return !(area.Center.X-area.Width/2 > qt.Boundary.Center.X+qt.Boundary.Width/2 ||
		area.Center.X+area.Width/2 < qt.Boundary.Center.X-qt.Boundary.Width/2 ||
		area.Center.Y-area.Height/2 > qt.Boundary.Center.Y+qt.Boundary.Height/2 ||
		area.Center.Y+area.Height/2 < qt.Boundary.Center.Y-qt.Boundary.Height/2)
}
