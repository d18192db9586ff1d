package objshape

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// ellipseSegments is the number of boundary samples used for ellipse outlines.
const ellipseSegments = 24

// MeshMode tells how the index buffer of a MeshData is assembled into primitives.
type MeshMode int

const (
	// Triangles groups indices three at a time into filled triangles.
	Triangles MeshMode = iota
	// LineStrip connects every index to the next one.
	LineStrip
)

func (m MeshMode) String() string {
	switch m {
	case Triangles:
		return "triangles"
	case LineStrip:
		return "line-strip"
	}
	return fmt.Sprintf("MeshMode(%d)", int(m))
}

// MeshData is the CPU side geometry of one shape. All vertices lie on the
// z = 0 plane and share the +z normal.
type MeshData struct {
	Mode      MeshMode
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	TexCoords []mgl32.Vec2
	Indices   []uint32
}

// VertexCount returns the number of vertices.
func (m *MeshData) VertexCount() int {
	return len(m.Positions)
}

// TriangleCount returns the number of triangles, zero for line strips.
func (m *MeshData) TriangleCount() int {
	if m.Mode != Triangles {
		return 0
	}
	return len(m.Indices) / 3
}

// Bounds returns the xy bounding box of the vertex positions.
func (m *MeshData) Bounds() Bounds {
	points := make([]Point, len(m.Positions))
	for i, p := range m.Positions {
		points[i] = Point{X: float64(p.X()), Y: float64(p.Y())}
	}
	return boundsOf(points)
}

// Float32Positions flattens the positions into an interleaved x,y,z buffer
// ready for upload.
func (m *MeshData) Float32Positions() []float32 {
	buf := make([]float32, 0, len(m.Positions)*3)
	for _, p := range m.Positions {
		buf = append(buf, p[0], p[1], p[2])
	}
	return buf
}

// Transform returns a copy of the mesh with every position multiplied by mat.
// Normals are left untouched since meshes are flat annotations.
func (m *MeshData) Transform(mat mgl32.Mat4) *MeshData {
	out := &MeshData{
		Mode:      m.Mode,
		Positions: make([]mgl32.Vec3, len(m.Positions)),
		Normals:   append([]mgl32.Vec3(nil), m.Normals...),
		TexCoords: append([]mgl32.Vec2(nil), m.TexCoords...),
		Indices:   append([]uint32(nil), m.Indices...),
	}
	for i, p := range m.Positions {
		out.Positions[i] = mgl32.TransformCoordinate(p, mat)
	}
	return out
}

// MeshEllipse builds the closed outline of the ellipse inscribed in a
// width x height box anchored at the origin.
func MeshEllipse(width, height float64) (*MeshData, error) {
	xc := width * 0.5
	yc := height * 0.5

	points := make([]Point, 0, ellipseSegments)
	step := 2 * math.Pi / ellipseSegments
	for i := 0; i < ellipseSegments; i++ {
		r := float64(i) * step
		x := math.Sin(r)*xc + xc
		y := math.Cos(r)*yc + yc
		points = append(points, Point{X: x, Y: -y})
	}
	return MeshPolyline(points, true)
}

// MeshRectangle builds the closed outline of a width x height rectangle
// anchored at the origin.
func MeshRectangle(width, height float64) (*MeshData, error) {
	points := []Point{
		{X: 0, Y: 0},
		{X: width, Y: 0},
		{X: width, Y: -height},
		{X: 0, Y: -height},
	}
	return MeshPolyline(points, true)
}

// MeshPolygon builds a filled, triangulated surface from the polygon vertices.
// It fails with ErrInvalidGeometry when fewer than three points are given.
func MeshPolygon(points []Point) (*MeshData, error) {
	n := len(points)
	if n < 3 {
		return nil, fmt.Errorf("%w: polygon needs at least 3 points, got %d", ErrInvalidGeometry, n)
	}

	flipped := make([]Point, n)
	for i, p := range points {
		flipped[i] = p.FlipY()
	}

	indices, err := Triangulate(flipped)
	if err != nil {
		return nil, err
	}

	mesh := &MeshData{
		Mode:      Triangles,
		Positions: make([]mgl32.Vec3, n),
		Normals:   make([]mgl32.Vec3, n),
		TexCoords: make([]mgl32.Vec2, n),
		Indices:   make([]uint32, len(indices)),
	}
	for i, p := range flipped {
		mesh.Positions[i] = mgl32.Vec3{float32(p.X), float32(p.Y), 0}
		mesh.Normals[i] = mgl32.Vec3{0, 0, 1}
	}
	for i, idx := range indices {
		mesh.Indices[i] = uint32(idx)
	}

	Logger().Debug("polygon mesh built",
		slog.Int("vertices", n),
		slog.Int("triangles", mesh.TriangleCount()),
	)
	return mesh, nil
}

// MeshPolyline builds a line strip through the points. When closed is set
// the strip returns to the first point.
// It fails with ErrInvalidGeometry when fewer than two points are given.
func MeshPolyline(points []Point, closed bool) (*MeshData, error) {
	n := len(points)
	if n < 2 {
		return nil, fmt.Errorf("%w: polyline needs at least 2 points, got %d", ErrInvalidGeometry, n)
	}

	count := n
	if closed {
		count++
	}
	mesh := &MeshData{
		Mode:      LineStrip,
		Positions: make([]mgl32.Vec3, n),
		Normals:   make([]mgl32.Vec3, n),
		TexCoords: make([]mgl32.Vec2, n),
		Indices:   make([]uint32, count),
	}
	for i, p := range points {
		mesh.Positions[i] = mgl32.Vec3{float32(p.X), float32(-p.Y), 0}
		mesh.Normals[i] = mgl32.Vec3{0, 0, 1}
		mesh.Indices[i] = uint32(i)
	}
	if closed {
		mesh.Indices[n] = 0
	}

	Logger().Debug("polyline mesh built",
		slog.Int("vertices", n),
		slog.Bool("closed", closed),
	)
	return mesh, nil
}

// BuildMesh dispatches a shape to the matching mesh builder.
// Rectangles and ellipses are built relative to their own top-left corner;
// circles are treated as ellipses of their diameter. Polygons and polylines
// keep their point coordinates as given.
func BuildMesh(s Shape) (*MeshData, error) {
	switch shape := s.(type) {
	case Ellipse:
		return MeshEllipse(shape.Width, shape.Height)
	case Circle:
		return MeshEllipse(shape.Radius*2, shape.Radius*2)
	case Rectangle:
		return MeshRectangle(shape.Width, shape.Height)
	case Polygon:
		return MeshPolygon(shape.Points)
	case Polyline:
		return MeshPolyline(shape.Points, shape.Closed)
	}
	return nil, fmt.Errorf("%w: %T", ErrUnknownShape, s)
}
