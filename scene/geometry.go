package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// ShapeKind selects one of the platonic solids a Shape is drawn as.
type ShapeKind int

const (
	Icosahedron ShapeKind = iota
	Octahedron
	Tetrahedron
	Dodecahedron
	shapeKindCount
)

func (k ShapeKind) String() string {
	switch k {
	case Icosahedron:
		return "icosahedron"
	case Octahedron:
		return "octahedron"
	case Tetrahedron:
		return "tetrahedron"
	case Dodecahedron:
		return "dodecahedron"
	}
	return "unknown"
}

// Radius returns the circumradius a shape of this kind is built with.
func (k ShapeKind) Radius() float32 {
	switch k {
	case Icosahedron, Octahedron:
		return 0.4
	case Tetrahedron:
		return 0.5
	case Dodecahedron:
		return 0.3
	}
	return 0
}

// Edge joins two vertex indices of a Polyhedron.
type Edge [2]int

// Polyhedron is a unit-circumradius wireframe.
type Polyhedron struct {
	Vertices []mgl32.Vec3
	Edges    []Edge
}

var polyhedra = [shapeKindCount]Polyhedron{
	Icosahedron:  newPolyhedron(icosahedronVertices()),
	Octahedron:   newPolyhedron(octahedronVertices()),
	Tetrahedron:  newPolyhedron(tetrahedronVertices()),
	Dodecahedron: newPolyhedron(dodecahedronVertices()),
}

// Geometry returns the shared wireframe for a kind. Callers must not modify it.
func (k ShapeKind) Geometry() *Polyhedron {
	return &polyhedra[k]
}

// newPolyhedron normalizes the vertices onto the unit sphere and connects
// every pair at the minimum pairwise distance, which for a regular solid is
// exactly its edge set.
func newPolyhedron(vertices []mgl32.Vec3) Polyhedron {
	for i, v := range vertices {
		vertices[i] = v.Normalize()
	}

	shortest := float32(math.MaxFloat32)
	for i := range vertices {
		for j := i + 1; j < len(vertices); j++ {
			shortest = min(shortest, vertices[i].Sub(vertices[j]).Len())
		}
	}

	const tolerance = 1e-4
	var edges []Edge
	for i := range vertices {
		for j := i + 1; j < len(vertices); j++ {
			if vertices[i].Sub(vertices[j]).Len()-shortest < tolerance {
				edges = append(edges, Edge{i, j})
			}
		}
	}

	return Polyhedron{Vertices: vertices, Edges: edges}
}

var phi = float32((1 + math.Sqrt(5)) / 2)

func tetrahedronVertices() []mgl32.Vec3 {
	return []mgl32.Vec3{
		{1, 1, 1}, {-1, -1, 1}, {-1, 1, -1}, {1, -1, -1},
	}
}

func octahedronVertices() []mgl32.Vec3 {
	return []mgl32.Vec3{
		{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1},
	}
}

func icosahedronVertices() []mgl32.Vec3 {
	var vs []mgl32.Vec3
	for _, a := range []float32{-1, 1} {
		for _, b := range []float32{-phi, phi} {
			vs = append(vs,
				mgl32.Vec3{a, b, 0},
				mgl32.Vec3{0, a, b},
				mgl32.Vec3{b, 0, a},
			)
		}
	}
	return vs
}

func dodecahedronVertices() []mgl32.Vec3 {
	var vs []mgl32.Vec3
	for _, x := range []float32{-1, 1} {
		for _, y := range []float32{-1, 1} {
			for _, z := range []float32{-1, 1} {
				vs = append(vs, mgl32.Vec3{x, y, z})
			}
		}
	}
	inv := 1 / phi
	for _, a := range []float32{-inv, inv} {
		for _, b := range []float32{-phi, phi} {
			vs = append(vs,
				mgl32.Vec3{0, a, b},
				mgl32.Vec3{a, b, 0},
				mgl32.Vec3{b, 0, a},
			)
		}
	}
	return vs
}
