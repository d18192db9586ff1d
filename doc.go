/*
Package objshape turns the vector objects attached to map entities (rectangles,
ellipses, circles, polygons and polylines) into something a 3D scene can draw.

Two representations are supported:

  - a mesh of positions, normals, texture coordinates and indices,
    built by BuildMesh and the Mesh* functions;
  - a rasterized RGBA texture, painted on a Canvas with a selectable
    blend mode and exported through Canvas.Image.

Example to build the renderable outline of an ellipse:

	package main

	import (
		"fmt"

		"github.com/esimov/objshape"
	)

	func main() {
		mesh, err := objshape.BuildMesh(objshape.Ellipse{Width: 64, Height: 32})
		if err != nil {
			fmt.Printf("Error on mesh generation: %s", err.Error())
		}
		fmt.Println(mesh.VertexCount())
	}

Example to rasterize a filled polygon into a texture:

	package main

	import (
		"fmt"

		"github.com/esimov/objshape"
	)

	func main() {
		opts := objshape.DefaultOptions()
		opts.Width, opts.Height = 128, 128
		opts.Fill = true

		poly := objshape.Polygon{Points: []objshape.Point{{X: 10, Y: 10}, {X: 110, Y: 20}, {X: 60, Y: 100}}}
		canvas, err := objshape.Rasterize(poly, opts)
		if err != nil {
			fmt.Printf("Error on rasterization: %s", err.Error())
		}
		if err := canvas.SavePNG("polygon.png"); err != nil {
			fmt.Printf("Error saving texture: %s", err.Error())
		}
	}

A Canvas is not safe for concurrent use. Meshes and shapes are plain values and
can be shared freely once produced.
*/
package objshape
