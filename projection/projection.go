// Package projection converts between tile grid locations and screen
// locations for the map orientations a host engine may use. The shape
// core never depends on it; collaborators use it to place generated
// meshes and textures.
package projection

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Projector maps tile coordinates to screen space and back.
// Screen space has x to the right, y down, and z = 0.
type Projector interface {
	TileToScreen(x, y int) mgl32.Vec3
	ScreenToTile(loc mgl32.Vec3) mgl32.Vec2
}

// Orthogonal lays tiles out on a plain rectangular grid.
type Orthogonal struct {
	TileWidth, TileHeight float32
}

// TileToScreen returns the top-left corner of the tile.
func (o Orthogonal) TileToScreen(x, y int) mgl32.Vec3 {
	return mgl32.Vec3{float32(x) * o.TileWidth, float32(y) * o.TileHeight, 0}
}

// ScreenToTile returns the fractional tile location of a screen point.
func (o Orthogonal) ScreenToTile(loc mgl32.Vec3) mgl32.Vec2 {
	return mgl32.Vec2{loc.X() / o.TileWidth, loc.Y() / o.TileHeight}
}

// Isometric lays tiles out as diamonds. MapHeight is the number of tile rows,
// used to keep the leftmost tile at x >= 0.
type Isometric struct {
	TileWidth, TileHeight float32
	MapHeight             int
}

func (i Isometric) originX() float32 {
	return float32(i.MapHeight) * i.TileWidth * 0.5
}

// TileToScreen returns the top vertex of the tile diamond.
func (i Isometric) TileToScreen(x, y int) mgl32.Vec3 {
	sx := float32(x-y)*i.TileWidth*0.5 + i.originX()
	sy := float32(x+y) * i.TileHeight * 0.5
	return mgl32.Vec3{sx, sy, 0}
}

// ScreenToTile returns the fractional tile location of a screen point.
func (i Isometric) ScreenToTile(loc mgl32.Vec3) mgl32.Vec2 {
	sx := loc.X() - i.originX()
	sy := loc.Y()
	return mgl32.Vec2{
		sy/i.TileHeight + sx/i.TileWidth,
		sy/i.TileHeight - sx/i.TileWidth,
	}
}

// Staggered lays tiles out with every odd row shifted by half a tile.
// A non-zero HexSideLength turns it into a hexagonal layout with pointy tops.
type Staggered struct {
	TileWidth, TileHeight float32
	HexSideLength         float32
}

func (s Staggered) rowHeight() float32 {
	return (s.TileHeight + s.HexSideLength) * 0.5
}

// TileToScreen returns the top-left corner of the tile bounding box.
func (s Staggered) TileToScreen(x, y int) mgl32.Vec3 {
	sx := float32(x) * s.TileWidth
	if y&1 == 1 {
		sx += s.TileWidth * 0.5
	}
	return mgl32.Vec3{sx, float32(y) * s.rowHeight(), 0}
}

// ScreenToTile returns the tile whose bounding box row contains the point.
// The result is snapped to whole rows since odd rows are shifted.
func (s Staggered) ScreenToTile(loc mgl32.Vec3) mgl32.Vec2 {
	row := float32(math.Floor(float64(loc.Y() / s.rowHeight())))
	sx := loc.X()
	if int(row)&1 == 1 {
		sx -= s.TileWidth * 0.5
	}
	return mgl32.Vec2{sx / s.TileWidth, row}
}

// New returns the projector for an orientation name: "orthogonal",
// "isometric", "staggered" or "hexagonal". mapHeight is only used by
// isometric maps and hexSide only by hexagonal ones.
func New(orientation string, tileWidth, tileHeight float32, mapHeight int, hexSide float32) (Projector, error) {
	switch strings.ToLower(orientation) {
	case "", "orthogonal":
		return Orthogonal{TileWidth: tileWidth, TileHeight: tileHeight}, nil
	case "isometric":
		return Isometric{TileWidth: tileWidth, TileHeight: tileHeight, MapHeight: mapHeight}, nil
	case "staggered":
		return Staggered{TileWidth: tileWidth, TileHeight: tileHeight}, nil
	case "hexagonal":
		return Staggered{TileWidth: tileWidth, TileHeight: tileHeight, HexSideLength: hexSide}, nil
	}
	return nil, fmt.Errorf("projection: unknown orientation %q", orientation)
}
