// Package terrain holds the height-field ground model and the downward ray
// query used to anchor entities and place spawns.
package terrain

import (
	"github.com/aldermoor/highground/common"
)

// Clearance is how far above the sampled surface placed entities sit.
const Clearance = 0.1

// Field is a uniform-grid height field. Heights[iz][ix] is the surface
// height at (ix*CellSize, iz*CellSize); cells between samples interpolate
// bilinearly. Cells marked with Hole are gaps with no ground at all.
type Field struct {
	CellSize float64
	Heights  [][]float64
	Holes    map[[2]int]bool
}

// NewField builds a field from row-major height samples.
func NewField(cellSize float64, heights [][]float64) *Field {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &Field{CellSize: cellSize, Heights: heights}
}

// SetHole marks the grid cell containing sample (ix, iz) as bottomless.
func (f *Field) SetHole(ix, iz int) {
	if f == nil {
		return
	}
	if f.Holes == nil {
		f.Holes = make(map[[2]int]bool)
	}
	f.Holes[[2]int{ix, iz}] = true
}

// HeightAt samples the surface height at a horizontal position.
// The second return is false outside the grid or over a hole.
func (f *Field) HeightAt(x, z float64) (float64, bool) {
	if f == nil || len(f.Heights) < 2 {
		return 0, false
	}

	gx := x / f.CellSize
	gz := z / f.CellSize
	ix := int(gx)
	iz := int(gz)
	if gx < 0 || gz < 0 || iz >= len(f.Heights)-1 {
		return 0, false
	}
	row0 := f.Heights[iz]
	row1 := f.Heights[iz+1]
	if ix >= len(row0)-1 || ix >= len(row1)-1 {
		return 0, false
	}
	if f.Holes != nil && f.Holes[[2]int{ix, iz}] {
		return 0, false
	}

	tx := gx - float64(ix)
	tz := gz - float64(iz)
	h0 := common.Lerp(row0[ix], row0[ix+1], tx)
	h1 := common.Lerp(row1[ix], row1[ix+1], tx)
	return common.Lerp(h0, h1, tz), true
}

// FindGroundPoint casts a single downward ray from origin + up*searchHeight
// through origin - up*searchHeight and returns the surface hit lifted by
// Clearance. The boolean is false when nothing in that span counts as
// ground; callers treat that as a skipped attempt, not an error.
func (f *Field) FindGroundPoint(origin common.Vec3, searchHeight float64) (common.Vec3, bool) {
	ground, ok := f.HeightAt(origin.X, origin.Z)
	if !ok {
		return common.Vec3{}, false
	}
	top := origin.Y + searchHeight
	bottom := origin.Y - searchHeight
	if ground > top || ground < bottom {
		return common.Vec3{}, false
	}
	return common.Vec3{X: origin.X, Y: ground + Clearance, Z: origin.Z}, true
}
