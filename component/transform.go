package component

import "github.com/aldermoor/highground/common"

// Transform holds an entity's world position and horizontal facing.
type Transform struct {
	Pos common.Vec3
	Yaw float64 // radians around the up axis
}
