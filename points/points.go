// Package points applies rotation, translation and scale to 3D points in place.
//
// Rotations are right-handed: a positive angle rotates counter-clockwise when
// looking down the rotation axis towards the origin. For example rotating
// (1, 0, 0) by 90 degrees around Y gives (0, 0, -1).
package points

import (
	"github.com/bloeys/gglm/gglm"
)

func RotateX(point *gglm.Vec3, angleDeg float32) {
	rotate(point, angleDeg*gglm.Deg2Rad, 1, 0, 0)
}

func RotateY(point *gglm.Vec3, angleDeg float32) {
	rotate(point, angleDeg*gglm.Deg2Rad, 0, 1, 0)
}

func RotateZ(point *gglm.Vec3, angleDeg float32) {
	rotate(point, angleDeg*gglm.Deg2Rad, 0, 0, 1)
}

// RotateZLegacy reproduces the roll of older versions, which used the X axis rotation.
// Only use this when the old camera behavior must be kept.
func RotateZLegacy(point *gglm.Vec3, angleDeg float32) {
	rotate(point, angleDeg*gglm.Deg2Rad, 1, 0, 0)
}

// RotateAxis rotates point around axis by angleRad radians.
// The axis doesn't have to be normalized. A zero axis leaves the point unchanged.
func RotateAxis(axis *gglm.Vec3, point *gglm.Vec3, angleRad float32) {

	if gglm.DotVec3(axis, axis) == 0 {
		return
	}

	n := axis.Clone().Normalize()
	rotate(point, angleRad, n.X(), n.Y(), n.Z())
}

func Translation(point *gglm.Vec3, offset *gglm.Vec3) {
	point.Add(offset)
}

func Scale(point *gglm.Vec3, factor float32) {
	point.Scale(factor)
}

func rotate(point *gglm.Vec3, rads, axisX, axisY, axisZ float32) {

	rotMat := gglm.NewTrMatId()
	rotMat.Rotate(rads, axisX, axisY, axisZ)

	point4 := gglm.NewVec4(point.X(), point.Y(), point.Z(), 1)
	res := gglm.MulMat4Vec4(&rotMat.Mat4, &point4)

	point.Data = [3]float32{res.Data[0], res.Data[1], res.Data[2]}
}
