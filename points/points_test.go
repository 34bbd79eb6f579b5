package points

import (
	"math"
	"testing"

	"github.com/bloeys/gglm/gglm"
	"github.com/stretchr/testify/assert"
)

const tolerance = 1e-5

var testPoints = []gglm.Vec3{
	gglm.NewVec3(1, 0, 0),
	gglm.NewVec3(0, 1, -8),
	gglm.NewVec3(-3.5, 2.25, 7),
	gglm.NewVec3(0.1, -0.2, 0.3),
}

var testAngles = []float32{0, 15, 45, 90, 137.5, -60, 270}

func assertVec3InDelta(t *testing.T, expected, actual gglm.Vec3, msgAndArgs ...any) {
	t.Helper()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, expected.Data[i], actual.Data[i], tolerance, msgAndArgs...)
	}
}

func TestRotateInverse(t *testing.T) {

	rotations := map[string]func(*gglm.Vec3, float32){
		"X": RotateX,
		"Y": RotateY,
		"Z": RotateZ,
	}

	for name, rot := range rotations {
		for _, p := range testPoints {
			for _, angle := range testAngles {

				got := p
				rot(&got, angle)
				rot(&got, -angle)
				assertVec3InDelta(t, p, got, "axis=%s point=%v angle=%f", name, p.Data, angle)
			}
		}
	}
}

func TestRotateAxisInverse(t *testing.T) {

	axes := []gglm.Vec3{
		gglm.NewVec3(1, 0, 0),
		gglm.NewVec3(0, 0, 1),
		gglm.NewVec3(1, 1, 1),
		gglm.NewVec3(-2, 0.5, 3),
	}

	for _, axis := range axes {
		for _, p := range testPoints {
			for _, angle := range testAngles {

				rads := angle * gglm.Deg2Rad
				got := p
				RotateAxis(&axis, &got, rads)
				RotateAxis(&axis, &got, -rads)
				assertVec3InDelta(t, p, got, "axis=%v point=%v angle=%f", axis.Data, p.Data, angle)
			}
		}
	}
}

func TestRotateYQuarterTurn(t *testing.T) {

	p := gglm.NewVec3(1, 0, 0)
	RotateY(&p, 90)
	assertVec3InDelta(t, gglm.NewVec3(0, 0, -1), p)
}

func TestRotateXAndZQuarterTurn(t *testing.T) {

	p := gglm.NewVec3(0, 1, 0)
	RotateX(&p, 90)
	assertVec3InDelta(t, gglm.NewVec3(0, 0, 1), p)

	p = gglm.NewVec3(1, 0, 0)
	RotateZ(&p, 90)
	assertVec3InDelta(t, gglm.NewVec3(0, 1, 0), p)
}

func TestRotateAxisMatchesAxisAligned(t *testing.T) {

	xAxis := gglm.NewVec3(1, 0, 0)
	yAxis := gglm.NewVec3(0, 2, 0)
	zAxis := gglm.NewVec3(0, 0, 1)

	for _, p := range testPoints {
		for _, angle := range testAngles {

			want := p
			RotateX(&want, angle)
			got := p
			RotateAxis(&xAxis, &got, angle*gglm.Deg2Rad)
			assertVec3InDelta(t, want, got, "x axis point=%v angle=%f", p.Data, angle)

			want = p
			RotateY(&want, angle)
			got = p
			RotateAxis(&yAxis, &got, angle*gglm.Deg2Rad)
			assertVec3InDelta(t, want, got, "y axis point=%v angle=%f", p.Data, angle)

			want = p
			RotateZ(&want, angle)
			got = p
			RotateAxis(&zAxis, &got, angle*gglm.Deg2Rad)
			assertVec3InDelta(t, want, got, "z axis point=%v angle=%f", p.Data, angle)
		}
	}
}

// rodrigues rotates v around the unit axis k by rads
func rodrigues(k, v [3]float64, rads float64) gglm.Vec3 {

	cos, sin := math.Cos(rads), math.Sin(rads)
	cross := [3]float64{
		k[1]*v[2] - k[2]*v[1],
		k[2]*v[0] - k[0]*v[2],
		k[0]*v[1] - k[1]*v[0],
	}
	dot := k[0]*v[0] + k[1]*v[1] + k[2]*v[2]

	var out gglm.Vec3
	for i := 0; i < 3; i++ {
		out.Data[i] = float32(v[i]*cos + cross[i]*sin + k[i]*dot*(1-cos))
	}

	return out
}

func TestRotateAxisArbitraryAxis(t *testing.T) {

	axes := []gglm.Vec3{
		gglm.NewVec3(1, 2, 3),
		gglm.NewVec3(-0.4, 0.1, 0.9),
		gglm.NewVec3(0, -5, 5),
	}

	for _, axis := range axes {

		n := axis.Clone().Normalize()
		k := [3]float64{float64(n.X()), float64(n.Y()), float64(n.Z())}

		for _, p := range testPoints {

			got := p
			RotateAxis(&axis, &got, 0.7)

			expected := rodrigues(k, [3]float64{float64(p.X()), float64(p.Y()), float64(p.Z())}, 0.7)
			assertVec3InDelta(t, expected, got, "axis=%v point=%v", axis.Data, p.Data)
		}
	}
}

func TestRotateZLegacyUsesXAxis(t *testing.T) {

	p := gglm.NewVec3(-3.5, 2.25, 7)

	legacy := p
	RotateZLegacy(&legacy, 30)

	x := p
	RotateX(&x, 30)
	assertVec3InDelta(t, x, legacy)

	z := p
	RotateZ(&z, 30)
	assert.NotEqual(t, x.Data, z.Data)
}

func TestRotateAxisZeroAxis(t *testing.T) {

	axis := gglm.NewVec3(0, 0, 0)
	p := gglm.NewVec3(1, 2, 3)
	RotateAxis(&axis, &p, 1.5)

	assert.Equal(t, [3]float32{1, 2, 3}, p.Data)
	assert.Equal(t, [3]float32{0, 0, 0}, axis.Data)
}

func TestRotateAxisKeepsAxis(t *testing.T) {

	axis := gglm.NewVec3(0, 3, 0)
	p := gglm.NewVec3(1, 0, 0)
	RotateAxis(&axis, &p, 90*gglm.Deg2Rad)

	assert.Equal(t, [3]float32{0, 3, 0}, axis.Data)
	assertVec3InDelta(t, gglm.NewVec3(0, 0, -1), p)
}

func TestTranslationInverse(t *testing.T) {

	offset := gglm.NewVec3(0.5, -1.25, 3)
	negOffset := gglm.NewVec3(-0.5, 1.25, -3)

	for _, p := range testPoints {

		got := p
		Translation(&got, &offset)
		assertVec3InDelta(t, gglm.NewVec3(p.X()+0.5, p.Y()-1.25, p.Z()+3), got)

		Translation(&got, &negOffset)
		assertVec3InDelta(t, p, got)
	}
}

func TestScaleInverse(t *testing.T) {

	factors := []float32{2, 0.5, -3, 1.1, 1e-3}
	for _, p := range testPoints {
		for _, f := range factors {

			got := p
			Scale(&got, f)
			assertVec3InDelta(t, gglm.NewVec3(p.X()*f, p.Y()*f, p.Z()*f), got)

			Scale(&got, 1/f)
			assertVec3InDelta(t, p, got, "point=%v factor=%f", p.Data, f)
		}
	}
}
