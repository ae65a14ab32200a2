package edwards

import "github.com/caveman99/CustomCrypto/internal/crypto/field"

// OnCurve reports whether v satisfies the extended-coordinate curve equations
// (-X^2 + Y^2) Z^2 = Z^4 + d X^2 Y^2 and XY = ZT.
func (v *Point) OnCurve() bool {
	var xx, yy, zz, lhs, rhs, t0 field.Element
	xx.Square(&v.x)
	yy.Square(&v.y)
	zz.Square(&v.z)

	lhs.Subtract(&yy, &xx)
	lhs.Multiply(&lhs, &zz)

	rhs.Multiply(&xx, &yy)
	rhs.Multiply(&rhs, d)
	t0.Square(&zz)
	rhs.Add(&rhs, &t0)

	var xy, zt field.Element
	xy.Multiply(&v.x, &v.y)
	zt.Multiply(&v.z, &v.t)
	return lhs.Equal(&rhs) == 1 && xy.Equal(&zt) == 1
}
