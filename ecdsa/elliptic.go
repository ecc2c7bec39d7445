// Copyright (c) 2026 Multiple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ecdsa

// GenericCurve operates, internally, on Jacobian coordinates. For a given
// (x, y) position on the curve, the Jacobian coordinates are (x1, y1, z1)
// where x = x1/z1² and y = y1/z1³. Scalar multiplication stays within the
// transform for the whole ladder and converts back to affine once.

import (
	"math/big"

	"github.com/cockroachdb/errors"
)

// ErrInvalidCurve is returned by NewCurve for inconsistent parameters.
var ErrInvalidCurve = errors.New("ecdsa: invalid curve parameters")

// CurveParams contains the parameters of a curve y² = x³ + ax + b over the
// prime field of order P, with a base point of prime order N.
type CurveParams struct {
	P       *big.Int // the order of the underlying field
	N       *big.Int // the order of the base point
	A       *big.Int // the linear coefficient of the curve equation
	B       *big.Int // the constant of the curve equation
	Gx, Gy  *big.Int // (x,y) of the base point
	BitSize int      // the size of the underlying field
	Name    string   // the canonical name of the curve
}

// GenericCurve provides a non-constant time implementation of Group for
// short Weierstrass curves. A GenericCurve is immutable and safe for
// concurrent use.
type GenericCurve struct {
	p CurveParams
}

var _ Group = (*GenericCurve)(nil)

// NewCurve validates params and returns the curve they describe. P and N
// must be prime, N*G must be the point at infinity. BitSize is derived from
// P when zero.
func NewCurve(params CurveParams) (*GenericCurve, error) {
	for name, v := range map[string]*big.Int{
		"P": params.P, "N": params.N, "A": params.A, "B": params.B,
		"Gx": params.Gx, "Gy": params.Gy,
	} {
		if v == nil {
			return nil, errors.Wrapf(ErrInvalidCurve, "%s is missing", name)
		}
	}
	two := big.NewInt(2)
	if params.P.Cmp(two) <= 0 || params.N.Cmp(two) <= 0 {
		return nil, errors.Wrap(ErrInvalidCurve, "P and N must be greater than 2")
	}
	if !params.P.ProbablyPrime(20) {
		return nil, errors.Wrapf(ErrInvalidCurve, "field order %s is not prime", params.P)
	}
	if !params.N.ProbablyPrime(20) {
		return nil, errors.Wrapf(ErrInvalidCurve, "group order %s is not prime", params.N)
	}

	curve := &GenericCurve{p: CurveParams{
		P:       new(big.Int).Set(params.P),
		N:       new(big.Int).Set(params.N),
		A:       new(big.Int).Mod(params.A, params.P),
		B:       new(big.Int).Mod(params.B, params.P),
		Gx:      new(big.Int).Set(params.Gx),
		Gy:      new(big.Int).Set(params.Gy),
		BitSize: params.BitSize,
		Name:    params.Name,
	}}
	if curve.p.BitSize == 0 {
		curve.p.BitSize = params.P.BitLen()
	}

	// 4a³ + 27b² must not vanish, otherwise the curve is singular.
	disc := new(big.Int).Exp(curve.p.A, big.NewInt(3), curve.p.P)
	disc.Lsh(disc, 2)
	b2 := new(big.Int).Mul(curve.p.B, curve.p.B)
	disc.Add(disc, b2.Mul(b2, big.NewInt(27)))
	if disc.Mod(disc, curve.p.P).Sign() == 0 {
		return nil, errors.Wrap(ErrInvalidCurve, "curve is singular")
	}

	g := curve.Generator()
	if g.IsInfinity() || g.X.Cmp(curve.p.P) >= 0 || g.Y.Cmp(curve.p.P) >= 0 || !curve.IsOnCurve(g) {
		return nil, errors.Wrapf(ErrInvalidCurve, "generator %s is not on the curve", g)
	}
	// ScalarMult reduces modulo N, so N*G has to be computed by hand.
	nMinusOne := new(big.Int).Sub(curve.p.N, big.NewInt(1))
	if !curve.Add(curve.ScalarBaseMult(nMinusOne), g).IsInfinity() {
		return nil, errors.Wrapf(ErrInvalidCurve, "generator does not have order %s", curve.p.N)
	}
	return curve, nil
}

// Params returns the parameters of the curve. The result must not be
// modified.
func (curve *GenericCurve) Params() *CurveParams {
	return &curve.p
}

// Name returns the canonical name of the curve.
func (curve *GenericCurve) Name() string {
	return curve.p.Name
}

// Order returns the order of the base point.
func (curve *GenericCurve) Order() *big.Int {
	return new(big.Int).Set(curve.p.N)
}

// Generator returns the base point G.
func (curve *GenericCurve) Generator() Point {
	return Point{X: new(big.Int).Set(curve.p.Gx), Y: new(big.Int).Set(curve.p.Gy)}
}

// Equal returns whether this curve is identical to the given curve.
func (curve *GenericCurve) Equal(x *GenericCurve) bool {
	return curve.p.P.Cmp(x.p.P) == 0 &&
		curve.p.N.Cmp(x.p.N) == 0 &&
		curve.p.A.Cmp(x.p.A) == 0 &&
		curve.p.B.Cmp(x.p.B) == 0 &&
		curve.p.Gx.Cmp(x.p.Gx) == 0 &&
		curve.p.Gy.Cmp(x.p.Gy) == 0 &&
		curve.p.BitSize == x.p.BitSize
}

// Polynomial returns x³ + ax + b.
func (curve *GenericCurve) Polynomial(x *big.Int) *big.Int {
	x3 := new(big.Int).Mul(x, x)
	x3.Add(x3, curve.p.A) // x² + a
	x3.Mul(x3, x)         // x³ + ax
	x3.Add(x3, curve.p.B) // x³ + ax + b

	return x3.Mod(x3, curve.p.P)
}

// IsOnCurve reports whether p lies on the curve. The point at infinity is
// considered to be on the curve. Coordinates must be reduced into [0, P).
func (curve *GenericCurve) IsOnCurve(p Point) bool {
	if p.IsInfinity() {
		return true
	}
	x, y := p.coords()
	if x.Sign() < 0 || x.Cmp(curve.p.P) >= 0 || y.Sign() < 0 || y.Cmp(curve.p.P) >= 0 {
		return false
	}

	// y² = x³ + ax + b
	y2 := new(big.Int).Mul(y, y)
	y2.Mod(y2, curve.p.P)

	return curve.Polynomial(x).Cmp(y2) == 0
}

// zForAffine returns a Jacobian Z value for the affine point (x, y). If x and
// y are zero, it assumes that they represent the point at infinity because (0,
// 0) is not on the any of the curves handled here.
func zForAffine(x, y *big.Int) *big.Int {
	z := new(big.Int)
	if x.Sign() != 0 || y.Sign() != 0 {
		z.SetInt64(1)
	}
	return z
}

// affineFromJacobian reverses the Jacobian transform. See the comment at the
// top of the file. If the point is ∞ it returns (0, 0).
func (curve *GenericCurve) affineFromJacobian(x, y, z *big.Int) Point {
	if z.Sign() == 0 {
		return Infinity()
	}

	zinv := new(big.Int).ModInverse(z, curve.p.P)
	zinvsq := new(big.Int).Mul(zinv, zinv)

	xOut := new(big.Int).Mul(x, zinvsq)
	xOut.Mod(xOut, curve.p.P)
	zinvsq.Mul(zinvsq, zinv)
	yOut := new(big.Int).Mul(y, zinvsq)
	yOut.Mod(yOut, curve.p.P)
	return Point{X: xOut, Y: yOut}
}

// Add returns p1 + p2.
func (curve *GenericCurve) Add(p1, p2 Point) Point {
	x1, y1 := p1.coords()
	x2, y2 := p2.coords()
	z1 := zForAffine(x1, y1)
	z2 := zForAffine(x2, y2)
	return curve.affineFromJacobian(curve.addJacobian(x1, y1, z1, x2, y2, z2))
}

// addJacobian takes two points in Jacobian coordinates, (x1, y1, z1) and
// (x2, y2, z2) and returns their sum, also in Jacobian form.
func (curve *GenericCurve) addJacobian(x1, y1, z1, x2, y2, z2 *big.Int) (*big.Int, *big.Int, *big.Int) {
	// See https://hyperelliptic.org/EFD/g1p/auto-shortw-jacobian-3.html#addition-add-2007-bl
	x3, y3, z3 := new(big.Int), new(big.Int), new(big.Int)
	if z1.Sign() == 0 {
		x3.Set(x2)
		y3.Set(y2)
		z3.Set(z2)
		return x3, y3, z3
	}
	if z2.Sign() == 0 {
		x3.Set(x1)
		y3.Set(y1)
		z3.Set(z1)
		return x3, y3, z3
	}

	z1z1 := new(big.Int).Mul(z1, z1)
	z1z1.Mod(z1z1, curve.p.P)
	z2z2 := new(big.Int).Mul(z2, z2)
	z2z2.Mod(z2z2, curve.p.P)

	u1 := new(big.Int).Mul(x1, z2z2)
	u1.Mod(u1, curve.p.P)
	u2 := new(big.Int).Mul(x2, z1z1)
	u2.Mod(u2, curve.p.P)
	h := new(big.Int).Sub(u2, u1)
	xEqual := h.Sign() == 0
	if h.Sign() == -1 {
		h.Add(h, curve.p.P)
	}
	i := new(big.Int).Lsh(h, 1)
	i.Mul(i, i)
	j := new(big.Int).Mul(h, i)

	s1 := new(big.Int).Mul(y1, z2)
	s1.Mul(s1, z2z2)
	s1.Mod(s1, curve.p.P)
	s2 := new(big.Int).Mul(y2, z1)
	s2.Mul(s2, z1z1)
	s2.Mod(s2, curve.p.P)
	r := new(big.Int).Sub(s2, s1)
	if r.Sign() == -1 {
		r.Add(r, curve.p.P)
	}
	yEqual := r.Sign() == 0
	if xEqual && yEqual {
		return curve.doubleJacobian(x1, y1, z1)
	}
	r.Lsh(r, 1)
	v := new(big.Int).Mul(u1, i)

	x3.Set(r)
	x3.Mul(x3, x3)
	x3.Sub(x3, j)
	x3.Sub(x3, v)
	x3.Sub(x3, v)
	x3.Mod(x3, curve.p.P)

	y3.Set(r)
	v.Sub(v, x3)
	y3.Mul(y3, v)
	s1.Mul(s1, j)
	s1.Lsh(s1, 1)
	y3.Sub(y3, s1)
	y3.Mod(y3, curve.p.P)

	z3.Add(z1, z2)
	z3.Mul(z3, z3)
	z3.Sub(z3, z1z1)
	z3.Sub(z3, z2z2)
	z3.Mul(z3, h)
	z3.Mod(z3, curve.p.P)

	return x3, y3, z3
}

// Double returns 2*p.
func (curve *GenericCurve) Double(p Point) Point {
	x1, y1 := p.coords()
	z1 := zForAffine(x1, y1)
	return curve.affineFromJacobian(curve.doubleJacobian(x1, y1, z1))
}

// doubleJacobian takes a point in Jacobian coordinates, (x, y, z), and
// returns its double, also in Jacobian form.
func (curve *GenericCurve) doubleJacobian(x, y, z *big.Int) (*big.Int, *big.Int, *big.Int) {
	// See https://hyperelliptic.org/EFD/g1p/auto-shortw-jacobian-3.html#doubling-dbl-2001-b
	delta := new(big.Int).Mul(z, z)
	delta.Mod(delta, curve.p.P)
	gamma := new(big.Int).Mul(y, y)
	gamma.Mod(gamma, curve.p.P)

	var alpha *big.Int
	if new(big.Int).Sub(curve.p.P, big.NewInt(3)).Cmp(curve.p.A) == 0 {
		// for a = -3, 3*x²+a*delta² = 3*(x+delta)*(x-delta)
		alpha = new(big.Int).Sub(x, delta)
		alpha2 := new(big.Int).Add(x, delta)
		alpha.Mul(alpha, alpha2)
		alpha2.Set(alpha)
		alpha.Lsh(alpha, 1)
		alpha.Add(alpha, alpha2)
	} else {
		// see https://hyperelliptic.org/EFD/g1p/auto-shortw-jacobian.html#doubling-dbl-2007-bl
		// M = 3*x²+a*zz², zz = z² = delta
		x2 := new(big.Int).Mul(x, x)
		alpha = new(big.Int).Lsh(x2, 1)
		alpha.Add(alpha, x2)
		if curve.p.A.Sign() != 0 {
			delta.Mul(delta, delta)
			delta.Mul(curve.p.A, delta)
			alpha.Add(alpha, delta)
		}
	}
	alpha.Mod(alpha, curve.p.P)

	beta4 := new(big.Int).Mul(x, gamma)
	beta4.Lsh(beta4, 2)
	beta4.Mod(beta4, curve.p.P)

	// X3 = alpha²-8*beta
	x3 := new(big.Int).Mul(alpha, alpha)
	beta8 := new(big.Int).Lsh(beta4, 1)
	x3.Sub(x3, beta8)
	x3.Mod(x3, curve.p.P)

	// Z3 = (Y1+Z1)²-gamma-delta = 2*Y1*Z1
	z3 := delta.Mul(y, z)
	z3.Lsh(z3, 1)
	z3.Mod(z3, curve.p.P)

	// Y3 = alpha*(4*beta-X3)-8*gamma²
	beta4.Sub(beta4, x3)
	y3 := alpha.Mul(alpha, beta4)
	gamma.Mul(gamma, gamma)
	gamma.Lsh(gamma, 3)
	y3.Sub(y3, gamma)
	y3.Mod(y3, curve.p.P)

	return x3, y3, z3
}

// ScalarMult returns k*p using a left-to-right double-and-add ladder over
// the bytes of k mod N.
func (curve *GenericCurve) ScalarMult(p Point, k *big.Int) Point {
	bx, by := p.coords()
	bz := zForAffine(bx, by)
	x, y, z := new(big.Int), new(big.Int), new(big.Int)

	for _, byte := range new(big.Int).Mod(k, curve.p.N).Bytes() {
		for bitNum := 0; bitNum < 8; bitNum++ {
			x, y, z = curve.doubleJacobian(x, y, z)
			if byte&0x80 == 0x80 {
				x, y, z = curve.addJacobian(bx, by, bz, x, y, z)
			}
			byte <<= 1
		}
	}

	return curve.affineFromJacobian(x, y, z)
}

// ScalarBaseMult returns k*G.
func (curve *GenericCurve) ScalarBaseMult(k *big.Int) Point {
	return curve.ScalarMult(Point{X: curve.p.Gx, Y: curve.p.Gy}, k)
}
