// Copyright (c) 2026 Multiple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ecdsa

import (
	"math/big"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pt(x, y int64) Point {
	return Point{X: big.NewInt(x), Y: big.NewInt(y)}
}

func TestToy97GroupLaw(t *testing.T) {
	c := Toy97()
	g := c.Generator()

	assert.Equal(t, int64(79), c.Order().Int64())
	assert.True(t, c.IsOnCurve(g))

	assert.True(t, c.Double(g).Equal(pt(68, 81)), "2G = %s", c.Double(g))
	assert.True(t, c.ScalarBaseMult(big.NewInt(2)).Equal(pt(68, 81)))
	assert.True(t, c.ScalarBaseMult(big.NewInt(3)).Equal(pt(53, 38)))
	assert.True(t, c.Add(g, c.Double(g)).Equal(pt(53, 38)))
	assert.True(t, c.ScalarBaseMult(big.NewInt(5)).Equal(pt(20, 76)))
	assert.True(t, c.ScalarBaseMult(big.NewInt(78)).Equal(pt(1, 69)), "78G = -G")
	assert.True(t, c.Add(g, pt(1, 69)).IsInfinity(), "G + (-G) = ∞")
	assert.True(t, c.ScalarBaseMult(big.NewInt(0)).IsInfinity())
	assert.True(t, c.ScalarBaseMult(big.NewInt(79)).IsInfinity())
	assert.True(t, c.ScalarBaseMult(big.NewInt(-1)).Equal(pt(1, 69)), "scalars are reduced modulo n")
}

func TestToy97Exhaustive(t *testing.T) {
	c := Toy97()
	seen := map[string]bool{}
	acc := Infinity()
	for k := int64(0); k < 79; k++ {
		p := c.ScalarBaseMult(big.NewInt(k))
		require.True(t, p.Equal(acc), "%dG", k)
		require.True(t, c.IsOnCurve(p))
		require.False(t, seen[p.String()], "%dG repeats", k)
		seen[p.String()] = true
		acc = c.Add(acc, c.Generator())
	}
	assert.True(t, acc.IsInfinity())
}

func TestAddIdentity(t *testing.T) {
	for _, c := range []*GenericCurve{Toy97(), P256(), P256k1()} {
		g := c.Generator()
		assert.True(t, c.Add(g, Infinity()).Equal(g), c.Name())
		assert.True(t, c.Add(Point{}, g).Equal(g), c.Name())
		assert.True(t, c.ScalarMult(Infinity(), big.NewInt(5)).IsInfinity(), c.Name())
	}
}

func TestScalarMultDistributes(t *testing.T) {
	for _, c := range []*GenericCurve{P224(), P256(), P384(), P521(), P256k1()} {
		a, b := big.NewInt(123456789), big.NewInt(987654321)
		sum := new(big.Int).Add(a, b)
		lhs := c.ScalarBaseMult(sum)
		rhs := c.Add(c.ScalarBaseMult(a), c.ScalarBaseMult(b))
		assert.True(t, lhs.Equal(rhs), c.Name())
		assert.True(t, c.IsOnCurve(lhs), c.Name())

		prod := new(big.Int).Mul(a, b)
		assert.True(t, c.ScalarMult(c.ScalarBaseMult(a), b).Equal(c.ScalarBaseMult(prod)), c.Name())
	}
}

func TestP256KnownMultiple(t *testing.T) {
	// RFC 6979, Appendix A.2.5.
	x := hexInt("C9AFA9D845BA75166B5C215767B1D6934E50C3DB36E89B127B8A622B120F6721")
	want := Point{
		X: hexInt("60FED4BA255A9D31C961EB74C6356D68C049B8923B61FA6CE669622E60F29FB6"),
		Y: hexInt("7903FE1008B8BC99A41AE9E95628BC64F2F1B20C2D7E9F5177A3C294D4462299"),
	}
	assert.True(t, P256().ScalarBaseMult(x).Equal(want))
}

func TestNewCurveValidation(t *testing.T) {
	good := initToy97()

	c, err := NewCurve(good)
	require.NoError(t, err)
	assert.True(t, c.Equal(Toy97()))
	assert.Equal(t, 7, c.Params().BitSize)

	tests := []struct {
		name   string
		mutate func(p *CurveParams)
	}{
		{"missing field order", func(p *CurveParams) { p.P = nil }},
		{"missing generator", func(p *CurveParams) { p.Gy = nil }},
		{"tiny order", func(p *CurveParams) { p.N = big.NewInt(2) }},
		{"singular", func(p *CurveParams) { p.B = big.NewInt(0) }},
		{"generator off curve", func(p *CurveParams) { p.Gy = big.NewInt(27) }},
		{"generator at infinity", func(p *CurveParams) { p.Gx, p.Gy = big.NewInt(0), big.NewInt(0) }},
		{"wrong order", func(p *CurveParams) { p.N = big.NewInt(83) }},
		{"composite order", func(p *CurveParams) { p.N = big.NewInt(158) }},
		{"composite field", func(p *CurveParams) { p.P = big.NewInt(91) }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			params := initToy97()
			tc.mutate(&params)
			_, err := NewCurve(params)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidCurve), "got %v", err)
		})
	}
}

func TestNewCurveDoesNotAliasParams(t *testing.T) {
	params := initToy97()
	c, err := NewCurve(params)
	require.NoError(t, err)
	params.N.SetInt64(5)
	params.Gx.SetInt64(3)
	assert.Equal(t, int64(79), c.Order().Int64())
	assert.True(t, c.Generator().Equal(pt(1, 28)))
}

func TestCurveByName(t *testing.T) {
	for name, want := range map[string]*GenericCurve{
		"toy-97":    Toy97(),
		"P-256":     P256(),
		"p256":      P256(),
		"P521":      P521(),
		"secp256k1": P256k1(),
	} {
		c, err := CurveByName(name)
		require.NoError(t, err, name)
		assert.Same(t, want, c, name)
	}

	_, err := CurveByName("curve25519")
	assert.Error(t, err)
	assert.Equal(t, []string{"p-224", "p-256", "p-384", "p-521", "secp256k1", "toy-97"}, CurveNames())
}
