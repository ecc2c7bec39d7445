// Copyright (c) 2026 Multiple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ecdsa implements the Elliptic Curve Digital Signature Algorithm, as
// defined in FIPS 186-4, over any cyclic group exposing the Group capability.
//
// Signing and verification are pure functions of their arguments and the
// immutable ECDSA value, so a single ECDSA may be shared by any number of
// goroutines. All modular reductions go through package arith.
//
// The group, the message hash and the nonce source are chosen explicitly by
// the caller; there is no default group.
//
//	e, err := ecdsa.New(ecdsa.P256())
//	...
//	sig, err := e.Sign(msg, priv)
//	...
//	ok, err := e.Verify(msg, e.PublicKey(priv), sig)
package ecdsa

// Further references:
//   [SECG]: SECG, SEC1
//     http://www.secg.org/sec1-v2.pdf
//   [RFC6979]: Deterministic Usage of DSA and ECDSA
//     https://www.rfc-editor.org/rfc/rfc6979

import (
	"fmt"
	"io"
	"math/big"

	"github.com/cockroachdb/errors"
	"github.com/herczegzsolt/groupsig/arith"
)

var (
	// ErrInvalidGroup is returned by New for a missing group or one whose
	// order is smaller than 2.
	ErrInvalidGroup = errors.New("ecdsa: invalid group")

	// ErrInvalidPrivateKey is returned when a private key is outside [1, n).
	ErrInvalidPrivateKey = errors.New("ecdsa: private key out of range")

	// ErrInvalidNonce is returned when a nonce is outside [1, n).
	ErrInvalidNonce = errors.New("ecdsa: nonce out of range")

	// ErrDegenerateSignature is returned when a nonce yields r == 0 or
	// s == 0. Signing must be retried with a fresh nonce.
	ErrDegenerateSignature = errors.New("ecdsa: degenerate signature")

	// ErrTooManyAttempts is returned by Sign when every nonce it tried
	// produced a degenerate signature.
	ErrTooManyAttempts = errors.New("ecdsa: too many signing attempts")

	// ErrInvalidSignature is returned by Verify for signatures that are not
	// in the domain of the verification equation.
	ErrInvalidSignature = errors.New("ecdsa: malformed signature")

	// ErrInvalidPublicKey is returned by Verify for the point at infinity
	// and for points that the group reports to be off the curve.
	ErrInvalidPublicKey = errors.New("ecdsa: invalid public key")
)

// DefaultMaxAttempts is the number of nonces Sign tries before giving up.
const DefaultMaxAttempts = 8

var one = big.NewInt(1)

// Signature is an ECDSA signature. Both components lie in [1, n).
type Signature struct {
	R, S *big.Int
}

// Equal reports whether sig and x hold the same values.
func (sig *Signature) Equal(x *Signature) bool {
	if sig == nil || x == nil {
		return sig == x
	}
	return sig.R.Cmp(x.R) == 0 && sig.S.Cmp(x.S) == 0
}

func (sig *Signature) String() string {
	return fmt.Sprintf("r:%s,s:%s", sig.R, sig.S)
}

// ECDSA signs and verifies messages in a fixed group. It holds no mutable
// state and is safe for concurrent use.
type ECDSA struct {
	group       Group
	n           *big.Int
	hasher      Hasher
	nonces      NonceSource
	maxAttempts int
}

// An Option configures an ECDSA.
type Option func(*ECDSA)

// WithHasher selects the message hash. The default is SHA256.
func WithHasher(h Hasher) Option {
	return func(e *ECDSA) { e.hasher = h }
}

// WithNonceSource selects where Sign takes its nonces from. The default is
// RFC6979SHA256.
func WithNonceSource(ns NonceSource) Option {
	return func(e *ECDSA) { e.nonces = ns }
}

// WithMaxAttempts bounds the number of nonces Sign tries. Values below one
// are ignored.
func WithMaxAttempts(n int) Option {
	return func(e *ECDSA) {
		if n > 0 {
			e.maxAttempts = n
		}
	}
}

// New returns an ECDSA signing in group g.
func New(g Group, opts ...Option) (*ECDSA, error) {
	if g == nil {
		return nil, errors.Wrap(ErrInvalidGroup, "group is nil")
	}
	n := g.Order()
	if n == nil || n.Cmp(big.NewInt(2)) < 0 {
		return nil, errors.Wrapf(ErrInvalidGroup, "order %v", n)
	}
	e := &ECDSA{
		group:       g,
		n:           new(big.Int).Set(n),
		hasher:      SHA256,
		nonces:      RFC6979SHA256,
		maxAttempts: DefaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Group returns the group e signs in.
func (e *ECDSA) Group() Group {
	return e.group
}

// Order returns n, the order of the group.
func (e *ECDSA) Order() *big.Int {
	return new(big.Int).Set(e.n)
}

// inRange reports whether v is in [1, n).
func (e *ECDSA) inRange(v *big.Int) bool {
	return v != nil && v.Sign() > 0 && v.Cmp(e.n) < 0
}

// PublicKey returns priv*G. The private key is not validated; it is
// interpreted modulo n by the group.
func (e *ECDSA) PublicKey(priv *big.Int) Point {
	return e.group.ScalarBaseMult(priv)
}

// GenerateKey returns a private key drawn uniformly from [1, n) using rand,
// together with its public key.
func (e *ECDSA) GenerateKey(rand io.Reader) (*big.Int, Point, error) {
	priv, err := randFieldElement(e.n, rand)
	if err != nil {
		return nil, Point{}, err
	}
	return priv, e.PublicKey(priv), nil
}

// Hash returns the digest of msg in [0, n).
func (e *ECDSA) Hash(msg []byte) *big.Int {
	return e.hasher.Digest(msg, e.n)
}

// SignWithNonce signs msg with priv using the caller-supplied nonce. It
// performs a single attempt: if the nonce yields a degenerate signature the
// error wraps ErrDegenerateSignature and the caller has to pick another
// nonce.
//
// The nonce must be secret, unpredictable and never used for more than one
// message. Most callers should use Sign instead.
func (e *ECDSA) SignWithNonce(msg []byte, priv, nonce *big.Int) (*Signature, error) {
	if !e.inRange(priv) {
		return nil, errors.Wrapf(ErrInvalidPrivateKey, "must be in [1, %s)", e.n)
	}
	return e.sign(e.Hash(msg), priv, nonce)
}

// Sign signs msg with priv, drawing nonces from the configured NonceSource
// until a non-degenerate signature is found or the attempt limit is reached.
func (e *ECDSA) Sign(msg []byte, priv *big.Int) (*Signature, error) {
	if !e.inRange(priv) {
		return nil, errors.Wrapf(ErrInvalidPrivateKey, "must be in [1, %s)", e.n)
	}
	z := e.Hash(msg)

	var err error
	for attempt := 0; attempt < e.maxAttempts; attempt++ {
		var k *big.Int
		if k, err = e.nonces.Nonce(priv, z, e.n, attempt); err != nil {
			return nil, errors.Wrap(err, "generating nonce")
		}
		var sig *Signature
		if sig, err = e.sign(z, priv, k); err == nil {
			return sig, nil
		}
		if !errors.Is(err, ErrDegenerateSignature) {
			return nil, err
		}
	}
	return nil, errors.Mark(errors.Wrapf(err, "giving up after %d attempts", e.maxAttempts), ErrTooManyAttempts)
}

// sign computes
//
//	r = (k*G).x mod n
//	s = (z + r*priv) / k mod n
func (e *ECDSA) sign(z, priv, k *big.Int) (*Signature, error) {
	n := e.n
	if !e.inRange(k) {
		return nil, errors.Wrapf(ErrInvalidNonce, "must be in [1, %s)", n)
	}

	x, _ := e.group.ScalarBaseMult(k).coords()
	r := arith.Mod(x, n)
	if r.Sign() == 0 {
		return nil, errors.Wrap(ErrDegenerateSignature, "r is zero")
	}

	kInv, err := arith.ModDiv(one, k, n)
	if err != nil {
		return nil, errors.Wrap(err, "inverting nonce")
	}
	s := arith.ModMul(arith.ModAdd(z, arith.ModMul(r, priv, n), n), kInv, n)
	if s.Sign() == 0 {
		return nil, errors.Wrap(ErrDegenerateSignature, "s is zero")
	}
	return &Signature{R: r, S: s}, nil
}

// curveChecker is implemented by groups able to tell whether a point
// belongs to them.
type curveChecker interface {
	IsOnCurve(p Point) bool
}

// Verify reports whether sig is a valid signature of msg by pub.
//
// A well-formed signature that does not match yields false and a nil error.
// A signature outside the domain of the verification equation (missing
// components, r or s outside [1, n)) or an unusable public key (missing
// coordinates, the point at infinity, off the curve) yields false
// and an error wrapping ErrInvalidSignature or ErrInvalidPublicKey.
func (e *ECDSA) Verify(msg []byte, pub Point, sig *Signature) (bool, error) {
	n := e.n
	if sig == nil || sig.R == nil || sig.S == nil {
		return false, errors.Wrap(ErrInvalidSignature, "missing component")
	}
	if !e.inRange(sig.R) || !e.inRange(sig.S) {
		return false, errors.Wrapf(ErrInvalidSignature, "r and s must be in [1, %s)", n)
	}
	if pub.X == nil || pub.Y == nil {
		return false, errors.Wrap(ErrInvalidPublicKey, "missing coordinate")
	}
	if pub.IsInfinity() {
		return false, errors.Wrap(ErrInvalidPublicKey, "point at infinity")
	}
	if c, ok := e.group.(curveChecker); ok && !c.IsOnCurve(pub) {
		return false, errors.Wrapf(ErrInvalidPublicKey, "%s is not on the curve", pub)
	}

	// SEC 1, Version 2.0, Section 4.1.4
	z := e.Hash(msg)
	w, err := arith.ModDiv(one, sig.S, n)
	if err != nil {
		return false, errors.Wrap(err, "inverting s")
	}
	u1 := arith.ModMul(z, w, n)
	u2 := arith.ModMul(sig.R, w, n)

	p := e.group.Add(e.group.ScalarBaseMult(u1), e.group.ScalarMult(pub, u2))
	if p.IsInfinity() {
		return false, nil
	}
	return arith.Mod(p.X, n).Cmp(sig.R) == 0, nil
}
