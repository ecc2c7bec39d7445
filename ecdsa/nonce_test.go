// Copyright (c) 2026 Multiple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ecdsa

import (
	"bytes"
	"crypto/sha256"
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRFC6979P256Vector(t *testing.T) {
	// RFC 6979, Appendix A.2.5, SHA-256, message "sample".
	n := P256().Order()
	x := hexInt("C9AFA9D845BA75166B5C215767B1D6934E50C3DB36E89B127B8A622B120F6721")
	z := SHA256.Digest([]byte("sample"), n)

	k, err := RFC6979SHA256.Nonce(x, z, n, 0)
	require.NoError(t, err)
	assert.Equal(t, "a6e3c57dd01abe90086538398355dd4c3b17aa873382b0f24d6129493d8aad60", k.Text(16))

	// The standard library hash produces the same stream.
	k2, err := RFC6979(sha256.New).Nonce(x, z, n, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, k.Cmp(k2))
}

func TestRFC6979Attempts(t *testing.T) {
	n := Toy97().Order()
	priv, z := big.NewInt(5), big.NewInt(10)

	k0, err := RFC6979SHA256.Nonce(priv, z, n, 0)
	require.NoError(t, err)
	k1, err := RFC6979SHA256.Nonce(priv, z, n, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(78), k0.Int64())
	assert.Equal(t, int64(45), k1.Int64())

	again, err := RFC6979SHA256.Nonce(priv, z, n, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, k0.Cmp(again), "nonces are deterministic")

	other, err := RFC6979SHA256.Nonce(priv, big.NewInt(11), n, 0)
	require.NoError(t, err)
	assert.NotEqual(t, 0, k0.Cmp(other), "different digests give different nonces")
}

func TestRandomNonces(t *testing.T) {
	n := Toy97().Order()
	src := RandomNonces(rand.NewChaCha8([32]byte{1}))
	seen := map[int64]bool{}
	for i := 0; i < 2000; i++ {
		k, err := src.Nonce(nil, nil, n, 0)
		require.NoError(t, err)
		require.True(t, k.Sign() > 0 && k.Cmp(n) < 0, "nonce %s out of range", k)
		seen[k.Int64()] = true
	}
	assert.Len(t, seen, 78, "every nonzero residue is eventually drawn")
}

func TestRandomNoncesShortRead(t *testing.T) {
	src := RandomNonces(bytes.NewReader(nil))
	_, err := src.Nonce(nil, nil, P256().Order(), 0)
	assert.Error(t, err)
}

func TestFixedNonces(t *testing.T) {
	src := FixedNonces(big.NewInt(7), big.NewInt(3))
	k, err := src.Nonce(nil, nil, nil, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(7), k.Int64())

	k, err = src.Nonce(nil, nil, nil, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), k.Int64())

	_, err = src.Nonce(nil, nil, nil, 2)
	assert.True(t, errors.Is(err, ErrNoncesExhausted))
}
