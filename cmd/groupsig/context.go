// Copyright (c) 2026 Multiple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/herczegzsolt/groupsig/ecdsa"
	"github.com/herczegzsolt/groupsig/secp256k1"
	"go.uber.org/zap"
)

// cliContext holds the values of the persistent flags.
type cliContext struct {
	curve       string
	hash        string
	nonce       string
	random      bool
	hexMessage  bool
	maxAttempts int
	verbose     bool

	log *zap.Logger
}

func defaultContext() *cliContext {
	return &cliContext{
		curve:       "secp256k1",
		hash:        "sha256",
		maxAttempts: ecdsa.DefaultMaxAttempts,
		log:         zap.NewNop(),
	}
}

// backends are groups that are not ecdsa.GenericCurve instances.
var backends = map[string]func() ecdsa.Group{
	"secp256k1-decred": func() ecdsa.Group { return secp256k1.Decred{} },
	"secp256k1-btcec":  func() ecdsa.Group { return secp256k1.NewBtcec() },
}

func groupNames() []string {
	names := ecdsa.CurveNames()
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c *cliContext) group() (ecdsa.Group, error) {
	if mk, ok := backends[strings.ToLower(c.curve)]; ok {
		return mk(), nil
	}
	curve, err := ecdsa.CurveByName(c.curve)
	if err != nil {
		return nil, errors.WithHintf(err, "available groups: %s", strings.Join(groupNames(), ", "))
	}
	return curve, nil
}

func (c *cliContext) nonceSource() (ecdsa.NonceSource, error) {
	if c.nonce != "" {
		if c.random {
			return nil, errors.WithHint(errors.New("--nonce and --random are mutually exclusive"),
				"pick a fixed nonce or random nonces, not both")
		}
		k, err := parseInt("nonce", c.nonce)
		if err != nil {
			return nil, err
		}
		return ecdsa.FixedNonces(k), nil
	}
	if c.random {
		return ecdsa.RandomNonces(rand.Reader), nil
	}
	return ecdsa.RFC6979SHA256, nil
}

// scheme builds the signature scheme selected by the flags.
func (c *cliContext) scheme() (*ecdsa.ECDSA, error) {
	g, err := c.group()
	if err != nil {
		return nil, err
	}
	h, err := ecdsa.HasherByName(c.hash)
	if err != nil {
		return nil, errors.WithHint(err, "available hashes: identity, sha256, sha3-256")
	}
	ns, err := c.nonceSource()
	if err != nil {
		return nil, err
	}
	if c.maxAttempts < 1 {
		return nil, errors.Newf("--max-attempts must be positive, got %d", c.maxAttempts)
	}
	c.log.Debug("scheme configured",
		zap.String("curve", c.curve),
		zap.String("hash", c.hash),
		zap.Bool("fixed-nonce", c.nonce != ""),
		zap.Bool("random", c.random),
		zap.Int("max-attempts", c.maxAttempts))
	return ecdsa.New(g,
		ecdsa.WithHasher(h),
		ecdsa.WithNonceSource(ns),
		ecdsa.WithMaxAttempts(c.maxAttempts))
}

func (c *cliContext) message(arg string) ([]byte, error) {
	if !c.hexMessage {
		return []byte(arg), nil
	}
	msg, err := hex.DecodeString(strings.TrimPrefix(arg, "0x"))
	if err != nil {
		return nil, errors.WithHint(errors.Wrap(err, "invalid message"),
			"with --hex the message must be an even number of hex digits")
	}
	return msg, nil
}

// parseInt accepts decimal or 0x-prefixed hexadecimal integers.
func parseInt(what, s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return nil, errors.WithHint(errors.Newf("invalid %s %q", what, s),
			"integers are decimal or 0x-prefixed hexadecimal")
	}
	return v, nil
}
