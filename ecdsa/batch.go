// Copyright (c) 2026 Multiple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ecdsa

import (
	"context"
	"runtime"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"
)

// BatchItem is one signature to check in VerifyBatch.
type BatchItem struct {
	Message   []byte
	PublicKey Point
	Signature *Signature
}

// VerifyBatch verifies items concurrently, using at most GOMAXPROCS
// goroutines. The i-th result reports whether items[i] is valid.
//
// Verification stops at the first item that Verify rejects with an error,
// and when ctx is cancelled. The returned error then names the offending
// item; the results are nil.
func (e *ECDSA) VerifyBatch(ctx context.Context, items []BatchItem) ([]bool, error) {
	results := make([]bool, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range items {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			ok, err := e.Verify(items[i].Message, items[i].PublicKey, items[i].Signature)
			if err != nil {
				return errors.Wrapf(err, "item %d", i)
			}
			results[i] = ok
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
