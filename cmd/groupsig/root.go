// Copyright (c) 2026 Multiple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/cockroachdb/errors"
	"github.com/herczegzsolt/groupsig/arith"
	"github.com/herczegzsolt/groupsig/ecdsa"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func newRootCmd() *cobra.Command {
	cliCtx := defaultContext()

	root := &cobra.Command{
		Use:   "groupsig",
		Short: "ECDSA over a selectable group",
		Long: `
Sign and verify messages with ECDSA over a selectable group, and evaluate the
modular arithmetic the scheme is built on.

Integers are decimal or 0x-prefixed hexadecimal. Messages are taken verbatim
unless --hex is given.
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !cliCtx.verbose {
				return nil
			}
			log, err := zap.NewDevelopment()
			if err != nil {
				return errors.Wrap(err, "creating logger")
			}
			cliCtx.log = log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = cliCtx.log.Sync()
		},
	}

	addSchemeFlags(root.PersistentFlags(), cliCtx)

	root.AddCommand(
		curvesCmd(),
		keygenCmd(cliCtx),
		pubkeyCmd(cliCtx),
		signCmd(cliCtx),
		verifyCmd(cliCtx),
		xgcdCmd(),
		inverseCmd(),
		divCmd(),
	)
	return root
}

// addSchemeFlags registers the flags that select the group, hash and nonce
// source.
func addSchemeFlags(f *pflag.FlagSet, cliCtx *cliContext) {
	f.StringVar(&cliCtx.curve, "curve", cliCtx.curve, "group to operate in (see 'groupsig curves')")
	f.StringVar(&cliCtx.hash, "hash", cliCtx.hash, "message hash: identity, sha256 or sha3-256")
	f.StringVar(&cliCtx.nonce, "nonce", "", "sign with this fixed nonce instead of RFC 6979")
	f.BoolVar(&cliCtx.random, "random", false, "sign with nonces drawn from crypto/rand instead of RFC 6979")
	f.BoolVar(&cliCtx.hexMessage, "hex", false, "messages are hex encoded")
	f.IntVar(&cliCtx.maxAttempts, "max-attempts", cliCtx.maxAttempts, "nonces to try before signing gives up")
	f.BoolVarP(&cliCtx.verbose, "verbose", "v", false, "log diagnostics to stderr")
}

func curvesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "curves",
		Short: "list the available groups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range groupNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func keygenCmd(cliCtx *cliContext) *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "generate a private key and print it with its public key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := cliCtx.scheme()
			if err != nil {
				return err
			}
			priv, pub, err := e.GenerateKey(rand.Reader)
			if err != nil {
				return errors.Wrap(err, "generating key")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "private: %s\npublic: %s %s\n", priv, pub.X, pub.Y)
			return nil
		},
	}
}

func pubkeyCmd(cliCtx *cliContext) *cobra.Command {
	return &cobra.Command{
		Use:   "pubkey <private-key>",
		Short: "print the public key of a private key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := cliCtx.scheme()
			if err != nil {
				return err
			}
			priv, err := parseInt("private key", args[0])
			if err != nil {
				return err
			}
			pub := e.PublicKey(priv)
			if pub.IsInfinity() {
				fmt.Fprintln(cmd.OutOrStdout(), pub)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", pub.X, pub.Y)
			return nil
		},
	}
}

func signCmd(cliCtx *cliContext) *cobra.Command {
	return &cobra.Command{
		Use:   "sign <private-key> <message>",
		Short: "sign a message",
		Long: `
Sign a message and print the signature as r:<r>,s:<s>.

Nonces come from RFC 6979 unless --nonce or --random is given. A degenerate
signature is retried with the next nonce, up to --max-attempts times.
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := cliCtx.scheme()
			if err != nil {
				return err
			}
			priv, err := parseInt("private key", args[0])
			if err != nil {
				return err
			}
			msg, err := cliCtx.message(args[1])
			if err != nil {
				return err
			}
			sig, err := e.Sign(msg, priv)
			if err != nil {
				if errors.Is(err, ecdsa.ErrInvalidPrivateKey) {
					err = errors.WithHintf(err, "the private key must lie in [1, %s)", e.Order())
				}
				return errors.Wrap(err, "signing")
			}
			cliCtx.log.Debug("signed", zap.Stringer("digest", e.Hash(msg)), zap.Stringer("signature", sig))
			fmt.Fprintln(cmd.OutOrStdout(), sig)
			return nil
		},
	}
}

func verifyCmd(cliCtx *cliContext) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <public-x> <public-y> <r> <s> <message>",
		Short: "verify a signature and print true or false",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := cliCtx.scheme()
			if err != nil {
				return err
			}
			names := []string{"public key x", "public key y", "r", "s"}
			vals := make([]*big.Int, len(names))
			for i, name := range names {
				if vals[i], err = parseInt(name, args[i]); err != nil {
					return err
				}
			}
			msg, err := cliCtx.message(args[4])
			if err != nil {
				return err
			}
			pub := ecdsa.Point{X: vals[0], Y: vals[1]}
			ok, err := e.Verify(msg, pub, &ecdsa.Signature{R: vals[2], S: vals[3]})
			if err != nil {
				return errors.Wrap(err, "verifying")
			}
			cliCtx.log.Debug("verified", zap.Stringer("digest", e.Hash(msg)), zap.Bool("valid", ok))
			fmt.Fprintln(cmd.OutOrStdout(), ok)
			return nil
		},
	}
}

func xgcdCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "xgcd <a> <b>",
		Short: "print g, x and y with g = gcd(a, b) = a*x + b*y",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := parsePair(args)
			if err != nil {
				return err
			}
			g, x, y := arith.XGCD(a, b)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", g, x, y)
			return nil
		},
	}
}

func inverseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inverse <b> <m>",
		Short: "print the inverse of b modulo m",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, m, err := parsePair(args)
			if err != nil {
				return err
			}
			inv, err := arith.ModInverse(b, m)
			if err != nil {
				return modError(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), inv)
			return nil
		},
	}
}

func divCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "div <a> <b> <m>",
		Short: "print a divided by b modulo m",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseInt("a", args[0])
			if err != nil {
				return err
			}
			b, m, err := parsePair(args[1:])
			if err != nil {
				return err
			}
			q, err := arith.ModDiv(a, b, m)
			if err != nil {
				return modError(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), q)
			return nil
		},
	}
}

func parsePair(args []string) (*big.Int, *big.Int, error) {
	vals := make([]*big.Int, 2)
	for i := range vals {
		v, err := parseInt(fmt.Sprintf("argument %d", i+1), args[i])
		if err != nil {
			return nil, nil, err
		}
		vals[i] = v
	}
	return vals[0], vals[1], nil
}

func modError(err error) error {
	switch {
	case errors.Is(err, arith.ErrInvalidModulus):
		return errors.WithHint(err, "the modulus must be at least 2")
	case errors.Is(err, arith.ErrNotInvertible):
		return errors.WithHint(err, "b must be coprime to the modulus")
	}
	return err
}
