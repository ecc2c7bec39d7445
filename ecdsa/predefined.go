package ecdsa

import (
	"fmt"
	"math/big"
	"sort"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
)

var initonce sync.Once
var toy97 *GenericCurve
var p224 *GenericCurve
var p256 *GenericCurve
var p384 *GenericCurve
var p521 *GenericCurve
var p256k1 *GenericCurve

func initAll() {
	toy97 = mustCurve(initToy97())
	p224 = mustCurve(initP224())
	p256 = mustCurve(initP256())
	p384 = mustCurve(initP384())
	p521 = mustCurve(initP521())
	p256k1 = mustCurve(initSecp256k1())
}

func mustCurve(params CurveParams) *GenericCurve {
	c, err := NewCurve(params)
	if err != nil {
		panic(fmt.Sprintf("ecdsa: predefined curve %s: %v", params.Name, err))
	}
	return c
}

func hexInt(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("ecdsa: bad hex constant " + s)
	}
	return v
}

func decInt(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("ecdsa: bad decimal constant " + s)
	}
	return v
}

func initToy97() CurveParams {
	// y² = x³ + 7 over F₉₇ has 79 points including ∞, so every point other
	// than ∞ generates the whole group.
	return CurveParams{
		Name:    "toy-97",
		P:       big.NewInt(97),
		N:       big.NewInt(79),
		A:       big.NewInt(0),
		B:       big.NewInt(7),
		Gx:      big.NewInt(1),
		Gy:      big.NewInt(28),
		BitSize: 7,
	}
}

// Toy97 returns the curve y² = x³ + 7 over the field of 97 elements, with
// generator (1, 28) of order 79. The CurveParams.Name of this curve is
// "toy-97".
//
// The group is small enough to enumerate by hand, which makes it useful for
// worked examples and tests. It provides no security whatsoever: distinct
// messages collide after reduction modulo 79 and private keys can be found
// by exhaustive search.
func Toy97() *GenericCurve {
	initonce.Do(initAll)
	return toy97
}

func initP224() CurveParams {
	return CurveParams{
		Name:    "P-224",
		P:       decInt("26959946667150639794667015087019630673557916260026308143510066298881"),
		N:       decInt("26959946667150639794667015087019625940457807714424391721682722368061"),
		B:       hexInt("b4050a850c04b3abf54132565044b0b7d7bfd8ba270b39432355ffb4"),
		Gx:      hexInt("b70e0cbd6bb4bf7f321390b94a03c1d356c21122343280d6115c1d21"),
		Gy:      hexInt("bd376388b5f723fb4c22dfe6cd4375a05a07476444d5819985007e34"),
		A:       big.NewInt(-3),
		BitSize: 224,
	}
}

// P224 returns NIST P-224 (secp224r1), named "P-224". See FIPS 186-3 D.2.2.
func P224() *GenericCurve {
	initonce.Do(initAll)
	return p224
}

func initP256() CurveParams {
	return CurveParams{
		Name:    "P-256",
		P:       decInt("115792089210356248762697446949407573530086143415290314195533631308867097853951"),
		N:       decInt("115792089210356248762697446949407573529996955224135760342422259061068512044369"),
		B:       hexInt("5ac635d8aa3a93e7b3ebbd55769886bc651d06b0cc53b0f63bce3c3e27d2604b"),
		Gx:      hexInt("6b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296"),
		Gy:      hexInt("4fe342e2fe1a7f9b8ee7eb4a7c0f9e162bce33576b315ececbb6406837bf51f5"),
		A:       big.NewInt(-3),
		BitSize: 256,
	}
}

// P256 returns NIST P-256 (secp256r1, prime256v1), named "P-256". See
// FIPS 186-3 D.2.3. The same value is returned on every call.
func P256() *GenericCurve {
	initonce.Do(initAll)
	return p256
}

func initP384() CurveParams {
	// FIPS 186-3, D.2.4
	return CurveParams{
		Name:    "P-384",
		P:       decInt("39402006196394479212279040100143613805079739270465446667948293404245721771496870329047266088258938001861606973112319"),
		N:       decInt("39402006196394479212279040100143613805079739270465446667946905279627659399113263569398956308152294913554433653942643"),
		B:       hexInt("b3312fa7e23ee7e4988e056be3f82d19181d9c6efe8141120314088f5013875ac656398d8a2ed19d2a85c8edd3ec2aef"),
		Gx:      hexInt("aa87ca22be8b05378eb1c71ef320ad746e1d3b628ba79b9859f741e082542a385502f25dbf55296c3a545e3872760ab7"),
		Gy:      hexInt("3617de4a96262c6f5d9e98bf9292dc29f8f41dbd289a147ce9da3113b5f0b8c00a60b1ce1d7e819d7a431d7c90ea0e5f"),
		A:       big.NewInt(-3),
		BitSize: 384,
	}
}

// P384 returns NIST P-384 (secp384r1), named "P-384".
func P384() *GenericCurve {
	initonce.Do(initAll)
	return p384
}

func initP521() CurveParams {
	// FIPS 186-3, D.2.5
	return CurveParams{
		Name:    "P-521",
		P:       decInt("6864797660130609714981900799081393217269435300143305409394463459185543183397656052122559640661454554977296311391480858037121987999716643812574028291115057151"),
		N:       decInt("6864797660130609714981900799081393217269435300143305409394463459185543183397655394245057746333217197532963996371363321113864768612440380340372808892707005449"),
		B:       hexInt("051953eb9618e1c9a1f929a21a0b68540eea2da725b99b315f3b8b489918ef109e156193951ec7e937b1652c0bd3bb1bf073573df883d2c34f1ef451fd46b503f00"),
		Gx:      hexInt("c6858e06b70404e9cd9e3ecb662395b4429c648139053fb521f828af606b4d3dbaa14b5e77efe75928fe1dc127a2ffa8de3348b3c1856a429bf97e7e31c2e5bd66"),
		Gy:      hexInt("11839296a789a3bc0045c8a5fb42c7d1bd998f54449579b446817afbd17273e662c97ee72995ef42640c550b9013fad0761353c7086a272c24088be94769fd16650"),
		A:       big.NewInt(-3),
		BitSize: 521,
	}
}

// P521 returns NIST P-521 (secp521r1), named "P-521". Arithmetic is not
// constant time.
func P521() *GenericCurve {
	initonce.Do(initAll)
	return p521
}

func initSecp256k1() CurveParams {
	// y² = x³ + 7
	return CurveParams{
		Name:    "secp256k1",
		P:       hexInt("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F"),
		N:       hexInt("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141"),
		B:       big.NewInt(7),
		Gx:      hexInt("79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798"),
		Gy:      hexInt("483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8"),
		A:       big.NewInt(0),
		BitSize: 256,
	}
}

// P256k1 returns secp256k1 from SEC 2, section 2.4.1, named "secp256k1".
// It is interchangeable with the groups in package secp256k1, which are
// faster.
func P256k1() *GenericCurve {
	initonce.Do(initAll)
	return p256k1
}

var curvesByName = map[string]func() *GenericCurve{
	"toy-97":    Toy97,
	"p-224":     P224,
	"p-256":     P256,
	"p-384":     P384,
	"p-521":     P521,
	"secp256k1": P256k1,
}

// CurveNames returns the names accepted by CurveByName, sorted.
func CurveNames() []string {
	names := make([]string, 0, len(curvesByName))
	for name := range curvesByName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CurveByName returns the predefined curve with the given name. Matching is
// case-insensitive and the dash in the NIST names is optional.
func CurveByName(name string) (*GenericCurve, error) {
	key := strings.ToLower(name)
	if strings.HasPrefix(key, "p") && !strings.HasPrefix(key, "p-") {
		key = "p-" + key[1:]
	}
	if f, ok := curvesByName[key]; ok {
		return f(), nil
	}
	return nil, errors.Newf("ecdsa: unknown curve %q (known: %s)", name, strings.Join(CurveNames(), ", "))
}
