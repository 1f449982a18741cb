package epir

import (
	"github.com/lgtm-migrator/libepir/curve"
	"github.com/lgtm-migrator/libepir/ecelgamal"
)

// Scalar and Point are re-exported here so that callers who only need
// the wire types do not have to import the curve package directly.
type (
	Scalar = curve.Scalar
	Point  = curve.Point

	PrivKey = ecelgamal.PrivKey
	PubKey  = ecelgamal.PubKey
	Cipher  = ecelgamal.Cipher
)

// CreatePrivKey and PubkeyFromPrivkey are re-exported for callers that
// only need keygen and don't otherwise touch the ecelgamal package.
var (
	CreatePrivKey     = ecelgamal.CreatePrivKey
	PubkeyFromPrivkey = ecelgamal.PubkeyFromPrivkey
)
