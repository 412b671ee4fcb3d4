package blst

import (
	"bytes"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/beacon-crawler/crypto/bls/common"
)

// PublicKey used in the BLS signature scheme.
type PublicKey struct {
	p *blstPublicKey
}

// PublicKeyFromBytes creates a BLS public key from a BigEndian byte slice.
func PublicKeyFromBytes(pubKey []byte) (common.PublicKey, error) {
	if len(pubKey) != common.PublicKeyLength {
		return nil, errors.Errorf("public key must be %d bytes", common.PublicKeyLength)
	}
	p := new(blstPublicKey).Uncompress(pubKey)
	if p == nil {
		return nil, errors.New("could not unmarshal bytes into public key")
	}
	if !p.KeyValidate() {
		return nil, common.ErrInfinitePubKey
	}
	return &PublicKey{p: p}, nil
}

// Marshal a public key into a LittleEndian byte slice.
func (p *PublicKey) Marshal() []byte {
	return p.p.Compress()
}

// Equals checks if the provided public key is equal to
// the current one.
func (p *PublicKey) Equals(p2 common.PublicKey) bool {
	return bytes.Equal(p.Marshal(), p2.Marshal())
}
