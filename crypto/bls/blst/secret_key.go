package blst

import (
	"crypto/rand"

	"github.com/prysmaticlabs/beacon-crawler/crypto/bls/common"
	blst "github.com/supranational/blst/bindings/go"
)

// bls12SecretKey used in the BLS signature scheme.
type bls12SecretKey struct {
	p *blst.SecretKey
}

// RandKey creates a new private key using a random method provided as an io.Reader.
func RandKey() (common.SecretKey, error) {
	// Generate 32 bytes of randomness
	var ikm [32]byte
	if _, err := rand.Read(ikm[:]); err != nil {
		return nil, err
	}
	return SecretKeyFromSeed(ikm[:])
}

// SecretKeyFromSeed derives a secret key from input keying material of at
// least 32 bytes.
func SecretKeyFromSeed(ikm []byte) (common.SecretKey, error) {
	secKey := blst.KeyGen(ikm)
	if secKey == nil {
		return nil, common.ErrSecretUnmarshal
	}
	if IsZero(secKey.Serialize()) {
		return nil, common.ErrZeroKey
	}
	return &bls12SecretKey{p: secKey}, nil
}

// PublicKey obtains the public key corresponding to the BLS secret key.
func (s *bls12SecretKey) PublicKey() common.PublicKey {
	return &PublicKey{p: new(blstPublicKey).From(s.p)}
}

// IsZero checks if the secret key is a zero key.
func IsZero(sKey []byte) bool {
	b := byte(0)
	for _, s := range sKey {
		b |= s
	}
	return b == 0
}

// Sign a message using a secret key - in a beacon/validator client.
func (s *bls12SecretKey) Sign(msg []byte) common.Signature {
	signature := new(blstSignature).Sign(s.p, msg, dst)
	return &Signature{s: signature}
}

// Marshal a secret key into a LittleEndian byte slice.
func (s *bls12SecretKey) Marshal() []byte {
	return s.p.Serialize()
}
