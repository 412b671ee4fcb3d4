package blst

import (
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/beacon-crawler/crypto/bls/common"
)

// Signature used in the BLS signature scheme.
type Signature struct {
	s *blstSignature
}

// SignatureFromBytes creates a BLS signature from a LittleEndian byte slice.
func SignatureFromBytes(sig []byte) (common.Signature, error) {
	if len(sig) != common.SignatureLength {
		return nil, errors.Errorf("signature must be %d bytes", common.SignatureLength)
	}
	signature := new(blstSignature).Uncompress(sig)
	if signature == nil {
		return nil, errors.New("could not unmarshal bytes into signature")
	}
	// Group check signature. Do not check for infinity since an aggregated signature
	// could be infinite.
	if !signature.SigValidate(false) {
		return nil, errors.New("signature not in group")
	}
	return &Signature{s: signature}, nil
}

// Verify a bls signature given a public key, a message.
func (s *Signature) Verify(pubKey common.PublicKey, msg []byte) bool {
	// Signature and PKs are assumed to have been validated upon decompression!
	return s.s.Verify(false, pubKey.(*PublicKey).p, false, msg, dst)
}

// FastAggregateVerify verifies all the provided public keys with their aggregated signature.
func (s *Signature) FastAggregateVerify(pubKeys []common.PublicKey, msg [32]byte) bool {
	if len(pubKeys) == 0 {
		return false
	}
	rawKeys := make([]*blstPublicKey, len(pubKeys))
	for i := 0; i < len(pubKeys); i++ {
		rawKeys[i] = pubKeys[i].(*PublicKey).p
	}
	return s.s.FastAggregateVerify(true, rawKeys, msg[:], dst)
}

// Marshal a signature into a LittleEndian byte slice.
func (s *Signature) Marshal() []byte {
	return s.s.Compress()
}

// AggregateCompressedSignatures aggregates the provided compressed signatures,
// group checking each one, into a single compressed signature.
func AggregateCompressedSignatures(multiSigs [][]byte) ([]byte, error) {
	if len(multiSigs) == 0 {
		return nil, common.ErrEmptySignatures
	}
	agg := new(blstAggregateSignature)
	if !agg.AggregateCompressed(multiSigs, true) {
		return nil, errors.New("could not aggregate compressed signatures")
	}
	return agg.ToAffine().Compress(), nil
}

// AggregateSignatures converts a list of signatures into a single, aggregated sig.
func AggregateSignatures(sigs []common.Signature) (common.Signature, error) {
	if len(sigs) == 0 {
		return nil, common.ErrEmptySignatures
	}
	rawSigs := make([]*blstSignature, len(sigs))
	for i := 0; i < len(sigs); i++ {
		rawSigs[i] = sigs[i].(*Signature).s
	}
	// Signature and PKs are assumed to have been validated upon decompression!
	signature := new(blstAggregateSignature)
	if !signature.Aggregate(rawSigs, false) {
		return nil, errors.New("could not aggregate signatures")
	}
	return &Signature{s: signature.ToAffine()}, nil
}
