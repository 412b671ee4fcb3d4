// Package bls implements a go-wrapper around a library implementing the
// BLS12-381 curve and signature scheme.
package bls

import (
	"github.com/prysmaticlabs/beacon-crawler/crypto/bls/blst"
	"github.com/prysmaticlabs/beacon-crawler/crypto/bls/common"
)

// SecretKey represents a BLS secret or private key.
type SecretKey = common.SecretKey

// PublicKey represents a BLS public key.
type PublicKey = common.PublicKey

// Signature represents a BLS signature.
type Signature = common.Signature

// SignatureAggregator combines compressed signatures into a single compressed
// signature. An empty input is an error.
type SignatureAggregator interface {
	AggregateSignatures(sigs [][]byte) ([]byte, error)
}

// Aggregator is the blst backed SignatureAggregator.
type Aggregator struct{}

// AggregateSignatures aggregates compressed signatures.
func (Aggregator) AggregateSignatures(sigs [][]byte) ([]byte, error) {
	return blst.AggregateCompressedSignatures(sigs)
}

// RandKey creates a new private key using a random input.
func RandKey() (SecretKey, error) {
	return blst.RandKey()
}

// SecretKeyFromSeed derives a secret key from input keying material.
func SecretKeyFromSeed(ikm []byte) (SecretKey, error) {
	return blst.SecretKeyFromSeed(ikm)
}

// PublicKeyFromBytes creates a BLS public key from a compressed byte slice.
func PublicKeyFromBytes(pubKey []byte) (PublicKey, error) {
	return blst.PublicKeyFromBytes(pubKey)
}

// SignatureFromBytes creates a BLS signature from a compressed byte slice.
func SignatureFromBytes(sig []byte) (Signature, error) {
	return blst.SignatureFromBytes(sig)
}

// AggregateSignatures converts a list of signatures into a single, aggregated sig.
func AggregateSignatures(sigs []common.Signature) (common.Signature, error) {
	return blst.AggregateSignatures(sigs)
}
