package blst

import (
	"bytes"
	"testing"

	"github.com/prysmaticlabs/beacon-crawler/crypto/bls/common"
	"github.com/prysmaticlabs/beacon-crawler/testing/assert"
	"github.com/prysmaticlabs/beacon-crawler/testing/require"
)

func TestSignVerify(t *testing.T) {
	priv, err := RandKey()
	require.NoError(t, err)
	pub := priv.PublicKey()
	msg := []byte("hello")
	sig := priv.Sign(msg)
	assert.Equal(t, true, sig.Verify(pub, msg), "Signature did not verify")
	assert.Equal(t, false, sig.Verify(pub, []byte("other")))
}

func TestAggregateCompressedSignatures_FastAggregateVerify(t *testing.T) {
	msg := [32]byte{'s', 'y', 'n', 'c'}
	var pubkeys []common.PublicKey
	var sigs [][]byte
	for i := 0; i < 8; i++ {
		priv, err := RandKey()
		require.NoError(t, err)
		pubkeys = append(pubkeys, priv.PublicKey())
		sigs = append(sigs, priv.Sign(msg[:]).Marshal())
	}
	agg, err := AggregateCompressedSignatures(sigs)
	require.NoError(t, err)
	require.Equal(t, common.SignatureLength, len(agg))

	aggSig, err := SignatureFromBytes(agg)
	require.NoError(t, err)
	assert.Equal(t, true, aggSig.FastAggregateVerify(pubkeys, msg), "Signature did not verify")
	assert.Equal(t, false, aggSig.FastAggregateVerify(pubkeys[1:], msg))
	assert.Equal(t, false, aggSig.FastAggregateVerify(nil, msg))
}

func TestAggregateCompressedSignatures_Empty(t *testing.T) {
	_, err := AggregateCompressedSignatures(nil)
	require.ErrorIs(t, err, common.ErrEmptySignatures)
}

func TestAggregateCompressedSignatures_Garbage(t *testing.T) {
	_, err := AggregateCompressedSignatures([][]byte{bytes.Repeat([]byte{0x01}, 96)})
	require.NotNil(t, err)
}

func TestAggregateSignatures_MatchesCompressed(t *testing.T) {
	msg := []byte("slot-root")
	var sigs []common.Signature
	var raw [][]byte
	for i := 0; i < 3; i++ {
		priv, err := RandKey()
		require.NoError(t, err)
		s := priv.Sign(msg)
		sigs = append(sigs, s)
		raw = append(raw, s.Marshal())
	}
	agg, err := AggregateSignatures(sigs)
	require.NoError(t, err)
	aggRaw, err := AggregateCompressedSignatures(raw)
	require.NoError(t, err)
	assert.Equal(t, aggRaw, agg.Marshal())

	_, err = AggregateSignatures(nil)
	require.ErrorIs(t, err, common.ErrEmptySignatures)
}

func TestSignatureFromBytes(t *testing.T) {
	_, err := SignatureFromBytes([]byte{1, 2})
	require.ErrorContains(t, "signature must be 96 bytes", err)
	_, err = SignatureFromBytes(bytes.Repeat([]byte{0xff}, 96))
	require.NotNil(t, err)
}

func TestPublicKeyFromBytes(t *testing.T) {
	priv, err := RandKey()
	require.NoError(t, err)
	pub, err := PublicKeyFromBytes(priv.PublicKey().Marshal())
	require.NoError(t, err)
	assert.Equal(t, true, pub.Equals(priv.PublicKey()))

	_, err = PublicKeyFromBytes(common.InfinitePublicKey[:])
	require.ErrorIs(t, err, common.ErrInfinitePubKey)
	_, err = PublicKeyFromBytes([]byte{1})
	require.NotNil(t, err)
}

func TestSecretKeyFromSeed(t *testing.T) {
	seed := bytes.Repeat([]byte{7}, 32)
	k1, err := SecretKeyFromSeed(seed)
	require.NoError(t, err)
	k2, err := SecretKeyFromSeed(seed)
	require.NoError(t, err)
	assert.Equal(t, k1.Marshal(), k2.Marshal())

	_, err = SecretKeyFromSeed([]byte{1})
	require.ErrorIs(t, err, common.ErrSecretUnmarshal)
	assert.Equal(t, true, IsZero(make([]byte, 32)))
}
