package common

// ZeroSecretKey represents a zero secret key.
var ZeroSecretKey = [32]byte{}

// InfinitePublicKey represents an infinite public key (G1 Point at Infinity).
var InfinitePublicKey = [48]byte{0xC0}

// InfiniteSignature represents an infinite signature (G2 Point at Infinity).
var InfiniteSignature = [96]byte{0xC0}

// SignatureLength is the length of a compressed BLS signature.
const SignatureLength = 96

// PublicKeyLength is the length of a compressed BLS public key.
const PublicKeyLength = 48
