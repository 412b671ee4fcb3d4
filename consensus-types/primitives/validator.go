package primitives

// ValidatorIndex in eth2.
type ValidatorIndex uint64

// SubcommitteeIndex identifies one sync committee subnet.
type SubcommitteeIndex uint64
