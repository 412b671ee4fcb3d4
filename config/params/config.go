// Package params defines important constants that are essential to the crawler's services.
package params

import (
	"time"

	"github.com/prysmaticlabs/beacon-crawler/consensus-types/primitives"
)

// BeaconChainConfig contains constant configs for node to participate in beacon chain.
type BeaconChainConfig struct {
	ConfigName     string `yaml:"CONFIG_NAME"`
	PresetBase     string `yaml:"PRESET_BASE"`
	GenesisTime    uint64 `yaml:"MIN_GENESIS_TIME"`
	SecondsPerSlot uint64 `yaml:"SECONDS_PER_SLOT"`
	// SlotsPerEpoch is the number of slots in an epoch.
	SlotsPerEpoch primitives.Slot `yaml:"SLOTS_PER_EPOCH"`

	// Sync committee values.
	SyncCommitteeSize        uint64 `yaml:"SYNC_COMMITTEE_SIZE"`
	SyncCommitteeSubnetCount uint64 `yaml:"SYNC_COMMITTEE_SUBNET_COUNT"`

	// BLS values.
	BLSSignatureLength int `yaml:"BLS_SIGNATURE_LENGTH"`
	BLSPubkeyLength    int `yaml:"BLS_PUBKEY_LENGTH"`

	// Block import values.
	MaxInvalidBlockRoots                int             `yaml:"MAX_INVALID_BLOCK_ROOTS"`
	PendingBlockHistoricalSlotTolerance primitives.Slot `yaml:"PENDING_BLOCK_HISTORICAL_SLOT_TOLERANCE"`
	PendingBlockFutureSlotTolerance     primitives.Slot `yaml:"PENDING_BLOCK_FUTURE_SLOT_TOLERANCE"`
	FetchRequestTTLSeconds              uint64          `yaml:"FETCH_REQUEST_TTL_SECONDS"`

	// ContributionRetentionSlots is how far back from the current slot
	// stored sync contributions are kept before pruning.
	ContributionRetentionSlots primitives.Slot `yaml:"CONTRIBUTION_RETENTION_SLOTS"`
}

// SyncSubcommitteeSize returns the number of validators in each sync committee subnet.
func (b *BeaconChainConfig) SyncSubcommitteeSize() uint64 {
	if b.SyncCommitteeSubnetCount == 0 {
		return 0
	}
	return b.SyncCommitteeSize / b.SyncCommitteeSubnetCount
}

// SlotDuration returns the wall clock length of a slot.
func (b *BeaconChainConfig) SlotDuration() time.Duration {
	return time.Duration(b.SecondsPerSlot) * time.Second
}

// FetchRequestTTL returns how long an outstanding block fetch is remembered.
func (b *BeaconChainConfig) FetchRequestTTL() time.Duration {
	return time.Duration(b.FetchRequestTTLSeconds) * time.Second
}
