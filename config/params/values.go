package params

const (
	Mainnet ConfigName = iota
	Minimal
)

// ConfigNames provides network configuration names.
var ConfigNames = map[ConfigName]string{
	Mainnet: "mainnet",
	Minimal: "minimal",
}

// ConfigName enum describes the type of known network in use.
type ConfigName int

func (n ConfigName) String() string {
	s, ok := ConfigNames[n]
	if !ok {
		return "undefined"
	}
	return s
}

// ByName returns the configuration registered under the given network name.
func ByName(name string) (*BeaconChainConfig, bool) {
	switch name {
	case Mainnet.String():
		return MainnetConfig(), true
	case Minimal.String():
		return MinimalSpecConfig(), true
	default:
		return nil, false
	}
}

var mainnetBeaconConfig = &BeaconChainConfig{
	ConfigName:     Mainnet.String(),
	PresetBase:     "mainnet",
	GenesisTime:    1606824023,
	SecondsPerSlot: 12,
	SlotsPerEpoch:  32,

	SyncCommitteeSize:        512,
	SyncCommitteeSubnetCount: 4,

	BLSSignatureLength: 96,
	BLSPubkeyLength:    48,

	MaxInvalidBlockRoots:                500,
	PendingBlockHistoricalSlotTolerance: 320,
	PendingBlockFutureSlotTolerance:     64,
	FetchRequestTTLSeconds:              12,

	ContributionRetentionSlots: 8192,
}

// MainnetConfig returns the configuration to be used in the main network.
func MainnetConfig() *BeaconChainConfig {
	return mainnetBeaconConfig.Copy()
}

// MinimalSpecConfig retrieves the minimal preset used by tests and local runs.
func MinimalSpecConfig() *BeaconChainConfig {
	minimalConfig := mainnetBeaconConfig.Copy()
	minimalConfig.ConfigName = Minimal.String()
	minimalConfig.PresetBase = "minimal"
	minimalConfig.SecondsPerSlot = 6
	minimalConfig.SlotsPerEpoch = 8
	minimalConfig.SyncCommitteeSize = 32
	minimalConfig.PendingBlockHistoricalSlotTolerance = 80
	minimalConfig.PendingBlockFutureSlotTolerance = 16
	minimalConfig.ContributionRetentionSlots = 512
	return minimalConfig
}
