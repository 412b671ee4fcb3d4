package params

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// LoadChainConfigFile loads a yaml chain config over the mainnet (or minimal,
// when the file declares that preset) defaults and applies it as the active
// beacon chain config.
func LoadChainConfigFile(chainConfigFileName string) error {
	yamlFile, err := os.ReadFile(chainConfigFileName) // #nosec G304
	if err != nil {
		return errors.Wrap(err, "could not read chain config file")
	}
	conf, err := UnmarshalConfig(yamlFile)
	if err != nil {
		return err
	}
	log.Debugf("Config file values: %+v", conf)
	OverrideBeaconConfig(conf)
	return nil
}

// UnmarshalConfig decodes a yaml chain config into a copy of the matching preset.
func UnmarshalConfig(yamlFile []byte) (*BeaconChainConfig, error) {
	// Default to using mainnet.
	conf := MainnetConfig()
	// To track if config name is defined inside config file.
	hasConfigName := false
	for _, line := range strings.Split(string(yamlFile), "\n") {
		if strings.HasPrefix(line, "CONFIG_NAME") {
			hasConfigName = true
		}
		if strings.HasPrefix(line, "PRESET_BASE: 'minimal'") ||
			strings.HasPrefix(line, `PRESET_BASE: "minimal"`) ||
			strings.HasPrefix(line, "PRESET_BASE: minimal") {
			conf = MinimalSpecConfig()
		}
	}
	if err := yaml.UnmarshalStrict(yamlFile, conf); err != nil {
		if _, ok := err.(*yaml.TypeError); !ok {
			return nil, errors.Wrap(err, "failed to parse chain config yaml file")
		}
		log.WithError(err).Error("There were some issues parsing the config from a yaml file")
	}
	if !hasConfigName {
		conf.ConfigName = "devnet"
	}
	return conf, nil
}

// ConfigToYaml takes a provided config and outputs its contents
// in yaml.
func ConfigToYaml(cfg *BeaconChainConfig) []byte {
	lines := []string{}
	lines = append(lines, fmt.Sprintf("PRESET_BASE: '%s'", cfg.PresetBase))
	lines = append(lines, fmt.Sprintf("CONFIG_NAME: '%s'", cfg.ConfigName))
	lines = append(lines, fmt.Sprintf("MIN_GENESIS_TIME: %d", cfg.GenesisTime))
	lines = append(lines, fmt.Sprintf("SECONDS_PER_SLOT: %d", cfg.SecondsPerSlot))
	lines = append(lines, fmt.Sprintf("SLOTS_PER_EPOCH: %d", cfg.SlotsPerEpoch))
	lines = append(lines, fmt.Sprintf("SYNC_COMMITTEE_SIZE: %d", cfg.SyncCommitteeSize))
	lines = append(lines, fmt.Sprintf("SYNC_COMMITTEE_SUBNET_COUNT: %d", cfg.SyncCommitteeSubnetCount))
	lines = append(lines, fmt.Sprintf("BLS_SIGNATURE_LENGTH: %d", cfg.BLSSignatureLength))
	lines = append(lines, fmt.Sprintf("BLS_PUBKEY_LENGTH: %d", cfg.BLSPubkeyLength))
	lines = append(lines, fmt.Sprintf("MAX_INVALID_BLOCK_ROOTS: %d", cfg.MaxInvalidBlockRoots))
	lines = append(lines, fmt.Sprintf("PENDING_BLOCK_HISTORICAL_SLOT_TOLERANCE: %d", cfg.PendingBlockHistoricalSlotTolerance))
	lines = append(lines, fmt.Sprintf("PENDING_BLOCK_FUTURE_SLOT_TOLERANCE: %d", cfg.PendingBlockFutureSlotTolerance))
	lines = append(lines, fmt.Sprintf("FETCH_REQUEST_TTL_SECONDS: %d", cfg.FetchRequestTTLSeconds))
	lines = append(lines, fmt.Sprintf("CONTRIBUTION_RETENTION_SLOTS: %d", cfg.ContributionRetentionSlots))

	yamlFile := []byte(strings.Join(lines, "\n"))
	return yamlFile
}
