// Package flags defines the command line flags specific to the beacon crawler.
package flags

import (
	cmdflags "github.com/prysmaticlabs/beacon-crawler/cmd/flags"
	"github.com/prysmaticlabs/beacon-crawler/shared/aggregation/synccontribution"
	"github.com/urfave/cli/v2"
)

var (
	// MonitoringPortFlag defines the http port used to serve prometheus metrics.
	MonitoringPortFlag = &cli.IntFlag{
		Name:  "monitoring-port",
		Usage: "Port used to listening and respond metrics for prometheus.",
		Value: 8080,
	}
	// GenesisTimeFlag overrides the genesis time of the active chain config.
	GenesisTimeFlag = &cli.Uint64Flag{
		Name:  "genesis-time",
		Usage: "Unix time in seconds of the chain genesis. Overrides the chain config value.",
	}
	// AggregationStrategyFlag selects how sync committee contributions are combined.
	AggregationStrategyFlag = cmdflags.EnumValue{
		Name:        "sync-aggregation-strategy",
		Usage:       "Strategy used to select non-overlapping sync committee contributions.",
		Value:       string(synccontribution.GreedyAggregation),
		Enum:        []string{string(synccontribution.GreedyAggregation), string(synccontribution.MaxCoverAggregation)},
		Destination: new(string),
	}.GenericFlag()
	// MaxInvalidBlockRootsFlag bounds the registry of block roots known to be invalid.
	MaxInvalidBlockRootsFlag = &cli.IntFlag{
		Name:  "max-invalid-block-roots",
		Usage: "Number of invalid block roots remembered before the oldest are forgotten.",
	}
)
