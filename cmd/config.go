package cmd

import (
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/beacon-crawler/config/params"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var log = logrus.WithField("prefix", "cmd")

// ConfigureBeaconChain applies the chain config selected on the command line.
// A chain config file takes precedence over the minimal preset.
func ConfigureBeaconChain(ctx *cli.Context) error {
	if ctx.Bool(MinimalConfigFlag.Name) {
		log.Warn("Using minimal config")
		params.OverrideBeaconConfig(params.MinimalSpecConfig())
	}
	if ctx.IsSet(ChainConfigFileFlag.Name) {
		if err := params.LoadChainConfigFile(ctx.String(ChainConfigFileFlag.Name)); err != nil {
			return errors.Wrap(err, "could not load chain config file")
		}
	}
	return nil
}
