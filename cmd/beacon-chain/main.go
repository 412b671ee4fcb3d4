// Package main defines the beacon crawler binary. The crawler follows a
// beacon chain, importing the blocks it receives and collecting the sync
// committee contributions seen for every slot.
package main

import (
	"os"

	"github.com/prysmaticlabs/beacon-crawler/beacon-chain/node"
	"github.com/prysmaticlabs/beacon-crawler/cmd"
	"github.com/prysmaticlabs/beacon-crawler/cmd/beacon-chain/flags"
	"github.com/prysmaticlabs/beacon-crawler/io/logs"
	"github.com/prysmaticlabs/beacon-crawler/monitoring/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
	_ "go.uber.org/automaxprocs"
)

var log = logrus.WithField("prefix", "main")

var appFlags = []cli.Flag{
	cmd.VerbosityFlag,
	cmd.DataDirFlag,
	cmd.ClearDB,
	cmd.ForceClearDB,
	cmd.LogFormat,
	cmd.LogFileName,
	cmd.DisableMonitoringFlag,
	cmd.MonitoringHostFlag,
	cmd.MinimalConfigFlag,
	cmd.ConfigFileFlag,
	cmd.ChainConfigFileFlag,
	flags.MonitoringPortFlag,
	flags.GenesisTimeFlag,
	flags.AggregationStrategyFlag,
	flags.MaxInvalidBlockRootsFlag,
}

func init() {
	appFlags = cmd.WrapFlags(appFlags)
}

func main() {
	app := cli.App{}
	app.Name = "beacon-crawler"
	app.Usage = "follows a beacon chain and collects its sync committee contributions"
	app.Action = startNode
	app.Flags = appFlags

	app.Before = func(ctx *cli.Context) error {
		// Load flags from config file, if specified.
		if ctx.IsSet(cmd.ConfigFileFlag.Name) {
			if err := altsrc.InitInputSourceWithContext(
				appFlags,
				altsrc.NewYamlSourceFromFlagFunc(cmd.ConfigFileFlag.Name))(ctx); err != nil {
				return err
			}
		}

		logFileName := ctx.String(cmd.LogFileName.Name)
		formatter, err := logs.Formatter(ctx.String(cmd.LogFormat.Name), logFileName != "")
		if err != nil {
			return err
		}
		logrus.SetFormatter(formatter)

		if logFileName != "" {
			if err := logs.ConfigurePersistentLogging(logFileName); err != nil {
				log.WithError(err).Error("Failed to configuring logging to disk.")
			}
		}
		logrus.AddHook(prometheus.NewLogrusCollector())
		return nil
	}

	if err := app.Run(os.Args); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func startNode(ctx *cli.Context) error {
	level, err := logrus.ParseLevel(ctx.String(cmd.VerbosityFlag.Name))
	if err != nil {
		return err
	}
	logrus.SetLevel(level)

	beacon, err := node.New(ctx)
	if err != nil {
		return err
	}
	beacon.Start()
	return nil
}
