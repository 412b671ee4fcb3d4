// Package node is the main service which launches the beacon crawler and manages
// the lifecycle of all its associated services at runtime, such as the block
// import coordinator, the chain store and monitoring, gracefully closing them
// if the process ends.
package node

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/beacon-crawler/beacon-chain/blockchain"
	"github.com/prysmaticlabs/beacon-crawler/beacon-chain/db"
	"github.com/prysmaticlabs/beacon-crawler/beacon-chain/operations/synccommittee"
	"github.com/prysmaticlabs/beacon-crawler/beacon-chain/rpc/crawler"
	regularsync "github.com/prysmaticlabs/beacon-crawler/beacon-chain/sync"
	"github.com/prysmaticlabs/beacon-crawler/cmd"
	"github.com/prysmaticlabs/beacon-crawler/cmd/beacon-chain/flags"
	"github.com/prysmaticlabs/beacon-crawler/config/params"
	"github.com/prysmaticlabs/beacon-crawler/consensus-types/blocks"
	"github.com/prysmaticlabs/beacon-crawler/consensus-types/primitives"
	"github.com/prysmaticlabs/beacon-crawler/monitoring/backup"
	"github.com/prysmaticlabs/beacon-crawler/monitoring/prometheus"
	"github.com/prysmaticlabs/beacon-crawler/runtime"
	"github.com/prysmaticlabs/beacon-crawler/shared/aggregation/synccontribution"
	"github.com/prysmaticlabs/beacon-crawler/time/slots"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// BeaconDBDirName is the directory, under the data directory, holding the database.
const BeaconDBDirName = "beaconchaindata"

// BeaconNode defines a struct that handles the services running the beacon
// crawler. It handles the lifecycle of the entire system and registers
// services to a service registry.
type BeaconNode struct {
	cliCtx    *cli.Context
	ctx       context.Context
	cancel    context.CancelFunc
	services  *runtime.ServiceRegistry
	lock      sync.RWMutex
	stop      chan struct{} // Channel to wait for termination notifications.
	db        db.Database
	syncPool  *synccommittee.Store
	crawler   *crawler.Server
	fetcher   regularsync.BlockFetcher
	genesis   *blocks.BeaconBlock
	newTicker func() slots.Ticker
}

// New creates a new node instance, sets up configuration options, and registers
// every required service to the node.
func New(cliCtx *cli.Context, opts ...Option) (*BeaconNode, error) {
	if err := cmd.ConfigureBeaconChain(cliCtx); err != nil {
		return nil, err
	}
	configureBlockImport(cliCtx)

	registry := runtime.NewServiceRegistry()

	ctx, cancel := context.WithCancel(cliCtx.Context)
	beacon := &BeaconNode{
		cliCtx:   cliCtx,
		ctx:      ctx,
		cancel:   cancel,
		services: registry,
		stop:     make(chan struct{}),
	}
	for _, opt := range opts {
		if err := opt(beacon); err != nil {
			cancel()
			return nil, err
		}
	}
	if beacon.newTicker == nil {
		beacon.newTicker = wallClockTicker
	}

	if err := beacon.startDB(cliCtx); err != nil {
		cancel()
		return nil, err
	}

	beacon.syncPool = synccommittee.NewStore(&synccommittee.Config{
		DB:       beacon.db,
		Strategy: synccontribution.Strategy(cliCtx.String(flags.AggregationStrategyFlag.Name)),
	})
	beacon.crawler = &crawler.Server{Pool: beacon.syncPool}

	if err := beacon.registerBlockchainService(); err != nil {
		return nil, beacon.abort(err)
	}

	if err := beacon.registerSyncService(); err != nil {
		return nil, beacon.abort(err)
	}

	if err := beacon.registerSlotClock(); err != nil {
		return nil, beacon.abort(err)
	}

	if !cliCtx.Bool(cmd.DisableMonitoringFlag.Name) {
		if err := beacon.registerPrometheusService(cliCtx); err != nil {
			return nil, beacon.abort(err)
		}
	}

	return beacon, nil
}

// Crawler returns the query server over the collected sync committee records.
func (b *BeaconNode) Crawler() *crawler.Server {
	return b.crawler
}

// SyncService returns the registered block import coordinator.
func (b *BeaconNode) SyncService() (*regularsync.Service, error) {
	var s *regularsync.Service
	if err := b.services.FetchService(&s); err != nil {
		return nil, err
	}
	return s, nil
}

// Start the BeaconNode and kicks off every registered service.
func (b *BeaconNode) Start() {
	b.lock.Lock()

	log.WithField("config", params.BeaconConfig().ConfigName).Info("Starting beacon crawler")

	b.services.StartAll()

	stop := b.stop
	b.lock.Unlock()

	go func() {
		sigc := make(chan os.Signal, 1)
		signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigc)
		<-sigc
		log.Info("Got interrupt, shutting down...")
		go b.Close()
		for i := 10; i > 0; i-- {
			<-sigc
			if i > 1 {
				log.WithField("times", i-1).Info("Already shutting down, interrupt more to panic")
			}
		}
		panic("Panic closing the beacon crawler")
	}()

	// Wait for stop channel to be closed.
	<-stop
}

// Close handles graceful shutdown of the system.
func (b *BeaconNode) Close() {
	b.lock.Lock()
	defer b.lock.Unlock()

	log.Info("Stopping beacon crawler")
	b.services.StopAll()
	if err := b.db.Close(); err != nil {
		log.WithError(err).Error("Failed to close database")
	}
	b.cancel()
	close(b.stop)
}

func (b *BeaconNode) abort(err error) error {
	if closeErr := b.db.Close(); closeErr != nil {
		log.WithError(closeErr).Error("Failed to close database")
	}
	b.cancel()
	return err
}

func configureBlockImport(cliCtx *cli.Context) {
	c := params.BeaconConfig().Copy()
	changed := false
	if cliCtx.IsSet(flags.GenesisTimeFlag.Name) {
		c.GenesisTime = cliCtx.Uint64(flags.GenesisTimeFlag.Name)
		changed = true
	}
	if cliCtx.IsSet(flags.MaxInvalidBlockRootsFlag.Name) {
		c.MaxInvalidBlockRoots = cliCtx.Int(flags.MaxInvalidBlockRootsFlag.Name)
		changed = true
	}
	if changed {
		params.OverrideBeaconConfig(c)
	}
}

func wallClockTicker() slots.Ticker {
	cfg := params.BeaconConfig()
	return slots.NewSlotTicker(time.Unix(int64(cfg.GenesisTime), 0), cfg.SecondsPerSlot)
}

func currentSlot() primitives.Slot {
	return slots.CurrentSlot(params.BeaconConfig().GenesisTime)
}

func (b *BeaconNode) startDB(cliCtx *cli.Context) error {
	baseDir := cliCtx.String(cmd.DataDirFlag.Name)
	if baseDir == "" {
		return errors.New("could not determine your system's HOME path, please specify a --datadir")
	}
	dbPath := filepath.Join(baseDir, BeaconDBDirName)
	clearDB := cliCtx.Bool(cmd.ClearDB.Name)
	forceClearDB := cliCtx.Bool(cmd.ForceClearDB.Name)

	log.WithField("databasePath", dbPath).Info("Checking DB")

	d, err := db.NewDB(b.ctx, dbPath)
	if err != nil {
		return err
	}
	clearDBConfirmed := false
	if clearDB && !forceClearDB {
		actionText := "This will delete your crawler database stored in your data directory. " +
			"Do you want to proceed? (Y/N)"
		deniedText := "Database will not be deleted. No changes have been made."
		clearDBConfirmed, err = cmd.ConfirmAction(os.Stdin, actionText, deniedText)
		if err != nil {
			return err
		}
	}
	if clearDBConfirmed || forceClearDB {
		log.Warning("Removing database")
		if err := d.Close(); err != nil {
			return errors.Wrap(err, "could not close db prior to clearing")
		}
		if err := d.ClearDB(); err != nil {
			return errors.Wrap(err, "could not clear database")
		}
		d, err = db.NewDB(b.ctx, dbPath)
		if err != nil {
			return errors.Wrap(err, "could not create new database")
		}
	}

	b.db = d
	return nil
}

func (b *BeaconNode) registerBlockchainService() error {
	svc, err := blockchain.NewService(b.ctx, &blockchain.Config{
		BeaconDB:    b.db,
		Genesis:     b.genesis,
		CurrentSlot: currentSlot,
	})
	if err != nil {
		return errors.Wrap(err, "could not register blockchain service")
	}
	return b.services.RegisterService(svc)
}

func (b *BeaconNode) registerSyncService() error {
	var chainService *blockchain.Service
	if err := b.services.FetchService(&chainService); err != nil {
		return err
	}

	svc, err := regularsync.NewService(b.ctx, &regularsync.Config{
		Oracle:        chainService,
		Chain:         chainService,
		Fetcher:       b.fetcher,
		Contributions: b.syncPool,
		CurrentSlot:   currentSlot,
	})
	if err != nil {
		return errors.Wrap(err, "could not register sync service")
	}
	return b.services.RegisterService(svc)
}

func (b *BeaconNode) registerSlotClock() error {
	var syncService *regularsync.Service
	if err := b.services.FetchService(&syncService); err != nil {
		return err
	}
	clock := newSlotClock(b.ctx, b.newTicker, syncService, b.syncPool, params.BeaconConfig().ContributionRetentionSlots)
	return b.services.RegisterService(clock)
}

func (b *BeaconNode) registerPrometheusService(cliCtx *cli.Context) error {
	addr := fmt.Sprintf("%s:%d", cliCtx.String(cmd.MonitoringHostFlag.Name), cliCtx.Int(flags.MonitoringPortFlag.Name))
	log.WithFields(logrus.Fields{"address": addr}).Debug("Registering prometheus service")
	svc := prometheus.NewService(
		addr,
		b.services,
		prometheus.Handler{Path: "/db/backup", Handler: backup.Handler(b.db, "")},
	)
	return b.services.RegisterService(svc)
}
