package kv

import (
	"context"
	"fmt"
	"os"
	"path"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/beacon-crawler/config/params"
	"github.com/sirupsen/logrus"
	bolt "go.etcd.io/bbolt"
	"go.opencensus.io/trace"
)

const backupsDirectoryName = "backups"

// Backup the database to the datadir backup directory.
// Example for backup at slot 345: $DATADIR/backups/beaconcrawler_at_slot_0000345.backup
func (s *Store) Backup(ctx context.Context, outputDir string, permissionOverride bool) error {
	ctx, span := trace.StartSpan(ctx, "BeaconDB.Backup")
	defer span.End()

	backupsDir := path.Join(s.databasePath, backupsDirectoryName)
	if outputDir != "" {
		backupsDir = outputDir
	}
	slot, err := s.HighestBlockSlot(ctx)
	if err != nil {
		return err
	}
	if err := ensureBackupDir(backupsDir, permissionOverride); err != nil {
		return err
	}
	backupPath := path.Join(backupsDir, fmt.Sprintf("beaconcrawler_at_slot_%07d.backup", slot))
	logrus.WithField("prefix", "db").WithField("backup", backupPath).Info("Writing backup database")
	return s.db.View(func(tx *bolt.Tx) error {
		return tx.CopyFile(backupPath, params.BeaconIoConfig().ReadWritePermissions)
	})
}

func ensureBackupDir(dir string, permissionOverride bool) error {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return os.MkdirAll(dir, params.BeaconIoConfig().ReadWriteExecutePermissions)
	}
	if err != nil {
		return err
	}
	if !permissionOverride && info.Mode().Perm() != params.BeaconIoConfig().ReadWriteExecutePermissions {
		return errors.Errorf("backup directory %s must have 0700 permissions, pass permissionOverride to ignore", dir)
	}
	return nil
}
