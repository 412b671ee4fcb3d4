// Package db defines the ability to create a new database
// for the beacon crawler.
package db

import (
	"context"

	"github.com/prysmaticlabs/beacon-crawler/beacon-chain/db/iface"
	"github.com/prysmaticlabs/beacon-crawler/beacon-chain/db/kv"
)

// ReadOnlyDatabase exposes the database's read only operations.
type ReadOnlyDatabase = iface.ReadOnlyDatabase

// Database defines the necessary methods for the crawler's persistent storage.
type Database = iface.Database

// NewDB initializes a new DB.
func NewDB(ctx context.Context, dirPath string) (Database, error) {
	return kv.NewKVStore(ctx, dirPath)
}
