// Package backup serves database backups over the monitoring http server.
package backup

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prysmaticlabs/beacon-crawler/beacon-chain/db/iface"
	"github.com/sirupsen/logrus"
)

// Exporter defines a backup exporter methods.
type Exporter interface {
	Backup(ctx context.Context, outputPath string, permissionOverride bool) error
}

var _ Exporter = (iface.Database)(nil)

// Handler for accepting requests to initiate a new database backup. Passing
// the permissionOverride query parameter skips the output directory
// permission check.
func Handler(bk Exporter, outputDir string) func(http.ResponseWriter, *http.Request) {
	log := logrus.WithField("prefix", "db")

	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Creating database backup from HTTP webhook")

		_, permissionOverride := r.URL.Query()["permissionOverride"]

		if err := bk.Backup(r.Context(), outputDir, permissionOverride); err != nil {
			log.WithError(err).Error("Failed to create backup")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		if _, err := fmt.Fprint(w, "OK"); err != nil {
			log.WithError(err).Error("Failed to write OK")
		}
	}
}
