// Package async includes helpers for scheduling periodic work.
package async

import (
	"context"
	"reflect"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("prefix", "async")

// RunEvery calls f once per period on its own goroutine until ctx is done.
// Calls never overlap: a slow f delays the next one.
func RunEvery(ctx context.Context, period time.Duration, f func()) {
	funcName := runtime.FuncForPC(reflect.ValueOf(f).Pointer()).Name()
	ticker := time.NewTicker(period)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				log.WithField("function", funcName).Trace("Running periodic function")
				f()
			case <-ctx.Done():
				log.WithField("function", funcName).Debug("Context closed, exiting routine")
				return
			}
		}
	}()
}
