// Package logs configures the format of the crawler's logs and an optional
// log file receiving everything written to stdout.
package logs

import (
	"io"
	"os"
	"path/filepath"

	joonix "github.com/joonix/log"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/beacon-crawler/config/params"
	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

var errDirPermissions = errors.New("dir already exists without proper 0700 permissions")

// Formatter returns the logrus formatter for one of the supported log
// formats: text, fluentd or json. Colors are disabled for text logs written
// to a file as well.
func Formatter(format string, persistent bool) (logrus.Formatter, error) {
	switch format {
	case "text":
		formatter := new(prefixed.TextFormatter)
		formatter.TimestampFormat = "2006-01-02 15:04:05"
		formatter.FullTimestamp = true
		// ANSI color codes are gibberish in log files.
		formatter.DisableColors = persistent
		return formatter, nil
	case "fluentd":
		return joonix.NewFormatter(), nil
	case "json":
		return &logrus.JSONFormatter{}, nil
	default:
		return nil, errors.Errorf("unknown log format %s", format)
	}
}

func addLogWriter(w io.Writer) {
	mw := io.MultiWriter(logrus.StandardLogger().Out, w)
	logrus.SetOutput(mw)
}

// ConfigurePersistentLogging adds a log-to-file writer. File content is identical to stdout.
// Missing parent directories are created with owner-only permissions.
func ConfigurePersistentLogging(logFileName string) error {
	logrus.WithField("logFileName", logFileName).Info("Logs will be made persistent")
	if err := mkdirAll(filepath.Dir(logFileName)); err != nil {
		return err
	}
	f, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, params.BeaconIoConfig().ReadWritePermissions) // #nosec G304
	if err != nil {
		return err
	}

	addLogWriter(f)

	logrus.Info("File logging initialized")
	return nil
}

func mkdirAll(dir string) error {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return os.MkdirAll(dir, params.BeaconIoConfig().ReadWriteExecutePermissions)
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return errors.Errorf("%s is not a directory", dir)
	}
	if info.Mode().Perm() != params.BeaconIoConfig().ReadWriteExecutePermissions {
		return errDirPermissions
	}
	return nil
}
