package params

import (
	"os"
)

// IoConfig defines the shared io parameters.
type IoConfig struct {
	ReadWritePermissions        os.FileMode
	ReadWriteExecutePermissions os.FileMode
}

var defaultIoConfig = &IoConfig{
	ReadWritePermissions:        0600,
	ReadWriteExecutePermissions: 0700,
}

// BeaconIoConfig returns the current io config for
// the beacon chain.
func BeaconIoConfig() *IoConfig {
	return defaultIoConfig
}
