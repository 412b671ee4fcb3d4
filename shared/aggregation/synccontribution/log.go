package synccontribution

import "github.com/sirupsen/logrus"

var log = logrus.WithField("prefix", "aggregation.synccontribution")
