package synccommittee

import "github.com/sirupsen/logrus"

var log = logrus.WithField("prefix", "synccommittee")
