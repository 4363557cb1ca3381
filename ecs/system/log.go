package system

import "github.com/sirupsen/logrus"

var log = logrus.WithField("component", "system")
