package weaksubjectivity

import (
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("prefix", "weak-subjectivity")
