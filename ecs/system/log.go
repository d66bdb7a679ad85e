package system

import "github.com/sirupsen/logrus"

// Event types pushed onto the world queue during a scheduler pass.
const (
	EventModeChanged = "mode_changed"
	EventKilled      = "killed"
	EventWarped      = "warped"
)

func systemLogger(l logrus.FieldLogger, name string) logrus.FieldLogger {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return l.WithField("system", name)
}
