package logging

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// Setup configures the standard logrus logger: JSON in production, text
// elsewhere. Unknown levels fall back to info.
func Setup(env, level string, out io.Writer) *logrus.Logger {
	l := logrus.StandardLogger()
	if out != nil {
		l.SetOutput(out)
	}
	if env == "production" {
		l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)
	return l
}
