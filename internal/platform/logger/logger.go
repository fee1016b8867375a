package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

var log *logrus.Logger

func init() {
	log = logrus.New()
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.SetLevel(logrus.InfoLevel)
}

// Base exposes the underlying logrus instance for middleware that attaches
// its own fields.
func Base() *logrus.Logger {
	return log
}

func SetLevel(level string) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		log.Warnf("unknown log level %q, keeping %s", level, log.GetLevel())
		return
	}
	log.SetLevel(parsed)
}

func Info(msg string, v ...interface{}) {
	if len(v) > 0 {
		log.Infof(msg, v...)
		return
	}
	log.Info(msg)
}

func Warn(msg string, v ...interface{}) {
	if len(v) > 0 {
		log.Warnf(msg, v...)
		return
	}
	log.Warn(msg)
}

func Error(msg string, err error, fields map[string]interface{}) {
	entry := log.WithFields(logrus.Fields(fields))
	if err != nil {
		entry = entry.WithError(err)
	}
	entry.Error(msg)
}
