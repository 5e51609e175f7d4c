package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

var log = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.JSONFormatter{})
	return l
}

// Init sets the minimum level. Unknown level names fall back to info.
func Init(level string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		log.WithField("level", level).Warn("unknown log level, using info")
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	log.WithField("level", lvl.String()).Info("logger initialized")
}

// L exposes the underlying logger for middleware that needs logrus directly.
func L() *logrus.Logger {
	return log
}

func Debug(msg string, fields map[string]any) {
	log.WithFields(logrus.Fields(fields)).Debug(msg)
}

func Info(msg string, fields map[string]any) {
	log.WithFields(logrus.Fields(fields)).Info(msg)
}

func Warn(msg string, fields map[string]any) {
	log.WithFields(logrus.Fields(fields)).Warn(msg)
}

func Error(msg string, fields map[string]any) {
	log.WithFields(logrus.Fields(fields)).Error(msg)
}

func Fatal(msg string, fields map[string]any) {
	log.WithFields(logrus.Fields(fields)).Fatal(msg)
}
