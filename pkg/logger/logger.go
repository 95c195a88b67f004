package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var log *logrus.Logger

func init() {
	log = logrus.New()
	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.InfoLevel)
	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
	})
}

// Init switches to a human-readable format outside production.
func Init(environment string) {
	if environment == "development" {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "15:04:05",
		})
	}
}

func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

// fields converts alternating key/value arguments into logrus fields.
func fields(kv []any) logrus.Fields {
	f := logrus.Fields{}
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		f[key] = kv[i+1]
	}
	return f
}

func Debug(msg string, kv ...any) {
	log.WithFields(fields(kv)).Debug(msg)
}

func Info(msg string, kv ...any) {
	log.WithFields(fields(kv)).Info(msg)
}

func Warn(msg string, kv ...any) {
	log.WithFields(fields(kv)).Warn(msg)
}

func Error(msg string, kv ...any) {
	log.WithFields(fields(kv)).Error(msg)
}

func Fatal(msg string, kv ...any) {
	log.WithFields(fields(kv)).Fatal(msg)
}
