package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// Init configures the process logger. Production gets JSON lines on stderr,
// everything else gets the text formatter at debug level.
func Init(environment string) {
	log.SetOutput(os.Stderr)

	if environment == "production" {
		log.SetFormatter(&logrus.JSONFormatter{})
		log.SetLevel(logrus.InfoLevel)
		return
	}

	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.SetLevel(logrus.DebugLevel)
}

// fields turns a variadic key-value list into logrus fields. Odd trailing
// values are kept under "arg" so nothing is silently dropped.
func fields(kv []any) logrus.Fields {
	f := logrus.Fields{}
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		f[key] = kv[i+1]
	}
	if len(kv)%2 == 1 {
		f["arg"] = kv[len(kv)-1]
	}
	return f
}

func Debug(msg string, kv ...any) { log.WithFields(fields(kv)).Debug(msg) }
func Info(msg string, kv ...any)  { log.WithFields(fields(kv)).Info(msg) }
func Warn(msg string, kv ...any)  { log.WithFields(fields(kv)).Warn(msg) }
func Error(msg string, kv ...any) { log.WithFields(fields(kv)).Error(msg) }
func Fatal(msg string, kv ...any) { log.WithFields(fields(kv)).Fatal(msg) }
