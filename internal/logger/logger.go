package logger

import (
	"io"
	"os"
	"time"

	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"github.com/natefinch/lumberjack"
	"github.com/rs/zerolog"
	logrus "github.com/sirupsen/logrus"
)

var output io.Writer = os.Stderr

// Setup initializes Logrus logging via a rotating file.
// An empty filename keeps logs on stderr.
func Setup(filename, level string) {
	if filename != "" {
		output = &lumberjack.Logger{
			Filename:   filename,
			MaxSize:    10, // megabytes
			MaxBackups: 7,
			MaxAge:     7, // days
			Compress:   true,
		}
	}

	logrus.SetOutput(output)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
}

// Output returns the writer logs are sent to.
func Output() io.Writer {
	return output
}

// RequestLogger logs one line per HTTP request to the same sink as logrus.
func RequestLogger() gin.HandlerFunc {
	return ginlog.SetLogger(
		ginlog.WithWriter(output),
		ginlog.WithUTC(true),
		ginlog.WithSkipPath([]string{"/health"}),
		ginlog.WithDefaultLevel(zerolog.InfoLevel),
	)
}
