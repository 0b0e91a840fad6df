package initializers

import (
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"skill-hire-backend/fiberlog"
)

func InitLogger(level string) *fiberlog.Config {
	formatter := &log.JSONFormatter{
		FieldMap: log.FieldMap{
			log.FieldKeyTime: "@timestamp",
			log.FieldKeyMsg:  "message",
		},
	}
	logLevel, err := log.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		logLevel = log.InfoLevel
	}
	log.SetFormatter(formatter)
	log.SetOutput(os.Stdout)
	log.SetLevel(logLevel)

	logger := log.New()
	logger.SetFormatter(formatter)
	logger.SetOutput(os.Stdout)
	logger.SetLevel(logLevel)
	return &fiberlog.Config{
		Logger: logger,
		Tags: []string{
			fiberlog.TagMethod,
			fiberlog.TagPath,
			fiberlog.TagStatus,
			fiberlog.TagLatency,
			fiberlog.TagResBody,
			fiberlog.TagUserID,
			fiberlog.RequestID,
		},
		Skip: func(path string) bool {
			return strings.HasPrefix(path, "/swagger")
		},
	}
}
