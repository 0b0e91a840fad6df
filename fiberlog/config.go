package fiberlog

import "github.com/sirupsen/logrus"

type Config struct {
	// Logger falls back to the logrus standard logger
	Logger *logrus.Logger
	Tags   []string
	// Skip disables logging for matching paths, swagger assets for example
	Skip func(path string) bool
	// Message of every entry, "api request" by default
	Message string
}

var ConfigDefault = Config{
	Tags: []string{
		TagStatus,
		TagLatency,
		TagMethod,
		TagPath,
		RequestID,
	},
	Message: "api request",
}

func configDefault(config ...Config) Config {
	cfg := ConfigDefault
	if len(config) > 0 {
		cfg = config[0]
	}
	if len(cfg.Tags) == 0 {
		cfg.Tags = ConfigDefault.Tags
	}
	if cfg.Message == "" {
		cfg.Message = ConfigDefault.Message
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.StandardLogger()
	}
	return cfg
}
