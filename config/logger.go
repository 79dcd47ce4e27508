package config

import (
	"github.com/MonkyMars/gecho"
)

var logger gecho.Logger

// InitializeLogger builds the bootstrap logger used before the router
// wires its own request loggers. Runs after GetConfig so the level tracks
// the environment (debug outside production, info in it).
func InitializeLogger() *gecho.Logger {
	logger = *gecho.NewLogger(gecho.NewConfig(
		gecho.WithShowCaller(true),
		gecho.WithLogLevel(gecho.ParseLogLevel(GetLogLevel())),
	))
	return &logger
}

// GetLogger returns the bootstrap logger for init-time callers such as
// the database layer, which comes up before the HTTP stack exists.
func GetLogger() *gecho.Logger {
	return &logger
}
