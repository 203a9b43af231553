/*
 * Athena - a chess engine search core written in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Athena contributors
 */

package config

// logConfiguration collects the op/go-logging levels used across the
// engine. Levels follow logging.Level's ordering: 0=CRITICAL ... 5=DEBUG.
type logConfiguration struct {
	LogLevel       int
	SearchLogLevel int
}

func defaultLogConfiguration() logConfiguration {
	return logConfiguration{
		LogLevel:       4,
		SearchLogLevel: 3,
	}
}
