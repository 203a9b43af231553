/*
 * Athena - a chess engine search core written in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Athena contributors
 */

// Package config holds globally available configuration: search tuning
// knobs and log levels, set from defaults and optionally overridden by a
// TOML file.
package config

import (
	"log"

	"github.com/BurntSushi/toml"
)

// ConfFile is the path to the configuration file, relative to the
// working directory unless overridden on the command line.
var ConfFile = "./athena.toml"

// Settings is the global configuration, populated by Setup.
var Settings conf

var initialized = false

type conf struct {
	Log    logConfiguration
	Search searchConfiguration
	Eval   evalConfiguration
}

// Setup reads ConfFile and overlays it onto the defaults. It is
// idempotent: calling it more than once has no effect after the first
// call.
func Setup() {
	if initialized {
		return
	}
	Settings = conf{
		Log:    defaultLogConfiguration(),
		Search: defaultSearchConfiguration(),
		Eval:   defaultEvalConfiguration(),
	}
	if _, err := toml.DecodeFile(ConfFile, &Settings); err != nil {
		log.Println("config: no config file loaded, using defaults (", err, ")")
	}
	initialized = true
}
