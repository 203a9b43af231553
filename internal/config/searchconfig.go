/*
 * Athena - a chess engine search core written in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Athena contributors
 */

package config

// searchConfiguration collects the tuning knobs for internal/search. TOML
// field names match these exactly (case-insensitively) when present in
// the config file.
type searchConfiguration struct {
	// HashSizeMb sizes the transposition table, in megabytes.
	HashSizeMb int

	UseTT        bool
	UseQuiescence bool
	UseSEE       bool

	UseNullMove  bool
	NmpMinDepth  int
	NmpReduction int

	UseRFP     bool
	RfpMaxDepth int
	RfpMargin   int

	UseFutility     bool
	FutilityMaxDepth int
	FutilityMargin   int
}

func defaultSearchConfiguration() searchConfiguration {
	return searchConfiguration{
		HashSizeMb: 64,

		UseTT:         true,
		UseQuiescence: true,
		UseSEE:        true,

		UseNullMove:  true,
		NmpMinDepth:  5,
		NmpReduction: 4,

		UseRFP:      true,
		RfpMaxDepth: 3,
		RfpMargin:   150,

		UseFutility:      true,
		FutilityMaxDepth: 3,
		FutilityMargin:   150,
	}
}
