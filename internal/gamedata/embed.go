// Package gamedata provides embedded hull class data and utilities for
// loading it.
package gamedata

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
