// Package assets embeds the circuit symbol icons.
package assets

import "embed"

// Icons holds icons/<kind>.svg for every symbol kind.
//
//go:embed icons/*.svg
var Icons embed.FS
