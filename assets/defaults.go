package assets

import (
	"embed"
)

// DefaultConfigYAML contains the embedded loganrc.default template.
//
//go:embed defaults/loganrc.default
var DefaultConfigYAML []byte

// UserConfigYAML contains the embedded, empty loganrc template.
//
//go:embed defaults/loganrc
var UserConfigYAML []byte

// ActionScripts holds the executables backing the actions registered in
// loganrc.default, rooted at ActionScriptsDir.
//
//go:embed defaults/actions
var ActionScripts embed.FS

// ActionScriptsDir is the directory inside ActionScripts holding the scripts.
const ActionScriptsDir = "defaults/actions"
