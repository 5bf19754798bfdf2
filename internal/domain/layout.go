package domain

import "path/filepath"

// Layout holds every path derived from the logan root directory. Build it
// once with NewLayout and pass it to components by value.
type Layout struct {
	Root              string
	DefaultConfigPath string
	UserConfigPath    string
	CachePath         string
	ActionsDir        string
}

// NewLayout derives the directory layout contract from root.
func NewLayout(root string) Layout {
	return Layout{
		Root:              root,
		DefaultConfigPath: filepath.Join(root, DefaultConfigFilename),
		UserConfigPath:    filepath.Join(root, UserConfigFilename),
		CachePath:         filepath.Join(root, CacheFilename),
		ActionsDir:        filepath.Join(root, ActionsDirname),
	}
}
