package domain

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// ConfigFilePermissions is the permission for config files written by init (rw-r--r--)
	ConfigFilePermissions = 0o644
	// ExecutablePermissions is the permission for action scripts written by init (rwxr-xr-x)
	ExecutablePermissions = 0o755
)

// Directory layout constants
const (
	// DefaultRootDirname is the root directory name under the user's home
	DefaultRootDirname = ".logan"
	// DefaultConfigFilename is the shipped configuration file
	DefaultConfigFilename = "loganrc.default"
	// UserConfigFilename is the user override configuration file
	UserConfigFilename = "loganrc"
	// CacheFilename is the persistent cache store file
	CacheFilename = "logan.cache"
	// ActionsDirname holds context directories and action executables
	ActionsDirname = "actions"
)

// CacheKey is the single key under which the merged configuration is cached.
const CacheKey = "logan.cache"

// Exit codes
const (
	ExitOK   = 0
	ExitFail = 1
)

// TimeoutExitCode is reported when a child is killed by the optional timeout.
const TimeoutExitCode = -1
