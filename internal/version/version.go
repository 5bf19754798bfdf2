package version

// Build metadata, set with -ldflags "-X github.com/doeshing/logan/internal/version.Version=...".
var (
	Version   = "0.1.0"
	Commit    = ""
	BuildDate = ""
)
