package build_version

// Set at link time with -ldflags "-X github.com/omarnabikhan/spire/internal/build_version.version=...".
var version = "0.0.1"

func GetVersion() string {
	return version
}
