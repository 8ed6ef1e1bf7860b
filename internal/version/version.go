package version

// Tag holds the build version for the Courtside binary. It can be overridden at
// build time via: go build -ldflags "-X github.com/ahmed-n-abdeltwab/tennis-coach-platform-sub007/internal/version.Tag=v1.2.3".
var Tag = "dev"

// String returns the current build version, defaulting to "dev" when Tag is
// unset.
func String() string {
	if Tag == "" {
		return "dev"
	}
	return Tag
}
