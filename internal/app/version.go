package app

import "fmt"

// Build metadata, injected with
// -ldflags "-X github.com/KunitakeHyuga/Hackathon/internal/app.Version=v1.0.0".
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// BuildVersion returns Version, followed by the commit and build time when
// they were injected.
func BuildVersion() string {
	switch {
	case Commit != "" && BuildTime != "":
		return fmt.Sprintf("%s (%s, %s)", Version, Commit, BuildTime)
	case Commit != "":
		return fmt.Sprintf("%s (%s)", Version, Commit)
	}
	return Version
}
