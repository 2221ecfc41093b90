package theme

import "os"

// Appearance is the device-level light/dark report.
type Appearance string

const (
	AppearanceLight Appearance = "light"
	AppearanceDark  Appearance = "dark"
)

// AppearanceSource reports the device's current appearance. Implementations
// must be safe for concurrent use; the watcher polls from its own goroutine.
type AppearanceSource interface {
	Current() Appearance
}

// EnvSource reads the appearance from the CINETRACK_APPEARANCE environment
// variable. Terminals have no portable appearance API, so dark is the
// default when the variable is unset.
type EnvSource struct{}

func NewEnvSource() EnvSource { return EnvSource{} }

func (EnvSource) Current() Appearance {
	if os.Getenv("CINETRACK_APPEARANCE") == string(AppearanceLight) {
		return AppearanceLight
	}
	return AppearanceDark
}
