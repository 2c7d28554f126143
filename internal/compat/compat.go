// Package compat gates DoxHub startup on the host operating system and Go runtime version.
package compat

import (
	"runtime"
	"slices"
	"strings"

	"github.com/Masterminds/semver/v3"

	"doxhub/pkg/doxtypes"
)

// Kind is the outcome of a compatibility check.
type Kind int

const (
	// Compatible means the host satisfies the profile
	Compatible Kind = iota
	// UnsupportedOS means the operating system is not in the supported set
	UnsupportedOS
	// UnsupportedRuntime means the runtime version is outside the supported range or unparseable
	UnsupportedRuntime
)

func (k Kind) String() string {
	switch k {
	case Compatible:
		return "compatible"
	case UnsupportedOS:
		return "unsupported-os"
	case UnsupportedRuntime:
		return "unsupported-runtime"
	default:
		return "unknown"
	}
}

// Result carries the checked host facts together with the verdict.
type Result struct {
	Kind    Kind
	OS      string
	Runtime string
	Profile doxtypes.CompatibilityProfile
}

// OK reports whether the host is compatible.
func (r Result) OK() bool {
	return r.Kind == Compatible
}

// Err returns the typed startup error for an incompatible result, nil otherwise.
func (r Result) Err() error {
	switch r.Kind {
	case UnsupportedOS:
		return &doxtypes.UnsupportedOSError{OS: r.OS, Supported: slices.Clone(r.Profile.SupportedOS)}
	case UnsupportedRuntime:
		return &doxtypes.UnsupportedRuntimeError{Version: r.Runtime, Min: r.Profile.MinRuntime, Max: r.Profile.MaxRuntime}
	default:
		return nil
	}
}

// DefaultProfile returns the platforms DoxHub is built and tested for.
func DefaultProfile() doxtypes.CompatibilityProfile {
	return doxtypes.CompatibilityProfile{
		SupportedOS: []string{"linux", "darwin", "windows", "freebsd"},
		MinRuntime:  "1.22.0",
	}
}

// Detect returns the operating system and Go runtime version of the running binary.
func Detect() (goos string, runtimeVersion string) {
	return runtime.GOOS, runtime.Version()
}

// Check decides whether goos and runtimeVersion satisfy profile. The OS is checked first.
// An empty SupportedOS list accepts any OS; empty bounds leave the version range open.
func Check(goos, runtimeVersion string, profile doxtypes.CompatibilityProfile) Result {
	result := Result{Kind: Compatible, OS: goos, Runtime: runtimeVersion, Profile: profile}

	if len(profile.SupportedOS) > 0 && !slices.ContainsFunc(profile.SupportedOS, func(os string) bool {
		return strings.EqualFold(strings.TrimSpace(os), goos)
	}) {
		result.Kind = UnsupportedOS
		return result
	}

	version, err := semver.NewVersion(NormalizeRuntime(runtimeVersion))
	if err != nil {
		result.Kind = UnsupportedRuntime
		return result
	}

	if profile.MinRuntime != "" {
		minimum, err := semver.NewVersion(profile.MinRuntime)
		if err != nil || version.LessThan(minimum) {
			result.Kind = UnsupportedRuntime
			return result
		}
	}
	if profile.MaxRuntime != "" {
		maximum, err := semver.NewVersion(profile.MaxRuntime)
		if err != nil || version.GreaterThan(maximum) {
			result.Kind = UnsupportedRuntime
			return result
		}
	}

	return result
}

// NormalizeRuntime turns a Go runtime version into a semantic version:
// "go1.24.4" -> "1.24.4", "go1.23rc1" -> "1.23.0-rc1", "devel go1.25-abc" -> "1.25".
// Release candidates therefore sort before the final release.
func NormalizeRuntime(v string) string {
	v = strings.TrimSpace(v)
	v = strings.TrimPrefix(v, "devel ")
	v = strings.TrimPrefix(v, "go")
	if i := strings.IndexAny(v, " +"); i >= 0 {
		v = v[:i]
	}
	if i := strings.Index(v, "-"); i >= 0 {
		v = v[:i]
	}
	for _, pre := range []string{"rc", "beta", "alpha"} {
		if i := strings.Index(v, pre); i > 0 {
			base := v[:i]
			if strings.Count(base, ".") == 1 {
				base += ".0"
			}
			return base + "-" + v[i:]
		}
	}
	return v
}
