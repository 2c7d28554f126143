// Package doxtypes defines version and compatibility types for DoxHub.
package doxtypes

// VersionStatusKind is the result of comparing the running version with the latest one.
type VersionStatusKind int

const (
	// VersionUnknown means the latest version could not be obtained or parsed
	VersionUnknown VersionStatusKind = iota
	// VersionUpToDate means the running version is the latest (or newer)
	VersionUpToDate
	// VersionOutdated means a newer release exists
	VersionOutdated
)

// String returns a lowercase name for logging.
func (k VersionStatusKind) String() string {
	switch k {
	case VersionUpToDate:
		return "up-to-date"
	case VersionOutdated:
		return "outdated"
	default:
		return "unknown"
	}
}

// VersionStatus describes how the running version relates to the latest known release.
type VersionStatus struct {
	Kind    VersionStatusKind `json:"kind"`
	Current string            `json:"current"`
	Latest  string            `json:"latest,omitempty"`
}

// IsOutdated reports whether a newer release is available.
func (v VersionStatus) IsOutdated() bool {
	return v.Kind == VersionOutdated
}

// CompatibilityProfile lists the host environments DoxHub supports.
// Empty MinRuntime or MaxRuntime leaves that side of the range open.
type CompatibilityProfile struct {
	SupportedOS []string `json:"supported_os" mapstructure:"supported_os"`
	MinRuntime  string   `json:"min_runtime" mapstructure:"min_runtime"`
	MaxRuntime  string   `json:"max_runtime" mapstructure:"max_runtime"`
}
