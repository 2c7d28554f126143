package version

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Stage is the maturity of a release.
type Stage string

// Release stages, ordered from least to most mature.
const (
	StageAlpha   Stage = "alpha"
	StageBeta    Stage = "beta"
	StageRC      Stage = "rc"
	StageRelease Stage = "release"
)

// shortStage maps prerelease stages to their compact display suffix.
var shortStage = map[Stage]string{
	StageAlpha: "a",
	StageBeta:  "b",
	StageRC:    "rc",
}

// IsValid reports whether s is a known stage.
func (s Stage) IsValid() bool {
	switch s {
	case StageAlpha, StageBeta, StageRC, StageRelease:
		return true
	default:
		return false
	}
}

// Release is a structured version: major.minor.patch plus stage and serial.
type Release struct {
	Major  uint64
	Minor  uint64
	Patch  uint64
	Stage  Stage
	Serial uint64
}

// NewRelease validates and builds a Release.
func NewRelease(major, minor, patch uint64, stage Stage, serial uint64) (Release, error) {
	if !stage.IsValid() {
		return Release{}, fmt.Errorf("invalid release stage %q (expected alpha, beta, rc or release)", stage)
	}
	if stage == StageRelease && serial != 0 {
		return Release{}, fmt.Errorf("final releases cannot carry a serial (got %d)", serial)
	}
	return Release{Major: major, Minor: minor, Patch: patch, Stage: stage, Serial: serial}, nil
}

// ParseRelease parses a semantic version such as "3.1.0" or "3.2.0-rc.1".
func ParseRelease(v string) (Release, error) {
	sv, err := semver.NewVersion(v)
	if err != nil {
		return Release{}, fmt.Errorf("invalid version '%s': %w", v, err)
	}

	pre := sv.Prerelease()
	if pre == "" {
		return NewRelease(sv.Major(), sv.Minor(), sv.Patch(), StageRelease, 0)
	}

	name, serialPart, _ := strings.Cut(pre, ".")
	var serial uint64
	if serialPart != "" {
		serial, err = strconv.ParseUint(serialPart, 10, 64)
		if err != nil {
			return Release{}, fmt.Errorf("invalid prerelease serial in '%s': %w", v, err)
		}
	}

	return NewRelease(sv.Major(), sv.Minor(), sv.Patch(), Stage(name), serial)
}

// MainVersion returns "X.Y" when the patch number is zero and "X.Y.Z" otherwise.
func (r Release) MainVersion() string {
	if r.Patch == 0 {
		return fmt.Sprintf("%d.%d", r.Major, r.Minor)
	}
	return fmt.Sprintf("%d.%d.%d", r.Major, r.Minor, r.Patch)
}

// String returns the semantic version, e.g. "3.2.0-rc.1".
func (r Release) String() string {
	base := fmt.Sprintf("%d.%d.%d", r.Major, r.Minor, r.Patch)
	if r.Stage == StageRelease || r.Stage == "" {
		return base
	}
	return fmt.Sprintf("%s-%s.%d", base, r.Stage, r.Serial)
}

// Display returns the compact human form: "3.1", "3.2rc1", "3.2b2".
// A pre-alpha (alpha serial 0) becomes "3.2.dev<changeset>" when a changeset stamp is known.
func (r Release) Display(changeset string) string {
	main := r.MainVersion()

	switch {
	case r.Stage == StageAlpha && r.Serial == 0:
		if changeset != "" {
			return main + ".dev" + changeset
		}
		return main
	case r.Stage == StageRelease || r.Stage == "":
		return main
	default:
		return main + shortStage[r.Stage] + strconv.FormatUint(r.Serial, 10)
	}
}

// BuildChangeset returns the build date as a UTC YYYYMMDDHHMMSS stamp, or "" when unknown.
func BuildChangeset() string {
	t, err := GetBuildTime()
	if err != nil {
		return ""
	}
	return t.UTC().Format("20060102150405")
}
