package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRelease_Validation(t *testing.T) {
	_, err := NewRelease(3, 1, 0, Stage("gamma"), 1)
	assert.ErrorContains(t, err, `invalid release stage "gamma"`)

	_, err = NewRelease(3, 1, 0, StageRelease, 2)
	assert.ErrorContains(t, err, "cannot carry a serial")

	r, err := NewRelease(3, 1, 0, StageBeta, 2)
	require.NoError(t, err)
	assert.Equal(t, "3.1.0-beta.2", r.String())
}

func TestParseRelease(t *testing.T) {
	tests := []struct {
		input  string
		stage  Stage
		serial uint64
		semver string
	}{
		{"3.1.0", StageRelease, 0, "3.1.0"},
		{"3.2.0-rc.1", StageRC, 1, "3.2.0-rc.1"},
		{"3.2.0-alpha", StageAlpha, 0, "3.2.0-alpha.0"},
		{"v4.0.1-beta.3", StageBeta, 3, "4.0.1-beta.3"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			r, err := ParseRelease(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.stage, r.Stage)
			assert.Equal(t, tt.serial, r.Serial)
			assert.Equal(t, tt.semver, r.String())
		})
	}

	for _, bad := range []string{"nope", "3.1.0-preview.1", "3.1.0-rc.x"} {
		_, err := ParseRelease(bad)
		assert.Error(t, err, bad)
	}
}

func TestRelease_MainVersionAndDisplay(t *testing.T) {
	tests := []struct {
		name      string
		release   Release
		changeset string
		main      string
		display   string
	}{
		{"final drops zero patch", Release{Major: 3, Minor: 1, Stage: StageRelease}, "", "3.1", "3.1"},
		{"final keeps patch", Release{Major: 3, Minor: 1, Patch: 2, Stage: StageRelease}, "", "3.1.2", "3.1.2"},
		{"release candidate", Release{Major: 3, Minor: 2, Stage: StageRC, Serial: 1}, "", "3.2", "3.2rc1"},
		{"beta", Release{Major: 3, Minor: 2, Stage: StageBeta, Serial: 2}, "", "3.2", "3.2b2"},
		{"alpha", Release{Major: 3, Minor: 2, Stage: StageAlpha, Serial: 1}, "", "3.2", "3.2a1"},
		{"pre-alpha with changeset", Release{Major: 3, Minor: 2, Stage: StageAlpha}, "20260101120000", "3.2", "3.2.dev20260101120000"},
		{"pre-alpha without changeset", Release{Major: 3, Minor: 2, Stage: StageAlpha}, "", "3.2", "3.2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.main, tt.release.MainVersion())
			assert.Equal(t, tt.display, tt.release.Display(tt.changeset))
		})
	}
}
