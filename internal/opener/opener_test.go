package opener

import (
	"bytes"
	"errors"
	"os/exec"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doxhub/pkg/doxtypes"
)

func TestBrowserOpener_Success(t *testing.T) {
	var opened []string
	o := &BrowserOpener{openURL: func(u string) error {
		opened = append(opened, u)
		return nil
	}}

	require.NoError(t, o.Open("https://example.com/search?u=alice"))
	assert.Equal(t, []string{"https://example.com/search?u=alice"}, opened)
}

func TestBrowserOpener_Failures(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		reason doxtypes.OpenErrorReason
	}{
		{
			name:   "no launcher",
			err:    &exec.Error{Name: "xdg-open,x-www-browser,www-browser", Err: exec.ErrNotFound},
			reason: doxtypes.OpenNoHandler,
		},
		{
			name:   "launcher failed",
			err:    errors.New("exit status 3"),
			reason: doxtypes.OpenHandlerFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := &BrowserOpener{openURL: func(string) error { return tt.err }}
			err := o.Open("https://example.com")

			var openErr *doxtypes.OpenError
			require.True(t, errors.As(err, &openErr))
			assert.Equal(t, tt.reason, openErr.Reason)
			assert.Equal(t, "https://example.com", openErr.Locator)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestPrintOpener(t *testing.T) {
	var buf bytes.Buffer
	o := NewPrintOpener(&buf)

	require.NoError(t, o.Open("https://a.example"))
	require.NoError(t, o.Open("https://b.example"))
	assert.Equal(t, "https://a.example\nhttps://b.example\n", buf.String())
}

func TestNew(t *testing.T) {
	o, err := New(ModePrint, nil)
	require.NoError(t, err)
	assert.IsType(t, &PrintOpener{}, o)

	o, err = New(ModeBrowser, nil)
	require.NoError(t, err)
	assert.IsType(t, &BrowserOpener{}, o)

	_, err = New("carrier-pigeon", nil)
	assert.ErrorContains(t, err, "unknown open mode")
}

func TestFunc(t *testing.T) {
	called := ""
	var o Opener = Func(func(l string) error {
		called = l
		return nil
	})
	require.NoError(t, o.Open("x"))
	assert.Equal(t, "x", called)
}

func TestSystemClipboard_Linux(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("clipboard is only stubbed on linux")
	}
	c := NewSystemClipboard()
	assert.False(t, c.Available())
	assert.ErrorContains(t, c.Copy("x"), "clipboard unavailable")
}
