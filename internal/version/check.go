package version

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/charmbracelet/log"

	"doxhub/internal/logger"
	"doxhub/pkg/doxtypes"
)

// CheckVersion compares the running version with the latest known release.
// Comparison is numeric per component, so 3.1.0 < 3.10.0. An empty or unparseable
// latest version yields VersionUnknown; this never fails.
func CheckVersion(current, latestKnown string) doxtypes.VersionStatus {
	status := doxtypes.VersionStatus{Kind: doxtypes.VersionUnknown, Current: current}

	latestKnown = normalize(latestKnown)
	if latestKnown == "" {
		return status
	}

	cur, err := semver.NewVersion(normalize(current))
	if err != nil {
		return status
	}
	latest, err := semver.NewVersion(latestKnown)
	if err != nil {
		return status
	}

	status.Latest = latestKnown
	if cur.LessThan(latest) {
		status.Kind = doxtypes.VersionOutdated
	} else {
		status.Kind = doxtypes.VersionUpToDate
	}
	return status
}

// normalize strips whitespace and a leading "v" from release tags.
func normalize(v string) string {
	v = strings.TrimSpace(v)
	return strings.TrimPrefix(strings.TrimPrefix(v, "v"), "V")
}

// LatestSource provides the latest released version.
type LatestSource interface {
	Latest(ctx context.Context) (string, error)
}

// StaticSource always reports the same latest version. An empty value means unknown.
type StaticSource string

// Latest implements LatestSource.
func (s StaticSource) Latest(_ context.Context) (string, error) {
	if s == "" {
		return "", fmt.Errorf("no latest version configured")
	}
	return string(s), nil
}

// HTTPSource fetches the latest version from a release feed. It accepts a GitHub
// release document ({"tag_name": "v3.2.0"}), a {"version": "3.2.0"} document, or a
// plain-text body holding only the version.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

// NewHTTPSource creates an HTTPSource with the given request timeout.
func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		URL:    url,
		Client: &http.Client{Timeout: timeout},
	}
}

// maxFeedBytes bounds how much of the release feed is read.
const maxFeedBytes = 1 << 20

// Latest implements LatestSource. A nil source reports a missing feed URL.
func (s *HTTPSource) Latest(ctx context.Context) (string, error) {
	if s == nil || s.URL == "" {
		return "", fmt.Errorf("release feed URL is required")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create release feed request: %w", err)
	}
	req.Header.Set("Accept", "application/json, text/plain")
	req.Header.Set("User-Agent", "doxhub/"+Version)

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch release feed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error on close
	}()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("release feed returned %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedBytes))
	if err != nil {
		return "", fmt.Errorf("failed to read release feed: %w", err)
	}

	return parseFeed(body)
}

// parseFeed extracts the version from a release feed body.
func parseFeed(body []byte) (string, error) {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return "", fmt.Errorf("release feed is empty")
	}

	if strings.HasPrefix(trimmed, "{") {
		var doc struct {
			TagName string `json:"tag_name"`
			Version string `json:"version"`
		}
		if err := json.Unmarshal([]byte(trimmed), &doc); err != nil {
			return "", fmt.Errorf("failed to parse release feed: %w", err)
		}
		switch {
		case doc.TagName != "":
			return normalize(doc.TagName), nil
		case doc.Version != "":
			return normalize(doc.Version), nil
		default:
			return "", fmt.Errorf("release feed has no tag_name or version")
		}
	}

	return normalize(strings.SplitN(trimmed, "\n", 2)[0]), nil
}

// Notifier checks the running version against a LatestSource.
type Notifier struct {
	current string
	source  LatestSource
	logger  *log.Logger
}

// NewNotifier creates a notifier for the running version. A nil source always yields unknown.
func NewNotifier(current string, source LatestSource) *Notifier {
	return &Notifier{
		current: current,
		source:  source,
		logger:  logger.NewStyledLogger("Version"),
	}
}

// Check returns the version status. Source failures are logged and reported as unknown.
func (n *Notifier) Check(ctx context.Context) doxtypes.VersionStatus {
	if n.source == nil {
		return doxtypes.VersionStatus{Kind: doxtypes.VersionUnknown, Current: n.current}
	}

	latest, err := n.source.Latest(ctx)
	if err != nil {
		n.logger.Debug("Latest version unavailable", "error", err)
		return doxtypes.VersionStatus{Kind: doxtypes.VersionUnknown, Current: n.current}
	}

	status := CheckVersion(n.current, latest)
	n.logger.Debug("Version checked", "current", n.current, "latest", latest, "status", status.Kind)
	return status
}

// Notice returns the message shown for an outdated version, or "" otherwise.
func Notice(status doxtypes.VersionStatus) string {
	if !status.IsOutdated() {
		return ""
	}
	return fmt.Sprintf("DoxHub %s is available (you are running %s). Run 'doxhub changelog --since %s' to see what changed.",
		status.Latest, status.Current, status.Current)
}
