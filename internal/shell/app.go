package shell

import (
	"context"
	"io"
	"os"

	"doxhub/internal/catalog"
	"doxhub/internal/compat"
	"doxhub/internal/config"
	"doxhub/internal/dispatch"
	"doxhub/internal/logger"
	"doxhub/internal/opener"
	"doxhub/internal/output"
	"doxhub/internal/registry"
	mdrender "doxhub/internal/render"
	"doxhub/internal/session"
	"doxhub/internal/theme"
	"doxhub/internal/version"
)

// App holds the collaborators of one interactive run.
type App struct {
	cfg       config.Config
	prompter  dispatch.Prompter
	opener    opener.Opener
	clipboard opener.Clipboard
	source    version.LatestSource
	input     io.Reader
	out       io.Writer
	platform  func() (string, string)
}

// Option configures an App.
type Option func(*App)

// WithPrompter replaces the terminal prompter.
func WithPrompter(p dispatch.Prompter) Option {
	return func(a *App) {
		a.prompter = p
	}
}

// WithInput reads answers from r instead of the terminal, echoing them to the output.
func WithInput(r io.Reader) Option {
	return func(a *App) {
		a.input = r
	}
}

// WithOpener replaces the opener selected by the open mode.
func WithOpener(o opener.Opener) Option {
	return func(a *App) {
		a.opener = o
	}
}

// WithClipboard replaces the system clipboard.
func WithClipboard(c opener.Clipboard) Option {
	return func(a *App) {
		a.clipboard = c
	}
}

// WithLatestSource replaces the release feed.
func WithLatestSource(s version.LatestSource) Option {
	return func(a *App) {
		a.source = s
	}
}

// WithOutput sets where menus and messages are written.
func WithOutput(w io.Writer) Option {
	return func(a *App) {
		a.out = w
	}
}

// WithPlatform overrides OS and runtime detection.
func WithPlatform(goos, runtimeVersion string) Option {
	return func(a *App) {
		a.platform = func() (string, string) { return goos, runtimeVersion }
	}
}

// NewApp creates an App for cfg.
func NewApp(cfg config.Config, options ...Option) *App {
	a := &App{
		cfg:      cfg,
		out:      os.Stdout,
		platform: compat.Detect,
	}
	for _, opt := range options {
		opt(a)
	}
	return a
}

// Run performs the startup checks and runs the session until the user exits.
// Startup failures are returned as typed errors before any menu is shown.
func (a *App) Run(ctx context.Context) error {
	goos, runtimeVersion := a.platform()
	result := compat.Check(goos, runtimeVersion, a.cfg.Compat)
	if !result.OK() {
		return result.Err()
	}
	logger.Debug("Host compatible", "os", result.OS, "runtime", result.Runtime)

	reg, err := catalog.Load(a.cfg.Catalog)
	if err != nil {
		return err
	}
	logger.Debug("Catalog loaded", "categories", reg.Len(), "root", reg.Root())

	printer := a.Printer()

	op := a.opener
	if op == nil {
		if op, err = opener.New(opener.Mode(a.cfg.OpenMode), a.out); err != nil {
			return err
		}
	}

	var dispatchOptions []dispatch.Option
	if clip := a.fallbackClipboard(); clip != nil {
		dispatchOptions = append(dispatchOptions, dispatch.WithClipboard(clip))
	}

	prompter := a.prompter
	if prompter == nil && a.input != nil {
		prompter = NewLinePrompter(a.input, a.out)
	}
	if prompter == nil {
		terminal := NewPrompter()
		defer terminal.Close()
		prompter = terminal
	}

	loop := session.New(reg, dispatch.New(prompter, op, printer, dispatchOptions...), prompter, printer,
		session.WithSessionID(session.NewID(a.cfg.TestMode)),
		session.WithNotice(a.updateNotice(ctx)))

	return loop.Run()
}

// Printer builds the output printer for the configured theme.
func (a *App) Printer() *output.Printer {
	return NewPrinter(a.cfg, a.out)
}

// NewPrinter builds a printer for cfg writing to out. Test mode always prints plain text.
func NewPrinter(cfg config.Config, out io.Writer) *output.Printer {
	if cfg.TestMode {
		return output.NewPrinter(output.WithWriter(out), output.TestMode())
	}

	th := theme.Load(cfg.Theme)
	options := []output.Option{output.WithWriter(out), output.WithStyles(th)}
	if md, err := mdrender.NewMarkdown(th.GlamourStyle(), mdrender.DefaultWordWrap); err == nil {
		options = append(options, output.WithMarkdown(md))
	} else {
		logger.Debug("Markdown rendering disabled", "error", err)
	}
	return output.NewPrinter(options...)
}

func (a *App) fallbackClipboard() opener.Clipboard {
	if !a.cfg.ClipboardFallback {
		return nil
	}
	if a.clipboard != nil {
		return a.clipboard
	}
	system := opener.NewSystemClipboard()
	if !system.Available() {
		return nil
	}
	return system
}

// updateNotice asks the release feed for the latest version. The lookup is bounded by
// the configured timeout and never fails startup.
func (a *App) updateNotice(ctx context.Context) string {
	if !a.cfg.CheckUpdates || a.cfg.TestMode {
		return ""
	}

	source := a.source
	if source == nil {
		if a.cfg.UpdateURL == "" {
			return ""
		}
		source = version.NewHTTPSource(a.cfg.UpdateURL, a.cfg.UpdateTimeout)
	}

	ctx, cancel := context.WithTimeout(ctx, a.cfg.UpdateTimeout)
	defer cancel()

	return version.Notice(version.NewNotifier(version.GetVersion(), source).Check(ctx))
}

// LoadRegistry loads the catalog configured in cfg.
func LoadRegistry(cfg config.Config) (*registry.Registry, error) {
	return catalog.Load(cfg.Catalog)
}
