// Package main provides the DoxHub CLI application entry point.
// DoxHub is an interactive menu of public OSINT resources that opens them in the browser.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"doxhub/internal/catalog"
	"doxhub/internal/changelog"
	"doxhub/internal/config"
	"doxhub/internal/logger"
	"doxhub/internal/shell"
	"doxhub/internal/version"
	"doxhub/pkg/doxtypes"
)

// Exit codes.
const (
	exitError         = 1
	exitIncompatible  = 2
	exitCatalogFailed = 3
)

var (
	configFile string
	v          = config.New()
	cfg        config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "doxhub",
	Short: "DoxHub - menu of OSINT resources",
	Long: `DoxHub is an interactive menu of public open-source intelligence resources.
Pick a category, pick a resource, type the value to look up and DoxHub opens it in your browser.`,
	Version:           version.GetFormattedVersion(),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initConfig,
	RunE:              runShell,
}

// versionCmd shows detailed build information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Display the version, build information and platform of DoxHub.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.GetDetailedVersion())
	},
}

// changelogCmd shows the release history
var changelogCmd = &cobra.Command{
	Use:   "changelog",
	Short: "Show the DoxHub change log",
	Long: `Display the DoxHub release history, newest first.
Use --since to list only what changed after a version, --type to filter by kind of change
and --search to match words in versions, titles and descriptions.`,
	Args: cobra.NoArgs,
	RunE: runChangelog,
}

// catalogCmd groups the catalog subcommands
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect menu catalogs",
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Check a catalog file and report every problem found",
	Long: `Validate a catalog file. Without a path the configured catalog is checked,
falling back to the built-in catalog.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCatalogValidate,
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the menu tree of the configured catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		reg, err := shell.LoadRegistry(cfg)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), shell.CatalogTree(reg, shell.NewPrinter(cfg, cmd.OutOrStdout())))
		return nil
	},
}

func main() {
	os.Exit(execute())
}

func execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return 0
	}

	fmt.Fprintln(os.Stderr, "Error:", err)
	return exitCode(err)
}

// exitCode maps startup errors to distinct process exit codes.
// Startup errors other than compatibility ones all come from the catalog.
func exitCode(err error) int {
	switch {
	case doxtypes.IsCompatibilityError(err):
		return exitIncompatible
	case doxtypes.IsStartupError(err):
		return exitCatalogFailed
	default:
		return exitError
	}
}

func init() {
	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
		return err
	})

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "Config file [default: $XDG_CONFIG_HOME/doxhub/config.yaml]")
	flags.String("catalog", "", "Catalog file to use instead of the built-in one")
	flags.String("log-level", "", "Set log level (debug|info|warn|error) [default: info]")
	flags.String("log-file", "", "Write logs to file instead of stderr")
	flags.Bool("no-update-check", false, "Do not look up the latest release at startup")
	flags.Bool("print-only", false, "Print addresses instead of opening the browser")
	flags.Bool("test-mode", false, "Run in deterministic test mode")

	// Bind flags to viper
	for key, flag := range map[string]string{
		config.KeyCatalog:  "catalog",
		config.KeyLogLevel: "log-level",
		config.KeyLogFile:  "log-file",
		config.KeyTestMode: "test-mode",
	} {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			fmt.Fprintf(os.Stderr, "Error binding %s flag: %v\n", flag, err)
			os.Exit(exitError)
		}
	}

	changelogCmd.Flags().String("since", "", "Only show changes released after this version")
	changelogCmd.Flags().String("type", "", "Only show changes of this type (feature|fix|change|docs)")
	changelogCmd.Flags().String("search", "", "Only show changes mentioning this text")

	catalogCmd.AddCommand(catalogValidateCmd)
	catalogCmd.AddCommand(catalogListCmd)

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(changelogCmd)
	rootCmd.AddCommand(catalogCmd)
}

// initConfig resolves settings and configures the logger before any command runs.
func initConfig(cmd *cobra.Command, _ []string) error {
	if err := config.LoadDotEnv(config.DotEnvDirs()...); err != nil {
		return err
	}
	if err := config.ReadFile(v, configFile); err != nil {
		return err
	}

	flags := cmd.Flags()
	if noUpdate, _ := flags.GetBool("no-update-check"); noUpdate {
		v.Set(config.KeyCheckUpdates, false)
	}
	if printOnly, _ := flags.GetBool("print-only"); printOnly {
		v.Set(config.KeyOpenMode, config.OpenModePrint)
	}

	loaded, err := config.Load(v)
	if err != nil {
		return err
	}
	cfg = loaded

	if err := logger.Configure(cfg.LogLevel, cfg.LogFile, cfg.TestMode); err != nil {
		return fmt.Errorf("failed to configure logger: %w", err)
	}
	return nil
}

func runShell(cmd *cobra.Command, _ []string) error {
	logger.Info("Starting DoxHub", "version", version.GetVersion())

	options := []shell.Option{shell.WithOutput(cmd.OutOrStdout())}
	if stdin := os.Stdin.Fd(); !isatty.IsTerminal(stdin) && !isatty.IsCygwinTerminal(stdin) {
		options = append(options, shell.WithInput(cmd.InOrStdin()))
	}
	return shell.NewApp(cfg, options...).Run(cmd.Context())
}

func runChangelog(cmd *cobra.Command, _ []string) error {
	history, err := changelog.Load()
	if err != nil {
		return err
	}

	entries := history.Entries()
	if since, _ := cmd.Flags().GetString("since"); since != "" {
		if entries, err = history.Since(since); err != nil {
			return err
		}
	}
	if entryType, _ := cmd.Flags().GetString("type"); entryType != "" {
		byType, err := history.ByType(entryType)
		if err != nil {
			return err
		}
		entries = intersect(entries, byType)
	}
	if query, _ := cmd.Flags().GetString("search"); query != "" {
		entries = intersect(entries, history.Search(query))
	}

	printer := shell.NewPrinter(cfg, cmd.OutOrStdout())
	printer.Markdown(changelog.Markdown(entries))
	if len(entries) > 0 {
		printer.Info(changelog.Summarize(entries).String())
	}
	return nil
}

func intersect(entries, keep []changelog.Entry) []changelog.Entry {
	var out []changelog.Entry
	for _, entry := range entries {
		for _, k := range keep {
			if entry == k {
				out = append(out, entry)
				break
			}
		}
	}
	return out
}

func runCatalogValidate(cmd *cobra.Command, args []string) error {
	path := cfg.Catalog
	if len(args) == 1 {
		path = args[0]
	}

	source := path
	if source == "" {
		source = catalog.EmbeddedSource
	}

	reg, err := catalog.Load(path)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: invalid\n%s\n", source, formatProblems(err))
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d categories, root %q)\n", source, reg.Len(), reg.Root())
	return nil
}

// run executes the CLI with args and context, for tests.
func run(ctx context.Context, args ...string) error {
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// formatProblems lists catalog problems one per line.
func formatProblems(err error) string {
	var loadErr *doxtypes.CatalogLoadError
	if !errors.As(err, &loadErr) || len(loadErr.Problems) == 0 {
		return err.Error()
	}
	return "  - " + strings.Join(loadErr.Problems, "\n  - ")
}
