package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/quantmind-br/repoclone/internal/app"
	"github.com/quantmind-br/repoclone/internal/cloner"
	"github.com/quantmind-br/repoclone/internal/config"
	"github.com/quantmind-br/repoclone/internal/domain"
	"github.com/quantmind-br/repoclone/internal/git"
	"github.com/quantmind-br/repoclone/internal/progress"
	"github.com/quantmind-br/repoclone/internal/tui"
	"github.com/quantmind-br/repoclone/internal/utils"
	"github.com/quantmind-br/repoclone/pkg/version"
)

var (
	cfgFile string
	verbose bool
	quiet   bool

	// Dependencies for testing
	stdout     io.Writer = os.Stdout
	newBackend           = func(logger *utils.Logger) domain.Cloner {
		return cloner.New(cloner.Options{Logger: logger})
	}
	newProber = func(cfg *config.Config, logger *utils.Logger) domain.RemoteProber {
		return git.NewProber(git.ProberOptions{
			Retrier:         git.NewRetrier(git.RetrierOptions{MaxRetries: cfg.Clone.ProbeRetries}),
			Logger:          logger.WithComponent("probe"),
			InsecureSkipTLS: cfg.Clone.IgnoreCertErrors,
		})
	}
	selectStarter = tui.SelectStarter
	libraryInfo   = cloner.Library
)

// displayedError marks errors the progress display has already printed
type displayedError struct {
	err error
}

func (e *displayedError) Error() string { return e.err.Error() }
func (e *displayedError) Unwrap() error { return e.err }

func main() {
	if err := rootCmd.Execute(); err != nil {
		if msg := errorMessage(err); msg != "" {
			fmt.Fprintln(os.Stderr, tui.ErrorStyle.Render(msg))
		}
		os.Exit(1)
	}
}

// errorMessage returns the text to print for err, or "" when it was already shown
func errorMessage(err error) string {
	var shown *displayedError
	if errors.As(err, &shown) {
		return ""
	}
	return "error: " + err.Error()
}

var rootCmd = &cobra.Command{
	Use:   "repoclone <url> [path]",
	Short: "Clone a git repository with live progress",
	Long: `repoclone clones a git repository and shows a single status line
combining network transfer, object indexing and file checkout progress.

When path is omitted the repository is cloned into a directory named after
it, the way git clone does.`,
	Version:       version.Short(),
	Args:          cobra.MaximumNArgs(2),
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          run,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.repoclone/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "No progress display, errors only")
	rootCmd.PersistentFlags().String("style", config.DefaultDisplayStyle, "Progress style (line, bar, none)")
	rootCmd.PersistentFlags().StringP("branch", "b", "", "Branch to check out instead of the remote HEAD")
	rootCmd.PersistentFlags().Bool("no-probe", false, "Skip listing the remote before cloning")

	// Clone flags
	rootCmd.Flags().Bool("bare", false, "Create a bare repository")

	// Bind flags to viper
	_ = viper.BindPFlag("display.style", rootCmd.PersistentFlags().Lookup("style"))
	_ = viper.BindPFlag("clone.branch", rootCmd.PersistentFlags().Lookup("branch"))
	_ = viper.BindPFlag("clone.bare", rootCmd.Flags().Lookup("bare"))

	// Add subcommands
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(starterCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

// setup loads configuration, applies the flags viper does not bind and
// creates the logger
func setup(cmd *cobra.Command) (*config.Config, *utils.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if noProbe, _ := cmd.Flags().GetBool("no-probe"); noProbe {
		cfg.Clone.Probe = false
	}
	if quiet {
		cfg.Display.Style = progress.StyleNone
	}

	return cfg, newLogger(cfg), nil
}

func newLogger(cfg *config.Config) *utils.Logger {
	level := cfg.Logging.Level
	switch {
	case verbose:
		level = "debug"
	case quiet:
		level = "error"
	}
	return utils.NewLogger(utils.LoggerOptions{
		Level:   level,
		Format:  cfg.Logging.Format,
		Verbose: verbose,
	})
}

// signalContext returns a context cancelled on SIGINT or SIGTERM
func signalContext(logger *utils.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-sigCh:
			logger.Warn().Msg("Interrupted, aborting clone...")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigCh)
	}()

	return ctx, cancel
}

// baseRequest builds a clone request from configuration
func baseRequest(cfg *config.Config) domain.CloneRequest {
	return domain.CloneRequest{
		Branch:           cfg.Clone.Branch,
		Bare:             cfg.Clone.Bare,
		AuthToken:        cfg.Clone.AuthToken,
		IgnoreCertErrors: cfg.Clone.IgnoreCertErrors,
	}
}

func run(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}

	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}

	req := baseRequest(cfg)
	req.URL = args[0]
	if len(args) > 1 {
		req.Path = args[1]
	}

	ctx, cancel := signalContext(logger)
	defer cancel()

	_, err = runClone(ctx, cfg, logger, req)
	return err
}

// runClone wires the backend, the prober and the display and runs one clone
func runClone(ctx context.Context, cfg *config.Config, logger *utils.Logger, req domain.CloneRequest) (*domain.CloneResult, error) {
	c, err := app.NewCloner(app.ClonerOptions{
		Backend:      newBackend(logger),
		Prober:       newProber(cfg, logger),
		Logger:       logger,
		Output:       stdout,
		Style:        cfg.Display.Style,
		Probe:        cfg.Clone.Probe,
		ProbeTimeout: cfg.Clone.ProbeTimeout,
	})
	if err != nil {
		return nil, err
	}

	result, err := c.Clone(ctx, req)
	if err != nil {
		if cfg.Display.Style != progress.StyleNone && errors.Is(err, domain.ErrCloneFailed) {
			return nil, &displayedError{err: err}
		}
		return nil, err
	}
	return result, nil
}

var starterCmd = &cobra.Command{
	Use:   "starter [name]",
	Short: "Clone a starter project into the current directory",
	Long: `Clones one of the configured starter projects into ./<name>.
Without a name an interactive menu lists the starters from the config file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd)
		if err != nil {
			return err
		}

		name := ""
		if len(args) > 0 {
			name = args[0]
		}
		accessible, _ := cmd.Flags().GetBool("accessible")

		ctx, cancel := signalContext(logger)
		defer cancel()

		return runStarter(ctx, cfg, logger, name, accessible)
	},
}

func init() {
	starterCmd.Flags().Bool("accessible", false, "Use a plain prompt instead of the interactive menu")
}

func runStarter(ctx context.Context, cfg *config.Config, logger *utils.Logger, name string, accessible bool) error {
	var starter domain.Starter
	var err error
	if name != "" {
		starter, err = cfg.FindStarter(name)
	} else {
		starter, err = selectStarter(cfg.Starters, accessible)
	}
	if err != nil {
		if errors.Is(err, tui.ErrCancelled) {
			return nil
		}
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	fmt.Fprintln(stdout, tui.TitleStyle.Render(starter.Name))
	_, err = runClone(ctx, cfg, logger, app.StarterRequest(starter, cwd, baseRequest(cfg)))
	return err
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("path")
		force, _ := cmd.Flags().GetBool("force")
		return runConfigInit(path, force)
	},
}

func init() {
	configInitCmd.Flags().String("path", "", "where to write the file (default is ~/.repoclone/config.yaml)")
	configInitCmd.Flags().Bool("force", false, "Overwrite an existing file")
}

func runConfigInit(path string, force bool) error {
	if path == "" {
		path = config.ConfigFilePath()
	}
	path = utils.ExpandPath(path)

	if err := config.Save(config.Default(), path, force); err != nil {
		return err
	}
	fmt.Fprintln(stdout, tui.SuccessStyle.Render("Wrote "+path))
	return nil
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check system dependencies",
	Long:  "Reports the linked libgit2 build, the configuration file and write access to the current directory.",
	RunE: func(cmd *cobra.Command, args []string) error {
		runDoctor(stdout)
		return nil
	},
}

// runDoctor prints one line per check and reports whether every critical check passed
func runDoctor(w io.Writer) bool {
	fmt.Fprintln(w, tui.TitleStyle.Render("Checking system dependencies..."))
	allPassed := true

	lib := libraryInfo()
	fmt.Fprintln(w, tui.CheckLine(tui.StatusOK, "libgit2", lib.Version))

	if lib.HTTPS {
		fmt.Fprintln(w, tui.CheckLine(tui.StatusOK, "https", "supported"))
	} else {
		fmt.Fprintln(w, tui.CheckLine(tui.StatusFail, "https", "libgit2 was built without HTTPS"))
		allPassed = false
	}

	if lib.SSH {
		fmt.Fprintln(w, tui.CheckLine(tui.StatusOK, "ssh", "supported"))
	} else {
		fmt.Fprintln(w, tui.CheckLine(tui.StatusWarn, "ssh", "libgit2 was built without SSH, ssh:// URLs will fail"))
	}

	if _, err := config.Load(); err != nil {
		fmt.Fprintln(w, tui.CheckLine(tui.StatusWarn, "config", err.Error()))
	} else if used := viper.ConfigFileUsed(); used != "" {
		fmt.Fprintln(w, tui.CheckLine(tui.StatusOK, "config", used))
	} else {
		fmt.Fprintln(w, tui.CheckLine(tui.StatusOK, "config", "defaults (run 'repoclone config init' to create a file)"))
	}

	if utils.CanWrite(".") {
		fmt.Fprintln(w, tui.CheckLine(tui.StatusOK, "write", "current directory is writable"))
	} else {
		fmt.Fprintln(w, tui.CheckLine(tui.StatusFail, "write", "current directory is not writable"))
		allPassed = false
	}

	fmt.Fprintln(w)
	if allPassed {
		fmt.Fprintln(w, tui.SuccessStyle.Render("All critical checks passed!"))
	} else {
		fmt.Fprintln(w, tui.ErrorStyle.Render("Some checks failed. Please resolve the issues above."))
	}
	return allPassed
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(stdout, version.Full())
		fmt.Fprintf(stdout, "libgit2 %s\n", libraryInfo().Version)
	},
}
