package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/fenilsonani/tidyfiles/internal/config"
	"github.com/fenilsonani/tidyfiles/internal/logging"
	"github.com/fenilsonani/tidyfiles/internal/organizer"
	"github.com/fenilsonani/tidyfiles/internal/reporter"
	"github.com/fenilsonani/tidyfiles/internal/tables"
	"github.com/fenilsonani/tidyfiles/internal/ui"
)

var (
	Version   = "1.0.0"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

var (
	configPath string
	dataDir    string
	verbosity  int
	quiet      bool
	dryRun     bool
	denylist   bool
	outputFmt  string
	outputFile string
	query      string
	tablesFmt  string
	initConfig bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tidyfiles [directory]",
	Short: "Organize a directory by file type or by shared names",
	Long: `TidyFiles sorts the files of one directory into sub-folders:
  - by type: Images, Videos, Documents, ... based on the extension
  - by name: files sharing a word such as "invoice" or "trip" are grouped together

Run without a command for the interactive menu.`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("interactive mode needs a terminal; use 'tidyfiles type', 'name' or 'list' instead")
		}

		s, err := newSession(cmd, true)
		if err != nil {
			return err
		}

		return ui.RunInteractive(s.org, directoryArg(args))
	},
}

var typeCmd = &cobra.Command{
	Use:   "type [directory]",
	Short: "Move files into folders named after their type",
	Long: `Moves every file into a folder named after its category (Images, Videos,
Audio, Documents, Archives, Code, ...). Executables and scripts are never moved.
Existing files are never overwritten.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd, false)
		if err != nil {
			return err
		}

		report, err := s.org.OrganizeByType(directoryArg(args))
		if err != nil {
			return err
		}
		return s.writeReport(report)
	},
}

var nameCmd = &cobra.Command{
	Use:   "name [directory]",
	Short: "Group files that share a name",
	Long: `Without --query, detects words shared by several filenames and moves each
group into a folder named after the word. With --query, moves every file whose
name contains the text into a folder of that name.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd, false)
		if err != nil {
			return err
		}

		report, err := s.org.OrganizeByName(directoryArg(args), query)
		if err != nil {
			return err
		}
		return s.writeReport(report)
	},
}

var listCmd = &cobra.Command{
	Use:   "list [directory]",
	Short: "List files grouped by category",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd, false)
		if err != nil {
			return err
		}

		listing, err := s.org.List(directoryArg(args))
		if err != nil {
			return err
		}

		if s.format == reporter.FormatSummary {
			ui.PrintListing(os.Stdout, listing)
			return nil
		}
		return reporter.New(os.Stdout, s.format).Listing(listing)
	},
}

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Print the stop words, categories and dangerous extensions in use",
	Long: `Prints the effective lookup tables and where each one was loaded from.
Tables are read from ./data, then from the data directory; anything missing
or invalid falls back to the built-in defaults.

The output can be saved into the data directory and edited.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := tables.ParseExportFormat(tablesFmt)
		if err != nil {
			return err
		}

		s, err := newSession(cmd, false)
		if err != nil {
			return err
		}

		return s.org.Tables().Export(os.Stdout, format)
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display the configuration file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if initConfig {
			path, err := config.EnsureConfigExists()
			if err != nil {
				return err
			}
			fmt.Printf("Config file: %s\n", path)
			return nil
		}

		cfgPath := configPath
		if cfgPath == "" {
			var err error
			if cfgPath, err = config.GetConfigPath(); err != nil {
				return err
			}
		}

		fmt.Printf("Config file: %s\n", cfgPath)
		if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
			fmt.Println("Config file does not exist. Using default configuration.")
			fmt.Println("\nTo create a config file:")
			fmt.Println("  tidyfiles config --init")
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		dir, err := cfg.ResolveDataDir()
		if err != nil {
			return err
		}
		fmt.Printf("Data directory: %s\n", dir)

		return nil
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "directory holding the lookup tables")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "log more (-v info, -vv debug)")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "log nothing")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "show what would be moved without moving anything")
	rootCmd.PersistentFlags().BoolVar(&denylist, "skip-dangerous", false, "also skip executables and scripts when grouping by name")

	for _, c := range []*cobra.Command{typeCmd, nameCmd, listCmd} {
		c.Flags().StringVarP(&outputFmt, "output", "o", "", "output format (summary, table, json, yaml)")
	}
	for _, c := range []*cobra.Command{typeCmd, nameCmd} {
		c.Flags().StringVar(&outputFile, "file", "", "also save the report to a file")
	}

	nameCmd.Flags().StringVarP(&query, "query", "q", "", "group every file whose name contains this text")
	tablesCmd.Flags().StringVar(&tablesFmt, "format", "yaml", "output format (json, yaml, toml)")
	configCmd.Flags().BoolVar(&initConfig, "init", false, "write a default config file if none exists")

	rootCmd.AddCommand(typeCmd)
	rootCmd.AddCommand(nameCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(configCmd)
}

// session is everything a command needs once flags and config are resolved
type session struct {
	cfg    *config.Config
	logger *slog.Logger
	format reporter.OutputFormat
	org    *organizer.Organizer
}

// newSession loads the config, applies flag overrides, and builds the
// organizer. The interactive UI only logs when -v is given so the screen
// stays clean.
func newSession(cmd *cobra.Command, interactive bool) (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	format, err := reporter.ParseFormat(cfg.OutputFormat)
	if err != nil {
		return nil, err
	}

	logger := logging.NewLogger(os.Stderr, logging.ResolveLevel(cfg.LogLevel, verbosity, quiet))
	if interactive && verbosity == 0 {
		logger = logging.NewDiscardLogger()
	}

	dir, err := cfg.ResolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data directory: %w", err)
	}
	t := tables.NewLoader(logger, tables.LocalDataDir, dir).Load()

	return &session{
		cfg:    cfg,
		logger: logger,
		format: format,
		org:    organizer.New(t, cfg.OrganizerOptions(), logger),
	}, nil
}

// applyFlags overrides config fields with flags the user set explicitly
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("data-dir") {
		cfg.DataDir = dataDir
	}
	if flags.Changed("dry-run") {
		cfg.DryRun = dryRun
	}
	if flags.Changed("skip-dangerous") {
		cfg.NameModeDenylist = denylist
	}
	if flags.Changed("output") {
		cfg.OutputFormat = outputFmt
	}
}

func (s *session) writeReport(report *organizer.Report) error {
	if outputFile != "" {
		if err := reporter.SaveToFile(report, outputFile, s.format); err != nil {
			return fmt.Errorf("failed to save report: %w", err)
		}
		s.logger.Info("Report saved", "file", outputFile)
	}

	if err := reporter.New(os.Stdout, s.format).Report(report); err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}
	return nil
}

func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.Load(configPath)
	}

	cfgPath, err := config.GetConfigPath()
	if err != nil {
		return nil, err
	}

	return config.Load(cfgPath)
}

// directoryArg returns the optional directory argument. Empty means the
// current directory.
func directoryArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
