package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/xyproto/ted"
	"github.com/xyproto/ted/internal/config"
	"github.com/xyproto/ted/internal/log"
)

var (
	configPath string
	logFile    string
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:           "ted [file]",
	Short:         "A small terminal text editor",
	Long:          `Ted is a small terminal text editor. Ctrl-S saves, Ctrl-Q quits and Ctrl-F searches.`,
	Version:       ted.Version,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "path to config file (default $XDG_CONFIG_HOME/ted/config.yaml)")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "write a log to this file")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "log at debug level")
}

func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			log.Warn("%v", err)
			return config.Default(), nil
		}
		path = p
	}
	return config.Load(path)
}

// setupLogging returns a function that closes the log file, if any.
func setupLogging(cfg *config.Config) (func(), error) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	if debug {
		level = log.LevelDebug
	}
	log.SetLevel(level)

	path := cfg.LogFile
	if logFile != "" {
		path = logFile
	}
	if path == "" {
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	log.SetOutput(f)
	return func() { f.Close() }, nil
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	closeLog, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("stdout: %w", ted.ErrNotTerminal)
	}

	e := ted.New(ted.NewTTY(), cfg)
	if len(args) == 1 {
		if err := e.Open(args[0]); err != nil {
			return err
		}
	}
	return e.Run()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ted: %v\n", err)
		os.Exit(1)
	}
}
