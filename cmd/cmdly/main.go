// Package main provides the cmdly CLI application entry point.
// cmdly is a small interactive command shell with a simulated peer-to-peer
// chat session built in.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"cmdly/internal/config"
	"cmdly/internal/logger"
	"cmdly/internal/shell"
	"cmdly/internal/version"
)

var (
	logLevel string
	logFile  string
	cfgFile  string
	testMode bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "cmdly",
	Short: "cmdly - an interactive command shell",
	Long: `cmdly is an interactive command-line shell. It reads a line, resolves it
to a registered command, executes it and prints a colorized result, and it
ships a simulated client-server chat session for playing with two-party
message exchange without any network.`,
	Run: runShell, // Default behavior is to run the interactive shell
}

// shellCmd is the explicit version of the default behavior.
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start interactive shell mode",
	Run:   runShell,
}

// versionCmd prints version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(_ *cobra.Command, _ []string) {
		info, err := version.Get()
		if err != nil {
			logger.Fatal("Invalid build version", "error", err)
		}
		fmt.Println(info.String())
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Set log level (debug|info|warn|error) [default: info]")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to file instead of stderr")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to config file [default: ~/.config/cmdly/config.yaml]")
	rootCmd.PersistentFlags().BoolVar(&testMode, "test-mode", false, "Run in deterministic test mode")

	for _, name := range []string{"log-level", "log-file", "config", "test-mode"} {
		if err := viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name)); err != nil {
			fmt.Fprintf(os.Stderr, "Error binding %s flag: %v\n", name, err)
			os.Exit(1)
		}
	}

	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(versionCmd)

	// Configure the logger before any command runs.
	cobra.OnInitialize(initLogging)
}

func initLogging() {
	if err := logger.Configure(logLevel, logFile, testMode); err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring logger: %v\n", err)
		os.Exit(1)
	}
}

func runShell(_ *cobra.Command, _ []string) {
	logger.Info("Starting cmdly", "version", version.Short())

	cfg, err := config.Load(cfgFile)
	if err != nil {
		logger.Fatal("Failed to load configuration", "error", err)
	}
	config.SetGlobal(cfg)

	sh, err := shell.New(cfg)
	if err != nil {
		// Alias collisions and the like: configuration errors, fatal at
		// startup only.
		logger.Fatal("Failed to initialize shell", "error", err)
	}

	if err := sh.Run(); err != nil {
		logger.Fatal("Shell terminated abnormally", "error", err)
	}
}
