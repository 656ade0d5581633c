package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mtr/internal/cli"
	"mtr/internal/cli/commands"
	"mtr/internal/config"
	"mtr/sample"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "mtr",
		Short:   "Micro test runner",
		Long:    `A lightweight test runner for grouped test cases. Registers named groups of named test cases, executes them sequentially and reports structured assertion failures.`,
		Version: version,
		// Failing tests surface as an error; don't dump usage for that
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Create initial config with defaults and environment overrides
	cfg := config.New()
	cfg.ApplyEnv()

	// Registration happens once, before any test executes
	reg, err := sample.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg, reg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
