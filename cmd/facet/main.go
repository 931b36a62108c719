package main

import (
	"context"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/facetline/facet/internal/config"
	"github.com/facetline/facet/internal/statusline"
	"github.com/facetline/facet/internal/update"
	"github.com/facetline/facet/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "facet",
	Short: "A fast, configurable statusline for Claude Code",
	Long: `facet renders the Claude Code statusline.

Invoked with no arguments it reads one status document from stdin and prints
one line: active model, abbreviated working directory, git branch, and
approximate context usage. Claude Code wires it up via the statusLine command
setting; you rarely run it by hand.

Config precedence (highest to lowest):
  .claude/facet.local.toml    personal overrides (gitignore this)
  .claude/facet.toml          repo config (commit for your team)
  ~/.claude/facet.toml        global defaults`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return statusline.Run(cmd.Context(), os.Stdin, os.Stdout)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("facet %s\n", version.Version)
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .claude/facet.toml in the current directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Init("."); err != nil {
			return err
		}
		fmt.Println("Created .claude/facet.toml")
		return nil
	},
}

var initGlobalCmd = &cobra.Command{
	Use:   "init-global",
	Short: "Create ~/.claude/facet.toml",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.InitGlobal(); err != nil {
			return err
		}
		fmt.Println("Created ~/.claude/facet.toml")
		return nil
	},
}

var checkUpdateCmd = &cobra.Command{
	Use:   "check-update",
	Short: "Check for a newer release (no install)",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Checking for updates...")

		info, err := update.Check()
		if err != nil {
			fmt.Printf("Current version: %s\n", version.Version)
			return fmt.Errorf("could not check for updates: %w", err)
		}

		fmt.Printf("Current version: %s\n", info.CurrentVersion)
		fmt.Printf("Latest version:  %s\n", info.LatestVersion)
		if info.UpdateAvailable {
			fmt.Println("\nUpdate available! Run 'facet update' to install.")
		} else {
			fmt.Println("\nYou're on the latest version.")
		}
		return nil
	},
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Download and install the latest release",
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := update.Check()
		if err != nil {
			return fmt.Errorf("could not check for updates: %w", err)
		}
		if !info.UpdateAvailable {
			fmt.Println("You're already on the latest version.")
			return nil
		}

		fmt.Printf("Downloading %s...\n", info.LatestVersion)
		ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
		defer cancel()
		if err := update.Install(ctx); err != nil {
			return err
		}
		fmt.Printf("Updated to %s!\n", info.LatestVersion)
		return nil
	},
}

var segmentsCmd = &cobra.Command{
	Use:   "segments",
	Short: "List available segments and whether each is enabled",
	Run: func(cmd *cobra.Command, args []string) {
		wd, _ := os.Getwd()
		cfg := config.Load(wd)
		r := statusline.New(statusline.Input{}, cfg)

		for _, name := range r.Registry().List() {
			mark := " "
			if slices.Contains(cfg.Segments, name) {
				mark = "*"
			}
			fmt.Printf(" %s %s\n", mark, name)
		}
		fmt.Println("\n* = enabled (see the segments key in facet.toml)")
	},
}

func main() {
	rootCmd.AddCommand(versionCmd, initCmd, initGlobalCmd, checkUpdateCmd, updateCmd, segmentsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
