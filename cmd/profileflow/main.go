// cmd/profileflow/main.go
//
// This is the entry point for the profileflow CLI.
//
// Flow:
// 1. Make sure <dir>/.profileflow exists (config + journal)
// 2. Load the config and apply flag overrides
// 3. Launch the TUI on the alternate screen

package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/kingrea/profileflow/internal/config"
	"github.com/kingrea/profileflow/internal/logging"
	"github.com/kingrea/profileflow/internal/tui"
)

var (
	// Global flags
	projectDir   string
	startRoute   string
	logoutPolicy string
)

var rootCmd = &cobra.Command{
	Use:   "profileflow",
	Short: "Login, fill in your details, review them",
	Long: `profileflow walks through three screens: login, a personal-details form,
and a read-only summary. Nothing you enter is saved once the program exits.

Run without arguments to start the interactive terminal UI.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger, err := logging.New(cfg.ProjectDir)
		if err != nil {
			return err
		}
		defer logger.Close()

		if err := cfg.Override(logoutPolicy, startRoute); err != nil {
			logger.Printf("flags: %v", err)
			return err
		}
		app, err := tui.NewApp(cfg)
		if err != nil {
			logger.Printf("start TUI: %v", err)
			return fmt.Errorf("start TUI: %w", err)
		}

		// Run blocks until the user quits
		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			logger.Printf("run TUI: %v", err)
			return fmt.Errorf("run TUI: %w (see %s)", err, logger.Path())
		}
		return nil
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or change .profileflow/config.yaml",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), cfg.ProjectConfigPath())
		return nil
	},
}

var setLogoutPolicyCmd = &cobra.Command{
	Use:       "set-logout-policy retain|erase",
	Short:     "Choose whether logout keeps form data as prefill",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"retain", "erase"},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if err := cfg.SetLogoutPolicy(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "logout policy set to %s\n", cfg.LogoutPolicy())
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&projectDir, "dir", "d", "", "directory holding .profileflow (default: current directory)")
	rootCmd.Flags().StringVar(&startRoute, "route", "", "route to open at startup, e.g. / or /form")
	rootCmd.Flags().StringVar(&logoutPolicy, "logout-policy", "", "override logout policy for this run (retain|erase)")

	configCmd.AddCommand(configPathCmd, setLogoutPolicyCmd)
	rootCmd.AddCommand(configCmd)
}

func loadConfig() (*config.Config, error) {
	dir := projectDir
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
		dir = cwd
	}
	if err := config.InitAppDir(dir); err != nil {
		return nil, err
	}
	return config.NewConfig(dir)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
