// Package cli provides the inlay command-line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/textshop/inlay/internal/config"
	infraconfig "github.com/textshop/inlay/internal/infrastructure/config"
)

// NewRootCmd builds the root command.
func NewRootCmd(version, commit, buildDate string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "inlay",
		Short: "Embedded web views for the Textshop editor",
		Long: `inlay hosts WebKit web views on behalf of an editor: it owns widget
lifecycle, navigation policy, focus arbitration, and script execution, and
hands results back as editor values.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("inlay %s\n", version)
			fmt.Printf("commit: %s\n", commit)
			fmt.Printf("built: %s\n", buildDate)
		},
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(NewHostCmd())
	rootCmd.AddCommand(NewCSPCmd())
	rootCmd.AddCommand(NewZoomCmd())
	rootCmd.AddCommand(NewPurgeCmd())
	rootCmd.AddCommand(NewConfigCmd())

	return rootCmd
}

// loadConfig builds the config manager and loads the configuration.
func loadConfig() (*infraconfig.Manager, *config.Config, error) {
	manager, err := infraconfig.NewManager()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize config: %w", err)
	}
	if err := manager.Load(); err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	return manager, manager.Get(), nil
}
