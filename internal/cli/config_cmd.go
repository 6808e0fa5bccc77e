package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/textshop/inlay/internal/cli/styles"
	"github.com/textshop/inlay/internal/config"
)

// NewConfigCmd builds the config command group.
func NewConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration",
	}

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		RunE: func(_ *cobra.Command, _ []string) error {
			manager, _, err := loadConfig()
			if err != nil {
				return err
			}
			fmt.Println(manager.ConfigFile())
			return nil
		},
	}

	schemaCmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the configuration JSON schema",
		RunE: func(_ *cobra.Command, _ []string) error {
			data, err := config.SchemaJSON()
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		},
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(_ *cobra.Command, _ []string) error {
			_, cfg, err := loadConfig()
			if err != nil {
				return err
			}

			fmt.Println(styles.Title.Render("Effective configuration"))
			fmt.Printf("default_zoom          %.2f\n", cfg.DefaultZoom)
			fmt.Printf("database.path         %s\n", cfg.Database.Path)
			fmt.Printf("logging.level         %s\n", cfg.Logging.Level)
			fmt.Printf("logging.format        %s\n", cfg.Logging.Format)
			fmt.Printf("policy.cache_capacity %d\n", cfg.Policy.CacheCapacity)
			fmt.Printf("downloads.path        %s\n", cfg.Downloads.Path)
			return nil
		},
	}

	configCmd.AddCommand(pathCmd, schemaCmd, showCmd)
	return configCmd
}
