package cli

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/textshop/inlay/internal/cli/styles"
	"github.com/textshop/inlay/internal/infrastructure/persistence/sqlite"
	"github.com/textshop/inlay/internal/logging"
)

// openState opens the state database from config.
func openState(ctx context.Context) (*sql.DB, error) {
	_, cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return sqlite.NewConnection(ctx, cfg.Database.Path)
}

func stateContext() context.Context {
	return logging.WithContext(context.Background(), logging.NewFromEnv())
}

// NewZoomCmd builds the zoom command group over the persisted per-domain
// zoom levels.
func NewZoomCmd() *cobra.Command {
	zoomCmd := &cobra.Command{
		Use:   "zoom",
		Short: "Inspect persisted per-domain zoom levels",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List persisted zoom levels",
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx := stateContext()
			db, err := openState(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = sqlite.Close(db) }()

			levels, err := sqlite.NewZoomRepository(db).GetAll(ctx)
			if err != nil {
				return fmt.Errorf("failed to list zoom levels: %w", err)
			}
			if len(levels) == 0 {
				fmt.Println(styles.Subtle.Render("no persisted zoom levels"))
				return nil
			}

			fmt.Println(styles.Title.Render("Persisted zoom levels"))
			for _, level := range levels {
				fmt.Printf("%s %s\n",
					styles.Badge.Render(fmt.Sprintf("%d%%", level.Percentage())),
					level.Domain)
			}
			return nil
		},
	}

	resetCmd := &cobra.Command{
		Use:   "reset <domain>",
		Short: "Remove the persisted zoom level for a domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx := stateContext()
			db, err := openState(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = sqlite.Close(db) }()

			if err := sqlite.NewZoomRepository(db).Delete(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to reset zoom: %w", err)
			}
			fmt.Println(styles.Success.Render("zoom reset for " + args[0]))
			return nil
		},
	}

	zoomCmd.AddCommand(listCmd, resetCmd)
	return zoomCmd
}

// NewPurgeCmd builds the purge command, clearing all persisted state.
func NewPurgeCmd() *cobra.Command {
	var yes bool

	purgeCmd := &cobra.Command{
		Use:   "purge",
		Short: "Clear all persisted state (zoom levels and download log)",
		RunE: func(_ *cobra.Command, _ []string) error {
			if !yes {
				fmt.Println(styles.Warning.Render("refusing to purge without --yes"))
				return nil
			}

			ctx := stateContext()
			db, err := openState(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = sqlite.Close(db) }()

			if err := sqlite.NewZoomRepository(db).DeleteAll(ctx); err != nil {
				return fmt.Errorf("failed to purge zoom levels: %w", err)
			}
			if err := sqlite.NewDownloadRepository(db).Purge(ctx); err != nil {
				return fmt.Errorf("failed to purge download log: %w", err)
			}

			fmt.Println(styles.Success.Render("persisted state cleared"))
			return nil
		},
	}

	purgeCmd.Flags().BoolVar(&yes, "yes", false, "Confirm the purge")
	return purgeCmd
}
