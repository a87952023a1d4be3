package main

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/megareality/estate/internal/repository"
	"github.com/megareality/estate/internal/seed"
	"github.com/megareality/estate/pkg/config"
	"github.com/megareality/estate/pkg/database"
	"github.com/megareality/estate/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// openDB loads config, initializes logging and opens the configured SQL store.
func openDB(ctx context.Context) (*gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if _, err := logger.Init(cfg.LogLevel, cfg.LogFormat); err != nil {
		return nil, err
	}
	if cfg.DBDriver == "memory" {
		return nil, fmt.Errorf("DB_DRIVER=memory has no schema to migrate")
	}
	return database.Open(ctx, database.Options{Driver: cfg.DBDriver, DSN: cfg.DatabaseURL, Verbose: cfg.IsDevelopment()})
}

func upCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Create or update every table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := openDB(cmd.Context())
			if err != nil {
				return err
			}
			defer database.Close(db)
			defer logger.Sync()

			if err := repository.AutoMigrate(db); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			logger.L().Info("migrations completed", zap.Int("tables", len(repository.Models())))
			return nil
		},
	}
}

func seedCmd() *cobra.Command {
	var migrate bool
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert the default admin and sample properties into empty tables",
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := openDB(cmd.Context())
			if err != nil {
				return err
			}
			defer database.Close(db)
			defer logger.Sync()

			if migrate {
				if err := repository.AutoMigrate(db); err != nil {
					return fmt.Errorf("migration failed: %w", err)
				}
			}
			res, err := seed.Run(cmd.Context(), repository.NewGormRepositories(db), time.Now().UTC())
			if err != nil {
				return fmt.Errorf("seed failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d admin(s), %d properties\n", res.Admins, res.Properties)
			return nil
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", true, "run migrations before seeding")
	return cmd
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show row counts per table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := openDB(cmd.Context())
			if err != nil {
				return err
			}
			defer database.Close(db)
			defer logger.Sync()

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "TABLE\tEXISTS\tROWS")
			for _, m := range repository.Models() {
				stmt := &gorm.Statement{DB: db}
				if err := stmt.Parse(m); err != nil {
					return err
				}
				table := stmt.Schema.Table
				if !db.Migrator().HasTable(m) {
					fmt.Fprintf(tw, "%s\tno\t-\n", table)
					continue
				}
				var n int64
				if err := db.WithContext(cmd.Context()).Model(m).Count(&n).Error; err != nil {
					return err
				}
				fmt.Fprintf(tw, "%s\tyes\t%d\n", table, n)
			}
			return tw.Flush()
		},
	}
}
