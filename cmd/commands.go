package main

import (
	"context"
	"fmt"
	"time"

	"hbnb-api/app"
	"hbnb-api/config"
	"hbnb-api/db"
	"hbnb-api/logger"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const commandTimeout = 30 * time.Second

func newRootCmd() *cobra.Command {
	var profile string

	root := &cobra.Command{
		Use:           "hbnb",
		Short:         "HBnB API server and maintenance commands",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&profile, "profile", "p", config.Development,
		"Configuration profile (development, testing, production)")

	root.AddCommand(newServeCmd(&profile))
	root.AddCommand(newMigrateCmd(&profile))
	root.AddCommand(newCreateAdminCmd(&profile))
	return root
}

func newServeCmd(profile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(*profile)
		},
	}
}

func newMigrateCmd(profile *string) *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or revert the versioned schema migrations",
	}

	withMigrator := func(fn func(m *db.Migrator) error) error {
		cfg, err := config.Load(*profile, ".")
		if err != nil {
			return err
		}
		logger.Init(cfg.LogLevel)

		m, err := db.NewMigrator(cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer m.Close()
		return fn(m)
	}

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(func(m *db.Migrator) error { return m.Up() })
		},
	})
	migrateCmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Revert the last applied migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(func(m *db.Migrator) error { return m.Down() })
		},
	})
	migrateCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the current migration version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(func(m *db.Migrator) error {
				version, dirty, ok, err := m.Version()
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "no migration applied")
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty: %t)\n", version, dirty)
				return nil
			})
		},
	})
	return migrateCmd
}

func newCreateAdminCmd(profile *string) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an administrator account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New(*profile)
			if err != nil {
				return err
			}
			defer a.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			if err := a.Prepare(ctx); err != nil {
				return err
			}
			user, created, err := a.CreateAdmin(ctx, email, password)
			if err != nil {
				return err
			}

			logger.Log.WithFields(logrus.Fields{
				"user_id": user.ID,
				"created": created,
			}).Info("Administrator ready")
			fmt.Fprintf(cmd.OutOrStdout(), "admin %s (%s)\n", user.Email, user.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Administrator email")
	cmd.Flags().StringVar(&password, "password", "", "Administrator password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
