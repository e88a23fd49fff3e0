package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/cobra"

	_ "taskflow/docs"
	"taskflow/internal/config"
	"taskflow/internal/server"
)

var rootCmd = &cobra.Command{
	Use:           "taskflow",
	Short:         "Task tracking service",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		s, err := server.Init(cfg)
		if err != nil {
			return fmt.Errorf("server initialization failed: %w", err)
		}

		s.Run()
		return nil
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
			cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName,
		)
		m, err := migrate.New("file://"+cfg.MigrationsPath, dsn)
		if err != nil {
			return fmt.Errorf("failed to open migrations: %w", err)
		}
		defer m.Close()

		if err := m.Up(); err != nil {
			if errors.Is(err, migrate.ErrNoChange) {
				log.Println("Database schema is up to date")
				return nil
			}
			return fmt.Errorf("migration failed: %w", err)
		}

		log.Println("Migrations applied")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

// @title           Taskflow API
// @version         1.0
// @description     Task tracking API with statuses, labels, assignees and filtered listings.

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
