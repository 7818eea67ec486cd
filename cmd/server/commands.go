package main

import (
	"context"
	"fmt"
	"os"

	"tasting-contest-backend/internal/api/routes"
	"tasting-contest-backend/internal/auth"
	"tasting-contest-backend/internal/authz"
	"tasting-contest-backend/internal/database"
	"tasting-contest-backend/internal/repository"
	"tasting-contest-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		db, err := database.Initialize(cfg.DatabaseURL, &database.Options{SkipMigrate: !cfg.AutoMigrate})
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}

		if cfg.IsProduction() {
			gin.SetMode(gin.ReleaseMode)
		}

		router, err := routes.SetupRoutes(db, cfg)
		if err != nil {
			return err
		}

		port := cfg.Port
		if port == "" {
			port = "7008"
		}
		logrus.Infof("Starting server on port %s", port)
		return router.Run(":" + port)
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if _, err := database.Initialize(cfg.DatabaseURL, nil); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		logrus.Info("Schema is up to date")
		return nil
	},
}

var progressCmd = &cobra.Command{
	Use:   "progress <contest-id>",
	Short: "Print the statement progress of a contest or one of its divisions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		contestID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid contest id: %w", err)
		}
		scopeID := contestID
		if raw, _ := cmd.Flags().GetString("scope"); raw != "" {
			if scopeID, err = uuid.Parse(raw); err != nil {
				return fmt.Errorf("invalid scope id: %w", err)
			}
		}
		rawActor, _ := cmd.Flags().GetString("as")
		actor, err := uuid.Parse(rawActor)
		if err != nil {
			return fmt.Errorf("--as must be a user id: %w", err)
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		db, err := database.Initialize(cfg.DatabaseURL, &database.Options{SkipMigrate: true})
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}

		reports := service.NewReportService(repository.NewStore(db), authz.NewGate(authz.DefaultPolicy()), service.NewValidator())
		progress, err := reports.GetProgress(context.Background(), actor, contestID, scopeID)
		if err != nil {
			return err
		}

		tw := table.NewWriter()
		tw.SetOutputMirror(os.Stdout)
		tw.SetTitle(fmt.Sprintf("%s %s", progress.ScopeType, progress.ScopeID))
		tw.AppendHeader(table.Row{"Theme", "Done", "Todo", "Total"})
		var done, todo, total int
		for _, p := range progress.Themes {
			tw.AppendRow(table.Row{p.Theme, p.Done, p.Todo, p.Total})
			done += p.Done
			todo += p.Todo
			total += p.Total
		}
		tw.AppendFooter(table.Row{"All", done, todo, total})
		tw.Render()
		return nil
	},
}

var tokenCmd = &cobra.Command{
	Use:   "token <user-id>",
	Short: "Issue a bearer token for a user, for local testing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid user id: %w", err)
		}
		handle, _ := cmd.Flags().GetString("handle")

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.IsProduction() {
			return fmt.Errorf("tokens are not issued in production")
		}
		authService, err := auth.NewAuthService(cfg)
		if err != nil {
			return err
		}
		token, err := authService.GenerateJWT(userID, handle)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func registerCommands() {
	progressCmd.Flags().String("scope", "", "division id (defaults to the contest itself)")
	progressCmd.Flags().String("as", "", "id of the user the report is read as")
	_ = progressCmd.MarkFlagRequired("as")

	tokenCmd.Flags().String("handle", "", "handle carried in the token")

	rootCmd.AddCommand(serveCmd, migrateCmd, progressCmd, tokenCmd)
}
