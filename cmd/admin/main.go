package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"portfolio-site/internal/config"
	"portfolio-site/internal/db"
	"portfolio-site/internal/domain"
	"portfolio-site/internal/importer"
	"portfolio-site/internal/logging"
	userrepo "portfolio-site/internal/repository/adminuser"
	sessionrepo "portfolio-site/internal/repository/session"
	authsvc "portfolio-site/internal/service/auth"
	"portfolio-site/internal/service/content"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type app struct {
	cfg     config.Config
	logger  *zap.Logger
	pool    *pgxpool.Pool
	content *content.Service
	auth    *authsvc.Service
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{}
	if err := a.rootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "admin",
		Short:        "Maintenance tasks for the portfolio content store",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.open(cmd.Context())
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			a.close()
		},
	}
	root.AddCommand(a.importCmd(), a.rebuildCmd(), a.createUserCmd())
	return root
}

func (a *app) open(ctx context.Context) error {
	_ = godotenv.Load()
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.LogLevel, "console", "admin")
	if err != nil {
		return err
	}
	pool, err := db.Connect(ctx, cfg.DBConnString, logger)
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	a.cfg, a.logger, a.pool = cfg, logger, pool
	a.content = content.NewService(content.PostgresStores(pool), nil, logger)
	a.auth = authsvc.New(userrepo.NewPostgres(pool, logger), sessionrepo.NewPostgres(pool),
		authsvc.Options{Secret: cfg.JWTSecret, SessionTTL: cfg.SessionTTL()}, logger)
	return nil
}

func (a *app) close() {
	if a.pool != nil {
		a.pool.Close()
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

func (a *app) importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Append projects, hackathons, experiences and links from a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			doc, err := importer.Parse(f)
			if err != nil {
				return err
			}
			counts, err := importer.New(a.content, a.logger).Run(cmd.Context(), doc)
			if err != nil {
				return err
			}
			for _, coll := range domain.Collections() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %d\n", coll, counts[coll])
			}
			return nil
		},
	}
}

func (a *app) rebuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rebuild [COLLECTION]",
		Short: "Renumber order_index to 0..n-1 for one collection or all of them",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return a.content.RebuildAll(cmd.Context())
			}
			coll, err := domain.ParseCollection(args[0])
			if err != nil {
				return err
			}
			return a.content.Rebuild(cmd.Context(), coll)
		},
	}
}

func (a *app) createUserCmd() *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Create an admin account, or reset its password if it exists",
		RunE: func(cmd *cobra.Command, _ []string) error {
			u, err := a.auth.EnsureUser(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "admin %s ready (%s)\n", u.Email, u.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "admin email")
	cmd.Flags().StringVar(&password, "password", "", "admin password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
