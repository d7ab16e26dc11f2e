// Package cli implements innoutctl, the operator command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/LiquidSebabas/InnOutPG/internal/app"
	"github.com/LiquidSebabas/InnOutPG/internal/config"
	"github.com/LiquidSebabas/InnOutPG/internal/document"
	"github.com/LiquidSebabas/InnOutPG/internal/messaging/kafka"
	"github.com/LiquidSebabas/InnOutPG/internal/user"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// Services are opened lazily so migrate commands work on an empty database.
type Services struct {
	Documents document.Service
	Users     user.Service
	Close     func()
}

type ServiceFactory func(ctx context.Context, cfg *config.Config) (*Services, error)

// App holds the CLI application state.
type App struct {
	cfg      *config.Config
	services ServiceFactory
	out      io.Writer
	root     *cobra.Command

	migrationsDir string
}

func NewApp(cfg *config.Config, services ServiceFactory) *App {
	if services == nil {
		services = connectServices
	}
	a := &App{cfg: cfg, services: services, out: os.Stdout}

	a.root = &cobra.Command{
		Use:           "innoutctl",
		Short:         "Operator tool for the InnOut scheduling service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	a.root.PersistentFlags().StringVar(&a.migrationsDir, "migrations", cfg.MigrationsDir, "directory containing migration files")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.migrateCmd())
	a.root.AddCommand(a.documentsCmd())
	a.root.AddCommand(a.usersCmd())

	return a
}

// SetOutput redirects command output, used by tests.
func (a *App) SetOutput(w io.Writer) {
	a.out = w
	a.root.SetOut(w)
	a.root.SetErr(w)
}

func (a *App) SetArgs(args []string) {
	a.root.SetArgs(args)
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(a.out, "innoutctl %s (commit: %s)\n", Version, Commit)
		},
	}
}

func (a *App) withServices(ctx context.Context, fn func(*Services) error) error {
	svcs, err := a.services(ctx, a.cfg)
	if err != nil {
		return err
	}
	if svcs.Close != nil {
		defer svcs.Close()
	}
	return fn(svcs)
}

func connectServices(_ context.Context, cfg *config.Config) (*Services, error) {
	in, err := app.Connect(cfg)
	if err != nil {
		return nil, err
	}

	logger := zap.L()
	return &Services{
		Documents: document.NewService(
			in.SQLDB,
			document.NewRepository(in.GormDB),
			kafka.NewOutboxRepository(in.SQLDB),
			in.Redis,
			document.NewConsolidator(cfg.Location()),
			logger,
		),
		Users: user.NewService(user.NewRepository(in.GormDB), logger),
		Close: in.Close,
	}, nil
}
