// Package cli implementa biztimectl, la herramienta de operación de Biztime:
// migraciones, datos de ejemplo y emisión de tokens.
package cli

import (
	"context"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/jhoicas/biztime-api/internal/infrastructure/postgres"
	"github.com/jhoicas/biztime-api/pkg/config"
	"github.com/jhoicas/biztime-api/pkg/logger"
)

// Execute ejecuta el comando raíz y termina el proceso con código 1 si falla.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// env agrupa lo que comparten los subcomandos.
type env struct {
	cfg *config.Config
	log *logger.Logger
}

// NewRootCmd construye el árbol de comandos.
func NewRootCmd() *cobra.Command {
	e := &env{}
	var level string

	cmd := &cobra.Command{
		Use:          "biztimectl",
		Short:        "Herramienta de operación de Biztime",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if level != "" {
				cfg.App.LogLevel = level
			}
			e.cfg = cfg
			e.log = logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Output: cmd.ErrOrStderr()})
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&level, "log-level", "", "nivel de log (trace, debug, info, warn, error)")
	cmd.AddCommand(migrateCmd(e), seedCmd(e), tokenCmd(e))
	return cmd
}

// withPool abre el pool, ejecuta fn y lo cierra.
func (e *env) withPool(ctx context.Context, fn func(*pgxpool.Pool) error) error {
	pool, err := postgres.NewPool(ctx, e.cfg.DB)
	if err != nil {
		return err
	}
	defer pool.Close()
	return fn(pool)
}
