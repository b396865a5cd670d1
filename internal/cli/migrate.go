package cli

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/jhoicas/biztime-api/internal/infrastructure/postgres"
)

func migrateCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Aplica las migraciones pendientes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return e.withPool(cmd.Context(), func(pool *pgxpool.Pool) error {
				applied, err := postgres.Migrate(cmd.Context(), pool)
				if err != nil {
					return err
				}
				if len(applied) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "(sin migraciones pendientes)")
					return nil
				}
				for _, name := range applied {
					fmt.Fprintf(cmd.OutOrStdout(), "- %s\n", name)
				}
				e.log.Info().Int("count", len(applied)).Msg("migraciones aplicadas")
				return nil
			})
		},
	}
}

func seedCmd(e *env) *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Carga los datos de ejemplo (apple, ibm, sus facturas e industrias)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return e.withPool(cmd.Context(), func(pool *pgxpool.Pool) error {
				if migrate {
					if _, err := postgres.Migrate(cmd.Context(), pool); err != nil {
						return err
					}
				}
				if err := postgres.Seed(cmd.Context(), pool); err != nil {
					return err
				}
				e.log.Info().Msg("datos de ejemplo cargados")
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&migrate, "migrate", false, "aplicar migraciones antes de cargar los datos")
	return cmd
}
