package cli

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/jhoicas/biztime-api/pkg/jwt"
)

func tokenCmd(e *env) *cobra.Command {
	var (
		subject string
		role    string
		secret  string
		minutes int
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Emite un Bearer Token para las rutas de escritura",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if secret == "" {
				secret = e.cfg.JWT.Secret
			}
			if secret == "" {
				return errors.New("JWT_SECRET no configurado (use --secret)")
			}
			if !slices.Contains([]string{jwt.RoleAdmin, jwt.RoleEditor}, role) {
				return fmt.Errorf("rol desconocido %q (admin, editor)", role)
			}
			if minutes <= 0 {
				minutes = e.cfg.JWT.Expiration
			}
			tok, err := jwt.Generate(secret, subject, role, e.cfg.JWT.Issuer, minutes)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "biztimectl", "subject del token")
	cmd.Flags().StringVar(&role, "role", jwt.RoleEditor, "rol: admin o editor")
	cmd.Flags().StringVar(&secret, "secret", "", "secreto HS256 (por defecto JWT_SECRET)")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "vigencia en minutos (por defecto JWT_EXPIRATION_MINUTES)")
	return cmd
}
