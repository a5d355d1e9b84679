package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/narwhalmedia/catalog/pkg/auth"
)

var (
	// Token flags
	subject string
	roles   []string
)

// tokenCmd issues a signed access token, mostly for local development
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue an access token",
	Long: `Issue a signed access token for the given subject and roles.

Examples:
  catalog token --sub alice
  catalog token --sub root --role admin`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if subject == "" {
			return errors.New("--sub is required")
		}
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.AccessTokenDuration)
		token, expiresAt, err := jwtManager.GenerateToken(auth.NewPrincipal(subject, roles...))
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), token)
		fmt.Fprintf(cmd.ErrOrStderr(), "expires at %s\n", expiresAt.Format("2006-01-02T15:04:05Z07:00"))
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&subject, "sub", "", "Subject (user id) of the token")
	tokenCmd.Flags().StringSliceVar(&roles, "role", []string{auth.RoleUser}, "Roles granted to the subject")
	rootCmd.AddCommand(tokenCmd)
}
