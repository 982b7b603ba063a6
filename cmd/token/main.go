// Command token mints a bearer token for the definition API when
// server.jwtSecret is configured.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"go-lexicon/internal/auth"
	"go-lexicon/internal/config"

	"github.com/spf13/cobra"
)

var errNoSecret = errors.New("server.jwtSecret is not set; the API is open and needs no token")

func newRootCmd() *cobra.Command {
	var (
		configPath string
		client     string
		ttl        time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for the definition API",
		Long: `Mint an HS256 bearer token signed with server.jwtSecret.

Pass it as "Authorization: Bearer <token>" on /api/* requests.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			if cfg.Server.JWTSecret == "" {
				return errNoSecret
			}
			if ttl <= 0 {
				return fmt.Errorf("--ttl must be positive, got %s", ttl)
			}
			token, err := auth.GenerateJWT(cfg.Server.JWTSecret, client, ttl)
			if err != nil {
				return fmt.Errorf("sign token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "config.json", "path to config.json")
	cmd.Flags().StringVar(&client, "client", "cli", "client name stored in the token")
	cmd.Flags().DurationVar(&ttl, "ttl", 30*24*time.Hour, "token lifetime")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
