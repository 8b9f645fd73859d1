package main

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/heartmarshall/dewiktionary/internal/auth"
)

// minSecretLen matches the server's auth.jwt_secret validation.
const minSecretLen = 32

func tokenCommand() *cli.Command {
	return &cli.Command{
		Name:  "token",
		Usage: "Mint an API token allowed to ingest pages",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "subject",
				Aliases:  []string{"s"},
				Usage:    "client the token is issued to",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "secret",
				Usage:    "HS256 signing secret",
				EnvVars:  []string{"AUTH_JWT_SECRET"},
				Required: true,
			},
			&cli.StringFlag{
				Name:    "issuer",
				Usage:   "token issuer",
				EnvVars: []string{"AUTH_JWT_ISSUER"},
				Value:   "dewiktionary",
			},
			&cli.DurationFlag{
				Name:    "ttl",
				Usage:   "token lifetime",
				EnvVars: []string{"AUTH_TOKEN_TTL"},
				Value:   720 * time.Hour,
			},
		},
		Action: func(c *cli.Context) error {
			secret := c.String("secret")
			if len(secret) < minSecretLen {
				return fmt.Errorf("secret must be at least %d characters (got %d)", minSecretLen, len(secret))
			}
			if c.Duration("ttl") <= 0 {
				return fmt.Errorf("ttl must be > 0 (got %v)", c.Duration("ttl"))
			}

			token, err := auth.NewJWTManager(secret, c.String("issuer"), c.Duration("ttl")).GenerateToken(c.String("subject"))
			if err != nil {
				return fmt.Errorf("generate token: %w", err)
			}
			fmt.Fprintln(c.App.Writer, token)
			return nil
		},
	}
}
