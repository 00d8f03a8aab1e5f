package main

import (
	"errors"
	"os"

	gsheet "budgetbook/internal/sheets/google"
)

type sheetsLoginCmd struct {
	Client string `env:"GOOGLE_OAUTH_CLIENT_FILE" help:"OAuth client JSON downloaded from the Google console."`
	Token  string `env:"GOOGLE_OAUTH_TOKEN_FILE" default:"token.json" help:"Where to save the token."`
	Port   string `env:"OAUTH_REDIRECT_PORT" default:"8085" help:"Local port for the OAuth redirect."`
}

func (c *sheetsLoginCmd) Run(rc *runContext) error {
	var clientJSON []byte
	switch {
	case os.Getenv("GOOGLE_OAUTH_CLIENT_JSON") != "":
		clientJSON = []byte(os.Getenv("GOOGLE_OAUTH_CLIENT_JSON"))
	case c.Client != "":
		b, err := os.ReadFile(c.Client)
		if err != nil {
			return err
		}
		clientJSON = b
	default:
		return errors.New("set --client, GOOGLE_OAUTH_CLIENT_FILE or GOOGLE_OAUTH_CLIENT_JSON")
	}

	cfg, err := gsheet.OAuthConfig(clientJSON)
	if err != nil {
		return err
	}
	return gsheet.Login(rc.ctx, cfg, c.Port, c.Token, rc.out)
}
