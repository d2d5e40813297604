package cli

import (
	"database/sql"
	"fmt"

	actx "go.hackfix.me/dashfeed/app/context"
	aerrors "go.hackfix.me/dashfeed/app/errors"
	"go.hackfix.me/dashfeed/crypto"
)

// The Key command manages the API key dashboard clients must submit to access
// the widget endpoints.
type Key struct {
	New struct {
		Save bool `help:"Store the generated key in the configuration file."`
	} `kong:"cmd,help='Generate a new random API key.'"`
}

// Run the key command.
func (c *Key) Run(appCtx *actx.Context) error {
	key, err := crypto.NewAPIKey()
	if err != nil {
		return aerrors.NewWithCause("failed generating API key", err)
	}

	if c.New.Save {
		appCtx.Config.Auth.APIKey = sql.Null[string]{V: key, Valid: true}
		if err = appCtx.Config.Save(); err != nil {
			return aerrors.NewWithCause("failed saving API key", err,
				"path", appCtx.Config.Path())
		}
	}

	fmt.Fprintln(appCtx.Stdout, key)

	return nil
}
