package system

import (
	"errors"
	"fmt"

	"github.com/julianstephens/jitsuna/internal/cli"
	"github.com/julianstephens/jitsuna/internal/constants"
	"github.com/julianstephens/jitsuna/internal/keyring"
	"github.com/julianstephens/jitsuna/internal/storage"
	"github.com/julianstephens/jitsuna/internal/storage/postgres"
)

type KeyringCmd struct {
	Set    KeyringSetCmd    `cmd:"" help:"Store a PostgreSQL connection string in the OS keyring."`
	Get    KeyringGetCmd    `cmd:"" help:"Show the stored connection string (password masked)."`
	Delete KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
	Status KeyringStatusCmd `cmd:"" help:"Check whether the OS keyring is usable."`
}

type KeyringSetCmd struct {
	ConnectionString string `arg:"" help:"PostgreSQL connection string to store in keyring."`
}

func (cmd *KeyringSetCmd) Run(ctx *cli.Context) error {
	if !storage.IsPostgres(cmd.ConnectionString) {
		return errors.New("connection string must be a valid PostgreSQL connection string")
	}

	// The keyring is encrypted, so a password is allowed here.
	if _, err := postgres.ValidateConnString(cmd.ConnectionString); err != nil {
		if !errors.Is(err, postgres.ErrEmbeddedCredentials) {
			return fmt.Errorf("invalid connection string: %w", err)
		}
		ctx.Println("⚠️  Connection string contains a password; it will be stored in the encrypted OS keyring.")
	}

	if err := keyring.SetConnectionString(cmd.ConnectionString); err != nil {
		return err
	}

	ctx.Printf("%s Connection string stored in OS keyring\n", ctx.Mark(cli.StatusOK))
	ctx.Printf("  %s now connects to it unless %s is set\n", constants.AppName, constants.EnvDBConnection)
	return nil
}

type KeyringGetCmd struct{}

func (cmd *KeyringGetCmd) Run(ctx *cli.Context) error {
	connStr, err := keyring.GetConnectionString()
	if errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("no connection string found in keyring, use '%s keyring set' to store one", constants.AppName)
	}
	if err != nil {
		return err
	}

	ctx.Println(keyring.MaskPassword(connStr))
	return nil
}

type KeyringDeleteCmd struct{}

func (cmd *KeyringDeleteCmd) Run(ctx *cli.Context) error {
	err := keyring.DeleteConnectionString()
	if errors.Is(err, keyring.ErrNotFound) {
		return errors.New("no connection string found in keyring")
	}
	if err != nil {
		return err
	}

	ctx.Printf("%s Connection string deleted from OS keyring\n", ctx.Mark(cli.StatusOK))
	return nil
}

type KeyringStatusCmd struct{}

func (cmd *KeyringStatusCmd) Run(ctx *cli.Context) error {
	if !keyring.IsAvailable() {
		ctx.Printf("%s OS keyring is not available on this system\n", ctx.Mark(cli.StatusFail))
		return errors.New("keyring unavailable")
	}

	ctx.Printf("%s OS keyring is available\n", ctx.Mark(cli.StatusOK))
	if _, err := keyring.GetConnectionString(); err == nil {
		ctx.Printf("%s Connection string is stored in keyring\n", ctx.Mark(cli.StatusOK))
	} else {
		ctx.Println("ℹ No connection string stored in keyring")
	}
	return nil
}
