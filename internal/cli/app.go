package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/archivevault/internal/common"
	"github.com/dmitrijs2005/archivevault/internal/config"
	"github.com/dmitrijs2005/archivevault/internal/filex"
	"github.com/dmitrijs2005/archivevault/internal/logging"
	"github.com/dmitrijs2005/archivevault/internal/models"
	"github.com/dmitrijs2005/archivevault/internal/vault"
)

// maxPasswordAttempts bounds how often the user is asked for the password
// when opening an existing vault.
const maxPasswordAttempts = 3

type App struct {
	config    *config.Config
	container *vault.Container
	log       logging.Logger
	reader    *bufio.Reader
	out       io.Writer

	repo     *models.Repository
	password string
	dirty    bool
}

func NewApp(c *config.Config, log logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		config:    c,
		container: vault.New(c.KDFParams(), log),
		log:       log,
		reader:    bufio.NewReader(in),
		out:       out,
	}
}

// Run opens the vault and serves commands until exit or end of input.
func (a *App) Run(ctx context.Context) error {
	if err := a.open(ctx); err != nil {
		return err
	}
	return a.Root(ctx)
}

func (a *App) open(ctx context.Context) error {
	path := a.config.VaultPath
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return a.create(ctx)
	}

	meta, err := vault.InspectFile(path)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Opening vault %s (updated %s)\n", meta.RepositoryID, formatTime(meta.UpdatedAt))

	for attempt := 1; attempt <= maxPasswordAttempts; attempt++ {
		pw, err := GetPassword(a.out, "Master password")
		if err != nil {
			return err
		}
		repo, err := a.container.Load(ctx, path, pw)
		if err == nil {
			a.repo, a.password = repo, pw
			a.log.Info(ctx, "vault opened", "path", path, "entries", len(repo.Entries))
			return nil
		}
		if !errors.Is(err, common.ErrAuthenticationFailed) && !errors.Is(err, common.ErrInvalidArgument) {
			return err
		}
		fmt.Fprintln(a.out, "Wrong password or damaged vault file.")
	}
	return fmt.Errorf("open %s: %w", path, common.ErrAuthenticationFailed)
}

func (a *App) create(ctx context.Context) error {
	path := a.config.VaultPath
	fmt.Fprintf(a.out, "Creating new vault at %s\n", path)

	pw, err := GetNewPassword(a.out)
	if err != nil {
		return err
	}
	if err := filex.EnsureParentDir(path); err != nil {
		return fmt.Errorf("%w: %w", common.ErrIOFailure, err)
	}

	repo := models.NewRepository()
	if err := a.container.Save(ctx, path, repo, pw); err != nil {
		return err
	}
	a.repo, a.password = repo, pw
	return nil
}

func (a *App) save(ctx context.Context) error {
	if err := a.container.Save(ctx, a.config.VaultPath, a.repo, a.password); err != nil {
		return err
	}
	a.dirty = false
	return nil
}

// changed marks the repository as modified.
func (a *App) changed() {
	a.repo.Touch()
	a.dirty = true
}
