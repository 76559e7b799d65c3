package vault

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/archivevault/internal/common"
	"github.com/dmitrijs2005/archivevault/internal/filex"
	"github.com/dmitrijs2005/archivevault/internal/models"
)

func readFile(path string) ([]byte, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", common.ErrIOFailure, path, err)
	}
	return blob, nil
}

func writeFile(path string, blob []byte) error {
	if err := filex.AtomicWriteFile(path, blob, common.VaultFileMode); err != nil {
		return fmt.Errorf("%w: %w", common.ErrIOFailure, err)
	}
	return nil
}

// Save seals repo and atomically replaces the file at path.
func (c *Container) Save(ctx context.Context, path string, repo *models.Repository, password string) error {
	blob, err := c.Seal(ctx, repo, password)
	if err != nil {
		return err
	}
	if err := writeFile(path, blob); err != nil {
		return err
	}
	c.log.Info(ctx, "vault saved", "path", path, "repository_id", repo.Metadata.RepositoryID)
	return nil
}

// Load reads and unseals the vault at path.
func (c *Container) Load(ctx context.Context, path, password string) (*models.Repository, error) {
	if err := checkPassword(password); err != nil {
		return nil, err
	}
	blob, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return c.Unseal(ctx, blob, password)
}

// RotateFile re-encrypts the vault at path under newPassword and replaces
// the file atomically.
func (c *Container) RotateFile(ctx context.Context, path, currentPassword, newPassword string) error {
	blob, err := readFile(path)
	if err != nil {
		return err
	}
	rotated, err := c.Reencrypt(ctx, blob, currentPassword, newPassword)
	if err != nil {
		return err
	}
	return writeFile(path, rotated)
}

// InspectFile reads the unauthenticated header of the vault at path.
func InspectFile(path string) (*models.Metadata, error) {
	blob, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return Inspect(blob)
}
