package cli

import (
	"context"
	"crypto/subtle"
	"fmt"
)

// passwd rotates the master password. Pending changes are saved first so
// the rotation works on the current state of the vault file.
func (a *App) passwd(ctx context.Context, _ []string) error {
	current, err := GetPassword(a.out, "Current password")
	if err != nil {
		return err
	}
	if subtle.ConstantTimeCompare([]byte(current), []byte(a.password)) != 1 {
		return fmt.Errorf("current password is incorrect")
	}
	next, err := GetNewPassword(a.out)
	if err != nil {
		return err
	}

	if a.dirty {
		if err := a.save(ctx); err != nil {
			return err
		}
	}
	if err := a.container.RotateFile(ctx, a.config.VaultPath, a.password, next); err != nil {
		return err
	}
	repo, err := a.container.Load(ctx, a.config.VaultPath, next)
	if err != nil {
		return err
	}
	a.repo, a.password = repo, next
	fmt.Fprintln(a.out, "Password changed.")
	return nil
}
