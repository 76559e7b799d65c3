package cli

import (
	"context"
	"fmt"
)

func (a *App) tag(_ context.Context, args []string) error {
	e, err := a.entryArg(args, 2)
	if err != nil {
		return err
	}
	if !e.AddTag(args[1]) {
		fmt.Fprintf(a.out, "%s already has tag %s\n", e.ID, args[1])
		return nil
	}
	a.changed()
	fmt.Fprintf(a.out, "tag %s added\n", args[1])
	return nil
}

func (a *App) delete(_ context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	if err := a.repo.RemoveEntry(args[0]); err != nil {
		return err
	}
	a.dirty = true
	fmt.Fprintf(a.out, "Deleted %s\n", args[0])
	return nil
}
