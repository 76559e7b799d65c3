package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/archivevault/internal/models"
)

const mask = "********"

func formatTime(t time.Time) string {
	return t.Local().Format(time.DateTime)
}

func (a *App) info(_ context.Context, _ []string) error {
	m := a.repo.Metadata
	fmt.Fprintf(a.out, "Repository: %s\n", m.RepositoryID)
	fmt.Fprintf(a.out, "Version:    %d\n", m.Version)
	fmt.Fprintf(a.out, "Created:    %s\n", formatTime(m.CreatedAt))
	fmt.Fprintf(a.out, "Updated:    %s\n", formatTime(m.UpdatedAt))
	if len(m.Tags) > 0 {
		fmt.Fprintf(a.out, "Tags:       %s\n", strings.Join(m.Tags, ", "))
	}
	fmt.Fprintf(a.out, "Entries:    %d\n", len(a.repo.Entries))
	return nil
}

func (a *App) list(_ context.Context, _ []string) error {
	if len(a.repo.Entries) == 0 {
		fmt.Fprintln(a.out, "No entries.")
		return nil
	}
	for _, e := range a.repo.Entries {
		tags := ""
		if len(e.Tags) > 0 {
			tags = " [" + strings.Join(e.Tags, ", ") + "]"
		}
		fmt.Fprintf(a.out, "%s  %s%s\n", e.ID, e.Title, tags)
	}
	return nil
}

func (a *App) entryArg(args []string, n int) (*models.Entry, error) {
	if len(args) != n {
		return nil, errUsage
	}
	return a.repo.FindEntry(args[0])
}

func (a *App) show(_ context.Context, args []string) error {
	e, err := a.entryArg(args, 1)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, e.Title)
	for _, f := range e.Fields {
		v := f.Value
		if f.Concealed {
			v = mask
		}
		fmt.Fprintf(a.out, "  %s: %s\n", f.Name, v)
	}
	for _, at := range e.Attachments {
		fmt.Fprintf(a.out, "  attachment %s: %s (%s, %d bytes)\n", at.ID, at.Name, at.MimeType, len(at.Data))
	}
	if len(e.Tags) > 0 {
		fmt.Fprintf(a.out, "  tags: %s\n", strings.Join(e.Tags, ", "))
	}
	fmt.Fprintf(a.out, "  updated: %s\n", formatTime(e.UpdatedAt))
	return nil
}

func (a *App) reveal(_ context.Context, args []string) error {
	if len(args) != 2 {
		return errUsage
	}
	e, err := a.repo.FindEntry(args[0])
	if err != nil {
		return err
	}
	f, ok := e.Field(args[1])
	if !ok {
		return fmt.Errorf("field %q not found", args[1])
	}
	fmt.Fprintln(a.out, f.Value)
	return nil
}

func (a *App) history(_ context.Context, args []string) error {
	e, err := a.entryArg(args, 1)
	if err != nil {
		return err
	}
	for _, h := range e.History {
		fmt.Fprintf(a.out, "%s  %s\n", formatTime(h.Timestamp), h.Summary)
	}
	return nil
}
