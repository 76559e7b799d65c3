package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/archivevault/internal/models"
)

func (a *App) readTitle() (string, error) {
	title, err := GetSimpleText(a.reader, "Enter title", a.out)
	if err != nil {
		return "", fmt.Errorf("get title: %w", err)
	}
	if title == "" {
		return "", fmt.Errorf("title is required")
	}
	return title, nil
}

func (a *App) addEntry(e *models.Entry) error {
	if err := a.repo.AddEntry(*e); err != nil {
		return err
	}
	a.dirty = true
	fmt.Fprintf(a.out, "Added %s\n", e.ID)
	return nil
}

func (a *App) addLogin(_ context.Context, _ []string) error {
	title, err := a.readTitle()
	if err != nil {
		return err
	}
	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out, "Enter password")
	if err != nil {
		return err
	}
	url, err := GetSimpleText(a.reader, "Enter URL (optional)", a.out)
	if err != nil {
		return err
	}

	e := models.NewEntry(title)
	e.SetField(models.Field{Name: "username", Value: username})
	e.SetField(models.Field{Name: "password", Value: password, Concealed: true})
	if url != "" {
		e.SetField(models.Field{Name: "url", Value: url})
	}
	e.AddTag("login")
	return a.addEntry(e)
}

func (a *App) addNote(_ context.Context, _ []string) error {
	title, err := a.readTitle()
	if err != nil {
		return err
	}
	text, err := GetMultiline(a.reader, "Enter note text", a.out)
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("note text is required")
	}

	e := models.NewEntry(title)
	e.SetField(models.Field{Name: "note", Value: text, Concealed: true})
	e.AddTag("note")
	return a.addEntry(e)
}
