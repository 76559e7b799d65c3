package cli

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/archivevault/internal/common"
)

// detectMimeType prefers the file extension and falls back to sniffing.
func detectMimeType(path string, data []byte) string {
	if t := mime.TypeByExtension(filepath.Ext(path)); t != "" {
		return t
	}
	return http.DetectContentType(data)
}

func (a *App) attach(_ context.Context, args []string) error {
	e, err := a.entryArg(args, 2)
	if err != nil {
		return err
	}
	path := args[1]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	at := e.AddAttachment(filepath.Base(path), detectMimeType(path, data), data)
	a.changed()
	fmt.Fprintf(a.out, "Attached %s as %s\n", at.Name, at.ID)
	return nil
}

func (a *App) export(_ context.Context, args []string) error {
	e, err := a.entryArg(args, 3)
	if err != nil {
		return err
	}
	at, ok := e.Attachment(args[1])
	if !ok {
		return fmt.Errorf("attachment %s: %w", args[1], common.ErrorNotFound)
	}
	if err := os.WriteFile(args[2], at.Data, common.VaultFileMode); err != nil {
		return fmt.Errorf("write %s: %w", args[2], err)
	}
	fmt.Fprintf(a.out, "Exported %s (%d bytes)\n", at.Name, len(at.Data))
	return nil
}
