package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dmitrijs2005/archivevault/internal/common"
	"github.com/dmitrijs2005/archivevault/internal/config"
	"github.com/dmitrijs2005/archivevault/internal/logging"
	"github.com/dmitrijs2005/archivevault/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		VaultPath:    filepath.Join(t.TempDir(), "nested", "vault.avlt"),
		KDFTime:      1,
		KDFMemoryKiB: 64,
		KDFThreads:   1,
		LogLevel:     "debug",
	}
}

func newScriptedApp(cfg *config.Config, script string) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	return NewApp(cfg, logging.NewDiscardLogger(), strings.NewReader(script), &out), &out
}

// newOpenApp returns an App with repo already opened under password "pw".
func newOpenApp(t *testing.T, repo *models.Repository, script string) (*App, *bytes.Buffer) {
	t.Helper()
	a, out := newScriptedApp(testConfig(t), script)
	require.NoError(t, os.MkdirAll(filepath.Dir(a.config.VaultPath), 0o700))
	a.repo, a.password = repo, "pw"
	return a, out
}

func bankRepo() (*models.Repository, string) {
	repo := models.NewRepository()
	e := models.NewEntry("Bank")
	e.SetField(models.Field{Name: "username", Value: "alice"})
	e.SetField(models.Field{Name: "password", Value: "secret", Concealed: true})
	_ = repo.AddEntry(*e)
	return repo, e.ID
}

func TestApp_CreateAddReopen(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)

	stubPasswords(t, "pw", "pw")
	a, out := newScriptedApp(cfg, "addnote\nMy note\nline one\n\nlist\nexit\n")
	require.NoError(t, a.Run(ctx))

	s := out.String()
	assert.Contains(t, s, "Creating new vault")
	assert.Contains(t, s, "Added ")
	assert.Contains(t, s, "My note")
	assert.Contains(t, s, "Changes saved.")
	assert.Contains(t, s, "Bye!")

	stubPasswords(t, "wrong", "pw")
	b, out2 := newScriptedApp(cfg, "list\nexit\n")
	require.NoError(t, b.Run(ctx))

	s = out2.String()
	assert.Contains(t, s, "Opening vault "+a.repo.Metadata.RepositoryID)
	assert.Contains(t, s, "Wrong password")
	assert.Contains(t, s, "My note")
	assert.NotContains(t, s, "Changes saved.")

	require.Len(t, b.repo.Entries, 1)
	f, ok := b.repo.Entries[0].Field("note")
	require.True(t, ok)
	assert.Equal(t, "line one", f.Value)
}

func TestApp_OpenGivesUpAfterThreeAttempts(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)

	stubPasswords(t, "pw", "pw")
	a, _ := newScriptedApp(cfg, "exit\n")
	require.NoError(t, a.Run(ctx))

	stubPasswords(t, "x", "y", "z")
	b, _ := newScriptedApp(cfg, "exit\n")
	require.ErrorIs(t, b.Run(ctx), common.ErrAuthenticationFailed)
}

func TestApp_OpenCorruptFile(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(cfg.VaultPath), 0o700))
	require.NoError(t, os.WriteFile(cfg.VaultPath, []byte("not a vault"), 0o600))

	stubPasswords(t)
	a, _ := newScriptedApp(cfg, "exit\n")
	require.ErrorIs(t, a.Run(context.Background()), common.ErrCorruptFormat)
}

func TestApp_AddLogin(t *testing.T) {
	stubPasswords(t, "hunter2")
	a, out := newOpenApp(t, models.NewRepository(), "addlogin\nMail\nbob\nhttps://mail.example\n")
	require.NoError(t, a.Root(context.Background()))

	require.Len(t, a.repo.Entries, 1)
	e := a.repo.Entries[0]
	assert.Equal(t, "Mail", e.Title)
	pw, ok := e.Field("password")
	require.True(t, ok)
	assert.True(t, pw.Concealed)
	assert.Equal(t, "hunter2", pw.Value)
	assert.Equal(t, []string{"login"}, e.Tags)
	assert.NotContains(t, out.String(), "hunter2")
	assert.False(t, a.dirty, "exit on EOF saves pending changes")
}

func TestApp_ShowMasksConcealedFields(t *testing.T) {
	repo, id := bankRepo()
	a, out := newOpenApp(t, repo, "show "+id+"\nreveal "+id+" password\n")
	require.NoError(t, a.Root(context.Background()))

	s := out.String()
	assert.Contains(t, s, "username: alice")
	assert.Contains(t, s, "password: "+mask)
	assert.Contains(t, s, "secret\n")
}

func TestApp_TagDeleteHistory(t *testing.T) {
	repo, id := bankRepo()
	a, out := newOpenApp(t, repo, strings.Join([]string{
		"tag " + id + " finance",
		"history " + id,
		"delete " + id,
		"list",
		"exit",
	}, "\n")+"\n")
	require.NoError(t, a.Root(context.Background()))

	s := out.String()
	assert.Contains(t, s, "tag finance added")
	assert.Contains(t, s, "Deleted "+id)
	assert.Contains(t, s, "No entries.")
	assert.Contains(t, s, "Changes saved.")
	assert.Empty(t, a.repo.Entries)
}

func TestApp_UsageAndUnknownCommands(t *testing.T) {
	repo, _ := bankRepo()
	a, out := newOpenApp(t, repo, "frobnicate\nshow\nshow missing-id\nhelp\ninfo\n")
	require.NoError(t, a.Root(context.Background()))

	s := out.String()
	assert.Contains(t, s, "Unknown command: frobnicate")
	assert.Contains(t, s, "Usage: show <id>")
	assert.Contains(t, s, "error: entry missing-id: not found")
	assert.Contains(t, s, "Available commands:")
	assert.Contains(t, s, "Repository: "+repo.Metadata.RepositoryID)
}

func TestApp_AttachAndExport(t *testing.T) {
	repo, id := bankRepo()
	dir := t.TempDir()
	src := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(src, []byte("abc"), 0o600))

	a, _ := newOpenApp(t, repo, "attach "+id+" "+src+"\n")
	require.NoError(t, a.Root(context.Background()))

	e, err := a.repo.FindEntry(id)
	require.NoError(t, err)
	require.Len(t, e.Attachments, 1)
	at := e.Attachments[0]
	assert.Equal(t, "notes.txt", at.Name)
	assert.True(t, strings.HasPrefix(at.MimeType, "text/plain"))

	dst := filepath.Join(dir, "out.txt")
	a.reader.Reset(strings.NewReader("export " + id + " " + at.ID + " " + dst + "\n"))
	require.NoError(t, a.Root(context.Background()))

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}

func TestApp_Passwd(t *testing.T) {
	ctx := context.Background()
	repo, _ := bankRepo()
	a, out := newOpenApp(t, repo, "passwd\n")
	require.NoError(t, a.save(ctx))

	stubPasswords(t, "pw", "new", "new")
	require.NoError(t, a.Root(ctx))
	assert.Contains(t, out.String(), "Password changed.")
	assert.Equal(t, "new", a.password)

	_, err := a.container.Load(ctx, a.config.VaultPath, "pw")
	require.ErrorIs(t, err, common.ErrAuthenticationFailed)

	got, err := a.container.Load(ctx, a.config.VaultPath, "new")
	require.NoError(t, err)
	assert.Equal(t, repo.Metadata.RepositoryID, got.Metadata.RepositoryID)
}

func TestApp_PasswdRejectsWrongCurrent(t *testing.T) {
	repo, _ := bankRepo()
	a, out := newOpenApp(t, repo, "passwd\n")

	stubPasswords(t, "nope")
	require.NoError(t, a.Root(context.Background()))
	assert.Contains(t, out.String(), "current password is incorrect")
	assert.Equal(t, "pw", a.password)
}
