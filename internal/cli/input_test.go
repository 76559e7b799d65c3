package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// stubPasswords makes readPassword return the given passwords in order.
func stubPasswords(t *testing.T, pws ...string) {
	t.Helper()
	orig := readPassword
	queue := append([]string(nil), pws...)
	readPassword = func() ([]byte, error) {
		if len(queue) == 0 {
			return nil, errors.New("no more passwords")
		}
		pw := queue[0]
		queue = queue[1:]
		return []byte(pw), nil
	}
	t.Cleanup(func() { readPassword = orig })
}

func TestGetSimpleText(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("hello world\n"))
	var out bytes.Buffer
	got, err := GetSimpleText(in, "Name?", &out)
	require.NoError(t, err)
	require.Equal(t, "hello world", got)
	require.Contains(t, out.String(), "Name?")
}

func TestGetSimpleTextEOF(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("lastline"))
	var out bytes.Buffer
	got, err := GetSimpleText(in, "Name?", &out)
	require.NoError(t, err)
	require.Equal(t, "lastline", got)

	_, err = GetSimpleText(in, "Again?", &out)
	require.Error(t, err)
}

func TestGetMultiline_DoubleEnter(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("a\nb\n\n\n"))
	var out bytes.Buffer
	got, err := GetMultiline(in, "Enter text", &out)
	require.NoError(t, err)
	require.Equal(t, "a\nb", got)
}

func TestGetPassword(t *testing.T) {
	stubPasswords(t, "s3cret")
	var out bytes.Buffer
	got, err := GetPassword(&out, "Master password")
	require.NoError(t, err)
	require.Equal(t, "s3cret", got)
	require.NotContains(t, out.String(), "s3cret")
}

func TestGetPassword_Error(t *testing.T) {
	stubPasswords(t)
	var out bytes.Buffer
	_, err := GetPassword(&out, "Master password")
	require.Error(t, err)
}

func TestGetNewPassword(t *testing.T) {
	var out bytes.Buffer

	stubPasswords(t, "a", "a")
	got, err := GetNewPassword(&out)
	require.NoError(t, err)
	require.Equal(t, "a", got)

	stubPasswords(t, "a", "b")
	_, err = GetNewPassword(&out)
	require.ErrorIs(t, err, errPasswordMismatch)

	stubPasswords(t, "")
	_, err = GetNewPassword(&out)
	require.Error(t, err)
}
