package cryptox

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/dmitrijs2005/archivevault/internal/common"
	"github.com/stretchr/testify/require"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

// RFC 5869, test case 1.
func TestExpandKey_RFC5869(t *testing.T) {
	ikm := bytes.Repeat([]byte{0x0b}, 22)
	salt := mustHex(t, "000102030405060708090a0b0c")
	info := mustHex(t, "f0f1f2f3f4f5f6f7f8f9")
	want := mustHex(t, "3cb25f25faacd57a90434f64d0362f2a2d2d0a90cf1a5a4c5db02d56ecc4c5bf34007208d5b887185865")

	got, err := ExpandKey(ikm, salt, info, 42)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestExpandKey_Pure(t *testing.T) {
	ikm := []byte("input key material")
	a, err := ExpandKey(ikm, []byte("salt"), []byte("label"), KeySize)
	require.NoError(t, err)
	b, err := ExpandKey(ikm, []byte("salt"), []byte("label"), KeySize)
	require.NoError(t, err)
	require.Equal(t, a, b)
	require.Len(t, a, KeySize)
}

func TestExpandKey_DomainSeparation(t *testing.T) {
	ikm := []byte("input key material")
	a, err := ExpandKey(ikm, nil, []byte("payload"), KeySize)
	require.NoError(t, err)
	b, err := ExpandKey(ikm, nil, []byte("something else"), KeySize)
	require.NoError(t, err)
	require.NotEqual(t, a, b)
	require.NotEqual(t, ikm, a)
}

func TestExpandKey_InvalidArguments(t *testing.T) {
	_, err := ExpandKey(nil, nil, nil, 32)
	require.ErrorIs(t, err, common.ErrInvalidArgument)

	_, err = ExpandKey([]byte("k"), nil, nil, 0)
	require.ErrorIs(t, err, common.ErrInvalidArgument)

	_, err = ExpandKey([]byte("k"), nil, nil, 255*32+1)
	require.ErrorIs(t, err, common.ErrInvalidArgument)
}
