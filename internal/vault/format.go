package vault

import (
	"bytes"
	"fmt"

	"github.com/dmitrijs2005/archivevault/internal/binx"
	"github.com/dmitrijs2005/archivevault/internal/common"
	"github.com/dmitrijs2005/archivevault/internal/cryptox"
)

// FormatVersion is the container layout version.
const FormatVersion uint16 = 1

// PayloadKeyInfo is the HKDF info label for the payload encryption key.
const PayloadKeyInfo = "archive-vault/v1/payload-encryption"

var magic = [8]byte{'A', 'R', 'C', 'V', 'A', 'U', 'L', 'T'}

// fixed-size region following the metadata
const tailSize = cryptox.SaltSize + cryptox.NonceSize + 4 + cryptox.TagSize

// sealedBlob is the parsed, still encrypted container.
type sealedBlob struct {
	metadata   []byte
	salt       []byte
	nonce      []byte
	ciphertext []byte
	tag        []byte
}

func (s *sealedBlob) marshal() ([]byte, error) {
	w := binx.NewWriter(len(magic) + 2 + 4 + len(s.metadata) + tailSize + len(s.ciphertext))
	w.Write(magic[:])
	w.WriteU16(FormatVersion)
	if err := w.WriteBlock(s.metadata, "metadata"); err != nil {
		return nil, err
	}
	w.Write(s.salt)
	w.Write(s.nonce)
	if err := w.WriteBlock(s.ciphertext, "ciphertext"); err != nil {
		return nil, err
	}
	w.Write(s.tag)
	return w.Bytes(), nil
}

// parseBlob splits a container into its regions. Magic and version are
// checked before anything else is read. The returned slices alias blob.
func parseBlob(blob []byte) (*sealedBlob, error) {
	r := binx.NewReader(blob)

	m, err := r.ReadExact(len(magic), "magic")
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(m, magic[:]) {
		return nil, fmt.Errorf("%w: not an archive vault (bad magic)", common.ErrCorruptFormat)
	}

	version, err := r.ReadU16("format version")
	if err != nil {
		return nil, err
	}
	if version != FormatVersion {
		return nil, fmt.Errorf("%w: format version %d, want %d", common.ErrUnsupportedVersion, version, FormatVersion)
	}

	var s sealedBlob
	if s.metadata, err = r.ReadBlock("metadata"); err != nil {
		return nil, err
	}
	if r.Remaining() < tailSize {
		return nil, fmt.Errorf("%w: %d bytes after metadata, need at least %d",
			common.ErrTruncated, r.Remaining(), tailSize)
	}
	if s.salt, err = r.ReadExact(cryptox.SaltSize, "salt"); err != nil {
		return nil, err
	}
	if s.nonce, err = r.ReadExact(cryptox.NonceSize, "nonce"); err != nil {
		return nil, err
	}
	if s.ciphertext, err = r.ReadBlock("ciphertext"); err != nil {
		return nil, err
	}
	if s.tag, err = r.ReadExact(cryptox.TagSize, "tag"); err != nil {
		return nil, err
	}
	if r.Remaining() != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes after tag at offset %d",
			common.ErrCorruptFormat, r.Remaining(), r.Offset())
	}
	return &s, nil
}
