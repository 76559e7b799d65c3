package vault

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/archivevault/internal/codec"
	"github.com/dmitrijs2005/archivevault/internal/common"
	"github.com/dmitrijs2005/archivevault/internal/cryptox"
	"github.com/dmitrijs2005/archivevault/internal/logging"
	"github.com/dmitrijs2005/archivevault/internal/models"
)

// Container seals and unseals repositories.
//
// A Container only holds configuration and may be shared between goroutines.
// The repositories passed to it are not guarded: callers serialize access to
// a given Repository themselves. Seal and Unseal are CPU and memory heavy
// because of Argon2id and should run off interactive goroutines.
type Container struct {
	params cryptox.KDFParams
	log    logging.Logger
	rand   io.Reader // nil means crypto/rand
}

// New returns a Container using params for key derivation. A nil logger
// discards output.
func New(params cryptox.KDFParams, log logging.Logger) *Container {
	if log == nil {
		log = logging.NewDiscardLogger()
	}
	return &Container{params: params, log: log}
}

func checkPassword(password string) error {
	if password == "" {
		return fmt.Errorf("%w: empty password", common.ErrInvalidArgument)
	}
	return nil
}

// payloadKey derives the AES key: Argon2id(password, salt) expanded with
// HKDF(salt=nonce, info=PayloadKeyInfo).
func (c *Container) payloadKey(password string, salt, nonce []byte) ([]byte, error) {
	pw := []byte(password)
	defer common.WipeByteArray(pw)

	passwordKey, err := cryptox.DeriveKey(pw, salt, c.params)
	if err != nil {
		return nil, fmt.Errorf("derive password key: %w", err)
	}
	defer common.WipeByteArray(passwordKey)

	key, err := cryptox.ExpandKey(passwordKey, nonce, []byte(PayloadKeyInfo), cryptox.KeySize)
	if err != nil {
		return nil, fmt.Errorf("expand payload key: %w", err)
	}
	return key, nil
}

// Seal encrypts repo under password and returns the complete container.
func (c *Container) Seal(ctx context.Context, repo *models.Repository, password string) ([]byte, error) {
	if err := checkPassword(password); err != nil {
		return nil, err
	}
	if repo == nil {
		return nil, fmt.Errorf("%w: nil repository", common.ErrInvalidArgument)
	}
	if err := repo.Validate(); err != nil {
		return nil, fmt.Errorf("seal: %w", err)
	}

	metadata, err := codec.EncodeMetadata(repo.Metadata)
	if err != nil {
		return nil, err
	}
	payload, err := codec.EncodePayload(repo.Metadata.Version, repo.Entries)
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(payload)

	salt, err := common.GenerateRandBytes(c.rand, cryptox.SaltSize)
	if err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	nonce, err := common.GenerateRandBytes(c.rand, cryptox.NonceSize)
	if err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	key, err := c.payloadKey(password, salt, nonce)
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(key)

	ciphertext, tag, err := cryptox.Encrypt(key, nonce, payload, metadata)
	if err != nil {
		return nil, fmt.Errorf("encrypt payload: %w", err)
	}

	s := sealedBlob{metadata: metadata, salt: salt, nonce: nonce, ciphertext: ciphertext, tag: tag}
	blob, err := s.marshal()
	if err != nil {
		return nil, err
	}

	c.log.Debug(ctx, "vault sealed",
		"repository_id", repo.Metadata.RepositoryID,
		"entries", len(repo.Entries),
		"bytes", len(blob))
	return blob, nil
}

// Unseal authenticates and decrypts blob and rebuilds the repository. It
// returns either the whole repository or an error, never partial state.
func (c *Container) Unseal(ctx context.Context, blob []byte, password string) (*models.Repository, error) {
	if err := checkPassword(password); err != nil {
		return nil, err
	}
	s, err := parseBlob(blob)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	key, err := c.payloadKey(password, s.salt, s.nonce)
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(key)

	payload, err := cryptox.Decrypt(key, s.nonce, s.ciphertext, s.tag, s.metadata)
	if err != nil {
		if errors.Is(err, common.ErrAuthenticationFailed) {
			c.log.Warn(ctx, "vault authentication failed", "bytes", len(blob))
		}
		return nil, err
	}
	defer common.WipeByteArray(payload)

	metadata, err := codec.DecodeMetadata(s.metadata)
	if err != nil {
		return nil, err
	}
	if metadata.Version != models.MetadataVersion {
		return nil, fmt.Errorf("%w: metadata version %d, want %d",
			common.ErrUnsupportedVersion, metadata.Version, models.MetadataVersion)
	}
	entries, err := codec.DecodePayload(payload, metadata.Version)
	if err != nil {
		return nil, err
	}

	repo := &models.Repository{Metadata: metadata, Entries: entries}
	if err := repo.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrCorruptFormat, err)
	}

	c.log.Debug(ctx, "vault unsealed",
		"repository_id", metadata.RepositoryID,
		"entries", len(entries))
	return repo, nil
}

// Reencrypt opens blob with currentPassword and seals it again under
// newPassword with fresh salt and nonce. Nothing from the old blob's key
// material is reused.
func (c *Container) Reencrypt(ctx context.Context, blob []byte, currentPassword, newPassword string) ([]byte, error) {
	if err := checkPassword(newPassword); err != nil {
		return nil, err
	}
	repo, err := c.Unseal(ctx, blob, currentPassword)
	if err != nil {
		return nil, err
	}
	repo.Touch()

	out, err := c.Seal(ctx, repo, newPassword)
	if err != nil {
		return nil, err
	}
	c.log.Info(ctx, "vault password rotated", "repository_id", repo.Metadata.RepositoryID)
	return out, nil
}

// Inspect returns the header metadata without a password. The result is NOT
// authenticated; only Unseal verifies it.
func Inspect(blob []byte) (*models.Metadata, error) {
	s, err := parseBlob(blob)
	if err != nil {
		return nil, err
	}
	m, err := codec.DecodeMetadata(s.metadata)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
