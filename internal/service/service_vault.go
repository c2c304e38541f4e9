package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/securevault/securevault/internal/config"
	"github.com/securevault/securevault/internal/crypto"
	"github.com/securevault/securevault/internal/logger"
	"github.com/securevault/securevault/internal/store"
	"github.com/securevault/securevault/internal/utils"
	"github.com/securevault/securevault/internal/validators"
	"github.com/securevault/securevault/models"
)

type vaultService struct {
	validator validators.Validator
	uuid      *utils.UUIDGenerator
	vaults    store.VaultRepository
	keychain  crypto.KeyChainService
	logger    *logger.Logger

	storageKey []byte

	mu      sync.RWMutex
	items   []models.Credential
	visible map[string]struct{}
}

func NewVaultService(vaults store.VaultRepository, keychain crypto.KeyChainService, cfg config.App, log *logger.Logger) VaultService {
	return &vaultService{
		validator:  validators.NewCredentialValidator(),
		uuid:       utils.NewUUIDGenerator(),
		vaults:     vaults,
		keychain:   keychain,
		logger:     log,
		storageKey: keychain.DeriveStorageKey(cfg.StorageKey),
		visible:    make(map[string]struct{}),
	}
}

func (v *vaultService) List(filter string) []models.Credential {
	v.mu.RLock()
	defer v.mu.RUnlock()

	needle := strings.ToLower(strings.TrimSpace(filter))

	out := make([]models.Credential, 0, len(v.items))
	for _, item := range v.items {
		if needle != "" && !matchesFilter(item, needle) {
			continue
		}
		out = append(out, item)
	}

	return out
}

// matchesFilter reports whether the record's title, username, or website
// contains the lowercased needle.
func matchesFilter(item models.Credential, needle string) bool {
	return strings.Contains(strings.ToLower(item.Title), needle) ||
		strings.Contains(strings.ToLower(item.Username), needle) ||
		strings.Contains(strings.ToLower(item.Website), needle)
}

func (v *vaultService) Add(ctx context.Context, input models.CredentialInput) (models.Credential, error) {
	log := logger.FromContext(ctx)

	if err := v.validator.Validate(ctx, input); err != nil {
		log.Warn().
			Str("func", "vaultService.Add").
			Err(err).
			Msg("credential input rejected")
		return models.Credential{}, err
	}

	now := time.Now()
	credential := models.Credential{
		ID:        v.uuid.Generate(),
		Title:     strings.TrimSpace(input.Title),
		Username:  strings.TrimSpace(input.Username),
		Email:     strings.TrimSpace(input.Email),
		Password:  input.Password,
		Website:   strings.TrimSpace(input.Website),
		Notes:     input.Notes,
		Category:  strings.TrimSpace(input.Category),
		CreatedAt: now,
		UpdatedAt: now,
	}

	v.mu.Lock()
	v.items = append(v.items, credential)
	v.mu.Unlock()

	return credential, nil
}

func (v *vaultService) Remove(id string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	for i, item := range v.items {
		if item.ID == id {
			v.items = append(v.items[:i], v.items[i+1:]...)
			break
		}
	}
	delete(v.visible, id)
}

func (v *vaultService) ToggleVisibility(id string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if _, ok := v.visible[id]; ok {
		delete(v.visible, id)
		return false
	}
	v.visible[id] = struct{}{}
	return true
}

func (v *vaultService) IsVisible(id string) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()

	_, ok := v.visible[id]
	return ok
}

func (v *vaultService) MarkCompromised(id string, compromised bool) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	for i := range v.items {
		if v.items[i].ID == id {
			v.items[i].IsCompromised = compromised
			v.items[i].UpdatedAt = time.Now()
			return nil
		}
	}

	return fmt.Errorf("%w: %s", ErrCredentialNotFound, id)
}

func (v *vaultService) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.items = nil
	v.visible = make(map[string]struct{})
}

func (v *vaultService) Snapshot(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	v.mu.RLock()
	items := make([]models.Credential, len(v.items))
	copy(items, v.items)
	v.mu.RUnlock()

	blob, err := v.keychain.EncryptData(items, v.storageKey)
	if err != nil {
		log.Err(err).
			Str("func", "vaultService.Snapshot").
			Str("user_id", userID).
			Msg("failed to encrypt vault snapshot")
		return fmt.Errorf("encrypt vault snapshot: %w", err)
	}

	return v.vaults.Save(ctx, userID, blob)
}

func (v *vaultService) Load(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	v.Reset()

	blob, err := v.vaults.Load(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrSnapshotNotFound) {
			return nil
		}
		return err
	}

	var items []models.Credential
	if err = v.keychain.DecryptData(blob, v.storageKey, &items); err != nil {
		v.discardSnapshot(ctx, userID)
		log.Warn().
			Str("func", "vaultService.Load").
			Str("user_id", userID).
			Err(err).
			Msg("persisted vault snapshot failed decryption")
		return fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}

	v.mu.Lock()
	v.items = items
	v.mu.Unlock()

	return nil
}

// discardSnapshot deletes a persisted snapshot that failed decryption so the
// next load starts from an empty vault instead of tripping over it again.
func (v *vaultService) discardSnapshot(ctx context.Context, userID string) {
	if err := v.vaults.Delete(ctx, userID); err != nil {
		v.logger.Warn().
			Str("func", "vaultService.discardSnapshot").
			Str("user_id", userID).
			Err(err).
			Msg("failed to delete unusable vault snapshot")
	}
}
