package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/securevault/securevault/internal/crypto"
	"github.com/securevault/securevault/internal/logger"
	"github.com/securevault/securevault/internal/mock"
	"github.com/securevault/securevault/internal/store"
	"github.com/securevault/securevault/internal/validators"
	"github.com/securevault/securevault/models"
)

func newTestVaultSvc(t *testing.T, ctrl *gomock.Controller) (*vaultService, *mock.MockVaultRepository) {
	t.Helper()
	mockVaults := mock.NewMockVaultRepository(ctrl)
	svc := NewVaultService(mockVaults, crypto.NewKeyChainService(), testAppCfg, logger.Nop()).(*vaultService)
	return svc, mockVaults
}

func addCredential(t *testing.T, svc *vaultService, title, username, password string) models.Credential {
	t.Helper()
	credential, err := svc.Add(context.Background(), models.CredentialInput{
		Title:    title,
		Username: username,
		Password: password,
	})
	require.NoError(t, err)
	return credential
}

func TestVault_Add_AssignsIdentityAndTimestamps(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, _ := newTestVaultSvc(t, ctrl)

	credential := addCredential(t, svc, "Gmail", "alice", "s3cret")

	assert.NotEmpty(t, credential.ID)
	assert.False(t, credential.CreatedAt.IsZero())
	assert.Equal(t, credential.CreatedAt, credential.UpdatedAt)
	assert.False(t, credential.IsCompromised)
}

func TestVault_Add_RejectsInvalidInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, _ := newTestVaultSvc(t, ctrl)

	_, err := svc.Add(context.Background(), models.CredentialInput{
		Title:    "",
		Username: "alice",
		Password: "s3cret",
	})
	require.ErrorIs(t, err, validators.ErrValidation)

	assert.Empty(t, svc.List(""))
}

func TestVault_List_InsertionOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, _ := newTestVaultSvc(t, ctrl)

	first := addCredential(t, svc, "Gmail", "alice", "pw1")
	second := addCredential(t, svc, "Bank", "alice", "pw2")
	third := addCredential(t, svc, "Forum", "bob", "pw3")

	got := svc.List("")
	require.Len(t, got, 3)
	assert.Equal(t, []string{first.ID, second.ID, third.ID}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestVault_List_ReturnsFreshCopies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, _ := newTestVaultSvc(t, ctrl)

	addCredential(t, svc, "Gmail", "alice", "pw1")

	got := svc.List("")
	got[0].Title = "mutated"

	assert.Equal(t, "Gmail", svc.List("")[0].Title)
}

func TestVault_List_CaseInsensitiveFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, _ := newTestVaultSvc(t, ctrl)

	addCredential(t, svc, "Gmail", "alice", "pw1")
	addCredential(t, svc, "Bank", "GMailFan", "pw2")
	addCredential(t, svc, "Forum", "bob", "pw3")

	got := svc.List("gmail")
	require.Len(t, got, 2)

	// Website participates in the match too.
	credential, err := svc.Add(context.Background(), models.CredentialInput{
		Title:    "Shop",
		Username: "carol",
		Password: "pw4",
		Website:  "https://gmail.example.com",
	})
	require.NoError(t, err)

	got = svc.List("GMAIL")
	require.Len(t, got, 3)
	assert.Equal(t, credential.ID, got[2].ID)
}

func TestVault_Remove_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, _ := newTestVaultSvc(t, ctrl)

	credential := addCredential(t, svc, "Gmail", "alice", "pw1")

	svc.Remove(credential.ID)
	assert.Empty(t, svc.List(""))

	svc.Remove(credential.ID)
	svc.Remove("never-existed")
	assert.Empty(t, svc.List(""))
}

func TestVault_ToggleVisibility(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, _ := newTestVaultSvc(t, ctrl)

	credential := addCredential(t, svc, "Gmail", "alice", "pw1")

	assert.False(t, svc.IsVisible(credential.ID))
	assert.True(t, svc.ToggleVisibility(credential.ID))
	assert.True(t, svc.IsVisible(credential.ID))
	assert.False(t, svc.ToggleVisibility(credential.ID))
	assert.False(t, svc.IsVisible(credential.ID))
}

func TestVault_RemoveClearsVisibility(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, _ := newTestVaultSvc(t, ctrl)

	credential := addCredential(t, svc, "Gmail", "alice", "pw1")
	svc.ToggleVisibility(credential.ID)

	svc.Remove(credential.ID)
	assert.False(t, svc.IsVisible(credential.ID))
}

func TestVault_MarkCompromised(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, _ := newTestVaultSvc(t, ctrl)

	credential := addCredential(t, svc, "Gmail", "alice", "pw1")

	require.NoError(t, svc.MarkCompromised(credential.ID, true))
	assert.True(t, svc.List("")[0].IsCompromised)

	require.NoError(t, svc.MarkCompromised(credential.ID, false))
	assert.False(t, svc.List("")[0].IsCompromised)

	err := svc.MarkCompromised("never-existed", true)
	assert.ErrorIs(t, err, ErrCredentialNotFound)
}

func TestVault_Reset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, _ := newTestVaultSvc(t, ctrl)

	credential := addCredential(t, svc, "Gmail", "alice", "pw1")
	svc.ToggleVisibility(credential.ID)

	svc.Reset()

	assert.Empty(t, svc.List(""))
	assert.False(t, svc.IsVisible(credential.ID))
}

func TestVault_SnapshotLoad_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockVaults := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	first := addCredential(t, svc, "Gmail", "alice", "pw1")
	second := addCredential(t, svc, "Bank", "alice", "pw2")
	svc.ToggleVisibility(first.ID)

	var blob string
	mockVaults.EXPECT().Save(ctx, "user-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, b string) error {
			assert.NotContains(t, b, "pw1", "snapshot must not expose plaintext passwords")
			blob = b
			return nil
		},
	)

	require.NoError(t, svc.Snapshot(ctx, "user-1"))

	restored, _ := newTestVaultSvc(t, ctrl)
	mockVaults2 := mock.NewMockVaultRepository(ctrl)
	restored.vaults = mockVaults2
	mockVaults2.EXPECT().Load(ctx, "user-1").Return(blob, nil)

	require.NoError(t, restored.Load(ctx, "user-1"))

	got := restored.List("")
	require.Len(t, got, 2)
	assert.Equal(t, first.ID, got[0].ID)
	assert.Equal(t, second.ID, got[1].ID)
	assert.Equal(t, "pw1", got[0].Password)

	// Visibility state never survives a snapshot.
	assert.False(t, restored.IsVisible(first.ID))
}

func TestVault_Load_MissingSnapshotYieldsEmptyVault(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockVaults := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	mockVaults.EXPECT().Load(ctx, "user-1").Return("", store.ErrSnapshotNotFound)

	require.NoError(t, svc.Load(ctx, "user-1"))
	assert.Empty(t, svc.List(""))
}

func TestVault_Load_CorruptSnapshotFailsClosed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockVaults := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	addCredential(t, svc, "Gmail", "alice", "pw1")

	mockVaults.EXPECT().Load(ctx, "user-1").Return("garbage-blob", nil)
	// The unusable snapshot is deleted so the next load starts clean.
	mockVaults.EXPECT().Delete(ctx, "user-1").Return(nil)

	err := svc.Load(ctx, "user-1")
	require.ErrorIs(t, err, ErrCorruptSnapshot)
	assert.Empty(t, svc.List(""), "vault must be empty after a failed load")
}
