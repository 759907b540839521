package nakama

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"hanakoi/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

// Storage location of the per-user grant marker. The conditional write on this
// object is what makes the bonus one-shot.
const (
	welcomeBonusCollection = "onboarding"
	welcomeBonusKey        = "welcome_bonus_v1"
)

type bonusMarker struct {
	Amount    int64  `json:"amount"`
	GrantedAt string `json:"granted_at"`
}

// NakamaWelcomeBonusAdapter implements ports.WelcomeBonusPort on Nakama
// storage plus wallet updates.
type NakamaWelcomeBonusAdapter struct {
	nk runtime.NakamaModule
}

// NewNakamaWelcomeBonusAdapter creates a new welcome bonus adapter.
func NewNakamaWelcomeBonusAdapter(nk runtime.NakamaModule) *NakamaWelcomeBonusAdapter {
	return &NakamaWelcomeBonusAdapter{nk: nk}
}

// GrantWelcomeBonusOnce pays the bonus and records the marker in a single
// MultiUpdate. Version "*" only succeeds while no marker exists, so a repeat
// attempt is rejected by Nakama instead of double-paying.
func (a *NakamaWelcomeBonusAdapter) GrantWelcomeBonusOnce(ctx context.Context, userID string, amount int64, metadata map[string]interface{}) (bool, error) {
	if userID == "" || amount <= 0 {
		return false, fmt.Errorf("welcome bonus needs a user and a positive amount, got %q / %d", userID, amount)
	}

	value, err := json.Marshal(bonusMarker{
		Amount:    amount,
		GrantedAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return false, fmt.Errorf("failed to marshal welcome bonus marker: %w", err)
	}

	marker := &runtime.StorageWrite{
		Collection:      welcomeBonusCollection,
		Key:             welcomeBonusKey,
		UserID:          userID,
		Value:           string(value),
		Version:         "*",
		PermissionRead:  runtime.STORAGE_PERMISSION_NO_READ,
		PermissionWrite: runtime.STORAGE_PERMISSION_NO_WRITE,
	}
	grant := &runtime.WalletUpdate{
		UserID:    userID,
		Changeset: map[string]int64{"gold": amount},
		Metadata:  metadata,
	}

	_, _, err = a.nk.MultiUpdate(ctx, nil, []*runtime.StorageWrite{marker}, nil, []*runtime.WalletUpdate{grant}, true)
	if errors.Is(err, runtime.ErrStorageRejectedVersion) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to grant welcome bonus: %w", err)
	}
	return true, nil
}

var _ ports.WelcomeBonusPort = (*NakamaWelcomeBonusAdapter)(nil)
