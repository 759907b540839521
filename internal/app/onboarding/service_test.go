package onboarding

import (
	"context"
	"errors"
	"math/rand"
	"testing"
)

type stubAccounts struct {
	updateErr error
	updated   int
}

func (s *stubAccounts) UpdateProfile(ctx context.Context, userID, username, displayName string) error {
	s.updated++
	return s.updateErr
}

type stubBonus struct {
	granted  bool
	grantErr error
	calls    int
	amount   int64
}

func (s *stubBonus) GrantWelcomeBonusOnce(ctx context.Context, userID string, amount int64, metadata map[string]interface{}) (bool, error) {
	s.calls++
	s.amount = amount
	if s.grantErr != nil {
		return false, s.grantErr
	}
	return s.granted, nil
}

func TestOnboardNewUserGrantsBonus(t *testing.T) {
	bonus := &stubBonus{granted: true}
	svc := NewService(&stubAccounts{}, bonus, rand.New(rand.NewSource(1)))

	result, err := svc.OnboardNewUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("onboarding error: %v", err)
	}
	if bonus.calls != 1 || bonus.amount != defaultWelcomeBonusGold {
		t.Fatalf("bonus calls/amount = %d/%d, want 1/%d", bonus.calls, bonus.amount, defaultWelcomeBonusGold)
	}
	if !result.WelcomeBonusGranted || result.ProfileUpdateErr != nil {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestOnboardNewUserProfileFailureIsNonFatal(t *testing.T) {
	bonus := &stubBonus{granted: true}
	svc := NewService(&stubAccounts{updateErr: errors.New("update failed")}, bonus, rand.New(rand.NewSource(1)))

	result, err := svc.OnboardNewUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("profile failure must not abort onboarding: %v", err)
	}
	if result.ProfileUpdateErr == nil {
		t.Fatal("expected the profile error to be captured")
	}
	if bonus.calls != 1 {
		t.Fatalf("bonus should still be granted, calls = %d", bonus.calls)
	}
}

func TestOnboardNewUserBonusFailureReturnsError(t *testing.T) {
	svc := NewService(&stubAccounts{}, &stubBonus{grantErr: errors.New("wallet failed")}, rand.New(rand.NewSource(1)))

	if _, err := svc.OnboardNewUser(context.Background(), "user-1"); err == nil {
		t.Fatal("expected error when the bonus grant fails")
	}
}

func TestOnboardNewUserBonusAlreadyGranted(t *testing.T) {
	svc := NewService(&stubAccounts{}, &stubBonus{granted: false}, rand.New(rand.NewSource(1)))

	result, err := svc.OnboardNewUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("onboarding error: %v", err)
	}
	if result.WelcomeBonusGranted {
		t.Fatal("repeat grants must report granted=false")
	}
}
