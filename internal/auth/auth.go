// Package auth manages device-local accounts. An account ties a mobile
// number and a hashed PIN to a profile key; there is no remote identity
// provider.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/abhisek/vidya/internal/store"
)

var (
	ErrInvalidCredentials = errors.New("invalid mobile number or PIN")
	ErrMobileRequired     = errors.New("mobile number is required")
	ErrPINTooShort        = errors.New("PIN must be at least 4 digits")
)

const minPINLength = 4

// Service registers and authenticates local accounts.
type Service struct {
	accounts store.AccountRepo
}

// NewService creates an auth service over the account store.
func NewService(accounts store.AccountRepo) *Service {
	return &Service{accounts: accounts}
}

// Register creates an account for the mobile number. The profile key
// returned is where the learner record lives. Fails with
// store.ErrAccountExists when the number is already registered.
func (s *Service) Register(ctx context.Context, mobile, pin string) (*store.Account, error) {
	if mobile == "" {
		return nil, ErrMobileRequired
	}
	if len(pin) < minPINLength {
		return nil, ErrPINTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash PIN: %w", err)
	}

	acct := store.Account{
		Mobile:     mobile,
		SecretHash: string(hash),
		ProfileKey: "profile:" + mobile,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.accounts.Create(ctx, acct); err != nil {
		return nil, err
	}
	return &acct, nil
}

// Login checks the PIN against the stored hash. Unknown numbers and
// wrong PINs both return ErrInvalidCredentials so the two cases are
// indistinguishable to a caller.
func (s *Service) Login(ctx context.Context, mobile, pin string) (*store.Account, error) {
	acct, err := s.accounts.ByMobile(ctx, mobile)
	if err != nil {
		return nil, err
	}
	if acct == nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(acct.SecretHash), []byte(pin)) != nil {
		return nil, ErrInvalidCredentials
	}
	return acct, nil
}
