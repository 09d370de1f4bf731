// Package identity is the auth collaborator: it owns the acting user's
// profile, currency preference and active financial goals. The ledger engine
// only reads from it, never writes.
package identity

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	apperrors "financecontrol/internal/errors"
	"financecontrol/internal/logger"
	"financecontrol/internal/models"
	"financecontrol/internal/validator"
)

// Profile is one user's identity record. The goal set is overwritten
// wholesale on each save; there is no versioning or history.
type Profile struct {
	Email    string                `json:"email" validate:"required,email"`
	Name     string                `json:"name,omitempty"`
	Currency string                `json:"currency,omitempty" validate:"omitempty,iso4217"`
	Goals    models.FinancialGoals `json:"goals"`
}

// Store persists profiles one JSON file per user, with the same best-effort
// contract as ledger snapshots: a missing or unreadable profile loads as a
// fresh one.
type Store struct {
	dir string
}

// NewStore creates the profile directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrPersistence, err)
	}
	return &Store{dir: dir}, nil
}

// Load returns the stored profile for email, or a fresh profile when none
// exists or the stored one cannot be decoded.
func (s *Store) Load(email string) Profile {
	fresh := Profile{Email: email}

	data, err := os.ReadFile(s.path(email))
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Get().Warnw("profile unreadable, starting fresh", "email", email, "error", err)
		}
		return fresh
	}

	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		logger.Get().Warnw("profile corrupt, starting fresh", "email", email, "error", err)
		return fresh
	}
	p.Email = email
	return p
}

// Save validates and writes the profile.
func (s *Store) Save(p Profile) error {
	if err := validator.Struct(&p); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return apperrors.Wrap(apperrors.ErrPersistence, err)
	}
	if err := os.WriteFile(s.path(p.Email), data, 0o600); err != nil {
		return apperrors.Wrap(apperrors.ErrPersistence, err)
	}
	return nil
}

// SaveGoals replaces the user's goal set wholesale and returns the updated
// profile.
func (s *Store) SaveGoals(email string, goals models.FinancialGoals) (Profile, error) {
	p := s.Load(email)
	p.Goals = goals
	if err := s.Save(p); err != nil {
		return p, err
	}
	return p, nil
}

func (s *Store) path(email string) string {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			return r
		}
		return '_'
	}, email)
	return filepath.Join(s.dir, safe+".profile.json")
}
