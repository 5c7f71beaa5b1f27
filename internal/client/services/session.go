// Package services contains application services for the EcoTrack client.
// This file defines the session service: signup, login, logout, and partial
// updates of the active user, all over whole-value local storage.
package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/ecotrack-app/ecotrack/internal/client/models"
	"github.com/ecotrack-app/ecotrack/internal/client/repositories/state"
	"github.com/ecotrack-app/ecotrack/internal/common"
	"github.com/ecotrack-app/ecotrack/internal/dbx"
)

// SessionService owns the authenticated-user record and the roster of all
// registered users.
//
// Contract:
//   - SignUp: create a zeroed account, append it to the roster, make it the
//     active session. The password is accepted but neither stored nor checked.
//   - LogIn: first case-sensitive email match in roster order becomes the
//     active session; common.ErrNotFound otherwise. The password is never
//     compared.
//   - LogOut: clears the active session only; the roster is untouched.
//   - UpdateActiveUser: shallow-merges the given fields into the active user
//     and writes both the session value and the matching roster entry. When
//     no roster entry matches by id, that half of the write is silently
//     skipped.
//   - ActiveUser: returns nil without error when nobody is logged in.
//
// All methods must honor context cancellation/timeouts.
type SessionService interface {
	SignUp(ctx context.Context, name, email, institution, password string) (*models.User, error)
	LogIn(ctx context.Context, email, password string) (*models.User, error)
	LogOut(ctx context.Context) error
	UpdateActiveUser(ctx context.Context, upd models.UserUpdate) (*models.User, error)
	ActiveUser(ctx context.Context) (*models.User, error)
	Roster(ctx context.Context) ([]models.User, error)
}

// sessionService is the concrete SessionService backed by the local database.
type sessionService struct {
	db *sql.DB
}

// NewSessionService constructs a SessionService bound to the given DB.
func NewSessionService(db *sql.DB) SessionService {
	return &sessionService{db: db}
}

// loadRoster reads the roster document. A missing or unparseable document
// reads as an empty roster.
func loadRoster(ctx context.Context, repo state.Repository) ([]models.User, error) {
	raw, err := repo.Get(ctx, common.RosterKey)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	var users []models.User
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, nil
	}
	return users, nil
}

func saveRoster(ctx context.Context, repo state.Repository, users []models.User) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return err
	}
	return repo.Set(ctx, common.RosterKey, raw)
}

func saveActiveUser(ctx context.Context, repo state.Repository, u models.User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return repo.Set(ctx, common.ActiveUserKey, raw)
}

// loadActiveUser reads the active session. Returns (nil, nil) when absent.
func loadActiveUser(ctx context.Context, repo state.Repository) (*models.User, error) {
	raw, err := repo.Get(ctx, common.ActiveUserKey)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	var u models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, fmt.Errorf("failed to decode active user: %w", err)
	}
	return &u, nil
}

// SignUp never checks for an existing account with the same email; the first
// roster match wins on later logins. Roster append and session activation are
// written in one transaction so a reader never observes one without the other.
func (s *sessionService) SignUp(ctx context.Context, name, email, institution, _ string) (*models.User, error) {
	user := models.NewUser(name, email, institution)

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := state.NewSQLiteRepository(tx)

		users, err := loadRoster(ctx, repo)
		if err != nil {
			return err
		}
		users = append(users, user)

		if err := saveRoster(ctx, repo, users); err != nil {
			return err
		}
		return saveActiveUser(ctx, repo, user)
	})
	if err != nil {
		return nil, fmt.Errorf("signup failed: %w", err)
	}
	return &user, nil
}

func (s *sessionService) LogIn(ctx context.Context, email, _ string) (*models.User, error) {
	repo := state.NewSQLiteRepository(s.db)

	users, err := loadRoster(ctx, repo)
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].Email == email {
			if err := saveActiveUser(ctx, repo, users[i]); err != nil {
				return nil, err
			}
			return &users[i], nil
		}
	}
	return nil, common.ErrNotFound
}

func (s *sessionService) LogOut(ctx context.Context) error {
	repo := state.NewSQLiteRepository(s.db)
	return repo.Delete(ctx, common.ActiveUserKey)
}

func (s *sessionService) UpdateActiveUser(ctx context.Context, upd models.UserUpdate) (*models.User, error) {
	var updated *models.User

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := state.NewSQLiteRepository(tx)
		u, err := applyActiveUserUpdate(ctx, repo, upd)
		if err != nil {
			return err
		}
		updated = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *sessionService) ActiveUser(ctx context.Context) (*models.User, error) {
	return loadActiveUser(ctx, state.NewSQLiteRepository(s.db))
}

func (s *sessionService) Roster(ctx context.Context) ([]models.User, error) {
	return loadRoster(ctx, state.NewSQLiteRepository(s.db))
}

// applyActiveUserUpdate merges upd into the active user and persists the
// session value together with the matching roster entry. A roster entry is
// matched by id; when none matches, the roster half is a silent no-op and the
// stores drift apart. Shared by UpdateActiveUser and the submission flow.
func applyActiveUserUpdate(ctx context.Context, repo state.Repository, upd models.UserUpdate) (*models.User, error) {
	u, err := loadActiveUser(ctx, repo)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, common.ErrNoActiveSession
	}

	u.Apply(upd)

	if err := saveActiveUser(ctx, repo, *u); err != nil {
		return nil, err
	}

	users, err := loadRoster(ctx, repo)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == u.ID {
			users[i] = *u
			if err := saveRoster(ctx, repo, users); err != nil {
				return nil, err
			}
			break
		}
	}
	return u, nil
}
