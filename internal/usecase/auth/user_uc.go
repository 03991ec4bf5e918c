package auth

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("user not found")
	ErrUsernameConflict   = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInactiveUser       = errors.New("user inactive")
)

type Store interface {
	FindByID(ctx context.Context, id string) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	List(ctx context.Context, q ListQuery) ([]User, error)
	All(ctx context.Context) ([]User, error)
	// Upsert persists the user; an empty passwordHash on update keeps the
	// stored hash.
	Upsert(ctx context.Context, in UpsertInput, passwordHash string) (*User, error)
	SetStatus(ctx context.Context, id string, status string) (*User, error)
	TouchLogin(ctx context.Context, id string) error
}

type UserUsecase struct {
	store Store
}

func NewUserUsecase(store Store) *UserUsecase {
	return &UserUsecase{store: store}
}

func (u *UserUsecase) Upsert(ctx context.Context, in UpsertInput) (*User, error) {
	in.Username = strings.TrimSpace(strings.ToLower(in.Username))
	in.Name = strings.TrimSpace(in.Name)
	if in.Username == "" || in.Name == "" {
		return nil, ErrInvalidInput
	}
	if in.Role != RoleOwner && in.Role != RoleCashier {
		return nil, ErrInvalidInput
	}
	// New users need a password; updates may keep the old one.
	if in.ID == nil && in.Password == "" {
		return nil, ErrInvalidInput
	}

	var hash string
	if in.Password != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hash = string(h)
	}
	return u.store.Upsert(ctx, in, hash)
}

func (u *UserUsecase) List(ctx context.Context, q ListQuery) ([]User, error) {
	if q.Limit <= 0 || q.Limit > 200 {
		q.Limit = 50
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	return u.store.List(ctx, q)
}

func (u *UserUsecase) SetStatus(ctx context.Context, id, status string) (*User, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	if status != "active" && status != "inactive" {
		return nil, ErrInvalidInput
	}
	return u.store.SetStatus(ctx, id, status)
}
