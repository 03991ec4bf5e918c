package settings

import (
	"context"
	"errors"
	"strings"
)

var ErrInvalidInput = errors.New("invalid input")

type Settings struct {
	StoreName    string `json:"storeName"`
	StoreAddress string `json:"storeAddress"`
	StorePhone   string `json:"storePhone"`
}

type Store interface {
	Get(ctx context.Context) (Settings, error)
	Update(ctx context.Context, s Settings) (Settings, error)
}

type Usecase struct {
	store Store
}

func New(store Store) *Usecase {
	return &Usecase{store: store}
}

func (u *Usecase) Get(ctx context.Context) (Settings, error) {
	return u.store.Get(ctx)
}

func (u *Usecase) Update(ctx context.Context, s Settings) (Settings, error) {
	s.StoreName = strings.TrimSpace(s.StoreName)
	if s.StoreName == "" {
		return Settings{}, ErrInvalidInput
	}
	return u.store.Update(ctx, s)
}
