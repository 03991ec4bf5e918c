package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type LoginResult struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int    `json:"expiresIn"` // seconds
	User        User   `json:"user"`
}

type LoginUsecase struct {
	store     Store
	jwtSecret []byte
	expMin    int
}

func NewLoginUsecase(store Store, jwtSecret string, expiresMinutes int) *LoginUsecase {
	if expiresMinutes <= 0 {
		expiresMinutes = 60
	}
	return &LoginUsecase{
		store:     store,
		jwtSecret: []byte(jwtSecret),
		expMin:    expiresMinutes,
	}
}

func (u *LoginUsecase) Execute(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := u.store.FindByUsername(ctx, username)
	if err != nil {
		// Hide whether the username exists
		return nil, ErrInvalidCredentials
	}
	if user.Status != "active" {
		return nil, ErrInactiveUser
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	exp := now.Add(time.Duration(u.expMin) * time.Minute)

	claims := jwt.MapClaims{
		"sub":      user.ID,
		"typ":      "user",
		"username": user.Username,
		"role":     user.Role,
		"iat":      now.Unix(),
		"exp":      exp.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(u.jwtSecret)
	if err != nil {
		return nil, err
	}

	_ = u.store.TouchLogin(ctx, user.ID)

	return &LoginResult{
		AccessToken: signed,
		ExpiresIn:   u.expMin * 60,
		User:        user.Sanitized(),
	}, nil
}
