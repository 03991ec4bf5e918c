package auth

import "time"

const (
	RoleOwner   = "owner"
	RoleCashier = "cashier"
)

type User struct {
	ID           string          `json:"id"`
	Username     string          `json:"username"`
	PasswordHash string          `json:"passwordHash,omitempty"`
	Name         string          `json:"name"`
	Role         string          `json:"role"`
	Email        string          `json:"email,omitempty"`
	Phone        string          `json:"phone,omitempty"`
	Permissions  map[string]bool `json:"permissions"`
	Status       string          `json:"status"` // active | inactive
	LastLogin    *time.Time      `json:"lastLogin,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// Sanitized returns a copy safe to hand to the delivery layer.
func (u User) Sanitized() User {
	u.PasswordHash = ""
	return u
}

// DefaultPermissions mirrors the owner/cashier split: the cashier runs the
// register and manages customers, everything else is the owner's.
func DefaultPermissions(role string) map[string]bool {
	all := role == RoleOwner
	return map[string]bool{
		"pos":       true,
		"inventory": all,
		"customers": true,
		"reports":   all,
		"settings":  all,
		"suppliers": all,
		"users":     all,
		"finance":   all,
	}
}

type UpsertInput struct {
	ID       *string `json:"id"`
	Username string  `json:"username"`
	Password string  `json:"password"` // plain; hashed before storage. Empty on update keeps the old hash.
	Name     string  `json:"name"`
	Role     string  `json:"role"`
	Email    string  `json:"email"`
	Phone    string  `json:"phone"`
}

type ListQuery struct {
	Limit  int
	Offset int
}
