package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Cyndie1416/RetailPOS/internal/event"
	"github.com/Cyndie1416/RetailPOS/internal/usecase/auth"
)

type UserStore struct {
	mu     sync.Mutex
	users  map[string]*auth.User
	order  []string
	events event.Dispatcher
	now    func() time.Time
}

func NewUserStore(events event.Dispatcher) *UserStore {
	return &UserStore{
		users:  make(map[string]*auth.User),
		events: events,
		now:    time.Now,
	}
}

func copyUser(u *auth.User) *auth.User {
	cp := *u
	cp.Permissions = make(map[string]bool, len(u.Permissions))
	for k, v := range u.Permissions {
		cp.Permissions[k] = v
	}
	return &cp
}

func (s *UserStore) FindByID(ctx context.Context, id string) (*auth.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", auth.ErrNotFound, id)
	}
	return copyUser(u), nil
}

func (s *UserStore) FindByUsername(ctx context.Context, username string) (*auth.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username {
			return copyUser(u), nil
		}
	}
	return nil, fmt.Errorf("%w: %s", auth.ErrNotFound, username)
}

func (s *UserStore) List(ctx context.Context, q auth.ListQuery) ([]auth.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]auth.User, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *copyUser(s.users[id]))
	}

	if q.Offset >= len(out) {
		return []auth.User{}, nil
	}
	out = out[q.Offset:]
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (s *UserStore) All(ctx context.Context) ([]auth.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]auth.User, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *copyUser(s.users[id]))
	}
	return out, nil
}

func (s *UserStore) Upsert(ctx context.Context, in auth.UpsertInput, passwordHash string) (*auth.User, error) {
	s.mu.Lock()

	for id, other := range s.users {
		if other.Username == in.Username && (in.ID == nil || id != *in.ID) {
			s.mu.Unlock()
			return nil, fmt.Errorf("%w: %s", auth.ErrUsernameConflict, in.Username)
		}
	}

	now := s.now()
	var u *auth.User
	if in.ID == nil {
		u = &auth.User{
			ID:        uuid.NewString(),
			Status:    "active",
			CreatedAt: now,
		}
		s.users[u.ID] = u
		s.order = append(s.order, u.ID)
	} else {
		var ok bool
		u, ok = s.users[*in.ID]
		if !ok {
			s.mu.Unlock()
			return nil, fmt.Errorf("%w: %s", auth.ErrNotFound, *in.ID)
		}
	}

	// A role change resets the permission map to the role's defaults.
	if u.Role != in.Role {
		u.Permissions = auth.DefaultPermissions(in.Role)
	}
	u.Username = in.Username
	u.Name = in.Name
	u.Role = in.Role
	u.Email = in.Email
	u.Phone = in.Phone
	if passwordHash != "" {
		u.PasswordHash = passwordHash
	}
	u.UpdatedAt = now

	cp := copyUser(u)
	s.mu.Unlock()

	dispatch(s.events, event.UserChanged{UserID: cp.ID})
	return cp, nil
}

func (s *UserStore) SetStatus(ctx context.Context, id, status string) (*auth.User, error) {
	s.mu.Lock()

	u, ok := s.users[id]
	if !ok {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", auth.ErrNotFound, id)
	}
	u.Status = status
	u.UpdatedAt = s.now()

	cp := copyUser(u)
	s.mu.Unlock()

	dispatch(s.events, event.UserChanged{UserID: id})
	return cp, nil
}

func (s *UserStore) TouchLogin(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return fmt.Errorf("%w: %s", auth.ErrNotFound, id)
	}
	now := s.now()
	u.LastLogin = &now
	return nil
}

func (s *UserStore) Replace(users []auth.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = make(map[string]*auth.User, len(users))
	s.order = s.order[:0]
	for i := range users {
		u := users[i]
		s.users[u.ID] = &u
		s.order = append(s.order, u.ID)
	}
}
