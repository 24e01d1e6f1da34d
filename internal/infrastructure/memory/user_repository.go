package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"inventory-management/internal/domain/entity"
	"inventory-management/internal/domain/repository"
	"inventory-management/pkg/helpers"
)

// UserRepository is an in-memory implementation of
// repository.UserRepository with the same observable contract as the
// Postgres one. Used by tests and local experiments.
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]*entity.User // id -> user
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]*entity.User)}
}

func clone(u *entity.User) *entity.User {
	cp := *u
	return &cp
}

func (r *UserRepository) findByEmail(email string) *entity.User {
	for _, u := range r.users {
		if u.Email == email {
			return u
		}
	}
	return nil
}

func (r *UserRepository) Create(_ context.Context, name, email, rawPassword string) (*entity.User, error) {
	hash, err := helpers.HashPassword(rawPassword)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.findByEmail(email) != nil {
		return nil, repository.ErrDuplicateEmail
	}

	now := time.Now().UTC()
	u := &entity.User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Password:  hash,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.users[u.ID] = u
	return clone(u), nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if u, ok := r.users[id]; ok {
		return clone(u), nil
	}
	return nil, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if u := r.findByEmail(email); u != nil {
		return clone(u), nil
	}
	return nil, nil
}

func (r *UserRepository) List(_ context.Context, page, size int) (*repository.UserPage, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	start := (page - 1) * size
	items := make([]*entity.User, 0, size)
	for i := start; i < len(ids) && i < start+size; i++ {
		items = append(items, clone(r.users[ids[i]]))
	}
	return &repository.UserPage{Items: items, Total: int64(len(ids)), Page: page, Size: size}, nil
}

func (r *UserRepository) Update(_ context.Context, id string, fields repository.UpdateFields) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}

	if fields.Name == nil && fields.Email == nil && fields.Password == nil {
		return clone(u), nil
	}

	// Validate and hash up front so a failure leaves the record untouched.
	if fields.Email != nil {
		if other := r.findByEmail(*fields.Email); other != nil && other.ID != id {
			return nil, repository.ErrDuplicateEmail
		}
	}
	var hash string
	if fields.Password != nil {
		h, err := helpers.HashPassword(*fields.Password)
		if err != nil {
			return nil, err
		}
		hash = h
	}

	if fields.Email != nil {
		u.Email = *fields.Email
	}
	if fields.Name != nil {
		u.Name = *fields.Name
	}
	if fields.Password != nil {
		u.Password = hash
	}
	u.UpdatedAt = time.Now().UTC()
	return clone(u), nil
}

func (r *UserRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return false, nil
	}
	delete(r.users, id)
	return true, nil
}

func (r *UserRepository) Authenticate(_ context.Context, email, rawPassword string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u := r.findByEmail(email)
	if u == nil || !helpers.CompareHashAndPassword(u.Password, rawPassword) {
		return nil, nil
	}
	return clone(u), nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
