// Package memory provides mutex-guarded in-memory implementations of the
// repository interfaces. They back the unit and router tests and are handy
// for local hacking without a database; the semantics (conflict on duplicate
// username/email, not-found mapping) mirror the postgres implementations.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/emrekoca/recipebox/internal/apperr"
	"github.com/emrekoca/recipebox/internal/models"
	repo "github.com/emrekoca/recipebox/internal/repository"
)

type Repositories struct {
	Users     *UsersRepo
	Recipes   *RecipesRepo
	AuditLogs *AuditLogsRepo
}

func NewRepositories() Repositories {
	recipes := &RecipesRepo{byID: map[int64]models.Recipe{}}
	return Repositories{
		Users:     &UsersRepo{byID: map[int64]models.User{}, recipes: recipes},
		Recipes:   recipes,
		AuditLogs: &AuditLogsRepo{},
	}
}

type UsersRepo struct {
	mu      sync.Mutex
	nextID  int64
	byID    map[int64]models.User
	recipes *RecipesRepo
}

var _ repo.Users = (*UsersRepo)(nil)

func (r *UsersRepo) Create(_ context.Context, username, email, passwordHash string) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byID {
		if u.Username == username || u.Email == email {
			return models.User{}, apperr.New(apperr.Conflict, "Username or email already exists")
		}
	}
	r.nextID++
	now := time.Now()
	u := models.User{ID: r.nextID, Username: username, Email: email, PasswordHash: passwordHash, CreatedAt: now, UpdatedAt: now}
	r.byID[u.ID] = u
	return u, nil
}

func (r *UsersRepo) GetByID(_ context.Context, id int64) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return models.User{}, apperr.New(apperr.NotFound, "User not found")
	}
	return u, nil
}

func (r *UsersRepo) GetByEmail(_ context.Context, email string) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, apperr.New(apperr.NotFound, "User not found")
}

func (r *UsersRepo) Update(_ context.Context, u models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.byID[u.ID]
	if !ok {
		return models.User{}, apperr.New(apperr.NotFound, "User not found")
	}
	for id, other := range r.byID {
		if id != u.ID && (other.Username == u.Username || other.Email == u.Email) {
			return models.User{}, apperr.New(apperr.Conflict, "Username or email already exists")
		}
	}
	cur.Username = u.Username
	cur.Email = u.Email
	cur.UpdatedAt = time.Now()
	r.byID[u.ID] = cur
	return cur, nil
}

// Delete removes the user and, like the postgres implementation, every
// recipe they own.
func (r *UsersRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return apperr.New(apperr.NotFound, "User not found")
	}
	delete(r.byID, id)

	if r.recipes != nil {
		r.recipes.mu.Lock()
		for rid, rec := range r.recipes.byID {
			if rec.OwnerID == id {
				delete(r.recipes.byID, rid)
			}
		}
		r.recipes.mu.Unlock()
	}
	return nil
}

type RecipesRepo struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]models.Recipe
}

var _ repo.Recipes = (*RecipesRepo)(nil)

func (r *RecipesRepo) Create(_ context.Context, rec models.Recipe) (models.Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	rec.ID = r.nextID
	now := time.Now()
	rec.CreatedAt = now
	rec.UpdatedAt = now
	r.byID[rec.ID] = rec
	return rec, nil
}

func (r *RecipesRepo) GetByID(_ context.Context, id int64) (models.Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.byID[id]
	if !ok {
		return models.Recipe{}, apperr.New(apperr.NotFound, "Recipe not found")
	}
	return rec, nil
}

func (r *RecipesRepo) ListByOwner(_ context.Context, ownerID int64) ([]models.Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Recipe{}
	for _, rec := range r.byID {
		if rec.OwnerID == ownerID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *RecipesRepo) Update(_ context.Context, rec models.Recipe) (models.Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.byID[rec.ID]
	if !ok {
		return models.Recipe{}, apperr.New(apperr.NotFound, "Recipe not found")
	}
	rec.OwnerID = cur.OwnerID
	rec.CreatedAt = cur.CreatedAt
	rec.UpdatedAt = time.Now()
	r.byID[rec.ID] = rec
	return rec, nil
}

func (r *RecipesRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return apperr.New(apperr.NotFound, "Recipe not found")
	}
	delete(r.byID, id)
	return nil
}

type AuditLogsRepo struct {
	mu   sync.Mutex
	logs []models.AuditLog
}

var _ repo.AuditLogs = (*AuditLogsRepo)(nil)

func (r *AuditLogsRepo) Create(_ context.Context, l models.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logs = append(r.logs, l)
	return nil
}

// Logs returns a snapshot of everything recorded so far.
func (r *AuditLogsRepo) Logs() []models.AuditLog {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.AuditLog, len(r.logs))
	copy(out, r.logs)
	return out
}
