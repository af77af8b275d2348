package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/emrekoca/recipebox/internal/apperr"
	"github.com/emrekoca/recipebox/internal/auth"
	"github.com/emrekoca/recipebox/internal/metrics"
	"github.com/emrekoca/recipebox/internal/models"
	repo "github.com/emrekoca/recipebox/internal/repository"
	"github.com/emrekoca/recipebox/internal/worker"
)

type UserService struct {
	users repo.Users
	audit repo.AuditLogs
	tm    *auth.TokenManager
	wp    *worker.Pool
}

func NewUserService(users repo.Users, audit repo.AuditLogs, tm *auth.TokenManager, wp *worker.Pool) *UserService {
	return &UserService{users: users, audit: audit, tm: tm, wp: wp}
}

// Register validates input, derives the credential and persists the user.
// The insert is a single statement, so a uniqueness conflict leaves no
// partial row behind.
func (s *UserService) Register(ctx context.Context, username, email, password string) (models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return models.User{}, apperr.New(apperr.Validation, "Missing required fields")
	}
	u := models.User{Username: username, Email: email}
	if err := u.Validate(); err != nil {
		return models.User{}, err
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}
	created, err := s.users.Create(ctx, username, email, hash)
	if err != nil {
		return models.User{}, err
	}
	metrics.RegistrationsTotal.Inc()
	s.record(created.ID, "register", created.Email)
	return created, nil
}

// Login authenticates by email. Unknown email and wrong password collapse
// into the same error so callers cannot probe which accounts exist.
func (s *UserService) Login(ctx context.Context, email, password string) (models.User, string, error) {
	if email == "" || password == "" {
		return models.User{}, "", apperr.New(apperr.Validation, "Email and password required")
	}
	invalid := apperr.New(apperr.Unauthorized, "Invalid credentials")

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if apperr.KindOf(err) == apperr.NotFound {
			metrics.LoginsTotal.WithLabelValues("rejected").Inc()
			return models.User{}, "", invalid
		}
		return models.User{}, "", err
	}
	if !auth.VerifyPassword(password, u.PasswordHash) {
		metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		s.record(u.ID, "login_rejected", "")
		return models.User{}, "", invalid
	}
	tok, _, err := s.tm.Issue(u.ID)
	if err != nil {
		return models.User{}, "", err
	}
	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	s.record(u.ID, "login", "")
	return u, tok, nil
}

func (s *UserService) Get(ctx context.Context, id int64) (models.User, error) {
	return s.users.GetByID(ctx, id)
}

// UpdateProfile changes username and/or email. Nil fields keep their
// current value.
func (s *UserService) UpdateProfile(ctx context.Context, id int64, username, email *string) (models.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}
	if username != nil {
		u.Username = strings.TrimSpace(*username)
	}
	if email != nil {
		u.Email = strings.TrimSpace(*email)
	}
	if err := u.Validate(); err != nil {
		return models.User{}, err
	}
	updated, err := s.users.Update(ctx, u)
	if err != nil {
		return models.User{}, err
	}
	s.record(updated.ID, "profile_update", "")
	return updated, nil
}

// DeleteAccount removes the user and, in the same transaction, every recipe
// they own.
func (s *UserService) DeleteAccount(ctx context.Context, id int64) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.record(id, "account_delete", "")
	return nil
}

// record queues a best-effort audit write off the request path.
func (s *UserService) record(userID int64, action, detail string) {
	if s.audit == nil || s.wp == nil {
		return
	}
	s.wp.Submit(func() {
		if err := s.audit.Create(context.Background(), models.AuditLog{UserID: userID, Action: action, Detail: detail}); err != nil {
			slog.Warn("audit write failed", "action", action, "err", err)
		}
	})
}
