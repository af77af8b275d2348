package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emrekoca/recipebox/internal/apperr"
	repo "github.com/emrekoca/recipebox/internal/repository"
)

type Repositories struct {
	Users     repo.Users
	Recipes   repo.Recipes
	AuditLogs repo.AuditLogs
}

func NewRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		Users:     &usersRepo{pool},
		Recipes:   &recipesRepo{pool},
		AuditLogs: &auditLogsRepo{pool},
	}
}

const uniqueViolation = "23505"

// mapErr translates driver errors into the service-level taxonomy.
func mapErr(err error, notFoundMsg, conflictMsg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.New(apperr.NotFound, notFoundMsg)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return apperr.New(apperr.Conflict, conflictMsg)
	}
	return err
}
