package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emrekoca/recipebox/internal/apperr"
	"github.com/emrekoca/recipebox/internal/models"
)

const (
	recipeNotFound = "Recipe not found"
	recipeColumns  = "id, title, description, ingredients, instructions, category, owner_id, created_at, updated_at"
)

type recipesRepo struct{ pool *pgxpool.Pool }

func (r *recipesRepo) scan(row interface{ Scan(...any) error }) (models.Recipe, error) {
	var rec models.Recipe
	err := row.Scan(&rec.ID, &rec.Title, &rec.Description, &rec.Ingredients,
		&rec.Instructions, &rec.Category, &rec.OwnerID, &rec.CreatedAt, &rec.UpdatedAt)
	return rec, err
}

func (r *recipesRepo) Create(ctx context.Context, rec models.Recipe) (models.Recipe, error) {
	out, err := r.scan(r.pool.QueryRow(ctx,
		`INSERT INTO recipes (title, description, ingredients, instructions, category, owner_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+recipeColumns,
		rec.Title, rec.Description, rec.Ingredients, rec.Instructions, rec.Category, rec.OwnerID,
	))
	return out, mapErr(err, recipeNotFound, recipeNotFound)
}

func (r *recipesRepo) GetByID(ctx context.Context, id int64) (models.Recipe, error) {
	out, err := r.scan(r.pool.QueryRow(ctx,
		`SELECT `+recipeColumns+` FROM recipes WHERE id=$1`, id))
	return out, mapErr(err, recipeNotFound, recipeNotFound)
}

func (r *recipesRepo) ListByOwner(ctx context.Context, ownerID int64) ([]models.Recipe, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+recipeColumns+` FROM recipes WHERE owner_id=$1 ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Recipe{}
	for rows.Next() {
		rec, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *recipesRepo) Update(ctx context.Context, rec models.Recipe) (models.Recipe, error) {
	out, err := r.scan(r.pool.QueryRow(ctx,
		`UPDATE recipes
		 SET title=$2, description=$3, ingredients=$4, instructions=$5, category=$6, updated_at=now()
		 WHERE id=$1
		 RETURNING `+recipeColumns,
		rec.ID, rec.Title, rec.Description, rec.Ingredients, rec.Instructions, rec.Category,
	))
	return out, mapErr(err, recipeNotFound, recipeNotFound)
}

func (r *recipesRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM recipes WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.New(apperr.NotFound, recipeNotFound)
	}
	return nil
}
