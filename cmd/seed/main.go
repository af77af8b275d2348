// Command seed wipes and repopulates the database with fake users and
// recipes for local development. Every user gets the password "password123".
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/emrekoca/recipebox/internal/auth"
	"github.com/emrekoca/recipebox/internal/config"
	"github.com/emrekoca/recipebox/internal/db"
	"github.com/emrekoca/recipebox/internal/logger"
	"github.com/emrekoca/recipebox/internal/models"
	"github.com/emrekoca/recipebox/internal/repository/postgres"
)

const (
	userCount   = 15
	recipeCount = 15
	seedPass    = "password123"
)

var categories = []string{"Breakfast", "Lunch", "Dinner", "Dessert", "Snack"}

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := db.RunMigrations(ctx, pool); err != nil {
		log.Error("migrations", "err", err)
		os.Exit(1)
	}

	log.Info("clearing old data...")
	for _, table := range []string{"audit_logs", "recipes", "users"} {
		if _, err := pool.Exec(ctx, "DELETE FROM "+table); err != nil {
			log.Error("clear table", "table", table, "err", err)
			os.Exit(1)
		}
	}

	repos := postgres.NewRepositories(pool)
	f := gofakeit.New(0)

	log.Info("creating users...", "count", userCount)
	users := make([]models.User, 0, userCount)
	for len(users) < userCount {
		hash, err := auth.HashPassword(seedPass)
		if err != nil {
			log.Error("hash password", "err", err)
			os.Exit(1)
		}
		u, err := repos.Users.Create(ctx, f.Username(), f.Email(), hash)
		if err != nil {
			// fake data can collide on unique columns, just try again
			continue
		}
		users = append(users, u)
	}

	log.Info("creating recipes...", "count", recipeCount)
	for i := 0; i < recipeCount; i++ {
		owner := users[f.Number(0, len(users)-1)]
		_, err := repos.Recipes.Create(ctx, models.Recipe{
			Title:        f.Sentence(3),
			Description:  f.Sentence(10),
			Ingredients:  f.Paragraph(1, 2, 8, " "),
			Instructions: f.Paragraph(1, 3, 10, " "),
			Category:     categories[f.Number(0, len(categories)-1)],
			OwnerID:      owner.ID,
		})
		if err != nil {
			log.Error("create recipe", "err", err)
			os.Exit(1)
		}
	}

	log.Info("seed complete", "users", len(users), "recipes", recipeCount)
}
