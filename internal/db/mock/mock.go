package mock

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"recipeapp/internal/db"
	applog "recipeapp/internal/log"
	"recipeapp/models"
)

// New returns an in-memory sqlite database seeded with a small recipe catalog.
func New(ctx context.Context) (*gorm.DB, error) {
	applog.Debug(ctx, "initialising mock database")

	database, err := Open(ctx)
	if err != nil {
		return nil, err
	}

	if err := seed(ctx, database); err != nil {
		return nil, err
	}

	applog.Debug(ctx, "mock database ready")
	return database, nil
}

// Open returns an empty, migrated in-memory sqlite database. Every call gets
// its own database, so tests can run in parallel.
func Open(ctx context.Context) (*gorm.DB, error) {
	dsn := db.SQLiteDSN(fmt.Sprintf("file:recipeapp-%s?mode=memory&cache=shared", uuid.NewString()))

	cfg := db.GormConfig(logger.Silent)
	// Statements prepared outside a transaction would need a second connection.
	cfg.PrepareStmt = false

	database, err := gorm.Open(sqlite.Open(dsn), cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := database.DB()
	if err != nil {
		return nil, err
	}
	// The in-memory database lives as long as its connection does.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(database.WithContext(ctx)); err != nil {
		return nil, err
	}

	return database, nil
}

type seedLine struct {
	ingredient string
	amount     float64
	unit       string
}

type seedRecipe struct {
	name         string
	instructions string
	vegetarian   bool
	servings     int
	lines        []seedLine
}

var seedIngredients = []string{
	"Flour", "Sugar", "Eggs", "Milk", "Butter", "Salt", "Chicken", "Potatoes", "Salmon", "Lemon",
}

var seedRecipes = []seedRecipe{
	{
		name:         "Cake",
		instructions: "Cream the butter and sugar, fold in the flour and eggs, then bake in the oven for 40 minutes.",
		vegetarian:   true,
		servings:     4,
		lines: []seedLine{
			{"Flour", 200, "g"},
			{"Sugar", 100, "g"},
			{"Eggs", 2, "pcs"},
			{"Butter", 100, "g"},
		},
	},
	{
		name:         "Pancakes",
		instructions: "Whisk flour, eggs and milk into a batter and fry in a hot pan.",
		vegetarian:   true,
		servings:     2,
		lines: []seedLine{
			{"Flour", 150, "g"},
			{"Eggs", 1, "pcs"},
			{"Milk", 250, "ml"},
		},
	},
	{
		name:         "Roast Chicken",
		instructions: "Season the chicken with salt and lemon, roast in the oven with the potatoes.",
		vegetarian:   false,
		servings:     4,
		lines: []seedLine{
			{"Chicken", 1.5, "kg"},
			{"Potatoes", 800, "g"},
			{"Salt", 10, "g"},
			{"Lemon", 1, "pcs"},
		},
	},
	{
		name:         "Baked Salmon",
		instructions: "Place the salmon on a tray with butter and lemon and bake for 15 minutes.",
		vegetarian:   false,
		servings:     2,
		lines: []seedLine{
			{"Salmon", 400, "g"},
			{"Butter", 30, "g"},
			{"Lemon", 1, "pcs"},
		},
	},
}

func seed(ctx context.Context, database *gorm.DB) error {
	applog.Debug(ctx, "seeding mock database")

	return database.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ids := make(map[string]uint, len(seedIngredients))
		for _, name := range seedIngredients {
			ingredient := models.Ingredient{Name: name}
			if err := tx.Create(&ingredient).Error; err != nil {
				return fmt.Errorf("seed ingredient %s: %w", name, err)
			}
			ids[name] = ingredient.ID
		}

		for _, sr := range seedRecipes {
			recipe := models.Recipe{
				Name:         sr.name,
				Instructions: sr.instructions,
				Vegetarian:   sr.vegetarian,
				Servings:     sr.servings,
			}
			if err := tx.Create(&recipe).Error; err != nil {
				return fmt.Errorf("seed recipe %s: %w", sr.name, err)
			}
			for _, line := range sr.lines {
				ri := models.RecipeIngredient{
					RecipeID:     recipe.ID,
					IngredientID: ids[line.ingredient],
					Amount:       line.amount,
					Unit:         line.unit,
				}
				if err := tx.Create(&ri).Error; err != nil {
					return fmt.Errorf("seed %s in %s: %w", line.ingredient, sr.name, err)
				}
			}
		}

		applog.Debug(ctx, "mock database seeded", "ingredients", len(seedIngredients), "recipes", len(seedRecipes))
		return nil
	})
}
