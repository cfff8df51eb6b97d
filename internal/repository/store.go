// Package repository implements the persistence ports on top of GORM.
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"recipeapp/internal/ports"
)

// Store binds the ingredient, recipe and association repositories to one
// *gorm.DB, which is either the shared connection or a transaction.
type Store struct {
	db *gorm.DB
}

var _ ports.Store = (*Store)(nil)

// New returns a Store backed by db.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Ingredients() ports.IngredientStore {
	return &IngredientRepository{db: s.db}
}

func (s *Store) Recipes() ports.RecipeStore {
	return &RecipeRepository{db: s.db}
}

func (s *Store) RecipeIngredients() ports.RecipeIngredientStore {
	return &RecipeIngredientRepository{db: s.db}
}

// Transaction runs fn with repositories bound to a single database
// transaction. GORM rolls back when fn returns an error or panics.
func (s *Store) Transaction(ctx context.Context, fn func(tx ports.Repositories) error) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("repository store has no database")
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(New(tx))
	})
}

// forUpdate adds SELECT ... FOR UPDATE. The sqlite dialect drops the clause;
// its writers are already serialised by the database lock.
func forUpdate(db *gorm.DB) *gorm.DB {
	return db.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
}

// isUniqueViolation reports whether err came from a unique index. The string
// checks cover connections opened without TranslateError.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key value")
}

// isForeignKeyViolation reports whether err came from a foreign key
// constraint, i.e. the row referenced a recipe or ingredient that is gone.
func isForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "foreign key constraint")
}
