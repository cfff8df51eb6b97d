package service

import (
	"context"
	"strings"

	"recipeapp/internal/domain"
	applog "recipeapp/internal/log"
	"recipeapp/internal/ports"
)

// IngredientService manages the shared ingredient list.
type IngredientService struct {
	store ports.Store
}

func NewIngredientService(store ports.Store) *IngredientService {
	return &IngredientService{store: store}
}

// Add creates an ingredient. Names are trimmed and compared case-sensitively.
func (s *IngredientService) Add(ctx context.Context, name string) (domain.Ingredient, error) {
	name = strings.TrimSpace(name)
	if err := domain.ValidateIngredientName(name); err != nil {
		return domain.Ingredient{}, fail(ctx, "add ingredient", err)
	}

	var created domain.Ingredient
	err := s.store.Transaction(ctx, func(tx ports.Repositories) error {
		_, found, err := tx.Ingredients().FindByName(ctx, name)
		if err != nil {
			return err
		}
		if found {
			return domain.Duplicatef("ingredient with name %s already exists", name)
		}
		created, err = tx.Ingredients().Create(ctx, name)
		return err
	})
	if err != nil {
		return domain.Ingredient{}, fail(ctx, "add ingredient", err, "name", name)
	}

	applog.Info(ctx, "ingredient added", "ingredient_id", created.ID, "name", created.Name)
	return created, nil
}

// Update renames an ingredient.
func (s *IngredientService) Update(ctx context.Context, id uint, name string) (domain.Ingredient, error) {
	name = strings.TrimSpace(name)

	updated := domain.Ingredient{ID: id, Name: name}
	err := s.store.Transaction(ctx, func(tx ports.Repositories) error {
		found, err := tx.Ingredients().LockByID(ctx, id)
		if err != nil {
			return err
		}
		if !found {
			return domain.NotFoundf("ingredient with id %d not found", id)
		}
		if err := domain.ValidateIngredientName(name); err != nil {
			return err
		}
		other, found, err := tx.Ingredients().FindByName(ctx, name)
		if err != nil {
			return err
		}
		if found && other.ID != id {
			return domain.Duplicatef("ingredient with name %s already exists", name)
		}
		return tx.Ingredients().Update(ctx, updated)
	})
	if err != nil {
		return domain.Ingredient{}, fail(ctx, "update ingredient", err, "ingredient_id", id)
	}

	applog.Info(ctx, "ingredient updated", "ingredient_id", id, "name", name)
	return updated, nil
}

// Delete removes an ingredient and every association referencing it. It is
// refused when a recipe lists the ingredient as its only one, since that
// recipe would be left empty.
//
// Recipes using the ingredient are locked before the ingredient itself, the
// same order a recipe replace takes them in, so the dependency check below
// cannot race a concurrent replace.
func (s *IngredientService) Delete(ctx context.Context, id uint) error {
	var removed int64
	err := s.store.Transaction(ctx, func(tx ports.Repositories) error {
		if _, err := tx.Recipes().LockAllUsing(ctx, id); err != nil {
			return err
		}
		exists, err := tx.Ingredients().LockByID(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return domain.NotFoundf("ingredient with id %d not found", id)
		}

		depending, err := tx.RecipeIngredients().RecipesDependingOn(ctx, id)
		if err != nil {
			return err
		}
		if len(depending) > 0 {
			return domain.BadRequestf("ingredient %d is the only ingredient of recipe(s) %s", id, joinIDs(depending))
		}

		removed, err = tx.RecipeIngredients().DeleteAllForIngredient(ctx, id)
		if err != nil {
			return err
		}
		return tx.Ingredients().DeleteByID(ctx, id)
	})
	if err != nil {
		return fail(ctx, "delete ingredient", err, "ingredient_id", id)
	}

	applog.Info(ctx, "ingredient deleted", "ingredient_id", id, "associations_removed", removed)
	return nil
}

func (s *IngredientService) GetByID(ctx context.Context, id uint) (domain.Ingredient, error) {
	ingredient, found, err := s.store.Ingredients().FindByID(ctx, id)
	if err != nil {
		return domain.Ingredient{}, fail(ctx, "get ingredient", err, "ingredient_id", id)
	}
	if !found {
		return domain.Ingredient{}, fail(ctx, "get ingredient", domain.NotFoundf("ingredient with id %d not found", id))
	}
	return ingredient, nil
}

// GetByName looks the ingredient up by its trimmed name, as Add stores it.
func (s *IngredientService) GetByName(ctx context.Context, name string) (domain.Ingredient, error) {
	name = strings.TrimSpace(name)
	ingredient, found, err := s.store.Ingredients().FindByName(ctx, name)
	if err != nil {
		return domain.Ingredient{}, fail(ctx, "get ingredient", err, "name", name)
	}
	if !found {
		return domain.Ingredient{}, fail(ctx, "get ingredient", domain.NotFoundf("ingredient with name %s not found", name))
	}
	return ingredient, nil
}

func (s *IngredientService) List(ctx context.Context) ([]domain.Ingredient, error) {
	ingredients, err := s.store.Ingredients().ListAll(ctx)
	if err != nil {
		return nil, fail(ctx, "list ingredients", err)
	}
	return ingredients, nil
}
