package models

import (
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestRecipeIngredientPairIsUnique(t *testing.T) {
	t.Parallel()

	db, err := gorm.Open(sqlite.Open("file:models-unique?mode=memory&cache=shared&_foreign_keys=1"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite database: %v", err)
	}
	if err := db.AutoMigrate(&Ingredient{}, &Recipe{}, &RecipeIngredient{}); err != nil {
		t.Fatalf("migrate schema: %v", err)
	}

	flour := Ingredient{Name: "Flour"}
	if err := db.Create(&flour).Error; err != nil {
		t.Fatalf("create ingredient: %v", err)
	}
	cake := Recipe{Name: "Cake", Instructions: "Bake", Servings: 4}
	if err := db.Create(&cake).Error; err != nil {
		t.Fatalf("create recipe: %v", err)
	}

	first := RecipeIngredient{RecipeID: cake.ID, IngredientID: flour.ID, Amount: 200, Unit: "g"}
	if err := db.Create(&first).Error; err != nil {
		t.Fatalf("create association: %v", err)
	}

	second := RecipeIngredient{RecipeID: cake.ID, IngredientID: flour.ID, Amount: 100, Unit: "g"}
	if err := db.Create(&second).Error; err == nil {
		t.Fatal("expected the repeated (recipe, ingredient) pair to be rejected")
	}

	if err := db.Create(&Ingredient{Name: "Flour"}).Error; err == nil {
		t.Fatal("expected the repeated ingredient name to be rejected")
	}
}

func TestRecipeIngredientReferencesMustExist(t *testing.T) {
	t.Parallel()

	db, err := gorm.Open(sqlite.Open("file:models-fk?mode=memory&cache=shared&_foreign_keys=1"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite database: %v", err)
	}
	if err := db.AutoMigrate(&Ingredient{}, &Recipe{}, &RecipeIngredient{}); err != nil {
		t.Fatalf("migrate schema: %v", err)
	}

	dangling := RecipeIngredient{RecipeID: 4242, IngredientID: 9999, Amount: 1, Unit: "g"}
	if err := db.Create(&dangling).Error; !errors.Is(err, gorm.ErrForeignKeyViolated) {
		t.Fatalf("dangling association error = %v, want gorm.ErrForeignKeyViolated", err)
	}

	eggs := Ingredient{Name: "Eggs"}
	if err := db.Create(&eggs).Error; err != nil {
		t.Fatalf("create ingredient: %v", err)
	}
	omelette := Recipe{Name: "Omelette", Instructions: "Whisk and fry", Servings: 1}
	if err := db.Create(&omelette).Error; err != nil {
		t.Fatalf("create recipe: %v", err)
	}
	line := RecipeIngredient{RecipeID: omelette.ID, IngredientID: eggs.ID, Amount: 3, Unit: "pcs"}
	if err := db.Create(&line).Error; err != nil {
		t.Fatalf("create association: %v", err)
	}

	if err := db.Delete(&eggs).Error; !errors.Is(err, gorm.ErrForeignKeyViolated) {
		t.Fatalf("deleting a referenced ingredient error = %v, want gorm.ErrForeignKeyViolated", err)
	}

	if err := db.Delete(&omelette).Error; err != nil {
		t.Fatalf("delete recipe: %v", err)
	}
	var remaining int64
	if err := db.Model(&RecipeIngredient{}).Where("recipe_id = ?", omelette.ID).Count(&remaining).Error; err != nil {
		t.Fatalf("count associations: %v", err)
	}
	if remaining != 0 {
		t.Fatalf("recipe delete left %d associations behind", remaining)
	}
}
