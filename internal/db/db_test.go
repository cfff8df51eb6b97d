package db

import (
	"testing"

	"recipeapp/internal/config"
	"recipeapp/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestInitializeRequiresURL(t *testing.T) {
	t.Parallel()

	db, err := Initialize(config.DatabaseConfig{URL: ""})
	if err == nil {
		t.Fatal("expected error when database URL is empty")
	}
	if db != nil {
		t.Fatal("expected returned db handle to be nil on error")
	}
}

func TestInitializeRejectsUnknownDriver(t *testing.T) {
	t.Parallel()

	if _, err := Initialize(config.DatabaseConfig{Driver: "oracle", URL: "oracle://example"}); err == nil {
		t.Fatal("expected error for an unsupported driver")
	}
}

func TestAutoMigrateRejectsNilDatabase(t *testing.T) {
	t.Parallel()

	if err := AutoMigrate(nil); err == nil {
		t.Fatal("expected error when database handle is nil")
	}
}

func TestAutoMigrateWithSQLite(t *testing.T) {
	t.Parallel()

	sqliteDB, err := gorm.Open(sqlite.Open("file:memdb?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite database: %v", err)
	}

	if err := AutoMigrate(sqliteDB); err != nil {
		t.Fatalf("automigrate sqlite database: %v", err)
	}

	for _, table := range []any{&models.Ingredient{}, &models.Recipe{}, &models.RecipeIngredient{}} {
		if !sqliteDB.Migrator().HasTable(table) {
			t.Fatalf("expected table for %T", table)
		}
	}
	if !sqliteDB.Migrator().HasIndex(&models.RecipeIngredient{}, "idx_recipe_ingredient") {
		t.Fatal("expected the recipe/ingredient unique index")
	}
}

func TestConfigureWithSQLiteDriver(t *testing.T) {
	t.Parallel()

	database, err := Configure(config.DatabaseConfig{
		Driver:       config.DriverSQLite,
		URL:          "file:configure-sqlite?mode=memory&cache=shared",
		MaxOpenConns: 1,
	})
	if err != nil {
		t.Fatalf("configure sqlite database: %v", err)
	}
	if !database.Migrator().HasTable(&models.Recipe{}) {
		t.Fatal("expected recipes table after configure")
	}
}

func TestGormConfigTranslatesErrors(t *testing.T) {
	t.Parallel()

	cfg := GormConfig(logger.Silent)
	if !cfg.TranslateError {
		t.Fatal("expected TranslateError to be enabled")
	}
	if !cfg.SkipDefaultTransaction {
		t.Fatal("expected SkipDefaultTransaction to be enabled")
	}
}

func TestConfigurePropagatesInitializationError(t *testing.T) {
	t.Parallel()

	if _, err := Configure(config.DatabaseConfig{}); err == nil {
		t.Fatal("expected configuration error when initialize fails")
	}
}

func TestMustConfigurePanicsOnError(t *testing.T) {
	t.Parallel()

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic when configuration fails")
		}
	}()

	MustConfigure(config.DatabaseConfig{})
}

func TestSQLiteDSNEnablesForeignKeys(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"catalog.db":                      "catalog.db?_foreign_keys=1",
		"file:x?mode=memory&cache=shared": "file:x?mode=memory&cache=shared&_foreign_keys=1",
		"file:x?_foreign_keys=0":          "file:x?_foreign_keys=0",
		"file:x?mode=memory&_fk=1":        "file:x?mode=memory&_fk=1",
	}
	for in, want := range cases {
		if got := SQLiteDSN(in); got != want {
			t.Fatalf("SQLiteDSN(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestConfigureWithSQLiteEnforcesForeignKeys(t *testing.T) {
	t.Parallel()

	database, err := Configure(config.DatabaseConfig{
		Driver:       config.DriverSQLite,
		URL:          "file:configure-sqlite-fk?mode=memory&cache=shared",
		MaxOpenConns: 1,
	})
	if err != nil {
		t.Fatalf("configure sqlite database: %v", err)
	}

	var enabled int
	if err := database.Raw("PRAGMA foreign_keys").Scan(&enabled).Error; err != nil {
		t.Fatalf("read foreign_keys pragma: %v", err)
	}
	if enabled != 1 {
		t.Fatalf("foreign_keys = %d, want 1", enabled)
	}

	dangling := models.RecipeIngredient{RecipeID: 4242, IngredientID: 9999, Amount: 1, Unit: "g"}
	if err := database.Create(&dangling).Error; err == nil {
		t.Fatal("expected a dangling recipe ingredient to be rejected")
	}
}
