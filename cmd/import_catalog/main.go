package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"recipeapp/internal/config"
	"recipeapp/internal/db"
	"recipeapp/internal/db/mock"
	applog "recipeapp/internal/log"
	"recipeapp/internal/repository"
	"recipeapp/internal/service"
)

var (
	loadConfigFunc   = config.Load
	openDatabaseFunc = func(ctx context.Context, cfg config.DatabaseConfig) (*gorm.DB, error) {
		if cfg.UseMock {
			return mock.New(ctx)
		}
		return db.Configure(cfg)
	}
)

type importOptions struct {
	ingredientsPath string
	recipesPath     string
}

func main() {
	cmd := newRootCommand()
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "import failed: %v\n", err)
		_ = applog.Sync()
		os.Exit(1)
	}
	_ = applog.Sync()
}

func newRootCommand() *cobra.Command {
	opts := &importOptions{}

	cmd := &cobra.Command{
		Use:   "import_catalog",
		Short: "Import ingredients and recipes into the catalog",
		Long: `Import ingredients from a CSV file with a Name header and recipes from a
YAML catalog. Recipes reference ingredients by name; missing ingredients are
created and recipes whose name already exists are replaced.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.ingredientsPath, "ingredients", "", "CSV file of ingredient names")
	cmd.Flags().StringVar(&opts.recipesPath, "recipes", "", "YAML file of recipes")

	return cmd
}

func run(ctx context.Context, opts *importOptions, cmd *cobra.Command) error {
	if opts.ingredientsPath == "" && opts.recipesPath == "" {
		return fmt.Errorf("nothing to import: pass --ingredients and/or --recipes")
	}

	cfg, err := loadConfigFunc()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	database, err := openDatabaseFunc(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	store := repository.New(database)
	imp := &importer{
		ingredients: service.NewIngredientService(store),
		recipes:     service.NewRecipeService(store),
	}
	out := cmd.OutOrStdout()

	if opts.ingredientsPath != "" {
		summary, err := imp.importIngredients(ctx, opts.ingredientsPath)
		if err != nil {
			return fmt.Errorf("import ingredients: %w", err)
		}
		fmt.Fprintf(out, "%s: %d added, %d skipped\n", opts.ingredientsPath, summary.added, summary.skipped)
	}

	if opts.recipesPath != "" {
		summary, err := imp.importRecipes(ctx, opts.recipesPath)
		if err != nil {
			return fmt.Errorf("import recipes: %w", err)
		}
		fmt.Fprintf(out, "%s: %d added, %d replaced, %d ingredients created\n",
			opts.recipesPath, summary.added, summary.replaced, summary.ingredientsCreated)
	}

	return nil
}
