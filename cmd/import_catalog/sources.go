package main

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"gopkg.in/yaml.v3"
)

type recipeCatalogFile struct {
	Recipes []recipeEntry `yaml:"recipes"`
}

type recipeEntry struct {
	Name             string            `yaml:"name"`
	Instructions     string            `yaml:"instructions"`
	InstructionsFile string            `yaml:"instructions_file"`
	Vegetarian       bool              `yaml:"vegetarian"`
	Servings         int               `yaml:"servings"`
	Ingredients      []ingredientEntry `yaml:"ingredients"`
}

type ingredientEntry struct {
	Name   string  `yaml:"name"`
	Amount float64 `yaml:"amount"`
	Unit   string  `yaml:"unit"`
}

func readIngredientNames(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("csv %s is empty", path)
		}
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	column := -1
	for idx, name := range header {
		if strings.EqualFold(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")), "name") {
			column = idx
			break
		}
	}
	if column < 0 {
		return nil, fmt.Errorf("csv %s has no Name column", path)
	}

	var names []string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		if column >= len(record) {
			continue
		}
		name := strings.TrimSpace(record[column])
		if name == "" {
			continue
		}
		names = append(names, name)
	}

	return names, nil
}

func readRecipeCatalog(path string) (recipeCatalogFile, error) {
	var catalog recipeCatalogFile

	data, err := os.ReadFile(path)
	if err != nil {
		return catalog, fmt.Errorf("read yaml: %w", err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&catalog); err != nil {
		if errors.Is(err, io.EOF) {
			return catalog, nil
		}
		return catalog, fmt.Errorf("parse yaml %s: %w", path, err)
	}

	return catalog, nil
}

// resolveInstructions returns the inline instructions, or the contents of
// instructions_file resolved against the directory of catalogPath.
func (e recipeEntry) resolveInstructions(catalogPath string) (string, error) {
	if e.InstructionsFile == "" {
		return e.Instructions, nil
	}
	if e.Instructions != "" {
		return "", fmt.Errorf("instructions and instructions_file are mutually exclusive")
	}

	path := e.InstructionsFile
	if !filepath.IsAbs(path) {
		path = filepath.Join(filepath.Dir(catalogPath), path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read instructions file: %w", err)
	}

	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		text, err := extractTextFromPDF(data)
		if err != nil {
			return "", fmt.Errorf("extract pdf text from %s: %w", path, err)
		}
		return strings.TrimSpace(text), nil
	}

	return strings.TrimSpace(string(data)), nil
}

func extractTextFromPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	var builder strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", err
		}
		builder.WriteString(text)
		builder.WriteString("\n")
	}
	return builder.String(), nil
}
