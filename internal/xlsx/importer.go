// Package xlsx imports vocabulary lists from Excel or CSV files into the
// catalog directory layout.
package xlsx

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"vocadrill/internal/catalog"
)

// ImportConfig defines the import configuration. Columns are 0-based
// indexes into each row: term, translation, definition, category, level.
type ImportConfig struct {
	FilePath          string
	Language          string
	SheetName         string
	TermColumn        int
	TranslationColumn int
	DefinitionColumn  int
	CategoryColumn    int
	LevelColumn       int
	StartRow          int // 1-based; rows before it are skipped
}

// DefaultImportConfig returns the default import configuration: the usual
// five-column sheet with a header row.
func DefaultImportConfig() ImportConfig {
	return ImportConfig{
		Language:          "en",
		SheetName:         "Sheet1",
		TermColumn:        0,
		TranslationColumn: 1,
		DefinitionColumn:  2,
		CategoryColumn:    3,
		LevelColumn:       4,
		StartRow:          2,
	}
}

// ImportResult holds the result of an import operation.
type ImportResult struct {
	TotalProcessed int
	Imported       int
	Skipped        int
	FilesWritten   int
	Errors         []string
}

// ImportWords reads the source file and writes one catalog YAML file per
// (category, level) partition under catalogDir. Rows without a term are
// skipped and reported, matching the catalog loader's rejection rule.
func ImportWords(cfg ImportConfig, catalogDir string) (*ImportResult, error) {
	var rows [][]string
	var err error

	if strings.ToLower(filepath.Ext(cfg.FilePath)) == ".csv" {
		rows, err = readCSVRows(cfg.FilePath)
	} else {
		rows, err = readExcelRows(cfg.FilePath, cfg.SheetName)
	}
	if err != nil {
		return nil, err
	}

	result := &ImportResult{}
	partitions := make(map[string][]catalog.Item)

	for i, row := range rows {
		if i < cfg.StartRow-1 {
			continue
		}
		result.TotalProcessed++

		item := catalog.Item{
			Term:        cell(row, cfg.TermColumn),
			Translation: cell(row, cfg.TranslationColumn),
			Definition:  cell(row, cfg.DefinitionColumn),
			Category:    cell(row, cfg.CategoryColumn),
			Level:       cell(row, cfg.LevelColumn),
			Language:    cfg.Language,
		}
		if item.Term == "" || item.Translation == "" {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: missing term or translation", i+1))
			continue
		}
		if item.Category == "" {
			item.Category = catalog.DefaultCategory
		}
		if item.Level == "" {
			item.Level = "A1"
		}

		key := filepath.Join(item.Category, item.Level)
		partitions[key] = append(partitions[key], item)
		result.Imported++
	}

	for key, items := range partitions {
		category, level := filepath.Dir(key), filepath.Base(key)
		dir := filepath.Join(catalogDir, "languages", cfg.Language, "categories", category)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create catalog directory %s: %w", dir, err)
		}
		if err := writeItemsFile(filepath.Join(dir, level+".yml"), items); err != nil {
			return nil, err
		}
		result.FilesWritten++
	}

	return result, nil
}

func cell(row []string, index int) string {
	if index < 0 || index >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[index])
}

func readExcelRows(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open Excel file %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	return rows, nil
}

func readCSVRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open CSV file %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read CSV row: %w", err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func writeItemsFile(path string, items []catalog.Item) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("os.Create(%s)> %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	if err := yaml.NewEncoder(file).Encode(items); err != nil {
		return fmt.Errorf("encode catalog items: %w", err)
	}
	return nil
}
