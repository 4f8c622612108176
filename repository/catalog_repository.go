// repository/catalog_repository.go
package repository

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/fadhlanhapp/random-inator/models"
	"github.com/fadhlanhapp/random-inator/utils"
)

// requiredFields are the lists every names file must define
var requiredFields = []string{
	"season_1",
	"season_2",
	"season_3",
	"season_4",
	"season_5",
	"outside_main_series",
	"pure_inators",
}

// CatalogRepository loads the inator catalog from a JSON names file
type CatalogRepository struct {
	Path string
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(path string) *CatalogRepository {
	return &CatalogRepository{
		Path: path,
	}
}

// LoadCatalog reads and validates the names file
func (r *CatalogRepository) LoadCatalog() (*models.Catalog, error) {
	if err := utils.ValidateRequired(r.Path, "inators file path"); err != nil {
		return nil, err
	}

	content, err := os.ReadFile(r.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %v", r.Path, err)
	}

	file, err := ParseCatalogFile(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s as JSON: %v", r.Path, err)
	}

	catalog := models.NewCatalog(file.Categories())
	log.Printf("Loaded %d inators across %d categories", catalog.Total(), len(catalog.Categories()))
	return catalog, nil
}

// ParseCatalogFile decodes a names file, rejecting unknown, missing and null fields
func ParseCatalogFile(content []byte) (*models.CatalogFile, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, err
	}
	for _, field := range requiredFields {
		value, ok := raw[field]
		if !ok {
			return nil, fmt.Errorf("missing field %q", field)
		}
		if bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
			return nil, fmt.Errorf("field %q must be a list", field)
		}
	}

	decoder := json.NewDecoder(bytes.NewReader(content))
	decoder.DisallowUnknownFields()

	var file models.CatalogFile
	if err := decoder.Decode(&file); err != nil {
		return nil, err
	}
	return &file, nil
}
