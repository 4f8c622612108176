// models/models.go
package models

import "sort"

// FormatOption selects the case/separator transformation applied to a name
type FormatOption string

const (
	FormatDefault  FormatOption = "default"
	FormatSnake    FormatOption = "snake"
	FormatCamel    FormatOption = "camel"
	FormatKebab    FormatOption = "kebab"
	FormatNoSpaces FormatOption = "no_spaces"
	FormatLower    FormatOption = "lower"
	FormatUpper    FormatOption = "upper"
)

// FormatOptions lists every recognized format in declaration order
var FormatOptions = []FormatOption{
	FormatDefault,
	FormatSnake,
	FormatCamel,
	FormatKebab,
	FormatNoSpaces,
	FormatLower,
	FormatUpper,
}

// ParseFormatOption converts a query value into a FormatOption.
// An empty value is the default format.
func ParseFormatOption(value string) (FormatOption, bool) {
	if value == "" {
		return FormatDefault, true
	}
	for _, option := range FormatOptions {
		if string(option) == value {
			return option, true
		}
	}
	return FormatDefault, false
}

// FormatOptionNames returns the string values of all formats
func FormatOptionNames() []string {
	names := make([]string, len(FormatOptions))
	for i, option := range FormatOptions {
		names[i] = string(option)
	}
	return names
}

// FormatRequest combines a format option with the strip-special flag
type FormatRequest struct {
	Format       FormatOption
	StripSpecial bool
}

// FormatQuery is bound from the query string of the random-inator endpoints
type FormatQuery struct {
	Format       string `form:"format" binding:"omitempty,oneof=default snake camel kebab no_spaces lower upper"`
	StripSpecial bool   `form:"strip_special"`
}

// ToFormatRequest converts the bound query into a FormatRequest
func (q FormatQuery) ToFormatRequest() FormatRequest {
	format, _ := ParseFormatOption(q.Format)
	return FormatRequest{
		Format:       format,
		StripSpecial: q.StripSpecial,
	}
}

// Category keys of the reference data
const (
	CategorySeason1           = "season_1"
	CategorySeason2           = "season_2"
	CategorySeason3           = "season_3"
	CategorySeason4           = "season_4"
	CategorySeason5           = "season_5"
	CategoryOutsideMainSeries = "outside_main_series"
	CategoryPure              = "pure"
)

// CatalogFile is the on-disk shape of the names list
type CatalogFile struct {
	Season1           []string `json:"season_1"`
	Season2           []string `json:"season_2"`
	Season3           []string `json:"season_3"`
	Season4           []string `json:"season_4"`
	Season5           []string `json:"season_5"`
	OutsideMainSeries []string `json:"outside_main_series"`
	PureInators       []string `json:"pure_inators"`
}

// Categories maps the file fields onto their category keys
func (f *CatalogFile) Categories() map[string][]string {
	return map[string][]string{
		CategorySeason1:           f.Season1,
		CategorySeason2:           f.Season2,
		CategorySeason3:           f.Season3,
		CategorySeason4:           f.Season4,
		CategorySeason5:           f.Season5,
		CategoryOutsideMainSeries: f.OutsideMainSeries,
		CategoryPure:              f.PureInators,
	}
}

// Catalog is the read-only collection of inator names grouped by category.
// It is built once at startup and never mutated.
type Catalog struct {
	categories map[string][]string
	keys       []string
	all        []string
}

// NewCatalog copies the given categories into an immutable Catalog
func NewCatalog(categories map[string][]string) *Catalog {
	catalog := &Catalog{
		categories: make(map[string][]string, len(categories)),
		keys:       make([]string, 0, len(categories)),
	}
	for key, names := range categories {
		catalog.categories[key] = append([]string(nil), names...)
		catalog.keys = append(catalog.keys, key)
	}
	sort.Strings(catalog.keys)

	for _, key := range catalog.keys {
		catalog.all = append(catalog.all, catalog.categories[key]...)
	}
	return catalog
}

// Categories returns the category keys in sorted order
func (c *Catalog) Categories() []string {
	return append([]string(nil), c.keys...)
}

// Names returns the names of a category and whether the category exists
func (c *Catalog) Names(category string) ([]string, bool) {
	names, ok := c.categories[category]
	if !ok {
		return nil, false
	}
	return append([]string(nil), names...), true
}

// All returns every name across all categories, grouped by sorted category key
func (c *Catalog) All() []string {
	return append([]string(nil), c.all...)
}

// Total returns the number of names across all categories
func (c *Catalog) Total() int {
	return len(c.all)
}

// RandomInatorResponse is the success body of the random-inator endpoints
type RandomInatorResponse struct {
	Inator string `json:"inator"`
}

// CategorySummary describes a single category
type CategorySummary struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// CategoriesResponse lists the available categories
type CategoriesResponse struct {
	Categories []CategorySummary `json:"categories"`
	Total      int               `json:"total"`
}
