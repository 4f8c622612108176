package services

import (
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/fadhlanhapp/random-inator/models"
	"github.com/fadhlanhapp/random-inator/utils"
)

// Picker returns a uniformly distributed index in [0, n)
type Picker interface {
	Intn(n int) int
}

// RandPicker is a seedable Picker safe for concurrent use
type RandPicker struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandPicker creates a picker seeded with seed, or with the current time when seed is 0
func NewRandPicker(seed int64) *RandPicker {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandPicker{rnd: rand.New(rand.NewSource(seed))}
}

// Intn returns a random index in [0, n)
func (p *RandPicker) Intn(n int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rnd.Intn(n)
}

// SelectorService picks random inators from the catalog
type SelectorService struct {
	catalog *models.Catalog
	picker  Picker
}

// NewSelectorService creates a new selector service
func NewSelectorService(catalog *models.Catalog, picker Picker) *SelectorService {
	return &SelectorService{
		catalog: catalog,
		picker:  picker,
	}
}

// PickAny picks a random inator across all categories
func (s *SelectorService) PickAny(request models.FormatRequest) (string, error) {
	return s.pick(s.catalog.All(), request, utils.NewNotFoundError(utils.ErrNoInators))
}

// PickPure picks a random inator from the pure category
func (s *SelectorService) PickPure(request models.FormatRequest) (string, error) {
	names, _ := s.catalog.Names(models.CategoryPure)
	return s.pick(names, request, utils.NewNotFoundError(utils.ErrNoPureInators))
}

// PickFromCategory picks a random inator from the named category
func (s *SelectorService) PickFromCategory(category string, request models.FormatRequest) (string, error) {
	names, ok := s.catalog.Names(category)
	if !ok {
		return "", utils.NewUnknownOptionError(http.StatusNotFound, utils.KindSeason, category, s.catalog.Categories())
	}
	return s.pick(names, request, utils.NewNotFoundError(fmt.Sprintf(utils.ErrNoCategoryInatorsFn, category)))
}

// Categories summarizes the catalog categories in sorted order
func (s *SelectorService) Categories() *models.CategoriesResponse {
	keys := s.catalog.Categories()
	summaries := make([]models.CategorySummary, len(keys))
	for i, key := range keys {
		names, _ := s.catalog.Names(key)
		summaries[i] = models.CategorySummary{Key: key, Count: len(names)}
	}
	return &models.CategoriesResponse{
		Categories: summaries,
		Total:      s.catalog.Total(),
	}
}

// Total returns the number of inators in the catalog
func (s *SelectorService) Total() int {
	return s.catalog.Total()
}

func (s *SelectorService) pick(names []string, request models.FormatRequest, emptyErr error) (string, error) {
	if len(names) == 0 {
		return "", emptyErr
	}
	name := names[s.picker.Intn(len(names))]
	return ApplyFormat(name, request), nil
}
