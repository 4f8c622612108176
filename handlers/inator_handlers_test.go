package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fadhlanhapp/random-inator/handlers"
	"github.com/fadhlanhapp/random-inator/models"
	"github.com/fadhlanhapp/random-inator/routes"
	"github.com/fadhlanhapp/random-inator/services"
	"github.com/fadhlanhapp/random-inator/utils"
)

// firstPicker always picks the first entry
type firstPicker struct{}

func (firstPicker) Intn(int) int { return 0 }

func setupRouter(categories map[string][]string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	catalog := models.NewCatalog(categories)

	router := gin.New()
	router.Use(handlers.RequestID())
	routes.SetupRoutes(router, &routes.Handlers{
		Inator: handlers.NewInatorHandler(services.NewSelectorService(catalog, firstPicker{})),
		Export: handlers.NewExportHandler(services.NewExportService(catalog)),
	})
	return router
}

func defaultRouter() *gin.Engine {
	return setupRouter(map[string][]string{
		models.CategorySeason1: {"De Love-inator", "Shrink-inator"},
		models.CategorySeason2: {"Smell (good)-inator"},
		models.CategorySeason3: {},
		models.CategoryPure:    {"What's-this?-inator"},
	})
}

func perform(router *gin.Engine, target string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	router.ServeHTTP(recorder, req)
	return recorder
}

func decode(t *testing.T, recorder *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

func TestRandomInator_Endpoints(t *testing.T) {
	router := defaultRouter()

	tests := []struct {
		name     string
		target   string
		expected string
	}{
		{"all categories", "/random-inator", "What's-this?-inator"},
		{"all categories formatted", "/random-inator?format=snake&strip_special=true", "Whats_this_inator"},
		{"pure", "/random-inator/pure?format=upper", "WHAT'S-THIS?-INATOR"},
		{"pure stripped", "/random-inator/pure?strip_special=true", "Whats-this-inator"},
		{"category", "/random-inator/season_1?format=camel", "DeLoveInator"},
		{"category kebab", "/random-inator/season_1?format=kebab", "De-Love-inator"},
		{"category default", "/random-inator/season_2", "Smell (good)-inator"},
		{"category explicit default", "/random-inator/season_2?format=default&strip_special=false", "Smell (good)-inator"},
		{"category stripped camel", "/random-inator/season_2?format=camel&strip_special=true", "SmellGoodInator"},
		{"category no spaces", "/random-inator/season_1?format=no_spaces", "DeLoveinator"},
		{"category lower", "/random-inator/season_1?format=lower", "de love-inator"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := perform(router, tt.target)

			assert.Equal(t, http.StatusOK, recorder.Code)
			assert.Equal(t, map[string]interface{}{"inator": tt.expected}, decode(t, recorder))
		})
	}
}

func TestRandomInatorByCategory_EmptyCategory(t *testing.T) {
	recorder := perform(defaultRouter(), "/random-inator/season_3")

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	body := decode(t, recorder)
	assert.Equal(t, "No inators available for season_3", body["error"])
	assert.NotContains(t, body, "valid_options")
	assert.NotContains(t, body, "inator")
}

func TestRandomInatorByCategory_UnknownCategory(t *testing.T) {
	recorder := perform(defaultRouter(), "/random-inator/season_42")

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	body := decode(t, recorder)
	assert.Equal(t, "Unknown season: season_42", body["error"])
	assert.Equal(t, []interface{}{"pure", "season_1", "season_2", "season_3"}, body["valid_options"])
}

func TestRandomInatorByCategory_PaddedKeyIsUnknown(t *testing.T) {
	recorder := perform(defaultRouter(), "/random-inator/%20season_1")

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	body := decode(t, recorder)
	assert.Equal(t, "Unknown season:  season_1", body["error"])
	assert.Len(t, body["valid_options"], 4)
}

func TestRandomPureInator_Empty(t *testing.T) {
	router := setupRouter(map[string][]string{models.CategorySeason1: {"Shrink-inator"}})

	recorder := perform(router, "/random-inator/pure")

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, utils.ErrNoPureInators, decode(t, recorder)["error"])
}

func TestRandomInator_EmptyCatalog(t *testing.T) {
	router := setupRouter(map[string][]string{models.CategoryPure: {}})

	recorder := perform(router, "/random-inator")

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, utils.ErrNoInators, decode(t, recorder)["error"])
}

func TestRandomInator_UnknownFormatRejected(t *testing.T) {
	for _, target := range []string{"/random-inator?format=shouty", "/random-inator/pure?format=SNAKE", "/random-inator/season_1?format=title"} {
		t.Run(target, func(t *testing.T) {
			recorder := perform(defaultRouter(), target)

			assert.Equal(t, http.StatusBadRequest, recorder.Code)
			body := decode(t, recorder)
			assert.Contains(t, body["error"], "Unknown format: ")
			assert.Len(t, body["valid_options"], len(models.FormatOptions))
		})
	}
}

func TestRandomInator_InvalidStripSpecial(t *testing.T) {
	recorder := perform(defaultRouter(), "/random-inator?format=snake&strip_special=maybe")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, utils.ErrInvalidStripSpecial, decode(t, recorder)["error"])
}

func TestListCategories(t *testing.T) {
	recorder := perform(defaultRouter(), "/categories")

	require.Equal(t, http.StatusOK, recorder.Code)
	var response models.CategoriesResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, 4, response.Total)
	assert.Len(t, response.Categories, 4)
	assert.Equal(t, models.CategorySummary{Key: "season_1", Count: 2}, response.Categories[1])
}

func TestHealth(t *testing.T) {
	recorder := perform(defaultRouter(), "/health")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, map[string]interface{}{"status": "ok", "inators": float64(4)}, decode(t, recorder))
}

func TestRequestID(t *testing.T) {
	router := defaultRouter()

	recorder := perform(router, "/health")
	assert.Len(t, recorder.Header().Get(utils.RequestIDHeader), 36)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(utils.RequestIDHeader, "doof-123")
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	assert.Equal(t, "doof-123", recorder.Header().Get(utils.RequestIDHeader))
}
