package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/toyshop/internal/domain"
	"github.com/kahvecikaan/toyshop/internal/events"
	"github.com/kahvecikaan/toyshop/internal/images"
	"github.com/kahvecikaan/toyshop/internal/repository"
	"github.com/kahvecikaan/toyshop/internal/service"
	websocketTransport "github.com/kahvecikaan/toyshop/internal/transport/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type toyEnvelope struct {
	Message string     `json:"message"`
	Data    domain.Toy `json:"data"`
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := hclog.NewNullLogger()
	seedTime := time.Now().UTC().Add(-time.Hour)
	toys := repository.NewMemoryToyRepository(repository.DemoToys(seedTime)...)
	categories := repository.NewMemoryCategoryRepository(repository.DemoCategories(seedTime)...)
	bus := events.NewEventBus[any]()

	store, err := images.NewLocal(t.TempDir(), 1<<16)
	require.NoError(t, err)

	ts := service.NewToyService(toys, categories, bus, logger)
	cs := service.NewCategoryService(categories, toys, bus, logger)

	return NewRouter(
		NewToyHandler(ts, logger),
		NewCategoryHandler(cs, logger),
		NewSystemHandler(nil, logger),
		NewImageHandler(store, ts, logger),
		domain.NewValidation(),
		logger,
		websocketTransport.NewHandler(logger, bus),
		DefaultCORSConfig(),
	)
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestCreateThenGetBySlug(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodPost, "/toys", `{"sku":"TOY-100","name":"Super Robot","categoryId":1,"price":2500}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	created := decode[toyEnvelope](t, rec)
	assert.Equal(t, "Added new toy data", created.Message)
	assert.Equal(t, "super-robot", created.Data.Slug)
	assert.NotEmpty(t, created.Data.ID)
	assert.Nil(t, created.Data.UpdatedAt)

	rec = do(t, h, http.MethodGet, "/toys/super-robot", "")
	require.Equal(t, http.StatusOK, rec.Code)

	got := decode[domain.Toy](t, rec)
	assert.Equal(t, created.Data.ID, got.ID)
	require.NotNil(t, got.Category)
	assert.Equal(t, "action-figure", got.Category.Slug)
}

func TestGetToyBySlugNotFound(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodGet, "/toys/no-such-toy", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, CodeToyNotFound, decode[ErrorResponse](t, rec).Code)
}

func TestListToys(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodGet, "/toys", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Len(t, decode[[]domain.Toy](t, rec), 3)
}

func TestReplaceUpserts(t *testing.T) {
	h := newTestRouter(t)
	body := `{"sku":"TOY-200","name":"Wind Up Duck","categoryId":3}`

	rec := do(t, h, http.MethodPut, "/toys/duck-1", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	first := decode[toyEnvelope](t, rec)
	assert.Equal(t, "Toy not found. Created new toy.", first.Message)
	assert.Equal(t, "duck-1", first.Data.ID)
	assert.Nil(t, first.Data.UpdatedAt)

	rec = do(t, h, http.MethodPut, "/toys/duck-1", `{"sku":"TOY-201","name":"Wind Up Goose","categoryId":3}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	second := decode[toyEnvelope](t, rec)
	assert.Equal(t, "Toy data replaced", second.Message)
	assert.Equal(t, "duck-1", second.Data.ID)
	assert.Equal(t, "wind-up-goose", second.Data.Slug)
	assert.True(t, first.Data.CreatedAt.Equal(second.Data.CreatedAt))
	require.NotNil(t, second.Data.UpdatedAt)
}

func TestPatchChangesOnlyGivenFields(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodPost, "/toys", `{"sku":"TOY-300","name":"Kite","categoryId":2,"brand":"Skyline"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	before := decode[toyEnvelope](t, rec).Data

	rec = do(t, h, http.MethodPatch, "/toys/"+before.ID, `{"price":999}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	after := decode[toyEnvelope](t, rec)
	assert.Equal(t, "Toy data updated", after.Message)

	require.NotNil(t, after.Data.Price)
	assert.EqualValues(t, 999, *after.Data.Price)
	assert.Equal(t, before.Name, after.Data.Name)
	assert.Equal(t, before.SKU, after.Data.SKU)
	assert.Equal(t, before.Slug, after.Data.Slug)
	assert.Equal(t, before.Brand, after.Data.Brand)
	assert.True(t, before.CreatedAt.Equal(after.Data.CreatedAt))
	require.NotNil(t, after.Data.UpdatedAt)

	rec = do(t, h, http.MethodPatch, "/toys/"+before.ID, `{"price":1000}`)
	require.Equal(t, http.StatusOK, rec.Code)
	again := decode[toyEnvelope](t, rec)
	require.NotNil(t, again.Data.UpdatedAt)
	assert.True(t, again.Data.UpdatedAt.After(*after.Data.UpdatedAt))
}

func TestPatchUnknownToy(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodPatch, "/toys/missing", `{"price":999}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, CodeToyNotFound, decode[ErrorResponse](t, rec).Code)
}

func TestDeleteToy(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodDelete, "/toys/01929b9c-6f43-7cc2-9a53-6d2b0e2f0f03", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Toy deleted successfully", decode[MessageResponse](t, rec).Message)

	rec = do(t, h, http.MethodGet, "/toys/sleepy-bear", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Deleting an unknown ID still succeeds
	rec = do(t, h, http.MethodDelete, "/toys/never-existed", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSearchToys(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodGet, "/toys/search", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, CodeInvalidQuery, decode[ErrorResponse](t, rec).Code)

	rec = do(t, h, http.MethodGet, "/toys/search?q=zzz", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, CodeSearchNotFound, decode[ErrorResponse](t, rec).Code)

	rec = do(t, h, http.MethodPost, "/toys", `{"sku":"TOY-100","name":"Super Robot","categoryId":1}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, h, http.MethodGet, "/toys/search?q=ROBOT", "")
	require.Equal(t, http.StatusOK, rec.Code)
	found := decode[[]domain.Toy](t, rec)
	require.Len(t, found, 1)
	assert.Equal(t, "Super Robot", found[0].Name)
}

func TestGetToysByCategory(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodGet, "/toys/category/2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	toys := decode[[]domain.Toy](t, rec)
	require.Len(t, toys, 1)
	assert.Equal(t, "castle-builder-set", toys[0].Slug)

	for _, target := range []string{"/toys/category/abc", "/toys/category/99"} {
		rec = do(t, h, http.MethodGet, target, "")
		require.Equal(t, http.StatusNotFound, rec.Code, target)
		assert.Equal(t, CodeToyNotFound, decode[ErrorResponse](t, rec).Code)
	}
}

func TestValidationFailures(t *testing.T) {
	h := newTestRouter(t)

	cases := []struct {
		name   string
		method string
		target string
		body   string
		field  string
	}{
		{"short sku", http.MethodPost, "/toys", `{"sku":"ab","name":"Super Robot","categoryId":1}`, "sku"},
		{"missing name", http.MethodPost, "/toys", `{"sku":"TOY-1","categoryId":1}`, "name"},
		{"cheap", http.MethodPost, "/toys", `{"sku":"TOY-1","name":"Super Robot","categoryId":1,"price":5}`, "price"},
		{"bad url", http.MethodPut, "/toys/x", `{"sku":"TOY-1","name":"Super Robot","categoryId":1,"imageUrl":"nope"}`, "imageUrl"},
		{"patch short name", http.MethodPatch, "/toys/x", `{"name":"ab"}`, "name"},
		{"category short name", http.MethodPost, "/categories", `{"name":"ab"}`, "name"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, h, tc.method, tc.target, tc.body)
			require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

			resp := decode[ErrorResponse](t, rec)
			assert.Equal(t, CodeValidationError, resp.Code)

			fields := make([]string, 0, len(resp.Errors))
			for _, e := range resp.Errors {
				fields = append(fields, e.Field)
			}
			assert.Contains(t, fields, tc.field)
		})
	}

	rec := do(t, h, http.MethodPost, "/toys", `{"sku":`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, CodeValidationError, decode[ErrorResponse](t, rec).Code)

	// Nothing reached the store
	rec = do(t, h, http.MethodGet, "/toys", "")
	assert.Len(t, decode[[]domain.Toy](t, rec), 3)
}

func TestCategories(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodPost, "/categories", `{"name":"Board Games"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	category := decode[domain.Category](t, rec)
	assert.Equal(t, "board-games", category.Slug)
	assert.NotZero(t, category.ID)

	rec = do(t, h, http.MethodPost, "/categories", `{"name":"Board Games"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, CodeCategoryExists, decode[ErrorResponse](t, rec).Code)

	rec = do(t, h, http.MethodGet, "/categories", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]domain.Category](t, rec), 4)

	rec = do(t, h, http.MethodGet, "/categories/plush", "")
	require.Equal(t, http.StatusOK, rec.Code)
	plush := decode[[]domain.Toy](t, rec)
	require.Len(t, plush, 1)
	assert.Equal(t, "sleepy-bear", plush[0].Slug)

	// Known but empty categories are reported like unknown ones
	for _, target := range []string{"/categories/board-games", "/categories/nope"} {
		rec = do(t, h, http.MethodGet, target, "")
		require.Equal(t, http.StatusNotFound, rec.Code, target)
		assert.Equal(t, CodeCategoryNotFound, decode[ErrorResponse](t, rec).Code)
	}
}

func TestSystemRoutes(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Toy Catalog API", decode[rootResponse](t, rec).Name)

	rec = do(t, h, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode[healthResponse](t, rec).Status)

	rec = do(t, h, http.MethodGet, "/openapi.yaml", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Toy Catalog API")

	rec = do(t, h, http.MethodGet, "/nowhere", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRequestIDIsEchoed(t *testing.T) {
	h := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/toys", nil)
	req.Header.Set("X-Request-ID", "req-42")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "req-42", rec.Header().Get("X-Request-ID"))
}

func TestCORSPreflight(t *testing.T) {
	h := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/toys", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "PATCH")
}

type panicking struct{}

func (panicking) ServeHTTP(http.ResponseWriter, *http.Request) { panic("boom") }

func TestRecoveryTurnsPanicsInto500(t *testing.T) {
	h := recovery(hclog.NewNullLogger().StandardLogger(nil))(panicking{})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
