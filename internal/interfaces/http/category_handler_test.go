package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/pedidos-api/internal/application/dto"
	"github.com/tu-usuario/pedidos-api/internal/application/usecase"
	"github.com/tu-usuario/pedidos-api/internal/domain"
	"github.com/tu-usuario/pedidos-api/internal/domain/entity"
	apphttp "github.com/tu-usuario/pedidos-api/internal/interfaces/http"
)

// stubCategoryRepo repositorio en memoria con la misma semántica que el store
// real: versión inicial 0, incremento en cada escritura efectiva y unicidad
// de nombre.
type stubCategoryRepo struct {
	seq   int64
	byKey map[int64]*entity.Category
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{byKey: make(map[int64]*entity.Category)}
}

func (r *stubCategoryRepo) clone(c *entity.Category) *entity.Category {
	cp := *c
	return &cp
}

func (r *stubCategoryRepo) Insert(_ context.Context, c *entity.Category) (*entity.Category, error) {
	for _, existing := range r.byKey {
		if existing.Name == c.Name {
			return nil, &domain.RuleViolation{Field: "name", Message: "Category name is already in use."}
		}
	}
	r.seq++
	stored := r.clone(c)
	stored.Key = r.seq
	stored.CreatedAt = time.Now()
	stored.RowVersion = 0
	r.byKey[stored.Key] = stored
	return r.clone(stored), nil
}

func (r *stubCategoryRepo) GetByKey(_ context.Context, key int64) (*entity.Category, error) {
	c, ok := r.byKey[key]
	if !ok {
		return nil, nil
	}
	return r.clone(c), nil
}

func (r *stubCategoryRepo) GetByName(_ context.Context, name string) (*entity.Category, error) {
	for _, c := range r.byKey {
		if c.Name == name {
			return r.clone(c), nil
		}
	}
	return nil, nil
}

func (r *stubCategoryRepo) ListAll(_ context.Context) ([]*entity.Category, error) {
	list := make([]*entity.Category, 0, len(r.byKey))
	for key := int64(1); key <= r.seq; key++ {
		if c, ok := r.byKey[key]; ok {
			list = append(list, r.clone(c))
		}
	}
	return list, nil
}

func (r *stubCategoryRepo) UpdateIfVersionMatches(_ context.Context, c *entity.Category) (*entity.Category, error) {
	stored, ok := r.byKey[c.Key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if stored.RowVersion != c.RowVersion {
		return nil, domain.ErrVersionConflict
	}
	now := time.Now()
	updated := r.clone(c)
	updated.CreatedAt = stored.CreatedAt
	updated.CreatedBy = stored.CreatedBy
	updated.ModifiedAt = &now
	updated.RowVersion = stored.RowVersion + 1
	r.byKey[c.Key] = updated
	return r.clone(updated), nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, key int64) error {
	if _, ok := r.byKey[key]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byKey, key)
	return nil
}

func buildCategoryApp() *fiber.App {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CategoryUC: usecase.NewCategoryUseCase(newStubCategoryRepo()),
		JWTSecret:  testJWTSecret,
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}, authHeader string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeMessage(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body dto.MessageResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.Message
}

func TestCategoryEndpoints_SinToken(t *testing.T) {
	app := buildCategoryApp()
	resp := doJSON(t, app, http.MethodGet, "/api/category/all", nil, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCategoryEndpoints_EscenarioCompleto(t *testing.T) {
	app := buildCategoryApp()
	auth := tokenFor(t, 1, "admin")

	// Lista vacía: la API histórica responde 404.
	resp := doJSON(t, app, http.MethodGet, "/api/category/all", nil, auth)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Categories not found.", decodeMessage(t, resp))
	resp.Body.Close()

	// Crear "Tech".
	resp = doJSON(t, app, http.MethodPost, "/api/category/", dto.CategoryCreateRequest{Name: "Tech"}, auth)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created dto.CategoryResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()
	assert.Equal(t, int64(1), created.Key)
	assert.Equal(t, int64(0), created.RowVersion)

	// Duplicado → 400 con el mensaje de la regla.
	resp = doJSON(t, app, http.MethodPost, "/api/category/", dto.CategoryCreateRequest{Name: "Tech"}, auth)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Category name is already in use.", decodeMessage(t, resp))
	resp.Body.Close()

	// Key del body distinta a la del path → 400.
	resp = doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/category/%d", created.Key),
		dto.CategoryUpdateRequest{Key: 99, Name: "Hardware", RowVersion: 0}, auth)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Category key mismatch.", decodeMessage(t, resp))
	resp.Body.Close()

	// Actualización con la versión leída → 204.
	resp = doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/category/%d", created.Key),
		dto.CategoryUpdateRequest{Key: created.Key, Name: "Hardware", RowVersion: 0}, auth)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	// Reintento con la versión obsoleta → 409.
	resp = doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/category/%d", created.Key),
		dto.CategoryUpdateRequest{Key: created.Key, Name: "Software", RowVersion: 0}, auth)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "The category was modified by another user. Please reload and try again.", decodeMessage(t, resp))
	resp.Body.Close()

	// El GET refleja el cambio y la versión avanzada.
	resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/category/%d", created.Key), nil, auth)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var current dto.CategoryResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&current))
	resp.Body.Close()
	assert.Equal(t, "Hardware", current.Name)
	assert.Equal(t, int64(1), current.RowVersion)

	// Búsqueda por nombre.
	resp = doJSON(t, app, http.MethodGet, "/api/category/name/Hardware", nil, auth)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Delete → 204; GET posterior → 404.
	resp = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/category/%d", created.Key), nil, auth)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/category/%d", created.Key), nil, auth)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, fmt.Sprintf("Category with key %d not found.", created.Key), decodeMessage(t, resp))
	resp.Body.Close()
}

func TestCategoryEndpoints_ValidacionDeBody(t *testing.T) {
	app := buildCategoryApp()
	auth := tokenFor(t, 1, "admin")

	resp := doJSON(t, app, http.MethodPost, "/api/category/", dto.CategoryCreateRequest{Name: ""}, auth)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCategoryEndpoints_DeleteInexistente(t *testing.T) {
	app := buildCategoryApp()
	auth := tokenFor(t, 1, "admin")

	resp := doJSON(t, app, http.MethodDelete, "/api/category/42", nil, auth)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Category with key 42 not found.", decodeMessage(t, resp))
}
