package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/tu-usuario/pedidos-api/internal/interfaces/http"
	pkgjwt "github.com/tu-usuario/pedidos-api/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "pedidos-api-test"
	testExpHours  = 4
)

// buildProtectedApp construye una app Fiber mínima con AuthMiddleware y un
// handler que expone los locals extraídos del token.
func buildProtectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"subject_key": apphttp.GetSubjectKey(c),
			"role":        apphttp.GetRole(c),
		})
	})
	return app
}

func tokenFor(t *testing.T, key int64, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testIssuer, key, "ana@example.com", "Ana Gómez", role, testExpHours)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

func doProtectedRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestAuthMiddleware_TokenValidoExtraeClaims(t *testing.T) {
	app := buildProtectedApp()
	resp := doProtectedRequest(t, app, tokenFor(t, 7, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, float64(7), body["subject_key"])
	assert.Equal(t, "admin", body["role"])
}

func TestAuthMiddleware_TokenDeClienteSinRol(t *testing.T) {
	app := buildProtectedApp()
	resp := doProtectedRequest(t, app, tokenFor(t, 3, ""))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "", body["role"], "los tokens de cliente no llevan rol")
}

func TestAuthMiddleware_SinHeader(t *testing.T) {
	app := buildProtectedApp()
	resp := doProtectedRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	app := buildProtectedApp()
	resp := doProtectedRequest(t, app, "Basic abc123")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenMalformado(t *testing.T) {
	app := buildProtectedApp()
	resp := doProtectedRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_SecretDistinto(t *testing.T) {
	app := buildProtectedApp()
	tok, err := pkgjwt.Generate("otro-secret", testIssuer, 7, "ana@example.com", "Ana", "admin", testExpHours)
	require.NoError(t, err)

	resp := doProtectedRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
