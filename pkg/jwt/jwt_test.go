package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/tu-usuario/pedidos-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "pedidos-api-test"
)

func TestGenerateAndParse_TokenDeUsuario(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testIssuer, 7, "ana@example.com", "Ana Gómez", "admin", 4)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)

	key, err := claims.SubjectKey()
	require.NoError(t, err)
	assert.Equal(t, int64(7), key)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, "Ana Gómez", claims.Name)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, testIssuer, claims.Issuer)
	assert.NotEmpty(t, claims.ID, "cada token lleva un jti propio")
}

func TestGenerateAndParse_TokenDeClienteSinRol(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testIssuer, 3, "cliente@example.com", "Cliente", "", 4)
	require.NoError(t, err)

	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Empty(t, claims.Role)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testIssuer, 7, "ana@example.com", "Ana", "admin", -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testIssuer, 7, "ana@example.com", "Ana", "admin", 4)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", testIssuer, 7, "ana@example.com", "Ana", "admin", 4)
	assert.Error(t, err)
}
