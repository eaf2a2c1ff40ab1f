package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/kraya/platform-api/internal/interfaces/http"
	pkgjwt "github.com/kraya/platform-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = int64(1)
	testUsername  = "carlos"
	testIssuer    = "kraya-test"
	testExpMin    = 60
)

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y cargar locals
//   - RequireRole para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(allowedRoles ...string) *fiber.App {
	app := fiber.New(fiber.Config{
		// Silenciar errores internos en los tests
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	// Ruta protegida: JWT + RBAC
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":     true,
				"userId": apphttp.GetUserID(c),
				"roles":  apphttp.GetRoles(c),
			})
		},
	)
	return app
}

// tokenForRoles genera un JWT con los roles indicados.
func tokenForRoles(t *testing.T, roles ...string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testUsername, roles, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: el usuario tiene el rol requerido → debe pasar (HTTP 200).
func TestRequireRole_AdminAccedeRutaAdmin(t *testing.T) {
	app := buildTestApp("ADMIN")
	resp := doRequest(t, app, tokenForRoles(t, "ADMIN"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"ADMIN debe poder acceder a ruta restringida a ADMIN")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"], "la respuesta debe incluir ok:true")
	assert.Equal(t, float64(testUserID), body["userId"], "el userId del token debe llegar al handler")
}

// Caso 1b: el usuario tiene uno de los roles permitidos (multi-rol) → HTTP 200.
func TestRequireRole_DeudorConVariosRoles(t *testing.T) {
	app := buildTestApp("ADMIN", "DEBTOR")
	resp := doRequest(t, app, tokenForRoles(t, "DEBTOR", "CREDITOR"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"un usuario con DEBTOR debe acceder a ruta que permite ADMIN o DEBTOR")
}

// Caso 2: el usuario tiene un rol diferente al requerido → HTTP 403 Forbidden.
func TestRequireRole_CreditorBloqueadoEnRutaAdmin(t *testing.T) {
	app := buildTestApp("ADMIN")
	resp := doRequest(t, app, tokenForRoles(t, "CREDITOR"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"CREDITOR no debe poder acceder a ruta restringida a ADMIN")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN",
		"la respuesta de error debe incluir el código FORBIDDEN")
}

// Caso 3: los roles se comparan exactos (mayúsculas) → HTTP 403.
func TestRequireRole_RolEnMinusculasNoCuenta(t *testing.T) {
	app := buildTestApp("ADMIN")
	resp := doRequest(t, app, tokenForRoles(t, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"la comparación de roles es sensible a mayúsculas")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinHeaderRetorna401(t *testing.T) {
	app := buildTestApp("ADMIN")
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

func TestAuthMiddleware_FormatoSinBearerRetorna401(t *testing.T) {
	app := buildTestApp("ADMIN")
	resp := doRequest(t, app, "Token abc.def.ghi")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

func TestAuthMiddleware_TokenFirmadoConOtroSecretRetorna401(t *testing.T) {
	app := buildTestApp("ADMIN")
	tok, err := pkgjwt.Generate("otro-secret", testUserID, testUsername, []string{"ADMIN"}, testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenExpiradoRetorna401(t *testing.T) {
	app := buildTestApp("ADMIN")
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testUsername, []string{"ADMIN"}, testIssuer, -5)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}
