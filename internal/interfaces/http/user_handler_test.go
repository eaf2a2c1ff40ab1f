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
	"golang.org/x/crypto/bcrypt"

	"github.com/kraya/platform-api/internal/application/usecase"
	"github.com/kraya/platform-api/internal/domain"
	"github.com/kraya/platform-api/internal/domain/entity"
	"github.com/kraya/platform-api/internal/domain/repository"
	apphttp "github.com/kraya/platform-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de usuario (mismo contrato que postgres:
// nil cuando no existe la fila, conflicto ante username/email repetidos)
// ──────────────────────────────────────────────────────────────────────────────

type memUserRepo struct {
	users  map[int64]*entity.User
	nextID int64
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[int64]*entity.User{}, nextID: 1}
}

func (r *memUserRepo) Create(user *entity.User) error {
	for _, u := range r.users {
		if u.Username == user.Username {
			return domain.ErrUsernameAlreadyExists
		}
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	user.ID = r.nextID
	r.nextID++
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(id int64) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) ExistsByUsername(username string) (bool, error) {
	u, _ := r.GetByUsername(username)
	return u != nil, nil
}

func (r *memUserRepo) ExistsByEmail(email string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *memUserRepo) Update(user *entity.User) error {
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *memUserRepo) UpdateLastLogin(id int64, at time.Time) error {
	if u, ok := r.users[id]; ok {
		u.LastLogin = &at
	}
	return nil
}

// List emula la semántica SQL de LIMIT/OFFSET (LIMIT 0 devuelve cero filas).
func (r *memUserRepo) List(limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for id := int64(1); id < r.nextID; id++ {
		if u, ok := r.users[id]; ok {
			cp := *u
			out = append(out, &cp)
		}
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit >= 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *memUserRepo) Delete(id int64) error {
	delete(r.users, id)
	return nil
}

type memRoleRepo struct {
	roles  map[int64]*entity.Role
	nextID int64
}

func newMemRoleRepo() *memRoleRepo {
	r := &memRoleRepo{roles: map[int64]*entity.Role{}, nextID: 1}
	for _, name := range entity.ValidRoleNames {
		_ = r.Create(&entity.Role{Name: name})
	}
	return r
}

func (r *memRoleRepo) Create(role *entity.Role) error {
	for _, existing := range r.roles {
		if existing.Name == role.Name {
			return domain.ErrDuplicate
		}
	}
	role.ID = r.nextID
	r.nextID++
	cp := *role
	r.roles[role.ID] = &cp
	return nil
}

func (r *memRoleRepo) GetByID(id int64) (*entity.Role, error) {
	role, ok := r.roles[id]
	if !ok {
		return nil, nil
	}
	cp := *role
	return &cp, nil
}

func (r *memRoleRepo) GetByName(name string) (*entity.Role, error) {
	for _, role := range r.roles {
		if role.Name == name {
			cp := *role
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memRoleRepo) List() ([]*entity.Role, error) {
	var out []*entity.Role
	for id := int64(1); id < r.nextID; id++ {
		if role, ok := r.roles[id]; ok {
			cp := *role
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memRoleRepo) Update(role *entity.Role) error {
	cp := *role
	r.roles[role.ID] = &cp
	return nil
}

func (r *memRoleRepo) Delete(id int64) error {
	delete(r.roles, id)
	return nil
}

// memTx pasa los mismos fakes a fn, sin semántica transaccional real.
type memTx struct {
	users *memUserRepo
	roles *memRoleRepo
}

func (tx *memTx) Run(_ context.Context, fn func(
	users repository.UserRepository,
	roles repository.RoleRepository,
	debts repository.DebtRepository,
	payments repository.PaymentRepository,
	transfers repository.DebtTransferRepository,
) error) error {
	return fn(tx.users, tx.roles, nil, nil, nil)
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

// buildUserApp monta el handler de usuarios sobre Fiber sin middlewares de
// auth: aquí se prueba el contrato HTTP del handler, no la autenticación.
func buildUserApp() *fiber.App {
	users := newMemUserRepo()
	roles := newMemRoleRepo()
	uc := usecase.NewUserUseCase(users, roles, &memTx{users: users, roles: roles}, bcrypt.MinCost)
	h := apphttp.NewUserHandler(uc)

	app := fiber.New()
	app.Post("/api/users/register", h.Register)
	app.Get("/api/users", h.List)
	app.Get("/api/users/:id", h.GetByID)
	app.Put("/api/users/:id", h.Update)
	app.Delete("/api/users/:id", h.Delete)
	return app
}

func registerBody(username string) map[string]any {
	return map[string]any{
		"username":  username,
		"password":  "secret123",
		"firstName": "Ana",
		"lastName":  "Lopez",
		"role":      entity.RoleDebtor,
		"email":     username + "@example.com",
	}
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeMap(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestUserHandler_RegistroYConsulta(t *testing.T) {
	app := buildUserApp()

	resp := doJSON(t, app, http.MethodPost, "/api/users/register", registerBody("ana"))
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "/api/users/1", resp.Header.Get(fiber.HeaderLocation))

	created := decodeMap(t, resp)
	assert.Equal(t, "User registered successfully", created["message"])
	assert.EqualValues(t, 1, created["userId"])

	// La consulta posterior devuelve el usuario sin hash de password.
	resp = doJSON(t, app, http.MethodGet, "/api/users/1", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	user := decodeMap(t, resp)
	assert.Equal(t, "ana", user["username"])
	assert.Equal(t, "ACTIVE", user["status"])
	assert.ElementsMatch(t, []any{entity.RoleDebtor}, user["roles"])
	assert.NotContains(t, user, "password")
	assert.NotContains(t, user, "passwordHash")
}

func TestUserHandler_UsernameDuplicadoRetorna409(t *testing.T) {
	app := buildUserApp()

	resp := doJSON(t, app, http.MethodPost, "/api/users/register", registerBody("ana"))
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	dup := registerBody("ana")
	dup["email"] = "otra@example.com"
	resp = doJSON(t, app, http.MethodPost, "/api/users/register", dup)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "Username already exists")
}

func TestUserHandler_RolInvalidoRetorna400(t *testing.T) {
	app := buildUserApp()

	body := registerBody("ana")
	body["role"] = "SUPERUSER"
	resp := doJSON(t, app, http.MethodPost, "/api/users/register", body)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "Invalid role")
}

func TestUserHandler_ValidacionRetorna400ConCampos(t *testing.T) {
	app := buildUserApp()

	body := registerBody("ab")
	body["username"] = "ab"
	body["email"] = "no-es-un-email"
	resp := doJSON(t, app, http.MethodPost, "/api/users/register", body)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "Username must be between 3 and 50 characters")
	assert.Contains(t, string(raw), "Email should be valid")
}

func TestUserHandler_NoExisteRetorna404ConID(t *testing.T) {
	app := buildUserApp()

	resp := doJSON(t, app, http.MethodGet, "/api/users/99", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "ID: 99")
}

func TestUserHandler_IDNoNumericoRetorna400(t *testing.T) {
	app := buildUserApp()

	resp := doJSON(t, app, http.MethodGet, "/api/users/abc", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUserHandler_EliminarLuegoConsultar404(t *testing.T) {
	app := buildUserApp()

	resp := doJSON(t, app, http.MethodPost, "/api/users/register", registerBody("ana"))
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, "/api/users/1", nil)
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/users/1", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUserHandler_ActualizarCambiaUsername(t *testing.T) {
	app := buildUserApp()

	resp := doJSON(t, app, http.MethodPost, "/api/users/register", registerBody("ana"))
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	update := map[string]any{
		"username":  "ana_maria",
		"email":     "ana@example.com",
		"firstName": "Ana",
		"lastName":  "Lopez",
	}
	resp = doJSON(t, app, http.MethodPut, "/api/users/1", update)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	updated := decodeMap(t, resp)
	assert.Equal(t, "User updated successfully", updated["message"])

	resp2 := doJSON(t, app, http.MethodGet, "/api/users/1", nil)
	defer resp2.Body.Close()
	user := decodeMap(t, resp2)
	assert.Equal(t, "ana_maria", user["username"])
}

func TestUserHandler_ListarPaginado(t *testing.T) {
	app := buildUserApp()

	for i := 1; i <= 3; i++ {
		resp := doJSON(t, app, http.MethodPost, "/api/users/register",
			registerBody(fmt.Sprintf("user%d", i)))
		resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp := doJSON(t, app, http.MethodGet, "/api/users?limit=10&offset=0", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	assert.Len(t, list, 3)
}

// Un limit no numérico cae en el default (20), no en LIMIT 0.
func TestUserHandler_LimitInvalidoUsaDefault(t *testing.T) {
	app := buildUserApp()

	for i := 1; i <= 3; i++ {
		resp := doJSON(t, app, http.MethodPost, "/api/users/register",
			registerBody(fmt.Sprintf("user%d", i)))
		resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp := doJSON(t, app, http.MethodGet, "/api/users?limit=abc&offset=-3", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	assert.Len(t, list, 3)
}
