package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	appauth "github.com/jcamargo/tienda-api/internal/application/auth"
	"github.com/jcamargo/tienda-api/internal/application/usecase"
	"github.com/jcamargo/tienda-api/internal/domain"
	"github.com/jcamargo/tienda-api/internal/domain/entity"
	apphttp "github.com/jcamargo/tienda-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testAPIKey     = "test-api-key"
	testCookieName = "tienda.sid"
	testTTLMinutes = 60
)

// fakeCRUDRepo repositorio en memoria para recursos simples. key indica el
// campo con restricción de unicidad, igual que la constraint real sobre name.
type fakeCRUDRepo[T entity.Resource] struct {
	key   func(T) string
	items []T
}

func (r *fakeCRUDRepo[T]) List() ([]T, error) {
	out := make([]T, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *fakeCRUDRepo[T]) Create(item T) error {
	for _, it := range r.items {
		if r.key(it) == r.key(item) {
			return domain.ErrDuplicate
		}
	}
	// Más reciente primero, como el ORDER BY created_at DESC real.
	r.items = append([]T{item}, r.items...)
	return nil
}

func (r *fakeCRUDRepo[T]) GetByID(id string) (T, error) {
	var zero T
	if _, err := uuid.Parse(id); err != nil {
		return zero, domain.ErrInvalidID
	}
	for _, it := range r.items {
		if it.GetID() == id {
			return it, nil
		}
	}
	return zero, domain.ErrNotFound
}

func (r *fakeCRUDRepo[T]) Update(item T) error {
	for _, it := range r.items {
		if it.GetID() != item.GetID() && r.key(it) == r.key(item) {
			return domain.ErrDuplicate
		}
	}
	for i, it := range r.items {
		if it.GetID() == item.GetID() {
			r.items[i] = item
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeCRUDRepo[T]) Delete(id string) error {
	for i, it := range r.items {
		if it.GetID() == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}

// fakeUserRepo repositorio de usuarios en memoria con el mismo contrato que
// la implementación de PostgreSQL: Get* devuelven (nil, nil) sin coincidencia
// y Create devuelve DuplicateError con el valor en conflicto.
type fakeUserRepo struct {
	users []*entity.User
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	for _, it := range r.users {
		if it.Username == u.Username {
			return &domain.DuplicateError{Value: u.Username}
		}
		if it.Email == u.Email {
			return &domain.DuplicateError{Value: u.Email}
		}
	}
	cp := *u
	r.users = append(r.users, &cp)
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, it := range r.users {
		if it.ID == id {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, it := range r.users {
		if it.Username == username {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, it := range r.users {
		if it.Email == email {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByProviderID(provider, identifierField, identifier string) (*entity.User, error) {
	match := func(raw json.RawMessage) bool {
		var payload map[string]any
		if err := json.Unmarshal(raw, &payload); err != nil {
			return false
		}
		return fmt.Sprint(payload[identifierField]) == identifier
	}
	for _, it := range r.users {
		if it.Provider == provider && it.ProviderData != nil && match(it.ProviderData) {
			cp := *it
			return &cp, nil
		}
		if raw, ok := it.Providers[provider]; ok && match(raw) {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	for i, it := range r.users {
		if it.ID == u.ID {
			cp := *u
			// El hash nunca viaja en el usuario saneado; se preserva.
			if cp.PasswordHash == "" {
				cp.PasswordHash = it.PasswordHash
			}
			r.users[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeUserRepo) NextAvailableUsername(base string) (string, error) {
	taken := func(name string) bool {
		for _, it := range r.users {
			if it.Username == name {
				return true
			}
		}
		return false
	}
	if !taken(base) {
		return base, nil
	}
	for i := 1; ; i++ {
		candidate := base + strconv.Itoa(i)
		if !taken(candidate) {
			return candidate, nil
		}
	}
}

// fakeSessionStore almacén de sesiones en memoria.
type fakeSessionStore struct {
	sessions map[string]*entity.User
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]*entity.User)}
}

func (s *fakeSessionStore) Create(_ context.Context, user *entity.User) (string, error) {
	sid := uuid.New().String()
	s.sessions[sid] = user.Sanitized()
	return sid, nil
}

func (s *fakeSessionStore) Get(_ context.Context, sid string) (*entity.User, error) {
	user, ok := s.sessions[sid]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	cp := *user
	return &cp, nil
}

func (s *fakeSessionStore) Refresh(_ context.Context, sid string, user *entity.User) error {
	s.sessions[sid] = user.Sanitized()
	return nil
}

func (s *fakeSessionStore) Destroy(_ context.Context, sid string) error {
	delete(s.sessions, sid)
	return nil
}

// testEnv aplicación completa montada sobre fakes, con las mismas rutas y
// gates que producción.
type testEnv struct {
	app      *fiber.App
	users    *fakeUserRepo
	sessions *fakeSessionStore
}

func buildTestApp(t *testing.T) *testEnv {
	t.Helper()

	users := &fakeUserRepo{}
	store := newFakeSessionStore()
	categories := &fakeCRUDRepo[*entity.Category]{key: func(c *entity.Category) string { return c.Name }}
	products := &fakeCRUDRepo[*entity.Product]{key: func(p *entity.Product) string { return p.Name }}

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CategoryUC:      usecase.NewCRUDUseCase[*entity.Category](categories),
		ProductUC:       usecase.NewCRUDUseCase[*entity.Product](products),
		AuthUC:          appauth.NewUseCase(users),
		ProfileUC:       usecase.NewProfileUseCase(users),
		Sessions:        apphttp.NewSessions(store, testCookieName, testTTLMinutes*time.Minute),
		APIKey:          testAPIKey,
		StateSecret:     "test-state-secret",
		StateExpMinutes: 10,
	})
	return &testEnv{app: app, users: users, sessions: store}
}

// doJSON lanza una petición con body JSON opcional, cookie de sesión opcional
// y la API key de test.
func (e *testEnv) doJSON(t *testing.T, method, path string, body any, sid string) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(apphttp.HeaderAPIKey, testAPIKey)
	if sid != "" {
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: sid})
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// newRawRequest construye una petición sin API key, para probar los gates.
func newRawRequest(t *testing.T, method, path, sid string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if sid != "" {
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: sid})
	}
	return req
}

// signup registra un usuario y devuelve el sid de la sesión abierta.
func (e *testEnv) signup(t *testing.T, username, email string) string {
	t.Helper()
	resp := e.doJSON(t, http.MethodPost, "/auth/signup", fiber.Map{
		"firstName": "Juan",
		"lastName":  "Pérez",
		"email":     email,
		"username":  username,
		"password":  "secreto123",
	}, "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode, "signup debe responder 200")
	for _, ck := range resp.Cookies() {
		if ck.Name == testCookieName {
			return ck.Value
		}
	}
	t.Fatal("signup no dejó cookie de sesión")
	return ""
}

// decodeBody decodifica el body JSON en un mapa genérico.
func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// decodeList decodifica un body JSON que es un array de objetos.
func decodeList(t *testing.T, resp *http.Response) []map[string]any {
	t.Helper()
	var body []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}
