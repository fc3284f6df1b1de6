package http_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests CRUD de categorías (la fábrica genérica; productos comparten el código)
// ──────────────────────────────────────────────────────────────────────────────

// createCategory crea una categoría y devuelve su id.
func createCategory(t *testing.T, e *testEnv, sid, name string) string {
	t.Helper()
	resp := e.doJSON(t, http.MethodPost, "/categories", fiber.Map{
		"name":        name,
		"description": "descripción de " + name,
	}, sid)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode, "crear debe responder 200")
	body := decodeBody(t, resp)
	id, _ := body["id"].(string)
	require.NotEmpty(t, id)
	return id
}

func TestCategories_CrearYLeer(t *testing.T) {
	e := buildTestApp(t)
	sid := e.signup(t, "jdoe", "jdoe@example.com")

	id := createCategory(t, e, sid, "Bebidas")

	resp := e.doJSON(t, http.MethodGet, "/categories/"+id, nil, sid)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Bebidas", body["name"])
	assert.Equal(t, "descripción de Bebidas", body["description"])
	assert.NotEmpty(t, body["created"])
}

func TestCategories_NombreDuplicado_Retorna400(t *testing.T) {
	e := buildTestApp(t)
	sid := e.signup(t, "jdoe", "jdoe@example.com")

	createCategory(t, e, sid, "Bebidas")

	resp := e.doJSON(t, http.MethodPost, "/categories", fiber.Map{"name": "Bebidas"}, sid)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Bebidas already exists", body["message"],
		"el mensaje de duplicado debe ser '<valor> already exists'")
}

func TestCategories_NombreVacio_Retorna400(t *testing.T) {
	e := buildTestApp(t)
	sid := e.signup(t, "jdoe", "jdoe@example.com")

	resp := e.doJSON(t, http.MethodPost, "/categories", fiber.Map{"description": "sin nombre"}, sid)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Please fill in Category name", body["message"])
}

func TestCategories_Listar_MasRecientePrimero(t *testing.T) {
	e := buildTestApp(t)
	sid := e.signup(t, "jdoe", "jdoe@example.com")

	createCategory(t, e, sid, "Bebidas")
	createCategory(t, e, sid, "Lácteos")

	resp := e.doJSON(t, http.MethodGet, "/categories", nil, sid)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	list := decodeList(t, resp)
	require.Len(t, list, 2)
	assert.Equal(t, "Lácteos", list[0]["name"])
	assert.Equal(t, "Bebidas", list[1]["name"])
}

func TestCategories_IdInvalido_Retorna400(t *testing.T) {
	e := buildTestApp(t)
	sid := e.signup(t, "jdoe", "jdoe@example.com")

	resp := e.doJSON(t, http.MethodGet, "/categories/no-es-un-uuid", nil, sid)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Id is invalid", body["message"])
}

func TestCategories_NoExiste_Retorna404(t *testing.T) {
	e := buildTestApp(t)
	sid := e.signup(t, "jdoe", "jdoe@example.com")

	resp := e.doJSON(t, http.MethodGet, "/categories/00000000-0000-0000-0000-0000000000aa", nil, sid)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Category not found", body["message"])
}

func TestCategories_Actualizar(t *testing.T) {
	e := buildTestApp(t)
	sid := e.signup(t, "jdoe", "jdoe@example.com")

	id := createCategory(t, e, sid, "Bebidas")

	resp := e.doJSON(t, http.MethodPut, "/categories/"+id, fiber.Map{"name": "Bebidas frías"}, sid)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Bebidas frías", body["name"])
	assert.Equal(t, "descripción de Bebidas", body["description"],
		"los campos no enviados deben conservarse")
}

func TestCategories_Eliminar_RespondeUltimoEstado(t *testing.T) {
	e := buildTestApp(t)
	sid := e.signup(t, "jdoe", "jdoe@example.com")

	id := createCategory(t, e, sid, "Bebidas")

	resp := e.doJSON(t, http.MethodDelete, "/categories/"+id, nil, sid)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Bebidas", body["name"], "delete responde el último estado conocido")

	// La entidad ya no existe.
	resp2 := e.doJSON(t, http.MethodGet, "/categories/"+id, nil, sid)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp2.StatusCode)
}

func TestProducts_CrearConPrecio(t *testing.T) {
	e := buildTestApp(t)
	sid := e.signup(t, "jdoe", "jdoe@example.com")

	resp := e.doJSON(t, http.MethodPost, "/products", fiber.Map{
		"name":        "Café molido",
		"description": "500g",
		"price":       "12.50",
	}, sid)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Café molido", body["name"])
	assert.Equal(t, "12.5", body["price"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de los gates de acceso a los recursos CRUD
// ──────────────────────────────────────────────────────────────────────────────

func TestCategories_SinSesion_Retorna401(t *testing.T) {
	e := buildTestApp(t)

	resp := e.doJSON(t, http.MethodGet, "/categories", nil, "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "User is not logged in", body["message"])
}

func TestCategories_APIKeyIncorrecta_Retorna401(t *testing.T) {
	e := buildTestApp(t)
	sid := e.signup(t, "jdoe", "jdoe@example.com")

	req := newRawRequest(t, http.MethodGet, "/categories", sid)
	req.Header.Set("X-API-Key", "clave-incorrecta")
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Invalid API key", body["message"])
}

func TestCategories_SinAPIKey_Retorna401(t *testing.T) {
	e := buildTestApp(t)
	sid := e.signup(t, "jdoe", "jdoe@example.com")

	req := newRawRequest(t, http.MethodGet, "/categories", sid)
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
