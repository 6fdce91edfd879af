package web

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postForm(router http.Handler, target string, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, req)
	return w
}

func flashCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == flashCookieName && cookie.Value != "" {
			return cookie
		}
	}
	t.Fatal("flash cookie not set")
	return nil
}

func TestCompanyList(t *testing.T) {
	router, _ := newTestRouter(t, stubBackend())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard/empresas", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Acme")
}

func TestCompanyCreateSuccess(t *testing.T) {
	mux := stubBackend()
	mux.HandleFunc("POST /empresas", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, map[string]any{"id": 2, "name": "Globex"})
	})
	router, flashes := newTestRouter(t, mux)

	w := postForm(router, "/dashboard/empresas", url.Values{
		"name":        {"Globex"},
		"description": {"Importadora de artículos varios."},
	})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/dashboard/empresas", w.Header().Get("Location"))

	pending := flashes.pending()
	require.Len(t, pending, 1)
	assert.Equal(t, "Empresa creada con éxito.", pending[0].Message)
	assert.False(t, pending[0].Destructive)

	// The redirect target consumes the flash exactly once.
	cookie := flashCookie(t, w)
	w2 := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard/empresas", nil)
	req.AddCookie(cookie)
	router.ServeHTTP(w2, req)

	assert.Contains(t, w2.Body.String(), "Empresa creada con éxito.")
	assert.Empty(t, flashes.pending())
}

func TestCompanyCreateValidationRerenders(t *testing.T) {
	router, flashes := newTestRouter(t, stubBackend())

	w := postForm(router, "/dashboard/empresas", url.Values{
		"name":        {"A"},
		"description": {"Importadora de artículos varios."},
	})

	// Validation failures stay on the page with the entered values kept.
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "El nombre debe tener al menos 2 caracteres.")
	assert.Contains(t, w.Body.String(), "Importadora de artículos varios.")
	assert.Empty(t, flashes.pending())
}

func TestCompanyCreateBackendFailure(t *testing.T) {
	mux := stubBackend()
	mux.HandleFunc("POST /empresas", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	router, flashes := newTestRouter(t, mux)

	w := postForm(router, "/dashboard/empresas", url.Values{
		"name":        {"Globex"},
		"description": {"Importadora de artículos varios."},
	})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	pending := flashes.pending()
	require.Len(t, pending, 1)
	assert.Equal(t, "Error al crear la empresa.", pending[0].Message)
	assert.True(t, pending[0].Destructive)
}

func TestOfferCreateSuccess(t *testing.T) {
	mux := stubBackend()
	mux.HandleFunc("POST /ofertas", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, map[string]any{"id": 6, "title": "QA Analyst", "company_id": 1})
	})
	router, flashes := newTestRouter(t, mux)

	w := postForm(router, "/dashboard/ofertas", url.Values{
		"title":       {"QA Analyst"},
		"description": {"Pruebas funcionales y automatización."},
		"company_id":  {"1"},
	})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/dashboard/ofertas", w.Header().Get("Location"))
	pending := flashes.pending()
	require.Len(t, pending, 1)
	assert.Equal(t, "Oferta creada con éxito.", pending[0].Message)
}

func TestOfferCreateWithoutCompany(t *testing.T) {
	router, _ := newTestRouter(t, stubBackend())

	w := postForm(router, "/dashboard/ofertas", url.Values{
		"title":       {"QA Analyst"},
		"description": {"Pruebas funcionales y automatización."},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Debes seleccionar una empresa.")
}

func TestOfferShowRanking(t *testing.T) {
	mux := stubBackend()
	mux.HandleFunc("GET /seleccion/oferta/5", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]any{
			{"candidate": map[string]any{"id": 3, "nombre_completo": "Ana Pérez"}, "score": 0.91},
		})
	})
	router, _ := newTestRouter(t, mux)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard/ofertas/5", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Desarrollador Backend")
	assert.Contains(t, w.Body.String(), "Ana Pérez")
}

func TestCandidateCreateSuccess(t *testing.T) {
	mux := stubBackend()
	mux.HandleFunc("POST /candidatos", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, map[string]any{"id": 4, "nombre_completo": "Luis Torres"})
	})
	router, flashes := newTestRouter(t, mux)

	w := postForm(router, "/dashboard/candidatos", url.Values{
		"nombre_completo": {"Luis Torres"},
		"correo":          {"luis@example.com"},
	})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/dashboard/candidatos", w.Header().Get("Location"))
	pending := flashes.pending()
	require.Len(t, pending, 1)
	assert.Equal(t, "Candidato creado con éxito.", pending[0].Message)
}

func TestCandidateCreateInvalidEmail(t *testing.T) {
	router, _ := newTestRouter(t, stubBackend())

	w := postForm(router, "/dashboard/candidatos", url.Values{
		"nombre_completo": {"Luis Torres"},
		"correo":          {"no-es-un-correo"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Por favor, introduce un email válido.")
}
