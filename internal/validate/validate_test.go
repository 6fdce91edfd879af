package validate

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompany(t *testing.T) {
	tests := []struct {
		name       string
		form       url.Values
		wantErrors []string
	}{
		{
			name: "valid",
			form: url.Values{
				"name":        {"Acme"},
				"description": {"Consultora de software a medida."},
			},
		},
		{
			name: "name at two char boundary",
			form: url.Values{
				"name":        {"AB"},
				"description": {"Consultora de software a medida."},
			},
		},
		{
			name: "name too short",
			form: url.Values{
				"name":        {"A"},
				"description": {"Consultora de software a medida."},
			},
			wantErrors: []string{"name"},
		},
		{
			name: "description too short",
			form: url.Values{
				"name":        {"Acme"},
				"description": {"corta"},
			},
			wantErrors: []string{"description"},
		},
		{
			name:       "empty form reports both fields",
			form:       url.Values{},
			wantErrors: []string{"name", "description"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, errs := Company(tt.form)

			if len(tt.wantErrors) == 0 {
				require.Nil(t, errs)
				require.NotNil(t, payload)
				assert.Equal(t, tt.form.Get("name"), payload.Name)
				assert.Equal(t, tt.form.Get("description"), payload.Description)
				return
			}

			// No partial success: the payload is withheld entirely.
			assert.Nil(t, payload)
			require.NotNil(t, errs)
			for _, field := range tt.wantErrors {
				assert.True(t, errs.Has(field), "expected error on %q, got %v", field, errs)
				assert.NotEmpty(t, errs.First(field))
			}
		})
	}
}

func TestOffer(t *testing.T) {
	valid := url.Values{
		"title":       {"Desarrollador Backend"},
		"description": {"Buscamos experiencia en Go y PostgreSQL."},
		"company_id":  {"3"},
	}

	t.Run("valid", func(t *testing.T) {
		payload, errs := Offer(valid)
		require.Nil(t, errs)
		require.NotNil(t, payload)
		assert.Equal(t, 3, payload.CompanyID)
	})

	t.Run("non numeric company selector", func(t *testing.T) {
		form := url.Values{
			"title":       valid["title"],
			"description": valid["description"],
			"company_id":  {"acme"},
		}
		payload, errs := Offer(form)
		assert.Nil(t, payload)
		require.NotNil(t, errs)
		assert.Equal(t, "Debes seleccionar una empresa.", errs.First("company_id"))
	})

	t.Run("missing company selector", func(t *testing.T) {
		form := url.Values{
			"title":       valid["title"],
			"description": valid["description"],
		}
		payload, errs := Offer(form)
		assert.Nil(t, payload)
		require.True(t, errs.Has("company_id"))
	})

	t.Run("zero company id rejected", func(t *testing.T) {
		form := url.Values{
			"title":       valid["title"],
			"description": valid["description"],
			"company_id":  {"0"},
		}
		payload, errs := Offer(form)
		assert.Nil(t, payload)
		require.True(t, errs.Has("company_id"))
	})

	t.Run("short title", func(t *testing.T) {
		form := url.Values{
			"title":       {"Dev"},
			"description": valid["description"],
			"company_id":  {"3"},
		}
		payload, errs := Offer(form)
		assert.Nil(t, payload)
		assert.Equal(t, "El título debe tener al menos 5 caracteres.", errs.First("title"))
	})
}

func TestCandidate(t *testing.T) {
	t.Run("valid with optional fields", func(t *testing.T) {
		form := url.Values{
			"nombre_completo": {"Ana Pérez"},
			"correo":          {"ana@example.com"},
			"telefono":        {"+51 987654321"},
			"linkedin":        {"https://linkedin.com/in/anaperez"},
		}
		payload, errs := Candidate(form)
		require.Nil(t, errs)
		require.NotNil(t, payload)
		require.NotNil(t, payload.Phone)
		assert.Equal(t, "+51 987654321", *payload.Phone)
		require.NotNil(t, payload.LinkedIn)
		assert.Equal(t, "https://linkedin.com/in/anaperez", *payload.LinkedIn)
	})

	t.Run("optional fields omitted when empty", func(t *testing.T) {
		form := url.Values{
			"nombre_completo": {"Ana Pérez"},
			"correo":          {"ana@example.com"},
		}
		payload, errs := Candidate(form)
		require.Nil(t, errs)
		assert.Nil(t, payload.Phone)
		assert.Nil(t, payload.LinkedIn)
	})

	t.Run("email shapes", func(t *testing.T) {
		accepted := []string{"ana@example.com", "a.b+c@dominio.pe"}
		rejected := []string{"", "anaexample.com", "ana@", "@example.com"}

		for _, email := range accepted {
			form := url.Values{"nombre_completo": {"Ana"}, "correo": {email}}
			_, errs := Candidate(form)
			assert.Nil(t, errs, "expected %q to be accepted", email)
		}
		for _, email := range rejected {
			form := url.Values{"nombre_completo": {"Ana"}, "correo": {email}}
			payload, errs := Candidate(form)
			assert.Nil(t, payload)
			require.NotNil(t, errs, "expected %q to be rejected", email)
			assert.Equal(t, "Por favor, introduce un email válido.", errs.First("correo"))
		}
	})

	t.Run("name boundary", func(t *testing.T) {
		short := url.Values{"nombre_completo": {"A"}, "correo": {"ana@example.com"}}
		payload, errs := Candidate(short)
		assert.Nil(t, payload)
		assert.Equal(t, "El nombre debe tener al menos 2 caracteres.", errs.First("nombre_completo"))

		boundary := url.Values{"nombre_completo": {"Al"}, "correo": {"ana@example.com"}}
		payload, errs = Candidate(boundary)
		assert.Nil(t, errs)
		assert.NotNil(t, payload)
	})

	t.Run("invalid linkedin url", func(t *testing.T) {
		form := url.Values{
			"nombre_completo": {"Ana Pérez"},
			"correo":          {"ana@example.com"},
			"linkedin":        {"no-es-un-url"},
		}
		payload, errs := Candidate(form)
		assert.Nil(t, payload)
		assert.Equal(t, "Debes ingresar un URL válido de LinkedIn.", errs.First("linkedin"))
	})
}
