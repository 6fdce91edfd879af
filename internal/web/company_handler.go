package web

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"talentboard/internal/actions"
	"talentboard/internal/backend"
	"talentboard/internal/hiring"
	"talentboard/internal/validate"
	"talentboard/internal/web/middleware"
)

// CompanyHandler renders the company list and handles the create form.
type CompanyHandler struct {
	client  *backend.Client
	actions *actions.Actions
	flashes FlashStore
}

// NewCompanyHandler constructs the handler.
func NewCompanyHandler(client *backend.Client, acts *actions.Actions, flashes FlashStore) *CompanyHandler {
	return &CompanyHandler{client: client, actions: acts, flashes: flashes}
}

type companiesPage struct {
	page
	Companies []hiring.Company
	Form      url.Values
	Errors    validate.FieldErrors
	LoadError string
}

// List renders the company list with an empty create form.
func (h *CompanyHandler) List(c *gin.Context) {
	h.render(c, takeFlash(c, h.flashes), url.Values{}, nil)
}

// Create runs the create action. Validation failures re-render the form
// inline with the entered values preserved; everything else redirects
// back to the list with a flash.
func (h *CompanyHandler) Create(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		redirectWithFlash(c, h.flashes, "/dashboard/empresas", Flash{Message: "Error al crear la empresa.", Destructive: true})
		return
	}
	form := c.Request.PostForm

	result := h.actions.CreateCompany(c.Request.Context(), form)
	if result.Errors != nil {
		h.render(c, nil, form, result.Errors)
		return
	}

	redirectWithFlash(c, h.flashes, "/dashboard/empresas", Flash{Message: result.Message, Destructive: result.Failed()})
}

func (h *CompanyHandler) render(c *gin.Context, flash *Flash, form url.Values, errs validate.FieldErrors) {
	data := companiesPage{
		page:   newPage("Empresas", "empresas", flash),
		Form:   form,
		Errors: errs,
	}

	companies, err := h.client.GetCompanies(c.Request.Context())
	if err != nil {
		middleware.LoggerFromContext(c).Error("load companies failed", slog.Any("error", err))
		data.LoadError = "No se pudieron cargar las empresas."
	} else {
		data.Companies = companies
	}

	c.HTML(http.StatusOK, "empresas", data)
}
