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

// CandidateHandler renders the candidate list and handles the create form.
type CandidateHandler struct {
	client  *backend.Client
	actions *actions.Actions
	flashes FlashStore
}

// NewCandidateHandler constructs the handler.
func NewCandidateHandler(client *backend.Client, acts *actions.Actions, flashes FlashStore) *CandidateHandler {
	return &CandidateHandler{client: client, actions: acts, flashes: flashes}
}

type candidatesPage struct {
	page
	Candidates []hiring.Candidate
	Form       url.Values
	Errors     validate.FieldErrors
	LoadError  string
}

// List renders the candidate list with an empty create form.
func (h *CandidateHandler) List(c *gin.Context) {
	h.render(c, takeFlash(c, h.flashes), url.Values{}, nil)
}

// Create runs the create action.
func (h *CandidateHandler) Create(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		redirectWithFlash(c, h.flashes, "/dashboard/candidatos", Flash{Message: "Error al crear el candidato.", Destructive: true})
		return
	}
	form := c.Request.PostForm

	result := h.actions.CreateCandidate(c.Request.Context(), form)
	if result.Errors != nil {
		h.render(c, nil, form, result.Errors)
		return
	}

	redirectWithFlash(c, h.flashes, "/dashboard/candidatos", Flash{Message: result.Message, Destructive: result.Failed()})
}

func (h *CandidateHandler) render(c *gin.Context, flash *Flash, form url.Values, errs validate.FieldErrors) {
	data := candidatesPage{
		page:   newPage("Candidatos", "candidatos", flash),
		Form:   form,
		Errors: errs,
	}

	candidates, err := h.client.GetCandidates(c.Request.Context())
	if err != nil {
		middleware.LoggerFromContext(c).Error("load candidates failed", slog.Any("error", err))
		data.LoadError = "No se pudieron cargar los candidatos."
	} else {
		data.Candidates = candidates
	}

	c.HTML(http.StatusOK, "candidatos", data)
}
