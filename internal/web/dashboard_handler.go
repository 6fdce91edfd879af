package web

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"talentboard/internal/backend"
	"talentboard/internal/web/middleware"
)

// DashboardHandler renders the overview page with per-entity counts.
type DashboardHandler struct {
	client  *backend.Client
	flashes FlashStore
}

// NewDashboardHandler constructs the handler.
func NewDashboardHandler(client *backend.Client, flashes FlashStore) *DashboardHandler {
	return &DashboardHandler{client: client, flashes: flashes}
}

type dashboardPage struct {
	page
	Companies  int
	Offers     int
	Candidates int
	LoadError  string
}

// Show renders the overview. Counts come from fresh list fetches, the
// same reads the entity pages use.
func (h *DashboardHandler) Show(c *gin.Context) {
	data := dashboardPage{page: newPage("Inicio", "dashboard", takeFlash(c, h.flashes))}
	ctx := c.Request.Context()
	logger := middleware.LoggerFromContext(c)

	companies, err := h.client.GetCompanies(ctx)
	if err != nil {
		logger.Error("load companies failed", slog.Any("error", err))
		data.LoadError = "No se pudieron cargar los datos."
	} else {
		data.Companies = len(companies)
	}

	offers, err := h.client.GetOffers(ctx)
	if err != nil {
		logger.Error("load offers failed", slog.Any("error", err))
		data.LoadError = "No se pudieron cargar los datos."
	} else {
		data.Offers = len(offers)
	}

	candidates, err := h.client.GetCandidates(ctx)
	if err != nil {
		logger.Error("load candidates failed", slog.Any("error", err))
		data.LoadError = "No se pudieron cargar los datos."
	} else {
		data.Candidates = len(candidates)
	}

	c.HTML(http.StatusOK, "dashboard", data)
}
