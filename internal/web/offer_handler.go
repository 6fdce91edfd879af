package web

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"talentboard/internal/actions"
	"talentboard/internal/backend"
	"talentboard/internal/hiring"
	"talentboard/internal/validate"
	"talentboard/internal/web/middleware"
)

// OfferHandler renders the offer list, the create form and the offer
// detail page with its ranked candidates.
type OfferHandler struct {
	client  *backend.Client
	actions *actions.Actions
	flashes FlashStore
}

// NewOfferHandler constructs the handler.
func NewOfferHandler(client *backend.Client, acts *actions.Actions, flashes FlashStore) *OfferHandler {
	return &OfferHandler{client: client, actions: acts, flashes: flashes}
}

type offersPage struct {
	page
	Offers    []hiring.Offer
	Companies []hiring.Company
	Form      url.Values
	Errors    validate.FieldErrors
	LoadError string
}

type offerDetailPage struct {
	page
	Offer     *hiring.Offer
	Ranked    []hiring.RankedCandidate
	LoadError string
	RankError string
}

// List renders the offer list with an empty create form.
func (h *OfferHandler) List(c *gin.Context) {
	h.render(c, takeFlash(c, h.flashes), url.Values{}, nil)
}

// Create runs the create action with the same inline/redirect split as
// the other entities.
func (h *OfferHandler) Create(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		redirectWithFlash(c, h.flashes, "/dashboard/ofertas", Flash{Message: "Error al crear la oferta.", Destructive: true})
		return
	}
	form := c.Request.PostForm

	result := h.actions.CreateOffer(c.Request.Context(), form)
	if result.Errors != nil {
		h.render(c, nil, form, result.Errors)
		return
	}

	redirectWithFlash(c, h.flashes, "/dashboard/ofertas", Flash{Message: result.Message, Destructive: result.Failed()})
}

// Show renders one offer with its ranking, sorted server-side by score.
func (h *OfferHandler) Show(c *gin.Context) {
	offerID, err := strconv.Atoi(c.Param("id"))
	if err != nil || offerID < 1 {
		c.Redirect(http.StatusSeeOther, "/dashboard/ofertas")
		return
	}

	data := offerDetailPage{page: newPage("Oferta", "ofertas", takeFlash(c, h.flashes))}
	ctx := c.Request.Context()
	logger := middleware.LoggerFromContext(c)

	offers, err := h.client.GetOffers(ctx)
	if err != nil {
		logger.Error("load offers failed", slog.Any("error", err))
		data.LoadError = "No se pudo cargar la oferta."
		c.HTML(http.StatusOK, "oferta_detalle", data)
		return
	}
	for i := range offers {
		if offers[i].ID == offerID {
			data.Offer = &offers[i]
			break
		}
	}
	if data.Offer == nil {
		data.LoadError = "No se pudo cargar la oferta."
		c.HTML(http.StatusOK, "oferta_detalle", data)
		return
	}
	data.Title = data.Offer.Title

	ranked, err := h.client.GetRankedCandidates(ctx, offerID)
	if err != nil {
		logger.Error("load ranking failed", slog.Any("error", err))
		data.RankError = "No se pudo cargar el ranking de candidatos."
	} else {
		data.Ranked = ranked
	}

	c.HTML(http.StatusOK, "oferta_detalle", data)
}

func (h *OfferHandler) render(c *gin.Context, flash *Flash, form url.Values, errs validate.FieldErrors) {
	data := offersPage{
		page:   newPage("Ofertas", "ofertas", flash),
		Form:   form,
		Errors: errs,
	}

	ctx := c.Request.Context()
	logger := middleware.LoggerFromContext(c)

	offers, err := h.client.GetOffers(ctx)
	if err != nil {
		logger.Error("load offers failed", slog.Any("error", err))
		data.LoadError = "No se pudieron cargar las ofertas."
	} else {
		data.Offers = offers
	}

	// Companies feed the select in the create form.
	companies, err := h.client.GetCompanies(ctx)
	if err != nil {
		logger.Error("load companies failed", slog.Any("error", err))
		if data.LoadError == "" {
			data.LoadError = "No se pudieron cargar las empresas."
		}
	} else {
		data.Companies = companies
	}

	c.HTML(http.StatusOK, "ofertas", data)
}
