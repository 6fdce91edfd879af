package web

import (
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"talentboard/internal/backend"
	"talentboard/internal/hiring"
	"talentboard/internal/web/middleware"
)

// DocumentsHandler drives the document analysis page: three tabs
// (complete analysis, extraction, similarity), each cycling
// idle -> submitting -> result-or-error per submission.
type DocumentsHandler struct {
	client  *backend.Client
	flashes FlashStore
}

// NewDocumentsHandler constructs the handler.
func NewDocumentsHandler(client *backend.Client, flashes FlashStore) *DocumentsHandler {
	return &DocumentsHandler{client: client, flashes: flashes}
}

type documentsPage struct {
	page
	Tab        string
	Candidates []hiring.Candidate
	Offers     []hiring.Offer
	LoadError  string

	// One form error at a time, scoped to the active tab.
	FormError string

	Analysis   *hiring.CompleteAnalysis
	Extraction *hiring.CVExtraction
	// CVText keeps the raw extracted text so it can be carried into the
	// similarity tab at the user's request.
	CVText string

	Similarity     *hiring.SimilarityResult
	CVSummary      string
	JobDescription string
}

// Show renders the page in its idle state for the requested tab.
func (h *DocumentsHandler) Show(c *gin.Context) {
	data := h.newPageData(c, c.DefaultQuery("tab", "complete"))
	data.Flash = takeFlash(c, h.flashes)
	// The similarity tab can be pre-filled from a previous extraction.
	data.CVSummary = c.Query("cv_resumen")
	c.HTML(http.StatusOK, "documentos", data)
}

// CompleteAnalysis uploads a CV for the combined
// extraction + similarity + questions flow.
func (h *DocumentsHandler) CompleteAnalysis(c *gin.Context) {
	data := h.newPageData(c, "complete")

	candidateID, candErr := strconv.Atoi(c.PostForm("candidato_id"))
	offerID, offerErr := strconv.Atoi(c.PostForm("oferta_id"))
	fileHeader, fileErr := c.FormFile("file")
	if candErr != nil || offerErr != nil || fileErr != nil {
		data.FormError = "Por favor, selecciona un candidato, una oferta y un archivo."
		c.HTML(http.StatusOK, "documentos", data)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		data.FormError = "Error al procesar el análisis completo."
		c.HTML(http.StatusOK, "documentos", data)
		return
	}
	defer file.Close()

	analysis, err := h.client.CompleteAnalysis(c.Request.Context(), candidateID, offerID, fileHeader.Filename, file)
	if err != nil {
		middleware.LoggerFromContext(c).Error("complete analysis failed", slog.Any("error", err))
		data.FormError = analysisFailureMessage(err, "Error al procesar el análisis completo.")
		c.HTML(http.StatusOK, "documentos", data)
		return
	}

	data.Analysis = analysis
	c.HTML(http.StatusOK, "documentos", data)
}

// Extract uploads a CV, pulls its free text and asks the backend for
// structured fields. The raw text stays on the page for the similarity tab.
func (h *DocumentsHandler) Extract(c *gin.Context) {
	data := h.newPageData(c, "extract")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		data.FormError = "Por favor, selecciona un archivo PDF."
		c.HTML(http.StatusOK, "documentos", data)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		data.FormError = "Error al extraer datos del CV desde PDF."
		c.HTML(http.StatusOK, "documentos", data)
		return
	}
	defer file.Close()

	extraction, text, err := h.extractFromFile(c, fileHeader.Filename, file)
	if err != nil {
		middleware.LoggerFromContext(c).Error("cv extraction failed", slog.Any("error", err))
		data.FormError = analysisFailureMessage(err, "Error al extraer datos del CV desde PDF.")
		c.HTML(http.StatusOK, "documentos", data)
		return
	}

	data.Extraction = extraction
	data.CVText = text
	c.HTML(http.StatusOK, "documentos", data)
}

// Similarity compares a CV summary against a job description.
func (h *DocumentsHandler) Similarity(c *gin.Context) {
	data := h.newPageData(c, "similarity")
	data.CVSummary = c.PostForm("cv_resumen")
	data.JobDescription = c.PostForm("job_description")

	if strings.TrimSpace(data.CVSummary) == "" || strings.TrimSpace(data.JobDescription) == "" {
		data.FormError = "Por favor, ingresa tanto el CV como la descripción del puesto."
		c.HTML(http.StatusOK, "documentos", data)
		return
	}

	result, err := h.client.Similarity(c.Request.Context(), hiring.SimilarityRequest{
		CVSummary:      data.CVSummary,
		JobDescription: data.JobDescription,
	})
	if err != nil {
		middleware.LoggerFromContext(c).Error("similarity failed", slog.Any("error", err))
		data.FormError = analysisFailureMessage(err, "Error al calcular similitud.")
		c.HTML(http.StatusOK, "documentos", data)
		return
	}

	data.Similarity = result
	c.HTML(http.StatusOK, "documentos", data)
}

func (h *DocumentsHandler) extractFromFile(c *gin.Context, filename string, file multipart.File) (*hiring.CVExtraction, string, error) {
	ctx := c.Request.Context()

	text, err := h.client.ExtractText(ctx, filename, file)
	if err != nil {
		return nil, "", err
	}

	extraction, err := h.client.ExtractCV(ctx, text)
	if err != nil {
		return nil, "", err
	}
	return extraction, text, nil
}

func (h *DocumentsHandler) newPageData(c *gin.Context, tab string) documentsPage {
	data := documentsPage{
		page: newPage("Documentos", "documentos", nil),
		Tab:  tab,
	}

	ctx := c.Request.Context()
	logger := middleware.LoggerFromContext(c)

	candidates, err := h.client.GetCandidates(ctx)
	if err != nil {
		logger.Error("load candidates failed", slog.Any("error", err))
		data.LoadError = "No se pudieron cargar los datos."
	} else {
		data.Candidates = candidates
	}

	offers, err := h.client.GetOffers(ctx)
	if err != nil {
		logger.Error("load offers failed", slog.Any("error", err))
		data.LoadError = "No se pudieron cargar los datos."
	} else {
		data.Offers = offers
	}

	return data
}

// analysisFailureMessage prefers the backend's structured detail (for
// example the PDF-only rejection) over the generic failure text.
func analysisFailureMessage(err error, fallback string) string {
	if apiErr, ok := backend.AsAPIError(err); ok && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return fallback
}
