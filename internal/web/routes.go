package web

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"talentboard/internal/actions"
	"talentboard/internal/backend"
)

// RegisterRoutes wires the dashboard pages onto the router.
func RegisterRoutes(router *gin.Engine, client *backend.Client, flashes FlashStore, logger *slog.Logger) {
	// Every GET fetches fresh, so the stale signal only needs logging
	// here; tests and alternative wirings hook it directly.
	acts := actions.New(client, func(path string) {
		logger.Debug("list view stale", slog.String("path", path))
	}, logger)

	dashboardHandler := NewDashboardHandler(client, flashes)
	companyHandler := NewCompanyHandler(client, acts, flashes)
	offerHandler := NewOfferHandler(client, acts, flashes)
	candidateHandler := NewCandidateHandler(client, acts, flashes)
	documentsHandler := NewDocumentsHandler(client, flashes)
	interviewHandler := NewInterviewHandler(client, flashes)

	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusSeeOther, "/dashboard")
	})

	dash := router.Group("/dashboard")
	{
		dash.GET("", dashboardHandler.Show)

		dash.GET("/empresas", companyHandler.List)
		dash.POST("/empresas", companyHandler.Create)

		dash.GET("/ofertas", offerHandler.List)
		dash.POST("/ofertas", offerHandler.Create)
		dash.GET("/ofertas/:id", offerHandler.Show)

		dash.GET("/candidatos", candidateHandler.List)
		dash.POST("/candidatos", candidateHandler.Create)

		dash.GET("/documentos", documentsHandler.Show)
		dash.POST("/documentos/analisis-completo", documentsHandler.CompleteAnalysis)
		dash.POST("/documentos/extraer", documentsHandler.Extract)
		dash.POST("/documentos/similitud", documentsHandler.Similarity)

		dash.GET("/entrevistas", interviewHandler.Show)
		dash.POST("/entrevistas/preguntas", interviewHandler.GenerateQuestions)
		dash.POST("/entrevistas/evaluar", interviewHandler.EvaluateAnswer)
	}
}
