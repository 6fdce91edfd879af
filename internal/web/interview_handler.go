package web

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"talentboard/internal/backend"
	"talentboard/internal/hiring"
	"talentboard/internal/web/middleware"
)

// InterviewHandler drives the interview page: question generation and
// answer evaluation tabs.
type InterviewHandler struct {
	client  *backend.Client
	flashes FlashStore
}

// NewInterviewHandler constructs the handler.
func NewInterviewHandler(client *backend.Client, flashes FlashStore) *InterviewHandler {
	return &InterviewHandler{client: client, flashes: flashes}
}

type interviewPage struct {
	page
	Tab       string
	FormError string

	CVSummary      string
	JobDescription string
	Questions      *hiring.QuestionSet

	Question   string
	Answer     string
	Evaluation *hiring.AnswerEvaluation
}

// Show renders the page in its idle state. The evaluate tab can be
// pre-filled with a follow-up question from a previous evaluation.
func (h *InterviewHandler) Show(c *gin.Context) {
	data := interviewPage{
		page:     newPage("Entrevistas", "entrevistas", takeFlash(c, h.flashes)),
		Tab:      c.DefaultQuery("tab", "generate"),
		Question: c.Query("pregunta"),
	}
	c.HTML(http.StatusOK, "entrevistas", data)
}

// GenerateQuestions asks the backend for interview questions.
func (h *InterviewHandler) GenerateQuestions(c *gin.Context) {
	data := interviewPage{
		page:           newPage("Entrevistas", "entrevistas", nil),
		Tab:            "generate",
		CVSummary:      c.PostForm("cv_resumen"),
		JobDescription: c.PostForm("job_description"),
	}

	if strings.TrimSpace(data.CVSummary) == "" || strings.TrimSpace(data.JobDescription) == "" {
		data.FormError = "Por favor, completa tanto el resumen del CV como la descripción del puesto."
		c.HTML(http.StatusOK, "entrevistas", data)
		return
	}

	questions, err := h.client.GenerateQuestions(c.Request.Context(), hiring.QuestionRequest{
		CVSummary:      data.CVSummary,
		JobDescription: data.JobDescription,
	})
	if err != nil {
		middleware.LoggerFromContext(c).Error("question generation failed", slog.Any("error", err))
		data.FormError = analysisFailureMessage(err, "Error al generar las preguntas de entrevista.")
		c.HTML(http.StatusOK, "entrevistas", data)
		return
	}

	data.Questions = questions
	c.HTML(http.StatusOK, "entrevistas", data)
}

// EvaluateAnswer rates a candidate's answer to one question.
func (h *InterviewHandler) EvaluateAnswer(c *gin.Context) {
	data := interviewPage{
		page:     newPage("Entrevistas", "entrevistas", nil),
		Tab:      "evaluate",
		Question: c.PostForm("pregunta"),
		Answer:   c.PostForm("respuesta_candidato"),
	}

	if strings.TrimSpace(data.Question) == "" || strings.TrimSpace(data.Answer) == "" {
		data.FormError = "Por favor, completa tanto la pregunta como la respuesta del candidato."
		c.HTML(http.StatusOK, "entrevistas", data)
		return
	}

	evaluation, err := h.client.EvaluateAnswer(c.Request.Context(), hiring.EvaluationRequest{
		Question: data.Question,
		Answer:   data.Answer,
	})
	if err != nil {
		middleware.LoggerFromContext(c).Error("answer evaluation failed", slog.Any("error", err))
		data.FormError = analysisFailureMessage(err, "Error al evaluar la respuesta.")
		c.HTML(http.StatusOK, "entrevistas", data)
		return
	}

	data.Evaluation = evaluation
	c.HTML(http.StatusOK, "entrevistas", data)
}
