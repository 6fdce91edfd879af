package hiring

// Company mirrors the backend's empresa resource.
type Company struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CompanyCreate is the payload for POST /empresas.
type CompanyCreate struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Offer mirrors the backend's oferta resource. Company is embedded only
// when the backend expands the relation.
type Offer struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	CompanyID   int      `json:"company_id"`
	Company     *Company `json:"company,omitempty"`
}

// OfferCreate is the payload for POST /ofertas.
type OfferCreate struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	CompanyID   int    `json:"company_id"`
}

// Candidate mirrors the backend's candidato read model. Every contact
// field is nullable server-side, so the zero value means "absent".
type Candidate struct {
	ID        int    `json:"id"`
	CreatedAt string `json:"creado_en"`
	FullName  string `json:"nombre_completo"`
	Email     string `json:"correo"`
	Phone     string `json:"telefono"`
	LinkedIn  string `json:"linkedin"`
}

// CandidateCreate is the payload for POST /candidatos. Optional fields
// are pointers so an empty form field is omitted rather than sent as "".
type CandidateCreate struct {
	FullName string  `json:"nombre_completo"`
	Email    string  `json:"correo"`
	Phone    *string `json:"telefono,omitempty"`
	LinkedIn *string `json:"linkedin,omitempty"`
}

// RankedCandidate pairs a candidate with the server-computed
// compatibility score for one offer.
type RankedCandidate struct {
	Candidate Candidate `json:"candidate"`
	Score     float64   `json:"score"`
}

// DocumentScore is the response of the legacy single-shot scoring
// endpoint POST /procesamiento/calificar.
type DocumentScore struct {
	Message       string  `json:"message"`
	Path          string  `json:"path"`
	ExtractedText string  `json:"resultado"`
	Score         float64 `json:"score_ia"`
}

// ExtractionRequest carries the raw CV text for structured extraction.
type ExtractionRequest struct {
	Text string `json:"texto_cv"`
}

// Experience is one work-history entry inside a CVExtraction.
type Experience struct {
	Role        string `json:"puesto"`
	Employer    string `json:"empresa"`
	Period      string `json:"periodo"`
	Description string `json:"descripcion"`
}

// Education is one education entry inside a CVExtraction.
type Education struct {
	Degree      string `json:"titulo"`
	Institution string `json:"institucion"`
	Period      string `json:"periodo"`
}

// CVExtraction holds the structured fields the backend derives from CV
// text. Every field is absent-tolerant.
type CVExtraction struct {
	FullName   string       `json:"nombre_completo"`
	Email      string       `json:"email"`
	Phone      string       `json:"telefono"`
	Summary    string       `json:"resumen"`
	Experience []Experience `json:"experiencia_laboral"`
	Education  []Education  `json:"educacion"`
	Skills     []string     `json:"habilidades"`
}

// SimilarityRequest compares a CV summary against a job description.
type SimilarityRequest struct {
	CVSummary      string `json:"cv_resumen"`
	JobDescription string `json:"job_description"`
}

// SimilarityResult is the backend's similarity verdict. Level is a
// categorical label used purely for display tiering.
type SimilarityResult struct {
	Score      float64 `json:"similitud"`
	Percentage float64 `json:"porcentaje"`
	Level      string  `json:"nivel"`
}

// QuestionRequest asks the backend to generate interview questions.
type QuestionRequest struct {
	CVSummary      string `json:"cv_resumen"`
	JobDescription string `json:"job_description"`
}

// QuestionSet is the generated interview question blob plus the echoed
// inputs. A non-empty Note marks a simulated fallback response.
type QuestionSet struct {
	Status         string `json:"status"`
	Questions      string `json:"preguntas"`
	CVSummary      string `json:"cv_resumen"`
	JobDescription string `json:"job_description"`
	Note           string `json:"nota,omitempty"`
}

// EvaluationRequest submits a question and the candidate's answer.
type EvaluationRequest struct {
	Question string `json:"pregunta"`
	Answer   string `json:"respuesta_candidato"`
}

// Evaluation carries the four 1-5 ratings plus commentary.
type Evaluation struct {
	Relevance      int    `json:"calificacion_relevancia"`
	TechnicalDepth int    `json:"calificacion_profundidad_tecnica"`
	Clarity        int    `json:"calificacion_claridad"`
	Solutions      int    `json:"calificacion_desafios_soluciones"`
	Comment        string `json:"comentario"`
	FollowUp       string `json:"pregunta_seguimiento"`
}

// AnswerEvaluation wraps an Evaluation with the echoed Q&A.
type AnswerEvaluation struct {
	Status           string     `json:"status"`
	Evaluation       Evaluation `json:"evaluacion"`
	OriginalQuestion string     `json:"pregunta_original"`
	EvaluatedAnswer  string     `json:"respuesta_evaluada"`
	Note             string     `json:"nota,omitempty"`
}

// CompleteAnalysis bundles extraction, similarity and question
// generation for one uploaded CV, plus the created application record.
type CompleteAnalysis struct {
	Similarity    SimilarityResult `json:"similitud"`
	Extracted     CVExtraction     `json:"datos_extraidos"`
	Questions     string           `json:"preguntas,omitempty"`
	CandidateID   int              `json:"candidato_id"`
	OfferID       int              `json:"oferta_id"`
	ApplicationID int              `json:"postulacion_id"`
}
