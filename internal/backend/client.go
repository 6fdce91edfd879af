package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"talentboard/internal/hiring"
	"talentboard/internal/metrics"
)

// Client is a typed wrapper over the hiring backend's REST surface. It
// performs no retries and keeps no cache: every read reflects the
// latest server state.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New builds a Client for the given base URL. The timeout bounds every
// request including document uploads.
func New(baseURL string, timeout time.Duration) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("backend base url missing")
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// GetCompanies lists all companies.
func (c *Client) GetCompanies(ctx context.Context) ([]hiring.Company, error) {
	var companies []hiring.Company
	if err := c.doJSON(ctx, "get_companies", http.MethodGet, "/empresas", nil, &companies); err != nil {
		return nil, err
	}
	return companies, nil
}

// GetCompany fetches one company by id.
func (c *Client) GetCompany(ctx context.Context, id int) (*hiring.Company, error) {
	var company hiring.Company
	if err := c.doJSON(ctx, "get_company", http.MethodGet, "/empresas/"+strconv.Itoa(id), nil, &company); err != nil {
		return nil, err
	}
	return &company, nil
}

// CreateCompany registers a new company.
func (c *Client) CreateCompany(ctx context.Context, payload hiring.CompanyCreate) (*hiring.Company, error) {
	var company hiring.Company
	if err := c.doJSON(ctx, "create_company", http.MethodPost, "/empresas", payload, &company); err != nil {
		return nil, err
	}
	return &company, nil
}

// GetOffers lists all job offers.
func (c *Client) GetOffers(ctx context.Context) ([]hiring.Offer, error) {
	var offers []hiring.Offer
	if err := c.doJSON(ctx, "get_offers", http.MethodGet, "/ofertas", nil, &offers); err != nil {
		return nil, err
	}
	return offers, nil
}

// CreateOffer registers a new job offer.
func (c *Client) CreateOffer(ctx context.Context, payload hiring.OfferCreate) (*hiring.Offer, error) {
	var offer hiring.Offer
	if err := c.doJSON(ctx, "create_offer", http.MethodPost, "/ofertas", payload, &offer); err != nil {
		return nil, err
	}
	return &offer, nil
}

// GetCandidates lists all candidates.
func (c *Client) GetCandidates(ctx context.Context) ([]hiring.Candidate, error) {
	var candidates []hiring.Candidate
	if err := c.doJSON(ctx, "get_candidates", http.MethodGet, "/candidatos", nil, &candidates); err != nil {
		return nil, err
	}
	return candidates, nil
}

// CreateCandidate registers a new candidate.
func (c *Client) CreateCandidate(ctx context.Context, payload hiring.CandidateCreate) (*hiring.Candidate, error) {
	var candidate hiring.Candidate
	if err := c.doJSON(ctx, "create_candidate", http.MethodPost, "/candidatos", payload, &candidate); err != nil {
		return nil, err
	}
	return &candidate, nil
}

// GetRankedCandidates returns the candidates for one offer sorted by
// the server-computed compatibility score.
func (c *Client) GetRankedCandidates(ctx context.Context, offerID int) ([]hiring.RankedCandidate, error) {
	var ranked []hiring.RankedCandidate
	if err := c.doJSON(ctx, "get_ranking", http.MethodGet, "/seleccion/oferta/"+strconv.Itoa(offerID), nil, &ranked); err != nil {
		return nil, err
	}
	return ranked, nil
}

// ExtractCV turns raw CV text into structured fields.
func (c *Client) ExtractCV(ctx context.Context, text string) (*hiring.CVExtraction, error) {
	var extraction hiring.CVExtraction
	req := hiring.ExtractionRequest{Text: text}
	if err := c.doJSON(ctx, "extract_cv", http.MethodPost, "/procesamiento/extraer-cv", req, &extraction); err != nil {
		return nil, err
	}
	return &extraction, nil
}

// Similarity scores a CV summary against a job description.
func (c *Client) Similarity(ctx context.Context, req hiring.SimilarityRequest) (*hiring.SimilarityResult, error) {
	var result hiring.SimilarityResult
	if err := c.doJSON(ctx, "similarity", http.MethodPost, "/procesamiento/similitud", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GenerateQuestions produces interview questions for a CV/offer pair.
func (c *Client) GenerateQuestions(ctx context.Context, req hiring.QuestionRequest) (*hiring.QuestionSet, error) {
	var set hiring.QuestionSet
	if err := c.doJSON(ctx, "generate_questions", http.MethodPost, "/procesamiento/generar-preguntas", req, &set); err != nil {
		return nil, err
	}
	return &set, nil
}

// EvaluateAnswer rates a candidate's answer to an interview question.
func (c *Client) EvaluateAnswer(ctx context.Context, req hiring.EvaluationRequest) (*hiring.AnswerEvaluation, error) {
	var evaluation hiring.AnswerEvaluation
	if err := c.doJSON(ctx, "evaluate_answer", http.MethodPost, "/procesamiento/evaluar-respuesta", req, &evaluation); err != nil {
		return nil, err
	}
	return &evaluation, nil
}

// doJSON issues a request with an optional JSON body and decodes the
// JSON response into out. Non-2xx statuses surface as *APIError.
func (c *Client) doJSON(ctx context.Context, operation, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", path, err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build %s request: %w", path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	return c.send(req, operation, path, out)
}

// send executes the request and decodes the response. Shared by the
// JSON and multipart paths.
func (c *Client) send(req *http.Request, operation, path string, out any) error {
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ObserveBackendRequest(operation, "transport_error", time.Since(start))
		return fmt.Errorf("request %s: %w", path, err)
	}
	defer resp.Body.Close()

	metrics.ObserveBackendRequest(operation, strconv.Itoa(resp.StatusCode), time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

func joinQuery(path string, query url.Values) string {
	if len(query) == 0 {
		return path
	}
	return path + "?" + query.Encode()
}
