package backend

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"talentboard/internal/hiring"
)

// The file endpoints carry a binary field and cannot go through the
// JSON helper, so they build their own multipart bodies.

// ScoreDocument submits a CV file for one candidate/offer pair and
// returns the raw score plus the extracted text (legacy single-shot flow).
func (c *Client) ScoreDocument(ctx context.Context, candidateID, offerID int, filename string, file io.Reader) (*hiring.DocumentScore, error) {
	query := url.Values{
		"candidato_id": {strconv.Itoa(candidateID)},
		"oferta_id":    {strconv.Itoa(offerID)},
	}

	var score hiring.DocumentScore
	path := joinQuery("/procesamiento/calificar", query)
	if err := c.doMultipart(ctx, "score_document", path, filename, file, &score); err != nil {
		return nil, err
	}
	return &score, nil
}

// ExtractText submits a CV file with no offer context and returns only
// the extracted free text, used as the intermediate step before
// structured extraction. The scoring endpoint is reused with
// placeholder ids; only the text is kept.
func (c *Client) ExtractText(ctx context.Context, filename string, file io.Reader) (string, error) {
	score, err := c.ScoreDocument(ctx, 1, 1, filename, file)
	if err != nil {
		return "", err
	}
	return score.ExtractedText, nil
}

// CompleteAnalysis submits a CV file for the combined
// extraction + similarity + question flow and returns the bundle along
// with the created application record id.
func (c *Client) CompleteAnalysis(ctx context.Context, candidateID, offerID int, filename string, file io.Reader) (*hiring.CompleteAnalysis, error) {
	var analysis hiring.CompleteAnalysis
	path := fmt.Sprintf("/procesamiento/analisis-completo/%d/%d", candidateID, offerID)
	if err := c.doMultipart(ctx, "complete_analysis", path, filename, file, &analysis); err != nil {
		return nil, err
	}
	return &analysis, nil
}

func (c *Client) doMultipart(ctx context.Context, operation, path, filename string, file io.Reader, out any) error {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("copy upload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build %s request: %w", path, err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	return c.send(req, operation, path, out)
}
