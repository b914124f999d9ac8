package submission

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"sportify/models"
)

// HTTPSubmitter posts the payload to a remote complex-creation endpoint.
type HTTPSubmitter struct {
	URL    string
	Token  string
	Client *http.Client
	Logger *zap.Logger
}

// NewHTTPSubmitter builds a submitter with its own bounded client.
func NewHTTPSubmitter(url, token string, timeout time.Duration, logger *zap.Logger) *HTTPSubmitter {
	return &HTTPSubmitter{
		URL:    url,
		Token:  token,
		Client: &http.Client{Timeout: timeout},
		Logger: logger,
	}
}

func (s *HTTPSubmitter) Submit(ctx context.Context, operatorID string, payload models.SubmissionPayload) (*models.SubmissionResult, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode submission payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.URL, bytes.NewReader(body))
	if err != nil {
		return nil, &SubmissionError{Message: "build request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Operator-ID", operatorID)
	if s.Token != "" {
		req.Header.Set("Authorization", "Bearer "+s.Token)
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		s.Logger.Error("Submission transport failure", zap.String("url", s.URL), zap.Error(err))
		return nil, &SubmissionError{Message: "backend unreachable", Err: err}
	}
	defer resp.Body.Close()

	var result models.SubmissionResult
	decodeErr := json.NewDecoder(resp.Body).Decode(&result)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := result.Message
		if msg == "" {
			msg = fmt.Sprintf("backend returned status %d", resp.StatusCode)
		}
		s.Logger.Warn("Submission rejected by backend", zap.Int("status", resp.StatusCode), zap.String("message", msg))
		return nil, &SubmissionError{StatusCode: resp.StatusCode, Message: msg}
	}
	if decodeErr != nil {
		return nil, &SubmissionError{StatusCode: resp.StatusCode, Message: "invalid backend response", Err: decodeErr}
	}
	if !result.Success {
		msg := result.Message
		if msg == "" {
			msg = "backend did not acknowledge the submission"
		}
		return nil, &SubmissionError{StatusCode: resp.StatusCode, Message: msg}
	}
	return &result, nil
}
