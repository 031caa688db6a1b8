package player

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPClient talks to the learnhub backend REST API. It carries the caller's
// bearer token and maps HTTP failures onto the package's error kinds.
type HTTPClient struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewHTTPClient builds a client against baseURL, e.g. "http://localhost:8080".
func NewHTTPClient(baseURL, token string) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// envelope mirrors the backend's uniform response wrapper.
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *HTTPClient) FetchContent(ctx context.Context, courseID uint) (*ContentPayload, error) {
	var payload ContentPayload
	path := fmt.Sprintf("/api/courses/%d/content", courseID)
	if err := c.do(ctx, http.MethodGet, path, nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *HTTPClient) FetchLecture(ctx context.Context, courseID, lectureID uint) (*Lecture, error) {
	var lec Lecture
	path := fmt.Sprintf("/api/courses/%d/lectures/%d", courseID, lectureID)
	if err := c.do(ctx, http.MethodGet, path, nil, &lec); err != nil {
		return nil, err
	}
	return &lec, nil
}

func (c *HTTPClient) SaveProgress(ctx context.Context, courseID, lectureID uint, cp Checkpoint) error {
	path := fmt.Sprintf("/api/courses/%d/lectures/%d/progress", courseID, lectureID)
	body := map[string]any{
		"watch_time_seconds": cp.WatchTimeSeconds,
		"last_position":      cp.LastPosition,
		"completed":          cp.Completed,
	}
	return c.do(ctx, http.MethodPost, path, body, nil)
}

func (c *HTTPClient) CreateNote(ctx context.Context, courseID, lectureID uint, content string, timestamp int) (*Note, error) {
	var note Note
	path := fmt.Sprintf("/api/courses/%d/lectures/%d/notes", courseID, lectureID)
	body := map[string]any{"content": content, "timestamp": timestamp}
	if err := c.do(ctx, http.MethodPost, path, body, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

func (c *HTTPClient) UpdateNote(ctx context.Context, noteID uint, content string) (*Note, error) {
	var note Note
	path := fmt.Sprintf("/api/notes/%d", noteID)
	body := map[string]any{"content": content}
	if err := c.do(ctx, http.MethodPut, path, body, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

func (c *HTTPClient) DeleteNote(ctx context.Context, noteID uint) error {
	path := fmt.Sprintf("/api/notes/%d", noteID)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *HTTPClient) ListNotes(ctx context.Context, lectureID uint) ([]Note, error) {
	var notes []Note
	path := fmt.Sprintf("/api/notes?lecture_id=%d", lectureID)
	if err := c.do(ctx, http.MethodGet, path, nil, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return NewError(KindValidation, "encode request body", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return NewError(KindNetwork, "build request", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return NewError(KindNetwork, "request failed", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return NewError(KindNetwork, "read response", err)
	}

	var env envelope
	if len(raw) > 0 {
		// A non-JSON body (proxy error page, empty 204) is fine for error
		// mapping; the status code decides the kind either way.
		_ = json.Unmarshal(raw, &env)
	}

	if resp.StatusCode >= 400 {
		msg := env.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		switch resp.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return NewError(KindAccessDenied, msg, nil)
		case http.StatusNotFound:
			return NewError(KindNotFound, msg, nil)
		case http.StatusBadRequest:
			return NewError(KindValidation, msg, nil)
		default:
			return NewError(KindNetwork, msg, nil)
		}
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return NewError(KindNetwork, "decode response", err)
	}
	return nil
}
