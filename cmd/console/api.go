package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/jwebster45206/chronicle-engine/internal/handlers"
)

// apiClient talks to the chronicle API.
type apiClient struct {
	client  *http.Client
	baseURL string
}

func testConnection(client *http.Client, baseURL string) bool {
	resp, err := client.Get(baseURL + "/health")
	if err != nil {
		return false
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()
	return resp.StatusCode == http.StatusOK
}

// do sends body (nil, raw bytes or a value to encode as JSON) and decodes a
// response with the wanted status into out.
func (c *apiClient) do(method, path string, body any, want int, out any) error {
	var (
		reader      io.Reader
		contentType string
	)
	switch b := body.(type) {
	case nil:
	case []byte:
		reader = bytes.NewReader(b)
		contentType = "application/octet-stream"
	default:
		jsonData, err := json.Marshal(b)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(jsonData)
		contentType = "application/json"
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != want {
		var errorResp handlers.ErrorResponse
		if err := json.Unmarshal(data, &errorResp); err != nil || errorResp.Error == "" {
			return fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(data))
		}
		return fmt.Errorf("%s %s failed: %s", method, path, errorResp.Error)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

func (c *apiClient) uploadSave(name string, data []byte) (*handlers.CreateTimelineResponse, error) {
	var resp handlers.CreateTimelineResponse
	path := "/v1/timelines?name=" + url.QueryEscape(name)
	if err := c.do(http.MethodPost, path, data, http.StatusCreated, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *apiClient) getRequirements(id uuid.UUID) (*handlers.RequirementsResponse, error) {
	var resp handlers.RequirementsResponse
	if err := c.do(http.MethodGet, "/v1/timelines/"+id.String()+"/requirements", nil, http.StatusOK, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *apiClient) putOverrides(id uuid.UUID, answers map[string]string) (*handlers.RequirementsResponse, error) {
	var resp handlers.RequirementsResponse
	if err := c.do(http.MethodPut, "/v1/timelines/"+id.String()+"/overrides", answers, http.StatusOK, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *apiClient) renderChronicle(id uuid.UUID, req handlers.ChronicleRequest) (*handlers.ChronicleResponse, error) {
	var resp handlers.ChronicleResponse
	if err := c.do(http.MethodPost, "/v1/timelines/"+id.String()+"/chronicle", req, http.StatusOK, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
