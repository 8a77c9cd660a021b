package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"pointview/internal/cloud"
)

// HTTP reads shapes from a backend at BaseURL.
type HTTP struct {
	BaseURL string
	Client  *http.Client
}

func NewHTTP(baseURL string) *HTTP {
	return &HTTP{BaseURL: strings.TrimRight(baseURL, "/"), Client: http.DefaultClient}
}

func (h *HTTP) Points(ctx context.Context, name cloud.ShapeName) ([]cloud.Point, error) {
	var pts []cloud.Point
	if err := h.getJSON(ctx, pointsPath(name), &pts); err != nil {
		return nil, err
	}
	return pts, nil
}

func (h *HTTP) Stats(ctx context.Context, name cloud.ShapeName) (cloud.ShapeStats, error) {
	var st cloud.ShapeStats
	if err := h.getJSON(ctx, statsPath(name), &st); err != nil {
		return cloud.ShapeStats{}, err
	}
	return st, nil
}

func (h *HTTP) getJSON(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.BaseURL+"/"+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	c := h.Client
	if c == nil {
		c = http.DefaultClient
	}
	resp, err := c.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("GET %s: %s", path, resp.Status)
	}
	if err := decodeStrict(resp.Body, v); err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	return nil
}

// decodeStrict decodes exactly one JSON value; "null" is rejected.
func decodeStrict(r io.Reader, v any) error {
	var raw json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if strings.TrimSpace(string(raw)) == "null" {
		return fmt.Errorf("decode: null body")
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}
