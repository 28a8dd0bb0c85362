// Package charts renders expense charts through the QuickChart HTTP API,
// mirroring Chart.js configuration objects.
package charts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	"github.com/peymanh/kharjbot/internal/domain"
	"github.com/peymanh/kharjbot/internal/format"
)

const defaultBaseURL = "https://quickchart.io"

var palette = []string{
	"#FF6384", "#36A2EB", "#FFCE56", "#4BC0C0", "#9966FF", "#FF9F40",
	"#E7E9ED", "#71B37C", "#EC932F", "#e67e22", "#2ecc71", "#f1c40f",
}

// Renderer renders PNG charts via a QuickChart-compatible endpoint.
type Renderer struct {
	baseURL string
	client  *http.Client
}

// Option customizes a Renderer.
type Option func(*Renderer)

// WithBaseURL overrides the QuickChart endpoint (used in tests).
func WithBaseURL(url string) Option {
	return func(r *Renderer) { r.baseURL = url }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(r *Renderer) { r.client = c }
}

// NewRenderer creates a QuickChart renderer with sane defaults.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 20 * time.Second},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type dataset struct {
	Label           string    `json:"label"`
	Data            []float64 `json:"data"`
	BackgroundColor any       `json:"backgroundColor"`
}

type chartData struct {
	Labels   []string  `json:"labels"`
	Datasets []dataset `json:"datasets"`
}

type chartConfig struct {
	Type    string         `json:"type"`
	Data    chartData      `json:"data"`
	Options map[string]any `json:"options,omitempty"`
}

type renderRequest struct {
	Chart           chartConfig `json:"chart"`
	Width           int         `json:"width"`
	Height          int         `json:"height"`
	BackgroundColor string      `json:"backgroundColor"`
	Format          string      `json:"format"`
}

// CategoryPie renders the category-share breakdown of the given expenses.
// It declines (nil, nil) when there is nothing to draw.
func (r *Renderer) CategoryPie(ctx context.Context, expenses []domain.Expense) ([]byte, error) {
	labels, data := sumByCategory(expenses)
	if len(labels) == 0 {
		return nil, nil
	}

	req := renderRequest{
		Chart: chartConfig{
			Type: "pie",
			Data: chartData{
				Labels: labels,
				Datasets: []dataset{{
					Label:           "Expenses",
					Data:            data,
					BackgroundColor: palette[:min(len(labels), len(palette))],
				}},
			},
			Options: map[string]any{
				"title": map[string]any{"display": true, "text": "Expenses by Category"},
			},
		},
		Width:           500,
		Height:          300,
		BackgroundColor: "white",
		Format:          "png",
	}
	return r.render(ctx, req)
}

// DailyBar renders the per-day spending trend of the given expenses.
// It declines (nil, nil) when there is nothing to draw.
func (r *Renderer) DailyBar(ctx context.Context, expenses []domain.Expense) ([]byte, error) {
	labels, data := sumByDay(expenses)
	if len(labels) == 0 {
		return nil, nil
	}

	req := renderRequest{
		Chart: chartConfig{
			Type: "bar",
			Data: chartData{
				Labels: labels,
				Datasets: []dataset{{
					Label:           "Daily Spending",
					Data:            data,
					BackgroundColor: "#36A2EB",
				}},
			},
			Options: map[string]any{
				"title": map[string]any{"display": true, "text": "Daily Spending Trend"},
			},
		},
		Width:           600,
		Height:          400,
		BackgroundColor: "white",
		Format:          "png",
	}
	return r.render(ctx, req)
}

func (r *Renderer) render(ctx context.Context, req renderRequest) ([]byte, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode chart config: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/chart", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build chart request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("render chart: unexpected status %s", resp.Status)
	}

	png, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read chart image: %w", err)
	}
	return png, nil
}

func sumByCategory(expenses []domain.Expense) ([]string, []float64) {
	byCategory := make(map[string]float64, len(expenses))
	for _, e := range expenses {
		byCategory[e.Category] += e.Amount
	}

	labels := make([]string, 0, len(byCategory))
	for c := range byCategory {
		labels = append(labels, c)
	}
	sort.Strings(labels)

	data := make([]float64, len(labels))
	for i, c := range labels {
		data[i] = byCategory[c]
	}
	return labels, data
}

func sumByDay(expenses []domain.Expense) ([]string, []float64) {
	byDay := make(map[string]float64, len(expenses))
	for _, e := range expenses {
		byDay[format.Date(e.SpentAt)] += e.Amount
	}

	labels := make([]string, 0, len(byDay))
	for d := range byDay {
		labels = append(labels, d)
	}
	sort.Strings(labels)

	data := make([]float64, len(labels))
	for i, d := range labels {
		data[i] = byDay[d]
	}
	return labels, data
}
