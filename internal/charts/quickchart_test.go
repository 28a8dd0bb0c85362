package charts

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peymanh/kharjbot/internal/domain"
)

func day(d int) time.Time {
	return time.Date(2025, time.March, d, 14, 30, 0, 0, time.Local)
}

func captureServer(t *testing.T, captured *renderRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chart", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(captured))
		w.Write([]byte("\x89PNG-bytes"))
	}))
}

func TestCategoryPieAggregatesByCategory(t *testing.T) {
	var captured renderRequest
	srv := captureServer(t, &captured)
	defer srv.Close()

	r := NewRenderer(WithBaseURL(srv.URL))
	png, err := r.CategoryPie(context.Background(), []domain.Expense{
		{Amount: 100, Category: "Food", SpentAt: day(1)},
		{Amount: 50, Category: "Transport", SpentAt: day(1)},
		{Amount: 25, Category: "Food", SpentAt: day(2)},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, png)

	assert.Equal(t, "pie", captured.Chart.Type)
	assert.Equal(t, 500, captured.Width)
	assert.Equal(t, 300, captured.Height)
	assert.Equal(t, "white", captured.BackgroundColor)
	assert.Equal(t, []string{"Food", "Transport"}, captured.Chart.Data.Labels)
	require.Len(t, captured.Chart.Data.Datasets, 1)
	assert.Equal(t, []float64{125, 50}, captured.Chart.Data.Datasets[0].Data)
}

func TestDailyBarAggregatesByDay(t *testing.T) {
	var captured renderRequest
	srv := captureServer(t, &captured)
	defer srv.Close()

	r := NewRenderer(WithBaseURL(srv.URL))
	png, err := r.DailyBar(context.Background(), []domain.Expense{
		{Amount: 10, Category: "Food", SpentAt: day(3)},
		{Amount: 20, Category: "Bills", SpentAt: day(1)},
		{Amount: 30, Category: "Food", SpentAt: day(3)},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, png)

	assert.Equal(t, "bar", captured.Chart.Type)
	assert.Equal(t, 600, captured.Width)
	assert.Equal(t, 400, captured.Height)
	assert.Equal(t, []string{"2025-03-01", "2025-03-03"}, captured.Chart.Data.Labels)
	assert.Equal(t, []float64{20, 40}, captured.Chart.Data.Datasets[0].Data)
}

func TestRendererDeclinesOnEmpty(t *testing.T) {
	r := NewRenderer(WithBaseURL("http://unreachable.invalid"))

	png, err := r.CategoryPie(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, png)

	png, err = r.DailyBar(context.Background(), []domain.Expense{})
	require.NoError(t, err)
	assert.Nil(t, png)
}

func TestRenderReportsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad config", http.StatusBadRequest)
	}))
	defer srv.Close()

	r := NewRenderer(WithBaseURL(srv.URL))
	_, err := r.CategoryPie(context.Background(), []domain.Expense{{Amount: 1, Category: "Food", SpentAt: day(1)}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status")
}
