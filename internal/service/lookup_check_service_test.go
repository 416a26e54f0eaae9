package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fadilmartias/assessment-board/internal/service"
	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupServer(t *testing.T, rows []map[string]any, status int, bodies *[]map[string]any) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/nikeeta-lookup", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		*bodies = append(*bodies, body)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data":      rows,
			"total":     len(rows),
			"page":      1,
			"page_size": 50,
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestLookupCheck_Passes(t *testing.T) {
	var bodies []map[string]any
	srv := lookupServer(t, []map[string]any{
		{"candidate_name": "ana", "task_status": nil},
		{"candidate_name": "ben", "task_status": ""},
	}, http.StatusOK, &bodies)

	now := time.Date(2024, 3, 31, 15, 0, 0, 0, time.UTC)
	results, err := service.NewLookupCheckService(srv.URL, time.Second).Run(context.Background(), now)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, int64(2), results[0].Total)
	assert.Equal(t, 2, results[0].Returned)
	assert.Zero(t, results[1].Offending)

	require.Len(t, bodies, 2)
	assert.Empty(t, bodies[0])
	assert.Equal(t, "2024-03-01", bodies[1]["start_date"])
	assert.Equal(t, "2024-03-31", bodies[1]["end_date"])
	assert.Equal(t, float64(10), bodies[1]["page_size"])
}

func TestLookupCheck_DetectsStatusLeak(t *testing.T) {
	var bodies []map[string]any
	srv := lookupServer(t, []map[string]any{
		{"candidate_name": "ana", "task_status": "completed"},
	}, http.StatusOK, &bodies)

	results, err := service.NewLookupCheckService(srv.URL, time.Second).Run(context.Background(), time.Now())
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrStatusLeak))
	require.Len(t, results, 1)
	assert.Equal(t, 1, results[0].Offending)
	assert.Len(t, bodies, 1, "stops at the first failing check")
}

func TestLookupCheck_ServerError(t *testing.T) {
	var bodies []map[string]any
	srv := lookupServer(t, nil, http.StatusInternalServerError, &bodies)

	_, err := service.NewLookupCheckService(srv.URL, time.Second).Run(context.Background(), time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 500")
}
