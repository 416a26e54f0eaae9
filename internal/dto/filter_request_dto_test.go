package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/fadilmartias/assessment-board/internal/dto"
	"github.com/fadilmartias/assessment-board/internal/filter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilterRequest(t *testing.T) {
	spec, err := dto.ParseFilterRequest([]byte(`{"filters": {"sender": "hr@acme.io", "bogus": 1}}`), filter.AssessmentSchema)
	require.NoError(t, err)
	assert.Equal(t, filter.Spec{filter.Sender: "hr@acme.io"}, spec)

	_, err = dto.ParseFilterRequest([]byte(`not json`), filter.AssessmentSchema)
	assert.ErrorIs(t, err, dto.ErrInvalidJSON)

	for _, body := range []string{`{}`, `{"filters": null}`, `{"filters": ["technology"]}`} {
		_, err = dto.ParseFilterRequest([]byte(body), filter.ResponseSchema)
		assert.ErrorIs(t, err, dto.ErrMissingFilters, body)
	}
}

func TestLookupRequestDTO(t *testing.T) {
	req := dto.NewLookupRequestDTO()
	assert.Equal(t, filter.LookupQuery{Page: 1, PageSize: 50}, req.Query())

	require.NoError(t, json.Unmarshal([]byte(`{"start_date": "2024-01-01", "end_date": null, "page": 3}`), &req))
	assert.Equal(t, filter.LookupQuery{StartDate: "2024-01-01", Page: 3, PageSize: 50}, req.Query())
}

func TestParseLookupRequest(t *testing.T) {
	for _, body := range []string{"", "  \n"} {
		req, err := dto.ParseLookupRequest([]byte(body))
		require.NoError(t, err)
		assert.Equal(t, filter.LookupQuery{Page: 1, PageSize: 50}, req.Query())
	}

	req, err := dto.ParseLookupRequest([]byte(`{"end_date": "2024-02-01", "page_size": 10}`))
	require.NoError(t, err)
	assert.Equal(t, filter.LookupQuery{EndDate: "2024-02-01", Page: 1, PageSize: 10}, req.Query())

	for _, body := range []string{`{"page": "two"}`, `not json`} {
		_, err = dto.ParseLookupRequest([]byte(body))
		assert.ErrorIs(t, err, dto.ErrInvalidJSON, body)
	}
}
