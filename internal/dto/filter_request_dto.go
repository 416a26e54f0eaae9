package dto

import (
	"bytes"
	"encoding/json"

	"github.com/fadilmartias/assessment-board/internal/filter"
	"github.com/go-faster/errors"
	"github.com/tidwall/gjson"
)

var (
	ErrInvalidJSON    = errors.New("request body is not valid JSON")
	ErrMissingFilters = errors.New("filters must be an object")
)

// ParseFilterRequest reads a {"filters": {...}} body into a spec for schema.
func ParseFilterRequest(body []byte, schema filter.Schema) (filter.Spec, error) {
	if !gjson.ValidBytes(body) {
		return nil, ErrInvalidJSON
	}
	filters := gjson.GetBytes(body, "filters")
	if !filters.IsObject() {
		return nil, ErrMissingFilters
	}
	return filter.ParseSpec(schema, filters), nil
}

type LookupRequestDTO struct {
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
	Page      int     `json:"page"`
	PageSize  int     `json:"page_size"`
}

func NewLookupRequestDTO() LookupRequestDTO {
	return LookupRequestDTO{Page: filter.DefaultPage, PageSize: filter.DefaultPageSize}
}

// ParseLookupRequest decodes a lookup body regardless of Content-Type. An
// empty body keeps the defaults.
func ParseLookupRequest(body []byte) (LookupRequestDTO, error) {
	req := NewLookupRequestDTO()
	if len(bytes.TrimSpace(body)) == 0 {
		return req, nil
	}
	if err := json.Unmarshal(body, &req); err != nil {
		return req, errors.Wrap(ErrInvalidJSON, err.Error())
	}
	return req, nil
}

func (d LookupRequestDTO) Query() filter.LookupQuery {
	q := filter.LookupQuery{Page: d.Page, PageSize: d.PageSize}
	if d.StartDate != nil {
		q.StartDate = *d.StartDate
	}
	if d.EndDate != nil {
		q.EndDate = *d.EndDate
	}
	return q
}
