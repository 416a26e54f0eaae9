package service

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

var ErrStatusLeak = errors.New("lookup returned rows with a task status")

type LookupCheckServiceInterface interface {
	Run(ctx context.Context, now time.Time) ([]LookupCheckResult, error)
}

// LookupCheckResult summarises one call against /nikeeta-lookup.
type LookupCheckResult struct {
	Name      string
	Total     int64
	PageSize  int64
	Returned  int
	Offending int
}

// LookupCheckService exercises a running server's lookup endpoint.
type LookupCheckService struct {
	client *resty.Client
}

func NewLookupCheckService(baseURL string, timeout time.Duration) *LookupCheckService {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")
	return &LookupCheckService{client: client}
}

// Run posts an unfiltered lookup and a last-30-days lookup. It fails on a
// non-200 response or when any returned row carries a task status.
func (s *LookupCheckService) Run(ctx context.Context, now time.Time) ([]LookupCheckResult, error) {
	checks := []struct {
		name string
		body map[string]any
	}{
		{name: "unfiltered", body: map[string]any{}},
		{name: "last 30 days", body: map[string]any{
			"start_date": now.AddDate(0, 0, -30).Format("2006-01-02"),
			"end_date":   now.Format("2006-01-02"),
			"page":       1,
			"page_size":  10,
		}},
	}

	results := make([]LookupCheckResult, 0, len(checks))
	for _, check := range checks {
		res, err := s.post(ctx, check.name, check.body)
		if err != nil {
			return results, err
		}
		results = append(results, res)
		if res.Offending > 0 {
			return results, errors.Wrapf(ErrStatusLeak, "%s: %d rows", check.name, res.Offending)
		}
	}
	return results, nil
}

func (s *LookupCheckService) post(ctx context.Context, name string, body map[string]any) (LookupCheckResult, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(body).
		Post("/nikeeta-lookup")
	if err != nil {
		return LookupCheckResult{}, errors.Wrapf(err, "%s: request", name)
	}
	if resp.StatusCode() != 200 {
		return LookupCheckResult{}, errors.Errorf("%s: unexpected status %d: %s", name, resp.StatusCode(), resp.String())
	}

	parsed := gjson.ParseBytes(resp.Body())
	data := parsed.Get("data").Array()
	res := LookupCheckResult{
		Name:     name,
		Total:    parsed.Get("total").Int(),
		PageSize: parsed.Get("page_size").Int(),
		Returned: len(data),
	}
	for _, row := range data {
		if row.Get("task_status").String() != "" {
			res.Offending++
		}
	}
	return res, nil
}
