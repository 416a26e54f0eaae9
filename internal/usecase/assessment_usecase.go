package usecase

import (
	"context"

	"github.com/fadilmartias/assessment-board/internal/filter"
	"github.com/fadilmartias/assessment-board/internal/metrics"
	"github.com/fadilmartias/assessment-board/internal/model"
	"github.com/go-faster/errors"
)

const (
	datasetAssessments = "assessments"
	datasetResponses   = "responses"
)

// RowSource hands out fresh snapshots of both datasets.
type RowSource interface {
	Assessments(ctx context.Context) ([]model.AssessmentRow, error)
	Responses(ctx context.Context) ([]model.ResponseRow, error)
}

// AssessmentUsecase fetches one snapshot per call and runs the requested
// view over it. It holds no per-request state.
type AssessmentUsecase struct {
	source  RowSource
	metrics *metrics.Recorder
}

func NewAssessmentUsecase(source RowSource, recorder *metrics.Recorder) *AssessmentUsecase {
	return &AssessmentUsecase{source: source, metrics: recorder}
}

func (uc *AssessmentUsecase) Assessments(ctx context.Context) ([]model.AssessmentRow, error) {
	rows, err := uc.source.Assessments(ctx)
	uc.metrics.ObserveFetch(datasetAssessments, len(rows), err)
	if err != nil {
		return nil, errors.Wrap(err, "fetch assessments")
	}
	if rows == nil {
		rows = []model.AssessmentRow{}
	}
	return rows, nil
}

func (uc *AssessmentUsecase) Responses(ctx context.Context) ([]model.ResponseRow, error) {
	rows, err := uc.source.Responses(ctx)
	uc.metrics.ObserveFetch(datasetResponses, len(rows), err)
	if err != nil {
		return nil, errors.Wrap(err, "fetch responses")
	}
	if rows == nil {
		rows = []model.ResponseRow{}
	}
	return rows, nil
}

func (uc *AssessmentUsecase) FilterAssessments(ctx context.Context, spec filter.Spec) ([]model.AssessmentRow, error) {
	rows, err := uc.Assessments(ctx)
	if err != nil {
		return nil, err
	}
	out := filter.Apply(rows, spec)
	uc.metrics.ObserveResult("filter_assessments", len(out))
	return out, nil
}

func (uc *AssessmentUsecase) FilterResponses(ctx context.Context, spec filter.Spec) ([]model.ResponseRow, error) {
	rows, err := uc.Responses(ctx)
	if err != nil {
		return nil, err
	}
	out := filter.Apply(rows, spec)
	uc.metrics.ObserveResult("filter_responses", len(out))
	return out, nil
}

func (uc *AssessmentUsecase) Pending(ctx context.Context, spec filter.Spec) ([]model.ResponseRow, error) {
	rows, err := uc.Responses(ctx)
	if err != nil {
		return nil, err
	}
	out := filter.Pending(rows, spec)
	uc.metrics.ObserveResult("pending", len(out))
	return out, nil
}

func (uc *AssessmentUsecase) Lookup(ctx context.Context, q filter.LookupQuery) (filter.Page[model.ResponseRow], error) {
	rows, err := uc.Responses(ctx)
	if err != nil {
		return filter.Page[model.ResponseRow]{}, err
	}
	page := filter.Lookup(rows, q)
	uc.metrics.ObserveResult("lookup", len(page.Data))
	return page, nil
}

func (uc *AssessmentUsecase) AssessmentOptions(ctx context.Context) (map[filter.Field][]string, error) {
	rows, err := uc.Assessments(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Options(rows, filter.AssessmentSchema), nil
}

func (uc *AssessmentUsecase) ResponseOptions(ctx context.Context) (map[filter.Field][]string, error) {
	rows, err := uc.Responses(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Options(rows, filter.ResponseSchema), nil
}
