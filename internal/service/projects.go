package service

import (
	"context"
	"sync"

	"github.com/castlemill/tms-proxy/internal/domain/model"
	"github.com/castlemill/tms-proxy/internal/reqctx"
)

// ProjectFetcher is the slice of the upstream client project assembly uses.
type ProjectFetcher interface {
	GetProject(ctx context.Context, token, projectID string) (map[string]interface{}, error)
	ListLanguages(ctx context.Context, token, projectID string) ([]model.Language, error)
}

// ProjectService assembles the project detail record.
type ProjectService interface {
	// Detail fetches project metadata and languages concurrently and merges
	// them flat: every top-level metadata field is preserved and the
	// languages array is attached as one additional field. Unlike the
	// aggregation read path, a failure of either lookup fails the whole
	// assembly.
	Detail(ctx context.Context, rc reqctx.RequestContext) (map[string]interface{}, error)
}

type projectService struct {
	api ProjectFetcher
}

// NewProjectService creates a ProjectService backed by the given fetcher.
func NewProjectService(api ProjectFetcher) ProjectService {
	return &projectService{api: api}
}

// Detail implements ProjectService.
func (s *projectService) Detail(ctx context.Context, rc reqctx.RequestContext) (map[string]interface{}, error) {
	var (
		wg        sync.WaitGroup
		record    map[string]interface{}
		languages []model.Language
		metaErr   error
		langsErr  error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		record, metaErr = s.api.GetProject(ctx, rc.Token, rc.ProjectID)
	}()
	go func() {
		defer wg.Done()
		languages, langsErr = s.api.ListLanguages(ctx, rc.Token, rc.ProjectID)
	}()
	wg.Wait()

	if metaErr != nil {
		return nil, metaErr
	}
	if langsErr != nil {
		return nil, langsErr
	}

	if record == nil {
		record = make(map[string]interface{})
	}
	if languages == nil {
		languages = []model.Language{}
	}
	record["languages"] = languages
	return record, nil
}
