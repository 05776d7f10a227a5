package service

import (
	"context"
	"time"

	"mod-registry-backend/internal/database/models"
	apperrors "mod-registry-backend/internal/errors"
	"mod-registry-backend/internal/repository"
	"mod-registry-backend/internal/search"
)

// maxQueryLength bounds the accepted search query
const maxQueryLength = 64

// defaultPerPage is the page size when the caller does not set one
const defaultPerPage = 30

// SearchService handles ranked, fuzzy-filtered, cursor-paginated search
type SearchService struct {
	mods    repository.ModRepositoryInterface
	matcher *search.Matcher
}

// NewSearchService creates a new search service
func NewSearchService(mods repository.ModRepositoryInterface, matcher *search.Matcher) *SearchService {
	return &SearchService{mods: mods, matcher: matcher}
}

// SearchRequest carries the typed search parameters
type SearchRequest struct {
	Query        string              `json:"query"`
	SortBy       models.SortBy       `json:"sort_by"`
	Reverse      bool                `json:"reverse"`
	MinTrust     models.Verification `json:"verification"`
	NamesOnly    bool                `json:"names_only"`
	KeywordsOnly bool                `json:"keywords_only"`
	PerPage      int                 `json:"per_page"`
	Before       *string             `json:"before,omitempty"`
	After        *string             `json:"after,omitempty"`
}

// SearchResult is one row of a search response. The checksum doubles as the
// pagination cursor for the next page.
type SearchResult struct {
	Checksum     string              `json:"checksum"`
	Name         string              `json:"name"`
	Version      string              `json:"version"`
	Description  string              `json:"description"`
	Keywords     []string            `json:"keywords,omitempty"`
	Verification models.Verification `json:"verification"`
	Downloads    int64               `json:"downloads"`
	Uploaded     string              `json:"uploaded"`
}

// Search scans the catalog in storage order and accumulates matches.
//
// Cursors anchor to checksums rather than offsets: `after` suppresses
// emission until it has been seen (exclusive), `before` ends the scan the
// moment it is seen (exclusive). Rows inserted mid-scan therefore cannot
// shift already-served pages.
func (s *SearchService) Search(ctx context.Context, req *SearchRequest) ([]SearchResult, error) {
	// Both restrictions at once leave no searchable field.
	if req.NamesOnly && req.KeywordsOnly {
		return nil, apperrors.ErrNoContent
	}
	if len(req.Query) > maxQueryLength {
		return nil, apperrors.ErrQueryTooLong
	}

	sortBy := req.SortBy
	if !sortBy.IsValid() {
		sortBy = models.SortByName
	}
	perPage := req.PerPage
	if perPage <= 0 {
		perPage = defaultPerPage
	}

	rows, err := s.mods.ListOrdered(sortBy, req.Reverse)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}

	results := make([]SearchResult, 0, perPage)
	emitting := req.After == nil

	for i := range rows {
		row := &rows[i]

		if req.Before != nil && row.Checksum == *req.Before {
			break
		}
		if !emitting {
			if req.After != nil && row.Checksum == *req.After {
				emitting = true
			}
			continue
		}

		if row.Verification.TrustRank() < req.MinTrust.TrustRank() {
			continue
		}

		matched, err := s.matcher.Match(ctx, req.Query, search.Candidate{
			Name:        row.Name,
			Description: row.Description,
			Keywords:    row.Keywords,
		}, req.NamesOnly, req.KeywordsOnly)
		if err != nil {
			return nil, apperrors.NewInternal(err)
		}
		if !matched {
			continue
		}

		results = append(results, SearchResult{
			Checksum:     row.Checksum,
			Name:         row.Name,
			Version:      row.Version,
			Description:  row.Description,
			Keywords:     row.Keywords,
			Verification: row.Verification,
			Downloads:    row.Downloads,
			Uploaded:     row.Uploaded.Format(time.RFC3339),
		})
		if len(results) >= perPage {
			break
		}
	}

	if len(results) == 0 {
		return nil, apperrors.ErrNoContent
	}
	return results, nil
}
