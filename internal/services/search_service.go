package services

import (
	"strings"

	"jobmatch_backend/internal/models"
	"jobmatch_backend/internal/repositories"
	"jobmatch_backend/internal/search"
	"jobmatch_backend/internal/services/dto"
)

type SearchService interface {
	SearchCandidates(req *dto.SearchCandidatesRequest) (*dto.SearchCandidatesResponse, error)
}

type searchService struct {
	candidateRepo repositories.CandidateRepository
	userRepo      repositories.UserRepository
}

func NewSearchService(
	candidateRepo repositories.CandidateRepository,
	userRepo repositories.UserRepository,
) SearchService {
	return &searchService{
		candidateRepo: candidateRepo,
		userRepo:      userRepo,
	}
}

// SearchCandidates loads the public candidate pool, rebuilds the per-candidate
// documents, applies the structured boolean filter, then ranks by weighted
// term score. Documents are ephemeral; nothing is persisted here.
func (s *searchService) SearchCandidates(req *dto.SearchCandidatesRequest) (*dto.SearchCandidatesResponse, error) {
	profiles, err := s.candidateRepo.FindPublic(repositories.CandidateSearchCriteria{
		Location:        req.Location,
		ActivelyLooking: req.ActivelyLooking,
		Limit:           req.Limit,
		Offset:          req.Offset,
	})
	if err != nil {
		return nil, err
	}

	userIDs := make([]string, 0, len(profiles))
	for i := range profiles {
		userIDs = append(userIDs, profiles[i].UserID)
	}
	users, err := s.userRepo.FindByIDs(userIDs)
	if err != nil {
		return nil, err
	}

	booleanFilter := strings.TrimSpace(req.Filter)

	profileByID := make(map[string]*models.CandidateProfile, len(profiles))
	docs := make([]*search.Document, 0, len(profiles))
	for i := range profiles {
		profile := &profiles[i]
		profileByID[profile.ID] = profile

		doc := search.BuildDocument(profile, users[profile.UserID])
		if booleanFilter != "" && !search.MatchesBoolean(doc.FullText, booleanFilter) {
			continue
		}
		docs = append(docs, doc)
	}

	ranked := search.Rank(docs, req.Query)

	results := make([]dto.CandidateSearchResult, 0, len(ranked))
	for _, res := range ranked {
		result := dto.CandidateSearchResult{
			CandidateID: res.CandidateID,
			UserID:      res.UserID,
			Score:       res.Score,
			Matches:     res.Matches,
		}
		if profile, ok := profileByID[res.CandidateID]; ok {
			result.Name = profile.Name
			if result.Name == "" {
				if user, ok := users[profile.UserID]; ok {
					result.Name = user.Name
				}
			}
			result.Headline = profile.Headline
			result.Location = profile.Location
			result.Skills = profile.Skills
			result.ActivelyLooking = profile.ActivelyLooking
		}
		results = append(results, result)
	}

	return &dto.SearchCandidatesResponse{
		Query:   req.Query,
		Total:   len(results),
		Results: results,
	}, nil
}
