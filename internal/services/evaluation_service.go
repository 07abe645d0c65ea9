package services

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"jobmatch_backend/internal/ai"
	"jobmatch_backend/internal/logger"
	"jobmatch_backend/internal/models"
	"jobmatch_backend/internal/repositories"
	"jobmatch_backend/internal/resume"
	"jobmatch_backend/internal/services/dto"
	"jobmatch_backend/pkg/apperrors"
)

const defaultRankingLimit = 100

type EvaluationService interface {
	EvaluateApplication(ctx context.Context, applicationID string) (*dto.EvaluationResponse, error)
	GetRankedCandidates(ctx context.Context, jobID string) (*dto.RankedCandidatesResponse, error)
}

type evaluationService struct {
	appRepo        repositories.ApplicationRepository
	candidateRepo  repositories.CandidateRepository
	jobRepo        repositories.JobRepository
	userRepo       repositories.UserRepository
	evaluationRepo repositories.EvaluationRepository
	oracle         ai.Oracle
	extractor      resume.TextExtractor
	rankingLimit   int
}

func NewEvaluationService(
	appRepo repositories.ApplicationRepository,
	candidateRepo repositories.CandidateRepository,
	jobRepo repositories.JobRepository,
	userRepo repositories.UserRepository,
	evaluationRepo repositories.EvaluationRepository,
	oracle ai.Oracle,
	extractor resume.TextExtractor,
	rankingLimit int,
) EvaluationService {
	if rankingLimit <= 0 {
		rankingLimit = defaultRankingLimit
	}
	return &evaluationService{
		appRepo:        appRepo,
		candidateRepo:  candidateRepo,
		jobRepo:        jobRepo,
		userRepo:       userRepo,
		evaluationRepo: evaluationRepo,
		oracle:         oracle,
		extractor:      extractor,
		rankingLimit:   rankingLimit,
	}
}

// EvaluateApplication runs the oracle over one application and persists the
// verdict, then rebuilds the job's ranking. Any failure before the upsert
// leaves no state behind, so the caller can retry.
func (s *evaluationService) EvaluateApplication(ctx context.Context, applicationID string) (*dto.EvaluationResponse, error) {
	if strings.TrimSpace(applicationID) == "" {
		return nil, apperrors.ErrMissingApplicationID
	}

	application, err := s.appRepo.FindByID(applicationID)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ApplicationNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	var (
		profile *models.CandidateProfile
		job     *models.Job
	)
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		profile, err = s.candidateRepo.FindByID(application.CandidateID)
		if errors.Is(err, repositories.ErrCandidateNotFound) {
			return apperrors.CandidateNotFound(err)
		}
		return err
	})
	g.Go(func() error {
		var err error
		job, err = s.jobRepo.FindByID(application.JobID)
		if errors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.JobNotFound(err)
		}
		return err
	})
	if err := g.Wait(); err != nil {
		if _, ok := apperrors.AsAppError(err); ok {
			return nil, err
		}
		return nil, apperrors.InternalError(err)
	}

	user, err := s.userRepo.FindByID(profile.UserID)
	if err != nil && !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.InternalError(err)
	}

	resumeText := s.resolveResumeText(ctx, profile)

	start := time.Now()
	assessment, err := s.oracle.Evaluate(ctx, &ai.EvaluationInput{
		Profile:    profile,
		User:       user,
		Job:        job,
		ResumeText: resumeText,
		CoverNote:  application.CoverNote,
	})
	logger.OracleLog(application.ID, time.Since(start), err)
	if err != nil {
		return nil, apperrors.OracleError(err)
	}

	evaluation := &models.CandidateEvaluation{
		ApplicationID:       application.ID,
		JobID:               application.JobID,
		CandidateID:         application.CandidateID,
		Score:               assessment.Score,
		Verdict:             assessment.Verdict,
		FitRange:            models.FitRange(assessment.FitRange),
		AlignmentHighlights: assessment.AlignmentHighlights,
		GapsConcerns:        assessment.GapsConcerns,
		GeneratedAt:         time.Now(),
	}
	if err := s.evaluationRepo.UpsertEvaluation(evaluation); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.recomputeRanking(application.JobID); err != nil {
		return nil, apperrors.InternalError(err)
	}

	// The oracle consumed the full profile, which counts as a view.
	if err := s.candidateRepo.IncrementProfileViews(profile.ID); err != nil {
		logger.Warn("Failed to bump profile view counter", "candidate_id", profile.ID, "error", err)
	}

	return &dto.EvaluationResponse{
		ApplicationID:       evaluation.ApplicationID,
		JobID:               evaluation.JobID,
		CandidateID:         evaluation.CandidateID,
		Score:               evaluation.Score,
		Verdict:             evaluation.Verdict,
		FitRange:            string(evaluation.FitRange),
		AlignmentHighlights: evaluation.AlignmentHighlights,
		GapsConcerns:        evaluation.GapsConcerns,
		GeneratedAt:         evaluation.GeneratedAt,
	}, nil
}

// resolveResumeText prefers the stored parsed text and falls back to the
// extraction service when only a resume URL is on file. Extraction failures
// degrade the prompt, they never abort the evaluation.
func (s *evaluationService) resolveResumeText(ctx context.Context, profile *models.CandidateProfile) string {
	if profile.ResumeText != "" {
		return profile.ResumeText
	}
	if profile.ResumeURL == "" || s.extractor == nil {
		return ""
	}

	text, err := s.extractor.Extract(ctx, profile.ResumeURL)
	if err != nil {
		logger.Warn("resume extraction failed",
			"candidate_id", profile.ID, "error", err.Error())
		return ""
	}

	if err := s.candidateRepo.UpdateResumeText(profile.ID, text); err != nil {
		logger.Warn("storing extracted resume text failed",
			"candidate_id", profile.ID, "error", err.Error())
	}
	return text
}

// recomputeRanking rebuilds the job's dense 1-based ranking from the full
// evaluation set. Applications without an evaluation rank with score 0 and
// misaligned fit.
func (s *evaluationService) recomputeRanking(jobID string) error {
	applications, err := s.appRepo.FindByJobID(jobID)
	if err != nil {
		return err
	}
	evaluations, err := s.evaluationRepo.FindByJobID(jobID)
	if err != nil {
		return err
	}

	evalByApp := make(map[string]*models.CandidateEvaluation, len(evaluations))
	for i := range evaluations {
		evalByApp[evaluations[i].ApplicationID] = &evaluations[i]
	}

	entries := make([]models.ApplicationRanking, 0, len(applications))
	now := time.Now()
	for _, app := range applications {
		entry := models.ApplicationRanking{
			JobID:         jobID,
			ApplicationID: app.ID,
			CandidateID:   app.CandidateID,
			Score:         0,
			FitRange:      models.FitRangeMisaligned,
			LastUpdated:   now,
		}
		if eval, ok := evalByApp[app.ID]; ok {
			entry.Score = eval.Score
			entry.FitRange = eval.FitRange
		}
		entries = append(entries, entry)
	}

	// Applications arrive ordered by creation time, so the stable sort makes
	// submission order the final tie-break.
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return models.FitRangePriority(entries[i].FitRange) > models.FitRangePriority(entries[j].FitRange)
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}

	return s.evaluationRepo.ReplaceRankingForJob(jobID, entries)
}

// GetRankedCandidates reads the stored ranking for a job, enriched with
// candidate, application and evaluation detail.
func (s *evaluationService) GetRankedCandidates(ctx context.Context, jobID string) (*dto.RankedCandidatesResponse, error) {
	if strings.TrimSpace(jobID) == "" {
		return nil, apperrors.ErrMissingJobID
	}

	if _, err := s.jobRepo.FindByID(jobID); err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.JobNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.jobRepo.IncrementViews(jobID); err != nil {
		logger.Warn("Failed to bump job view counter", "job_id", jobID, "error", err)
	}

	var (
		entries      []models.ApplicationRanking
		applications []models.Application
		evaluations  []models.CandidateEvaluation
	)
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		entries, err = s.evaluationRepo.FindRankingByJobID(jobID, s.rankingLimit)
		return err
	})
	g.Go(func() error {
		var err error
		applications, err = s.appRepo.FindByJobID(jobID)
		return err
	})
	g.Go(func() error {
		var err error
		evaluations, err = s.evaluationRepo.FindByJobID(jobID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, apperrors.InternalError(err)
	}

	appByID := make(map[string]*models.Application, len(applications))
	for i := range applications {
		appByID[applications[i].ID] = &applications[i]
	}
	evalByApp := make(map[string]*models.CandidateEvaluation, len(evaluations))
	for i := range evaluations {
		evalByApp[evaluations[i].ApplicationID] = &evaluations[i]
	}

	ranked := make([]dto.RankedCandidate, 0, len(entries))
	for _, entry := range entries {
		row := dto.RankedCandidate{
			Rank:          entry.Rank,
			ApplicationID: entry.ApplicationID,
			CandidateID:   entry.CandidateID,
			Score:         entry.Score,
			FitRange:      string(entry.FitRange),
			Updated:       entry.LastUpdated,
		}

		if app, ok := appByID[entry.ApplicationID]; ok {
			row.ApplicationStatus = string(app.Status)
		}
		if eval, ok := evalByApp[entry.ApplicationID]; ok {
			row.Verdict = eval.Verdict
		}
		if profile, err := s.candidateRepo.FindByID(entry.CandidateID); err == nil {
			row.CandidateName = profile.Name
			row.Headline = profile.Headline
			row.Location = profile.Location
			row.Skills = profile.Skills
		}

		ranked = append(ranked, row)
	}

	return &dto.RankedCandidatesResponse{
		JobID:   jobID,
		Total:   len(ranked),
		Entries: ranked,
	}, nil
}
