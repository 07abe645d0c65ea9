package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"jobmatch_backend/internal/models"
	"jobmatch_backend/internal/repositories"
	"jobmatch_backend/internal/services/dto"
	"jobmatch_backend/pkg/apperrors"
)

type SignalService interface {
	ComputeCandidateSignals(ctx context.Context, candidateID string) (*dto.SignalSnapshotResponse, error)
	ComputeRecruiterSignals(ctx context.Context, companyID string) (*dto.SignalSnapshotResponse, error)
}

type signalService struct {
	candidateRepo  repositories.CandidateRepository
	companyRepo    repositories.CompanyRepository
	userRepo       repositories.UserRepository
	jobRepo        repositories.JobRepository
	appRepo        repositories.ApplicationRepository
	messageRepo    repositories.MessageRepository
	interviewRepo  repositories.InterviewRepository
	engagementRepo repositories.EngagementRepository
	signalRepo     repositories.SignalRepository
}

func NewSignalService(
	candidateRepo repositories.CandidateRepository,
	companyRepo repositories.CompanyRepository,
	userRepo repositories.UserRepository,
	jobRepo repositories.JobRepository,
	appRepo repositories.ApplicationRepository,
	messageRepo repositories.MessageRepository,
	interviewRepo repositories.InterviewRepository,
	engagementRepo repositories.EngagementRepository,
	signalRepo repositories.SignalRepository,
) SignalService {
	return &signalService{
		candidateRepo:  candidateRepo,
		companyRepo:    companyRepo,
		userRepo:       userRepo,
		jobRepo:        jobRepo,
		appRepo:        appRepo,
		messageRepo:    messageRepo,
		interviewRepo:  interviewRepo,
		engagementRepo: engagementRepo,
		signalRepo:     signalRepo,
	}
}

// ComputeCandidateSignals recomputes the candidate's behavioral snapshot from
// scratch and upserts it, fully overwriting any prior snapshot.
func (s *signalService) ComputeCandidateSignals(ctx context.Context, candidateID string) (*dto.SignalSnapshotResponse, error) {
	if strings.TrimSpace(candidateID) == "" {
		return nil, apperrors.ErrMissingSubjectID
	}

	profile, err := s.candidateRepo.FindByID(candidateID)
	if err != nil {
		if errors.Is(err, repositories.ErrCandidateNotFound) {
			return nil, apperrors.CandidateNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	user, err := s.userRepo.FindByID(profile.UserID)
	if err != nil && !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.InternalError(err)
	}

	subjects := []string{profile.UserID}
	sent, received, err := s.fetchMessages(ctx, subjects)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	interviewCounts, err := s.interviewRepo.StatusCountsByCandidate(profile.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	videoViews, profileViews, swipeRights, err := s.fetchEngagement(ctx, subjects)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	stats := computeMessageStats(sent, received)
	now := time.Now()

	snapshot := &models.CandidateSignal{
		CandidateID:              profile.ID,
		ProfileCompletionPercent: candidateProfileCompletion(profile, user),
		MessageReplyRate:         stats.ReplyRate,
		AvgResponseTimeHours:     stats.AvgResponseHours,
		InterviewCompletionRate:  interviewCompletionRate(interviewCounts),
		VideoViewCount:           videoViews,
		ProfileViewCount:         profileViews,
		SwipeRightCount:          swipeRights,
		ResponsivenessScore:      responsivenessFor(stats),
		LastActive:               now,
	}

	if err := s.signalRepo.UpsertCandidateSignal(snapshot); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.SignalSnapshotResponse{
		SubjectID:                snapshot.CandidateID,
		SubjectType:              "candidate",
		ProfileCompletionPercent: snapshot.ProfileCompletionPercent,
		MessageReplyRate:         snapshot.MessageReplyRate,
		AvgResponseTimeHours:     snapshot.AvgResponseTimeHours,
		ResponsivenessScore:      string(snapshot.ResponsivenessScore),
		InterviewCompletionRate:  snapshot.InterviewCompletionRate,
		VideoViewCount:           snapshot.VideoViewCount,
		ProfileViewCount:         snapshot.ProfileViewCount,
		SwipeRightCount:          snapshot.SwipeRightCount,
		LastActive:               snapshot.LastActive,
	}, nil
}

// ComputeRecruiterSignals aggregates over every recruiter attached to the
// company and upserts one company-level snapshot.
func (s *signalService) ComputeRecruiterSignals(ctx context.Context, companyID string) (*dto.SignalSnapshotResponse, error) {
	if strings.TrimSpace(companyID) == "" {
		return nil, apperrors.ErrMissingSubjectID
	}

	company, err := s.companyRepo.FindByID(companyID)
	if err != nil {
		if errors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.CompanyNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	recruiterIDs, err := s.companyRepo.FindRecruiterUserIDs(company.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	sent, received, err := s.fetchMessages(ctx, recruiterIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	interviewCounts, err := s.interviewRepo.StatusCountsByRecruiters(recruiterIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	videoViews, profileViews, swipeRights, err := s.fetchEngagement(ctx, recruiterIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	jobIDs, err := s.jobRepo.FindIDsByCompanyID(company.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	applications, err := s.appRepo.FindByJobIDs(jobIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	stats := computeMessageStats(sent, received)
	now := time.Now()

	snapshot := &models.RecruiterSignal{
		CompanyID:                company.ID,
		ProfileCompletionPercent: companyProfileCompletion(company),
		MessageReplyRate:         stats.ReplyRate,
		AvgResponseTimeHours:     stats.AvgResponseHours,
		InterviewCompletionRate:  interviewCompletionRate(interviewCounts),
		VideoViewCount:           videoViews,
		ProfileViewCount:         profileViews,
		SwipeRightCount:          swipeRights,
		AvgPipelineMoveDays:      avgPipelineMoveDays(applications),
		ActiveConversations:      activeConversations(sent, received),
		ResponsivenessScore:      responsivenessFor(stats),
		LastActive:               now,
	}

	if err := s.signalRepo.UpsertRecruiterSignal(snapshot); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.SignalSnapshotResponse{
		SubjectID:                snapshot.CompanyID,
		SubjectType:              "recruiter",
		ProfileCompletionPercent: snapshot.ProfileCompletionPercent,
		MessageReplyRate:         snapshot.MessageReplyRate,
		AvgResponseTimeHours:     snapshot.AvgResponseTimeHours,
		ResponsivenessScore:      string(snapshot.ResponsivenessScore),
		InterviewCompletionRate:  snapshot.InterviewCompletionRate,
		VideoViewCount:           snapshot.VideoViewCount,
		ProfileViewCount:         snapshot.ProfileViewCount,
		SwipeRightCount:          snapshot.SwipeRightCount,
		AvgPipelineMoveDays:      &snapshot.AvgPipelineMoveDays,
		ActiveConversations:      &snapshot.ActiveConversations,
		LastActive:               snapshot.LastActive,
	}, nil
}

// fetchMessages loads the subject's sent and received messages concurrently.
func (s *signalService) fetchMessages(ctx context.Context, subjectIDs []string) (sent, received []models.DirectMessage, err error) {
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sent, err = s.messageRepo.FindSentBy(subjectIDs)
		return err
	})
	g.Go(func() error {
		var err error
		received, err = s.messageRepo.FindReceivedBy(subjectIDs)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return sent, received, nil
}

func (s *signalService) fetchEngagement(ctx context.Context, subjectIDs []string) (videoViews, profileViews, swipeRights int64, err error) {
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		videoViews, err = s.engagementRepo.CountInterest(subjectIDs, models.InterestVideoView)
		return err
	})
	g.Go(func() error {
		var err error
		profileViews, err = s.engagementRepo.CountInterest(subjectIDs, models.InterestProfileView)
		return err
	})
	g.Go(func() error {
		var err error
		swipeRights, err = s.engagementRepo.CountSwipes(subjectIDs, models.SwipeRight)
		return err
	})
	if err := g.Wait(); err != nil {
		return 0, 0, 0, err
	}
	return videoViews, profileViews, swipeRights, nil
}
