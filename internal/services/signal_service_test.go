package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobmatch_backend/internal/models"
	"jobmatch_backend/pkg/apperrors"
)

func baseTime() time.Time {
	return time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
}

func msg(sender, receiver string, at time.Time) models.DirectMessage {
	return models.DirectMessage{
		BaseModel:  models.BaseModel{CreatedAt: at},
		SenderID:   sender,
		ReceiverID: receiver,
	}
}

func newSignalService(
	candidateRepo *fakeCandidateRepo,
	companyRepo *fakeCompanyRepo,
	userRepo *fakeUserRepo,
	jobRepo *fakeJobRepo,
	appRepo *fakeApplicationRepo,
	messageRepo *fakeMessageRepo,
	interviewRepo *fakeInterviewRepo,
	engagementRepo *fakeEngagementRepo,
	signalRepo *fakeSignalRepo,
) SignalService {
	if companyRepo == nil {
		companyRepo = &fakeCompanyRepo{}
	}
	if userRepo == nil {
		userRepo = newFakeUserRepo()
	}
	if jobRepo == nil {
		jobRepo = newFakeJobRepo()
	}
	if appRepo == nil {
		appRepo = &fakeApplicationRepo{}
	}
	if messageRepo == nil {
		messageRepo = &fakeMessageRepo{}
	}
	if interviewRepo == nil {
		interviewRepo = &fakeInterviewRepo{}
	}
	if engagementRepo == nil {
		engagementRepo = &fakeEngagementRepo{}
	}
	return NewSignalService(candidateRepo, companyRepo, userRepo, jobRepo, appRepo,
		messageRepo, interviewRepo, engagementRepo, signalRepo)
}

func TestComputeMessageStats_EarliestReplyWins(t *testing.T) {
	t.Parallel()

	t0 := baseTime()
	received := []models.DirectMessage{msg("them", "me", t0)}
	sent := []models.DirectMessage{
		msg("me", "them", t0.Add(2*time.Hour)),
		msg("me", "them", t0.Add(5*time.Hour)),
	}

	stats := computeMessageStats(sent, received)
	assert.Equal(t, 100.0, stats.ReplyRate)
	assert.InDelta(t, 2.0, stats.AvgResponseHours, 0.001)
}

func TestComputeMessageStats_OnlyStrictlyLaterRepliesQualify(t *testing.T) {
	t.Parallel()

	t0 := baseTime()
	received := []models.DirectMessage{
		msg("a", "me", t0),
		msg("b", "me", t0),
	}
	// Reply to "a" predates the received message; same instant does not
	// qualify either.
	sent := []models.DirectMessage{
		msg("me", "a", t0.Add(-time.Hour)),
		msg("me", "b", t0),
	}

	stats := computeMessageStats(sent, received)
	assert.Zero(t, stats.ReplyRate)
	assert.Zero(t, stats.AvgResponseHours)
}

func TestResponsivenessBuckets(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		stats messageStats
		want  models.Responsiveness
	}{
		{"high", messageStats{ReplyRate: 80, AvgResponseHours: 3}, models.ResponsivenessHigh},
		{"medium by rate", messageStats{ReplyRate: 60, AvgResponseHours: 30}, models.ResponsivenessMedium},
		{"medium fast but patchy", messageStats{ReplyRate: 50, AvgResponseHours: 2}, models.ResponsivenessMedium},
		{"low slow", messageStats{ReplyRate: 90, AvgResponseHours: 72}, models.ResponsivenessLow},
		{"low rare", messageStats{ReplyRate: 10, AvgResponseHours: 1}, models.ResponsivenessLow},
		{"unknown", messageStats{}, models.ResponsivenessUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, responsivenessFor(tc.stats))
		})
	}
}

func TestInterviewCompletionRate(t *testing.T) {
	t.Parallel()

	counts := map[models.InterviewStatus]int64{
		models.InterviewStatusScheduled: 1,
		models.InterviewStatusConfirmed: 1,
		models.InterviewStatusCompleted: 2,
		models.InterviewStatusCancelled: 5, // cancelled never enters the denominator
	}
	assert.InDelta(t, 50.0, interviewCompletionRate(counts), 0.001)
	assert.Zero(t, interviewCompletionRate(map[models.InterviewStatus]int64{}))
}

func TestComputeCandidateSignals(t *testing.T) {
	t.Parallel()

	t0 := baseTime()
	profile := &models.CandidateProfile{
		BaseModel: models.BaseModel{ID: "cand-1"},
		UserID:    "user-1",
		Name:      "Ari Stone",
		Headline:  "Data engineer",
		Bio:       "I build pipelines",
		Skills:    []string{"python"},
		Location:  "Berlin",
		IsPublic:  true,
		// experience, education, resume url and video url left empty:
		// 5 of 9 required fields complete
	}

	signalRepo := newFakeSignalRepo()
	svc := newSignalService(
		newFakeCandidateRepo(profile),
		nil,
		newFakeUserRepo(&models.User{BaseModel: models.BaseModel{ID: "user-1"}, Name: "Ari Stone"}),
		nil, nil,
		&fakeMessageRepo{messages: []models.DirectMessage{
			msg("rec-1", "user-1", t0),
			msg("user-1", "rec-1", t0.Add(4*time.Hour)),
		}},
		&fakeInterviewRepo{interviews: []models.Interview{
			{CandidateID: "cand-1", Status: models.InterviewStatusCompleted},
			{CandidateID: "cand-1", Status: models.InterviewStatusScheduled},
		}},
		&fakeEngagementRepo{
			interests: []models.InterestSignal{
				{SubjectID: "user-1", Kind: models.InterestProfileView},
				{SubjectID: "user-1", Kind: models.InterestProfileView},
				{SubjectID: "user-1", Kind: models.InterestVideoView},
				{SubjectID: "someone-else", Kind: models.InterestProfileView},
			},
			swipes: []models.Swipe{
				{TargetID: "user-1", Direction: models.SwipeRight},
				{TargetID: "user-1", Direction: models.SwipeLeft},
			},
		},
		signalRepo,
	)

	snapshot, err := svc.ComputeCandidateSignals(context.Background(), "cand-1")
	require.NoError(t, err)

	assert.Equal(t, "cand-1", snapshot.SubjectID)
	assert.Equal(t, "candidate", snapshot.SubjectType)
	assert.Equal(t, 56, snapshot.ProfileCompletionPercent) // round(100*5/9)
	assert.Equal(t, 100.0, snapshot.MessageReplyRate)
	assert.InDelta(t, 4.0, snapshot.AvgResponseTimeHours, 0.001)
	assert.Equal(t, string(models.ResponsivenessHigh), snapshot.ResponsivenessScore)
	assert.InDelta(t, 50.0, snapshot.InterviewCompletionRate, 0.001)
	assert.Equal(t, int64(1), snapshot.VideoViewCount)
	assert.Equal(t, int64(2), snapshot.ProfileViewCount)
	assert.Equal(t, int64(1), snapshot.SwipeRightCount)
	assert.Nil(t, snapshot.AvgPipelineMoveDays)
	assert.Nil(t, snapshot.ActiveConversations)

	stored, err := signalRepo.FindCandidateSignal("cand-1")
	require.NoError(t, err)
	assert.Equal(t, snapshot.ProfileCompletionPercent, stored.ProfileCompletionPercent)
}

func TestComputeCandidateSignals_IdempotentRecompute(t *testing.T) {
	t.Parallel()

	profile := &models.CandidateProfile{
		BaseModel: models.BaseModel{ID: "cand-1"},
		UserID:    "user-1",
		Name:      "Ari Stone",
		IsPublic:  true,
	}
	signalRepo := newFakeSignalRepo()
	svc := newSignalService(newFakeCandidateRepo(profile), nil, nil, nil, nil, nil, nil, nil, signalRepo)

	first, err := svc.ComputeCandidateSignals(context.Background(), "cand-1")
	require.NoError(t, err)
	second, err := svc.ComputeCandidateSignals(context.Background(), "cand-1")
	require.NoError(t, err)

	// Exactly one snapshot row per subject, metrics identical across runs.
	assert.Len(t, signalRepo.candidateSignals, 1)
	first.LastActive = second.LastActive
	assert.Equal(t, first, second)
}

func TestComputeCandidateSignals_Errors(t *testing.T) {
	t.Parallel()

	svc := newSignalService(newFakeCandidateRepo(), nil, nil, nil, nil, nil, nil, nil, newFakeSignalRepo())

	_, err := svc.ComputeCandidateSignals(context.Background(), "  ")
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)

	_, err = svc.ComputeCandidateSignals(context.Background(), "ghost")
	appErr, ok = apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode)
}

func TestComputeRecruiterSignals(t *testing.T) {
	t.Parallel()

	t0 := baseTime()
	companyRepo := &fakeCompanyRepo{
		companies: map[string]*models.Company{
			"co-1": {
				BaseModel:   models.BaseModel{ID: "co-1"},
				Name:        "Acme",
				Description: "We hire",
				Website:     "https://acme.test",
				City:        "Berlin",
			},
		},
		recruiters: map[string][]string{"co-1": {"rec-1", "rec-2"}},
	}
	jobRepo := newFakeJobRepo(&models.Job{BaseModel: models.BaseModel{ID: "job-1"}, CompanyID: "co-1"})
	appRepo := &fakeApplicationRepo{applications: []models.Application{
		{
			BaseModel: models.BaseModel{ID: "app-1", CreatedAt: t0, UpdatedAt: t0.Add(48 * time.Hour)},
			JobID:     "job-1", CandidateID: "cand-1",
		},
		{
			// untouched application, zero delta, excluded from the mean
			BaseModel: models.BaseModel{ID: "app-2", CreatedAt: t0, UpdatedAt: t0},
			JobID:     "job-1", CandidateID: "cand-2",
		},
	}}
	messageRepo := &fakeMessageRepo{messages: []models.DirectMessage{
		msg("rec-1", "cand-a", t0),
		msg("rec-2", "cand-b", t0.Add(time.Hour)),
		msg("cand-a", "rec-1", t0.Add(2*time.Hour)),
	}}

	signalRepo := newFakeSignalRepo()
	svc := newSignalService(newFakeCandidateRepo(), companyRepo, nil, jobRepo, appRepo,
		messageRepo, nil, nil, signalRepo)

	snapshot, err := svc.ComputeRecruiterSignals(context.Background(), "co-1")
	require.NoError(t, err)

	assert.Equal(t, "recruiter", snapshot.SubjectType)
	assert.Equal(t, 100, snapshot.ProfileCompletionPercent)
	require.NotNil(t, snapshot.AvgPipelineMoveDays)
	assert.InDelta(t, 2.0, *snapshot.AvgPipelineMoveDays, 0.001)
	require.NotNil(t, snapshot.ActiveConversations)
	assert.Equal(t, int64(2), *snapshot.ActiveConversations) // cand-a and cand-b

	// rec-1 received one message from cand-a and never replied after it
	assert.Zero(t, snapshot.MessageReplyRate)

	_, err = svc.ComputeRecruiterSignals(context.Background(), "ghost")
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode)
}
