package services

import (
	"context"
	"sort"
	"strings"

	"jobmatch_backend/internal/ai"
	"jobmatch_backend/internal/models"
	"jobmatch_backend/internal/repositories"
)

// In-memory repository fakes shared by the service tests.

type fakeCandidateRepo struct {
	profiles map[string]*models.CandidateProfile
}

func newFakeCandidateRepo(profiles ...*models.CandidateProfile) *fakeCandidateRepo {
	repo := &fakeCandidateRepo{profiles: make(map[string]*models.CandidateProfile)}
	for _, p := range profiles {
		repo.profiles[p.ID] = p
	}
	return repo
}

func (r *fakeCandidateRepo) FindByID(id string) (*models.CandidateProfile, error) {
	if p, ok := r.profiles[id]; ok {
		return p, nil
	}
	return nil, repositories.ErrCandidateNotFound
}

func (r *fakeCandidateRepo) FindByUserID(userID string) (*models.CandidateProfile, error) {
	for _, p := range r.profiles {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, repositories.ErrCandidateNotFound
}

func (r *fakeCandidateRepo) FindPublic(criteria repositories.CandidateSearchCriteria) ([]models.CandidateProfile, error) {
	var out []models.CandidateProfile
	for _, p := range r.profiles {
		if !p.IsPublic {
			continue
		}
		if criteria.Location != "" &&
			!strings.Contains(strings.ToLower(p.Location), strings.ToLower(criteria.Location)) {
			continue
		}
		if criteria.ActivelyLooking != nil && p.ActivelyLooking != *criteria.ActivelyLooking {
			continue
		}
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeCandidateRepo) UpdateResumeText(id, resumeText string) error {
	p, ok := r.profiles[id]
	if !ok {
		return repositories.ErrCandidateNotFound
	}
	p.ResumeText = resumeText
	return nil
}

func (r *fakeCandidateRepo) IncrementProfileViews(id string) error {
	if p, ok := r.profiles[id]; ok {
		p.ProfileViews++
	}
	return nil
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[string]*models.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (r *fakeUserRepo) FindByID(id string) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByIDs(ids []string) (map[string]*models.User, error) {
	out := make(map[string]*models.User)
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			out[id] = u
		}
	}
	return out, nil
}

type fakeCompanyRepo struct {
	companies  map[string]*models.Company
	recruiters map[string][]string
}

func (r *fakeCompanyRepo) FindByID(id string) (*models.Company, error) {
	if c, ok := r.companies[id]; ok {
		return c, nil
	}
	return nil, repositories.ErrCompanyNotFound
}

func (r *fakeCompanyRepo) FindRecruiterUserIDs(companyID string) ([]string, error) {
	return r.recruiters[companyID], nil
}

type fakeJobRepo struct {
	jobs map[string]*models.Job
}

func newFakeJobRepo(jobs ...*models.Job) *fakeJobRepo {
	repo := &fakeJobRepo{jobs: make(map[string]*models.Job)}
	for _, j := range jobs {
		repo.jobs[j.ID] = j
	}
	return repo
}

func (r *fakeJobRepo) FindByID(id string) (*models.Job, error) {
	if j, ok := r.jobs[id]; ok {
		return j, nil
	}
	return nil, repositories.ErrJobNotFound
}

func (r *fakeJobRepo) FindIDsByCompanyID(companyID string) ([]string, error) {
	var ids []string
	for _, j := range r.jobs {
		if j.CompanyID == companyID {
			ids = append(ids, j.ID)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

func (r *fakeJobRepo) IncrementViews(id string) error {
	if j, ok := r.jobs[id]; ok {
		j.Views++
	}
	return nil
}

type fakeApplicationRepo struct {
	applications []models.Application
}

func (r *fakeApplicationRepo) FindByID(id string) (*models.Application, error) {
	for i := range r.applications {
		if r.applications[i].ID == id {
			return &r.applications[i], nil
		}
	}
	return nil, repositories.ErrApplicationNotFound
}

func (r *fakeApplicationRepo) FindByJobID(jobID string) ([]models.Application, error) {
	var out []models.Application
	for _, a := range r.applications {
		if a.JobID == jobID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeApplicationRepo) FindByJobIDs(jobIDs []string) ([]models.Application, error) {
	wanted := make(map[string]bool, len(jobIDs))
	for _, id := range jobIDs {
		wanted[id] = true
	}
	var out []models.Application
	for _, a := range r.applications {
		if wanted[a.JobID] {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeMessageRepo struct {
	messages []models.DirectMessage
}

func (r *fakeMessageRepo) FindSentBy(userIDs []string) ([]models.DirectMessage, error) {
	return r.filter(userIDs, func(m models.DirectMessage) string { return m.SenderID })
}

func (r *fakeMessageRepo) FindReceivedBy(userIDs []string) ([]models.DirectMessage, error) {
	return r.filter(userIDs, func(m models.DirectMessage) string { return m.ReceiverID })
}

func (r *fakeMessageRepo) filter(userIDs []string, key func(models.DirectMessage) string) ([]models.DirectMessage, error) {
	wanted := make(map[string]bool, len(userIDs))
	for _, id := range userIDs {
		wanted[id] = true
	}
	var out []models.DirectMessage
	for _, m := range r.messages {
		if wanted[key(m)] {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

type fakeInterviewRepo struct {
	interviews []models.Interview
}

func (r *fakeInterviewRepo) StatusCountsByCandidate(candidateID string) (map[models.InterviewStatus]int64, error) {
	counts := make(map[models.InterviewStatus]int64)
	for _, iv := range r.interviews {
		if iv.CandidateID == candidateID {
			counts[iv.Status]++
		}
	}
	return counts, nil
}

func (r *fakeInterviewRepo) StatusCountsByRecruiters(recruiterIDs []string) (map[models.InterviewStatus]int64, error) {
	wanted := make(map[string]bool, len(recruiterIDs))
	for _, id := range recruiterIDs {
		wanted[id] = true
	}
	counts := make(map[models.InterviewStatus]int64)
	for _, iv := range r.interviews {
		if wanted[iv.RecruiterID] {
			counts[iv.Status]++
		}
	}
	return counts, nil
}

type fakeEngagementRepo struct {
	interests []models.InterestSignal
	swipes    []models.Swipe
}

func (r *fakeEngagementRepo) CountInterest(subjectIDs []string, kind models.InterestKind) (int64, error) {
	wanted := make(map[string]bool, len(subjectIDs))
	for _, id := range subjectIDs {
		wanted[id] = true
	}
	var n int64
	for _, sig := range r.interests {
		if wanted[sig.SubjectID] && sig.Kind == kind {
			n++
		}
	}
	return n, nil
}

func (r *fakeEngagementRepo) CountSwipes(targetIDs []string, direction models.SwipeDirection) (int64, error) {
	wanted := make(map[string]bool, len(targetIDs))
	for _, id := range targetIDs {
		wanted[id] = true
	}
	var n int64
	for _, sw := range r.swipes {
		if wanted[sw.TargetID] && sw.Direction == direction {
			n++
		}
	}
	return n, nil
}

type fakeSignalRepo struct {
	candidateSignals map[string]*models.CandidateSignal
	recruiterSignals map[string]*models.RecruiterSignal
}

func newFakeSignalRepo() *fakeSignalRepo {
	return &fakeSignalRepo{
		candidateSignals: make(map[string]*models.CandidateSignal),
		recruiterSignals: make(map[string]*models.RecruiterSignal),
	}
}

func (r *fakeSignalRepo) UpsertCandidateSignal(signal *models.CandidateSignal) error {
	copied := *signal
	r.candidateSignals[signal.CandidateID] = &copied
	return nil
}

func (r *fakeSignalRepo) UpsertRecruiterSignal(signal *models.RecruiterSignal) error {
	copied := *signal
	r.recruiterSignals[signal.CompanyID] = &copied
	return nil
}

func (r *fakeSignalRepo) FindCandidateSignal(candidateID string) (*models.CandidateSignal, error) {
	if s, ok := r.candidateSignals[candidateID]; ok {
		return s, nil
	}
	return nil, repositories.ErrSignalNotFound
}

func (r *fakeSignalRepo) FindRecruiterSignal(companyID string) (*models.RecruiterSignal, error) {
	if s, ok := r.recruiterSignals[companyID]; ok {
		return s, nil
	}
	return nil, repositories.ErrSignalNotFound
}

type fakeEvaluationRepo struct {
	evaluations map[string]*models.CandidateEvaluation // by application id
	rankings    map[string][]models.ApplicationRanking // by job id
}

func newFakeEvaluationRepo() *fakeEvaluationRepo {
	return &fakeEvaluationRepo{
		evaluations: make(map[string]*models.CandidateEvaluation),
		rankings:    make(map[string][]models.ApplicationRanking),
	}
}

func (r *fakeEvaluationRepo) UpsertEvaluation(evaluation *models.CandidateEvaluation) error {
	copied := *evaluation
	r.evaluations[evaluation.ApplicationID] = &copied
	return nil
}

func (r *fakeEvaluationRepo) FindByApplicationID(applicationID string) (*models.CandidateEvaluation, error) {
	if e, ok := r.evaluations[applicationID]; ok {
		return e, nil
	}
	return nil, repositories.ErrEvaluationNotFound
}

func (r *fakeEvaluationRepo) FindByJobID(jobID string) ([]models.CandidateEvaluation, error) {
	var out []models.CandidateEvaluation
	for _, e := range r.evaluations {
		if e.JobID == jobID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *fakeEvaluationRepo) ReplaceRankingForJob(jobID string, entries []models.ApplicationRanking) error {
	r.rankings[jobID] = append([]models.ApplicationRanking(nil), entries...)
	return nil
}

func (r *fakeEvaluationRepo) FindRankingByJobID(jobID string, limit int) ([]models.ApplicationRanking, error) {
	entries := append([]models.ApplicationRanking(nil), r.rankings[jobID]...)
	sort.Slice(entries, func(i, j int) bool { return entries[i].Rank < entries[j].Rank })
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

type fakeOracle struct {
	assessment *ai.Assessment
	err        error
	calls      int
	lastInput  *ai.EvaluationInput
}

func (o *fakeOracle) Evaluate(_ context.Context, input *ai.EvaluationInput) (*ai.Assessment, error) {
	o.calls++
	o.lastInput = input
	if o.err != nil {
		return nil, o.err
	}
	return o.assessment, nil
}

type fakeExtractor struct {
	text  string
	err   error
	calls int
}

func (e *fakeExtractor) Extract(_ context.Context, _ string) (string, error) {
	e.calls++
	if e.err != nil {
		return "", e.err
	}
	return e.text, nil
}
