package models

type UserStatus string
type UserRole string
type JobStatus string
type ApplicationStatus string
type InterviewStatus string
type SwipeDirection string
type InterestKind string
type FitRange string
type Responsiveness string

const (
	UserStatusPending   UserStatus = "pending"
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
	UserStatusBanned    UserStatus = "banned"

	UserRoleCandidate UserRole = "candidate"
	UserRoleRecruiter UserRole = "recruiter"
	UserRoleAdmin     UserRole = "admin"

	JobStatusDraft  JobStatus = "draft"
	JobStatusActive JobStatus = "active"
	JobStatusClosed JobStatus = "closed"

	ApplicationStatusApplied      ApplicationStatus = "applied"
	ApplicationStatusScreening    ApplicationStatus = "screening"
	ApplicationStatusInterviewing ApplicationStatus = "interviewing"
	ApplicationStatusOffer        ApplicationStatus = "offer"
	ApplicationStatusHired        ApplicationStatus = "hired"
	ApplicationStatusRejected     ApplicationStatus = "rejected"

	InterviewStatusScheduled InterviewStatus = "scheduled"
	InterviewStatusConfirmed InterviewStatus = "confirmed"
	InterviewStatusCompleted InterviewStatus = "completed"
	InterviewStatusCancelled InterviewStatus = "cancelled"

	SwipeLeft  SwipeDirection = "left"
	SwipeRight SwipeDirection = "right"

	InterestProfileView InterestKind = "profile_view"
	InterestVideoView   InterestKind = "video_view"

	FitRangeCore       FitRange = "core_fit"
	FitRangeAdjacent   FitRange = "adjacent_fit"
	FitRangeStretch    FitRange = "stretch_fit"
	FitRangeMisaligned FitRange = "misaligned"

	ResponsivenessHigh    Responsiveness = "high"
	ResponsivenessMedium  Responsiveness = "medium"
	ResponsivenessLow     Responsiveness = "low"
	ResponsivenessUnknown Responsiveness = "unknown"
)

// FitRangePriority is the tie-break order used when ranking applications
// with equal scores: core_fit > adjacent_fit > stretch_fit > misaligned.
func FitRangePriority(fr FitRange) int {
	switch fr {
	case FitRangeCore:
		return 4
	case FitRangeAdjacent:
		return 3
	case FitRangeStretch:
		return 2
	default:
		return 1
	}
}
