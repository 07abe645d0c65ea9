package dto

import "time"

// SignalSnapshotResponse is the computed behavioral snapshot for a candidate
// or a recruiter (company). Recruiter-only metrics are omitted for
// candidates.
type SignalSnapshotResponse struct {
	SubjectID   string `json:"subject_id"`
	SubjectType string `json:"subject_type"` // "candidate" or "recruiter"

	ProfileCompletionPercent int     `json:"profile_completion_percent"`
	MessageReplyRate         float64 `json:"message_reply_rate"`
	AvgResponseTimeHours     float64 `json:"avg_response_time_hours"`
	ResponsivenessScore      string  `json:"responsiveness_score"`
	InterviewCompletionRate  float64 `json:"interview_completion_rate"`
	VideoViewCount           int64   `json:"video_view_count"`
	ProfileViewCount         int64   `json:"profile_view_count"`
	SwipeRightCount          int64   `json:"swipe_right_count"`

	AvgPipelineMoveDays *float64 `json:"avg_pipeline_move_days,omitempty"`
	ActiveConversations *int64   `json:"active_conversations,omitempty"`

	LastActive time.Time `json:"last_active"`
}
