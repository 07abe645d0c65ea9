package services

import (
	"math"
	"sort"

	"jobmatch_backend/internal/models"
)

// messageStats holds the reply metrics over one subject's message history.
type messageStats struct {
	ReplyRate        float64 // percent of received messages with a qualifying reply
	AvgResponseHours float64 // mean over matched reply pairs
}

// computeMessageStats derives reply rate and response time from the subject's
// sent and received messages. A received message has a qualifying reply when
// some sent message to the same counterparty carries a strictly later
// timestamp; the earliest such reply supplies the time delta.
func computeMessageStats(sent, received []models.DirectMessage) messageStats {
	if len(received) == 0 {
		return messageStats{}
	}

	sentByReceiver := make(map[string][]models.DirectMessage)
	for _, msg := range sent {
		sentByReceiver[msg.ReceiverID] = append(sentByReceiver[msg.ReceiverID], msg)
	}
	for _, msgs := range sentByReceiver {
		sort.Slice(msgs, func(i, j int) bool {
			return msgs[i].CreatedAt.Before(msgs[j].CreatedAt)
		})
	}

	replied := 0
	totalHours := 0.0
	for _, msg := range received {
		candidates := sentByReceiver[msg.SenderID]
		idx := sort.Search(len(candidates), func(i int) bool {
			return candidates[i].CreatedAt.After(msg.CreatedAt)
		})
		if idx == len(candidates) {
			continue
		}
		replied++
		totalHours += candidates[idx].CreatedAt.Sub(msg.CreatedAt).Hours()
	}

	stats := messageStats{
		ReplyRate: 100 * float64(replied) / float64(len(received)),
	}
	if replied > 0 {
		stats.AvgResponseHours = totalHours / float64(replied)
	}
	return stats
}

// responsivenessFor buckets reply behavior into the coarse score shown to
// the other side of the marketplace.
func responsivenessFor(stats messageStats) models.Responsiveness {
	switch {
	case stats.ReplyRate >= 75 && stats.AvgResponseHours < 24:
		return models.ResponsivenessHigh
	case stats.ReplyRate >= 50 && stats.AvgResponseHours < 48:
		return models.ResponsivenessMedium
	case stats.ReplyRate > 0:
		return models.ResponsivenessLow
	default:
		return models.ResponsivenessUnknown
	}
}

// completionPercent rounds the completed/total ratio to a whole percentage.
func completionPercent(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}

// candidateProfileCompletion counts the required candidate fields that hold
// a non-empty value.
func candidateProfileCompletion(profile *models.CandidateProfile, user *models.User) int {
	name := profile.Name
	if name == "" && user != nil {
		name = user.Name
	}

	fields := []bool{
		name != "",
		profile.Headline != "",
		profile.Bio != "",
		len(profile.Skills) > 0,
		profile.Location != "",
		len(profile.GetExperience()) > 0,
		len(profile.GetEducation()) > 0,
		profile.ResumeURL != "",
		profile.VideoURL != "",
	}
	return completionPercent(countTrue(fields), len(fields))
}

// companyProfileCompletion counts the required company fields.
func companyProfileCompletion(company *models.Company) int {
	fields := []bool{
		company.Name != "",
		company.Description != "",
		company.Website != "",
		company.City != "",
	}
	return completionPercent(countTrue(fields), len(fields))
}

func countTrue(fields []bool) int {
	n := 0
	for _, ok := range fields {
		if ok {
			n++
		}
	}
	return n
}

// interviewCompletionRate is the completed share of all interviews that made
// it onto the calendar (scheduled, confirmed or completed).
func interviewCompletionRate(counts map[models.InterviewStatus]int64) float64 {
	completed := counts[models.InterviewStatusCompleted]
	total := counts[models.InterviewStatusScheduled] + counts[models.InterviewStatusConfirmed] + completed
	if total == 0 {
		return 0
	}
	return 100 * float64(completed) / float64(total)
}

// avgPipelineMoveDays averages how long applications sat before their last
// status change, counting only positive deltas.
func avgPipelineMoveDays(applications []models.Application) float64 {
	total := 0.0
	n := 0
	for _, app := range applications {
		days := app.UpdatedAt.Sub(app.CreatedAt).Hours() / 24
		if days <= 0 {
			continue
		}
		total += days
		n++
	}
	if n == 0 {
		return 0
	}
	return total / float64(n)
}

// activeConversations counts distinct message counterparties across both
// directions.
func activeConversations(sent, received []models.DirectMessage) int64 {
	counterparties := make(map[string]struct{})
	for _, msg := range sent {
		counterparties[msg.ReceiverID] = struct{}{}
	}
	for _, msg := range received {
		counterparties[msg.SenderID] = struct{}{}
	}
	return int64(len(counterparties))
}
