package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"google.golang.org/genai"

	"jobmatch_backend/internal/models"
)

// Oracle produces a structured assessment of one candidate against one job.
type Oracle interface {
	Evaluate(ctx context.Context, input *EvaluationInput) (*Assessment, error)
}

// ContentGenerator is the JSON-prompt surface the evaluator needs from the
// underlying model client.
type ContentGenerator interface {
	GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) (string, error)
}

// EvaluationInput is the structured context assembled for one assessment.
type EvaluationInput struct {
	Profile    *models.CandidateProfile
	User       *models.User
	Job        *models.Job
	ResumeText string
	CoverNote  string
}

// Assessment is the oracle's verdict on a candidate/job pair.
type Assessment struct {
	Score               float64  `json:"score"`
	Verdict             string   `json:"verdict"`
	FitRange            string   `json:"fit_range"`
	AlignmentHighlights []string `json:"alignment_highlights"`
	GapsConcerns        []string `json:"gaps_concerns"`
}

// Evaluator builds the rubric prompt and parses oracle responses.
type Evaluator struct {
	generator ContentGenerator
}

// NewEvaluator creates an Evaluator over the given generator.
func NewEvaluator(generator ContentGenerator) *Evaluator {
	return &Evaluator{generator: generator}
}

// assessmentSchema constrains the model output to the fixed assessment shape.
var assessmentSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"score":   {Type: genai.TypeNumber},
		"verdict": {Type: genai.TypeString},
		"fit_range": {
			Type: genai.TypeString,
			Enum: []string{"core_fit", "adjacent_fit", "stretch_fit", "misaligned"},
		},
		"alignment_highlights": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"gaps_concerns":        {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
	},
	Required: []string{"score", "verdict", "fit_range", "alignment_highlights", "gaps_concerns"},
}

// Evaluate invokes the oracle and returns the parsed assessment.
func (e *Evaluator) Evaluate(ctx context.Context, input *EvaluationInput) (*Assessment, error) {
	if input == nil || input.Profile == nil {
		return nil, fmt.Errorf("candidate profile is required")
	}
	if input.Job == nil {
		return nil, fmt.Errorf("job is required")
	}

	prompt := buildPrompt(input)

	raw, err := e.generator.GenerateJSON(ctx, prompt, assessmentSchema)
	if err != nil {
		return nil, err
	}

	return parseAssessment(raw)
}

func buildPrompt(input *EvaluationInput) string {
	var sb strings.Builder

	sb.WriteString("You are an expert technical recruiter evaluating a candidate against a specific job opening.\n\n")

	job := input.Job
	sb.WriteString("## JOB\n")
	sb.WriteString(fmt.Sprintf("Title: %s\n", job.Title))
	if job.Location != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", job.Location))
	}
	if job.SalaryMin > 0 || job.SalaryMax > 0 {
		sb.WriteString(fmt.Sprintf("Salary band: %.0f - %.0f\n", job.SalaryMin, job.SalaryMax))
	}
	sb.WriteString(fmt.Sprintf("Description: %s\n", job.Description))
	writeList(&sb, "Requirements", job.Requirements)
	writeList(&sb, "Skills", job.Skills)

	profile := input.Profile
	sb.WriteString("\n## CANDIDATE\n")
	name := profile.Name
	if name == "" && input.User != nil {
		name = input.User.Name
	}
	sb.WriteString(fmt.Sprintf("Name: %s\n", name))
	if profile.Headline != "" {
		sb.WriteString(fmt.Sprintf("Headline: %s\n", profile.Headline))
	}
	if profile.Location != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", profile.Location))
	}
	writeList(&sb, "Skills", profile.Skills)
	if profile.Bio != "" {
		sb.WriteString(fmt.Sprintf("About: %s\n", profile.Bio))
	}

	if experience := profile.GetExperience(); len(experience) > 0 {
		sb.WriteString("\n### EXPERIENCE\n")
		for _, exp := range experience {
			sb.WriteString(fmt.Sprintf("- %s at %s (%s - %s): %s\n",
				exp.Title, exp.Company, exp.StartDate, exp.EndDate, exp.Description))
		}
	}
	if education := profile.GetEducation(); len(education) > 0 {
		sb.WriteString("\n### EDUCATION\n")
		for _, edu := range education {
			sb.WriteString(fmt.Sprintf("- %s in %s, %s\n", edu.Degree, edu.Major, edu.School))
		}
	}
	if certs := profile.GetCertifications(); len(certs) > 0 {
		sb.WriteString("\n### CERTIFICATIONS\n")
		for _, cert := range certs {
			sb.WriteString(fmt.Sprintf("- %s (%s)\n", cert.Name, cert.Issuer))
		}
	}
	if profile.VideoURL != "" {
		sb.WriteString("\nThe candidate has recorded a video introduction.\n")
	}
	if input.ResumeText != "" {
		sb.WriteString("\n### RESUME TEXT\n")
		sb.WriteString(input.ResumeText)
		sb.WriteString("\n")
	}
	if input.CoverNote != "" {
		sb.WriteString("\n### COVER NOTE\n")
		sb.WriteString(input.CoverNote)
		sb.WriteString("\n")
	}

	sb.WriteString("\n## EVALUATION RUBRIC\n")
	sb.WriteString("Score strictly on evidence present in the candidate data. Do not award credit for unproven potential or assumed skills.\n")
	sb.WriteString("Scores are 0-10. A score of 8.5 or above means you strongly recommend interviewing this candidate.\n")
	sb.WriteString("fit_range must be one of: core_fit (directly matching background), adjacent_fit (closely related background), stretch_fit (partially related), misaligned (no meaningful overlap).\n")
	sb.WriteString("List concrete alignment_highlights and gaps_concerns, each tied to specific evidence.\n")

	return sb.String()
}

func writeList(sb *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(heading + ":\n")
	for _, item := range items {
		sb.WriteString(fmt.Sprintf("- %s\n", item))
	}
}

func parseAssessment(raw string) (*Assessment, error) {
	cleaned := extractJSON(raw)

	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, fmt.Errorf("parse oracle response: %w", err)
	}

	assessment := &Assessment{
		Score:               clampScore(coerceFloat(data["score"])),
		Verdict:             coerceString(data["verdict"]),
		FitRange:            normalizeFitRange(coerceString(data["fit_range"])),
		AlignmentHighlights: coerceStrings(data["alignment_highlights"]),
		GapsConcerns:        coerceStrings(data["gaps_concerns"]),
	}

	return assessment, nil
}

// extractJSON strips markdown code fences the model sometimes wraps around
// its JSON output.
func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	return strings.TrimSpace(strings.Trim(raw, "`"))
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 10 {
		return 10
	}
	return score
}

func normalizeFitRange(value string) string {
	switch models.FitRange(strings.ToLower(strings.TrimSpace(value))) {
	case models.FitRangeCore:
		return string(models.FitRangeCore)
	case models.FitRangeAdjacent:
		return string(models.FitRangeAdjacent)
	case models.FitRangeStretch:
		return string(models.FitRangeStretch)
	default:
		return string(models.FitRangeMisaligned)
	}
}

func coerceFloat(v any) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case int:
		return float64(val)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

func coerceString(v any) string {
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

func coerceStrings(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, item := range items {
		if s := coerceString(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}
