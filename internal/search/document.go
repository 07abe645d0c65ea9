package search

import (
	"encoding/json"
	"strings"

	"jobmatch_backend/internal/logger"
	"jobmatch_backend/internal/models"
)

// Document is the ephemeral, queryable form of one candidate. It is rebuilt
// from the profile on every search and never persisted.
type Document struct {
	CandidateID string
	UserID      string
	Sources     map[Source]string
	FullText    string
}

// BuildDocument assembles the weighted text index for one candidate+user
// pair. All source texts are lowercased; absent fields are omitted. A
// malformed resume-metadata blob is skipped with a warning, never fatal.
func BuildDocument(profile *models.CandidateProfile, user *models.User) *Document {
	doc := &Document{
		CandidateID: profile.ID,
		UserID:      profile.UserID,
		Sources:     make(map[Source]string),
	}

	add := func(src Source, text string) {
		text = strings.ToLower(strings.TrimSpace(text))
		if text != "" {
			doc.Sources[src] = text
		}
	}

	name := profile.Name
	if name == "" && user != nil {
		name = user.Name
	}
	add(SourceName, name)
	add(SourceHeadline, profile.Headline)
	add(SourceSkills, strings.Join(profile.Skills, " "))
	add(SourceBio, stripTags(profile.Bio))
	add(SourceLocation, profile.Location)

	var titles, companies, descriptions []string
	for _, exp := range profile.GetExperience() {
		if exp.Title != "" {
			titles = append(titles, exp.Title)
		}
		if exp.Company != "" {
			companies = append(companies, exp.Company)
		}
		if exp.Description != "" {
			descriptions = append(descriptions, exp.Description)
		}
	}
	add(SourceExperienceTitle, strings.Join(titles, " "))
	add(SourceExperienceCompany, strings.Join(companies, " "))
	add(SourceExperienceDescription, strings.Join(descriptions, " "))

	var education []string
	for _, edu := range profile.GetEducation() {
		education = append(education, strings.TrimSpace(edu.Degree+" "+edu.Major+" "+edu.School))
	}
	add(SourceEducation, strings.Join(education, " "))

	var certs []string
	for _, cert := range profile.GetCertifications() {
		certs = append(certs, strings.TrimSpace(cert.Name+" "+cert.Issuer))
	}
	add(SourceCertifications, strings.Join(certs, " "))

	add(SourceResumeText, profile.ResumeText)

	if len(profile.ResumeMetadata) > 0 {
		var meta models.ResumeMetadataDoc
		if err := json.Unmarshal(profile.ResumeMetadata, &meta); err != nil {
			logger.Warn("skipping malformed resume metadata",
				"candidate_id", profile.ID, "error", err.Error())
		} else {
			parts := []string{meta.Summary}
			parts = append(parts, meta.Skills...)
			parts = append(parts, meta.Highlights...)
			add(SourceResumeMetadata, strings.Join(parts, " "))
		}
	}

	var all []string
	for _, src := range sourceOrder {
		if text, ok := doc.Sources[src]; ok {
			all = append(all, text)
		}
	}
	doc.FullText = strings.Join(all, " ")

	return doc
}

// stripTags removes markup tags from rich-text bio content so matching runs
// against the visible text only.
func stripTags(s string) string {
	if !strings.ContainsRune(s, '<') {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
			// tags act as word separators
			b.WriteRune(' ')
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
