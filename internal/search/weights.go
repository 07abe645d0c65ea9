package search

// Source identifies one field group of the candidate document.
type Source string

const (
	SourceName                  Source = "name"
	SourceSkills                Source = "skills"
	SourceHeadline              Source = "headline"
	SourceExperienceTitle       Source = "experience_title"
	SourceResumeMetadata        Source = "resume_metadata"
	SourceExperienceCompany     Source = "experience_company"
	SourceResumeText            Source = "resume_text"
	SourceBio                   Source = "bio"
	SourceCertifications        Source = "certifications"
	SourceExperienceDescription Source = "experience_description"
	SourceEducation             Source = "education"
	SourceLocation              Source = "location"
)

// sourceWeights fixes the relative importance of each field group. The
// ordering name > skills > headline > titles > companies/resume > bio >
// education > location is part of the search contract and covered by tests.
var sourceWeights = map[Source]float64{
	SourceName:                  10,
	SourceSkills:                9,
	SourceHeadline:              8,
	SourceExperienceTitle:       7,
	SourceResumeMetadata:        7,
	SourceExperienceCompany:     6,
	SourceResumeText:            6,
	SourceBio:                   5,
	SourceCertifications:        5,
	SourceExperienceDescription: 5,
	SourceEducation:             4,
	SourceLocation:              3,
}

// sourceOrder is the deterministic iteration order for scoring and match
// explanations: weight descending, stable for equal weights.
var sourceOrder = []Source{
	SourceName,
	SourceSkills,
	SourceHeadline,
	SourceExperienceTitle,
	SourceResumeMetadata,
	SourceExperienceCompany,
	SourceResumeText,
	SourceBio,
	SourceCertifications,
	SourceExperienceDescription,
	SourceEducation,
	SourceLocation,
}

// sourceLabels are the human-readable names used in match explanations.
var sourceLabels = map[Source]string{
	SourceName:                  "Name",
	SourceSkills:                "Skills",
	SourceHeadline:              "Headline",
	SourceExperienceTitle:       "Experience title",
	SourceResumeMetadata:        "Resume summary",
	SourceExperienceCompany:     "Experience company",
	SourceResumeText:            "Resume",
	SourceBio:                   "About",
	SourceCertifications:        "Certifications",
	SourceExperienceDescription: "Experience description",
	SourceEducation:             "Education",
	SourceLocation:              "Location",
}

// Weight returns the scoring weight of a source (0 for unknown sources).
func Weight(src Source) float64 {
	return sourceWeights[src]
}

// Label returns the display label of a source.
func Label(src Source) string {
	if label, ok := sourceLabels[src]; ok {
		return label
	}
	return string(src)
}
