package search

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"jobmatch_backend/internal/models"
)

func profileDoc(t *testing.T, id string, mutate func(p *models.CandidateProfile)) *Document {
	t.Helper()
	profile := &models.CandidateProfile{
		BaseModel: models.BaseModel{ID: id},
		UserID:    "user-" + id,
		Name:      "Test Candidate",
		IsPublic:  true,
	}
	if mutate != nil {
		mutate(profile)
	}
	return BuildDocument(profile, nil)
}

func TestExtractTerms(t *testing.T) {
	t.Parallel()

	t.Run("phrases first then tokens, deduplicated", func(t *testing.T) {
		terms := ExtractTerms(`senior "machine learning" engineer AND (remote OR "machine learning") engineer`)
		assert.Equal(t, []string{"machine learning", "senior", "engineer", "remote"}, terms)
	})

	t.Run("boolean keywords and short words are not terms", func(t *testing.T) {
		terms := ExtractTerms("go AND not or react js")
		assert.Equal(t, []string{"react"}, terms)
	})

	t.Run("empty query yields no terms", func(t *testing.T) {
		assert.Empty(t, ExtractTerms("   "))
	})
}

func TestRank_EmptyQueryReturnsEveryoneUnscored(t *testing.T) {
	t.Parallel()

	docs := []*Document{
		profileDoc(t, "a", nil),
		profileDoc(t, "b", nil),
	}

	results := Rank(docs, "")
	require.Len(t, results, 2)
	for _, res := range results {
		assert.Zero(t, res.Score)
		assert.Empty(t, res.Matches)
	}
	assert.Equal(t, "a", results[0].CandidateID)
	assert.Equal(t, "b", results[1].CandidateID)
}

func TestRank_QueryWithNoUsableTermsBehavesAsEmpty(t *testing.T) {
	t.Parallel()

	docs := []*Document{
		profileDoc(t, "a", nil),
		profileDoc(t, "b", nil),
	}

	// "go" is under the minimum token length and "AND NOT" is boolean
	// syntax, so no searchable terms remain and the query lists everyone.
	results := Rank(docs, "go AND NOT")
	require.Len(t, results, 2)
	for _, res := range results {
		assert.Zero(t, res.Score)
		assert.Empty(t, res.Matches)
	}
}

func TestRank_NonEmptyQueryDropsNonMatching(t *testing.T) {
	t.Parallel()

	docs := []*Document{
		profileDoc(t, "golang", func(p *models.CandidateProfile) {
			p.Skills = []string{"golang", "postgres"}
		}),
		profileDoc(t, "java", func(p *models.CandidateProfile) {
			p.Skills = []string{"java"}
		}),
	}

	results := Rank(docs, "golang")
	require.Len(t, results, 1)
	assert.Equal(t, "golang", results[0].CandidateID)
	assert.Positive(t, results[0].Score)
	require.Len(t, results[0].Matches, 1)
	assert.Equal(t, SourceSkills, results[0].Matches[0].Source)
	assert.Equal(t, "golang", results[0].Matches[0].Term)
}

func TestRank_ScoreMonotonicInOccurrences(t *testing.T) {
	t.Parallel()

	once := profileDoc(t, "once", func(p *models.CandidateProfile) {
		p.Bio = "kubernetes"
	})
	twice := profileDoc(t, "twice", func(p *models.CandidateProfile) {
		p.Bio = "kubernetes and more kubernetes"
	})

	scoreOnce, _ := ScoreDocument(once, []string{"kubernetes"})
	scoreTwice, _ := ScoreDocument(twice, []string{"kubernetes"})
	assert.Greater(t, scoreTwice, scoreOnce)
}

func TestRank_NameOutweighsLocation(t *testing.T) {
	t.Parallel()

	inName := profileDoc(t, "by-name", func(p *models.CandidateProfile) {
		p.Name = "Austin Reed"
	})
	inLocation := profileDoc(t, "by-location", func(p *models.CandidateProfile) {
		p.Name = "Someone Else"
		p.Location = "Austin, TX"
	})

	results := Rank([]*Document{inLocation, inName}, "austin")
	require.Len(t, results, 2)
	assert.Equal(t, "by-name", results[0].CandidateID)
	assert.Greater(t, results[0].Score, results[1].Score)
}

func TestRank_EqualScoresKeepInputOrder(t *testing.T) {
	t.Parallel()

	first := profileDoc(t, "first", func(p *models.CandidateProfile) {
		p.Headline = "rust developer"
	})
	second := profileDoc(t, "second", func(p *models.CandidateProfile) {
		p.Headline = "rust developer"
	})

	results := Rank([]*Document{first, second}, "rust")
	require.Len(t, results, 2)
	assert.Equal(t, "first", results[0].CandidateID)
	assert.Equal(t, "second", results[1].CandidateID)
}

func TestScoreDocument_OneMatchPerSource(t *testing.T) {
	t.Parallel()

	doc := profileDoc(t, "multi", func(p *models.CandidateProfile) {
		p.Headline = "react and vue specialist"
	})

	_, matches := ScoreDocument(doc, []string{"react", "vue"})

	perSource := make(map[Source]int)
	for _, m := range matches {
		perSource[m.Source]++
	}
	for src, count := range perSource {
		assert.Equal(t, 1, count, "source %s has more than one match entry", src)
	}
	// First qualifying term in query order wins the explanation slot.
	for _, m := range matches {
		if m.Source == SourceHeadline {
			assert.Equal(t, "react", m.Term)
		}
	}
}

func TestSnippet_EllipsisOnlyWhenTruncated(t *testing.T) {
	t.Parallel()

	short := snippet("golang developer", "golang")
	assert.Equal(t, "golang developer", short)

	long := snippet(strings.Repeat("x", 100)+" golang "+strings.Repeat("y", 100), "golang")
	assert.True(t, strings.HasPrefix(long, "..."))
	assert.True(t, strings.HasSuffix(long, "..."))
	assert.Contains(t, long, "golang")
}

func TestSnippet_MultibyteTextStaysValidUTF8(t *testing.T) {
	t.Parallel()

	bio := strings.Repeat("опытный разработчик ", 10) + "golang " + strings.Repeat("микросервисы ", 10)
	got := snippet(bio, "golang")

	assert.True(t, utf8.ValidString(got))
	assert.Contains(t, got, "golang")
	assert.True(t, strings.HasPrefix(got, "..."))
	assert.True(t, strings.HasSuffix(got, "..."))
}

func TestBuildDocument_MalformedResumeMetadataSkipped(t *testing.T) {
	t.Parallel()

	doc := profileDoc(t, "bad-meta", func(p *models.CandidateProfile) {
		p.ResumeMetadata = datatypes.JSON([]byte(`{not json`))
		p.ResumeText = "plain resume text"
	})

	_, hasMeta := doc.Sources[SourceResumeMetadata]
	assert.False(t, hasMeta)
	assert.Equal(t, "plain resume text", doc.Sources[SourceResumeText])
}

func TestBuildDocument_ResumeMetadataIndexed(t *testing.T) {
	t.Parallel()

	doc := profileDoc(t, "meta", func(p *models.CandidateProfile) {
		p.ResumeMetadata = datatypes.JSON([]byte(
			`{"summary":"Platform engineer","skills":["terraform"],"highlights":["Led migration"]}`))
	})

	meta := doc.Sources[SourceResumeMetadata]
	assert.Contains(t, meta, "platform engineer")
	assert.Contains(t, meta, "terraform")
	assert.Contains(t, meta, "led migration")
}

func TestBuildDocument_BioTagsStripped(t *testing.T) {
	t.Parallel()

	doc := profileDoc(t, "rich-bio", func(p *models.CandidateProfile) {
		p.Bio = "<p>Backend engineer</p><ul><li>Go</li></ul>"
	})

	assert.Equal(t, "backend engineer go", doc.Sources[SourceBio])
}

func TestMatchesBoolean(t *testing.T) {
	t.Parallel()

	searchable := "react developer remote friendly senior"

	assert.True(t, MatchesBoolean(searchable, "react and (remote or hybrid) and not junior"))
	assert.False(t, MatchesBoolean(searchable, "react and (remote or hybrid) and not senior"))
	assert.False(t, MatchesBoolean("angular developer onsite", "react and (remote or hybrid) and not junior"))
	assert.True(t, MatchesBoolean("react hybrid junior dev", "react and (remote or hybrid)"))
	assert.True(t, MatchesBoolean("anything at all", ""))
}
