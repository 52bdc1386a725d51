package profile

import (
	"math"
	"strings"
	"testing"
)

const goodHeadline = "Senior Software Engineer | Cloud Platforms with Go and React"

const goodAbout = "I build distributed billing platforms in Go and Kubernetes for fintech teams. " +
	"Over the last four years I cut infrastructure spend by 30% and scaled throughput " +
	"past 50000 requests per second while mentoring a team of engineers. " +
	"Reach out if you want to talk platform architecture."

func quantifiedEntry(title string) Entry {
	return Entry{
		Title:       title,
		Org:         "Acme Corp",
		Duration:    "2021 - Present",
		Description: "Led a team of 12 engineers and cut deploy times by 40% across the whole platform.",
	}
}

// fullExtraction scores 99/100: every section maxed except the headline,
// which names only two searchable skills.
func fullExtraction() *Extraction {
	return &Extraction{
		Name:       "Jane Doe",
		Headline:   goodHeadline,
		About:      goodAbout,
		PhotoURL:   "https://media.example.com/photo.jpg",
		BannerURL:  "https://media.example.com/banner.jpg",
		OpenToWork: true,
		ProfileURL: "https://www.linkedin.com/in/jane-doe/",
		Experience: []Entry{
			quantifiedEntry("Senior Software Engineer"),
			quantifiedEntry("Software Engineer"),
			quantifiedEntry("Junior Software Engineer"),
		},
		Education: []Entry{
			{Title: "State University", Org: "BSc Computer Science", Duration: "2013 - 2017"},
		},
		Certifications: []Entry{
			{Title: "CKA"}, {Title: "CKAD"}, {Title: "AWS Solutions Architect"},
		},
		SkillCount:          12,
		RecommendationCount: 3,
		Basic:               make(map[Section]bool),
	}
}

func TestWeightTablesSumTo100(t *testing.T) {
	if got := ProfileWeights.Total(); got != 100 {
		t.Errorf("ProfileWeights.Total() = %d, want 100", got)
	}
	if got := ResumeWeights.Total(); got != 100 {
		t.Errorf("ResumeWeights.Total() = %d, want 100", got)
	}
}

func TestScoreFullProfile(t *testing.T) {
	snap := Score(fullExtraction(), ProfileWeights, GetLocale("en"))

	if snap.TotalScore != 99 {
		t.Errorf("TotalScore = %d, want 99", snap.TotalScore)
	}
	if len(snap.Sections) != len(ProfileWeights) {
		t.Errorf("Sections len = %d, want %d", len(snap.Sections), len(ProfileWeights))
	}

	sum := 0
	for sec, res := range snap.Sections {
		sum += res.Score
		if res.Score > res.MaxScore {
			t.Errorf("%s: score %d exceeds max %d", sec, res.Score, res.MaxScore)
		}
		if res.MaxScore != ProfileWeights[sec] {
			t.Errorf("%s: MaxScore = %d, want weight %d", sec, res.MaxScore, ProfileWeights[sec])
		}
	}
	if sum != snap.TotalScore {
		t.Errorf("section scores sum to %d, TotalScore = %d", sum, snap.TotalScore)
	}

	if len(snap.TopPriorities) != 1 || !strings.HasPrefix(snap.TopPriorities[0], "Headline") {
		t.Errorf("TopPriorities = %v, want the single remaining headline gap", snap.TopPriorities)
	}
	if snap.Summary == "" {
		t.Error("Summary empty")
	}
}

func TestHeadlineScoring(t *testing.T) {
	// 60 chars, role keyword, separator, two searchable skills: 9/10.
	ext := NewExtraction()
	ext.Headline = goodHeadline
	res := scoreSection(ext, SectionHeadline, ProfileWeights[SectionHeadline], GetLocale("en"))

	if !res.Present {
		t.Fatal("Present = false")
	}
	if res.Percentage != 90 {
		t.Errorf("Percentage = %d, want 90", res.Percentage)
	}
	if res.Score != 9 {
		t.Errorf("Score = %d, want 9", res.Score)
	}
	if res.Status != StatusCompleted {
		t.Errorf("Status = %s, want %s", res.Status, StatusCompleted)
	}
	// The only unmet rule is the skill-mention count.
	if len(res.Issues) != 1 || !strings.Contains(res.Issues[0], "skills") {
		t.Errorf("Issues = %v, want single skill-mention issue", res.Issues)
	}
}

func TestHeadlineShortNoStructure(t *testing.T) {
	ext := NewExtraction()
	ext.Headline = "Engineer"
	res := scoreSection(ext, SectionHeadline, ProfileWeights[SectionHeadline], GetLocale("en"))

	// Keyword rule only: 3/10.
	if res.Percentage != 30 {
		t.Errorf("Percentage = %d, want 30", res.Percentage)
	}
	if res.Status != StatusWarning {
		t.Errorf("Status = %s, want %s", res.Status, StatusWarning)
	}
}

func TestAboutMissing(t *testing.T) {
	res := scoreSection(NewExtraction(), SectionAbout, ProfileWeights[SectionAbout], GetLocale("en"))

	if res.Present {
		t.Fatal("Present = true for empty about")
	}
	if res.Score != 0 || res.Status != StatusWarning {
		t.Errorf("Score = %d, Status = %s, want 0/%s", res.Score, res.Status, StatusWarning)
	}
	if len(res.Issues) != 1 || !strings.Contains(res.Issues[0], "About section is empty") {
		t.Errorf("Issues = %v, want missing-about issue", res.Issues)
	}
	if len(res.Recommendations) == 0 {
		t.Error("no recommendation for missing about")
	}
}

func TestAboutFullMarks(t *testing.T) {
	ext := NewExtraction()
	ext.About = goodAbout
	res := scoreSection(ext, SectionAbout, ProfileWeights[SectionAbout], GetLocale("en"))

	if res.Percentage != 100 {
		t.Errorf("Percentage = %d, want 100; issues: %v", res.Percentage, res.Issues)
	}
	if res.Score != 15 {
		t.Errorf("Score = %d, want 15", res.Score)
	}
}

func TestSkillsThresholds(t *testing.T) {
	tests := []struct {
		count      int
		percentage int
		status     Status
	}{
		{0, 0, StatusWarning},
		{3, 30, StatusWarning},
		{5, 60, StatusSuggestion},
		{10, 100, StatusCompleted},
		{12, 100, StatusCompleted},
	}
	for _, tt := range tests {
		ext := NewExtraction()
		ext.SkillCount = tt.count
		res := scoreSection(ext, SectionSkills, ProfileWeights[SectionSkills], GetLocale("en"))
		if res.Percentage != tt.percentage || res.Status != tt.status {
			t.Errorf("count %d: got %d%%/%s, want %d%%/%s",
				tt.count, res.Percentage, res.Status, tt.percentage, tt.status)
		}
	}
}

func TestSkillsFewRecommendsMore(t *testing.T) {
	ext := NewExtraction()
	ext.SkillCount = 3
	res := scoreSection(ext, SectionSkills, ProfileWeights[SectionSkills], GetLocale("en"))

	joined := strings.Join(res.Recommendations, " ")
	if !strings.Contains(joined, "at least 5") {
		t.Errorf("Recommendations = %v, want advice to reach 5 skills", res.Recommendations)
	}
}

func TestExperienceFullMarks(t *testing.T) {
	ext := NewExtraction()
	ext.Experience = []Entry{
		quantifiedEntry("Senior Software Engineer"),
		quantifiedEntry("Software Engineer"),
		quantifiedEntry("Junior Software Engineer"),
	}
	res := scoreSection(ext, SectionExperience, ProfileWeights[SectionExperience], GetLocale("en"))

	if res.Percentage != 100 || res.Score != 20 {
		t.Errorf("got %d%% score %d, want 100%% score 20; issues: %v",
			res.Percentage, res.Score, res.Issues)
	}
	if res.Status != StatusCompleted {
		t.Errorf("Status = %s, want %s", res.Status, StatusCompleted)
	}
}

func TestExperiencePartialDescriptions(t *testing.T) {
	// One quantified description out of two scales the description rules.
	ext := NewExtraction()
	ext.Experience = []Entry{
		quantifiedEntry("Senior Software Engineer"),
		{Title: "Software Engineer", Org: "Globex Ltd"},
	}
	res := scoreSection(ext, SectionExperience, ProfileWeights[SectionExperience], GetLocale("en"))

	// 5 (any) + 0 (<3 entries) + 3 (half described) + 3 (half quantified) = 11/20.
	if res.Percentage != 55 {
		t.Errorf("Percentage = %d, want 55", res.Percentage)
	}
	if res.Status != StatusSuggestion {
		t.Errorf("Status = %s, want %s", res.Status, StatusSuggestion)
	}
}

func TestEducationRules(t *testing.T) {
	ext := NewExtraction()
	ext.Education = []Entry{{Title: "State University"}}
	res := scoreSection(ext, SectionEducation, ProfileWeights[SectionEducation], GetLocale("en"))
	// Entry present, no degree, no dates: 4/8.
	if res.Percentage != 50 {
		t.Errorf("bare entry Percentage = %d, want 50", res.Percentage)
	}

	ext.Education = []Entry{{Title: "State University", Org: "BSc Computer Science", Duration: "2013 - 2017"}}
	res = scoreSection(ext, SectionEducation, ProfileWeights[SectionEducation], GetLocale("en"))
	if res.Percentage != 100 {
		t.Errorf("full entry Percentage = %d, want 100; issues: %v", res.Percentage, res.Issues)
	}
}

func TestCustomURLAutoGenerated(t *testing.T) {
	ext := NewExtraction()
	ext.ProfileURL = "https://www.linkedin.com/in/jane-doe-1a2b345678/"
	res := scoreSection(ext, SectionCustomURL, ProfileWeights[SectionCustomURL], GetLocale("en"))

	// URL found (2) but slug is default (0 of 3): 40%.
	if res.Percentage != 40 {
		t.Errorf("Percentage = %d, want 40", res.Percentage)
	}
	joined := strings.Join(res.Recommendations, " ")
	if !strings.Contains(joined, "Customize") {
		t.Errorf("Recommendations = %v, want slug customization advice", res.Recommendations)
	}
}

func TestTopPrioritiesOrderedByImpact(t *testing.T) {
	ext := fullExtraction()
	ext.About = ""
	ext.Certifications = nil
	snap := Score(ext, ProfileWeights, GetLocale("en"))

	if len(snap.TopPriorities) != 3 {
		t.Fatalf("TopPriorities = %v, want 3 entries", snap.TopPriorities)
	}
	if !strings.HasPrefix(snap.TopPriorities[0], "About (+15)") {
		t.Errorf("TopPriorities[0] = %q, want About first", snap.TopPriorities[0])
	}
	if !strings.HasPrefix(snap.TopPriorities[1], "Certifications (+10)") {
		t.Errorf("TopPriorities[1] = %q, want Certifications second", snap.TopPriorities[1])
	}
}

func TestNarrativeBands(t *testing.T) {
	loc := GetLocale("en")
	tests := []struct {
		total int
		want  string
	}{
		{95, "Outstanding"},
		{80, "Strong profile"},
		{65, "Solid foundation"},
		{45, "underselling"},
		{10, "substantial work"},
	}
	for _, tt := range tests {
		if got := loc.Narrative(tt.total); !strings.Contains(got, tt.want) {
			t.Errorf("Narrative(%d) = %q, want substring %q", tt.total, got, tt.want)
		}
	}
}

func TestScoreResume(t *testing.T) {
	snap := ScoreResume(fullExtraction(), "en")

	if len(snap.Sections) != len(ResumeWeights) {
		t.Errorf("Sections len = %d, want %d", len(snap.Sections), len(ResumeWeights))
	}
	if _, ok := snap.Sections[SectionPhoto]; ok {
		t.Error("resume scoring included a page-presentation section")
	}
	if snap.TotalScore != 100 {
		t.Errorf("TotalScore = %d, want 100", snap.TotalScore)
	}
	if res := snap.Sections[SectionExperience]; res.MaxScore != 30 {
		t.Errorf("experience MaxScore = %d, want resume weight 30", res.MaxScore)
	}
}

func TestScoreResumeRoundingConsistency(t *testing.T) {
	// A bare education entry earns 4 of 8 raw points. Under the résumé
	// weight of 15 the scaled score is 8, and the percentage must be
	// derived from that score, not from the raw points.
	ext := NewExtraction()
	ext.Education = []Entry{{Title: "State University"}}
	res := scoreSection(ext, SectionEducation, ResumeWeights[SectionEducation], GetLocale("en"))

	if res.Score != 8 || res.MaxScore != 15 {
		t.Fatalf("Score/MaxScore = %d/%d, want 8/15", res.Score, res.MaxScore)
	}
	if res.Percentage != 53 {
		t.Errorf("Percentage = %d, want 53", res.Percentage)
	}
	if res.Status != StatusSuggestion {
		t.Errorf("Status = %s, want %s", res.Status, StatusSuggestion)
	}
}

func TestScorePercentageDerivedFromScore(t *testing.T) {
	// Partial content in several sections, scored under both weight tables:
	// percentage == round(100 * score / max) must hold everywhere.
	ext := fullExtraction()
	ext.Education = []Entry{{Title: "State University"}}
	ext.Experience = ext.Experience[:2]
	ext.SkillCount = 5

	for name, weights := range map[string]WeightTable{"profile": ProfileWeights, "resume": ResumeWeights} {
		snap := Score(ext, weights, GetLocale("en"))
		for sec, res := range snap.Sections {
			if res.MaxScore == 0 {
				continue
			}
			want := int(math.Round(100 * float64(res.Score) / float64(res.MaxScore)))
			if res.Percentage != want {
				t.Errorf("%s/%s: Percentage = %d, want %d (score %d of %d)",
					name, sec, res.Percentage, want, res.Score, res.MaxScore)
			}
		}
	}
}

func TestScoreZhLocale(t *testing.T) {
	ext := NewExtraction()
	ext.SkillCount = 3
	snap := Score(ext, ProfileWeights, GetLocale("zh"))

	if snap.Language != "zh" {
		t.Errorf("Language = %q, want zh", snap.Language)
	}
	res := snap.Sections[SectionAbout]
	if len(res.Issues) == 0 || res.Issues[0] != "简介为空" {
		t.Errorf("zh missing-about issue = %v", res.Issues)
	}
}
