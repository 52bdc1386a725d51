// Package profile implements the LinkedIn profile analysis pipeline:
// DOM extraction, keyword-scan fallback, merge, and heuristic quality scoring.
// Every analysis run is a pure function of the parsed page — no state is
// carried between invocations.
package profile

// Section identifies one semantic unit of profile content.
type Section string

const (
	SectionPhoto           Section = "photo"
	SectionBanner          Section = "banner"
	SectionHeadline        Section = "headline"
	SectionAbout           Section = "about"
	SectionExperience      Section = "experience"
	SectionSkills          Section = "skills"
	SectionEducation       Section = "education"
	SectionOpenToWork      Section = "openToWork"
	SectionCustomURL       Section = "customUrl"
	SectionCertifications  Section = "certifications"
	SectionRecommendations Section = "recommendations"
)

// sectionOrder fixes iteration order for deterministic output.
var sectionOrder = []Section{
	SectionPhoto, SectionBanner, SectionHeadline, SectionAbout,
	SectionExperience, SectionSkills, SectionEducation, SectionOpenToWork,
	SectionCustomURL, SectionCertifications, SectionRecommendations,
}

// Status classifies a section's health from its percentage.
type Status string

const (
	StatusCompleted  Status = "completed"  // percentage >= 80
	StatusSuggestion Status = "suggestion" // 50..79
	StatusWarning    Status = "warning"    // < 50 or absent
)

// QualityBasic marks sections whose content came from the keyword fallback
// rather than the primary extractor.
const QualityBasic = "basic"

// Entry is one record in a collection-valued section.
type Entry struct {
	Title       string `json:"title"`
	Org         string `json:"org,omitempty"`
	Duration    string `json:"duration,omitempty"`
	Description string `json:"description,omitempty"`
}

// SectionResult is the extraction + scoring outcome for one section.
type SectionResult struct {
	Present          bool    `json:"present"`
	Content          string  `json:"content,omitempty"`
	Entries          []Entry `json:"entries,omitempty"`
	Count            int     `json:"count,omitempty"`
	Quality          string  `json:"quality,omitempty"`
	Score            int     `json:"score"`
	MaxScore         int     `json:"max_score"`
	Percentage       int     `json:"percentage"`
	Status           Status  `json:"status"`
	Issues           []string `json:"issues,omitempty"`
	Recommendations  []string `json:"recommendations,omitempty"`
	AIRecommendation string   `json:"ai_recommendation,omitempty"`
}

// Snapshot is the complete, JSON-serializable result of one analysis pass.
type Snapshot struct {
	Sections      map[Section]*SectionResult `json:"sections"`
	TotalScore    int                        `json:"total_score"`
	TopPriorities []string                   `json:"top_priorities"`
	Summary       string                     `json:"summary"`
	Language      string                     `json:"language"`
}

// WeightTable maps sections to their maximum point weight. Tables used for
// scoring must sum to 100 so the composite is naturally bounded.
type WeightTable map[Section]int

// Total returns the sum of all weights.
func (w WeightTable) Total() int {
	t := 0
	for _, v := range w {
		t += v
	}
	return t
}

// ProfileWeights is the canonical weight table for LinkedIn profile scoring.
// The sum is 100.
var ProfileWeights = WeightTable{
	SectionPhoto:           5,
	SectionBanner:          3,
	SectionHeadline:        10,
	SectionAbout:           15,
	SectionExperience:      20,
	SectionSkills:          10,
	SectionEducation:       8,
	SectionOpenToWork:      4,
	SectionCustomURL:       5,
	SectionCertifications:  10,
	SectionRecommendations: 10,
}

// ResumeWeights is the weight table for résumé scoring, which has no
// page-presentation sections. The sum is 100.
var ResumeWeights = WeightTable{
	SectionAbout:          15, // summary
	SectionExperience:     30,
	SectionSkills:         20,
	SectionEducation:      15,
	SectionCertifications: 20,
}

// Extraction is the intermediate field set produced by the extractor and
// amended by the fallback merge, before scoring.
type Extraction struct {
	Name     string
	Headline string
	About    string

	PhotoURL  string
	BannerURL string

	OpenToWork bool
	ProfileURL string

	Experience     []Entry
	Education      []Entry
	Certifications []Entry
	Skills         []string
	SkillCount     int

	RecommendationCount int

	// Basic marks sections populated by the fallback detector.
	Basic map[Section]bool
}

// NewExtraction returns an empty extraction ready for population.
func NewExtraction() *Extraction {
	return &Extraction{Basic: make(map[Section]bool)}
}
