// Package jobposting extracts structured data from LinkedIn job-posting
// pages and scores posting quality, plus a keyword matcher between a résumé
// and a posting description.
package jobposting

// Posting is the structured content of one job-posting page.
type Posting struct {
	Title          string   `json:"title"`
	Company        string   `json:"company"`
	Location       string   `json:"location"`
	EmploymentType string   `json:"employment_type,omitempty"`
	Description    string   `json:"description"` // markdown
	SalaryMin      float64  `json:"salary_min,omitempty"`
	SalaryMax      float64  `json:"salary_max,omitempty"`
	Currency       string   `json:"currency,omitempty"`
	Skills         []string `json:"skills,omitempty"`
	URL            string   `json:"url,omitempty"`
	JobID          string   `json:"job_id,omitempty"`
}

// HasSalary reports whether the posting discloses any compensation figure.
func (p *Posting) HasSalary() bool {
	return p.SalaryMin > 0 || p.SalaryMax > 0
}

// FieldResult is the quality outcome for one posting field.
type FieldResult struct {
	Score           int      `json:"score"`
	MaxScore        int      `json:"max_score"`
	Percentage      int      `json:"percentage"`
	Issues          []string `json:"issues,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
}

// Quality is the posting quality score: how complete and candidate-friendly
// the posting itself is, independent of any résumé.
type Quality struct {
	Fields     map[string]*FieldResult `json:"fields"`
	TotalScore int                     `json:"total_score"`
}

// postingWeights maps posting fields to max points. Sums to 100.
var postingWeights = map[string]int{
	"title":       15,
	"company":     10,
	"location":    10,
	"description": 35,
	"salary":      15,
	"skills":      15,
}

// MatchResult is the résumé-to-posting keyword overlap.
type MatchResult struct {
	Score    float64  `json:"score"` // Jaccard x 100, one decimal
	Matching []string `json:"matching"`
	Missing  []string `json:"missing"` // capped at 20
}
