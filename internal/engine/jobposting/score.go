package jobposting

import (
	"regexp"
	"unicode/utf8"
)

type rule struct {
	earned int
	max    int
	issue  string
	rec    string
}

var (
	seniorityRe  = regexp.MustCompile(`(?i)\b(senior|junior|staff|principal|lead|intern|mid|entry)\b`)
	structureRe  = regexp.MustCompile(`(?i)(responsibilit|requirement|qualification|what you.ll do|about the role|benefits|we offer)`)
	quantifiedRe = regexp.MustCompile(`\d+\s*%|[$€£]\s*\d|\b\d{2,}\b`)
	remoteRe     = regexp.MustCompile(`(?i)\b(remote|hybrid|on-?site)\b`)
)

// ScoreQuality rates how complete and candidate-friendly a posting is.
// Rule tables mirror the profile scorer: additive points per field, scaled
// to the field weight, percentage-driven issue collection.
func ScoreQuality(p *Posting) *Quality {
	q := &Quality{Fields: make(map[string]*FieldResult, len(postingWeights))}

	fields := map[string][]rule{
		"title":       titleRules(p),
		"company":     companyRules(p),
		"location":    locationRules(p),
		"description": descriptionRules(p),
		"salary":      salaryRules(p),
		"skills":      skillsRules(p),
	}

	for name, rules := range fields {
		weight := postingWeights[name]
		res := &FieldResult{MaxScore: weight}

		earned, max := 0, 0
		for _, r := range rules {
			earned += r.earned
			max += r.max
			if r.earned < r.max && r.issue != "" {
				res.Issues = append(res.Issues, r.issue)
				res.Recommendations = append(res.Recommendations, r.rec)
			}
		}
		if max > 0 {
			res.Percentage = earned * 100 / max
			res.Score = (res.Percentage*weight + 50) / 100
		}

		q.Fields[name] = res
		q.TotalScore += res.Score
	}
	return q
}

func titleRules(p *Posting) []rule {
	n := utf8.RuneCountInString(p.Title)
	return []rule{
		{b2i(p.Title != "") * 8, 8,
			"Posting has no title", "A posting without a title will not be found"},
		{b2i(n >= 10 && n <= 80) * 4, 4,
			"Title length is outside the effective range", "Keep the title between 10 and 80 characters"},
		{b2i(seniorityRe.MatchString(p.Title)) * 3, 3,
			"Title does not state a seniority level", "Name the level: junior, senior, staff"},
	}
}

func companyRules(p *Posting) []rule {
	return []rule{
		{b2i(p.Company != "") * 10, 10,
			"No hiring company named", "Identify the hiring organization"},
	}
}

func locationRules(p *Posting) []rule {
	hasArrangement := remoteRe.MatchString(p.Location) ||
		remoteRe.MatchString(p.Title) || remoteRe.MatchString(p.Description)
	return []rule{
		{b2i(p.Location != "") * 6, 6,
			"No location given", "State the job location"},
		{b2i(hasArrangement) * 4, 4,
			"Work arrangement unclear", "State whether the role is remote, hybrid, or on-site"},
	}
}

func descriptionRules(p *Posting) []rule {
	n := utf8.RuneCountInString(p.Description)
	return []rule{
		{b2i(n > 0) * 10, 10,
			"Posting has no description", "Describe the role"},
		{b2i(n >= 300) * 10, 10,
			"Description is very short", "Expand the description past a few sentences"},
		{b2i(structureRe.MatchString(p.Description)) * 8, 8,
			"Description lacks structure", "Break out responsibilities and requirements"},
		{b2i(quantifiedRe.MatchString(p.Description)) * 7, 7,
			"Description has no concrete figures", "Add team size, scale, or compensation numbers"},
	}
}

func salaryRules(p *Posting) []rule {
	return []rule{
		{b2i(p.HasSalary()) * 15, 15,
			"No salary range disclosed", "Disclose a salary range"},
	}
}

func skillsRules(p *Posting) []rule {
	n := len(p.Skills)
	return []rule{
		{b2i(n >= 1) * 5, 5,
			"No skills identified", "List the required skills"},
		{b2i(n >= 3) * 5, 5,
			"Very few skills identified", "Name at least three core skills"},
		{b2i(n >= 5) * 5, 5,
			"Skill requirements are narrow", "Cover the full stack the role touches"},
	}
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
