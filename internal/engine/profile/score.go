package profile

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// rule is one scored criterion inside a section: earned out of max raw
// points, with a message key emitted when the criterion is not fully met.
type rule struct {
	earned int
	max    int
	key    string
}

var (
	degreeRe = regexp.MustCompile(`(?i)\b(bachelor|master|ph\.?d|mba|b\.?sc?|m\.?sc?|b\.?a|m\.?a|diploma)\b|学士|硕士|博士`)
	yearRe   = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	ctaRe    = regexp.MustCompile(`(?i)(contact|reach out|get in touch|email|e-mail|dm me|let's connect|open to|@|联系)`)
)

const (
	headlineMinLen = 40
	headlineMaxLen = 120
	aboutShortLen  = 50
	aboutDepthLen  = 200
	descMinLen     = 50
)

// Score turns an extraction into a snapshot under the given weight table.
// Sections absent from the table are skipped entirely, so the same pipeline
// serves both profile and résumé scoring. Weights must sum to 100.
func Score(ext *Extraction, weights WeightTable, loc *Locale) *Snapshot {
	snap := &Snapshot{
		Sections: make(map[Section]*SectionResult, len(weights)),
		Language: loc.Lang,
	}

	for _, sec := range sectionOrder {
		weight, ok := weights[sec]
		if !ok {
			continue
		}
		res := scoreSection(ext, sec, weight, loc)
		snap.Sections[sec] = res
		snap.TotalScore += res.Score
	}

	snap.TopPriorities = topPriorities(snap.Sections, weights, loc)
	snap.Summary = loc.Narrative(snap.TotalScore)
	return snap
}

func scoreSection(ext *Extraction, sec Section, weight int, loc *Locale) *SectionResult {
	res := &SectionResult{MaxScore: weight}

	var rules []rule
	switch sec {
	case SectionPhoto:
		res.Present = ext.PhotoURL != ""
		rules = []rule{{b2i(res.Present) * 5, 5, ""}}
	case SectionBanner:
		res.Present = ext.BannerURL != ""
		rules = []rule{{b2i(res.Present) * 3, 3, ""}}
	case SectionHeadline:
		res.Present = ext.Headline != ""
		res.Content = ext.Headline
		rules = headlineRules(ext.Headline)
	case SectionAbout:
		res.Present = ext.About != ""
		res.Content = ext.About
		rules = aboutRules(ext.About)
	case SectionExperience:
		res.Present = len(ext.Experience) > 0
		res.Entries = ext.Experience
		res.Count = len(ext.Experience)
		rules = experienceRules(ext.Experience)
	case SectionSkills:
		count := ext.SkillCount
		if count < len(ext.Skills) {
			count = len(ext.Skills)
		}
		res.Present = count > 0
		res.Count = count
		rules = skillsRules(count)
	case SectionEducation:
		res.Present = len(ext.Education) > 0
		res.Entries = ext.Education
		res.Count = len(ext.Education)
		rules = educationRules(ext.Education)
	case SectionOpenToWork:
		res.Present = ext.OpenToWork
		rules = []rule{{b2i(ext.OpenToWork) * 4, 4, "open_to_work"}}
	case SectionCustomURL:
		res.Present = ext.ProfileURL != ""
		res.Content = ext.ProfileURL
		rules = []rule{
			{b2i(ext.ProfileURL != "") * 2, 2, "custom_url_set"},
			{b2i(hasCustomSlug(ext.ProfileURL)) * 3, 3, "custom_url_custom"},
		}
	case SectionCertifications:
		res.Present = len(ext.Certifications) > 0
		res.Entries = ext.Certifications
		res.Count = len(ext.Certifications)
		rules = []rule{
			{b2i(len(ext.Certifications) >= 1) * 6, 6, "certs_any"},
			{b2i(len(ext.Certifications) >= 3) * 4, 4, "certs_more"},
		}
	case SectionRecommendations:
		res.Present = ext.RecommendationCount > 0
		res.Count = ext.RecommendationCount
		rules = []rule{
			{b2i(ext.RecommendationCount >= 1) * 5, 5, "recs_any"},
			{b2i(ext.RecommendationCount >= 3) * 5, 5, "recs_more"},
		}
	}

	if !res.Present {
		res.Score = 0
		res.Percentage = 0
		res.Status = StatusWarning
		key := "missing_" + string(sec)
		if loc.Issue(key) != "" {
			res.Issues = append(res.Issues, loc.Issue(key))
			res.Recommendations = append(res.Recommendations, loc.Rec(key))
		}
		return res
	}

	applyRules(res, rules, weight, loc)

	if ext.Basic[sec] {
		res.Quality = QualityBasic
		res.Issues = append(res.Issues, loc.Issue("fallback_basic"))
		res.Recommendations = append(res.Recommendations, loc.Rec("fallback_basic"))
	}
	return res
}

// applyRules scales raw rule points into the section weight and collects
// issue/recommendation texts for every unmet rule. Percentage is derived
// from the rounded score so the pair stays consistent when a table's weight
// differs from the raw rule maximum (the résumé table does).
func applyRules(res *SectionResult, rules []rule, weight int, loc *Locale) {
	earned, max := 0, 0
	for _, r := range rules {
		earned += r.earned
		max += r.max
		if r.earned < r.max && r.key != "" {
			if issue := loc.Issue(r.key); issue != "" {
				res.Issues = append(res.Issues, issue)
			}
			if rec := loc.Rec(r.key); rec != "" {
				res.Recommendations = append(res.Recommendations, rec)
			}
		}
	}

	if max == 0 || weight == 0 {
		res.Status = StatusWarning
		return
	}
	res.Score = (earned*weight + max/2) / max
	res.Percentage = (res.Score*100 + weight/2) / weight
	switch {
	case res.Percentage >= 80:
		res.Status = StatusCompleted
	case res.Percentage >= 50:
		res.Status = StatusSuggestion
	default:
		res.Status = StatusWarning
	}
}

func headlineRules(headline string) []rule {
	n := utf8.RuneCountInString(headline)
	lower := strings.ToLower(headline)

	skillMatches := 0
	for _, kw := range skillKeywords {
		if strings.Contains(lower, kw) {
			skillMatches++
			if skillMatches == 3 {
				break
			}
		}
	}

	hasKeyword := false
	for _, kw := range professionalKeywords {
		if strings.Contains(lower, kw) {
			hasKeyword = true
			break
		}
	}

	hasSeparator := false
	for _, sep := range headlineSeparators {
		if strings.ContainsRune(headline, sep) {
			hasSeparator = true
			break
		}
	}

	return []rule{
		{b2i(n >= headlineMinLen && n <= headlineMaxLen) * 2, 2, "headline_length"},
		{b2i(hasKeyword) * 3, 3, "headline_keyword"},
		{b2i(hasSeparator) * 2, 2, "headline_separator"},
		{skillMatches, 3, "headline_skills"},
	}
}

func aboutRules(about string) []rule {
	n := utf8.RuneCountInString(about)
	lower := strings.ToLower(about)

	hasSkill := false
	for _, kw := range skillKeywords {
		if strings.Contains(lower, kw) {
			hasSkill = true
			break
		}
	}

	return []rule{
		{b2i(n >= aboutShortLen) * 3, 3, "about_length"},
		{b2i(n >= aboutDepthLen) * 3, 3, "about_depth"},
		{b2i(quantifiedRe.MatchString(about)) * 3, 3, "about_results"},
		{b2i(hasSkill) * 3, 3, "about_skills"},
		{b2i(ctaRe.MatchString(about)) * 3, 3, "about_cta"},
	}
}

func experienceRules(entries []Entry) []rule {
	described, quantified := 0, 0
	for _, e := range entries {
		if utf8.RuneCountInString(e.Description) >= descMinLen {
			described++
		}
		if quantifiedRe.MatchString(e.Description) {
			quantified++
		}
	}

	// Description rules scale with the share of entries meeting the bar, so
	// one bare entry among three does not zero the criterion.
	descPts, metricPts := 0, 0
	if n := len(entries); n > 0 {
		descPts = described * 6 / n
		metricPts = quantified * 6 / n
	}

	return []rule{
		{b2i(len(entries) >= 1) * 5, 5, "experience_entries"},
		{b2i(len(entries) >= 3) * 3, 3, "experience_more"},
		{descPts, 6, "experience_descriptions"},
		{metricPts, 6, "experience_metrics"},
	}
}

func skillsRules(count int) []rule {
	return []rule{
		{b2i(count >= 3) * 3, 3, "skills_min"},
		{b2i(count >= 5) * 3, 3, "skills_five"},
		{b2i(count >= 10) * 4, 4, "skills_ten"},
	}
}

func educationRules(entries []Entry) []rule {
	hasDegree, hasDates := false, false
	for _, e := range entries {
		joined := e.Title + " " + e.Org + " " + e.Description
		if degreeRe.MatchString(joined) {
			hasDegree = true
		}
		if yearRe.MatchString(e.Duration) || yearRe.MatchString(joined) {
			hasDates = true
		}
	}
	return []rule{
		{b2i(len(entries) >= 1) * 4, 4, "education_entry"},
		{b2i(hasDegree) * 2, 2, "education_degree"},
		{b2i(hasDates) * 2, 2, "education_dates"},
	}
}

// topPriorities ranks sections by potential gain — the weight left on the
// table — and returns up to three formatted priority lines.
func topPriorities(sections map[Section]*SectionResult, weights WeightTable, loc *Locale) []string {
	type gap struct {
		sec    Section
		impact int
	}
	var gaps []gap
	for _, sec := range sectionOrder {
		res, ok := sections[sec]
		if !ok {
			continue
		}
		impact := weights[sec] - res.Score
		if impact > 0 {
			gaps = append(gaps, gap{sec, impact})
		}
	}
	sort.SliceStable(gaps, func(i, j int) bool { return gaps[i].impact > gaps[j].impact })

	var out []string
	for _, g := range gaps {
		if len(out) == 3 {
			break
		}
		res := sections[g.sec]
		line := fmt.Sprintf("%s (+%d)", loc.SectionName(g.sec), g.impact)
		if len(res.Recommendations) > 0 {
			line += ": " + res.Recommendations[0]
		}
		out = append(out, line)
	}
	return out
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
