package profile

import (
	"github.com/anatolykoptev/go_profile/internal/engine"
)

// Per-section caps on how many fallback candidates may stand in for primary
// content.
const (
	mergeMaxExperience = 3
	mergeMaxEducation  = 2
	mergeMaxSkills     = 10
)

// Merge blends fallback candidates into the extraction. The policy is
// one-directional: a section the primary extractor populated keeps its
// content and all fallback candidates for it are discarded; only empty
// sections are filled, capped per section and marked basic quality.
func Merge(ext *Extraction, candidates []Candidate) {
	if len(candidates) == 0 {
		return
	}

	byCategory := make(map[Section][]Candidate)
	for _, c := range candidates {
		byCategory[c.Category] = append(byCategory[c.Category], c)
	}

	if len(ext.Experience) == 0 {
		for _, c := range top(byCategory[SectionExperience], mergeMaxExperience) {
			ext.Experience = append(ext.Experience, Entry{Title: c.Text})
		}
		if len(ext.Experience) > 0 {
			ext.Basic[SectionExperience] = true
			engine.IncrFallbackSections()
		}
	}

	if len(ext.Education) == 0 {
		for _, c := range top(byCategory[SectionEducation], mergeMaxEducation) {
			ext.Education = append(ext.Education, Entry{Title: c.Text})
		}
		if len(ext.Education) > 0 {
			ext.Basic[SectionEducation] = true
			engine.IncrFallbackSections()
		}
	}

	if len(ext.Skills) == 0 && ext.SkillCount == 0 {
		for _, c := range top(byCategory[SectionSkills], mergeMaxSkills) {
			ext.Skills = append(ext.Skills, c.Keyword)
		}
		if len(ext.Skills) > 0 {
			ext.SkillCount = len(ext.Skills)
			ext.Basic[SectionSkills] = true
			engine.IncrFallbackSections()
		}
	}
}

// top returns up to n candidates. Input is already sorted by confidence
// descending from Scan.
func top(cands []Candidate, n int) []Candidate {
	if len(cands) > n {
		return cands[:n]
	}
	return cands
}
