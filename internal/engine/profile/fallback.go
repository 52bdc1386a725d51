package profile

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/anatolykoptev/go_profile/internal/engine/dom"
	"golang.org/x/net/html"
)

// Strategy names how a fallback candidate was matched. Confidence is fixed
// per strategy — it ranks candidates within one scan, nothing more.
type Strategy string

const (
	StrategyCompanyKeyword Strategy = "company-keywords"
	StrategyInstitution    Strategy = "institution-keywords"
	StrategyTitlePattern   Strategy = "title-pattern"
	StrategySkillKeyword   Strategy = "skill-keywords"
	StrategyGenericPattern Strategy = "pattern-match"
)

var strategyConfidence = map[Strategy]float64{
	StrategyCompanyKeyword: 0.9,
	StrategyInstitution:    0.85,
	StrategyTitlePattern:   0.75,
	StrategySkillKeyword:   0.7,
	StrategyGenericPattern: 0.6,
}

// Candidate is one text block found by the keyword scan. Candidates live for
// a single pass and are discarded after merge.
type Candidate struct {
	Text       string
	Keyword    string
	Confidence float64
	Strategy   Strategy
	Category   Section
}

// Text blocks outside these rune-count bounds are boilerplate (icons,
// labels) or giant containers whose text aggregates many children.
const (
	scanMinLen = 3
	scanMaxLen = 200
)

// normalizedSkills maps lowercase skill keywords for exact-match lookup.
var normalizedSkills = func() map[string]string {
	m := make(map[string]string, len(skillKeywords))
	for _, s := range skillKeywords {
		m[strings.ToLower(s)] = s
	}
	return m
}()

// Scan runs the fallback detector: a full-tree pass independent of the
// primary extractor's selector state. Every element's bounded text is tested
// against the keyword families; exact texts are processed once regardless of
// how many nested elements repeat them. A failed or empty scan yields zero
// candidates — never an error.
func Scan(root *html.Node) []Candidate {
	var candidates []Candidate
	processedTexts := make(map[string]bool)

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			// Prune non-content subtrees.
			switch n.Data {
			case "script", "style", "noscript", "nav", "footer":
				return
			}
			text := dom.CleanText(n)
			runes := utf8.RuneCountInString(text)
			if runes >= scanMinLen && runes <= scanMaxLen && !processedTexts[text] {
				processedTexts[text] = true
				if c, ok := classify(text); ok {
					candidates = append(candidates, c)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	// Confidence descending; text as deterministic tie-break.
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Confidence != candidates[j].Confidence {
			return candidates[i].Confidence > candidates[j].Confidence
		}
		return candidates[i].Text < candidates[j].Text
	})
	return candidates
}

// classify assigns a text block to at most one category, strongest signal
// first.
func classify(text string) (Candidate, bool) {
	lower := strings.ToLower(text)

	// Exact skill keyword — short blocks only, a sentence mentioning Go is
	// not a skill pill.
	if utf8.RuneCountInString(text) <= 40 {
		if orig, ok := normalizedSkills[strings.TrimSpace(lower)]; ok {
			return Candidate{
				Text:       text,
				Keyword:    orig,
				Confidence: strategyConfidence[StrategySkillKeyword],
				Strategy:   StrategySkillKeyword,
				Category:   SectionSkills,
			}, true
		}
	}

	if m := titleRe.FindString(text); m != "" {
		strategy := StrategyTitlePattern
		if companySuffixRe.MatchString(text) {
			strategy = StrategyCompanyKeyword
		}
		return Candidate{
			Text:       text,
			Keyword:    strings.ToLower(m),
			Confidence: strategyConfidence[strategy],
			Strategy:   strategy,
			Category:   SectionExperience,
		}, true
	}

	if m := institutionRe.FindString(text); m != "" {
		return Candidate{
			Text:       text,
			Keyword:    strings.ToLower(m),
			Confidence: strategyConfidence[StrategyInstitution],
			Strategy:   StrategyInstitution,
			Category:   SectionEducation,
		}, true
	}

	if m := indicatorRe.FindString(lower); m != "" {
		return Candidate{
			Text:       text,
			Keyword:    m,
			Confidence: strategyConfidence[StrategyGenericPattern],
			Strategy:   StrategyGenericPattern,
			Category:   SectionExperience,
		}, true
	}

	return Candidate{}, false
}
