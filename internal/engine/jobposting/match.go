package jobposting

import (
	"sort"
	"strings"
	"unicode"
)

// missingCap bounds the reported skills-gap list.
const missingCap = 20

// matchStopWords filters common English words that add noise to keyword matching.
var matchStopWords = map[string]bool{
	"and": true, "the": true, "for": true, "with": true, "you": true,
	"are": true, "have": true, "will": true, "this": true, "that": true,
	"from": true, "our": true, "your": true, "their": true, "they": true,
	"work": true, "team": true, "role": true, "job": true, "join": true,
	"about": true, "which": true, "what": true, "who": true, "how": true,
	"can": true, "not": true, "but": true, "all": true, "also": true,
	"more": true, "than": true, "into": true, "has": true, "its": true,
	"was": true, "were": true, "been": true, "each": true, "new": true,
	"use": true, "using": true, "used": true, "well": true, "high": true,
	"good": true, "able": true, "get": true, "set": true, "such": true,
}

// ExtractKeywords tokenizes text into a lowercase keyword set (>= 3 chars),
// skipping stop words. Tech suffixes like "c++", "c#", "node.js" survive
// because + # . count as word characters. Call once per résumé and reuse
// across postings.
func ExtractKeywords(text string) map[string]bool {
	kw := make(map[string]bool)
	var word strings.Builder
	flush := func() {
		w := word.String()
		word.Reset()
		w = strings.TrimRight(w, ".")
		if len([]rune(w)) >= 3 && !matchStopWords[w] {
			kw[w] = true
		}
	}
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' || r == '.' {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return kw
}

// Match computes the Jaccard keyword overlap (0-100, one decimal) between
// pre-extracted résumé keywords and a posting's text. Matching lists the
// shared keywords; Missing lists posting keywords absent from the résumé,
// capped at 20.
func Match(resumeKW map[string]bool, p *Posting) MatchResult {
	jobKW := ExtractKeywords(p.Title + " " + p.Description)

	var res MatchResult
	inter := 0
	for kw := range resumeKW {
		if jobKW[kw] {
			inter++
			res.Matching = append(res.Matching, kw)
		}
	}
	for kw := range jobKW {
		if !resumeKW[kw] {
			res.Missing = append(res.Missing, kw)
		}
	}

	union := len(resumeKW) + len(jobKW) - inter
	if union > 0 {
		raw := float64(inter) / float64(union) * 100
		res.Score = float64(int(raw*10+0.5)) / 10
	}

	sort.Strings(res.Matching)
	sort.Strings(res.Missing)
	if len(res.Missing) > missingCap {
		res.Missing = res.Missing[:missingCap]
	}
	return res
}
