package profile

import (
	"strings"
	"testing"
	"unicode/utf8"
)

// Obfuscated markup: no recognizable classes or headings, so only the
// keyword scan can categorize anything. The filler paragraph keeps
// aggregate ancestor text above the scan's upper bound.
const obfuscatedFixture = `<html><body>
<p>` + fallbackFiller + `</p>
<p>Software Engineer at Globex Inc.</p>
<p>State University</p>
<span>Python</span>
<span>Responsible for payment reconciliation</span>
</body></html>`

const fallbackFiller = "Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod " +
	"tempor incididunt ut labore et dolore magna aliqua. Ut enim ad minim veniam, quis nostrud " +
	"exercitation ullamco laboris nisi ut aliquip ex ea commodo consequat blandit."

func TestScanClassifiesByStrategy(t *testing.T) {
	cands := Scan(parseFixture(t, obfuscatedFixture))

	byText := make(map[string]Candidate, len(cands))
	for _, c := range cands {
		byText[c.Text] = c
	}

	tests := []struct {
		text       string
		category   Section
		strategy   Strategy
		confidence float64
	}{
		{"Software Engineer at Globex Inc.", SectionExperience, StrategyCompanyKeyword, 0.9},
		{"State University", SectionEducation, StrategyInstitution, 0.85},
		{"Python", SectionSkills, StrategySkillKeyword, 0.7},
		{"Responsible for payment reconciliation", SectionExperience, StrategyGenericPattern, 0.6},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			c, ok := byText[tt.text]
			if !ok {
				t.Fatalf("no candidate for %q; got %+v", tt.text, cands)
			}
			if c.Category != tt.category || c.Strategy != tt.strategy || c.Confidence != tt.confidence {
				t.Errorf("got %s/%s/%.2f, want %s/%s/%.2f",
					c.Category, c.Strategy, c.Confidence, tt.category, tt.strategy, tt.confidence)
			}
		})
	}
}

func TestScanSortsByConfidence(t *testing.T) {
	cands := Scan(parseFixture(t, obfuscatedFixture))
	for i := 1; i < len(cands); i++ {
		if cands[i].Confidence > cands[i-1].Confidence {
			t.Fatalf("candidates not sorted: %.2f after %.2f", cands[i].Confidence, cands[i-1].Confidence)
		}
	}
}

func TestScanDedupesRepeatedText(t *testing.T) {
	raw := `<html><body>
	<p>` + fallbackFiller + `</p>
	<p>State University</p>
	<p>State University</p>
	</body></html>`
	cands := Scan(parseFixture(t, raw))

	n := 0
	for _, c := range cands {
		if c.Text == "State University" {
			n++
		}
	}
	if n != 1 {
		t.Errorf("got %d candidates for repeated text, want 1", n)
	}
}

func TestScanEmptyPage(t *testing.T) {
	if cands := Scan(parseFixture(t, "<html><body></body></html>")); len(cands) != 0 {
		t.Errorf("empty page produced candidates: %+v", cands)
	}
}

func TestScanSkipsBoilerplateSubtrees(t *testing.T) {
	raw := `<html><body>
	<p>` + fallbackFiller + `</p>
	<nav><p>Software Engineer at Globex Inc.</p></nav>
	<script>var x = "State University";</script>
	</body></html>`
	if cands := Scan(parseFixture(t, raw)); len(cands) != 0 {
		t.Errorf("nav/script content classified: %+v", cands)
	}
}

func TestScanBoundsCountRunes(t *testing.T) {
	// ~90 CJK runes sits well inside the 3-200 window even though the text
	// is far over 200 bytes; byte-based bounds would drop it.
	zhText := "我于2010年至2014年就读于清华大学计算机科学与技术系，主修分布式系统，" +
		strings.Repeat("课程涵盖操作系统、编译原理与数据库实现，", 3)
	if n := utf8.RuneCountInString(zhText); n > scanMaxLen {
		t.Fatalf("fixture is %d runes, must stay within %d", n, scanMaxLen)
	}
	if len(zhText) <= scanMaxLen {
		t.Fatalf("fixture is %d bytes, must exceed %d to exercise the bound", len(zhText), scanMaxLen)
	}

	raw := `<html><body><p>` + fallbackFiller + `</p><p>` + zhText + `</p></body></html>`
	cands := Scan(parseFixture(t, raw))

	found := false
	for _, c := range cands {
		if c.Text == zhText {
			found = true
			if c.Strategy != StrategyInstitution || c.Category != SectionEducation {
				t.Errorf("got %s/%s, want %s/%s", c.Strategy, c.Category, StrategyInstitution, SectionEducation)
			}
		}
	}
	if !found {
		t.Errorf("CJK text was not scanned: %+v", cands)
	}
}

func TestMergeFillsEmptySections(t *testing.T) {
	ext := NewExtraction()
	Merge(ext, []Candidate{
		{Text: "Engineering Manager at Initech Inc.", Category: SectionExperience, Confidence: 0.9},
		{Text: "Developer at Hooli", Category: SectionExperience, Confidence: 0.75},
		{Text: "State University", Category: SectionEducation, Confidence: 0.85},
		{Text: "Python", Keyword: "python", Category: SectionSkills, Confidence: 0.7},
		{Text: "Docker", Keyword: "docker", Category: SectionSkills, Confidence: 0.7},
	})

	if len(ext.Experience) != 2 || ext.Experience[0].Title != "Engineering Manager at Initech Inc." {
		t.Errorf("Experience = %+v", ext.Experience)
	}
	if len(ext.Education) != 1 {
		t.Errorf("Education = %+v", ext.Education)
	}
	if len(ext.Skills) != 2 || ext.SkillCount != 2 {
		t.Errorf("Skills = %v count %d", ext.Skills, ext.SkillCount)
	}
	for _, sec := range []Section{SectionExperience, SectionEducation, SectionSkills} {
		if !ext.Basic[sec] {
			t.Errorf("section %s not marked basic", sec)
		}
	}
}

func TestMergeNeverOverridesPrimary(t *testing.T) {
	ext := NewExtraction()
	ext.Experience = []Entry{{Title: "Staff Engineer", Org: "Acme Corp"}}
	ext.SkillCount = 12

	Merge(ext, []Candidate{
		{Text: "Developer at Hooli", Category: SectionExperience, Confidence: 0.9},
		{Text: "Python", Keyword: "python", Category: SectionSkills, Confidence: 0.7},
	})

	if len(ext.Experience) != 1 || ext.Experience[0].Title != "Staff Engineer" {
		t.Errorf("primary experience was modified: %+v", ext.Experience)
	}
	if ext.SkillCount != 12 || len(ext.Skills) != 0 {
		t.Errorf("primary skill count was modified: %d / %v", ext.SkillCount, ext.Skills)
	}
	if ext.Basic[SectionExperience] || ext.Basic[SectionSkills] {
		t.Errorf("sections wrongly marked basic: %v", ext.Basic)
	}
}

func TestMergeCapsCandidates(t *testing.T) {
	var cands []Candidate
	for _, title := range []string{
		"Engineer at A Inc.", "Engineer at B Inc.", "Engineer at C Inc.",
		"Engineer at D Inc.", "Engineer at E Inc.",
	} {
		cands = append(cands, Candidate{Text: title, Category: SectionExperience, Confidence: 0.9})
	}
	ext := NewExtraction()
	Merge(ext, cands)

	if len(ext.Experience) != mergeMaxExperience {
		t.Errorf("Experience len = %d, want cap %d", len(ext.Experience), mergeMaxExperience)
	}
}

func TestMergedSectionsScoreAsBasic(t *testing.T) {
	ext := NewExtraction()
	Merge(ext, []Candidate{
		{Text: "Software Engineer at Globex Inc.", Category: SectionExperience, Confidence: 0.9},
	})
	snap := Score(ext, ProfileWeights, GetLocale("en"))

	res := snap.Sections[SectionExperience]
	if !res.Present {
		t.Fatal("merged experience not present")
	}
	if res.Quality != QualityBasic {
		t.Errorf("Quality = %q, want %q", res.Quality, QualityBasic)
	}
	joined := strings.Join(res.Issues, " ")
	if !strings.Contains(joined, "recovered from page keywords") {
		t.Errorf("Issues = %v, want fallback provenance note", res.Issues)
	}
}
