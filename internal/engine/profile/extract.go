package profile

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/anatolykoptev/go_profile/internal/engine/dom"
	"golang.org/x/net/html"
)

// minEntryLen is the shortest primary field accepted for a collection record.
const minEntryLen = 3

// Field specs: priority-ordered matcher lists per scalar field. The first
// matchers target current LinkedIn markup; later ones are looser fallbacks
// that survive class renames.

var nameSpec = dom.FieldSpec{Name: "name", Matchers: []dom.Matcher{
	{Tag: "h1", Class: "text-heading-xlarge"},
	{Tag: "h1", Class: "top-card-layout__title"},
	{Tag: "h1"},
}}

var headlineSpec = dom.FieldSpec{Name: "headline", Matchers: []dom.Matcher{
	{Class: "text-body-medium break-words"},
	{Class: "top-card-layout__headline"},
	{Class: "top-card__headline"},
	{Class: "pv-text-details__left-panel--headline"},
}}

var photoSpec = dom.FieldSpec{Name: "photo", Matchers: []dom.Matcher{
	{Tag: "img", Class: "pv-top-card-profile-picture__image", TextAttr: "src", Filter: notGhost},
	{Tag: "img", Class: "top-card-profile-image", TextAttr: "src", Filter: notGhost},
	{Tag: "img", Class: "profile-photo", TextAttr: "src", Filter: notGhost},
	{Tag: "img", Class: "EntityPhoto-circle", TextAttr: "src", Filter: notGhost},
}}

var bannerSpec = dom.FieldSpec{Name: "banner", Matchers: []dom.Matcher{
	{Tag: "img", Class: "profile-background-image__image", TextAttr: "src", Filter: notGhost},
	{Tag: "img", Class: "cover-img", TextAttr: "src", Filter: notGhost},
	{Class: "profile-topcard-background-image", TextAttr: "style", Filter: notGhost},
}}

var customURLSpec = dom.FieldSpec{Name: "customUrl", Matchers: []dom.Matcher{
	{Tag: "link", Attr: "rel", AttrVal: "canonical", TextAttr: "href", Filter: isProfileURL},
	{Tag: "meta", Attr: "property", AttrVal: "og:url", TextAttr: "content", Filter: isProfileURL},
}}

// Sub-field specs for collection items. LinkedIn duplicates entry text in
// visually-hidden spans, so values go through undouble.

var itemTitleSpec = dom.FieldSpec{Name: "title", Matchers: []dom.Matcher{
	{Class: "t-bold"},
	{Tag: "h3"},
	{Class: "entity__title"},
	{Class: "profile-section-card__title"},
}}

var itemOrgSpec = dom.FieldSpec{Name: "org", Matchers: []dom.Matcher{
	{Class: "t-14 t-normal"},
	{Tag: "h4"},
	{Class: "entity__secondary-title"},
	{Class: "profile-section-card__subtitle"},
}}

var itemDurationSpec = dom.FieldSpec{Name: "duration", Matchers: []dom.Matcher{
	{Class: "date-range"},
	{Tag: "time"},
	{Class: "t-black--light"},
}}

var itemDescriptionSpec = dom.FieldSpec{Name: "description", Matchers: []dom.Matcher{
	{Class: "inline-show-more-text"},
	{Class: "show-more-less-text"},
	{Class: "pvs-list__outer-container"},
}}

// notGhost rejects LinkedIn's placeholder media for users who never uploaded
// a photo or banner.
func notGhost(_ *html.Node, value string) bool {
	v := strings.ToLower(value)
	for _, marker := range ghostContentMarkers {
		if strings.Contains(v, marker) {
			return false
		}
	}
	return true
}

func isProfileURL(_ *html.Node, value string) bool {
	return strings.Contains(value, "linkedin.com/in/")
}

// undouble collapses "Software EngineerSoftware Engineer" to its half —
// LinkedIn mirrors entry text into a visually-hidden accessibility span that
// tree-wide text extraction concatenates.
func undouble(s string) string {
	n := len(s)
	if n >= 2 && n%2 == 0 {
		half := s[:n/2]
		if half == s[n/2:] {
			return strings.TrimSpace(half)
		}
	}
	return s
}

// Extract runs the primary extractor over a parsed profile page. Sections
// that cannot be located are simply left empty — not found is a normal
// outcome, never an error. A panic inside one section (detached nodes,
// malformed trees) degrades that section only.
func Extract(root *html.Node, loc *Locale) *Extraction {
	ext := NewExtraction()

	capture := func(sec Section, fn func()) {
		defer func() {
			if r := recover(); r != nil {
				slog.Warn("profile: section extraction failed",
					slog.String("section", string(sec)), slog.Any("panic", r))
			}
		}()
		fn()
	}

	capture(SectionHeadline, func() {
		ext.Name = undouble(dom.FirstValue(root, nameSpec))
		ext.Headline = undouble(dom.FirstValue(root, headlineSpec))
	})
	capture(SectionPhoto, func() { ext.PhotoURL = dom.FirstValue(root, photoSpec) })
	capture(SectionBanner, func() { ext.BannerURL = dom.FirstValue(root, bannerSpec) })
	capture(SectionCustomURL, func() { ext.ProfileURL = dom.FirstValue(root, customURLSpec) })
	capture(SectionAbout, func() { ext.About = extractAbout(root, loc) })
	capture(SectionOpenToWork, func() { ext.OpenToWork = detectOpenToWork(root) })
	capture(SectionExperience, func() {
		ext.Experience = extractEntries(root, loc.Headings(SectionExperience), true)
	})
	capture(SectionEducation, func() {
		ext.Education = extractEntries(root, loc.Headings(SectionEducation), false)
	})
	capture(SectionCertifications, func() {
		ext.Certifications = extractEntries(root, loc.Headings(SectionCertifications), false)
	})
	capture(SectionSkills, func() {
		ext.Skills, ext.SkillCount = extractSkills(root, loc)
	})
	capture(SectionRecommendations, func() {
		ext.RecommendationCount = countRecommendations(root, loc)
	})

	return ext
}

// extractAbout pulls the About text from its section container.
func extractAbout(root *html.Node, loc *Locale) string {
	sec := dom.FindSectionByHeading(root, loc.Headings(SectionAbout))
	if sec == nil {
		return ""
	}
	if n := dom.FindByClass(sec, "inline-show-more-text"); n != nil {
		return undouble(dom.CleanText(n))
	}
	text := undouble(dom.CleanText(sec))
	// Strip the heading itself when the section has no dedicated text node.
	for _, h := range loc.Headings(SectionAbout) {
		text = strings.TrimSpace(strings.TrimPrefix(text, h))
	}
	if len(text) < minEntryLen {
		return ""
	}
	return text
}

// detectOpenToWork looks for the open-to-work badge or frame.
func detectOpenToWork(root *html.Node) bool {
	if dom.FindByClass(root, "pv-open-to-carousel") != nil {
		return true
	}
	if dom.FindByClass(root, "pv-member-badge--for-hiring") != nil {
		return true
	}
	found := false
	dom.Walk(root, func(n *html.Node) bool {
		if n.Data != "span" && n.Data != "div" {
			return true
		}
		t := strings.ToLower(dom.CleanText(n))
		if len(t) >= 3 && len(t) <= 40 && (strings.Contains(t, "open to work") || strings.Contains(t, "求职中")) {
			found = true
			return false
		}
		return true
	})
	return found
}

// extractEntries locates a collection section by heading text, then walks its
// list items extracting one record each. Records are deduplicated by
// case-insensitive primary field and dropped when shorter than minEntryLen.
func extractEntries(root *html.Node, headings []string, wantDescription bool) []Entry {
	sec := dom.FindSectionByHeading(root, headings)
	if sec == nil {
		return nil
	}

	var entries []Entry
	seen := make(map[string]bool)
	for _, item := range dom.ListItems(sec) {
		title := undouble(dom.FirstValue(item, itemTitleSpec))
		if len(title) < minEntryLen {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(title))
		if seen[key] {
			continue
		}
		seen[key] = true

		e := Entry{
			Title:    title,
			Org:      undouble(dom.FirstValue(item, itemOrgSpec)),
			Duration: undouble(dom.FirstValue(item, itemDurationSpec)),
		}
		if wantDescription {
			e.Description = undouble(dom.FirstValue(item, itemDescriptionSpec))
		}
		entries = append(entries, e)
	}
	return entries
}

// extractSkills returns the rendered skill names and the declared skill
// count. The count from the "Show all N skills" affordance is preferred over
// counting rendered nodes, which lazy loading undercounts.
func extractSkills(root *html.Node, loc *Locale) ([]string, int) {
	var skills []string
	if sec := dom.FindSectionByHeading(root, loc.Headings(SectionSkills)); sec != nil {
		seen := make(map[string]bool)
		for _, item := range dom.ListItems(sec) {
			name := undouble(dom.FirstValue(item, itemTitleSpec))
			// Two-letter skills ("Go", "R") are legitimate.
			if len(name) < 2 || len(name) > 60 {
				continue
			}
			key := strings.ToLower(name)
			if seen[key] {
				continue
			}
			seen[key] = true
			skills = append(skills, name)
		}
	}

	count := declaredSkillCount(root)
	if count < len(skills) {
		count = len(skills)
	}
	return skills, count
}

// declaredSkillCount parses "Show all N skills" (or the zh equivalent) from
// link and button labels.
func declaredSkillCount(root *html.Node) int {
	best := 0
	dom.Walk(root, func(n *html.Node) bool {
		if n.Data != "a" && n.Data != "button" && n.Data != "span" {
			return true
		}
		t := dom.CleanText(n)
		if t == "" || len(t) > 60 {
			return true
		}
		m := skillCountRe.FindStringSubmatch(t)
		if m == nil {
			m = skillCountZhRe.FindStringSubmatch(t)
		}
		if m != nil {
			if v, err := strconv.Atoi(m[1]); err == nil && v > best {
				best = v
			}
		}
		return true
	})
	return best
}

// countRecommendations counts received recommendations under their section.
func countRecommendations(root *html.Node, loc *Locale) int {
	sec := dom.FindSectionByHeading(root, loc.Headings(SectionRecommendations))
	if sec == nil {
		return 0
	}
	count := 0
	for _, item := range dom.ListItems(sec) {
		if len(dom.CleanText(item)) >= minEntryLen {
			count++
		}
	}
	return count
}

// hasCustomSlug reports whether a profile URL carries a user-chosen slug.
// Auto-generated slugs end in long digit runs.
func hasCustomSlug(profileURL string) bool {
	idx := strings.Index(profileURL, "/in/")
	if idx < 0 {
		return false
	}
	slug := strings.Trim(profileURL[idx+4:], "/")
	if slug == "" {
		return false
	}
	return !defaultSlugDigitsRe.MatchString(slug)
}
