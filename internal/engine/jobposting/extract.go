package jobposting

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/anatolykoptev/go_profile/internal/engine/dom"
	"github.com/anatolykoptev/go_profile/internal/engine/profile"
	"golang.org/x/net/html"
)

// descriptionMaxLen bounds the stored markdown description.
const descriptionMaxLen = 8000

// jobIDRe extracts the numeric job ID from LinkedIn job URLs, both
// /jobs/view/4335742219 and /jobs/view/golang-developer-at-acme-4335742219.
var jobIDRe = regexp.MustCompile(`/jobs/view/[^?]*?(\d{7,})`)

// ExtractJobID returns the LinkedIn job ID from a URL, or "".
func ExtractJobID(jobURL string) string {
	if m := jobIDRe.FindStringSubmatch(jobURL); m != nil {
		return m[1]
	}
	return ""
}

// Parse extracts a Posting from raw job-page HTML. The JSON-LD
// schema.org/JobPosting block is authoritative when present; class-chain
// extraction fills whatever it left empty. A page with neither yields an
// error — unlike profile sections, a posting without a title is useless.
func Parse(raw string) (*Posting, error) {
	p := &Posting{}

	if data := extractJSONLD(raw); data != nil {
		fillFromJSONLD(p, data)
	}

	root, err := html.Parse(strings.NewReader(raw))
	if err == nil {
		fillFromTree(p, root)
	}

	if p.Title == "" && p.Description == "" {
		return nil, errors.New("no job posting content found")
	}

	if len(p.Skills) == 0 {
		p.Skills = profile.MatchSkills(p.Title + " " + p.Description)
	}
	return p, nil
}

// extractJSONLD locates and parses the schema.org/JobPosting script block.
func extractJSONLD(raw string) map[string]any {
	idx := strings.Index(raw, `"@type":"JobPosting"`)
	if idx == -1 {
		idx = strings.Index(raw, `"@type": "JobPosting"`)
	}
	if idx == -1 {
		return nil
	}

	scriptStart := strings.LastIndex(raw[:idx], "<script")
	if scriptStart == -1 {
		return nil
	}
	scriptEnd := strings.Index(raw[scriptStart:], "</script>")
	if scriptEnd == -1 {
		return nil
	}
	script := raw[scriptStart : scriptStart+scriptEnd]

	jsonStart := strings.Index(script, ">")
	if jsonStart == -1 {
		return nil
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(script[jsonStart+1:])), &data); err != nil {
		return nil
	}
	return data
}

func fillFromJSONLD(p *Posting, data map[string]any) {
	if v, ok := data["title"].(string); ok {
		p.Title = strings.TrimSpace(v)
	}
	if v, ok := data["employmentType"].(string); ok {
		p.EmploymentType = strings.TrimSpace(v)
	}
	if org, ok := data["hiringOrganization"].(map[string]any); ok {
		if name, ok := org["name"].(string); ok {
			p.Company = strings.TrimSpace(name)
		}
	}
	p.Location = jsonLDLocation(data["jobLocation"])

	if desc, ok := data["description"].(string); ok && desc != "" {
		if md, err := htmltomarkdown.ConvertString(desc); err == nil && md != "" {
			desc = md
		}
		p.Description = capLen(strings.TrimSpace(desc), descriptionMaxLen)
	}

	if salary, ok := data["baseSalary"].(map[string]any); ok {
		if cur, ok := salary["currency"].(string); ok {
			p.Currency = cur
		}
		if val, ok := salary["value"].(map[string]any); ok {
			p.SalaryMin, _ = val["minValue"].(float64)
			p.SalaryMax, _ = val["maxValue"].(float64)
			if p.SalaryMin == 0 && p.SalaryMax == 0 {
				if v, ok := val["value"].(float64); ok {
					p.SalaryMin = v
				}
			}
		}
	}

	switch sk := data["skills"].(type) {
	case string:
		for _, s := range strings.Split(sk, ",") {
			if s = strings.TrimSpace(s); s != "" {
				p.Skills = append(p.Skills, s)
			}
		}
	case []any:
		for _, s := range sk {
			if str, ok := s.(string); ok && strings.TrimSpace(str) != "" {
				p.Skills = append(p.Skills, strings.TrimSpace(str))
			}
		}
	}
}

// jsonLDLocation handles jobLocation as object or array of objects.
func jsonLDLocation(v any) string {
	loc, ok := v.(map[string]any)
	if !ok {
		if arr, ok := v.([]any); ok && len(arr) > 0 {
			loc, _ = arr[0].(map[string]any)
		}
	}
	if loc == nil {
		return ""
	}
	addr, ok := loc["address"].(map[string]any)
	if !ok {
		return ""
	}
	var parts []string
	for _, key := range []string{"addressLocality", "addressRegion", "addressCountry"} {
		if s, ok := addr[key].(string); ok && s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}

// Class-chain fallbacks for guest pages that render without JSON-LD.

var titleSpec = dom.FieldSpec{Name: "title", Matchers: []dom.Matcher{
	{Class: "top-card-layout__title"},
	{Class: "job-details-jobs-unified-top-card__job-title"},
	{Tag: "h1"},
}}

var companySpec = dom.FieldSpec{Name: "company", Matchers: []dom.Matcher{
	{Class: "topcard__org-name-link"},
	{Class: "job-details-jobs-unified-top-card__company-name"},
	{Class: "topcard__flavor"},
}}

var locationSpec = dom.FieldSpec{Name: "location", Matchers: []dom.Matcher{
	{Class: "topcard__flavor--bullet"},
	{Class: "job-search-card__location"},
	{Class: "job-details-jobs-unified-top-card__bullet"},
}}

var descriptionClasses = []string{
	"show-more-less-html__markup",
	"description__text",
	"job-description",
}

func fillFromTree(p *Posting, root *html.Node) {
	if p.Title == "" {
		p.Title = dom.FirstValue(root, titleSpec)
	}
	if p.Company == "" {
		p.Company = dom.FirstValue(root, companySpec)
	}
	if p.Location == "" {
		p.Location = dom.FirstValue(root, locationSpec)
	}
	if p.Description == "" {
		for _, cls := range descriptionClasses {
			n := dom.FindByClass(root, cls)
			if n == nil {
				continue
			}
			if md, err := htmltomarkdown.ConvertString(renderChildren(n)); err == nil && md != "" {
				p.Description = capLen(strings.TrimSpace(md), descriptionMaxLen)
				break
			}
		}
	}
	if p.URL == "" {
		if n := dom.FindByClass(root, "top-card-layout__title"); n != nil {
			p.URL = dom.Attr(n, "href")
		}
	}
	if p.JobID == "" && p.URL != "" {
		p.JobID = ExtractJobID(p.URL)
	}
}

// renderChildren returns the inner HTML of a node.
func renderChildren(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		html.Render(&sb, c)
	}
	return sb.String()
}

func capLen(s string, n int) string {
	if len(s) > n {
		return s[:n] + "..."
	}
	return s
}
