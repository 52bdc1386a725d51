package profile

import (
	"regexp"
	"strings"
)

// Fixed keyword families used by the headline scorer and the fallback
// detector. These are deliberately plain data — extending coverage means
// extending a list, not touching the scan logic.

// titleRe matches common job-title words in free text.
var titleRe = regexp.MustCompile(`(?i)\b(engineer|developer|programmer|manager|director|designer|analyst|consultant|architect|scientist|specialist|administrator|lead|head|officer|founder|intern|recruiter|marketer|accountant|economist)\b`)

// institutionRe matches education institution names.
var institutionRe = regexp.MustCompile(`(?i)\b(university|college|institute|school|academy|polytechnic)\b|大学|学院|学校`)

// companySuffixRe matches explicit company-name suffixes, the strongest
// signal that a text block names an employer.
var companySuffixRe = regexp.MustCompile(`(?i)\b(inc|llc|ltd|gmbh|corp|corporation|co|plc|ag|technologies|solutions|labs|systems|software|consulting|group)\b\.?`)

// indicatorRe matches professional phrasing that suggests an experience
// description rather than navigation chrome.
var indicatorRe = regexp.MustCompile(`(?i)(years? of experience|responsible for|led a team|managed|developed|implemented|delivered|achieved|increased|reduced)`)

// quantifiedRe detects measurable results: percentages, money, large counts.
var quantifiedRe = regexp.MustCompile(`\d+\s*%|[$€£]\s*\d|\b\d{2,}\b`)

// skillCountRe parses the "Show all N skills" affordance, which is more
// reliable than counting lazily-rendered skill pills.
var skillCountRe = regexp.MustCompile(`(?i)(\d+)\s*skills?`)

// skillCountZhRe is the Chinese-locale equivalent ("显示全部 N 项技能").
var skillCountZhRe = regexp.MustCompile(`(\d+)\s*项技能`)

// defaultSlugDigitsRe flags auto-generated profile URL slugs, which LinkedIn
// suffixes with long digit runs (e.g. jane-doe-1a2b345678).
var defaultSlugDigitsRe = regexp.MustCompile(`\d{4,}`)

// ghostContentMarkers identify placeholder media LinkedIn serves when a user
// never uploaded a photo or banner.
var ghostContentMarkers = []string{
	"ghost-person",
	"ghost-company",
	"9c8pery4andzj6ohjkjp54ma2",
	"data:image/gif",
	"profile-displayphoto-shrink_ghost",
}

// skillKeywords is the fixed skill vocabulary shared by the headline scorer
// and the fallback detector. Matching is case-insensitive substring on
// element text for the headline, exact (normalized) for fallback candidates.
var skillKeywords = []string{
	// languages
	"java", "python", "javascript", "typescript", "golang", "go", "rust",
	"c++", "c#", "ruby", "php", "swift", "kotlin", "scala", "sql",
	// frontend
	"react", "angular", "vue", "svelte", "next.js", "html", "css",
	"tailwind", "redux", "webpack",
	// backend / data
	"node.js", "spring", "django", "flask", "rails", ".net", "graphql",
	"rest", "grpc", "kafka", "postgresql", "mysql", "mongodb", "redis",
	"elasticsearch", "spark", "hadoop",
	// infra
	"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "ansible",
	"jenkins", "ci/cd", "linux", "git",
	// practice / domain
	"full stack", "frontend", "backend", "devops", "microservices",
	"machine learning", "deep learning", "data science", "nlp",
	"data analysis", "etl", "agile", "scrum", "product management",
	"project management", "ux", "ui", "seo", "salesforce", "sap",
	"cybersecurity", "blockchain",
}

// MatchSkills returns the vocabulary skills mentioned in text,
// case-insensitive, in vocabulary order.
func MatchSkills(text string) []string {
	lower := strings.ToLower(text)
	var out []string
	for _, kw := range skillKeywords {
		if strings.Contains(lower, kw) {
			out = append(out, kw)
		}
	}
	return out
}

// professionalKeywords signal a role-describing headline.
var professionalKeywords = []string{
	"engineer", "developer", "manager", "director", "designer", "analyst",
	"consultant", "architect", "scientist", "specialist", "lead", "founder",
	"expert", "head", "officer", "工程师", "经理", "总监", "设计师", "分析师", "顾问",
}

// headlineSeparators are the delimiter characters well-formed headlines use
// to chain role descriptors.
var headlineSeparators = []rune{'|', '•', '–', '—', '·'}
