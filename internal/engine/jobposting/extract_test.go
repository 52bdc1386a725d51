package jobposting

import (
	"strings"
	"testing"
)

const jsonLDFixture = `<!DOCTYPE html>
<html><head>
<script type="application/ld+json">
{"@context":"http://schema.org","@type":"JobPosting",
 "title":"Senior Go Engineer",
 "description":"<p>We are hiring a senior engineer to build our billing platform in Go and Kubernetes.</p>",
 "hiringOrganization":{"@type":"Organization","name":"Acme Corp"},
 "jobLocation":{"@type":"Place","address":{"@type":"PostalAddress","addressLocality":"Berlin","addressCountry":"DE"}},
 "employmentType":"FULL_TIME",
 "baseSalary":{"@type":"MonetaryAmount","currency":"EUR","value":{"@type":"QuantitativeValue","minValue":80000,"maxValue":110000,"unitText":"YEAR"}},
 "skills":"Go, Kubernetes, PostgreSQL"}
</script>
</head><body><h1>Unrelated page chrome</h1></body></html>`

const classChainFixture = `<!DOCTYPE html>
<html><body>
<div class="top-card-layout">
  <h1 class="top-card-layout__title">Backend Developer</h1>
  <a class="topcard__org-name-link" href="#">Globex</a>
  <span class="topcard__flavor--bullet">Munich, Germany (Remote)</span>
</div>
<div class="show-more-less-html__markup">
  <p>Build payment services in Go. You will own reconciliation end to end.</p>
</div>
</body></html>`

func TestParseJSONLD(t *testing.T) {
	p, err := Parse(jsonLDFixture)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if p.Title != "Senior Go Engineer" {
		t.Errorf("Title = %q", p.Title)
	}
	if p.Company != "Acme Corp" {
		t.Errorf("Company = %q", p.Company)
	}
	if p.Location != "Berlin, DE" {
		t.Errorf("Location = %q", p.Location)
	}
	if p.EmploymentType != "FULL_TIME" {
		t.Errorf("EmploymentType = %q", p.EmploymentType)
	}
	if p.SalaryMin != 80000 || p.SalaryMax != 110000 || p.Currency != "EUR" {
		t.Errorf("salary = %.0f-%.0f %s", p.SalaryMin, p.SalaryMax, p.Currency)
	}
	if len(p.Skills) != 3 || p.Skills[0] != "Go" {
		t.Errorf("Skills = %v", p.Skills)
	}
	if !strings.Contains(p.Description, "billing platform") {
		t.Errorf("Description = %q, want markdown of the html description", p.Description)
	}
	if strings.Contains(p.Description, "<p>") {
		t.Errorf("Description kept raw HTML: %q", p.Description)
	}
}

func TestParseClassChains(t *testing.T) {
	p, err := Parse(classChainFixture)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if p.Title != "Backend Developer" {
		t.Errorf("Title = %q", p.Title)
	}
	if p.Company != "Globex" {
		t.Errorf("Company = %q", p.Company)
	}
	if p.Location != "Munich, Germany (Remote)" {
		t.Errorf("Location = %q", p.Location)
	}
	if !strings.Contains(p.Description, "payment services") {
		t.Errorf("Description = %q", p.Description)
	}
	// No JSON-LD skills; the vocabulary scan over title+description applies.
	found := false
	for _, s := range p.Skills {
		if s == "go" {
			found = true
		}
	}
	if !found {
		t.Errorf("Skills = %v, want vocabulary hit for go", p.Skills)
	}
}

func TestParseEmptyPage(t *testing.T) {
	if _, err := Parse("<html><body><div>nothing here</div></body></html>"); err == nil {
		t.Error("Parse accepted a page with no posting content")
	}
}

func TestExtractJobID(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://www.linkedin.com/jobs/view/4335742219", "4335742219"},
		{"https://www.linkedin.com/jobs/view/golang-developer-at-acme-4335742219", "4335742219"},
		{"https://www.linkedin.com/jobs/view/4335742219/?refId=abc", "4335742219"},
		{"https://www.linkedin.com/in/jane-doe/", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ExtractJobID(tt.url); got != tt.want {
			t.Errorf("ExtractJobID(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}

func TestJSONLDLocationArray(t *testing.T) {
	raw := strings.Replace(jsonLDFixture,
		`"jobLocation":{"@type":"Place","address":{"@type":"PostalAddress","addressLocality":"Berlin","addressCountry":"DE"}}`,
		`"jobLocation":[{"@type":"Place","address":{"@type":"PostalAddress","addressLocality":"Lisbon","addressCountry":"PT"}}]`,
		1)
	p, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.Location != "Lisbon, PT" {
		t.Errorf("Location = %q, want array form handled", p.Location)
	}
}
