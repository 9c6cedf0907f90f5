package extract

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasc-tools/ndaa-intake/constants"
	"github.com/hasc-tools/ndaa-intake/internal/common"
)

func newTestExtractor(t *testing.T) *FieldExtractor {
	t.Helper()
	return NewFieldExtractor(common.DefaultHeuristics(), nil)
}

func TestExtractLabeledForm(t *testing.T) {
	e := newTestExtractor(t)
	text := `FY27 NDAA Request Form

Requesting Organization: Epirus Defense
Proposal Summary: Counter-UAS high-power microwave systems for base defense.
The system improves survivability for forward-deployed units. A third sentence
with more detail follows here. A fourth sentence should be dropped.
Exact language being requested: The Secretary of Defense shall allocate funding
for directed-energy counter-UAS systems.
Line Item/PE Title: PE 0602786A

The total request is $4.0 million.`

	cand := e.Extract(text, "Epirus Defense FY27 NDAA Request Form.pdf", 250_000_000)

	assert.Equal(t, "Epirus Defense", cand.OrganizationName)
	assert.Equal(t, int64(400_000_000), cand.RequestAmountCents)
	assert.Equal(t, "$4 MILLION", cand.FormattedAmount)
	assert.Equal(t, "PE 0602786A", cand.ProgramElement)
	assert.False(t, cand.IsDRL)

	// "counter-UAS" must not trip the aviation acronym rule.
	assert.Equal(t, constants.DomainGeneral, cand.Domain)

	// Three sentences, collapsed, capped.
	assert.True(t, strings.HasPrefix(cand.BriefSummary, "Counter-UAS high-power microwave systems"))
	assert.NotContains(t, cand.BriefSummary, "fourth sentence")

	assert.Contains(t, cand.BudgetLanguage, "Secretary of Defense")
}

func TestExtractCompactForm(t *testing.T) {
	e := newTestExtractor(t)
	text := "Requesting Organization: Epirus Defense\nProposal Summary: Funds directed energy counter-UAS prototypes. Supports 40 jobs in district.\nExact language being requested: Increase PE 0603114N by $4.0M."

	cand := e.Extract(text, "epirus.pdf", 250_000_000)
	assert.Equal(t, "Epirus Defense", cand.OrganizationName)
	assert.Equal(t, int64(400_000_000), cand.RequestAmountCents)
	assert.Equal(t, constants.DomainGeneral, cand.Domain)
	assert.False(t, cand.IsDRL)
}

func TestExtractStandaloneDRLToken(t *testing.T) {
	e := newTestExtractor(t)
	cand := e.Extract("This submission is a DRL request with no appropriation attached.", "drl.pdf", 250_000_000)
	assert.True(t, cand.IsDRL)
	assert.Equal(t, int64(0), cand.RequestAmountCents)
}

func TestExtractReportLanguageOnly(t *testing.T) {
	e := newTestExtractor(t)
	text := `Requesting Organization: Hudson Institute
Proposal Summary: We request Direct Report Language directing a study of
munitions stockpile resilience. No appropriation is sought. This is purely
directive text.`

	cand := e.Extract(text, "Hudson Institute.docx", 250_000_000)

	assert.True(t, cand.IsDRL)
	assert.Equal(t, int64(0), cand.RequestAmountCents)
	assert.Equal(t, "$0", cand.FormattedAmount)
}

func TestExtractDefaultsOnEmptyText(t *testing.T) {
	e := newTestExtractor(t)
	cand := e.Extract("", "Mills FY27 NDAA Request Astranis.pdf", 250_000_000)

	assert.Equal(t, "Astranis", cand.OrganizationName)
	assert.Equal(t, int64(250_000_000), cand.RequestAmountCents)
	assert.Equal(t, "Review full document for proposal summary.", cand.BriefSummary)
	assert.Equal(t, "See full document for exact language.", cand.BudgetLanguage)
	assert.Equal(t, "Standard PE", cand.ProgramElement)
	assert.Equal(t, constants.DomainGeneral, cand.Domain)
	assert.Equal(t, "Statewide/National Impact", cand.DistrictImpact)
	assert.Empty(t, cand.WarfighterServices)
}

func TestExtractIsIdempotent(t *testing.T) {
	e := newTestExtractor(t)
	text := "Requesting Organization: Anduril Industries\nProposal Summary: Autonomous systems for the Navy. Improves readiness at scale. $12 million total."

	first := e.Extract(text, "anduril.pdf", 250_000_000)
	second := e.Extract(text, "anduril.pdf", 250_000_000)
	assert.Equal(t, first, second)
}

func TestNameFromFilename(t *testing.T) {
	e := newTestExtractor(t)
	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{"boilerplate and submitter stripped", "Mills FY27 NDAA Request Astranis.pdf", "Astranis"},
		{"copy marker stripped", "Epirus Defense (2).pdf", "Epirus Defense"},
		{"bracket copy marker stripped", "Epirus Defense [3].docx", "Epirus Defense"},
		{"separators become spaces", "saronic-technologies_proposal.pdf", "saronic technologies proposal"},
		{"form suffix stripped", "Palantir FY27 NDAA Request Form.docx", "Palantir"},
		{"everything stripped falls back to stem", "Mills (1).pdf", "Mills (1)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.NameFromFilename(tt.filename))
		})
	}
}

func TestClassifyDomainOrderingAndTokens(t *testing.T) {
	tests := []struct {
		name string
		text string
		want constants.Domain
	}{
		{"cyber beats space on order", "zero trust architecture for satellite ground stations", constants.DomainCyber},
		{"space", "resilient satellite communications", constants.DomainSpace},
		{"naval", "submarine industrial base support", constants.DomainNaval},
		{"aviation standalone acronym", "counter uas detection. the uas threat is growing.", constants.DomainAviation},
		{"hyphenated acronym does not match", "counter-uas microwave systems", constants.DomainGeneral},
		{"ai standalone token", "applied ai for logistics", constants.DomainAIML},
		{"ai inside a word does not match", "maintains equipment availability", constants.DomainGeneral},
		{"soldier lethality", "next generation soldier optics", constants.DomainSoldierLethality},
		{"no keywords", "general purpose manufacturing", constants.DomainGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyDomain(tt.text))
		})
	}
}

func TestTagServices(t *testing.T) {
	text := "Supports the Army and the Marine Corps; the Air Force provides lift."
	got := tagServices(text)
	assert.Equal(t, []constants.Service{constants.ServiceArmy, constants.ServiceMarines, constants.ServiceAirForce}, got)
}

func TestSummaryTruncation(t *testing.T) {
	e := newTestExtractor(t)
	long := strings.Repeat("word ", 120)
	text := "Proposal Summary: " + long

	cand := e.Extract(text, "x.pdf", 250_000_000)
	require.True(t, strings.HasSuffix(cand.BriefSummary, "..."))
	assert.LessOrEqual(t, len(cand.BriefSummary), 303)
}

func TestBudgetLanguageLongBlock(t *testing.T) {
	e := newTestExtractor(t)
	block := strings.Repeat("Increase the account by the stated amount. ", 40)
	cand := e.Extract("Exact language being requested: "+block, "x.pdf", 250_000_000)

	require.True(t, strings.HasSuffix(cand.BudgetLanguage, "..."))
	assert.LessOrEqual(t, len(cand.BudgetLanguage), 503)
}

func TestTruncationKeepsValidUTF8(t *testing.T) {
	e := newTestExtractor(t)
	// An unbroken run of three-byte runes: every byte cap that is not a
	// multiple of three lands mid-rune.
	curly := strings.Repeat("“", 400)

	summary := e.Extract("Proposal Summary: "+curly, "x.pdf", 250_000_000).BriefSummary
	require.True(t, strings.HasSuffix(summary, "..."))
	assert.True(t, utf8.ValidString(summary))

	budget := e.Extract("Exact language being requested: "+curly, "x.pdf", 250_000_000).BudgetLanguage
	require.True(t, strings.HasSuffix(budget, "..."))
	assert.True(t, utf8.ValidString(budget))
}

func TestDistrictClassification(t *testing.T) {
	e := newTestExtractor(t)

	t.Run("explicit city answer", func(t *testing.T) {
		cand := e.Extract("If Yes, City or County: Sanford\n$2 million request", "x.pdf", 0)
		assert.Equal(t, "Impacts Sanford", cand.DistrictImpact)
	})
	t.Run("district keyword", func(t *testing.T) {
		cand := e.Extract("Manufacturing in Orlando supports this. $2 million.", "x.pdf", 0)
		assert.Equal(t, "District 07 (Orlando Region)", cand.DistrictImpact)
	})
	t.Run("statewide default", func(t *testing.T) {
		cand := e.Extract("Nationwide production base. $2 million.", "x.pdf", 0)
		assert.Equal(t, "Statewide/National Impact", cand.DistrictImpact)
	})
}
