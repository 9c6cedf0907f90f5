package extract

import (
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/hasc-tools/ndaa-intake/constants"
	"github.com/hasc-tools/ndaa-intake/internal/common"
	"github.com/hasc-tools/ndaa-intake/internal/entity"
)

// Labeled-section capture rules. Each field is matched independently: the
// label, then a whitespace/colon run, then the value. Block captures are cut
// at the next recognized label downstream.
var (
	reOrganization = regexp.MustCompile(`(?i)(?:requesting organization|organization name|name of organization|entity name|requesting entity|company name|organization)[\s:]+([A-Za-z0-9][^\n]*)`)
	reSummary      = regexp.MustCompile(`(?i)(?:proposal summary|project overview|proposal title|project title|program name|project name)[\s:]+([\s\S]{20,1000})`)
	reBudgetLang   = regexp.MustCompile(`(?i)exact language being requested[\s:]+([\s\S]{1,1000})`)
	reProgramElem  = regexp.MustCompile(`(?i)(?:line item/pe title|appropriations account)[\s:]+([^\n]+)`)
	reCityCounty   = regexp.MustCompile(`(?i)if yes, city or county[\s:]+([^\n]+)`)

	reDRL        = regexp.MustCompile(`(?i)direct report language|report language|\bdrl\b`)
	reSentence   = regexp.MustCompile(`[^.!?]+[.!?]+(?:\s|$)`)
	reCopyMarker = regexp.MustCompile(`\(\d+\)|\[\d+\]`)
	reSeparators = regexp.MustCompile(`[-_]`)
	reSpaceRun   = regexp.MustCompile(`\s+`)
)

// knownLabels delimits block captures: a captured run ends where the next
// recognized form label begins.
var knownLabels = []string{
	"requesting organization",
	"organization name",
	"name of organization",
	"entity name",
	"requesting entity",
	"company name",
	"proposal summary",
	"project overview",
	"proposal title",
	"project title",
	"program name",
	"project name",
	"justification",
	"exact language being requested",
	"line item/pe title",
	"appropriations account",
	"if yes, city or county",
}

// Field defaults, applied when a label is absent.
const (
	defaultSummary        = "Review full document for proposal summary."
	defaultBudgetLanguage = "See full document for exact language."
	defaultProgramElement = "Standard PE"
)

// Domain classification, first match wins in this order. Keywords of three
// characters or fewer are acronyms and must stand alone as a token; longer
// keywords match as substrings.
var domainRules = []struct {
	domain   constants.Domain
	keywords []string
}{
	{constants.DomainCyber, []string{"cyber", "zero trust"}},
	{constants.DomainSpace, []string{"space", "satellite"}},
	{constants.DomainNaval, []string{"navy", "naval", "submarine"}},
	{constants.DomainAviation, []string{"aviation", "drone", "uas"}},
	{constants.DomainAIML, []string{"artificial intelligence", "machine learning", "ai"}},
	{constants.DomainSoldierLethality, []string{"soldier", "lethality", "vision"}},
}

var serviceRules = []struct {
	service constants.Service
	re      *regexp.Regexp
}{
	{constants.ServiceArmy, regexp.MustCompile(`(?i)\barmy\b`)},
	{constants.ServiceNavy, regexp.MustCompile(`(?i)\bnavy\b`)},
	{constants.ServiceMarines, regexp.MustCompile(`(?i)\bmarines\b|\bmarine corps\b`)},
	{constants.ServiceAirForce, regexp.MustCompile(`(?i)\bair force\b`)},
	{constants.ServiceSpaceForce, regexp.MustCompile(`(?i)\bspace force\b`)},
}

// The warfighter-impact BLUF is a two-way classifier, not free text.
type impactClass int

const (
	impactNeedsClarification impactClass = iota
	impactDirect
)

var impactKeywords = []string{"lethality", "survivability", "readiness"}

var impactStatements = map[impactClass]string{
	impactDirect:             "Enhances operational readiness directly by modernizing key logistics nodes. This directly reduces time-on-target bottlenecks for deployed service members.",
	impactNeedsClarification: "Flag as 'Needs Clarification' if no direct impact to the warfighter can be identified in the text.",
}

// FieldExtractor turns normalized document text into a CandidateRecord.
// Extract is total: every field degrades to a deterministic default.
type FieldExtractor struct {
	logger        *slog.Logger
	cfg           common.HeuristicsConfig
	boilerplateRe *regexp.Regexp
}

func NewFieldExtractor(cfg common.HeuristicsConfig, logger *slog.Logger) *FieldExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	phrases := []string{
		"fy27 ndaa request form",
		"fy27 ndaa submission",
		"fy27 ndaa request",
		"fy27 ndaa",
		"request form",
	}
	phrases = append(phrases, cfg.SubmitterTokens...)
	// Longest phrase first so "fy27 ndaa request form" wins over "fy27 ndaa".
	quoted := make([]string, len(phrases))
	for i, p := range phrases {
		quoted[i] = regexp.QuoteMeta(p)
	}
	boilerplate := regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`)
	return &FieldExtractor{logger: logger, cfg: cfg, boilerplateRe: boilerplate}
}

// Extract applies every labeled-section heuristic independently and returns
// a fully defaulted candidate. fallbackCents is the no-amount default for
// this call path; DRL requests resolve a missing amount to zero instead.
func (e *FieldExtractor) Extract(text, filename string, fallbackCents int64) entity.CandidateRecord {
	text = NormalizeText(text)
	lower := strings.ToLower(text)

	isDRL := reDRL.MatchString(text)
	amountCents := InferAmount(text, AmountOptions{FallbackCents: fallbackCents, IsDRL: isDRL})

	cand := entity.CandidateRecord{
		OrganizationName:   e.organization(text, filename),
		RequestAmountCents: amountCents,
		FormattedAmount:    FormatAmountCents(amountCents),
		ProgramElement:     e.programElement(text),
		BriefSummary:       e.summary(text),
		DistrictImpact:     e.district(text, lower),
		BudgetLanguage:     e.budgetLanguage(text),
		Domain:             classifyDomain(lower),
		WarfighterImpact:   impactStatements[classifyImpact(lower)],
		WarfighterServices: tagServices(text),
		IsDRL:              isDRL,
		SourceFilename:     filename,
	}

	e.logger.Debug("fields.extract.ok",
		"filename", filename,
		"organization", cand.OrganizationName,
		"amount_cents", cand.RequestAmountCents,
		"domain", string(cand.Domain),
		"is_drl", cand.IsDRL,
	)
	return cand
}

// NameFromFilename derives a display organization name from a raw filename:
// extension and copy markers go first, then form boilerplate and submitter
// phrases, then separator cleanup.
func (e *FieldExtractor) NameFromFilename(filename string) string {
	base := filepath.Base(filename)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	name := reCopyMarker.ReplaceAllString(stem, " ")
	name = reSeparators.ReplaceAllString(name, " ")
	name = e.boilerplateRe.ReplaceAllString(name, " ")
	name = strings.TrimSpace(reSpaceRun.ReplaceAllString(name, " "))

	if len(name) < 3 {
		// Scrubbed everything away; fall back to the raw stem.
		name = strings.TrimSpace(reSpaceRun.ReplaceAllString(reSeparators.ReplaceAllString(stem, " "), " "))
	}
	return name
}

func (e *FieldExtractor) organization(text, filename string) string {
	if m := reOrganization.FindStringSubmatch(text); m != nil {
		if v := strings.TrimSpace(m[1]); v != "" {
			return v
		}
	}
	return e.NameFromFilename(filename)
}

func (e *FieldExtractor) summary(text string) string {
	m := reSummary.FindStringSubmatch(text)
	if m == nil {
		return defaultSummary
	}
	block := cutAtNextLabel(strings.TrimSpace(m[1]))
	if block == "" {
		return defaultSummary
	}

	sentences := reSentence.FindAllString(block, 3)
	if len(sentences) > 0 {
		return truncateEllipsis(collapseSpace(strings.Join(sentences, "")), 300)
	}
	// No clean punctuation; take a bounded prefix.
	return truncateEllipsis(collapseSpace(block), 200)
}

func (e *FieldExtractor) budgetLanguage(text string) string {
	m := reBudgetLang.FindStringSubmatch(text)
	if m == nil {
		return defaultBudgetLanguage
	}
	s := collapseSpace(cutAtNextLabel(strings.TrimSpace(m[1])))
	if s == "" {
		return defaultBudgetLanguage
	}
	return truncateEllipsis(s, 500)
}

func (e *FieldExtractor) programElement(text string) string {
	if m := reProgramElem.FindStringSubmatch(text); m != nil {
		if v := strings.TrimSpace(m[1]); v != "" {
			return v
		}
	}
	return defaultProgramElement
}

func (e *FieldExtractor) district(text, lower string) string {
	if m := reCityCounty.FindStringSubmatch(text); m != nil {
		if v := strings.TrimSpace(m[1]); v != "" {
			return "Impacts " + v
		}
	}
	for _, kw := range e.cfg.DistrictKeywords {
		if strings.Contains(lower, kw) {
			return e.cfg.DistrictLabel
		}
	}
	return e.cfg.StatewideLabel
}

// truncateEllipsis caps s at n bytes without splitting a multi-byte rune
// (DOCX text is full of smart quotes), appending "..." when it cuts.
func truncateEllipsis(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := n
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}

// cutAtNextLabel trims a greedy block capture at the earliest occurrence of
// any recognized form label.
func cutAtNextLabel(block string) string {
	lower := strings.ToLower(block)
	cut := len(block)
	for _, label := range knownLabels {
		if idx := strings.Index(lower, label); idx >= 0 && idx < cut {
			cut = idx
		}
	}
	return strings.TrimSpace(block[:cut])
}

func classifyDomain(lower string) constants.Domain {
	tokens := tokenSet(lower)
	for _, rule := range domainRules {
		for _, kw := range rule.keywords {
			if len(kw) <= 3 {
				if _, ok := tokens[kw]; ok {
					return rule.domain
				}
				continue
			}
			if strings.Contains(lower, kw) {
				return rule.domain
			}
		}
	}
	return constants.DomainGeneral
}

func tokenSet(lower string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(lower) {
		w = strings.Trim(w, `.,;:()[]{}!?"'`)
		if w != "" {
			set[w] = struct{}{}
		}
	}
	return set
}

func tagServices(text string) []constants.Service {
	var out []constants.Service
	for _, rule := range serviceRules {
		if rule.re.MatchString(text) {
			out = append(out, rule.service)
		}
	}
	return out
}

func classifyImpact(lower string) impactClass {
	for _, kw := range impactKeywords {
		if strings.Contains(lower, kw) {
			return impactDirect
		}
	}
	return impactNeedsClarification
}
