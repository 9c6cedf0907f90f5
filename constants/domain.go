package constants

import "strings"

// Domain is the coarse portfolio classification for a funding request.
type Domain string

const (
	DomainCyber            Domain = "Cyber"
	DomainSpace            Domain = "Space"
	DomainNaval            Domain = "Naval"
	DomainAviation         Domain = "Aviation"
	DomainAIML             Domain = "AI/ML"
	DomainSoldierLethality Domain = "Soldier Lethality"
	DomainGeneral          Domain = "General"
)

var allDomains = []Domain{
	DomainCyber,
	DomainSpace,
	DomainNaval,
	DomainAviation,
	DomainAIML,
	DomainSoldierLethality,
	DomainGeneral,
}

func AllDomains() []string {
	result := make([]string, len(allDomains))
	for i, d := range allDomains {
		result[i] = string(d)
	}
	return result
}

// CanonicalizeDomain maps a free-form label to a known domain.
// Unknown labels fall back to General.
func CanonicalizeDomain(input string) (Domain, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return DomainGeneral, false
	}

	synonyms := map[string]Domain{
		"cybersecurity":           DomainCyber,
		"zero trust":              DomainCyber,
		"satellite":               DomainSpace,
		"navy":                    DomainNaval,
		"maritime":                DomainNaval,
		"air":                     DomainAviation,
		"uas":                     DomainAviation,
		"artificial intelligence": DomainAIML,
		"machine learning":        DomainAIML,
		"soldier lethality":       DomainSoldierLethality,
		"hasc":                    DomainGeneral,
	}
	if d, ok := synonyms[normalized]; ok {
		return d, true
	}

	for _, d := range allDomains {
		if normalized == strings.ToLower(string(d)) {
			return d, true
		}
	}
	return DomainGeneral, false
}
