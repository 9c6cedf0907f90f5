package extract

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Plausibility window for dollar figures, in whole dollars. Anything outside
// is assumed to be a page number, a phone fragment, or a misread literal.
const (
	minPlausibleDollars = 1_000
	maxPlausibleDollars = 1_000_000_000
)

var reCurrency = regexp.MustCompile(`(?i)\$\s*([\d,]+(?:\.\d+)?)\s*(million|billion|[mbk])?\b`)

// AmountOptions tunes a single inference call.
type AmountOptions struct {
	// FallbackCents is returned when no plausible candidate survives.
	FallbackCents int64
	// IsDRL suppresses the fallback: report-language requests legitimately
	// carry no dollar figure, so "unspecified" resolves to zero.
	IsDRL bool
}

// InferAmount scans text for currency-like tokens, resolves magnitude
// suffixes, rejects candidates outside the plausibility window and returns
// the maximum survivor in cents. The max-wins rule assumes the largest
// plausible figure in a request document is the total ask.
func InferAmount(text string, opts AmountOptions) int64 {
	best := int64(-1)
	for _, m := range reCurrency.FindAllStringSubmatch(text, -1) {
		literal := strings.ReplaceAll(m[1], ",", "")
		value, err := strconv.ParseFloat(literal, 64)
		if err != nil {
			continue
		}
		switch strings.ToLower(m[2]) {
		case "million", "m":
			value *= 1e6
		case "billion", "b":
			value *= 1e9
		case "k":
			value *= 1e3
		}
		if value < minPlausibleDollars || value >= maxPlausibleDollars {
			continue
		}
		cents := int64(math.Round(value * 100))
		if cents > best {
			best = cents
		}
	}
	if best >= 0 {
		return best
	}
	if opts.IsDRL {
		return 0
	}
	return opts.FallbackCents
}

// FormatAmountCents renders the display string for an amount, matching the
// portal's convention: round-million figures render as "$N MILLION", the
// rest as grouped dollars.
func FormatAmountCents(cents int64) string {
	if cents <= 0 {
		return "$0"
	}
	dollars := cents / 100
	if dollars >= 1_000_000 && dollars%100_000 == 0 {
		millions := float64(dollars) / 1e6
		s := strconv.FormatFloat(millions, 'f', 1, 64)
		s = strings.TrimSuffix(s, ".0")
		return fmt.Sprintf("$%s MILLION", s)
	}
	return "$" + groupThousands(dollars)
}

func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
