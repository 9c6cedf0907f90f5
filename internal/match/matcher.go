package match

import (
	"log/slog"
	"strings"
	"unicode"

	"github.com/hasc-tools/ndaa-intake/internal/entity"
)

// containmentScore is awarded when one normalized name contains the other.
const containmentScore = 10

// NormalizeName lowercases and strips everything but letters and digits.
func NormalizeName(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Score rates how well a candidate identifier (organization name or cleaned
// filename) matches an existing record's organization name: 10 points for
// substring containment in either direction, plus 1 point per
// whitespace-delimited candidate word (longer than two characters) found in
// the normalized existing name. Intentionally naive; callers depend on this
// exact rule.
func Score(candidate, existingName string) int {
	nc := NormalizeName(candidate)
	ne := NormalizeName(existingName)
	if nc == "" || ne == "" {
		return 0
	}

	score := 0
	if strings.Contains(nc, ne) || strings.Contains(ne, nc) {
		score += containmentScore
	}
	for _, word := range strings.Fields(strings.ToLower(candidate)) {
		word = NormalizeName(word)
		if len(word) > 2 && strings.Contains(ne, word) {
			score++
		}
	}
	return score
}

// Match scores one candidate against the full record set and returns the
// best-scoring record. Ties keep the first-seen record; a best score of zero
// means "treat as new".
func Match(candidate string, existing []entity.FundingRequest) entity.MatchResult {
	best := entity.MatchResult{}
	for _, rec := range existing {
		s := Score(candidate, rec.OrganizationName)
		if s > best.Score {
			best = entity.MatchResult{Matched: true, MatchedID: rec.ID, Score: s}
		}
	}
	if best.Score == 0 {
		return entity.MatchResult{}
	}
	return best
}

// Matcher performs greedy one-to-one assignment of a candidate batch against
// the shared existing-record pool. Each existing record is claimed by at
// most one candidate per run.
type Matcher struct {
	logger *slog.Logger
}

func NewMatcher(logger *slog.Logger) *Matcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Matcher{logger: logger}
}

// Assign resolves all candidates in one pass. Pairs are claimed in
// descending score order, so when two candidates want the same record the
// higher-scoring one wins and the other falls through to its next-best
// record or to "no match". Ties resolve to the earlier candidate, then the
// earlier existing record (stable insertion order). Results are indexed
// like candidates.
func (m *Matcher) Assign(candidates []string, existing []entity.FundingRequest) []entity.MatchResult {
	results := make([]entity.MatchResult, len(candidates))

	scores := make([][]int, len(candidates))
	for i, cand := range candidates {
		scores[i] = make([]int, len(existing))
		for j, rec := range existing {
			scores[i][j] = Score(cand, rec.OrganizationName)
		}
	}

	candidateDone := make([]bool, len(candidates))
	recordClaimed := make([]bool, len(existing))

	for {
		bestScore, bestCand, bestRec := 0, -1, -1
		for i := range candidates {
			if candidateDone[i] {
				continue
			}
			for j := range existing {
				if recordClaimed[j] {
					continue
				}
				if scores[i][j] > bestScore {
					bestScore, bestCand, bestRec = scores[i][j], i, j
				}
			}
		}
		if bestCand < 0 {
			break
		}
		candidateDone[bestCand] = true
		recordClaimed[bestRec] = true
		results[bestCand] = entity.MatchResult{
			Matched:   true,
			MatchedID: existing[bestRec].ID,
			Score:     bestScore,
		}
		m.logger.Debug("match.claimed",
			"candidate", candidates[bestCand],
			"existing", existing[bestRec].OrganizationName,
			"score", bestScore,
		)
	}
	return results
}
