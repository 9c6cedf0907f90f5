package constants

// VoteStatus is the member-facing decision state for a request.
type VoteStatus string

// Stable values (store these exact strings in DB).
const (
	VotePending VoteStatus = "pending"
	VoteYes     VoteStatus = "yes"
	VoteNo      VoteStatus = "no"
	VoteHold    VoteStatus = "hold"
)

func IsValidVote(s string) bool {
	switch VoteStatus(s) {
	case VotePending, VoteYes, VoteNo, VoteHold:
		return true
	}
	return false
}

// TierUnderReview is the default tier assigned to newly ingested requests.
const TierUnderReview = "Tier 2 (Under Review)"
