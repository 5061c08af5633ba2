package deal

import "time"

const (
	// VoteTTL is how long a vote set survives after its latest ballot.
	VoteTTL = time.Hour
	// Quorum is the number of distinct ballots that completes a deal.
	Quorum = 2
)

// Votes maps voter id to ballot.
type Votes map[int64]bool

// Has reports whether voterID already cast a ballot.
func (v Votes) Has(voterID int64) bool {
	_, ok := v[voterID]
	return ok
}

// Complete reports whether the set reached quorum.
func (v Votes) Complete() bool {
	return len(v) == Quorum
}
