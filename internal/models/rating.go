package models

// VoteRecord marks that a voter has already submitted ratings for a match.
// It is deliberately decoupled from the scores themselves: the ledger knows
// who voted, the ratings table knows what scores exist, and nothing links
// the two back together.
type VoteRecord struct {
	MatchID int `json:"match_id" db:"match_id"`
	VoterID int `json:"voter_id" db:"voter_id"`
}

// RatingSubmission is one anonymous score for one player in one match.
// Several rows may exist per (match, player), one per voter.
type RatingSubmission struct {
	MatchID       int `json:"match_id" db:"match_id"`
	RatedPlayerID int `json:"rated_player_id" db:"rated_player_id"`
	Score         int `json:"score" db:"score"`
}
