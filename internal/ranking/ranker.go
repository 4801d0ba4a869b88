// Package ranking orders feed posts by an engagement/recency/trust
// heuristic. It is a pure function of the signals passed in: counts are
// recomputed from relational state by the caller on every invocation, the
// package holds no state and is safely re-entrant.
package ranking

import (
	"sort"
	"time"
)

// Scoring weights. Tunables, not hard-coded law.
const (
	// WeightLike is the score contribution per like
	WeightLike = 1.1
	// WeightFollower is the score contribution per author follower
	WeightFollower = 1.25
	// VerifiedBoost is added to fresh posts by verified authors
	VerifiedBoost = 0.5
	// BoostWindow bounds how old a post may be to receive VerifiedBoost.
	// The boundary is strict: a post exactly BoostWindow old gets nothing.
	BoostWindow = 24 * time.Hour
)

// Signals are the per-post inputs to the scoring function
type Signals struct {
	CreatedAt      time.Time
	LikeCount      int64
	FollowerCount  int64
	AuthorVerified bool
}

// Entry pairs a post with its signals and computed score
type Entry struct {
	Signals Signals
	Score   float64
	PostID  int64
}

// Score computes the ranking score for one post at the given instant
func Score(s Signals, now time.Time) float64 {
	score := float64(s.LikeCount)*WeightLike + float64(s.FollowerCount)*WeightFollower
	if s.AuthorVerified && now.Sub(s.CreatedAt) < BoostWindow {
		score += VerifiedBoost
	}
	return score
}

// Rank scores all entries and sorts them in place, best first: descending
// by score, newer first on equal scores. The sort is stable, so entries
// with equal score and timestamp keep their input order across repeated
// sorts of the same input.
func Rank(entries []Entry, now time.Time) {
	for i := range entries {
		entries[i].Score = Score(entries[i].Signals, now)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].Signals.CreatedAt.After(entries[j].Signals.CreatedAt)
	})
}
