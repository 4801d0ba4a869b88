package ranking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestScore_Weights(t *testing.T) {
	s := Signals{
		LikeCount:     10,
		FollowerCount: 4,
		CreatedAt:     now.Add(-48 * time.Hour),
	}
	// 10*1.1 + 4*1.25, no boost for an unverified author
	assert.InDelta(t, 16.0, Score(s, now), 1e-9)
}

func TestScore_Deterministic(t *testing.T) {
	s := Signals{
		LikeCount:      3,
		FollowerCount:  7,
		AuthorVerified: true,
		CreatedAt:      now.Add(-time.Hour),
	}
	assert.Equal(t, Score(s, now), Score(s, now))
}

func TestScore_BoostWindowBoundary(t *testing.T) {
	base := Signals{AuthorVerified: true}

	atBoundary := base
	atBoundary.CreatedAt = now.Add(-BoostWindow)
	assert.InDelta(t, 0.0, Score(atBoundary, now), 1e-9, "exactly 24h old gets no boost")

	inside := base
	inside.CreatedAt = now.Add(-BoostWindow + time.Minute)
	assert.InDelta(t, VerifiedBoost, Score(inside, now), 1e-9, "23h59m old gets the boost")
}

func TestScore_BoostRequiresVerified(t *testing.T) {
	s := Signals{CreatedAt: now.Add(-time.Minute)}
	assert.InDelta(t, 0.0, Score(s, now), 1e-9)
}

func TestRank_HigherScoreFirst(t *testing.T) {
	entries := []Entry{
		{PostID: 1, Signals: Signals{LikeCount: 3, CreatedAt: now.Add(-time.Minute)}},
		{PostID: 2, Signals: Signals{LikeCount: 5, CreatedAt: now.Add(-72 * time.Hour)}},
	}

	Rank(entries, now)

	// Score wins regardless of timestamp
	assert.Equal(t, int64(2), entries[0].PostID)
	assert.Equal(t, int64(1), entries[1].PostID)
}

func TestRank_NewerWinsTies(t *testing.T) {
	older := now.Add(-2 * time.Hour)
	newer := now.Add(-time.Hour)
	entries := []Entry{
		{PostID: 1, Signals: Signals{LikeCount: 10, CreatedAt: older}},
		{PostID: 2, Signals: Signals{LikeCount: 10, CreatedAt: newer}},
	}

	Rank(entries, now)

	assert.Equal(t, entries[0].Score, entries[1].Score)
	assert.Equal(t, int64(2), entries[0].PostID, "newer post sorts first on equal score")
}

func TestRank_StableForEqualInputs(t *testing.T) {
	ts := now.Add(-time.Hour)
	make3 := func() []Entry {
		return []Entry{
			{PostID: 1, Signals: Signals{LikeCount: 1, CreatedAt: ts}},
			{PostID: 2, Signals: Signals{LikeCount: 1, CreatedAt: ts}},
			{PostID: 3, Signals: Signals{LikeCount: 1, CreatedAt: ts}},
		}
	}

	a := make3()
	b := make3()
	Rank(a, now)
	Rank(b, now)

	for i := range a {
		assert.Equal(t, a[i].PostID, b[i].PostID, "equal-key order must be consistent")
	}
	assert.Equal(t, int64(1), a[0].PostID)
}

func TestRank_ComputesScores(t *testing.T) {
	entries := []Entry{
		{PostID: 1, Signals: Signals{LikeCount: 2, FollowerCount: 4, AuthorVerified: true, CreatedAt: now.Add(-time.Hour)}},
	}

	Rank(entries, now)

	// 2*1.1 + 4*1.25 + 0.5
	assert.InDelta(t, 7.7, entries[0].Score, 1e-9)
}
