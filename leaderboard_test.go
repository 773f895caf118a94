package netstate

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	utils "github.com/ZhuJing-digipen/assignment-04-comp-nets/internal"
)

const testStamp = "2026-08-29 12:00:00"

// fillLeaderboard populates every slot with distinct descending scores:
// top slot 1000, then 900, 800, ...
func fillLeaderboard(t *testing.T, l *Leaderboard) {
	t.Helper()

	for i := 0; i < MaxLeaderboardScores; i++ {
		score := uint32((i + 1) * 100)
		utils.AssertTrue(t, l.AddScore(uint32(i), fmt.Sprintf("player-%d", i), score, testStamp))
	}
	utils.AssertEqual(t, l.Len(), MaxLeaderboardScores)
}

func TestLeaderboardAddScore(t *testing.T) {
	t.Run("stays sorted descending regardless of insertion order", func(t *testing.T) {
		l := NewLeaderboard(nil)

		for _, score := range []uint32{40, 700, 300, 995, 12} {
			utils.AssertTrue(t, l.AddScore(1, "p", score, testStamp))
		}

		live := l.rec.Scores[:l.rec.Count]
		for i := 1; i < len(live); i++ {
			assert.GreaterOrEqual(t, live[i-1].Score, live[i].Score)
		}
	})

	t.Run("full table rejects a score not beating the minimum", func(t *testing.T) {
		l := NewLeaderboard(nil)
		fillLeaderboard(t, l)

		before := l.rec

		utils.AssertFalse(t, l.AddScore(42, "loser", 100, testStamp)) // equal to minimum
		utils.AssertFalse(t, l.AddScore(42, "loser", 10, testStamp))
		utils.AssertDeepEqual(t, l.rec, before)
	})

	t.Run("full table admission displaces exactly the minimum entry", func(t *testing.T) {
		l := NewLeaderboard(nil)
		fillLeaderboard(t, l) // minimum is 100

		utils.AssertTrue(t, l.AddScore(42, "contender", 150, testStamp))
		utils.AssertEqual(t, l.Len(), MaxLeaderboardScores)

		live := l.rec.Scores[:l.rec.Count]
		utils.AssertEqual(t, live[len(live)-1].Score, uint32(150))
		for i := range live {
			assert.NotEqual(t, uint32(100), live[i].Score, "evicted minimum still present")
		}
	})

	t.Run("name and timestamp are truncated and terminated", func(t *testing.T) {
		l := NewLeaderboard(nil)

		longName := strings.Repeat("n", MaxNameLength*2)
		longStamp := strings.Repeat("t", TimestampLength*2)
		utils.AssertTrue(t, l.AddScore(1, longName, 50, longStamp))

		e := &l.rec.Scores[0]
		utils.AssertEqual(t, e.PlayerName(), longName[:MaxNameLength-1])
		utils.AssertEqual(t, e.Timestamp(), longStamp[:TimestampLength-1])
		utils.AssertEqual(t, e.Name[MaxNameLength-1], byte(0))
		utils.AssertEqual(t, e.Stamp[TimestampLength-1], byte(0))
	})

	t.Run("short names leave the rest of the field zeroed", func(t *testing.T) {
		l := NewLeaderboard(nil)

		utils.AssertTrue(t, l.AddScore(1, "ab", 50, testStamp))
		e := &l.rec.Scores[0]
		utils.AssertEqual(t, e.PlayerName(), "ab")
		for _, b := range e.Name[2:] {
			utils.AssertEqual(t, b, byte(0))
		}
	})
}

func TestLeaderboardTopPlayers(t *testing.T) {
	t.Run("returns min(n, live count) formatted rows", func(t *testing.T) {
		l := NewLeaderboard(nil)

		utils.AssertTrue(t, l.AddScore(1, "Ada", 300, testStamp))
		utils.AssertTrue(t, l.AddScore(2, "Grace", 500, testStamp))
		utils.AssertTrue(t, l.AddScore(3, "Edsger", 400, testStamp))

		top := l.TopPlayers(2)
		utils.AssertEqual(t, len(top), 2)
		utils.AssertEqual(t, top[0], "1) Grace: 500 ["+testStamp+"]")
		utils.AssertEqual(t, top[1], "2) Edsger: 400 ["+testStamp+"]")

		all := l.TopPlayers(100)
		utils.AssertEqual(t, len(all), 3)
		utils.AssertEqual(t, all[2], "3) Ada: 300 ["+testStamp+"]")
	})

	t.Run("empty leaderboard yields no rows", func(t *testing.T) {
		l := NewLeaderboard(nil)

		utils.AssertEqual(t, len(l.TopPlayers(5)), 0)
		utils.AssertEqual(t, len(l.TopPlayers(0)), 0)
	})

	t.Run("does not mutate the table", func(t *testing.T) {
		l := NewLeaderboard(nil)
		fillLeaderboard(t, l)

		before := l.rec
		_ = l.TopPlayers(MaxLeaderboardScores)
		utils.AssertDeepEqual(t, l.rec, before)
	})
}
