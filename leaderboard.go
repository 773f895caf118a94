package netstate

import (
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"
)

// ScoreEntry is one leaderboard row. Name and Stamp are fixed-width,
// NUL-terminated text fields so the whole entry has a stable binary layout.
type ScoreEntry struct {
	ID    uint32
	Name  [MaxNameLength]byte
	Score uint32
	Stamp [TimestampLength]byte
}

// PlayerName returns the entry's name up to its terminator.
func (e *ScoreEntry) PlayerName() string {
	return fieldString(e.Name[:])
}

// Timestamp returns the entry's timestamp up to its terminator.
func (e *ScoreEntry) Timestamp() string {
	return fieldString(e.Stamp[:])
}

// leaderboardRecord is the full persisted aggregate: the live entry count
// followed by the entire backing array, unused slots included.
type leaderboardRecord struct {
	Count  uint32
	Scores [MaxLeaderboardScores]ScoreEntry
}

// Leaderboard is a bounded, score-sorted table of top entries. The live
// prefix Scores[0..Count) is kept sorted descending by score after every
// mutation, so the last live slot always holds the minimum. All methods are
// safe for concurrent use.
type Leaderboard struct {
	mu  sync.Mutex
	log *zap.SugaredLogger
	rec leaderboardRecord
}

// NewLeaderboard constructs an empty leaderboard. A nil logger is replaced
// with a no-op one.
func NewLeaderboard(log *zap.SugaredLogger) *Leaderboard {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Leaderboard{log: log}
}

// AddScore offers a score to the leaderboard. While free slots remain every
// score is admitted. Once the table is full, a new score must strictly beat
// the current minimum, which it then displaces. It reports whether the
// score was admitted; rejection is an expected, frequent outcome.
func (l *Leaderboard) AddScore(id uint32, name string, score uint32, stamp string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.rec.Count < MaxLeaderboardScores {
		l.setEntry(&l.rec.Scores[l.rec.Count], id, name, score, stamp)
		l.rec.Count++
		l.sortLocked()
		return true
	}

	// Full table: the last slot is the minimum because the table is
	// re-sorted after every mutation.
	last := &l.rec.Scores[MaxLeaderboardScores-1]
	if score > last.Score {
		l.setEntry(last, id, name, score, stamp)
		l.sortLocked()
		return true
	}

	return false
}

// TopPlayers returns up to n leaderboard rows in rank order, formatted as
// "<rank>) <name>: <score> [<timestamp>]". It never mutates the table.
func (l *Leaderboard) TopPlayers(n int) []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	count := int(l.rec.Count)
	if n < count {
		count = n
	}
	if count < 0 {
		count = 0
	}

	top := make([]string, 0, count)
	for i := 0; i < count; i++ {
		e := &l.rec.Scores[i]
		top = append(top, fmt.Sprintf("%d) %s: %d [%s]", i+1, e.PlayerName(), e.Score, e.Timestamp()))
	}
	return top
}

// Len returns the number of live entries.
func (l *Leaderboard) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return int(l.rec.Count)
}

func (l *Leaderboard) setEntry(e *ScoreEntry, id uint32, name string, score uint32, stamp string) {
	e.ID = id
	e.Score = score
	copyBounded(e.Name[:], name)
	copyBounded(e.Stamp[:], stamp)
}

// sortLocked re-sorts the whole live prefix descending by score. A full
// re-sort rather than an insertion splice: the table is tiny, and one
// mutation path is easier to keep correct. Callers hold the mutex. The sort
// is stable, so equal scores keep their relative order.
func (l *Leaderboard) sortLocked() {
	live := l.rec.Scores[:l.rec.Count]
	sort.SliceStable(live, func(i, j int) bool {
		return live[i].Score > live[j].Score
	})
}

// copyBounded copies s into a fixed text field, truncating to leave room
// for a NUL terminator and zeroing the remainder of the field.
func copyBounded(dst []byte, s string) {
	for i := range dst {
		dst[i] = 0
	}
	limit := len(dst) - 1
	if len(s) < limit {
		limit = len(s)
	}
	copy(dst, s[:limit])
}

// fieldString decodes a fixed text field up to its terminator.
func fieldString(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
