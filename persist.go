package netstate

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	uuid "github.com/satori/go.uuid"
)

// SnapshotSize is the exact size in bytes of a persisted leaderboard: a
// uint32 count followed by the full backing array. The layout is
// little-endian with fixed field widths; changing any field breaks
// compatibility with previously saved files.
const SnapshotSize = 4 + MaxLeaderboardScores*(4+MaxNameLength+4+TimestampLength)

// ErrBadSnapshot reports a leaderboard file whose contents do not form a
// valid fixed-size record.
var ErrBadSnapshot = errors.New("leaderboard snapshot is malformed")

// Save writes the whole leaderboard, unused slots included, to path as a
// single binary record, replacing any existing file. The write goes through
// a temp file and an atomic rename, so a failure part-way leaves any
// previous snapshot intact. The leaderboard lock is held for the duration:
// mutation blocks while saving, and the snapshot is never torn.
func (l *Leaderboard) Save(path string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	buf := new(bytes.Buffer)
	buf.Grow(SnapshotSize)
	if err := binary.Write(buf, binary.LittleEndian, &l.rec); err != nil {
		return fmt.Errorf("encode leaderboard: %w", err)
	}

	tmp := filepath.Join(filepath.Dir(path), fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewV4()))
	if err := os.WriteFile(tmp, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write leaderboard snapshot: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace leaderboard snapshot: %w", err)
	}
	return nil
}

// Load replaces the in-memory leaderboard with the record stored at path.
// On any error (missing file, short or oversized file, corrupt count) the
// in-memory state is left completely untouched; a load either fully
// replaces the table or changes nothing.
func (l *Leaderboard) Load(path string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read leaderboard snapshot: %w", err)
	}
	if len(data) != SnapshotSize {
		return fmt.Errorf("%w: %d bytes, want %d", ErrBadSnapshot, len(data), SnapshotSize)
	}

	var rec leaderboardRecord
	if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, &rec); err != nil {
		return fmt.Errorf("decode leaderboard: %w", err)
	}
	if rec.Count > MaxLeaderboardScores {
		return fmt.Errorf("%w: entry count %d exceeds capacity %d", ErrBadSnapshot, rec.Count, MaxLeaderboardScores)
	}

	l.rec = rec
	l.log.Infof("leaderboard loaded from %s: %d entries", path, rec.Count)
	return nil
}
