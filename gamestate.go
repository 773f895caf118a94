package netstate

import (
	"sync"

	"go.uber.org/zap"
)

// Capacity bounds for the shared state tables. Every collection in this
// package is fixed-size; a hostile or buggy client cannot grow them.
const (
	MaxNetworkObjects    = 64
	MaxPlayers           = 4
	MaxLeaderboardScores = 10
	MaxNameLength        = 32
	TimestampLength      = 20
)

// TimeLayout is the expected format of leaderboard timestamps. It fits the
// fixed timestamp field with its terminator.
const TimeLayout = "2006-01-02 15:04:05"

// Vec2 is a 2D float vector, matching the transform fields on the wire.
type Vec2 struct {
	X, Y float32
}

// Transform holds the synchronised movement state of a network object.
type Transform struct {
	Position Vec2
	Velocity Vec2
	Scale    Vec2
}

// NetworkObject is a game entity whose transform is synchronised across the
// network. At most one live entry exists per identifier.
type NetworkObject struct {
	ID        uint32
	Transform Transform
}

// PlayerRecord tracks one player's score and remaining lives. Player
// identifiers are a separate namespace from object identifiers.
type PlayerRecord struct {
	ID    uint32
	Score uint32
	Lives uint32
}

// GameState is the authoritative store shared between the network layer
// (applying inbound updates) and the simulation layer (reading state).
// All methods are safe for concurrent use; one mutex covers the whole of
// each operation, so every read-modify-write is atomic.
type GameState struct {
	mu      sync.Mutex
	log     *zap.SugaredLogger
	objects []NetworkObject
	players []PlayerRecord
}

// NewGameState constructs an empty game state store. A nil logger is
// replaced with a no-op one.
func NewGameState(log *zap.SugaredLogger) *GameState {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &GameState{
		log:     log,
		objects: make([]NetworkObject, 0, MaxNetworkObjects),
		players: make([]PlayerRecord, 0, MaxPlayers),
	}
}

// SetObject records the transform for the given object identifier,
// overwriting the existing entry or appending a new one. It reports false
// only when the identifier is unknown and the object table is full.
// Lookup is a linear scan; the tables are small and bounded, so an index
// structure would not pay for itself.
func (s *GameState) SetObject(id uint32, position, velocity, scale Vec2) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.objects {
		if s.objects[i].ID == id {
			s.objects[i].Transform = Transform{Position: position, Velocity: velocity, Scale: scale}
			return true
		}
	}

	if len(s.objects) < MaxNetworkObjects {
		s.objects = append(s.objects, NetworkObject{
			ID:        id,
			Transform: Transform{Position: position, Velocity: velocity, Scale: scale},
		})
		return true
	}

	// Either the scene genuinely holds too many objects, or duplicates of
	// the same object arrived under different identifiers.
	s.log.Warnf("object table full (%d entries); dropping update for object %d", MaxNetworkObjects, id)
	return false
}

// GetObject returns the stored transform for the given object identifier.
// A miss means the client and server disagree about the object's existence;
// it is reported to the caller and logged, never fatal.
func (s *GameState) GetObject(id uint32) (Transform, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.objects {
		if s.objects[i].ID == id {
			return s.objects[i].Transform, true
		}
	}

	s.log.Warnf("object %d is not synchronised with the server", id)
	return Transform{}, false
}

// SetPlayerData records score and lives for the given player identifier,
// with the same upsert semantics as SetObject over the player table.
func (s *GameState) SetPlayerData(id, score, lives uint32) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.players {
		if s.players[i].ID == id {
			s.players[i].Score = score
			s.players[i].Lives = lives
			return true
		}
	}

	if len(s.players) < MaxPlayers {
		s.players = append(s.players, PlayerRecord{ID: id, Score: score, Lives: lives})
		return true
	}

	s.log.Warnf("player table full (%d entries); dropping update for player %d", MaxPlayers, id)
	return false
}

// GetPlayerData returns the stored score and lives for the given player
// identifier. A miss is reported through ok alone.
func (s *GameState) GetPlayerData(id uint32) (score, lives uint32, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.players {
		if s.players[i].ID == id {
			return s.players[i].Score, s.players[i].Lives, true
		}
	}

	return 0, 0, false
}

// ObjectCount returns the number of live network objects.
func (s *GameState) ObjectCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}

// PlayerCount returns the number of live player records.
func (s *GameState) PlayerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.players)
}
