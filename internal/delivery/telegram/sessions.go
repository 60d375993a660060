package telegram

import (
	"sync"
	"time"

	"futbolamigos/internal/models"
)

// matchDraft accumulates a /newmatch flow before anything is persisted.
// The match is only composed at the very end, so an abandoned draft leaves
// no trace in the store.
type matchDraft struct {
	Date    time.Time
	Outcome models.Outcome
	TeamA   []int
}

// ballot accumulates a /vote flow: the remaining players to score and the
// scores collected so far. Submitted as one unit at the end of the flow.
type ballot struct {
	MatchID int
	VoterID int
	Queue   []models.Player
	Scores  map[int]int
}

type session struct {
	State  string
	Draft  *matchDraft
	Ballot *ballot
}

// sessionStore keeps per-chat FSM state in memory. Flows are short-lived
// and single-user, so losing them on restart only means retyping a command.
type sessionStore struct {
	mu       sync.Mutex
	sessions map[int64]*session
}

func newSessionStore() *sessionStore {
	return &sessionStore{sessions: make(map[int64]*session)}
}

func (s *sessionStore) get(chatID int64) *session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[chatID]
	if !ok {
		sess = &session{State: StateIdle}
		s.sessions[chatID] = sess
	}
	return sess
}

func (s *sessionStore) reset(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[chatID] = &session{State: StateIdle}
}
