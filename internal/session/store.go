package session

import (
	"sync"
	"time"

	"garment-studio-bot/internal/studio"
)

// State is the per-chat studio state: the current reference asset, the
// latest result snapshot, and the request preferences. Artifacts survive a
// reference re-upload until the user clears them explicitly.
type State struct {
	Source  *studio.SourceAsset
	Results []studio.Artifact

	Slogan string

	ReviewLanguage string
	AgeBracket     string
	Gender         string

	// ArtifactByMessage maps a sent photo message id to the artifact it
	// shows, so a reply to that message routes as a correction.
	ArtifactByMessage map[int]string

	UpdatedAt time.Time
}

// FindArtifact returns the artifact with the given id, if present.
func (st State) FindArtifact(id string) (studio.Artifact, bool) {
	for _, a := range st.Results {
		if a.ID == id {
			return a, true
		}
	}
	return studio.Artifact{}, false
}

type Store struct {
	mu sync.Mutex
	m  map[stateKey]*State
}

type stateKey struct {
	ChatID int64
	UserID int64
}

func NewStore() *Store {
	return &Store{m: make(map[stateKey]*State)}
}

func (s *Store) Get(chatID, userID int64) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return *s.getOrCreateLocked(chatID, userID)
}

func (s *Store) Update(chatID, userID int64, fn func(*State)) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.getOrCreateLocked(chatID, userID)
	if fn != nil {
		fn(st)
	}
	st.UpdatedAt = time.Now()
	return *st
}

func (s *Store) Reset(chatID, userID int64) State {
	return s.Update(chatID, userID, func(st *State) {
		*st = defaultState()
	})
}

func (s *Store) getOrCreateLocked(chatID, userID int64) *State {
	key := stateKey{ChatID: chatID, UserID: userID}
	if st, ok := s.m[key]; ok {
		return st
	}
	st := defaultState()
	s.m[key] = &st
	return s.m[key]
}

func defaultState() State {
	return State{
		ReviewLanguage:    "uk",
		AgeBracket:        "30-40",
		Gender:            "male",
		ArtifactByMessage: make(map[int]string),
		UpdatedAt:         time.Now(),
	}
}
