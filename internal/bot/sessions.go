package bot

import (
	"sync"

	"pet-health-bot/internal/domain/observations"
	"pet-health-bot/internal/domain/pets"
)

// flow identifies which multi-step conversation a chat is in.
type flow int

const (
	flowNone flow = iota
	flowRegisterPet
	flowLogHealth
	flowAIChat
)

// Pet registration steps.
const (
	stepPetName = iota
	stepPetSpecies
	stepPetBreed
	stepPetSex
	stepPetAgeYears
	stepPetAgeMonths
	stepPetWeight
)

// Health log steps.
const (
	stepLogWeight = iota
	stepLogFood
	stepLogMood
	stepLogStool
	stepLogAppetite
	stepLogWater
	stepLogTemperature
	stepLogBreathing
	stepLogActivity
	stepLogSymptoms
	stepLogNotes
)

// session is the per-chat conversation state. Everything in here is
// throwaway; losing it on restart only cancels an in-progress flow.
type session struct {
	Flow flow
	Step int

	// Selected pet for logging, analysis and chat context.
	PetID string

	PetDraft pets.CreateInput
	LogDraft observations.LogInput

	// AI chat mode, one of the prompts.KindChat* constants.
	ChatKind string
}

type sessionStore struct {
	mu sync.Mutex
	m  map[int64]*session
}

func newSessionStore() *sessionStore {
	return &sessionStore{m: make(map[int64]*session)}
}

// get returns the session for the chat, creating an idle one if needed.
func (s *sessionStore) get(chatID int64) *session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.m[chatID]
	if !ok {
		sess = &session{}
		s.m[chatID] = sess
	}
	return sess
}

// reset keeps the pet selection but drops any in-progress flow.
func (s *sessionStore) reset(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.m[chatID]; ok {
		petID := sess.PetID
		*sess = session{PetID: petID}
	}
}
