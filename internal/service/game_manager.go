package service

import (
	"log"
	"sync"

	"github.com/google/uuid"
)

type GameManager struct {
	games map[string]*Session
	mu    sync.RWMutex
}

func NewGameManager() *GameManager {
	return &GameManager{
		games: make(map[string]*Session),
	}
}

// CreateGame starts a session at the initial position under a fresh id.
func (gm *GameManager) CreateGame() *Session {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	id := uuid.New().String()
	session := NewSession(id)
	gm.games[id] = session
	log.Printf("[manager] created game %s", id)
	return session
}

func (gm *GameManager) GetGame(gameID string) (*Session, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	session, exists := gm.games[gameID]
	if !exists {
		return nil, ErrGameNotFound
	}
	return session, nil
}

// DeleteGame discards a session entirely.
func (gm *GameManager) DeleteGame(gameID string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; !exists {
		return ErrGameNotFound
	}
	delete(gm.games, gameID)
	log.Printf("[manager] deleted game %s", gameID)
	return nil
}

func (gm *GameManager) Count() int {
	gm.mu.RLock()
	defer gm.mu.RUnlock()
	return len(gm.games)
}
