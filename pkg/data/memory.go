package data

import (
	"context"
	"fmt"

	"github.com/ljherron8/socceraction/pkg/model"
)

// MemoryProvider implements ActionProvider with in-memory storage
type MemoryProvider struct {
	actions model.Actions
	homes   map[int64]int64
}

// NewMemoryProvider creates a new in-memory action provider
func NewMemoryProvider(actions model.Actions) *MemoryProvider {
	return &MemoryProvider{
		actions: actions,
		homes:   make(map[int64]int64),
	}
}

// AddActions adds actions to the provider
func (p *MemoryProvider) AddActions(actions model.Actions) {
	p.actions = append(p.actions, actions...)
}

// SetHomeTeam declares the home team of a game
func (p *MemoryProvider) SetHomeTeam(gameID, teamID int64) {
	p.homes[gameID] = teamID
}

// Games lists the games in order of first appearance
func (p *MemoryProvider) Games(ctx context.Context) ([]model.Game, error) {
	byGame := p.actions.ByGame()
	var games []model.Game
	for _, id := range p.actions.GameIDs() {
		home, ok := p.homes[id]
		if !ok {
			home = byGame[id][0].TeamID
		}
		games = append(games, model.Game{GameID: id, HomeTeamID: home})
	}
	return games, nil
}

// FetchGame retrieves the actions of one game
func (p *MemoryProvider) FetchGame(ctx context.Context, gameID int64) (model.Actions, error) {
	var result model.Actions
	for _, a := range p.actions {
		if a.GameID == gameID {
			result = append(result, a)
		}
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("%w: %d", ErrGameNotFound, gameID)
	}
	return result, nil
}
