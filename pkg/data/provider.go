package data

import (
	"context"
	"errors"

	"github.com/ljherron8/socceraction/pkg/model"
)

// ErrGameNotFound is returned when a provider has no actions for a game
var ErrGameNotFound = errors.New("game not found")

// ActionProvider defines the interface for fetching action logs
type ActionProvider interface {
	// Games lists the available games in order of first appearance
	Games(ctx context.Context) ([]model.Game, error)

	// FetchGame retrieves the action log of one game, ordered by time
	FetchGame(ctx context.Context, gameID int64) (model.Actions, error)
}
