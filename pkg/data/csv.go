package data

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/ljherron8/socceraction/pkg/model"
)

// Columns of the action log CSV. home_team_id is optional; when absent the
// team of a game's first action is taken as home team.
var requiredColumns = []string{
	"game_id", "original_event_id", "action_id", "period_id", "time_seconds",
	"team_id", "player_id", "x", "y", "dx", "dy",
	"type_id", "type_name", "bodypart_id", "bodypart_name",
}

// CSVProvider implements ActionProvider for CSV files
type CSVProvider struct {
	filePath string
	memory   *MemoryProvider
	loaded   bool
}

// NewCSVProvider creates a new CSV-based action provider
func NewCSVProvider(filePath string) *CSVProvider {
	return &CSVProvider{filePath: filePath}
}

// loadIfNeeded loads the CSV file if not already loaded
func (p *CSVProvider) loadIfNeeded() error {
	if p.loaded {
		return nil
	}

	file, err := os.Open(p.filePath)
	if err != nil {
		return fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	actions, homes, err := ReadCSV(file)
	if err != nil {
		return err
	}

	p.memory = NewMemoryProvider(actions)
	for gameID, home := range homes {
		p.memory.SetHomeTeam(gameID, home)
	}
	p.loaded = true
	return nil
}

// ReadCSV parses an action log. It returns the actions in file order and the
// home team of every game that declares one.
func ReadCSV(r io.Reader) (model.Actions, map[int64]int64, error) {
	reader := csv.NewReader(r)

	// Read header
	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	// Parse column indices
	colMap := make(map[string]int)
	for i, col := range header {
		colMap[col] = i
	}
	for _, col := range requiredColumns {
		if _, ok := colMap[col]; !ok {
			return nil, nil, fmt.Errorf("missing CSV column %q", col)
		}
	}

	var actions model.Actions
	homes := make(map[int64]int64)
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read CSV record: %w", err)
		}
		line++

		a, home, err := parseRecord(record, colMap)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %w", line, err)
		}
		if home != nil {
			homes[a.GameID] = *home
		}
		actions = append(actions, a)
	}

	return actions, homes, nil
}

// parseRecord parses a CSV record into an Action
func parseRecord(record []string, colMap map[string]int) (model.Action, *int64, error) {
	getValue := func(name string) string {
		if idx, ok := colMap[name]; ok && idx < len(record) {
			return record[idx]
		}
		return ""
	}

	var (
		a        model.Action
		firstErr error
	)
	parseInt := func(name string) int64 {
		v, err := strconv.ParseInt(getValue(name), 10, 64)
		if err != nil && firstErr == nil {
			firstErr = fmt.Errorf("invalid %s: %w", name, err)
		}
		return v
	}
	parseFloat := func(name string) float64 {
		v, err := strconv.ParseFloat(getValue(name), 64)
		if err != nil && firstErr == nil {
			firstErr = fmt.Errorf("invalid %s: %w", name, err)
		}
		return v
	}

	a.GameID = parseInt("game_id")
	a.OriginalEventID = getValue("original_event_id")
	a.ActionID = parseInt("action_id")
	a.PeriodID = int(parseInt("period_id"))
	a.TimeSeconds = parseFloat("time_seconds")
	a.TeamID = parseInt("team_id")
	a.PlayerID = parseInt("player_id")
	a.X = parseFloat("x")
	a.Y = parseFloat("y")
	a.DX = parseFloat("dx")
	a.DY = parseFloat("dy")
	a.TypeID = int(parseInt("type_id"))
	a.TypeName = getValue("type_name")
	a.BodyPartID = int(parseInt("bodypart_id"))
	a.BodyPartName = getValue("bodypart_name")

	var home *int64
	if v := getValue("home_team_id"); v != "" {
		h := parseInt("home_team_id")
		home = &h
	}
	return a, home, firstErr
}

// Games lists the games in the file
func (p *CSVProvider) Games(ctx context.Context) ([]model.Game, error) {
	if err := p.loadIfNeeded(); err != nil {
		return nil, err
	}
	return p.memory.Games(ctx)
}

// FetchGame retrieves the actions of one game
func (p *CSVProvider) FetchGame(ctx context.Context, gameID int64) (model.Actions, error) {
	if err := p.loadIfNeeded(); err != nil {
		return nil, err
	}
	return p.memory.FetchGame(ctx, gameID)
}
