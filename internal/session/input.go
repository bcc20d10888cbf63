package session

import (
	"fmt"
	"strings"

	"github.com/gorilla/schema"
	"github.com/vancomm/minesweeper-cli/internal/mines"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

type MalformedInputError struct {
	Input string
	Err   error
}

// [MalformedInputError] implements [error]
func (e MalformedInputError) Error() string {
	return fmt.Sprintf("malformed input %q: %s", e.Input, e.Err)
}

func (e MalformedInputError) Unwrap() error {
	return e.Err
}

// Turn is one line of player input. Col and Row are 1-based.
type Turn struct {
	Col     int    `schema:"col,required"`
	Row     int    `schema:"row,required"`
	Command string `schema:"command,required"`
}

// Position converts the 1-based turn coordinates to a board position.
func (t Turn) Position() mines.Position {
	return mines.Position{Row: t.Row - 1, Col: t.Col - 1}
}

func ParseTurn(line string) (Turn, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return Turn{}, MalformedInputError{
			Input: line,
			Err:   fmt.Errorf("want <col> <row> <command>, got %d fields", len(fields)),
		}
	}

	var turn Turn
	src := map[string][]string{
		"col":     {fields[0]},
		"row":     {fields[1]},
		"command": {fields[2]},
	}
	if err := decoder.Decode(&turn, src); err != nil {
		return Turn{}, MalformedInputError{Input: line, Err: err}
	}
	return turn, nil
}

type mineCountParams struct {
	MineCount int `schema:"mine_count,required"`
}

func ParseMineCount(line string) (int, error) {
	fields := strings.Fields(line)
	if len(fields) != 1 {
		return 0, MalformedInputError{
			Input: line,
			Err:   fmt.Errorf("want a single mine count, got %d fields", len(fields)),
		}
	}

	var params mineCountParams
	if err := decoder.Decode(&params, map[string][]string{"mine_count": fields}); err != nil {
		return 0, MalformedInputError{Input: line, Err: err}
	}
	return params.MineCount, nil
}
