package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"hash/maphash"
	"io"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper-cli/internal/mines"
)

var Log = logrus.New()

var ErrInputClosed = errors.New("input closed before the game ended")

const (
	MineCountPrompt = "How many mines do you want on the field? "
	TurnPrompt      = "Set/unset mines marks or claim a cell as free: "
	LostMessage     = "You stepped on a mine and failed!"
	WonMessage      = "Congratulations! You found all the mines!"
)

type State int8

const (
	AwaitingMineCount State = iota
	Playing
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case AwaitingMineCount:
		return "awaiting mine count"
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

func (s State) Terminal() bool {
	return s == Won || s == Lost
}

type Session struct {
	in        *bufio.Scanner
	out       io.Writer
	fieldSize int
	rnd       *rand.Rand

	state State
	board *mines.Board
}

type Option func(*Session)

func WithFieldSize(n int) Option {
	return func(s *Session) { s.fieldSize = n }
}

func WithRand(r *rand.Rand) Option {
	return func(s *Session) { s.rnd = r }
}

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func New(in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		in:        bufio.NewScanner(in),
		out:       out,
		fieldSize: mines.DefaultFieldSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rnd == nil {
		s.rnd = createRand()
	}
	return s
}

func (s *Session) State() State        { return s.state }
func (s *Session) Board() *mines.Board { return s.board }

func (s *Session) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("unable to read input: %w", err)
		}
		return "", ErrInputClosed
	}
	return s.in.Text(), nil
}

func (s *Session) render() error {
	return s.board.Render(s.out)
}

// Run plays one game to completion. A lost game is a normal return with
// state Lost. Errors are malformed input, a closed input stream, an invalid
// mine count, or a cancelled context.
func (s *Session) Run(ctx context.Context) (State, error) {
	if s.state != AwaitingMineCount {
		return s.state, fmt.Errorf("session already started, state = %s", s.state)
	}

	line, err := s.readLine(MineCountPrompt)
	if err != nil {
		return s.state, err
	}
	mineCount, err := ParseMineCount(line)
	if err != nil {
		return s.state, err
	}

	board, err := mines.New(mines.SideOf(s.fieldSize), mineCount, s.rnd)
	if err != nil {
		return s.state, fmt.Errorf("unable to create board: %w", err)
	}
	s.board = board
	s.state = Playing

	Log.WithField("mineCount", mineCount).Info("game started")

	if err := s.render(); err != nil {
		return s.state, err
	}

	for !s.state.Terminal() {
		if err := ctx.Err(); err != nil {
			return s.state, err
		}
		if err := s.turn(); err != nil {
			return s.state, err
		}
	}

	Log.WithField("state", s.state).Info("game over")

	return s.state, nil
}

func (s *Session) turn() error {
	line, err := s.readLine(TurnPrompt)
	if err != nil {
		return err
	}
	turn, err := ParseTurn(line)
	if err != nil {
		return err
	}

	cmd := mines.ParseCommand(turn.Command)
	outcome := s.board.Apply(cmd, turn.Position())

	Log.WithFields(logrus.Fields{
		"col":     turn.Col,
		"row":     turn.Row,
		"command": cmd,
		"outcome": outcome,
	}).Debug("turn applied")

	if err := s.render(); err != nil {
		return err
	}

	switch {
	case outcome == mines.HitMine:
		s.state = Lost
		fmt.Fprintln(s.out, LostMessage)
	case s.board.IsFinished():
		s.state = Won
		fmt.Fprintln(s.out, WonMessage)
	}
	return nil
}
