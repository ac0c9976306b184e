package session

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/lexigrid/board"
	"github.com/katalvlaran/lexigrid/coord"
	"github.com/katalvlaran/lexigrid/grammar"
	"github.com/katalvlaran/lexigrid/level"
	"github.com/katalvlaran/lexigrid/symbol"
)

// Sentinel errors for session moves.
var (
	// ErrHolding indicates a fragment is already in flight.
	ErrHolding = errors.New("session: a fragment is already held")
	// ErrNotHolding indicates no fragment is in flight.
	ErrNotHolding = errors.New("session: no fragment is held")
	// ErrNothingHere indicates an empty cell was picked.
	ErrNothingHere = errors.New("session: no symbol at that cell")
	// ErrBlocked indicates the held fragment does not fit at the drop point.
	ErrBlocked = errors.New("session: fragment does not fit there")
)

// Option configures New.
type Option func(*options)

type options struct {
	logger zerolog.Logger
	id     uuid.UUID
}

// WithLogger sets the logger moves are reported to.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithID fixes the session ID instead of generating a random one.
func WithID(id uuid.UUID) Option {
	return func(o *options) { o.id = id }
}

// held is a lifted fragment. Cells are relative to grab.
type held struct {
	cells []board.Cell
	grab  coord.Coord
}

// Session is one play-through of a level.
type Session struct {
	id     uuid.UUID
	level  *level.Level
	grid   *board.Grid
	atlas  *symbol.Atlas
	held   *held
	logger zerolog.Logger
}

// New starts a session on a fresh copy of lv's board.
func New(lv *level.Level, opts ...Option) *Session {
	o := options{logger: log.Logger}
	for _, opt := range opts {
		opt(&o)
	}
	if o.id == uuid.Nil {
		o.id = uuid.New()
	}

	s := &Session{
		id:     o.id,
		level:  lv,
		grid:   lv.NewGrid(),
		atlas:  symbol.NewAtlas(),
		logger: o.logger.With().Str("session", o.id.String()).Str("level_id", lv.ID).Logger(),
	}
	for _, c := range s.grid.Cells() {
		s.atlas.Index(c.Symbol.Code)
	}
	s.logger.Debug().Int("symbols", s.grid.Len()).Int("glyphs", s.atlas.Len()).Msg("session started")

	return s
}

// ID returns the session ID.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Level returns the level being played.
func (s *Session) Level() *level.Level {
	return s.level
}

// Grid returns a snapshot of the working board. Held cells are not on it.
func (s *Session) Grid() *board.Grid {
	return s.grid.Clone()
}

// Atlas returns the glyph atlas of the level's symbols.
func (s *Session) Atlas() *symbol.Atlas {
	return s.atlas
}

// Slot returns the atlas slot of the symbol at c.
func (s *Session) Slot(c coord.Coord) (int, bool) {
	sym, ok := s.grid.At(c)
	if !ok {
		return 0, false
	}
	return s.atlas.Index(sym.Code), true
}

// Holding returns the held cells relative to the grabbed cell.
func (s *Session) Holding() ([]board.Cell, bool) {
	if s.held == nil {
		return nil, false
	}
	return append([]board.Cell(nil), s.held.cells...), true
}

// Pick lifts the fragment containing at. The grabbed cell becomes the
// anchor for Drop.
func (s *Session) Pick(at coord.Coord) error {
	if s.held != nil {
		return ErrHolding
	}
	idx, ok := s.grid.FragmentAt(at)
	if !ok {
		return fmt.Errorf("%w: %v", ErrNothingHere, at)
	}
	cells := s.grid.Lift(idx)
	s.held = &held{cells: board.Relative(cells, at), grab: at}
	s.logger.Debug().Stringer("at", at).Int("cells", len(cells)).Msg("picked fragment")

	return nil
}

// Drop places the held fragment with its grabbed cell on at. When the
// fragment does not fit it stays held.
func (s *Session) Drop(at coord.Coord) error {
	if s.held == nil {
		return ErrNotHolding
	}
	if !s.grid.CanPlace(s.held.cells, at) {
		s.logger.Debug().Stringer("at", at).Msg("drop blocked")
		return fmt.Errorf("%w: %v", ErrBlocked, at)
	}
	s.grid.Place(s.held.cells, at)
	s.logger.Debug().Stringer("from", s.held.grab).Stringer("to", at).Msg("dropped fragment")
	s.held = nil

	return nil
}

// Cancel puts the held fragment back where it was picked up.
func (s *Session) Cancel() error {
	if s.held == nil {
		return ErrNotHolding
	}
	// Nothing else moves while a fragment is held, so its old cells are free.
	s.grid.Place(s.held.cells, s.held.grab)
	s.logger.Debug().Stringer("at", s.held.grab).Msg("cancelled move")
	s.held = nil

	return nil
}

// Check validates the working board.
func (s *Session) Check() (grammar.Result, error) {
	if s.held != nil {
		return grammar.Result{}, ErrHolding
	}
	res := grammar.Validate(s.grid)
	s.logger.Debug().
		Bool("solved", res.Solved()).
		Int("sentences", len(res.Sentences)).
		Int("errors", len(res.Errors)).
		Msg("checked board")

	return res, nil
}

// Reset discards every move and any held fragment.
func (s *Session) Reset() {
	s.grid = s.level.NewGrid()
	s.held = nil
	s.logger.Debug().Msg("session reset")
}
