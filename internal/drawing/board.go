// Package drawing provides the tool registry, factory and board.
package drawing

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	apperrors "chartdraw/internal/errors"
	"chartdraw/internal/geometry"
	"chartdraw/internal/logging"
)

// Entry is a tool held by a Board.
type Entry struct {
	ID   string
	Kind Kind
	Tool Tool
}

// Board owns a keyed, insertion-ordered collection of tools. Tools are not
// safe for concurrent mutation; the board only guards its own index.
type Board struct {
	opts   Options
	logger zerolog.Logger

	mu    sync.RWMutex
	tools map[string]Entry
	order []string
	seq   int
}

// NewBoard creates an empty board that builds tools with opts.
func NewBoard(opts Options, logger zerolog.Logger) *Board {
	return &Board{
		opts:   opts,
		logger: logger,
		tools:  make(map[string]Entry),
	}
}

// Add builds spec and stores it under id. An empty id is replaced by a
// generated one of the form "<kind>-<n>". The stored entry is returned.
func (b *Board) Add(id string, spec ToolSpec) (Entry, error) {
	tool, err := Build(spec, b.opts)
	if err != nil {
		var te *apperrors.ToolError
		if apperrors.As(err, &te) {
			te.ToolID = id
		}
		return Entry{}, err
	}
	return b.Put(id, spec.Kind, tool)
}

// Put stores an already built tool.
func (b *Board) Put(id string, kind Kind, tool Tool) (Entry, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if id == "" {
		for {
			b.seq++
			id = fmt.Sprintf("%s-%d", kind, b.seq)
			if _, taken := b.tools[id]; !taken {
				break
			}
		}
	}
	if _, exists := b.tools[id]; exists {
		return Entry{}, apperrors.NewToolError(id, string(kind), "add", apperrors.ErrToolExists)
	}

	e := Entry{ID: id, Kind: kind, Tool: tool}
	b.tools[id] = e
	b.order = append(b.order, id)

	logging.LogToolEvent(b.toolLogger(id, "add"), "added", string(kind), len(tool.Handles()))
	return e, nil
}

// Get returns the entry stored under id.
func (b *Board) Get(id string) (Entry, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	e, ok := b.tools[id]
	if !ok {
		return Entry{}, apperrors.NewToolError(id, "", "get", apperrors.ErrToolNotFound)
	}
	return e, nil
}

// Remove deletes the entry stored under id.
func (b *Board) Remove(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	e, ok := b.tools[id]
	if !ok {
		return apperrors.NewToolError(id, "", "remove", apperrors.ErrToolNotFound)
	}
	delete(b.tools, id)
	for i, o := range b.order {
		if o == id {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}

	logging.LogToolEvent(b.toolLogger(id, "remove"), "removed", string(e.Kind), 0)
	return nil
}

// Move translates the tool stored under id. Tools without a whole-tool
// move fail with ErrInvalidOption.
func (b *Board) Move(id string, dx, dy float64) error {
	e, err := b.Get(id)
	if err != nil {
		return err
	}
	m, ok := e.Tool.(Mover)
	if !ok {
		return apperrors.NewToolError(id, string(e.Kind), "move",
			apperrors.Wrap(apperrors.ErrInvalidOption, "tool cannot be moved"))
	}
	m.Move(dx, dy)

	logger := b.toolLogger(id, "move")
	logger.Debug().Float64("dx", dx).Float64("dy", dy).Msg("Tool moved")
	return nil
}

func (b *Board) toolLogger(id, operation string) zerolog.Logger {
	return logging.WithTool(logging.WithOperation(b.logger, operation), id)
}

// Len returns the number of tools.
func (b *Board) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.tools)
}

// IDs returns the tool IDs in insertion order.
func (b *Board) IDs() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]string(nil), b.order...)
}

// Each calls fn for every entry in insertion order until fn returns false.
func (b *Board) Each(fn func(Entry) bool) {
	b.mu.RLock()
	entries := make([]Entry, len(b.order))
	for i, id := range b.order {
		entries[i] = b.tools[id]
	}
	b.mu.RUnlock()

	for _, e := range entries {
		if !fn(e) {
			return
		}
	}
}

// Path concatenates the paths of every tool in insertion order.
func (b *Board) Path() geometry.Path {
	var path geometry.Path
	b.Each(func(e Entry) bool {
		path = append(path, e.Tool.Path()...)
		return true
	})
	return path
}

// Clear removes every tool.
func (b *Board) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := len(b.tools)
	b.tools = make(map[string]Entry)
	b.order = nil
	b.logger.Debug().Int("count", n).Msg("Board cleared")
}
