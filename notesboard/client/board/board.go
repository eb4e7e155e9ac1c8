package board

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"notesboard/notesboard/types"
	"notesboard/notesboard/utils/logging"
)

const (
	fallbackLoadMessage   = "Failed to load notes. Please try again."
	fallbackDeleteMessage = "Failed to delete note. Please try again."
)

// API is the part of the notes client the board drives.
type API interface {
	ListNotes(ctx context.Context) ([]types.Note, error)
	CreateNote(ctx context.Context, req types.CreateNoteRequest) (types.Note, error)
	DeleteNote(ctx context.Context, id string) error
}

// Board owns the client State and applies transitions around API calls.
// Network calls run without holding the lock; listeners are called with the
// new State after every change, in order.
type Board struct {
	api API

	mu        sync.Mutex
	state     State
	loadGen   uint64
	listeners []func(State)
}

// New returns a board in the loading state, matching a UI that fetches on
// start-up.
func New(api API) *Board {
	return &Board{api: api, state: State{Loading: true, Notes: []types.Note{}}}
}

func (b *Board) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	s := b.state
	s.Notes = cloneNotes(s.Notes)
	return s
}

// Subscribe registers fn to receive every new State. fn runs with the board
// locked and must not call back into it.
func (b *Board) Subscribe(fn func(State)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners = append(b.listeners, fn)
}

// apply runs a transition and notifies listeners. Must be called with mu held.
func (b *Board) apply(transition func(State) State) {
	b.state = transition(b.state)
	for _, fn := range b.listeners {
		s := b.state
		s.Notes = cloneNotes(s.Notes)
		fn(s)
	}
}

// Load fetches the list. If another Load starts before this one completes,
// this one's result is dropped and it returns nil.
func (b *Board) Load(ctx context.Context) error {
	b.mu.Lock()
	b.loadGen++
	gen := b.loadGen
	b.apply(StartLoad)
	b.mu.Unlock()

	notes, err := b.api.ListNotes(ctx)

	b.mu.Lock()
	defer b.mu.Unlock()
	if gen != b.loadGen {
		logging.AppLogger.Debug("discarding stale load", zap.Uint64("generation", gen))
		return nil
	}
	if err != nil {
		msg := messageOf(err, fallbackLoadMessage)
		b.apply(func(s State) State { return LoadFailed(s, msg) })
		logging.AppLogger.Warn("Error loading notes", zap.Error(err))
		return err
	}
	b.apply(func(s State) State { return LoadSucceeded(s, notes) })
	return nil
}

// Create posts a note and prepends the server's copy on success. Failures
// go back to the caller only; the shared Error is left alone.
func (b *Board) Create(ctx context.Context, title, content string) (types.Note, error) {
	note, err := b.api.CreateNote(ctx, types.CreateNoteRequest{Title: title, Content: content})
	if err != nil {
		logging.AppLogger.Warn("Error creating note", zap.Error(err))
		return types.Note{}, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.apply(func(s State) State { return NoteCreated(s, note) })
	return note, nil
}

// Delete removes id on the server, then locally. On failure the shared Error
// is set and the error is returned as well. DeletingID is cleared either way.
func (b *Board) Delete(ctx context.Context, id string) error {
	b.mu.Lock()
	b.apply(func(s State) State { return StartDelete(s, id) })
	b.mu.Unlock()

	err := b.api.DeleteNote(ctx, id)

	b.mu.Lock()
	defer b.mu.Unlock()
	if err != nil {
		msg := messageOf(err, fallbackDeleteMessage)
		b.apply(func(s State) State { return DeleteFailed(s, msg) })
		logging.AppLogger.Warn("Error deleting note", zap.String("id", id), zap.Error(err))
		return err
	}
	b.apply(func(s State) State { return DeleteSucceeded(s, id) })
	return nil
}

func (b *Board) ClearError() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.apply(ClearError)
}

func messageOf(err error, fallback string) string {
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}
