// Package board holds the client-side note list and the transitions that
// keep it in step with the API. State is a plain value; every transition
// returns a new State and leaves its input untouched.
package board

import (
	"notesboard/notesboard/types"
)

type State struct {
	Notes      []types.Note
	Loading    bool
	Error      string
	DeletingID string
}

func cloneNotes(notes []types.Note) []types.Note {
	out := make([]types.Note, len(notes))
	copy(out, notes)
	return out
}

func StartLoad(s State) State {
	s.Loading = true
	s.Error = ""
	return s
}

func LoadSucceeded(s State, notes []types.Note) State {
	s.Notes = cloneNotes(notes)
	s.Loading = false
	return s
}

// LoadFailed keeps the previous notes; the list is hidden while Error is set.
func LoadFailed(s State, message string) State {
	s.Error = message
	s.Loading = false
	return s
}

// NoteCreated prepends the server's copy of a new note.
func NoteCreated(s State, note types.Note) State {
	notes := make([]types.Note, 0, len(s.Notes)+1)
	notes = append(notes, note)
	s.Notes = append(notes, s.Notes...)
	return s
}

func StartDelete(s State, id string) State {
	s.DeletingID = id
	return s
}

func DeleteSucceeded(s State, id string) State {
	notes := make([]types.Note, 0, len(s.Notes))
	for _, n := range s.Notes {
		if n.ID != id {
			notes = append(notes, n)
		}
	}
	s.Notes = notes
	s.DeletingID = ""
	return s
}

func DeleteFailed(s State, message string) State {
	s.Error = message
	s.DeletingID = ""
	return s
}

func ClearError(s State) State {
	s.Error = ""
	return s
}
