// Package view renders the board to a terminal. Nothing here talks to the
// network; components read a board.State and report user intents back.
package view

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"notesboard/notesboard/client/board"
	"notesboard/notesboard/types"
	"notesboard/notesboard/utils/color"
)

type Mode int

const (
	ModeLoading Mode = iota
	ModeError
	ModeEmpty
	ModePopulated
)

func (m Mode) String() string {
	switch m {
	case ModeLoading:
		return "loading"
	case ModeError:
		return "error"
	case ModeEmpty:
		return "empty"
	default:
		return "populated"
	}
}

// ModeOf picks the one thing the list shows, in priority order.
func ModeOf(s board.State) Mode {
	switch {
	case s.Loading:
		return ModeLoading
	case s.Error != "":
		return ModeError
	case len(s.Notes) == 0:
		return ModeEmpty
	default:
		return ModePopulated
	}
}

// SortedNotes returns a copy of notes, newest CreatedAt first. Equal
// timestamps keep their relative order.
func SortedNotes(notes []types.Note) []types.Note {
	out := make([]types.Note, len(notes))
	copy(out, notes)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func FormatDate(t time.Time) string {
	return t.Local().Format("Jan 2, 2006, 03:04 PM")
}

// RenderList writes the list section. Card numbers match SortedNotes order,
// which is what "delete <n>" refers to.
func RenderList(w io.Writer, s board.State) {
	switch ModeOf(s) {
	case ModeLoading:
		fmt.Fprintln(w, color.ColorMuted("Loading notes..."))
	case ModeError:
		fmt.Fprintln(w, color.ColorError("✖ "+s.Error))
		fmt.Fprintln(w, color.ColorMuted("Type 'retry' to try again or 'dismiss' to hide this message."))
	case ModeEmpty:
		fmt.Fprintln(w, color.ColorMuted("No notes yet. Create your first note above!"))
	case ModePopulated:
		fmt.Fprintln(w, color.ColorPrompt(fmt.Sprintf("Notes (%d)", len(s.Notes))))
		for i, n := range SortedNotes(s.Notes) {
			status := ""
			if s.DeletingID != "" && n.ID == s.DeletingID {
				status = " " + color.ColorWarning("Deleting...")
			}
			fmt.Fprintf(w, "\n%2d. %s%s\n", i+1, color.ColorTitle(n.Title), status)
			for _, line := range strings.Split(n.Content, "\n") {
				fmt.Fprintf(w, "    %s\n", line)
			}
			fmt.Fprintf(w, "    %s\n", color.ColorMuted(FormatDate(n.CreatedAt)))
		}
	}
}
