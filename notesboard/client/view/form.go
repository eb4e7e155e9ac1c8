package view

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"notesboard/notesboard/types"
	"notesboard/notesboard/utils/color"
)

const (
	DefaultSuccessDuration = 3 * time.Second

	// MsgEmptyFields is the form's copy for ErrEmptyFields.
	MsgEmptyFields = "Title and content are required"

	successMessage       = "Note created successfully!"
	fallbackCreateFailed = "Failed to create note. Please try again."
)

var (
	ErrEmptyFields = errors.New("title and content are required")
	ErrSubmitting  = errors.New("a note is already being created")
)

// CreateFunc submits a validated note. board.Board.Create satisfies it.
type CreateFunc func(ctx context.Context, title, content string) (types.Note, error)

// Validate applies the same rule the server does: both fields must carry
// text once trimmed.
func Validate(title, content string) error {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return ErrEmptyFields
	}
	return nil
}

type FormStatus struct {
	Submitting bool
	Error      string
	Success    bool
}

// Form is the create-note form. The success acknowledgment stays up for
// SuccessDuration after a create and is dropped by the next submit.
type Form struct {
	SuccessDuration time.Duration

	mu         sync.Mutex
	status     FormStatus
	timer      *time.Timer
	successGen uint64
}

func NewForm() *Form {
	return &Form{SuccessDuration: DefaultSuccessDuration}
}

func (f *Form) Status() FormStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// Submit validates and sends a note through create. Inputs are trimmed
// before sending. A second Submit while one is in flight gets ErrSubmitting.
func (f *Form) Submit(ctx context.Context, title, content string, create CreateFunc) (types.Note, error) {
	f.mu.Lock()
	if f.status.Submitting {
		f.mu.Unlock()
		return types.Note{}, ErrSubmitting
	}
	f.stopTimer()
	f.status = FormStatus{}

	title, content = strings.TrimSpace(title), strings.TrimSpace(content)
	if err := Validate(title, content); err != nil {
		f.status.Error = MsgEmptyFields
		f.mu.Unlock()
		return types.Note{}, err
	}
	f.status.Submitting = true
	f.mu.Unlock()

	note, err := create(ctx, title, content)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.status.Submitting = false
	if err != nil {
		f.status.Error = err.Error()
		if f.status.Error == "" {
			f.status.Error = fallbackCreateFailed
		}
		return types.Note{}, err
	}
	f.status.Success = true
	f.successGen++
	gen := f.successGen
	f.timer = time.AfterFunc(f.successDuration(), func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.successGen == gen {
			f.status.Success = false
		}
	})
	return note, nil
}

// Close cancels a pending success timer.
func (f *Form) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopTimer()
}

func (f *Form) stopTimer() {
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
	f.successGen++
}

func (f *Form) successDuration() time.Duration {
	if f.SuccessDuration <= 0 {
		return DefaultSuccessDuration
	}
	return f.SuccessDuration
}

// RenderForm writes the form's feedback line, if any.
func RenderForm(w io.Writer, s FormStatus) {
	switch {
	case s.Submitting:
		fmt.Fprintln(w, color.ColorMuted("Creating..."))
	case s.Error != "":
		fmt.Fprintln(w, color.ColorError(s.Error))
	case s.Success:
		fmt.Fprintln(w, color.ColorSuccess(successMessage))
	}
}
