package view

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notesboard/notesboard/types"
)

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate("Midterm", "Chapter 5"))
	assert.ErrorIs(t, Validate("", "Chapter 5"), ErrEmptyFields)
	assert.ErrorIs(t, Validate("Midterm", "  \n"), ErrEmptyFields)
	assert.EqualError(t, Validate(" ", " "), "title and content are required")
}

func TestForm_SubmitSuccessClearsAfterDuration(t *testing.T) {
	f := NewForm()
	f.SuccessDuration = 30 * time.Millisecond
	defer f.Close()

	var gotTitle, gotContent string
	create := func(ctx context.Context, title, content string) (types.Note, error) {
		gotTitle, gotContent = title, content
		return types.Note{ID: "n1", Title: title, Content: content}, nil
	}

	n, err := f.Submit(context.Background(), "  Midterm ", "Chapter 5\n", create)
	require.NoError(t, err)
	assert.Equal(t, "n1", n.ID)
	assert.Equal(t, "Midterm", gotTitle, "inputs are trimmed before sending")
	assert.Equal(t, "Chapter 5", gotContent)
	assert.True(t, f.Status().Success)

	var buf bytes.Buffer
	RenderForm(&buf, f.Status())
	assert.Contains(t, buf.String(), "Note created successfully!")

	assert.Eventually(t, func() bool { return !f.Status().Success }, time.Second, 5*time.Millisecond)
}

func TestForm_ValidationDoesNotCallCreate(t *testing.T) {
	f := NewForm()
	called := false
	create := func(ctx context.Context, title, content string) (types.Note, error) {
		called = true
		return types.Note{}, nil
	}

	_, err := f.Submit(context.Background(), "   ", "Chapter 5", create)

	assert.ErrorIs(t, err, ErrEmptyFields)
	assert.False(t, called)
	assert.Equal(t, MsgEmptyFields, f.Status().Error)
}

func TestForm_ErrorReplacesSuccess(t *testing.T) {
	f := NewForm()
	defer f.Close()
	ok := func(ctx context.Context, title, content string) (types.Note, error) {
		return types.Note{ID: "n"}, nil
	}
	failing := func(ctx context.Context, title, content string) (types.Note, error) {
		return types.Note{}, errors.New("Unable to connect to server. Please check your internet connection.")
	}

	_, err := f.Submit(context.Background(), "a", "b", ok)
	require.NoError(t, err)
	_, err = f.Submit(context.Background(), "a", "b", failing)
	require.Error(t, err)

	s := f.Status()
	assert.False(t, s.Success)
	assert.False(t, s.Submitting)
	assert.Equal(t, "Unable to connect to server. Please check your internet connection.", s.Error)
}

func TestForm_EmptyErrorUsesFallback(t *testing.T) {
	f := NewForm()
	_, _ = f.Submit(context.Background(), "a", "b", func(ctx context.Context, title, content string) (types.Note, error) {
		return types.Note{}, errors.New("")
	})
	assert.Equal(t, fallbackCreateFailed, f.Status().Error)
}

func TestForm_RejectsConcurrentSubmit(t *testing.T) {
	f := NewForm()
	defer f.Close()
	entered := make(chan struct{})
	release := make(chan struct{})
	slow := func(ctx context.Context, title, content string) (types.Note, error) {
		close(entered)
		<-release
		return types.Note{ID: "n"}, nil
	}

	done := make(chan error, 1)
	go func() {
		_, err := f.Submit(context.Background(), "a", "b", slow)
		done <- err
	}()
	<-entered
	assert.True(t, f.Status().Submitting)

	_, err := f.Submit(context.Background(), "c", "d", slow)
	assert.ErrorIs(t, err, ErrSubmitting)

	close(release)
	require.NoError(t, <-done)
	assert.False(t, f.Status().Submitting)
}
