package main

import (
	"bytes"
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notesboard/notesboard/client/board"
	"notesboard/notesboard/client/notesapi"
	"notesboard/notesboard/controllers"
	"notesboard/notesboard/routes"
	"notesboard/notesboard/sources/psql/dao"
	"notesboard/notesboard/sources/psql/psqltest"
	"notesboard/notesboard/types"
)

func newAPIServer(t *testing.T) *httptest.Server {
	t.Helper()
	db := psqltest.OpenSQLite(t)
	srv := httptest.NewServer(routes.NewRouter(routes.Deps{
		Notes:  controllers.NewNotesController(dao.NewNoteDAO(db.DB), nil),
		Health: controllers.NewHealthController(db),
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestSession_AddAndDelete(t *testing.T) {
	srv := newAPIServer(t)
	client := notesapi.New(srv.URL + "/api/notes")
	input := strings.Join([]string{
		"add", "Midterm", "Chapter 5",
		"add", "   ", "no title",
		"delete 1", "n",
		"delete 1", "y",
		"exit",
	}, "\n") + "\n"
	var out bytes.Buffer

	s := newSession(board.New(client), strings.NewReader(input), &out)
	require.NoError(t, s.run(context.Background()))

	text := out.String()
	assert.Contains(t, text, "No notes yet. Create your first note above!")
	assert.Contains(t, text, "Note created successfully!")
	assert.Contains(t, text, "Notes (1)")
	assert.Contains(t, text, "Title and content are required")
	assert.Contains(t, text, "Are you sure you want to delete this note?")
	assert.Contains(t, text, "Goodbye!")
	assert.Less(t, strings.Index(text, "Notes (1)"), strings.LastIndex(text, "No notes yet"),
		"list is empty again after the confirmed delete")

	notes, err := client.ListNotes(context.Background())
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestSession_ErrorRetryAndDismiss(t *testing.T) {
	srv := httptest.NewServer(nil)
	base := srv.URL + "/api/notes"
	srv.Close()
	input := "retry\ndismiss\nexit\n"
	var out bytes.Buffer

	s := newSession(board.New(notesapi.New(base)), strings.NewReader(input), &out)
	require.NoError(t, s.run(context.Background()))

	text := out.String()
	assert.Contains(t, text, notesapi.MsgUnreachable)
	assert.Contains(t, text, "Type 'retry' to try again")
	assert.Contains(t, text, "No notes yet", "dismissing the error shows the (empty) list")
}

// failingReloadAPI serves one list of notes and fails every later load.
type failingReloadAPI struct {
	loads   int
	deleted []string
}

func (a *failingReloadAPI) ListNotes(ctx context.Context) ([]types.Note, error) {
	a.loads++
	if a.loads > 1 {
		return nil, errors.New("server unavailable")
	}
	return []types.Note{{ID: "n1", Title: "Midterm", Content: "Chapter 5", CreatedAt: time.Now()}}, nil
}

func (a *failingReloadAPI) CreateNote(ctx context.Context, req types.CreateNoteRequest) (types.Note, error) {
	return types.Note{}, errors.New("not used")
}

func (a *failingReloadAPI) DeleteNote(ctx context.Context, id string) error {
	a.deleted = append(a.deleted, id)
	return nil
}

func TestSession_DeleteRefusedWhileListHidden(t *testing.T) {
	api := &failingReloadAPI{}
	input := "retry\ndelete 1\ny\nexit\n"
	var out bytes.Buffer

	s := newSession(board.New(api), strings.NewReader(input), &out)
	require.NoError(t, s.run(context.Background()))

	assert.Empty(t, api.deleted)
	assert.Contains(t, out.String(), "No notes are shown")
	assert.NotContains(t, out.String(), "Are you sure you want to delete this note?")
}

func TestSession_EOFEndsSession(t *testing.T) {
	srv := newAPIServer(t)
	var out bytes.Buffer

	s := newSession(board.New(notesapi.New(srv.URL+"/api/notes")), strings.NewReader("list"), &out)

	assert.NoError(t, s.run(context.Background()))
}

func TestOneShotCommands(t *testing.T) {
	srv := newAPIServer(t)
	api := srv.URL + "/api/notes"
	run := func(args ...string) (string, error) {
		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetErr(&out)
		rootCmd.SetIn(strings.NewReader("y\n"))
		rootCmd.SetArgs(append([]string{"--api", api, "--no-color"}, args...))
		err := rootCmd.Execute()
		return out.String(), err
	}

	out, err := run("add", "--title", "Midterm", "--content", "Chapter 5")
	require.NoError(t, err)
	assert.Contains(t, out, "Note created successfully!")

	_, err = run("add", "--title", "", "--content", "x")
	assert.Error(t, err)

	out, err = run("list", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"title": "Midterm"`)

	notes, err := notesapi.New(api).ListNotes(context.Background())
	require.NoError(t, err)
	require.Len(t, notes, 1)

	out, err = run("delete", notes[0].ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Note deleted.")

	_, err = run("delete", notes[0].ID, "--yes")
	var apiErr *notesapi.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Note not found", apiErr.Message)
}
