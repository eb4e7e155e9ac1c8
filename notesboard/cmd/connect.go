package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/spf13/cobra"

	"notesboard/notesboard/client/board"
	"notesboard/notesboard/client/view"
	"notesboard/notesboard/utils/color"
)

var connectCmd = &cobra.Command{
	Use:   "connect",
	Short: "Open the interactive notes board",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n", color.ColorTitle("Campus Notes Board"))
		fmt.Fprintln(cmd.OutOrStdout(), color.ColorInfo("Connected to "+apiURL))
		s := newSession(board.New(newClient()), cmd.InOrStdin(), cmd.OutOrStdout())
		return s.run(cmd.Context())
	},
}

// session is one interactive board: it reads commands, turns them into board
// intents and redraws whenever the board state changed.
type session struct {
	board *board.Board
	form  *view.Form
	in    *bufio.Reader
	out   io.Writer
	dirty atomic.Bool
}

func newSession(b *board.Board, in io.Reader, out io.Writer) *session {
	s := &session{
		board: b,
		form:  view.NewForm(),
		in:    bufio.NewReader(in),
		out:   out,
	}
	b.Subscribe(func(board.State) { s.dirty.Store(true) })
	return s
}

func (s *session) run(ctx context.Context) error {
	defer s.form.Close()
	// load errors are part of the board state and rendered below
	_ = s.board.Load(ctx)
	s.render()
	s.help()

	for {
		fmt.Fprint(s.out, color.ColorPrompt("notes> "))
		line, err := s.in.ReadString('\n')
		if err != nil && line == "" {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(s.out)
				return nil
			}
			return err
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch strings.ToLower(fields[0]) {
		case "exit", "quit":
			fmt.Fprintln(s.out, "Goodbye!")
			return nil
		case "list", "refresh", "retry":
			_ = s.board.Load(ctx)
		case "add", "new":
			s.add(ctx)
		case "delete", "rm":
			s.delete(ctx, fields[1:])
		case "dismiss":
			s.board.ClearError()
		case "help", "?":
			s.help()
			continue
		default:
			fmt.Fprintln(s.out, color.ColorWarning("Unknown command "+strconv.Quote(fields[0])+". Type 'help'."))
			continue
		}
		if s.dirty.Swap(false) {
			s.render()
		}
	}
}

func (s *session) prompt(label string) (string, bool) {
	fmt.Fprint(s.out, color.ColorPrompt(label))
	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimRight(line, "\r\n"), true
}

func (s *session) add(ctx context.Context) {
	title, ok := s.prompt("Title: ")
	if !ok {
		return
	}
	content, ok := s.prompt("Content: ")
	if !ok {
		return
	}
	// the form records the outcome; it is rendered right away
	_, _ = s.form.Submit(ctx, title, content, s.board.Create)
	view.RenderForm(s.out, s.form.Status())
}

func (s *session) delete(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, color.ColorWarning("Usage: delete <number>"))
		return
	}
	state := s.board.State()
	if view.ModeOf(state) != view.ModePopulated {
		fmt.Fprintln(s.out, color.ColorWarning("No notes are shown. Use 'retry' or 'dismiss' first."))
		return
	}
	notes := view.SortedNotes(state.Notes)
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(notes) {
		fmt.Fprintln(s.out, color.ColorWarning("No note number "+args[0]+"."))
		return
	}
	target := notes[n-1]
	if !view.Confirm(s.in, s.out, "Are you sure you want to delete this note?") {
		return
	}
	// failures land in the board's shared error
	_ = s.board.Delete(ctx, target.ID)
}

func (s *session) render() {
	fmt.Fprintln(s.out)
	view.RenderList(s.out, s.board.State())
	fmt.Fprintln(s.out)
}

func (s *session) help() {
	fmt.Fprintln(s.out, "Commands:")
	fmt.Fprintln(s.out, "  list | refresh     reload notes from the server")
	fmt.Fprintln(s.out, "  add                create a note")
	fmt.Fprintln(s.out, "  delete <n>         delete note number n")
	fmt.Fprintln(s.out, "  retry | dismiss    retry or hide an error")
	fmt.Fprintln(s.out, "  exit               quit")
}
