package main

import (
	"bufio"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"notesboard/notesboard/client/board"
	"notesboard/notesboard/client/view"
	"notesboard/notesboard/types"
)

var (
	listJSON    bool
	addTitle    string
	addContent  string
	deleteForce bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all notes, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		notes, err := newClient().ListNotes(cmd.Context())
		if err != nil {
			return err
		}
		notes = view.SortedNotes(notes)
		out := cmd.OutOrStdout()
		if listJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(notes)
		}
		view.RenderList(out, board.State{Notes: notes})
		return nil
	},
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a note",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := view.Validate(addTitle, addContent); err != nil {
			return err
		}
		note, err := newClient().CreateNote(cmd.Context(), types.CreateNoteRequest{Title: addTitle, Content: addContent})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Note created successfully! (%s)\n", note.ID)
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a note by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !deleteForce {
			in := bufio.NewReader(cmd.InOrStdin())
			if !view.Confirm(in, cmd.OutOrStdout(), "Are you sure you want to delete this note?") {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
				return nil
			}
		}
		if err := newClient().DeleteNote(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Note deleted.")
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "print notes as JSON")
	addCmd.Flags().StringVarP(&addTitle, "title", "t", "", "note title")
	addCmd.Flags().StringVarP(&addContent, "content", "c", "", "note content")
	deleteCmd.Flags().BoolVarP(&deleteForce, "yes", "y", false, "skip the confirmation prompt")
}
