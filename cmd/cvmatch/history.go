package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"cvmatch-backend/internal/session"
)

var deleteYes bool

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse past analyses for the active account",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved analyses, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		ctrl, cleanup, err := newController(ctx, false)
		if err != nil {
			return err
		}
		defer cleanup()

		items, err := ctrl.History(ctx)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			fmt.Println("no saved analyses")
			return nil
		}
		for _, item := range items {
			when := time.UnixMilli(item.Timestamp).Format("2006-01-02 15:04")
			fmt.Printf("%s  %s  score %d/100  %s\n", item.ID, when, item.Result.OverallScore, firstLine(item.Result.Summary))
		}
		return nil
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print the full report for a saved analysis",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		ctrl, cleanup, err := newController(ctx, false)
		if err != nil {
			return err
		}
		defer cleanup()

		if err := ctrl.SelectHistory(ctx, args[0]); err != nil {
			return err
		}
		doc, err := ctrl.ExportMarkdown()
		if err != nil {
			return err
		}
		fmt.Print(doc)
		return nil
	},
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved analysis",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		ctrl, cleanup, err := newController(ctx, false)
		if err != nil {
			return err
		}
		defer cleanup()

		if _, ok := ctrl.CurrentUser(); !ok {
			return session.ErrNotSignedIn
		}
		if !deleteYes && !confirm(fmt.Sprintf("delete analysis %s?", args[0])) {
			fmt.Println("aborted")
			return nil
		}
		if err := ctrl.DeleteHistory(ctx, args[0]); err != nil {
			return err
		}
		fmt.Println("deleted")
		return nil
	},
}

func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	if len(s) > 80 {
		s = s[:77] + "..."
	}
	return s
}

func init() {
	historyDeleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "skip the confirmation prompt")
	historyCmd.AddCommand(historyListCmd, historyShowCmd, historyDeleteCmd)
	rootCmd.AddCommand(historyCmd)
}
