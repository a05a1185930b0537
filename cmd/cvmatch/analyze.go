package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cvmatch-backend/internal/extract"
)

var (
	cvPath  string
	jdPath  string
	outPath string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a CV against a job description",
	Long:  "Reads the CV and job description from files (PDF or plain text, '-' for stdin), runs the analysis and prints the markdown report. When signed in, the result is saved to history.",
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&cvPath, "cv", "", "path to the CV (.pdf or text, '-' for stdin)")
	analyzeCmd.Flags().StringVar(&jdPath, "jd", "", "path to the job description (.pdf or text, '-' for stdin)")
	analyzeCmd.Flags().StringVarP(&outPath, "out", "o", "", "write the report to a file instead of stdout")
	_ = analyzeCmd.MarkFlagRequired("cv")
	_ = analyzeCmd.MarkFlagRequired("jd")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cvText, err := extract.ReadInput(cvPath)
	if err != nil {
		return err
	}
	jdText, err := extract.ReadInput(jdPath)
	if err != nil {
		return err
	}

	ctrl, cleanup, err := newController(ctx, true)
	if err != nil {
		return err
	}
	defer cleanup()

	ctrl.SetInputs(cvText, jdText)
	if err := ctrl.Submit(ctx); err != nil {
		if msg := ctrl.ErrorMessage(); msg != "" {
			fmt.Fprintln(os.Stderr, msg)
		}
		return err
	}

	doc, err := ctrl.ExportMarkdown()
	if err != nil {
		return err
	}

	if outPath != "" {
		if err := os.WriteFile(outPath, []byte(doc), 0o644); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		fmt.Printf("report written to %s\n", outPath)
	} else {
		fmt.Print(doc)
	}

	if user, ok := ctrl.CurrentUser(); ok {
		fmt.Fprintf(os.Stderr, "saved to history for %s\n", user.Email)
	}
	return nil
}
