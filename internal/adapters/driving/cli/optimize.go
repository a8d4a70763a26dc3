package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/resumebuddy/internal/adapters/driving/tui/spinner"
	"github.com/custodia-labs/resumebuddy/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/resumebuddy/internal/core/domain"
	"github.com/custodia-labs/resumebuddy/internal/logger"
)

var (
	optimizeTitle   string
	optimizeCompany string
	optimizeJDFile  string
	optimizeJDText  string

	// cancelable is shared by optimize and cover-letter.
	cancelable bool
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Tailor your profile to a job description",
	Long: `Rewrite the master profile against a job description and score the
result on the ATS rubric (keyword match 40, formatting 20, job alignment 40).

The job description is read from --jd-file, --jd-text or stdin. Files may
be .txt, .md, .html, .docx or .pdf. The job description and the result are
saved to history.

Examples:
  resumebuddy optimize --jd-file posting.pdf --title "Backend Engineer" --company Acme
  pbpaste | resumebuddy optimize`,
	Args: cobra.NoArgs,
	RunE: runOptimize,
}

func init() {
	optimizeCmd.Flags().StringVar(&optimizeTitle, "title", "", "job title (default \"Untitled\")")
	optimizeCmd.Flags().StringVar(&optimizeCompany, "company", "", "company name (default \"Unknown\")")
	optimizeCmd.Flags().StringVarP(&optimizeJDFile, "jd-file", "f", "", "read the job description from a file")
	optimizeCmd.Flags().StringVarP(&optimizeJDText, "jd-text", "t", "", "job description text")
	optimizeCmd.Flags().BoolVar(&cancelable, "cancelable", false, cancelableUsage)
	optimizeCmd.MarkFlagsMutuallyExclusive("jd-file", "jd-text")
	rootCmd.AddCommand(optimizeCmd)
}

func runOptimize(cmd *cobra.Command, _ []string) error {
	if pipeline == nil {
		return errPipelineNotConfigured
	}
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	ctx := cmd.Context()
	jobText, err := readJobText(ctx, cmd, optimizeJDFile, optimizeJDText)
	if err != nil {
		return err
	}

	req := domain.OptimizeRequest{
		APIKey:     settingsService.APIKey(),
		JobTitle:   optimizeTitle,
		JobCompany: optimizeCompany,
		JobText:    jobText,
	}

	st := currentStyles()
	var outcome *domain.OptimizeOutcome
	err = spinner.Run(ctx, spinnerOptions(cmd, st, "Optimizing resume..."), func(ctx context.Context) error {
		var runErr error
		outcome, runErr = pipeline.Optimize(ctx, req)
		return runErr
	})
	if err != nil {
		return fmt.Errorf("optimize failed: %w", err)
	}

	if jsonOutput {
		return printJSON(cmd, outcome)
	}

	cmd.Println(st.Title.Render(fmt.Sprintf("Optimized Resume #%d", outcome.ResumeID)))
	cmd.Println(st.Muted.Render(fmt.Sprintf("Saved with job description #%d", outcome.JobDescriptionID)))
	cmd.Println()
	renderResume(cmd, st, viewFromResult(outcome.Result))
	return nil
}

// readJobText returns the job description from a file, a flag or stdin.
func readJobText(ctx context.Context, cmd *cobra.Command, file, text string) (string, error) {
	switch {
	case file != "":
		if jobTextLoader == nil {
			return "", errors.New("job text loader not configured")
		}
		loaded, err := jobTextLoader.Load(ctx, file)
		if err != nil {
			return "", fmt.Errorf("failed to load job description: %w", err)
		}
		return loaded, nil
	case text != "":
		return text, nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && spinner.IsTerminal(f) {
		cmd.PrintErrln("Paste the job description, then press Ctrl+D:")
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

const cancelableUsage = "let ctrl+c abandon the request (nothing is saved)"

// spinnerOptions shows the spinner only on an interactive terminal.
// Verbose output shares stderr, so it turns the spinner off.
func spinnerOptions(cmd *cobra.Command, st *styles.Styles, label string) spinner.Options {
	out := cmd.ErrOrStderr()
	return spinner.Options{
		Label:       label,
		Output:      out,
		Interactive: !jsonOutput && !logger.IsVerbose() && spinner.IsTerminal(out),
		Styles:      st,
		Cancelable:  cancelable,
	}
}
