package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/resumebuddy/internal/adapters/driving/tui/spinner"
	"github.com/custodia-labs/resumebuddy/internal/core/domain"
)

var (
	coverJDFile  string
	coverJDText  string
	coverSavedJD int64
)

var coverLetterCmd = &cobra.Command{
	Use:   "cover-letter",
	Short: "Write a cover letter for a job description",
	Long: `Write a 250-400 word cover letter from the master profile.

Use a saved job description from history with --saved-jd, or supply new
text with --jd-file, --jd-text or stdin. The letter is saved to history.

Examples:
  resumebuddy cover-letter --saved-jd 3
  resumebuddy cover-letter --jd-file posting.html`,
	Args: cobra.NoArgs,
	RunE: runCoverLetter,
}

func init() {
	coverLetterCmd.Flags().StringVarP(&coverJDFile, "jd-file", "f", "", "read the job description from a file")
	coverLetterCmd.Flags().StringVarP(&coverJDText, "jd-text", "t", "", "job description text")
	coverLetterCmd.Flags().Int64Var(&coverSavedJD, "saved-jd", 0, "ID of a saved job description")
	coverLetterCmd.Flags().BoolVar(&cancelable, "cancelable", false, cancelableUsage)
	coverLetterCmd.MarkFlagsMutuallyExclusive("jd-file", "jd-text", "saved-jd")
	rootCmd.AddCommand(coverLetterCmd)
}

func runCoverLetter(cmd *cobra.Command, _ []string) error {
	if pipeline == nil {
		return errPipelineNotConfigured
	}
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	ctx := cmd.Context()
	req := domain.CoverLetterRequest{
		APIKey:                settingsService.APIKey(),
		SavedJobDescriptionID: coverSavedJD,
	}
	if coverSavedJD == 0 {
		text, err := readJobText(ctx, cmd, coverJDFile, coverJDText)
		if err != nil {
			return err
		}
		req.JobText = text
	}

	st := currentStyles()
	var outcome *domain.CoverLetterOutcome
	err := spinner.Run(ctx, spinnerOptions(cmd, st, "Writing cover letter..."), func(ctx context.Context) error {
		var runErr error
		outcome, runErr = pipeline.GenerateCoverLetter(ctx, req)
		return runErr
	})
	if err != nil {
		return fmt.Errorf("cover letter failed: %w", err)
	}

	if jsonOutput {
		return printJSON(cmd, outcome)
	}

	cmd.Println(st.Title.Render(fmt.Sprintf("Cover Letter #%d", outcome.CoverLetterID)))
	cmd.Println(st.Muted.Render(fmt.Sprintf("Saved with job description #%d", outcome.JobDescriptionID)))
	cmd.Println()
	renderCoverLetter(cmd, st, outcome.Result.CoverLetter, outcome.Result.KeyMatches)
	return nil
}
