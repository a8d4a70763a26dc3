package cli

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/resumebuddy/internal/adapters/driving/export"
	"github.com/custodia-labs/resumebuddy/internal/core/domain"
)

var (
	exportFormat string
	exportOutput string

	// copyResult is shared by history show and letters show.
	copyResult bool
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse optimized resumes",
	RunE:  runHistoryList,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List optimized resumes, newest first",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show an optimized resume",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an optimized resume",
	Long:  `Delete an optimized resume. Its job description stays in history.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

var historyExportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Export an optimized resume as text or HTML",
	Long: `Export an optimized resume as a standalone document.

The text format is a plain layout for pasting into application forms.
The html format is a print-ready page headed with the name and contact
details from your profile; open it in a browser and print to PDF.

Examples:
  resumebuddy history export 3 --format html -o resume.html
  resumebuddy history export 3 | pbcopy`,
	Args: cobra.ExactArgs(1),
	RunE: runHistoryExport,
}

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Browse saved job descriptions",
	RunE:  runJobsList,
}

var jobsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List job descriptions, newest first",
	Args:  cobra.NoArgs,
	RunE:  runJobsList,
}

var jobsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a job description",
	Args:  cobra.ExactArgs(1),
	RunE:  runJobsShow,
}

var lettersCmd = &cobra.Command{
	Use:   "letters",
	Short: "Browse cover letters",
	RunE:  runLettersList,
}

var lettersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cover letters, newest first",
	Args:  cobra.NoArgs,
	RunE:  runLettersList,
}

var lettersShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a cover letter",
	Args:  cobra.ExactArgs(1),
	RunE:  runLettersShow,
}

func init() {
	historyExportCmd.Flags().StringVar(&exportFormat, "format", string(export.FormatText), "export format: text or html")
	historyExportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to a file instead of stdout")
	historyShowCmd.Flags().BoolVar(&copyResult, "copy", false, "copy the resume as text to the clipboard")
	lettersShowCmd.Flags().BoolVar(&copyResult, "copy", false, "copy the letter to the clipboard")

	historyCmd.AddCommand(historyListCmd, historyShowCmd, historyDeleteCmd, historyExportCmd)
	jobsCmd.AddCommand(jobsListCmd, jobsShowCmd)
	lettersCmd.AddCommand(lettersListCmd, lettersShowCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(jobsCmd)
	rootCmd.AddCommand(lettersCmd)
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errHistoryNotConfigured
	}

	entries, err := historyService.ListResumes(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}

	if jsonOutput {
		return printJSON(cmd, entries)
	}

	if len(entries) == 0 {
		cmd.Println("No optimized resumes yet. Run 'resumebuddy optimize' to create one.")
		return nil
	}

	st := currentStyles()
	cmd.Printf("Optimized resumes (%d):\n\n", len(entries))
	for i := range entries {
		e := &entries[i]
		cmd.Printf("  [%d] %-40s %s  %s\n",
			e.ID,
			jobLabel(e.JDTitle, e.JDCompany),
			st.Score(e.Score),
			st.Muted.Render(e.CreatedAt.Local().Format(timeLayout)))
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	if historyService == nil {
		return errHistoryNotConfigured
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	entry, err := historyService.GetResume(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to get resume: %w", err)
	}

	if copyResult {
		if err := copyToClipboard(cmd, export.Text(&entry.OptimizedResume)); err != nil {
			return err
		}
	}

	if jsonOutput {
		return printJSON(cmd, entry)
	}

	st := currentStyles()
	cmd.Println(st.Title.Render(fmt.Sprintf("Resume #%d: %s", entry.ID, jobLabel(entry.JDTitle, entry.JDCompany))))
	cmd.Println(st.Muted.Render(fmt.Sprintf("Job description #%d, created %s",
		entry.JobDescriptionID, entry.CreatedAt.Local().Format(timeLayout))))
	cmd.Println()
	renderResume(cmd, st, viewFromResume(entry.OptimizedResume))
	return nil
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	if historyService == nil {
		return errHistoryNotConfigured
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if err := historyService.DeleteResume(cmd.Context(), id); err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}
	cmd.Printf("Deleted resume %d\n", id)
	return nil
}

func runHistoryExport(cmd *cobra.Command, args []string) error {
	if historyService == nil {
		return errHistoryNotConfigured
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	format, err := export.ParseFormat(exportFormat)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	entry, err := historyService.GetResume(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get resume: %w", err)
	}

	// Only the HTML page carries contact details.
	var info domain.PersonalInfo
	if format == export.FormatHTML {
		if profileService == nil {
			return errProfileNotConfigured
		}
		profile, err := profileService.Get(ctx)
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}
		info = profile.PersonalInfo
	}

	if exportOutput == "" {
		return export.Write(cmd.OutOrStdout(), format, &entry.OptimizedResume, info)
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, format, &entry.OptimizedResume, info); err != nil {
		return err
	}
	if err := os.WriteFile(exportOutput, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	cmd.Printf("Exported resume %d to %s\n", id, exportOutput)
	return nil
}

// copyToClipboard writes text to the system clipboard and reports it on stderr.
func copyToClipboard(cmd *cobra.Command, text string) error {
	if err := writeClipboard(text); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	fmt.Fprintln(cmd.ErrOrStderr(), "Copied to clipboard")
	return nil
}

func runJobsList(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errHistoryNotConfigured
	}

	jds, err := historyService.ListJobDescriptions(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list job descriptions: %w", err)
	}

	if jsonOutput {
		return printJSON(cmd, jds)
	}

	if len(jds) == 0 {
		cmd.Println("No job descriptions saved.")
		return nil
	}

	st := currentStyles()
	cmd.Printf("Job descriptions (%d):\n\n", len(jds))
	for i := range jds {
		cmd.Printf("  [%d] %-40s %s\n",
			jds[i].ID,
			jobLabel(jds[i].Title, jds[i].Company),
			st.Muted.Render(jds[i].CreatedAt.Local().Format(timeLayout)))
	}
	return nil
}

func runJobsShow(cmd *cobra.Command, args []string) error {
	if historyService == nil {
		return errHistoryNotConfigured
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	jd, err := historyService.GetJobDescription(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to get job description: %w", err)
	}

	if jsonOutput {
		return printJSON(cmd, jd)
	}

	st := currentStyles()
	cmd.Println(st.Title.Render(fmt.Sprintf("Job description #%d: %s", jd.ID, jobLabel(jd.Title, jd.Company))))
	cmd.Println(st.Muted.Render("Saved " + jd.CreatedAt.Local().Format(timeLayout)))
	cmd.Println()
	cmd.Println(jd.RawText)
	return nil
}

func runLettersList(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errHistoryNotConfigured
	}

	letters, err := historyService.ListCoverLetters(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list cover letters: %w", err)
	}

	if jsonOutput {
		return printJSON(cmd, letters)
	}

	if len(letters) == 0 {
		cmd.Println("No cover letters yet. Run 'resumebuddy cover-letter' to write one.")
		return nil
	}

	st := currentStyles()
	cmd.Printf("Cover letters (%d):\n\n", len(letters))
	for i := range letters {
		cmd.Printf("  [%d] job description #%d  %s\n",
			letters[i].ID,
			letters[i].JobDescriptionID,
			st.Muted.Render(letters[i].CreatedAt.Local().Format(timeLayout)))
	}
	return nil
}

func runLettersShow(cmd *cobra.Command, args []string) error {
	if historyService == nil {
		return errHistoryNotConfigured
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	letter, err := historyService.GetCoverLetter(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to get cover letter: %w", err)
	}

	if copyResult {
		if err := copyToClipboard(cmd, letter.Content); err != nil {
			return err
		}
	}

	if jsonOutput {
		return printJSON(cmd, letter)
	}

	st := currentStyles()
	cmd.Println(st.Title.Render(fmt.Sprintf("Cover Letter #%d", letter.ID)))
	cmd.Println(st.Muted.Render(fmt.Sprintf("Job description #%d, created %s",
		letter.JobDescriptionID, letter.CreatedAt.Local().Format(timeLayout))))
	cmd.Println()
	renderCoverLetter(cmd, st, letter.Content, letter.KeyMatches)
	return nil
}
