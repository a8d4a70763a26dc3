package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/resumebuddy/internal/core/domain"
	"github.com/custodia-labs/resumebuddy/internal/core/prompts"
)

var rubricCmd = &cobra.Command{
	Use:         "rubric",
	Short:       "Show the ATS scoring rubric",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipBootstrap: "true"},
	RunE:        runRubric,
}

func init() {
	rootCmd.AddCommand(rubricCmd)
}

// rubricOutput is the JSON form of the rubric.
type rubricOutput struct {
	Criteria     []prompts.RubricCriterion `json:"criteria"`
	PassingScore int                       `json:"passingScore"`
	WarningScore int                       `json:"warningScore"`
}

func runRubric(cmd *cobra.Command, _ []string) error {
	if jsonOutput {
		return printJSON(cmd, rubricOutput{
			Criteria:     prompts.Rubric,
			PassingScore: domain.PassingScore,
			WarningScore: domain.WarningScore,
		})
	}

	st := currentStyles()
	cmd.Println(st.Title.Render("ATS Rubric (100 points)"))
	cmd.Println()
	for _, c := range prompts.Rubric {
		cmd.Printf("  %-14s %3d\n", c.Label, c.Weight)
	}
	cmd.Println()
	cmd.Printf("  %s %d and above\n", st.Success.Render("Pass:"), domain.PassingScore)
	cmd.Printf("  %s %d to %d\n", st.Warning.Render("Warn:"), domain.WarningScore, domain.PassingScore-1)
	cmd.Printf("  %s below %d\n", st.Error.Render("Fail:"), domain.WarningScore)
	return nil
}
