package cli

import (
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/resumebuddy/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/resumebuddy/internal/core/domain"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage your master career profile",
	Long: `The master profile holds your contact details, summary, experience,
projects, skills and education. Every optimization starts from it.

Edit it as a TOML file with import/export/watch, or entry by entry with
the subcommands.`,
	RunE: runProfileShow,
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the profile",
	Args:  cobra.NoArgs,
	RunE:  runProfileShow,
}

var profileImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the profile with a TOML file",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileImport,
}

var profileExportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write the profile to a TOML file",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileExport,
}

var profileWatchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-import a TOML file whenever it changes",
	Long: `Watch a profile file and re-import it on every save, so you can edit
the profile in your own editor. Press Ctrl+C to stop.`,
	Args: cobra.ExactArgs(1),
	RunE: runProfileWatch,
}

// Skill subcommands.

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Add or remove skills",
}

var skillAddCmd = &cobra.Command{
	Use:   "add <skill>",
	Short: "Add a skill",
	Args:  cobra.ExactArgs(1),
	RunE:  runSkillAdd,
}

var skillRemoveCmd = &cobra.Command{
	Use:   "remove <skill>",
	Short: "Remove a skill",
	Args:  cobra.ExactArgs(1),
	RunE:  runSkillRemove,
}

// Experience subcommands.

var (
	expCompany string
	expRole    string
	expStart   string
	expEnd     string
	expBullets []string
)

var experienceCmd = &cobra.Command{
	Use:   "experience",
	Short: "Add or remove work experience",
}

var experienceAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a role",
	Long: `Add a role to the profile. Repeat --bullet for each achievement.

Example:
  resumebuddy profile experience add --company Acme --role "Backend Engineer" \
    --start 2021 --end Present --bullet "Built ingestion pipeline handling 2M events/day"`,
	Args: cobra.NoArgs,
	RunE: runExperienceAdd,
}

var experienceRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a role",
	Args:  cobra.ExactArgs(1),
	RunE:  runExperienceRemove,
}

// Project subcommands.

var (
	projName         string
	projDescription  string
	projURL          string
	projTechnologies []string
	projHighlights   []string
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Add or remove projects",
}

var projectAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a project",
	Args:  cobra.NoArgs,
	RunE:  runProjectAdd,
}

var projectRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a project",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectRemove,
}

// Education subcommands.

var (
	eduSchool string
	eduDegree string
	eduYear   string
)

var educationCmd = &cobra.Command{
	Use:   "education",
	Short: "Add or remove education",
}

var educationAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an education entry",
	Args:  cobra.NoArgs,
	RunE:  runEducationAdd,
}

var educationRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove an education entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runEducationRemove,
}

func init() {
	experienceAddCmd.Flags().StringVar(&expCompany, "company", "", "company name")
	experienceAddCmd.Flags().StringVar(&expRole, "role", "", "job title")
	experienceAddCmd.Flags().StringVar(&expStart, "start", "", "start date")
	experienceAddCmd.Flags().StringVar(&expEnd, "end", "", "end date (e.g. Present)")
	experienceAddCmd.Flags().StringArrayVar(&expBullets, "bullet", nil, "achievement bullet (repeatable)")
	_ = experienceAddCmd.MarkFlagRequired("company")
	_ = experienceAddCmd.MarkFlagRequired("role")

	projectAddCmd.Flags().StringVar(&projName, "name", "", "project name")
	projectAddCmd.Flags().StringVar(&projDescription, "description", "", "one line description")
	projectAddCmd.Flags().StringVar(&projURL, "url", "", "project URL")
	projectAddCmd.Flags().StringArrayVar(&projTechnologies, "tech", nil, "technology used (repeatable)")
	projectAddCmd.Flags().StringArrayVar(&projHighlights, "highlight", nil, "highlight (repeatable)")
	_ = projectAddCmd.MarkFlagRequired("name")

	educationAddCmd.Flags().StringVar(&eduSchool, "school", "", "school name")
	educationAddCmd.Flags().StringVar(&eduDegree, "degree", "", "degree")
	educationAddCmd.Flags().StringVar(&eduYear, "year", "", "graduation year")
	_ = educationAddCmd.MarkFlagRequired("school")

	skillCmd.AddCommand(skillAddCmd, skillRemoveCmd)
	experienceCmd.AddCommand(experienceAddCmd, experienceRemoveCmd)
	projectCmd.AddCommand(projectAddCmd, projectRemoveCmd)
	educationCmd.AddCommand(educationAddCmd, educationRemoveCmd)

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileImportCmd)
	profileCmd.AddCommand(profileExportCmd)
	profileCmd.AddCommand(profileWatchCmd)
	profileCmd.AddCommand(skillCmd)
	profileCmd.AddCommand(experienceCmd)
	profileCmd.AddCommand(projectCmd)
	profileCmd.AddCommand(educationCmd)
	rootCmd.AddCommand(profileCmd)
}

func runProfileShow(cmd *cobra.Command, _ []string) error {
	if profileService == nil {
		return errProfileNotConfigured
	}

	profile, err := profileService.Get(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to get profile: %w", err)
	}

	if jsonOutput {
		return printJSON(cmd, profile)
	}

	renderProfile(cmd, currentStyles(), profile)
	return nil
}

func renderProfile(cmd *cobra.Command, st *styles.Styles, p *domain.Profile) {
	name := p.PersonalInfo.Name
	if name == "" {
		name = "(no name)"
	}
	cmd.Println(st.Title.Render(name))

	contact := make([]string, 0, 7)
	for _, v := range []string{
		p.PersonalInfo.Email, p.PersonalInfo.Phone, p.PersonalInfo.Location,
		p.PersonalInfo.LinkedIn, p.PersonalInfo.GitHub, p.PersonalInfo.Website, p.PersonalInfo.Portfolio,
	} {
		if v != "" {
			contact = append(contact, v)
		}
	}
	if len(contact) > 0 {
		cmd.Println(st.Muted.Render(strings.Join(contact, " | ")))
	}
	cmd.Println()

	if p.Summary != "" {
		cmd.Println(st.Subtitle.Render("Summary"))
		cmd.Printf("  %s\n\n", p.Summary)
	}

	cmd.Println(st.Subtitle.Render(fmt.Sprintf("Experience (%d)", len(p.Experience))))
	for _, exp := range p.Experience {
		cmd.Printf("  %s, %s %s\n", exp.Role, exp.Company,
			st.Muted.Render(fmt.Sprintf("(%s – %s) [%s]", exp.StartDate, exp.EndDate, exp.ID)))
		for _, bullet := range exp.Bullets {
			cmd.Printf("    • %s\n", bullet)
		}
	}
	if !p.HasExperience() {
		cmd.Println(st.Warning.Render("  No experience yet. Add a role before optimizing."))
	}
	cmd.Println()

	if len(p.Projects) > 0 {
		cmd.Println(st.Subtitle.Render(fmt.Sprintf("Projects (%d)", len(p.Projects))))
		for _, proj := range p.Projects {
			cmd.Printf("  %s %s\n", proj.Name, st.Muted.Render("["+proj.ID+"]"))
			if proj.Description != "" {
				cmd.Printf("    %s\n", proj.Description)
			}
			if len(proj.Technologies) > 0 {
				cmd.Printf("    Tech: %s\n", strings.Join(proj.Technologies, ", "))
			}
		}
		cmd.Println()
	}

	cmd.Println(st.Subtitle.Render(fmt.Sprintf("Skills (%d)", len(p.Skills))))
	if len(p.Skills) > 0 {
		cmd.Printf("  %s\n", strings.Join(p.Skills, ", "))
	}

	if len(p.Education) > 0 {
		cmd.Println()
		cmd.Println(st.Subtitle.Render("Education"))
		for _, edu := range p.Education {
			cmd.Printf("  %s, %s %s\n", edu.Degree, edu.School,
				st.Muted.Render(fmt.Sprintf("(%s) [%s]", edu.Year, edu.ID)))
		}
	}
}

func runProfileImport(cmd *cobra.Command, args []string) error {
	if profileService == nil {
		return errProfileNotConfigured
	}
	profile, err := profileService.Import(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to import profile: %w", err)
	}
	cmd.Printf("Imported profile: %d roles, %d projects, %d skills\n",
		len(profile.Experience), len(profile.Projects), len(profile.Skills))
	return nil
}

func runProfileExport(cmd *cobra.Command, args []string) error {
	if profileService == nil {
		return errProfileNotConfigured
	}
	if err := profileService.Export(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("failed to export profile: %w", err)
	}
	cmd.Printf("Profile written to %s\n", args[0])
	return nil
}

func runProfileWatch(cmd *cobra.Command, args []string) error {
	if profileService == nil {
		return errProfileNotConfigured
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	cmd.Printf("Watching %s (Ctrl+C to stop)\n", args[0])
	return profileService.Watch(ctx, args[0], func(p *domain.Profile, err error) {
		if err != nil {
			cmd.PrintErrf("Import failed: %v\n", err)
			return
		}
		cmd.Printf("Re-imported: %d roles, %d skills\n", len(p.Experience), len(p.Skills))
	})
}

func runSkillAdd(cmd *cobra.Command, args []string) error {
	if profileService == nil {
		return errProfileNotConfigured
	}
	if err := profileService.AddSkill(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("failed to add skill: %w", err)
	}
	cmd.Printf("Added skill: %s\n", strings.TrimSpace(args[0]))
	return nil
}

func runSkillRemove(cmd *cobra.Command, args []string) error {
	if profileService == nil {
		return errProfileNotConfigured
	}
	if err := profileService.RemoveSkill(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("failed to remove skill: %w", err)
	}
	cmd.Printf("Removed skill: %s\n", strings.TrimSpace(args[0]))
	return nil
}

func runExperienceAdd(cmd *cobra.Command, _ []string) error {
	if profileService == nil {
		return errProfileNotConfigured
	}
	exp, err := profileService.AddExperience(cmd.Context(), domain.Experience{
		Company:   expCompany,
		Role:      expRole,
		StartDate: expStart,
		EndDate:   expEnd,
		Bullets:   expBullets,
	})
	if err != nil {
		return fmt.Errorf("failed to add experience: %w", err)
	}
	cmd.Printf("Added %s at %s (id %s)\n", exp.Role, exp.Company, exp.ID)
	return nil
}

func runExperienceRemove(cmd *cobra.Command, args []string) error {
	if profileService == nil {
		return errProfileNotConfigured
	}
	if err := profileService.RemoveExperience(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("failed to remove experience: %w", err)
	}
	cmd.Printf("Removed experience %s\n", args[0])
	return nil
}

func runProjectAdd(cmd *cobra.Command, _ []string) error {
	if profileService == nil {
		return errProfileNotConfigured
	}
	proj, err := profileService.AddProject(cmd.Context(), domain.Project{
		Name:         projName,
		Description:  projDescription,
		URL:          projURL,
		Technologies: projTechnologies,
		Highlights:   projHighlights,
	})
	if err != nil {
		return fmt.Errorf("failed to add project: %w", err)
	}
	cmd.Printf("Added project %s (id %s)\n", proj.Name, proj.ID)
	return nil
}

func runProjectRemove(cmd *cobra.Command, args []string) error {
	if profileService == nil {
		return errProfileNotConfigured
	}
	if err := profileService.RemoveProject(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("failed to remove project: %w", err)
	}
	cmd.Printf("Removed project %s\n", args[0])
	return nil
}

func runEducationAdd(cmd *cobra.Command, _ []string) error {
	if profileService == nil {
		return errProfileNotConfigured
	}
	edu, err := profileService.AddEducation(cmd.Context(), domain.Education{
		School: eduSchool,
		Degree: eduDegree,
		Year:   eduYear,
	})
	if err != nil {
		return fmt.Errorf("failed to add education: %w", err)
	}
	cmd.Printf("Added %s (id %s)\n", edu.School, edu.ID)
	return nil
}

func runEducationRemove(cmd *cobra.Command, args []string) error {
	if profileService == nil {
		return errProfileNotConfigured
	}
	if err := profileService.RemoveEducation(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("failed to remove education: %w", err)
	}
	cmd.Printf("Removed education %s\n", args[0])
	return nil
}
