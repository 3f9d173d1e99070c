package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	config "agilefant.com/agilefant/internal/configs"
	dto "agilefant.com/agilefant/internal/data_models"
)

var backlogIterationID uint

var backlogCmd = &cobra.Command{
	Use:   "backlog",
	Short: "Print the backlog of an iteration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if backlogIterationID == 0 {
			return fmt.Errorf("--iteration is required")
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		database, err := config.NewDatabaseClient(cfg.DatabaseDSN)
		if err != nil {
			return err
		}
		a := newApp(database, nil)

		ctx := cmd.Context()
		iteration, err := a.iterations.Get(ctx, backlogIterationID)
		if err != nil {
			return fmt.Errorf("iteration %d: %w", backlogIterationID, err)
		}
		users, err := a.projects.GetAssignedUsers(ctx, iteration.OwningProject())
		if err != nil {
			return err
		}
		stories, err := a.transfer.ConstructBacklogDataWithUserData(ctx, iteration, users)
		if err != nil {
			return err
		}

		renderBacklog(os.Stdout, iteration.Name, stories)
		if hasOutsiders(stories) {
			fmt.Println(color.YellowString("* responsible but not assigned to the project"))
		}
		return nil
	},
}

func renderBacklog(out io.Writer, title string, stories []dto.StoryTO) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetTitle(title)
	t.AppendHeader(table.Row{"Story", "Task", "State", "Responsibles", "Spent", "Performed"})
	for _, s := range stories {
		t.AppendRow(table.Row{s.Name, "", s.State, responsibleNames(s.UserData), formatMinutes(s.TotalEffortSpent), formatMinutes(s.PerformedEffort)})
		for _, task := range s.Tasks {
			t.AppendRow(table.Row{"", task.Name, task.Status, responsibleNames(task.UserData), formatMinutes(task.EffortSpent), formatMinutes(task.PerformedEffort)})
		}
		t.AppendSeparator()
	}
	t.Render()
}

// responsibleNames lists initials, starring users outside the project.
func responsibleNames(containers []dto.ResponsibleContainer) string {
	names := make([]string, 0, len(containers))
	for _, rc := range containers {
		name := rc.User.Initials
		if name == "" {
			name = rc.User.FullName
		}
		if !rc.InProject {
			name += "*"
		}
		names = append(names, name)
	}
	return strings.Join(names, ", ")
}

func hasOutsiders(stories []dto.StoryTO) bool {
	for _, s := range stories {
		for _, rc := range s.UserData {
			if !rc.InProject {
				return true
			}
		}
		for _, task := range s.Tasks {
			for _, rc := range task.UserData {
				if !rc.InProject {
					return true
				}
			}
		}
	}
	return false
}

func formatMinutes(minutes int64) string {
	if minutes == 0 {
		return "-"
	}
	h, m := minutes/60, minutes%60
	switch {
	case h == 0:
		return fmt.Sprintf("%dmin", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh %dmin", h, m)
}

func init() {
	backlogCmd.Flags().UintVar(&backlogIterationID, "iteration", 0, "iteration id")
	rootCmd.AddCommand(backlogCmd)
}
