package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/2beens/volumeplanner/internal/planner"
	"github.com/2beens/volumeplanner/internal/workoutplan"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))
	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
	statusStyles = map[planner.VolumeStatus]lipgloss.Style{
		planner.StatusWithin:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		planner.StatusBelow:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		planner.StatusAbove:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		planner.StatusFarBelow: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		planner.StatusFarAbove: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
)

type Context struct {
	Planner *planner.Planner
	Out     io.Writer
}

// ProfileFlags are shared by the commands that need a training profile.
type ProfileFlags struct {
	Status     string  `help:"Training status: 1-3 or novice, intermediate, advanced." default:"novice"`
	Sex        string  `help:"Sex." enum:"male,female" default:"male"`
	Recovery   float64 `help:"Recovery factor (0.5 - 1.2)." default:"1.0"`
	Energy     float64 `help:"Energy balance factor, typically 0.8 to 1.2. Not clamped." default:"1.0"`
	Age        int     `help:"Age in years (10 - 100)." required:""`
	Frequency  int     `help:"Training sessions per week (1 - 7)." required:""`
	Dedication string  `help:"Dedication level A, B or C." default:"B"`
}

// Profile runs the flags through the same validation the service applies to requests.
func (f ProfileFlags) Profile() (planner.TrainingProfile, error) {
	status, err := workoutplan.ParseTrainingStatus(f.Status)
	if err != nil {
		return planner.TrainingProfile{}, err
	}
	sex := planner.Male
	if f.Sex == "female" {
		sex = planner.Female
	}
	profile := planner.TrainingProfile{
		TrainingStatus:      status,
		Sex:                 sex,
		RecoveryFactor:      f.Recovery,
		EnergyBalanceFactor: f.Energy,
		Age:                 f.Age,
		TrainingFrequency:   f.Frequency,
		DedicationLevel:     planner.DedicationLevel(strings.ToUpper(f.Dedication)),
	}
	return workoutplan.NewGenerateRequest(profile).Profile()
}

type GenerateCmd struct {
	ProfileFlags `embed:""`

	JSON bool `help:"Print the plan as JSON."`
}

func (c *GenerateCmd) Run(ctx *Context) error {
	profile, err := c.Profile()
	if err != nil {
		return err
	}

	plan := ctx.Planner.Generate(profile)
	if c.JSON {
		return writeJSON(ctx.Out, workoutplan.PlanResponse{
			Plan:           plan,
			ProfileSummary: planner.Summarize(profile),
		})
	}

	summary := planner.Summarize(profile)
	fmt.Fprintln(ctx.Out, headingStyle.Render("Profile"))
	fmt.Fprintf(ctx.Out, "  %s %s, age %d, %d sessions/week\n",
		summary.TrainingStatus, summary.Sex, summary.Age, summary.TrainingFrequency)
	fmt.Fprintf(ctx.Out, "  Dedication %s: %s\n", summary.DedicationLevel, summary.DedicationDescription)
	fmt.Fprintf(ctx.Out, "  Intensity: compound %d%%, isolation %d%%\n",
		summary.CompoundIntensity, summary.IsolationIntensity)
	fmt.Fprintf(ctx.Out, "  Estimated optimal sets: %.1f, target range %.1f - %.1f\n\n",
		plan.EstimatedOptimalSets, plan.TargetVolumeRange.Min, plan.TargetVolumeRange.Max)

	for _, day := range plan.Days {
		fmt.Fprintf(ctx.Out, "%s %s\n",
			headingStyle.Render(day.Name),
			mutedStyle.Render(fmt.Sprintf("x%d per week, %d sets per session", day.FrequencyPerWeek, day.TotalSets())))
		rows := make([][]string, 0, len(day.Exercises))
		for _, a := range day.Exercises {
			rows = append(rows, []string{
				a.Exercise.Name,
				string(a.Exercise.Classification),
				strconv.Itoa(a.Sets),
				strconv.Itoa(a.IntensityPercent) + "%",
			})
		}
		fmt.Fprintln(ctx.Out, renderTable([]string{"Exercise", "Type", "Sets", "Intensity"}, rows))
	}

	writeReport(ctx.Out, plan.Report)
	return nil
}

type CatalogCmd struct {
	Pattern string `help:"Only list exercises of this pattern: push, pull, lower or core."`
	JSON    bool   `help:"Print the catalog as JSON."`
}

func (c *CatalogCmd) Run(ctx *Context) error {
	switch planner.Pattern(c.Pattern) {
	case "", planner.PatternPush, planner.PatternPull, planner.PatternLower, planner.PatternCore:
	default:
		return fmt.Errorf("unknown pattern: %q", c.Pattern)
	}

	var exercises []planner.ExerciseDefinition
	for _, e := range ctx.Planner.Catalog().Exercises() {
		if c.Pattern == "" || string(e.Pattern) == c.Pattern {
			exercises = append(exercises, e)
		}
	}

	if c.JSON {
		return writeJSON(ctx.Out, workoutplan.ExercisesResponse{Count: len(exercises), Exercises: exercises})
	}

	rows := make([][]string, 0, len(exercises))
	for _, e := range exercises {
		rows = append(rows, []string{e.Name, string(e.Classification), string(e.Pattern), activationText(e)})
	}
	fmt.Fprintln(ctx.Out, renderTable([]string{"Exercise", "Type", "Pattern", "Activation"}, rows))
	return nil
}

type CheckCmd struct {
	ProfileFlags `embed:""`

	File string `arg:"" help:"Plan JSON file, either a generated plan or a list of days." type:"existingfile"`
	JSON bool   `help:"Print the result as JSON."`
}

// checkFailedError makes the command exit non-zero once the verdict is printed.
type checkFailedError struct {
	violations int
}

func (e checkFailedError) Error() string {
	return fmt.Sprintf("plan has %d violation(s)", e.violations)
}

func (c *CheckCmd) Run(ctx *Context) error {
	profile, err := c.Profile()
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("read plan file: %w", err)
	}
	days, err := decodeDays(raw)
	if err != nil {
		return fmt.Errorf("decode plan file %s: %w", c.File, err)
	}

	review := ctx.Planner.Review(profile, days)
	if c.JSON {
		if err := writeJSON(ctx.Out, workoutplan.ValidationResult{
			Valid:             review.Valid(),
			Violations:        review.Violations,
			TargetVolumeRange: review.TargetVolumeRange,
			Report:            review.Report,
		}); err != nil {
			return err
		}
	} else {
		fmt.Fprintf(ctx.Out, "%s target range %.1f - %.1f\n",
			headingStyle.Render("Check"), review.TargetVolumeRange.Min, review.TargetVolumeRange.Max)
		if review.Valid() {
			fmt.Fprintln(ctx.Out, statusStyles[planner.StatusWithin].Render("no violations"))
		}
		for _, v := range review.Violations {
			fmt.Fprintln(ctx.Out, statusStyles[planner.StatusFarBelow].Render("- "+v.String()))
		}
		fmt.Fprintln(ctx.Out)
		writeReport(ctx.Out, review.Report)
	}

	if !review.Valid() {
		return checkFailedError{violations: len(review.Violations)}
	}
	return nil
}

// decodeDays accepts a whole plan document, as printed by generate --json, or a bare list of days.
func decodeDays(raw []byte) ([]planner.WorkoutDay, error) {
	trimmed := strings.TrimSpace(string(raw))
	if strings.HasPrefix(trimmed, "[") {
		var days []planner.WorkoutDay
		if err := json.Unmarshal(raw, &days); err != nil {
			return nil, err
		}
		return days, nil
	}

	var doc struct {
		Days []planner.WorkoutDay `json:"days"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	if doc.Days == nil {
		return nil, errors.New("no days in document")
	}
	return doc.Days, nil
}

func writeReport(out io.Writer, report planner.VolumeReport) {
	fmt.Fprintln(out, headingStyle.Render("Weekly volume"))
	rows := make([][]string, 0, len(report.Muscles))
	for _, m := range report.Muscles {
		rows = append(rows, []string{
			m.MuscleGroup.String(),
			strconv.FormatFloat(m.WeeklySets, 'f', 1, 64),
			statusStyles[m.Status].Render(string(m.Status)),
			strconv.FormatFloat(m.Deficit, 'f', 1, 64),
		})
	}
	fmt.Fprintln(out, renderTable([]string{"Muscle", "Weekly sets", "Status", "Deficit"}, rows))
	for _, m := range report.Muscles {
		if len(m.Suggestions) > 0 {
			fmt.Fprintf(out, "%s: add %s\n", m.MuscleGroup, strings.Join(m.Suggestions, " or "))
		}
	}
	if report.Acceptable {
		fmt.Fprintln(out, statusStyles[planner.StatusWithin].Render("acceptable"))
	} else {
		fmt.Fprintln(out, statusStyles[planner.StatusFarBelow].Render("not acceptable"))
	}
}

func renderTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(mutedStyle).
		Headers(headers...).
		Rows(rows...).
		String()
}

func activationText(e planner.ExerciseDefinition) string {
	parts := make([]string, 0, len(e.Activation))
	for _, m := range planner.AllMuscleGroups() {
		if w := e.ActivationOf(m); w > 0 {
			parts = append(parts, fmt.Sprintf("%s %s", m, strconv.FormatFloat(w, 'f', -1, 64)))
		}
	}
	return strings.Join(parts, ", ")
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
