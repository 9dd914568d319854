package workoutplan

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/2beens/volumeplanner/internal/planner"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewMCPServer exposes plan generation, the exercise catalog and plan validation as MCP tools.
// Served over stdio by cmd/volumeplan_mcp and over HTTP at /mcp by the main service.
func NewMCPServer(service planService, version string) *mcp.Server {
	h := NewMCPHandler(service)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "volumeplanner",
		Version: version,
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "generate_workout_plan",
		Description: "Generates a weekly workout plan from a training profile: estimated optimal weekly sets per muscle group, the target range for the dedication level, training days with exercises, sets and intensity (% of 1RM), the realized weekly volume per muscle group and a report of muscles left under target.",
	}, h.GenerateWorkoutPlanTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "list_exercises",
		Description: "Returns the exercise catalog the planner allocates from (name, compound or isolation, movement pattern, muscle activation weights). Optional filters: pattern (push, pull, lower, core), muscle_group (e.g. Pecs, Hamstrings).",
	}, h.ListExercisesTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "validate_workout_plan",
		Description: "Checks a workout plan against a training profile: weekly frequency, the 10 sets per muscle per session cap, the weekly maximum of the target range, unknown exercises and day type patterns. Returns the violations and the realized volume report.",
	}, h.ValidateWorkoutPlanTool())

	return s
}

// MCPHandler adapts MCP tool calls to the plan service.
type MCPHandler struct {
	service planService
}

func NewMCPHandler(service planService) *MCPHandler {
	return &MCPHandler{
		service: service,
	}
}

// ProfileInput is the training profile as given to MCP tools. Fields are optional in the
// schema so that a missing one gets the same "required" error an HTTP caller sees.
type ProfileInput struct {
	TrainingStatus      *int     `json:"training_status,omitempty" jsonschema:"Training status: 1 (Novice), 2 (Intermediate) or 3 (Advanced). Required"`
	Sex                 *int     `json:"sex,omitempty" jsonschema:"Sex: 0 (Male) or 1 (Female). Required"`
	RecoveryFactor      *float64 `json:"recovery_factor,omitempty" jsonschema:"Recovery factor between 0.5 and 1.2. Required"`
	EnergyBalanceFactor *float64 `json:"energy_balance_factor,omitempty" jsonschema:"Energy balance factor, typically 0.8 to 1.2. Required"`
	Age                 *int     `json:"age,omitempty" jsonschema:"Age in years, 10 to 100. Required"`
	TrainingFrequency   *int     `json:"training_frequency,omitempty" jsonschema:"Training days per week, 1 to 7. Required"`
	DedicationLevel     *string  `json:"dedication_level,omitempty" jsonschema:"Dedication level: A (sustainability), B (balanced) or C (maximum results). Required"`
}

func (in ProfileInput) request() GenerateRequest {
	return GenerateRequest{
		TrainingStatus:      in.TrainingStatus,
		Sex:                 in.Sex,
		RecoveryFactor:      in.RecoveryFactor,
		EnergyBalanceFactor: in.EnergyBalanceFactor,
		Age:                 in.Age,
		TrainingFrequency:   in.TrainingFrequency,
		DedicationLevel:     in.DedicationLevel,
	}
}

// GenerateWorkoutPlanTool returns the MCP tool handler for generate_workout_plan.
func (h *MCPHandler) GenerateWorkoutPlanTool() func(context.Context, *mcp.CallToolRequest, ProfileInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ProfileInput) (*mcp.CallToolResult, any, error) {
		plan, err := h.service.Generate(ctx, in.request())
		if err != nil {
			return toolError("Invalid profile: " + err.Error()), nil, nil
		}
		return toolJSON(plan), nil, nil
	}
}

// ListExercisesInput is the input for list_exercises.
type ListExercisesInput struct {
	Pattern     string `json:"pattern,omitempty" jsonschema:"Filter by movement pattern (push, pull, lower, core)"`
	MuscleGroup string `json:"muscle_group,omitempty" jsonschema:"Only exercises that activate this muscle group (e.g. Pecs, Erector Spine)"`
}

// ListExercisesTool returns the MCP tool handler for list_exercises.
func (h *MCPHandler) ListExercisesTool() func(context.Context, *mcp.CallToolRequest, ListExercisesInput) (*mcp.CallToolResult, any, error) {
	return func(_ context.Context, _ *mcp.CallToolRequest, in ListExercisesInput) (*mcp.CallToolResult, any, error) {
		var (
			muscle       planner.MuscleGroup
			filterMuscle bool
		)
		if in.MuscleGroup != "" {
			m, err := planner.ParseMuscleGroup(in.MuscleGroup)
			if err != nil {
				return toolError("Invalid muscle_group: " + err.Error()), nil, nil
			}
			muscle, filterMuscle = m, true
		}
		pattern := planner.Pattern(strings.ToLower(strings.TrimSpace(in.Pattern)))

		exercises := make([]planner.ExerciseDefinition, 0)
		for _, ex := range h.service.Exercises() {
			if pattern != "" && ex.Pattern != pattern {
				continue
			}
			if filterMuscle && ex.ActivationOf(muscle) == 0 {
				continue
			}
			exercises = append(exercises, ex)
		}

		return toolJSON(ExercisesResponse{
			Count:     len(exercises),
			Exercises: exercises,
		}), nil, nil
	}
}

// ValidatePlanInput is the input for validate_workout_plan.
type ValidatePlanInput struct {
	Profile  ProfileInput `json:"profile" jsonschema:"The training profile the plan is meant for"`
	DaysJSON string       `json:"days_json" jsonschema:"JSON array of days, each with name, frequencyPerWeek and exercises (exerciseName, sets), as returned by generate_workout_plan"`
}

// ValidateWorkoutPlanTool returns the MCP tool handler for validate_workout_plan.
func (h *MCPHandler) ValidateWorkoutPlanTool() func(context.Context, *mcp.CallToolRequest, ValidatePlanInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ValidatePlanInput) (*mcp.CallToolResult, any, error) {
		var days []planner.WorkoutDay
		if err := json.Unmarshal([]byte(in.DaysJSON), &days); err != nil {
			return toolError("Invalid days_json: " + err.Error()), nil, nil
		}

		result, err := h.service.Validate(ctx, ValidatePlanRequest{
			Profile: in.Profile.request(),
			Days:    days,
		})
		if err != nil {
			return toolError("Invalid request: " + err.Error()), nil, nil
		}
		return toolJSON(result), nil, nil
	}
}

func toolJSON(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return toolError("Error encoding response: " + err.Error())
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}
}

func toolError(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}
