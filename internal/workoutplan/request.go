package workoutplan

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/2beens/volumeplanner/internal/planner"
)

const (
	MinRecoveryFactor    = 0.5
	MaxRecoveryFactor    = 1.2
	MinAge               = 10
	MaxAge               = 100
	MinTrainingFrequency = 1
	MaxTrainingFrequency = 7
)

// ValidationError names the request field that was missing or out of range.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"error"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// GenerateRequest is the wire form of a training profile. Pointers tell a missing field apart
// from a zero value (sex 0 is a valid value).
type GenerateRequest struct {
	TrainingStatus      *int     `json:"trainingStatus"`
	Sex                 *int     `json:"sex"`
	RecoveryFactor      *float64 `json:"recoveryFactor"`
	EnergyBalanceFactor *float64 `json:"energyBalanceFactor"`
	Age                 *int     `json:"age"`
	TrainingFrequency   *int     `json:"trainingFrequency"`
	DedicationLevel     *string  `json:"dedicationLevel"`
}

// NewGenerateRequest builds a request from an already typed profile.
func NewGenerateRequest(p planner.TrainingProfile) GenerateRequest {
	status := int(p.TrainingStatus)
	sex := int(p.Sex)
	recovery := p.RecoveryFactor
	energy := p.EnergyBalanceFactor
	age := p.Age
	freq := p.TrainingFrequency
	dedication := string(p.DedicationLevel)
	return GenerateRequest{
		TrainingStatus:      &status,
		Sex:                 &sex,
		RecoveryFactor:      &recovery,
		EnergyBalanceFactor: &energy,
		Age:                 &age,
		TrainingFrequency:   &freq,
		DedicationLevel:     &dedication,
	}
}

// DecodeGenerateRequest reads a JSON request body. Malformed JSON and wrongly typed fields are
// reported as validation errors.
func DecodeGenerateRequest(body io.Reader) (GenerateRequest, error) {
	var req GenerateRequest
	if err := decodeJSON(body, &req); err != nil {
		return GenerateRequest{}, err
	}
	return req, nil
}

func decodeJSON(body io.Reader, v any) error {
	err := json.NewDecoder(body).Decode(v)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return newValidationError(field, "expected %s, got %s", typeErr.Type.String(), typeErr.Value)
	}
	if errors.Is(err, io.EOF) {
		return newValidationError("body", "empty request body")
	}
	return newValidationError("body", "invalid json: %s", err)
}

// Profile validates every field and converts the request into an engine profile. Values are
// never clamped: the first offending field is reported.
func (r GenerateRequest) Profile() (planner.TrainingProfile, error) {
	if r.TrainingStatus == nil {
		return planner.TrainingProfile{}, newValidationError("trainingStatus", "required")
	}
	status := planner.TrainingStatus(*r.TrainingStatus)
	if !status.Valid() {
		return planner.TrainingProfile{}, newValidationError("trainingStatus", "must be 1, 2 or 3, got %d", *r.TrainingStatus)
	}

	if r.Sex == nil {
		return planner.TrainingProfile{}, newValidationError("sex", "required")
	}
	sex := planner.Sex(*r.Sex)
	if !sex.Valid() {
		return planner.TrainingProfile{}, newValidationError("sex", "must be 0 or 1, got %d", *r.Sex)
	}

	if r.RecoveryFactor == nil {
		return planner.TrainingProfile{}, newValidationError("recoveryFactor", "required")
	}
	recovery := *r.RecoveryFactor
	if math.IsNaN(recovery) || recovery < MinRecoveryFactor || recovery > MaxRecoveryFactor {
		return planner.TrainingProfile{}, newValidationError(
			"recoveryFactor", "must be between %.1f and %.1f, got %v", MinRecoveryFactor, MaxRecoveryFactor, recovery,
		)
	}

	if r.EnergyBalanceFactor == nil {
		return planner.TrainingProfile{}, newValidationError("energyBalanceFactor", "required")
	}
	energy := *r.EnergyBalanceFactor
	if math.IsNaN(energy) || math.IsInf(energy, 0) {
		return planner.TrainingProfile{}, newValidationError("energyBalanceFactor", "must be a finite number, got %v", energy)
	}

	if r.Age == nil {
		return planner.TrainingProfile{}, newValidationError("age", "required")
	}
	if *r.Age < MinAge || *r.Age > MaxAge {
		return planner.TrainingProfile{}, newValidationError("age", "must be between %d and %d, got %d", MinAge, MaxAge, *r.Age)
	}

	if r.TrainingFrequency == nil {
		return planner.TrainingProfile{}, newValidationError("trainingFrequency", "required")
	}
	if *r.TrainingFrequency < MinTrainingFrequency || *r.TrainingFrequency > MaxTrainingFrequency {
		return planner.TrainingProfile{}, newValidationError(
			"trainingFrequency", "must be between %d and %d, got %d", MinTrainingFrequency, MaxTrainingFrequency, *r.TrainingFrequency,
		)
	}

	if r.DedicationLevel == nil {
		return planner.TrainingProfile{}, newValidationError("dedicationLevel", "required")
	}
	dedication := planner.DedicationLevel(*r.DedicationLevel)
	if !dedication.Valid() {
		return planner.TrainingProfile{}, newValidationError("dedicationLevel", "must be A, B or C, got %q", *r.DedicationLevel)
	}

	return planner.TrainingProfile{
		TrainingStatus:      status,
		Sex:                 sex,
		RecoveryFactor:      recovery,
		EnergyBalanceFactor: energy,
		Age:                 *r.Age,
		TrainingFrequency:   *r.TrainingFrequency,
		DedicationLevel:     dedication,
	}, nil
}

// ValidatePlanRequest carries an externally built plan together with the profile it is checked
// against.
type ValidatePlanRequest struct {
	Profile GenerateRequest      `json:"profile"`
	Days    []planner.WorkoutDay `json:"days"`
}

func DecodeValidatePlanRequest(body io.Reader) (ValidatePlanRequest, error) {
	var req ValidatePlanRequest
	if err := decodeJSON(body, &req); err != nil {
		return ValidatePlanRequest{}, err
	}
	return req, nil
}

// ValidationResult is the outcome of checking an external plan. An empty Violations list means
// the plan respects every cap.
type ValidationResult struct {
	Valid             bool                 `json:"valid"`
	Violations        []planner.Violation  `json:"violations"`
	TargetVolumeRange planner.Range        `json:"targetVolumeRange"`
	Report            planner.VolumeReport `json:"volumeReport"`
}

func isValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}
