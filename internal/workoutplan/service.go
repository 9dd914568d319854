package workoutplan

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/volumeplanner/internal/planner"
	"github.com/2beens/volumeplanner/internal/telemetry/metrics"
	"github.com/2beens/volumeplanner/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const planCacheKeyPrefix = "plan::v1::"

// PlanResponse is the generated plan as served over HTTP and MCP.
type PlanResponse struct {
	planner.Plan
	ProfileSummary planner.ProfileSummary `json:"profileSummary"`
}

// Service validates requests, runs the planner and caches its output in layers, fastest first.
type Service struct {
	planner        *planner.Planner
	caches         []planCache
	metricsManager *metrics.Manager
}

func NewService(p *planner.Planner, metricsManager *metrics.Manager, caches ...planCache) *Service {
	return &Service{
		planner:        p,
		caches:         caches,
		metricsManager: metricsManager,
	}
}

// Generate validates the request and returns the plan for it. Only *ValidationError is ever
// returned.
func (s *Service) Generate(ctx context.Context, req GenerateRequest) (*PlanResponse, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workoutplan.generate")
	defer span.End()

	profile, err := req.Profile()
	if err != nil {
		s.recordInvalid(err)
		return nil, err
	}

	return s.GenerateForProfile(ctx, profile), nil
}

// GenerateForProfile expects an already validated profile. Cache failures are logged and
// otherwise ignored, the plan is computed instead.
func (s *Service) GenerateForProfile(ctx context.Context, profile planner.TrainingProfile) *PlanResponse {
	key := PlanCacheKey(profile)

	for i, cache := range s.caches {
		plan, err := cache.Get(ctx, key)
		if err == nil {
			s.metricsManager.CounterPlanCacheHits.WithLabelValues(cache.Layer()).Inc()
			s.fill(ctx, s.caches[:i], key, plan)
			return plan
		}
		if !errors.Is(err, ErrCacheMiss) {
			log.Warnf("plan cache [%s] get %s: %s", cache.Layer(), key, err)
		}
		s.metricsManager.CounterPlanCacheMisses.WithLabelValues(cache.Layer()).Inc()
	}

	plan := s.compute(ctx, profile)
	s.fill(ctx, s.caches, key, plan)
	return plan
}

func (s *Service) compute(ctx context.Context, profile planner.TrainingProfile) *PlanResponse {
	_, span := tracing.GlobalTracer.Start(ctx, "service.workoutplan.compute")
	defer span.End()

	begin := time.Now()
	plan := s.planner.Generate(profile)
	s.metricsManager.HistogramPlanGeneration.Observe(time.Since(begin).Seconds())

	s.metricsManager.CounterPlansGenerated.WithLabelValues(string(profile.DedicationLevel)).Inc()
	s.metricsManager.HistogramUnderTargetMuscles.Observe(float64(len(plan.Report.UnderTarget)))
	for _, d := range plan.Days {
		s.metricsManager.HistogramSessionSets.Observe(float64(d.TotalSets()))
	}

	span.SetAttributes(
		attribute.Int("plan.days", len(plan.Days)),
		attribute.Int("plan.under_target", len(plan.Report.UnderTarget)),
		attribute.Float64("plan.optimal_sets", plan.EstimatedOptimalSets),
	)
	log.Tracef("computed plan for %s: %d days, %d muscles under target",
		profile.DedicationLevel, len(plan.Days), len(plan.Report.UnderTarget))

	return &PlanResponse{
		Plan:           plan,
		ProfileSummary: planner.Summarize(profile),
	}
}

func (s *Service) fill(ctx context.Context, caches []planCache, key string, plan *PlanResponse) {
	for _, cache := range caches {
		if err := cache.Set(ctx, key, plan); err != nil {
			log.Warnf("plan cache [%s] set %s: %s", cache.Layer(), key, err)
		}
	}
}

// Validate checks an externally built plan against the profile it is meant for.
func (s *Service) Validate(ctx context.Context, req ValidatePlanRequest) (*ValidationResult, error) {
	_, span := tracing.GlobalTracer.Start(ctx, "service.workoutplan.validate")
	defer span.End()

	profile, err := req.Profile.Profile()
	if err != nil {
		s.recordInvalid(err)
		return nil, err
	}
	if req.Days == nil {
		err := newValidationError("days", "required")
		s.recordInvalid(err)
		return nil, err
	}

	review := s.planner.Review(profile, req.Days)
	span.SetAttributes(attribute.Int("plan.violations", len(review.Violations)))

	return &ValidationResult{
		Valid:             review.Valid(),
		Violations:        review.Violations,
		TargetVolumeRange: review.TargetVolumeRange,
		Report:            review.Report,
	}, nil
}

func (s *Service) Exercises() []planner.ExerciseDefinition {
	return s.planner.Catalog().Exercises()
}

type IntensityResponse struct {
	TrainingStatus string `json:"trainingStatus"`
	planner.IntensityGuideline
}

// IntensityGuideline parses a training status given as its number (1..3) or its name.
func (s *Service) IntensityGuideline(status string) (*IntensityResponse, error) {
	ts, err := ParseTrainingStatus(status)
	if err != nil {
		s.recordInvalid(err)
		return nil, err
	}
	guideline, _ := planner.IntensityGuidelineFor(ts)
	return &IntensityResponse{
		TrainingStatus:     ts.String(),
		IntensityGuideline: guideline,
	}, nil
}

func ParseTrainingStatus(status string) (planner.TrainingStatus, error) {
	if n, err := strconv.Atoi(status); err == nil {
		ts := planner.TrainingStatus(n)
		if !ts.Valid() {
			return 0, newValidationError("trainingStatus", "must be 1, 2 or 3, got %d", n)
		}
		return ts, nil
	}
	for _, ts := range []planner.TrainingStatus{planner.Novice, planner.Intermediate, planner.Advanced} {
		if strings.EqualFold(strings.TrimSpace(status), ts.String()) {
			return ts, nil
		}
	}
	return 0, newValidationError("trainingStatus", "unknown training status %q", status)
}

func (s *Service) recordInvalid(err error) {
	if vErr, ok := isValidationError(err); ok {
		s.metricsManager.CounterInvalidRequests.WithLabelValues(vErr.Field).Inc()
	}
}

// PlanCacheKey identifies a profile. Floats are formatted in their shortest exact form so
// that distinct profiles never share a key.
func PlanCacheKey(p planner.TrainingProfile) string {
	return fmt.Sprintf("%s%d::%d::%s::%s::%d::%d::%s",
		planCacheKeyPrefix,
		p.TrainingStatus,
		p.Sex,
		strconv.FormatFloat(p.RecoveryFactor, 'g', -1, 64),
		strconv.FormatFloat(p.EnergyBalanceFactor, 'g', -1, 64),
		p.Age,
		p.TrainingFrequency,
		p.DedicationLevel,
	)
}
