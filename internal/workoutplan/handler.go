package workoutplan

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/2beens/volumeplanner/internal/middleware"
	"github.com/2beens/volumeplanner/internal/planner"
	"github.com/2beens/volumeplanner/internal/telemetry/metrics"
	"github.com/2beens/volumeplanner/internal/telemetry/tracing"
	"github.com/2beens/volumeplanner/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const maxRequestBodyBytes = 1 << 20

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workoutplan_test

type planService interface {
	Generate(ctx context.Context, req GenerateRequest) (*PlanResponse, error)
	Validate(ctx context.Context, req ValidatePlanRequest) (*ValidationResult, error)
	Exercises() []planner.ExerciseDefinition
	IntensityGuideline(status string) (*IntensityResponse, error)
}

type Handler struct {
	service planService
}

func NewHandler(service planService) *Handler {
	return &Handler{
		service: service,
	}
}

type ExercisesResponse struct {
	Count     int                          `json:"count"`
	Exercises []planner.ExerciseDefinition `json:"exercises"`
}

// SetupRoutes registers the plan endpoints. Plan generation is rate limited per client when a
// limiter is given.
func (h *Handler) SetupRoutes(
	router *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	allowedPerMin int,
	metricsManager *metrics.Manager,
) {
	generateRouter := router.Path("/plans/generate").Subrouter()
	generateRouter.
		Methods("POST", "OPTIONS").
		HandlerFunc(h.HandleGenerate).
		Name("plans-generate")
	if rateLimiter != nil && allowedPerMin > 0 {
		generateRouter.Use(middleware.RateLimit(rateLimiter, "plans-generate", allowedPerMin, metricsManager))
	}

	router.HandleFunc("/plans/validate", h.HandleValidate).Methods("POST", "OPTIONS").Name("plans-validate")
	router.HandleFunc("/plans/exercises", h.HandleExercises).Methods("GET", "OPTIONS").Name("plans-exercises")
	router.HandleFunc("/plans/intensity/{status}", h.HandleIntensity).Methods("GET", "OPTIONS").Name("plans-intensity")
}

func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.generate")
	defer span.End()

	if r.Method == http.MethodOptions {
		return
	}
	if !isJSON(r) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	req, err := DecodeGenerateRequest(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	if err != nil {
		writeRequestError(w, "generate plan", err)
		return
	}

	plan, err := h.service.Generate(ctx, req)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		writeRequestError(w, "generate plan", err)
		return
	}

	span.SetAttributes(attribute.Int("plan.days", len(plan.Days)))
	planJson, err := json.Marshal(plan)
	if err != nil {
		log.Errorf("generate plan, marshal response: %s", err)
		http.Error(w, "generate plan failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, planJson, http.StatusOK)
}

func (h *Handler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.validate")
	defer span.End()

	if r.Method == http.MethodOptions {
		return
	}
	if !isJSON(r) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	req, err := DecodeValidatePlanRequest(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	if err != nil {
		writeRequestError(w, "validate plan", err)
		return
	}

	result, err := h.service.Validate(ctx, req)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		writeRequestError(w, "validate plan", err)
		return
	}

	span.SetAttributes(attribute.Bool("plan.valid", result.Valid))
	pkg.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) HandleExercises(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.exercises")
	defer span.End()

	if r.Method == http.MethodOptions {
		return
	}

	exercises := h.service.Exercises()
	pkg.WriteJSON(w, ExercisesResponse{
		Count:     len(exercises),
		Exercises: exercises,
	}, http.StatusOK)
}

func (h *Handler) HandleIntensity(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.intensity")
	defer span.End()

	if r.Method == http.MethodOptions {
		return
	}

	status := mux.Vars(r)["status"]
	intensity, err := h.service.IntensityGuideline(status)
	if err != nil {
		writeRequestError(w, "intensity guideline", err)
		return
	}
	pkg.WriteJSON(w, intensity, http.StatusOK)
}

func isJSON(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), pkg.ContentType.JSON)
}

func writeRequestError(w http.ResponseWriter, op string, err error) {
	if vErr, ok := isValidationError(err); ok {
		log.Debugf("%s: invalid request: %s", op, vErr)
		pkg.WriteJSON(w, vErr, http.StatusBadRequest)
		return
	}
	log.Errorf("%s: %s", op, err)
	http.Error(w, op+" failed", http.StatusInternalServerError)
}
