package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/2beens/volumeplanner/internal/planner"
	"github.com/2beens/volumeplanner/internal/workoutplan"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func referenceProfile() planner.TrainingProfile {
	return planner.TrainingProfile{
		TrainingStatus:      planner.Intermediate,
		Sex:                 planner.Female,
		RecoveryFactor:      1.0,
		EnergyBalanceFactor: 1.0,
		Age:                 34,
		TrainingFrequency:   4,
		DedicationLevel:     planner.DedicationB,
	}
}

func (s *IntegrationTestSuite) doJSON(ctx context.Context, method, path string, body any) (int, []byte) {
	t := s.T()

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, fmt.Sprintf("%s%s", serverEndpoint, path), reqBody)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, respBytes
}

// TestPlansGenerate runs every generate call of the suite, in order, so the rate limit budget
// is spent predictably.
func (s *IntegrationTestSuite) TestPlansGenerate() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	t := s.T()
	profile := referenceProfile()

	// 1: computed, stored in both cache layers
	status, body := s.doJSON(ctx, http.MethodPost, "/plans/generate", workoutplan.NewGenerateRequest(profile))
	require.Equal(t, http.StatusOK, status, string(body))

	var resp workoutplan.PlanResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	expected := planner.Generate(profile)
	assert.Equal(t, expected.TargetVolumeRange, resp.TargetVolumeRange)
	assert.Equal(t, expected.Report, resp.Report)
	assert.Len(t, resp.Days, len(expected.Days))
	assert.Equal(t, "Intermediate", resp.ProfileSummary.TrainingStatus)

	exists, err := s.redisClient.Exists(ctx, workoutplan.PlanCacheKey(profile)).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), exists)

	// 2: rejected at the boundary
	invalid := workoutplan.NewGenerateRequest(profile)
	age := 120
	invalid.Age = &age
	status, body = s.doJSON(ctx, http.MethodPost, "/plans/generate", invalid)
	require.Equal(t, http.StatusBadRequest, status, string(body))

	var vErr workoutplan.ValidationError
	require.NoError(t, json.Unmarshal(body, &vErr))
	assert.Equal(t, "age", vErr.Field)

	// 3: served from cache, same plan
	status, body = s.doJSON(ctx, http.MethodPost, "/plans/generate", workoutplan.NewGenerateRequest(profile))
	require.Equal(t, http.StatusOK, status, string(body))
	var cached workoutplan.PlanResponse
	require.NoError(t, json.Unmarshal(body, &cached))
	assert.Equal(t, resp.Report, cached.Report)

	// 4: over the per minute budget
	status, _ = s.doJSON(ctx, http.MethodPost, "/plans/generate", workoutplan.NewGenerateRequest(profile))
	assert.Equal(t, http.StatusTooManyRequests, status)
}

func (s *IntegrationTestSuite) TestPlansValidate() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	t := s.T()
	profile := referenceProfile()
	plan := planner.Generate(profile)

	status, body := s.doJSON(ctx, http.MethodPost, "/plans/validate", workoutplan.ValidatePlanRequest{
		Profile: workoutplan.NewGenerateRequest(profile),
		Days:    plan.Days,
	})
	require.Equal(t, http.StatusOK, status, string(body))

	var result workoutplan.ValidationResult
	require.NoError(t, json.Unmarshal(body, &result))
	assert.True(t, result.Valid)
	assert.Empty(t, result.Violations)
	assert.Equal(t, plan.Report, result.Report)

	// more sessions than the profile trains
	overbooked := append([]planner.WorkoutDay{}, plan.Days...)
	overbooked[0].FrequencyPerWeek += profile.TrainingFrequency
	status, body = s.doJSON(ctx, http.MethodPost, "/plans/validate", workoutplan.ValidatePlanRequest{
		Profile: workoutplan.NewGenerateRequest(profile),
		Days:    overbooked,
	})
	require.Equal(t, http.StatusOK, status, string(body))
	require.NoError(t, json.Unmarshal(body, &result))
	assert.False(t, result.Valid)
	assert.NotEmpty(t, result.Violations)
}

func (s *IntegrationTestSuite) TestPlansCatalogAndIntensity() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	t := s.T()

	status, body := s.doJSON(ctx, http.MethodGet, "/plans/exercises", nil)
	require.Equal(t, http.StatusOK, status, string(body))
	var exercises workoutplan.ExercisesResponse
	require.NoError(t, json.Unmarshal(body, &exercises))
	assert.Equal(t, planner.DefaultCatalog().Len(), exercises.Count)

	status, body = s.doJSON(ctx, http.MethodGet, "/plans/intensity/advanced", nil)
	require.Equal(t, http.StatusOK, status, string(body))
	var intensity workoutplan.IntensityResponse
	require.NoError(t, json.Unmarshal(body, &intensity))
	expected, ok := planner.IntensityGuidelineFor(planner.Advanced)
	require.True(t, ok)
	assert.Equal(t, expected, intensity.IntensityGuideline)

	status, _ = s.doJSON(ctx, http.MethodGet, "/plans/intensity/0", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}
