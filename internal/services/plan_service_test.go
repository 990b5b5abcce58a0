package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelsynth/internal/models/db_models"
	"travelsynth/internal/models/request_models"
	"travelsynth/internal/models/response_models"
	"travelsynth/internal/memcache"
	"travelsynth/pkg/utils"
)

const twoDayResponse = `{
  "days": [
    {
      "day": 1,
      "title": "Arrival and Local Exploration",
      "activities": [
        {"time": "Afternoon", "description": "Check in and drop bags.", "estimated_cost": "Free"},
        "Evening walk through the old town"
      ],
      "notes": "Grab a transit pass."
    },
    {
      "day": 2,
      "title": "Cultural Highlights",
      "activities": [
        {"time": "9:00 AM", "description": "National Museum visit.", "estimated_cost": "$15", "booking_info": "Tickets at the door."}
      ]
    }
  ]
}`

type stubGenerationClient struct {
	response string
	err      error
	calls    int
}

func (s *stubGenerationClient) GenerateItinerary(ctx context.Context, prompt string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

// stubPlanRepo is an in-memory stand-in for the GORM repository with the
// same ownership filtering semantics.
type stubPlanRepo struct {
	plans     map[string]db_models.TravelPlan
	insertErr error
}

func newStubPlanRepo() *stubPlanRepo {
	return &stubPlanRepo{plans: make(map[string]db_models.TravelPlan)}
}

func (s *stubPlanRepo) InsertPlan(ctx context.Context, plan *db_models.TravelPlan) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	if plan.ID == uuid.Nil {
		plan.ID = uuid.New()
	}
	s.plans[plan.ID.String()] = *plan
	return nil
}

func (s *stubPlanRepo) GetPlanByIdAndUserId(ctx context.Context, planID string, userID string) (*db_models.TravelPlan, error) {
	plan, ok := s.plans[planID]
	if !ok || plan.UserID.String() != userID {
		return nil, nil
	}
	out := plan
	return &out, nil
}

func (s *stubPlanRepo) ListPlansByUserId(ctx context.Context, userID string) ([]db_models.TravelPlan, error) {
	var out []db_models.TravelPlan
	for _, plan := range s.plans {
		if plan.UserID.String() == userID {
			out = append(out, plan)
		}
	}
	return out, nil
}

func (s *stubPlanRepo) DeletePlanByIdAndUserId(ctx context.Context, planID string, userID string) (bool, error) {
	plan, ok := s.plans[planID]
	if !ok || plan.UserID.String() != userID {
		return false, nil
	}
	delete(s.plans, planID)
	return true, nil
}

func newTestPlanService(repo *stubPlanRepo, client *stubGenerationClient) PlanServiceInterface {
	return NewPlanService(repo, NewPromptService(), client, memcache.NewPlanListCache())
}

func validRequest() request_models.GeneratePlanRequest {
	return request_models.GeneratePlanRequest{
		Destination: "Kyoto, Japan",
		Days:        3,
		Interests:   "temples, food",
		Budget:      "Mid-range",
	}
}

func TestGeneratePlanEndToEnd(t *testing.T) {
	repo := newStubPlanRepo()
	client := &stubGenerationClient{response: twoDayResponse}
	svc := newTestPlanService(repo, client)
	userID := uuid.New().String()

	result := svc.GeneratePlan(context.Background(), userID, validRequest())

	require.True(t, result.Success, "unexpected failure: %s", result.Error)
	require.NotEmpty(t, result.PlanID)
	assert.Equal(t, 1, client.calls)

	stored, ok := repo.plans[result.PlanID]
	require.True(t, ok)
	assert.Equal(t, userID, stored.UserID.String())
	assert.Equal(t, 3, stored.Days)
	assert.Equal(t, []string{"temples", "food"}, []string(stored.Interests))
	assert.Equal(t, "Mid-range", stored.Budget)

	var doc response_models.ItineraryDocument
	require.NoError(t, json.Unmarshal(stored.Itinerary, &doc))
	assert.Len(t, doc.Days, 2)
}

func TestGeneratePlanValidationShortCircuits(t *testing.T) {
	repo := newStubPlanRepo()
	client := &stubGenerationClient{response: twoDayResponse}
	svc := newTestPlanService(repo, client)

	cases := []request_models.GeneratePlanRequest{
		{Destination: "", Days: 3, Interests: "temples, food", Budget: "Mid-range"},
		{Destination: "Kyoto", Days: 0, Interests: "temples, food", Budget: "Mid-range"},
		{Destination: "Kyoto", Days: 31, Interests: "temples, food", Budget: "Mid-range"},
		{Destination: "Kyoto", Days: 3, Interests: "", Budget: "Mid-range"},
		{Destination: "Kyoto", Days: 3, Interests: "temples, food", Budget: "extravagant"},
	}

	for _, req := range cases {
		result := svc.GeneratePlan(context.Background(), uuid.New().String(), req)
		assert.False(t, result.Success)
		assert.NotEmpty(t, result.Error)
	}

	// Invalid input never reaches the generation client.
	assert.Equal(t, 0, client.calls)
	assert.Empty(t, repo.plans)
}

func TestGeneratePlanGenerationFailure(t *testing.T) {
	repo := newStubPlanRepo()
	client := &stubGenerationClient{err: utils.ErrGenerationFailed}
	svc := newTestPlanService(repo, client)

	result := svc.GeneratePlan(context.Background(), uuid.New().String(), validRequest())

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "generation failed")
	assert.Empty(t, repo.plans)
}

func TestGeneratePlanMalformedResponse(t *testing.T) {
	repo := newStubPlanRepo()
	svc := newTestPlanService(repo, &stubGenerationClient{response: "not json at all"})

	result := svc.GeneratePlan(context.Background(), uuid.New().String(), validRequest())

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "malformed")
	assert.Empty(t, repo.plans)
}

func TestGeneratePlanStoreWriteFailure(t *testing.T) {
	repo := newStubPlanRepo()
	repo.insertErr = utils.ErrDatabaseError
	svc := newTestPlanService(repo, &stubGenerationClient{response: twoDayResponse})

	result := svc.GeneratePlan(context.Background(), uuid.New().String(), validRequest())

	assert.False(t, result.Success)
	assert.Equal(t, utils.ErrDatabaseError.Error(), result.Error)
}

func TestGetPlanOwnershipIsolation(t *testing.T) {
	repo := newStubPlanRepo()
	svc := newTestPlanService(repo, &stubGenerationClient{response: twoDayResponse})

	ownerID := uuid.New().String()
	otherID := uuid.New().String()

	result := svc.GeneratePlan(context.Background(), ownerID, validRequest())
	require.True(t, result.Success)

	// Someone else's plan must look exactly like a missing plan.
	_, err := svc.GetPlanById(context.Background(), otherID, result.PlanID)
	assert.ErrorIs(t, err, utils.ErrPlanNotFound)

	plan, err := svc.GetPlanById(context.Background(), ownerID, result.PlanID)
	require.NoError(t, err)
	assert.Equal(t, "Kyoto, Japan", plan.Destination)
	assert.Len(t, plan.Itinerary.Days, 2)
}

func TestDeletePlanIsIdempotentForOwner(t *testing.T) {
	repo := newStubPlanRepo()
	svc := newTestPlanService(repo, &stubGenerationClient{response: twoDayResponse})
	userID := uuid.New().String()

	result := svc.GeneratePlan(context.Background(), userID, validRequest())
	require.True(t, result.Success)

	require.NoError(t, svc.DeletePlan(context.Background(), userID, result.PlanID))

	// The row is gone; a repeat delete reports not-found, which the API
	// layer folds into success since the end state matches intent.
	err := svc.DeletePlan(context.Background(), userID, result.PlanID)
	assert.ErrorIs(t, err, utils.ErrPlanNotFound)
}

func TestDeletePlanInvalidatesCachedListing(t *testing.T) {
	repo := newStubPlanRepo()
	svc := newTestPlanService(repo, &stubGenerationClient{response: twoDayResponse})
	userID := uuid.New().String()

	result := svc.GeneratePlan(context.Background(), userID, validRequest())
	require.True(t, result.Success)

	plans, err := svc.ListPlansByUserId(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, plans, 1)

	require.NoError(t, svc.DeletePlan(context.Background(), userID, result.PlanID))

	plans, err = svc.ListPlansByUserId(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, plans)
}
