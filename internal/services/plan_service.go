package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"travelsynth/internal/models/db_models"
	"travelsynth/internal/models/request_models"
	"travelsynth/internal/models/response_models"
	"travelsynth/internal/repositories"
	"travelsynth/internal/memcache"
	"travelsynth/pkg/utils"
)

const planListCacheTTL = 5 * time.Minute

type PlanServiceInterface interface {
	GeneratePlan(ctx context.Context, userID string, request request_models.GeneratePlanRequest) response_models.GenerationResult
	GetPlanById(ctx context.Context, userID string, planID string) (*response_models.PlanDetail, error)
	ListPlansByUserId(ctx context.Context, userID string) ([]response_models.PlanSummary, error)
	DeletePlan(ctx context.Context, userID string, planID string) error
}

type PlanService struct {
	planRepo      repositories.PlanRepository
	promptService PromptServiceInterface
	aiClient      utils.GenerationClientInterface
	listCache     memcache.PlanListCache
}

func NewPlanService(
	planRepo repositories.PlanRepository,
	promptService PromptServiceInterface,
	aiClient utils.GenerationClientInterface,
	listCache memcache.PlanListCache,
) PlanServiceInterface {
	return &PlanService{
		planRepo:      planRepo,
		promptService: promptService,
		aiClient:      aiClient,
		listCache:     listCache,
	}
}

// GeneratePlan runs the full pipeline: validate, build prompt, call the
// generation service, normalize the response, persist. Stages are strictly
// sequential, nothing is retried, and the first failure short-circuits into
// a uniform result. Retry is the user's call, not ours.
func (p *PlanService) GeneratePlan(ctx context.Context, userID string, request request_models.GeneratePlanRequest) response_models.GenerationResult {
	ownerID, err := uuid.Parse(userID)
	if err != nil {
		return failureResult(utils.ErrInvalidInput)
	}

	if err := request.Validate(); err != nil {
		return failureResult(err)
	}

	prompt := p.promptService.BuildItineraryPrompt(request)

	rawResponse, err := p.aiClient.GenerateItinerary(ctx, prompt)
	if err != nil {
		log.Printf("AI generation failed: %v", err)
		return failureResult(err)
	}

	doc, err := NormalizeItinerary(rawResponse)
	if err != nil {
		log.Printf("AI response rejected: %v", err)
		return failureResult(err)
	}

	itineraryJSON, err := json.Marshal(doc)
	if err != nil {
		return failureResult(utils.ErrInvalidShape)
	}

	plan := db_models.TravelPlan{
		UserID:      ownerID,
		Destination: request.Destination,
		Days:        request.Days,
		Interests:   request.InterestTags(),
		Budget:      request.NormalizedBudget(),
		Itinerary:   datatypes.JSON(itineraryJSON),
	}
	if err := p.planRepo.InsertPlan(ctx, &plan); err != nil {
		log.Printf("Plan insert failed: %v", err)
		return failureResult(utils.ErrDatabaseError)
	}

	p.listCache.Invalidate(userID)

	return response_models.GenerationResult{
		Success: true,
		PlanID:  plan.ID.String(),
	}
}

func (p *PlanService) GetPlanById(ctx context.Context, userID string, planID string) (*response_models.PlanDetail, error) {
	plan, err := p.planRepo.GetPlanByIdAndUserId(ctx, planID, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		// Covers both a missing row and someone else's plan; the two cases
		// must stay indistinguishable to the caller.
		return nil, utils.ErrPlanNotFound
	}

	var doc response_models.ItineraryDocument
	if err := json.Unmarshal(plan.Itinerary, &doc); err != nil {
		log.Printf("Stored itinerary for plan %s is unreadable: %v", plan.ID, err)
		return nil, utils.ErrInvalidShape
	}

	return &response_models.PlanDetail{
		PlanSummary: buildPlanSummary(plan),
		Itinerary:   doc,
	}, nil
}

func (p *PlanService) ListPlansByUserId(ctx context.Context, userID string) ([]response_models.PlanSummary, error) {
	if cached, ok := p.listCache.Get(userID); ok {
		return cached, nil
	}

	plans, err := p.planRepo.ListPlansByUserId(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.PlanSummary, 0, len(plans))
	for i := range plans {
		out = append(out, buildPlanSummary(&plans[i]))
	}

	p.listCache.Set(userID, out, planListCacheTTL)

	return out, nil
}

func (p *PlanService) DeletePlan(ctx context.Context, userID string, planID string) error {
	deleted, err := p.planRepo.DeletePlanByIdAndUserId(ctx, planID, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !deleted {
		return utils.ErrPlanNotFound
	}

	p.listCache.Invalidate(userID)

	return nil
}

func buildPlanSummary(plan *db_models.TravelPlan) response_models.PlanSummary {
	return response_models.PlanSummary{
		ID:          plan.ID.String(),
		Destination: plan.Destination,
		Days:        plan.Days,
		Interests:   plan.Interests,
		Budget:      plan.Budget,
		CreatedAt:   plan.CreatedAt,
	}
}

func failureResult(err error) response_models.GenerationResult {
	return response_models.GenerationResult{
		Success: false,
		Error:   err.Error(),
	}
}
