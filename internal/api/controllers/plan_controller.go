package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"travelsynth/internal/models/request_models"
	"travelsynth/internal/services"
	"travelsynth/pkg/utils"
)

type PlanController struct {
	planService services.PlanServiceInterface
}

func NewPlanController(planService services.PlanServiceInterface) *PlanController {
	return &PlanController{
		planService: planService,
	}
}

// GeneratePlan godoc
// @Summary Generate a travel plan
// @Description Build an AI itinerary from trip parameters and persist it for the authenticated user
// @Tags Plans
// @Accept json
// @Produce json
// @Param request body request_models.GeneratePlanRequest true "Trip parameters"
// @Success 200 {object} response_models.GenerationResult
// @Security BearerAuth
// @Router /plans/generate [post]
func (p *PlanController) GeneratePlan(c *gin.Context) {
	var req request_models.GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userID := c.GetString("user_id")

	// The result is uniform whether the pipeline succeeded or not; the
	// client decides whether to offer a retry.
	result := p.planService.GeneratePlan(c.Request.Context(), userID, req)
	if !result.Success {
		utils.RespondSuccess(c, result, "Plan generation failed")
		return
	}

	utils.RespondSuccess(c, result, "Plan generated successfully")
}

// ListPlans godoc
// @Summary List the authenticated user's plans
// @Tags Plans
// @Produce json
// @Success 200 {array} response_models.PlanSummary
// @Security BearerAuth
// @Router /plans [get]
func (p *PlanController) ListPlans(c *gin.Context) {
	userID := c.GetString("user_id")

	plans, err := p.planService.ListPlansByUserId(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plans, "Plans fetched successfully")
}

// GetPlan godoc
// @Summary Get one plan with its itinerary
// @Tags Plans
// @Produce json
// @Param planId path string true "Plan ID"
// @Success 200 {object} response_models.PlanDetail
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /plans/{planId} [get]
func (p *PlanController) GetPlan(c *gin.Context) {
	planID := c.Param("planId")
	if _, err := uuid.Parse(planID); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid plan ID format")
		return
	}

	userID := c.GetString("user_id")

	plan, err := p.planService.GetPlanById(c.Request.Context(), userID, planID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Plan fetched successfully")
}

// DeletePlan godoc
// @Summary Delete a plan
// @Description Remove a plan owned by the authenticated user. Deleting a plan that is already gone reports success, since the end state matches intent.
// @Tags Plans
// @Produce json
// @Param planId path string true "Plan ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /plans/{planId} [delete]
func (p *PlanController) DeletePlan(c *gin.Context) {
	planID := c.Param("planId")
	if _, err := uuid.Parse(planID); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid plan ID format")
		return
	}

	userID := c.GetString("user_id")

	err := p.planService.DeletePlan(c.Request.Context(), userID, planID)
	if err != nil && !errors.Is(err, utils.ErrPlanNotFound) {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Plan deleted successfully")
}
