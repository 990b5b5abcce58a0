package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"travelsynth/internal/models/db_models"
)

// PlanRepository is the only writer of travel_plans. Every read and delete
// filters by both plan id and owner id: a plan owned by someone else looks
// exactly like a plan that does not exist. Row-level rules in the database
// are a second enforcement layer, not a substitute for these filters.
type PlanRepository interface {
	InsertPlan(ctx context.Context, plan *db_models.TravelPlan) error
	GetPlanByIdAndUserId(ctx context.Context, planID string, userID string) (*db_models.TravelPlan, error)
	ListPlansByUserId(ctx context.Context, userID string) ([]db_models.TravelPlan, error)
	DeletePlanByIdAndUserId(ctx context.Context, planID string, userID string) (bool, error)
}

type planRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

func (r *planRepository) InsertPlan(ctx context.Context, plan *db_models.TravelPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *planRepository) GetPlanByIdAndUserId(ctx context.Context, planID string, userID string) (*db_models.TravelPlan, error) {
	var plan db_models.TravelPlan
	err := r.db.WithContext(ctx).
		First(&plan, "id = ? AND user_id = ?", planID, userID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &plan, nil
}

func (r *planRepository) ListPlansByUserId(ctx context.Context, userID string) ([]db_models.TravelPlan, error) {
	var plans []db_models.TravelPlan
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&plans).Error

	if err != nil {
		return nil, err
	}

	return plans, nil
}

// DeletePlanByIdAndUserId confirms the row exists and belongs to the caller
// before deleting it. The delete itself is filtered by both identifiers
// again, so a concurrent delete of the same plan simply reports not-found.
// Returns (false, nil) when no owned row exists.
func (r *planRepository) DeletePlanByIdAndUserId(ctx context.Context, planID string, userID string) (bool, error) {
	var plan db_models.TravelPlan
	err := r.db.WithContext(ctx).
		Select("id").
		First(&plan, "id = ? AND user_id = ?", planID, userID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", planID, userID).
		Delete(&db_models.TravelPlan{})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}
