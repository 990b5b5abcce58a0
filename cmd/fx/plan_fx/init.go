package plan_fx

import (
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"travelsynth/internal/repositories"
	"travelsynth/internal/services"
	"travelsynth/internal/memcache"
	"travelsynth/pkg/utils"
)

var Module = fx.Provide(
	providePlanRepo,
	providePlanListCache,
	providePromptService,
	provideGenerationClient,
	providePlanService,
)

func providePlanRepo(db *gorm.DB) repositories.PlanRepository {
	return repositories.NewPlanRepository(db)
}

func providePlanListCache() memcache.PlanListCache {
	return memcache.NewPlanListCache()
}

func providePromptService() services.PromptServiceInterface {
	return services.NewPromptService()
}

// provideGenerationClient fails app startup when the provider credential is
// missing, so a misconfigured deployment never reaches the first request.
func provideGenerationClient() (utils.GenerationClientInterface, error) {
	provider := os.Getenv("AI_PROVIDER")

	apiKey := os.Getenv("GEMINI_API_KEY")
	if provider == "openai" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}

	return utils.NewGenerationClient(provider, apiKey, os.Getenv("AI_MODEL"))
}

func providePlanService(
	planRepo repositories.PlanRepository,
	promptService services.PromptServiceInterface,
	aiClient utils.GenerationClientInterface,
	listCache memcache.PlanListCache,
) services.PlanServiceInterface {
	return services.NewPlanService(planRepo, promptService, aiClient, listCache)
}
