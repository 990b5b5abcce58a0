package main

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"travelsynth/cmd/fx/account_fx"
	"travelsynth/cmd/fx/controllers_fx"
	"travelsynth/cmd/fx/db_fx"
	"travelsynth/cmd/fx/plan_fx"
	"travelsynth/internal/api/controllers"
	"travelsynth/internal/infra"
	"travelsynth/pkg/middleware"
	"travelsynth/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		db_fx.Module,
		account_fx.Module,
		plan_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB, aiClient utils.GenerationClientInterface) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			closeGenerationClient(aiClient)
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

// closeGenerationClient releases the AI client's connection when the
// provider holds one. Clients without a Close are left alone.
func closeGenerationClient(aiClient utils.GenerationClientInterface) {
	if closer, ok := aiClient.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			log.Printf("Failed to close generation client: %v", err)
		}
	}
}

func ProvideRouter(
	accountController *controllers.AccountController,
	planController *controllers.PlanController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, accountController, planController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	planController *controllers.PlanController) {

	accountsGroup := r.Group("/accounts")
	accountsGroup.POST("/register", accountController.Register)
	accountsGroup.POST("/login", accountController.Login)

	plansGroup := r.Group("/plans")
	plansGroup.Use(middleware.JWTAuthMiddleware())
	plansGroup.POST("/generate", planController.GeneratePlan)
	plansGroup.GET("", planController.ListPlans)
	plansGroup.GET("/:planId", planController.GetPlan)
	plansGroup.DELETE("/:planId", planController.DeletePlan)
}
