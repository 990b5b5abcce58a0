package controllers_fx

import (
	"go.uber.org/fx"

	"travelsynth/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewPlanController))
