package apiv1

import (
	"time"

	"impar-backend/controllers"
	"impar-backend/db"
	apimodels "impar-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

type healthApiController struct {
	controllers.BaseAPIController
}

func InitHealthApiRouters(app *fiber.App) {
	controller := healthApiController{}
	app.Get("health", controller.health)
}

// @Summary Проверка состояния сервиса
// @Tags Служебные
// @Description Проверка доступности сервиса и соединения с БД
// @Success 200 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/health [get]
func (c *healthApiController) health(ctx *fiber.Ctx) error {
	if err := db.PingDB(); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "БД недоступна")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(healthStatus(time.Now())))
}

type healthView struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

func healthStatus(now time.Time) healthView {
	return healthView{
		Status:    "ok",
		Timestamp: now.UTC().Format(time.RFC3339),
	}
}
