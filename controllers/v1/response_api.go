package apiv1

import (
	"impar-backend/controllers"
	responsehandler "impar-backend/lib/response"
	"impar-backend/middleware"
	apimodels "impar-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

type responseApiController struct {
	controllers.BaseAPIController
}

func InitResponseApiRouters(app *fiber.App) {
	controller := responseApiController{}
	app.Route("responses", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("my", controller.myResponses)
	})
}

// @Summary Мои ответы
// @Tags Ответы
// @Description Ответы текущего пользователя вместе с глобальными результатами опросов
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]responseapimodels.MyResponseView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/responses/my [get]
func (c *responseApiController) myResponses(ctx *fiber.Ctx) error {
	resp, err := responsehandler.Instance.MyResponses(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка ответов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
