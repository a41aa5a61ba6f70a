package apiv1

import (
	"impar-backend/controllers"
	gpthandler "impar-backend/lib/gpt"
	"impar-backend/middleware"
	apimodels "impar-backend/models/api"
	surveyapimodels "impar-backend/models/api/survey"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type gptApiController struct {
	controllers.BaseAPIController
}

func InitGptApiRouters(app *fiber.App) {
	controller := gptApiController{}
	app.Route("gpt", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Use(middleware.StaffRequired())
		router.Post("suggest-questions", controller.suggestQuestions)
	})
}

// @Summary Генерация вопросов
// @Tags YandexGPT
// @Description Генерация черновика вопросов по теме опроса через YandexGPT
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		surveyapimodels.SuggestQuestionsRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=surveyapimodels.SuggestQuestionsResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 503 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/gpt/suggest-questions [post]
func (c *gptApiController) suggestQuestions(ctx *fiber.Ctx) error {
	var payload surveyapimodels.SuggestQuestionsRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := gpthandler.Instance.SuggestQuestions(payload.Topic)
	if err != nil {
		if errors.Is(err, gpthandler.ErrNotConfigured) {
			return ctx.Status(fiber.StatusServiceUnavailable).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка генерации вопросов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
