package publicapiv1

import (
	"impar-backend/controllers"
	"impar-backend/lib/analytics"
	responsehandler "impar-backend/lib/response"
	"impar-backend/lib/survey"
	"impar-backend/middleware"
	apimodels "impar-backend/models/api"
	responseapimodels "impar-backend/models/api/response"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type publicSurveyApiController struct {
	controllers.BaseAPIController
}

func InitPublicSurveyApiRouters(app *fiber.App) {
	controller := publicSurveyApiController{}
	app.Route("public/surveys", func(router fiber.Router) {
		// ответы принимаются и от анонимов, и от вошедших пользователей
		router.Use(middleware.AuthorizationOptional())
		router.Get("", controller.listSurveys)
		router.Get(":id", controller.getSurvey)
		router.Post(":id/responses", controller.submitResponse)
		router.Get(":id/results", controller.getResults)
	})
}

// @Summary Список опубликованных опросов
// @Tags Публичные опросы
// @Description Список опубликованных опросов, без авторизации
// @Param   featured   			query   bool  	false  	"только отмеченные"
// @Success 200 {object} apimodels.Response{data=[]surveyapimodels.SurveyView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/surveys [get]
func (c *publicSurveyApiController) listSurveys(ctx *fiber.Ctx) error {
	var featured *bool
	if ctx.Query("featured") != "" {
		value := ctx.QueryBool("featured")
		featured = &value
	}
	resp, err := survey.Instance.ListPublished(featured, middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка опросов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Получение опубликованного опроса
// @Tags Публичные опросы
// @Description Получение опубликованного опроса, без авторизации
// @Param   id          		path    string  true    "Идентификатор опроса"
// @Success 200 {object} apimodels.Response{data=surveyapimodels.SurveyView}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/surveys/{id} [get]
func (c *publicSurveyApiController) getSurvey(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := survey.Instance.GetPublished(id, middleware.GetUserID(ctx))
	if err != nil {
		return c.sendSurveyError(ctx, err, "Ошибка получения опроса")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Отправка ответов
// @Tags Публичные опросы
// @Description Отправка ответов на опрос, авторизация не обязательна.
// @Description При ошибках проверки возвращается их полный список.
// @Param   id          		path    string  true    "Идентификатор опроса"
// @Param	body				body		responseapimodels.SubmitRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=responseapimodels.ResponseView}
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 422 {object} apimodels.ValidationResponse
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/surveys/{id}/responses [post]
func (c *publicSurveyApiController) submitResponse(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload responseapimodels.SubmitRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var userID *string
	if viewerID := middleware.GetUserID(ctx); viewerID != "" {
		userID = &viewerID
	}
	resp, validationErrs, err := responsehandler.Instance.Submit(id, userID, payload)
	if err != nil {
		if errors.Is(err, responsehandler.ErrAlreadyResponded) {
			return ctx.Status(fiber.StatusConflict).JSON(apimodels.NewError(err.Error()))
		}
		return c.sendSurveyError(ctx, err, "Ошибка сохранения ответа")
	}
	if len(validationErrs) != 0 {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(apimodels.NewValidationResponse(validationErrs))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Результаты опроса
// @Tags Публичные опросы
// @Description Сводные результаты опубликованного опроса.
// @Description Свободные текстовые ответы отдаются только количеством.
// @Param   id          		path    string  true    "Идентификатор опроса"
// @Success 200 {object} apimodels.Response{data=analyticsapimodels.SurveySummary}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/surveys/{id}/results [get]
func (c *publicSurveyApiController) getResults(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := analytics.Instance.PublicResults(id)
	if err != nil {
		return c.sendSurveyError(ctx, err, "Ошибка получения результатов опроса")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

func (c *publicSurveyApiController) sendSurveyError(ctx *fiber.Ctx, err error, hMsg string) error {
	if errors.Is(err, survey.ErrNotFound) {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	}
	return c.SendError(ctx, c.GetLogger(ctx), err, hMsg)
}
