package apiv1

import (
	"impar-backend/controllers"
	"impar-backend/lib/analytics"
	responsehandler "impar-backend/lib/response"
	"impar-backend/lib/survey"
	surveystore "impar-backend/lib/survey/store"
	"impar-backend/middleware"
	"impar-backend/models"
	apimodels "impar-backend/models/api"
	surveyapimodels "impar-backend/models/api/survey"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type surveyApiController struct {
	controllers.BaseAPIController
}

func InitSurveyApiRouters(app *fiber.App) {
	controller := surveyApiController{}
	app.Route("surveys", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("my", controller.mySurveys)
		router.Get(":id", controller.getSurvey)
		router.Put(":id", controller.updateSurvey)
		router.Delete(":id", controller.deleteSurvey)
		router.Post(":id/publish", controller.publishSurvey)
		router.Post(":id/unpublish", controller.unpublishSurvey)
		router.Get(":id/responses", controller.listResponses)
		router.Get(":id/analytics", controller.getAnalytics)
		router.Get(":id/export/xlsx", controller.exportXlsx)
		router.Get(":id/export/pdf", controller.exportPdf)
		router.Use(middleware.StaffRequired())
		router.Get("", controller.listSurveys)
		router.Post("", controller.createSurvey)
		router.Post(":id/toggle-featured", controller.toggleFeatured)
	})
}

// @Summary Список опросов
// @Tags Опросы
// @Description Список всех опросов с фильтрами, доступен персоналу
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   featured   			query   bool  	false  	"только отмеченные"
// @Param   published   		query   bool    false  	"только опубликованные"
// @Param   owner_id   			query   string  false  	"фильтр по автору"
// @Success 200 {object} apimodels.Response{data=[]surveyapimodels.SurveyView}
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/surveys [get]
func (c *surveyApiController) listSurveys(ctx *fiber.Ctx) error {
	var filter surveyapimodels.SurveyFilter
	if err := ctx.QueryParser(&filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не удалось разобрать параметры фильтра"))
	}
	resp, err := survey.Instance.List(surveystore.Filter{
		Featured:  filter.Featured,
		Published: filter.Published,
		OwnerID:   filter.OwnerID,
	}, middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка опросов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Создание опроса
// @Tags Опросы
// @Description Создание опроса, доступно персоналу
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		surveyapimodels.SurveyCreateRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=surveyapimodels.SurveyView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/surveys [post]
func (c *surveyApiController) createSurvey(ctx *fiber.Ctx) error {
	var payload surveyapimodels.SurveyCreateRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := survey.Instance.Create(middleware.GetUserID(ctx), payload)
	if err != nil {
		var cErr *models.ConstructionError
		if errors.As(err, &cErr) {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(cErr.Error()))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания опроса")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Мои опросы
// @Tags Опросы
// @Description Список опросов текущего пользователя
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]surveyapimodels.SurveyView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/surveys/my [get]
func (c *surveyApiController) mySurveys(ctx *fiber.Ctx) error {
	resp, err := survey.Instance.My(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка опросов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Получение опроса
// @Tags Опросы
// @Description Получение опроса по идентификатору
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "Идентификатор опроса"
// @Success 200 {object} apimodels.Response{data=surveyapimodels.SurveyView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/surveys/{id} [get]
func (c *surveyApiController) getSurvey(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := survey.Instance.Get(id, middleware.GetUserID(ctx))
	if err != nil {
		return c.sendSurveyError(ctx, err, "Ошибка получения опроса")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Обновление опроса
// @Tags Опросы
// @Description Обновление опроса, доступно автору и персоналу
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "Идентификатор опроса"
// @Param	body				body		surveyapimodels.SurveyUpdateRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=surveyapimodels.SurveyView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/surveys/{id} [put]
func (c *surveyApiController) updateSurvey(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload surveyapimodels.SurveyUpdateRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := survey.Instance.Update(id, middleware.GetUserID(ctx), middleware.GetUserRole(ctx), payload)
	if err != nil {
		var cErr *models.ConstructionError
		if errors.As(err, &cErr) {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(cErr.Error()))
		}
		return c.sendSurveyError(ctx, err, "Ошибка обновления опроса")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Удаление опроса
// @Tags Опросы
// @Description Удаление опроса вместе со всеми ответами
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "Идентификатор опроса"
// @Success 200 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/surveys/{id} [delete]
func (c *surveyApiController) deleteSurvey(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = survey.Instance.Delete(id, middleware.GetUserID(ctx), middleware.GetUserRole(ctx)); err != nil {
		return c.sendSurveyError(ctx, err, "Ошибка удаления опроса")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Публикация опроса
// @Tags Опросы
// @Description Публикация опроса, после неё опрос принимает ответы
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "Идентификатор опроса"
// @Success 200 {object} apimodels.Response{data=surveyapimodels.SurveyView}
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/surveys/{id}/publish [post]
func (c *surveyApiController) publishSurvey(ctx *fiber.Ctx) error {
	return c.setPublished(ctx, true, "Ошибка публикации опроса")
}

// @Summary Снятие опроса с публикации
// @Tags Опросы
// @Description Снятие опроса с публикации, опрос перестаёт принимать ответы
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "Идентификатор опроса"
// @Success 200 {object} apimodels.Response{data=surveyapimodels.SurveyView}
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/surveys/{id}/unpublish [post]
func (c *surveyApiController) unpublishSurvey(ctx *fiber.Ctx) error {
	return c.setPublished(ctx, false, "Ошибка снятия опроса с публикации")
}

func (c *surveyApiController) setPublished(ctx *fiber.Ctx, published bool, hMsg string) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := survey.Instance.SetPublished(id, middleware.GetUserID(ctx), middleware.GetUserRole(ctx), published)
	if err != nil {
		return c.sendSurveyError(ctx, err, hMsg)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Отметка опроса
// @Tags Опросы
// @Description Переключение признака отмеченного опроса, доступно персоналу
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "Идентификатор опроса"
// @Success 200 {object} apimodels.Response{data=surveyapimodels.SurveyView}
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/surveys/{id}/toggle-featured [post]
func (c *surveyApiController) toggleFeatured(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := survey.Instance.ToggleFeatured(id)
	if err != nil {
		return c.sendSurveyError(ctx, err, "Ошибка отметки опроса")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Ответы на опрос
// @Tags Опросы
// @Description Список ответов на опрос, доступен автору и персоналу
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "Идентификатор опроса"
// @Success 200 {object} apimodels.Response{data=[]responseapimodels.ResponseView}
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/surveys/{id}/responses [get]
func (c *surveyApiController) listResponses(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := responsehandler.Instance.ListBySurvey(id, middleware.GetUserID(ctx), middleware.GetUserRole(ctx))
	if err != nil {
		return c.sendSurveyError(ctx, err, "Ошибка получения ответов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Аналитика опроса
// @Tags Опросы
// @Description Повопросная сводка ответов, доступна автору и персоналу
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "Идентификатор опроса"
// @Success 200 {object} apimodels.Response{data=analyticsapimodels.SurveySummary}
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/surveys/{id}/analytics [get]
func (c *surveyApiController) getAnalytics(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := analytics.Instance.SurveyAnalytics(id, middleware.GetUserID(ctx), middleware.GetUserRole(ctx))
	if err != nil {
		return c.sendSurveyError(ctx, err, "Ошибка получения аналитики опроса")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Выгрузка ответов в Excel
// @Tags Опросы
// @Description Таблица ответов опроса, доступна автору и персоналу
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "Идентификатор опроса"
// @Success 200
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/surveys/{id}/export/xlsx [get]
func (c *surveyApiController) exportXlsx(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	fileName, data, err := analytics.Instance.ExportXls(id, middleware.GetUserID(ctx), middleware.GetUserRole(ctx))
	if err != nil {
		return c.sendSurveyError(ctx, err, "Ошибка выгрузки ответов в Excel")
	}
	ctx.Set("Content-Type", "application/vnd.ms-excel")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}

// @Summary Выгрузка сводки в PDF
// @Tags Опросы
// @Description Сводный отчёт по результатам опроса, доступен автору и персоналу
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "Идентификатор опроса"
// @Success 200
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/surveys/{id}/export/pdf [get]
func (c *surveyApiController) exportPdf(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	fileName, data, err := analytics.Instance.ExportPdf(id, middleware.GetUserID(ctx), middleware.GetUserRole(ctx))
	if err != nil {
		return c.sendSurveyError(ctx, err, "Ошибка выгрузки сводки в PDF")
	}
	ctx.Set("Content-Type", "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.Status(fiber.StatusOK).Send(data)
}

func (c *surveyApiController) sendSurveyError(ctx *fiber.Ctx, err error, hMsg string) error {
	if errors.Is(err, survey.ErrNotFound) {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	}
	if errors.Is(err, survey.ErrForbidden) {
		return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError(err.Error()))
	}
	return c.SendError(ctx, c.GetLogger(ctx), err, hMsg)
}
