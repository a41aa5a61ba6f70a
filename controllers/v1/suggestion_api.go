package apiv1

import (
	"impar-backend/controllers"
	suggestionhandler "impar-backend/lib/suggestion"
	"impar-backend/middleware"
	apimodels "impar-backend/models/api"
	suggestionapimodels "impar-backend/models/api/suggestion"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type suggestionApiController struct {
	controllers.BaseAPIController
}

func InitSuggestionApiRouters(app *fiber.App) {
	controller := suggestionApiController{}
	app.Route("suggestions", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Post("", controller.createSuggestion)
		router.Use(middleware.StaffRequired())
		router.Get("", controller.listSuggestions)
		router.Put(":id/status", controller.setStatus)
		router.Delete(":id", controller.deleteSuggestion)
	})
}

// @Summary Создание предложения
// @Tags Предложения
// @Description Создание предложения по платформе или конкретному опросу
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		suggestionapimodels.SuggestionCreateRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=suggestionapimodels.SuggestionView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/suggestions [post]
func (c *suggestionApiController) createSuggestion(ctx *fiber.Ctx) error {
	var payload suggestionapimodels.SuggestionCreateRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := suggestionhandler.Instance.Create(middleware.GetUserID(ctx), middleware.GetUserName(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания предложения")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Список предложений
// @Tags Предложения
// @Description Список всех предложений, доступен персоналу
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]suggestionapimodels.SuggestionView}
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/suggestions [get]
func (c *suggestionApiController) listSuggestions(ctx *fiber.Ctx) error {
	resp, err := suggestionhandler.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка предложений")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Смена статуса предложения
// @Tags Предложения
// @Description Смена статуса предложения, доступна персоналу
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "Идентификатор предложения"
// @Param	body				body		suggestionapimodels.SuggestionStatusRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=suggestionapimodels.SuggestionView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/suggestions/{id}/status [put]
func (c *suggestionApiController) setStatus(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload suggestionapimodels.SuggestionStatusRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := suggestionhandler.Instance.SetStatus(id, payload)
	if err != nil {
		if errors.Is(err, suggestionhandler.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка смены статуса предложения")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Удаление предложения
// @Tags Предложения
// @Description Удаление предложения, доступно персоналу
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "Идентификатор предложения"
// @Success 200 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/suggestions/{id} [delete]
func (c *suggestionApiController) deleteSuggestion(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = suggestionhandler.Instance.Delete(id); err != nil {
		if errors.Is(err, suggestionhandler.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления предложения")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
