package apiv1

import (
	"impar-backend/controllers"
	teamapplicationhandler "impar-backend/lib/team-application"
	"impar-backend/middleware"
	apimodels "impar-backend/models/api"
	teamapimodels "impar-backend/models/api/team"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type teamApiController struct {
	controllers.BaseAPIController
}

func InitTeamApiRouters(app *fiber.App) {
	controller := teamApiController{}
	app.Route("team-applications", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Post("", controller.createApplication)
		router.Use(middleware.StaffRequired())
		router.Get("", controller.listApplications)
		router.Put(":id/status", controller.setStatus)
		router.Delete(":id", controller.deleteApplication)
	})
}

// @Summary Заявка в команду
// @Tags Заявки в команду
// @Description Создание заявки в команду, одна нерассмотренная заявка на пользователя
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		teamapimodels.TeamApplicationCreateRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=teamapimodels.TeamApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/team-applications [post]
func (c *teamApiController) createApplication(ctx *fiber.Ctx) error {
	var payload teamapimodels.TeamApplicationCreateRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := teamapplicationhandler.Instance.Create(
		middleware.GetUserID(ctx), middleware.GetUserName(ctx), middleware.GetUserEmail(ctx), payload)
	if err != nil {
		if errors.Is(err, teamapplicationhandler.ErrAlreadyPending) {
			return ctx.Status(fiber.StatusConflict).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания заявки в команду")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Список заявок в команду
// @Tags Заявки в команду
// @Description Список всех заявок в команду, доступен персоналу
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]teamapimodels.TeamApplicationView}
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/team-applications [get]
func (c *teamApiController) listApplications(ctx *fiber.Ctx) error {
	resp, err := teamapplicationhandler.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка заявок")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Смена статуса заявки
// @Tags Заявки в команду
// @Description Одобрение или отклонение заявки в команду, доступно персоналу
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "Идентификатор заявки"
// @Param	body				body		teamapimodels.TeamApplicationStatusRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=teamapimodels.TeamApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/team-applications/{id}/status [put]
func (c *teamApiController) setStatus(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload teamapimodels.TeamApplicationStatusRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := teamapplicationhandler.Instance.SetStatus(id, payload)
	if err != nil {
		if errors.Is(err, teamapplicationhandler.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка смены статуса заявки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Удаление заявки
// @Tags Заявки в команду
// @Description Удаление заявки в команду, доступно персоналу
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "Идентификатор заявки"
// @Success 200 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/team-applications/{id} [delete]
func (c *teamApiController) deleteApplication(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = teamapplicationhandler.Instance.Delete(id); err != nil {
		if errors.Is(err, teamapplicationhandler.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления заявки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
