package apiv1

import (
	"impar-backend/controllers"
	recoveryhandler "impar-backend/lib/recovery"
	usershandler "impar-backend/lib/users"
	"impar-backend/middleware"
	apimodels "impar-backend/models/api"
	usersapimodels "impar-backend/models/api/users"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type adminApiController struct {
	controllers.BaseAPIController
}

func InitAdminApiRouters(app *fiber.App) {
	controller := adminApiController{}
	app.Route("admin", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Use(middleware.StaffRequired())
		router.Get("users", controller.listUsers)
		router.Get("users/:id", controller.getUser)
		router.Get("recovery-requests", controller.listRecoveryRequests)
		router.Delete("recovery-requests/:id", controller.deleteRecoveryRequest)
		// смена ролей и удаление пользователей только для владельца платформы
		router.Use(middleware.OwnerRequired())
		router.Put("users/:id/role", controller.changeRole)
		router.Delete("users/:id", controller.deleteUser)
	})
}

// @Summary Список пользователей
// @Tags Админка
// @Description Список всех пользователей платформы
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]usersapimodels.UserView}
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/users [get]
func (c *adminApiController) listUsers(ctx *fiber.Ctx) error {
	resp, err := usershandler.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка пользователей")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Карточка пользователя
// @Tags Админка
// @Description Данные одного пользователя платформы
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "Идентификатор пользователя"
// @Success 200 {object} apimodels.Response{data=usersapimodels.UserView}
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/users/{id} [get]
func (c *adminApiController) getUser(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := usershandler.Instance.Get(id)
	if err != nil {
		return c.sendUserError(ctx, err, "Ошибка получения пользователя")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Смена роли пользователя
// @Tags Админка
// @Description Переключение роли между user и admin, доступно владельцу платформы
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "Идентификатор пользователя"
// @Param	body				body		usersapimodels.RoleUpdateRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=usersapimodels.UserView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/users/{id}/role [put]
func (c *adminApiController) changeRole(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload usersapimodels.RoleUpdateRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := usershandler.Instance.ChangeRole(id, payload)
	if err != nil {
		return c.sendUserError(ctx, err, "Ошибка смены роли пользователя")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Удаление пользователя
// @Tags Админка
// @Description Удаление пользователя, доступно владельцу платформы
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "Идентификатор пользователя"
// @Success 200 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/users/{id} [delete]
func (c *adminApiController) deleteUser(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = usershandler.Instance.Delete(id, middleware.GetUserID(ctx)); err != nil {
		return c.sendUserError(ctx, err, "Ошибка удаления пользователя")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Заявки на восстановление пароля
// @Tags Админка
// @Description Список заявок с кодами восстановления, видны только персоналу
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]recoveryapimodels.RecoveryRequestView}
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/recovery-requests [get]
func (c *adminApiController) listRecoveryRequests(ctx *fiber.Ctx) error {
	resp, err := recoveryhandler.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения заявок на восстановление")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Удаление заявки на восстановление
// @Tags Админка
// @Description Удаление заявки на восстановление пароля
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "Идентификатор заявки"
// @Success 200 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/recovery-requests/{id} [delete]
func (c *adminApiController) deleteRecoveryRequest(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = recoveryhandler.Instance.Delete(id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления заявки на восстановление")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

func (c *adminApiController) sendUserError(ctx *fiber.Ctx, err error, hMsg string) error {
	if errors.Is(err, usershandler.ErrNotFound) {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	}
	if errors.Is(err, usershandler.ErrOwnerImmutable) {
		return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError(err.Error()))
	}
	return c.SendError(ctx, c.GetLogger(ctx), err, hMsg)
}
