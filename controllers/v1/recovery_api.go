package apiv1

import (
	"impar-backend/controllers"
	recoveryhandler "impar-backend/lib/recovery"
	apimodels "impar-backend/models/api"
	authapimodels "impar-backend/models/api/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type recoveryApiController struct {
	controllers.BaseAPIController
}

func InitRecoveryApiRouters(app *fiber.App) {
	controller := recoveryApiController{}
	app.Route("password-recovery", func(router fiber.Router) {
		router.Post("", controller.requestRecovery)
		router.Post("reset", controller.resetWithCode)
	})
}

// @Summary Запрос восстановления пароля
// @Tags Восстановление пароля
// @Description Создание заявки на восстановление, код уходит на почту.
// @Description Ответ одинаков для любой почты, чтобы не раскрывать список адресов.
// @Param	body				body		authapimodels.PasswordRecoveryRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/password-recovery [post]
func (c *recoveryApiController) requestRecovery(ctx *fiber.Ctx) error {
	var payload authapimodels.PasswordRecoveryRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := recoveryhandler.Instance.RequestRecovery(payload.Email); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания заявки на восстановление")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Сброс пароля по коду
// @Tags Восстановление пароля
// @Description Установка нового пароля по коду восстановления
// @Param	body				body		authapimodels.ResetWithCodeRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/password-recovery/reset [post]
func (c *recoveryApiController) resetWithCode(ctx *fiber.Ctx) error {
	var payload authapimodels.ResetWithCodeRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := recoveryhandler.Instance.ResetWithCode(payload.Email, payload.RecoveryCode, payload.NewPassword); err != nil {
		if errors.Is(err, recoveryhandler.ErrInvalidCode) {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка сброса пароля")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
