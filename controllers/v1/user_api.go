package apiv1

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"talent-park-backend/controllers"
	usershandler "talent-park-backend/lib/users"
	"talent-park-backend/middleware"
	apimodels "talent-park-backend/models/api"
	userapimodels "talent-park-backend/models/api/users"
)

type userApiController struct {
	controllers.BaseAPIController
}

func InitUserApiRouters(app *fiber.App) {
	controller := userApiController{}
	app.Route("user", func(router fiber.Router) {
		router.Post("register", controller.register)
		router.Post("login", controller.login)
		authed := router.Use(middleware.AuthorizationRequired())
		authed.Get("logout", controller.logout)
		authed.Get("me", controller.me)
		authed.Put("update/profile", controller.updateProfile)
		authed.Put("update/password", controller.updatePassword)
	})
}

// @Summary Register a new user
// @Tags Users
// @Description Register a new user; accepts an optional multipart resume file
// @Param	body body	 userapimodels.RegisterRequest	true	"request body"
// @Success 201 {object} apimodels.Response{data=userapimodels.AuthResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/user/register [post]
func (c *userApiController) register(ctx *fiber.Ctx) error {
	var payload userapimodels.RegisterRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resume, closeResume, err := formResume(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if closeResume != nil {
		defer closeResume()
	}
	resp, err := usershandler.Instance.Register(ctx.Context(), payload, resume)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to register user")
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(resp))
}

// @Summary Log in
// @Tags Users
// @Description Authenticate with email, password and role
// @Param	body body	 userapimodels.LoginRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=userapimodels.AuthResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @router /api/v1/user/login [post]
func (c *userApiController) login(ctx *fiber.Ctx) error {
	var payload userapimodels.LoginRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := usershandler.Instance.Login(payload.Email, payload.Password, payload.Role)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to log in")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Log out
// @Tags Users
// @Description Reset the auth cookie
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response
// @router /api/v1/user/logout [get]
func (c *userApiController) logout(ctx *fiber.Ctx) error {
	ctx.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    "",
		Expires:  time.Now(),
		HTTPOnly: true,
	})
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewMessageResponse("logged out successfully"))
}

// @Summary Current user
// @Tags Users
// @Description Get the authenticated user's profile
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=userapimodels.UserView}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/user/me [get]
func (c *userApiController) me(ctx *fiber.Ctx) error {
	resp, err := usershandler.Instance.GetByID(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to get user")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Update profile
// @Tags Users
// @Description Update profile data; accepts an optional multipart resume file replacing the stored one
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 userapimodels.ProfileData	true	"request body"
// @Success 200 {object} apimodels.Response{data=userapimodels.UserView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/user/update/profile [put]
func (c *userApiController) updateProfile(ctx *fiber.Ctx) error {
	var payload userapimodels.ProfileData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resume, closeResume, err := formResume(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if closeResume != nil {
		defer closeResume()
	}
	resp, err := usershandler.Instance.UpdateProfile(ctx.Context(), middleware.GetUserID(ctx), payload, resume)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update profile")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Update password
// @Tags Users
// @Description Change the password, verifying the old one
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 userapimodels.UpdatePasswordRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/user/update/password [put]
func (c *userApiController) updatePassword(ctx *fiber.Ctx) error {
	var payload userapimodels.UpdatePasswordRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	token, err := usershandler.Instance.UpdatePassword(middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update password")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(token))
}
