package apiv1

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"talent-park-backend/controllers"
	applicationhandler "talent-park-backend/lib/application"
	xlsexport "talent-park-backend/lib/export/xls"
	"talent-park-backend/middleware"
	apimodels "talent-park-backend/models/api"
	applicationapimodels "talent-park-backend/models/api/application"
)

type applicationApiController struct {
	controllers.BaseAPIController
}

func InitApplicationApiRouters(app *fiber.App) {
	controller := applicationApiController{}
	app.Route("application", func(router fiber.Router) {
		authed := router.Use(middleware.AuthorizationRequired())
		authed.Post("post/:id", middleware.JobSeekerRequired(), controller.submit)
		authed.Get("jobseeker/getall", middleware.JobSeekerRequired(), controller.listForSeeker)
		authed.Get("employer/getall", middleware.EmployerRequired(), controller.listForEmployer)
		authed.Get("employer/export", middleware.EmployerRequired(), controller.exportForEmployer)
		authed.Delete("delete/:id", controller.softDelete)
	})
}

// @Summary Apply for a job
// @Tags Applications
// @Description Submit an application for a job; accepts an optional multipart resume file
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id	path	string	true	"job id"
// @Param	body body	 applicationapimodels.SubmitData	true	"request body"
// @Success 201 {object} apimodels.Response{data=applicationapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/application/post/{id} [post]
func (c *applicationApiController) submit(ctx *fiber.Ctx) error {
	jobID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload applicationapimodels.SubmitData
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
	view, err := applicationhandler.Instance.Submit(ctx.Context(), jobID, middleware.GetUserID(ctx), payload, resume)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to submit application")
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(view))
}

// @Summary My applications
// @Tags Applications
// @Description List applications submitted by the authenticated job seeker
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   created_at_desc	query	bool	false	"newest first when true, oldest first otherwise"
// @Success 200 {object} apimodels.ListResponse{data=[]applicationapimodels.ApplicationView}
// @Failure 403 {object} apimodels.Response
// @router /api/v1/application/jobseeker/getall [get]
func (c *applicationApiController) listForSeeker(ctx *fiber.Ctx) error {
	sort := apimodels.Sort{CreatedAtDesc: ctx.QueryBool("created_at_desc")}
	list, err := applicationhandler.Instance.ListForSeeker(middleware.GetUserID(ctx), sort)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list applications")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewListResponse(list, int64(len(list))))
}

// @Summary Received applications
// @Tags Applications
// @Description List applications received for the authenticated employer's jobs
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   created_at_desc	query	bool	false	"newest first when true, oldest first otherwise"
// @Success 200 {object} apimodels.ListResponse{data=[]applicationapimodels.ApplicationView}
// @Failure 403 {object} apimodels.Response
// @router /api/v1/application/employer/getall [get]
func (c *applicationApiController) listForEmployer(ctx *fiber.Ctx) error {
	sort := apimodels.Sort{CreatedAtDesc: ctx.QueryBool("created_at_desc")}
	list, err := applicationhandler.Instance.ListForEmployer(middleware.GetUserID(ctx), sort)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list applications")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewListResponse(list, int64(len(list))))
}

// @Summary Received applications. Export to Excel
// @Tags Applications
// @Description Export the authenticated employer's received applications to Excel
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   created_at_desc	query	bool	false	"newest first when true, oldest first otherwise"
// @Success 200
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/employer/export [get]
func (c *applicationApiController) exportForEmployer(ctx *fiber.Ctx) error {
	sort := apimodels.Sort{CreatedAtDesc: ctx.QueryBool("created_at_desc")}
	list, err := applicationhandler.Instance.ListForEmployer(middleware.GetUserID(ctx), sort)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list applications for export")
	}
	data, err := xlsexport.Instance.ExportApplicationList(list)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to export applications to Excel")
	}
	fileName := fmt.Sprintf("applications-%v.xlsx", time.Now().Format("20060102-150405"))
	ctx.Set("Content-Type", "application/vnd.ms-excel")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}

// @Summary Withdraw or dismiss an application
// @Tags Applications
// @Description Hide the application from the caller's side; it is removed for good once both sides delete it
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id	path	string	true	"application id"
// @Success 200 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/application/delete/{id} [delete]
func (c *applicationApiController) softDelete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = applicationhandler.Instance.SoftDelete(id, middleware.GetUserID(ctx), middleware.GetUserRole(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to delete application")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewMessageResponse("application deleted successfully"))
}
