package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"talent-park-backend/controllers"
	jobhandler "talent-park-backend/lib/job"
	"talent-park-backend/middleware"
	apimodels "talent-park-backend/models/api"
	jobapimodels "talent-park-backend/models/api/job"
)

type jobApiController struct {
	controllers.BaseAPIController
}

func InitJobApiRouters(app *fiber.App) {
	controller := jobApiController{}
	app.Route("job", func(router fiber.Router) {
		router.Get("getall", controller.list)
		router.Get("get/:id", controller.getByID)
		authed := router.Use(middleware.AuthorizationRequired())
		employer := authed.Use(middleware.EmployerRequired())
		employer.Get("getmyjobs", controller.listMy)
		employer.Post("post", controller.create)
		employer.Delete("delete/:id", controller.delete)
	})
}

// @Summary List open jobs
// @Tags Jobs
// @Description List jobs with optional filters, public
// @Param   city			query	string	false	"exact city filter"
// @Param   niche			query	string	false	"exact niche filter"
// @Param   search_keyword	query	string	false	"substring search over title, company and introduction"
// @Param   created_at_desc	query	bool	false	"newest first when true, oldest first otherwise"
// @Success 200 {object} apimodels.ListResponse{data=[]jobapimodels.JobView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/job/getall [get]
func (c *jobApiController) list(ctx *fiber.Ctx) error {
	filter := jobapimodels.JobFilter{
		City:          ctx.Query("city"),
		Niche:         ctx.Query("niche"),
		SearchKeyword: ctx.Query("search_keyword"),
		Sort:          apimodels.Sort{CreatedAtDesc: ctx.QueryBool("created_at_desc")},
	}
	list, err := jobhandler.Instance.List(filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list jobs")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewListResponse(list, int64(len(list))))
}

// @Summary Get a job
// @Tags Jobs
// @Description Get a single job by id, public
// @Param   id	path	string	true	"job id"
// @Success 200 {object} apimodels.Response{data=jobapimodels.JobView}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/job/get/{id} [get]
func (c *jobApiController) getByID(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	job, err := jobhandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to get job")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(job))
}

// @Summary List my jobs
// @Tags Jobs
// @Description List jobs posted by the authenticated employer
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   created_at_desc	query	bool	false	"newest first when true, oldest first otherwise"
// @Success 200 {object} apimodels.ListResponse{data=[]jobapimodels.JobView}
// @Failure 403 {object} apimodels.Response
// @router /api/v1/job/getmyjobs [get]
func (c *jobApiController) listMy(ctx *fiber.Ctx) error {
	sort := apimodels.Sort{CreatedAtDesc: ctx.QueryBool("created_at_desc")}
	list, err := jobhandler.Instance.ListMy(middleware.GetUserID(ctx), sort)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list employer jobs")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewListResponse(list, int64(len(list))))
}

// @Summary Post a job
// @Tags Jobs
// @Description Post a new job on behalf of the authenticated employer
// @Param   Authorization		header	string	true	"Authorization token"
// @Param	body body	 jobapimodels.JobData	true	"request body"
// @Success 201 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @router /api/v1/job/post [post]
func (c *jobApiController) create(ctx *fiber.Ctx) error {
	var payload jobapimodels.JobData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := jobhandler.Instance.Create(middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to post job")
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(id))
}

// @Summary Delete a job
// @Tags Jobs
// @Description Delete a job owned by the authenticated employer
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id	path	string	true	"job id"
// @Success 200 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/job/delete/{id} [delete]
func (c *jobApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := jobhandler.Instance.Delete(id, middleware.GetUserID(ctx)); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to delete job")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewMessageResponse("job deleted successfully"))
}
