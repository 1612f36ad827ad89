package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/matokeo/core/student"
)

type studentApi struct {
	svc *student.Service
}

func registerStudentAPI(g *echo.Group, svc *student.Service) {
	api := studentApi{svc: svc}

	sg := g.Group("/students")
	sg.GET("", api.query)
	sg.POST("", api.create)
	sg.GET("/names", api.queryNames)

	g.POST("/results", api.addResult)
}

// Handlers

func (api *studentApi) create(ctx echo.Context) error {
	var data student.NewStudent
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewStudent")
	}

	sm, err := api.svc.AddStudent(data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, sm)
}

// query lists every student, or only those matching the `search` query param.
// Results are sorted with the `ordering` query param when given.
func (api *studentApi) query(ctx echo.Context) error {
	var ord Ordering
	ord.Bind(ctx)
	if err := student.ValidateOrderings(ord.Orderings); err != nil {
		return err
	}

	var summaries []student.Summary
	params := ctx.QueryParams()
	if _, ok := params["search"]; ok {
		summaries = api.svc.Search(params.Get("search"))
	} else {
		summaries = api.svc.List()
	}
	student.Sort(summaries, ord.Orderings)
	return ctx.JSON(http.StatusOK, summaries)
}

func (api *studentApi) queryNames(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.Names())
}

func (api *studentApi) addResult(ctx echo.Context) error {
	var data student.NewResult
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewResult")
	}

	sm, err := api.svc.AddResult(data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, sm)
}
