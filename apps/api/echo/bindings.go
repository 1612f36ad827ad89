package echoapi

import (
	"github.com/labstack/echo/v4"

	"github.com/trezcool/matokeo/core"
)

var orderingParam = "ordering"

type Ordering struct {
	Orderings []core.Ordering
}

// Bind reads the `ordering` query param, e.g. ?ordering=-percentage,name
func (ord *Ordering) Bind(ctx echo.Context) {
	val := ctx.QueryParam(orderingParam)
	if val == "" {
		return
	}
	ord.Orderings = core.ParseOrderings(val)
}
