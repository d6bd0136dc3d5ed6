package http

import (
	"net/http"

	"furnimart-backend/internal/usecase/plan"

	"github.com/labstack/echo/v4"
)

type PlanHandler struct{ uc *plan.Usecase }

func NewPlanHandler(uc *plan.Usecase) *PlanHandler { return &PlanHandler{uc: uc} }

// ListPlans always answers 200: a broken store degrades to the fallback
// catalog inside the usecase.
func (h *PlanHandler) ListPlans(c echo.Context) error {
	return c.JSON(http.StatusOK, h.uc.ListActive(c.Request().Context()))
}
