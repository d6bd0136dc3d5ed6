package http

import (
	"errors"
	"net/http"
	"sort"
	"time"

	contractUC "furnimart-backend/internal/usecase/contract"
	"furnimart-backend/internal/usecase/installment"

	"github.com/labstack/echo/v4"
)

type ContractHandler struct{ uc *contractUC.Usecase }

func NewContractHandler(uc *contractUC.Usecase) *ContractHandler {
	return &ContractHandler{uc: uc}
}

type quoteReq struct {
	PlanID    string  `json:"plan_id" validate:"required"`
	Principal float64 `json:"principal" validate:"required,gt=0,intlike"`
}

type customerReq struct {
	Name          string  `json:"name" validate:"required"`
	Phone         string  `json:"phone" validate:"required,phoneth"`
	Email         string  `json:"email" validate:"omitempty,email"`
	IDCard        string  `json:"id_card" validate:"required,thaiid"`
	Address       string  `json:"address" validate:"required"`
	Occupation    string  `json:"occupation" validate:"required"`
	MonthlyIncome float64 `json:"monthly_income" validate:"required,gt=0"`
}

type guarantorReq struct {
	Name          string  `json:"name" validate:"required"`
	Phone         string  `json:"phone" validate:"required,phoneth"`
	IDCard        string  `json:"id_card" validate:"required,thaiid"`
	Address       string  `json:"address" validate:"required"`
	Occupation    string  `json:"occupation" validate:"required"`
	MonthlyIncome float64 `json:"monthly_income" validate:"required,gt=0"`
}

type createContractReq struct {
	Customer  customerReq   `json:"customer" validate:"required"`
	Guarantor *guarantorReq `json:"guarantor" validate:"omitempty"`
	PlanID    string        `json:"plan_id" validate:"required"`
	Principal float64       `json:"principal" validate:"required,gt=0,intlike"`
	StartDate time.Time     `json:"start_date"`
	Notes     string        `json:"notes"`
}

// Quote computes the money figures for a principal/plan pair; nothing is
// stored. The storefront calls this on every amount/plan change.
func (h *ContractHandler) Quote(c echo.Context) error {
	var req quoteReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	calc, err := h.uc.Quote(c.Request().Context(), req.PlanID, req.Principal)
	if err != nil {
		var ve *contractUC.ValidationError
		if errors.As(err, &ve) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: fieldErrors(ve.Fields)})
		}
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown plan"})
	}
	return c.JSON(http.StatusOK, calc)
}

// CreateContract validates the full draft, assembles the contract and
// persists it. Field problems come back as a details list; a store failure
// is a single 502-style error and the draft is kept client-side for resubmit.
func (h *ContractHandler) CreateContract(c echo.Context) error {
	var req createContractReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	in := contractUC.SubmitInput{
		Customer:  installment.Customer(req.Customer),
		PlanID:    req.PlanID,
		Principal: req.Principal,
		StartDate: req.StartDate,
		Notes:     req.Notes,
	}
	if req.Guarantor != nil {
		g := installment.Guarantor(*req.Guarantor)
		in.Guarantor = &g
	}

	dto, err := h.uc.Submit(c.Request().Context(), in)
	if err != nil {
		var ve *contractUC.ValidationError
		if errors.As(err, &ve) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: fieldErrors(ve.Fields)})
		}
		return c.JSON(http.StatusBadGateway, ErrorResponse{Error: "could not save the contract, please try again"})
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *ContractHandler) GetContract(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("contract_number"))
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	}
	return c.JSON(http.StatusOK, dto)
}

// fieldErrors flattens the domain error map into the wire shape, sorted for
// stable output.
func fieldErrors(m installment.Errors) []FieldError {
	out := make([]FieldError, 0, len(m))
	for f, msg := range m {
		out = append(out, FieldError{Field: f, Message: msg})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Field < out[j].Field })
	return out
}
