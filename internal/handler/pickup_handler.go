package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/arthurezende/pega-ai/internal/usecase"
)

type PickupHandler struct {
	uc *usecase.OrderUsecase
}

func NewPickupHandler(uc *usecase.OrderUsecase) *PickupHandler {
	return &PickupHandler{uc: uc}
}

type PickupValidateRequest struct {
	Code string `json:"code"`
}

func (h *PickupHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/pickups/validate", h.validate)
}

func (h *PickupHandler) validate(c echo.Context) error {
	var req PickupValidateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.ValidatePickup(c.Request().Context(), req.Code)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
