package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/arthurezende/pega-ai/internal/usecase"
)

type ProfileHandler struct {
	uc *usecase.ProfileUsecase
}

func NewProfileHandler(uc *usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

type UserCreateRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Type  string `json:"type"`
	Phone string `json:"phone"`
}

type EstablishmentCreateRequest struct {
	UserID    int64   `json:"user_id"`
	TradeName string  `json:"trade_name"`
	CNPJ      string  `json:"cnpj"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (h *ProfileHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/users", h.createUser)
	e.POST("/establishments", h.createEstablishment)
}

func (h *ProfileHandler) createUser(c echo.Context) error {
	var req UserCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	id, err := h.uc.CreateUser(c.Request().Context(), usecase.CreateUserInput{
		Name:  req.Name,
		Email: req.Email,
		Type:  req.Type,
		Phone: req.Phone,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]int64{"id": id})
}

func (h *ProfileHandler) createEstablishment(c echo.Context) error {
	var req EstablishmentCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	id, err := h.uc.CreateEstablishment(c.Request().Context(), req.UserID, usecase.CreateEstablishmentInput{
		TradeName: req.TradeName,
		CNPJ:      req.CNPJ,
		Address:   req.Address,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]int64{"id": id})
}
