package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/arthurezende/pega-ai/internal/usecase"
)

type OrderHandler struct {
	uc      *usecase.OrderUsecase
	reviews *usecase.ReviewUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase, reviews *usecase.ReviewUsecase) *OrderHandler {
	return &OrderHandler{uc: uc, reviews: reviews}
}

type OrderCreateRequest struct {
	ConsumerID int64 `json:"consumer_id"`
	OfferID    int64 `json:"offer_id"`
	Quantity   int64 `json:"quantity"`
}

type ReviewCreateRequest struct {
	ConsumerID int64  `json:"consumer_id"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/orders")

	g.POST("", h.create)
	g.GET("", h.list)
	g.POST("/:id/cancel", h.cancel)
	g.POST("/:id/review", h.review)

	e.GET("/establishments/:id/orders", h.listByEstablishment)
}

func (h *OrderHandler) create(c echo.Context) error {
	var req OrderCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Create(c.Request().Context(), req.ConsumerID, usecase.CreateOrderInput{
		OfferID:  req.OfferID,
		Quantity: req.Quantity,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}

func (h *OrderHandler) list(c echo.Context) error {
	consumerID, err := strconv.ParseInt(c.QueryParam("consumer_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid consumer_id"})
	}

	out, err := h.uc.ListByConsumer(c.Request().Context(), consumerID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) cancel(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.Cancel(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "canceled"})
}

func (h *OrderHandler) review(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req ReviewCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	reviewID, err := h.reviews.Create(c.Request().Context(), req.ConsumerID, usecase.CreateReviewInput{
		OrderID: id,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]int64{"id": reviewID})
}

func (h *OrderHandler) listByEstablishment(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.ListByEstablishment(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
