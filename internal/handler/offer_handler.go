package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/arthurezende/pega-ai/internal/usecase"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// ServiceErrorの種別をHTTPステータスへ変換する
func kindStatus(kind usecase.ErrorKind) int {
	switch kind {
	case usecase.ErrOfferNotFound, usecase.ErrCodeNotFound, usecase.ErrOrderNotFound:
		return http.StatusNotFound
	case usecase.ErrInsufficientStock, usecase.ErrInvalidInput:
		return http.StatusBadRequest
	case usecase.ErrAlreadyPickedUp, usecase.ErrOrderCanceled, usecase.ErrInvalidState, usecase.ErrStorageConflict:
		return http.StatusConflict
	case usecase.ErrPaymentRefused:
		return http.StatusPaymentRequired
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if se, ok := usecase.AsServiceError(err); ok {
		return c.JSON(kindStatus(se.Kind), ErrorResponse{Error: se.Message, Kind: string(se.Kind)})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

func paramID(c echo.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

type OfferHandler struct {
	uc *usecase.OfferUsecase
}

func NewOfferHandler(uc *usecase.OfferUsecase) *OfferHandler {
	return &OfferHandler{uc: uc}
}

type OfferCreateRequest struct {
	EstablishmentID int64           `json:"establishment_id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Category        string          `json:"category"`
	OriginalPrice   decimal.Decimal `json:"original_price"`
	SalePrice       decimal.Decimal `json:"sale_price"`
	Stock           int64           `json:"stock"`
	PickupStart     string          `json:"pickup_start"`
	PickupEnd       string          `json:"pickup_end"`
}

func (h *OfferHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/offers")

	g.GET("", h.list)
	g.POST("", h.create)
	g.POST("/:id/pause", h.pause)
	g.POST("/:id/resume", h.resume)
}

func (h *OfferHandler) list(c echo.Context) error {
	out, err := h.uc.ListActive(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OfferHandler) create(c echo.Context) error {
	var req OfferCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	id, err := h.uc.Create(c.Request().Context(), req.EstablishmentID, usecase.CreateOfferInput{
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		OriginalPrice: req.OriginalPrice,
		SalePrice:     req.SalePrice,
		Stock:         req.Stock,
		PickupStart:   req.PickupStart,
		PickupEnd:     req.PickupEnd,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]int64{"id": id})
}

func (h *OfferHandler) pause(c echo.Context) error {
	return h.setStatus(c, h.uc.Pause)
}

func (h *OfferHandler) resume(c echo.Context) error {
	return h.setStatus(c, h.uc.Resume)
}

// 店舗IDはクエリで受け取る（本人確認は外部の識別コラボレータを信用する）
func (h *OfferHandler) setStatus(c echo.Context, fn func(ctx context.Context, establishmentID int64, offerID int64) error) error {
	offerID, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	establishmentID, err := strconv.ParseInt(c.QueryParam("establishment_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid establishment_id"})
	}

	if err := fn(c.Request().Context(), establishmentID, offerID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
