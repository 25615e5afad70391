package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "my_trip/internal/adapter/http/dto/request"
	response "my_trip/internal/adapter/http/dto/response"
	"my_trip/internal/usecase"
	"my_trip/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidFavoritePayload = pkg.NewDomainErrorSimple("INVALID_FAVORITE_INPUT", "Invalid favorite payload", http.StatusBadRequest)

type FavorHandler struct {
	usecase usecase.IFavorUseCase
}

func NewFavorHandler(uc usecase.IFavorUseCase) *FavorHandler {
	return &FavorHandler{usecase: uc}
}

// ListFavorites godoc
// @Summary  List favorite houses
// @Tags     favorites
// @Success  200 {object} response.Envelope{data=[]entities.Favorite}
// @Router   /favorites [get]
func (h *FavorHandler) ListFavorites(c *gin.Context) {
	c.JSON(http.StatusOK, response.Wrap(h.usecase.List()))
}

// AddFavorite godoc
// @Summary  Add a house to favorites
// @Tags     favorites
// @Param    body body request.FavoriteRequest true "house"
// @Success  200 {object} response.Envelope{data=response.FavoriteStateResponse}
// @Failure  400 {object} pkg.HTTPError
// @Router   /favorites [post]
func (h *FavorHandler) AddFavorite(c *gin.Context) {
	payload, ok := bindFavorite(c)
	if !ok {
		return
	}
	if _, err := h.usecase.Add(c.Request.Context(), payload.HouseData); err != nil {
		writeFavorError(c, err)
		return
	}
	h.writeState(c, payload.HouseID)
}

// ToggleFavorite godoc
// @Summary  Toggle a house in favorites
// @Tags     favorites
// @Param    body body request.FavoriteRequest true "house"
// @Success  200 {object} response.Envelope{data=response.FavoriteStateResponse}
// @Failure  400 {object} pkg.HTTPError
// @Router   /favorites/toggle [post]
func (h *FavorHandler) ToggleFavorite(c *gin.Context) {
	payload, ok := bindFavorite(c)
	if !ok {
		return
	}
	if _, err := h.usecase.Toggle(c.Request.Context(), payload.HouseData); err != nil {
		writeFavorError(c, err)
		return
	}
	h.writeState(c, payload.HouseID)
}

// RemoveFavorite godoc
// @Summary  Remove a house from favorites
// @Tags     favorites
// @Param    houseId path string true "house id"
// @Success  200 {object} response.Envelope{data=response.FavoriteStateResponse}
// @Router   /favorites/{houseId} [delete]
func (h *FavorHandler) RemoveFavorite(c *gin.Context) {
	houseID := c.Param("houseId")
	h.usecase.Remove(c.Request.Context(), houseID)
	h.writeState(c, houseID)
}

// ClearFavorites godoc
// @Summary  Remove every favorite
// @Tags     favorites
// @Success  200 {object} response.Envelope
// @Router   /favorites [delete]
func (h *FavorHandler) ClearFavorites(c *gin.Context) {
	h.usecase.Clear(c.Request.Context())
	c.JSON(http.StatusOK, response.Wrap(nil))
}

func (h *FavorHandler) writeState(c *gin.Context, houseID string) {
	c.JSON(http.StatusOK, response.Wrap(response.FavoriteStateResponse{
		HouseID:    houseID,
		IsFavorite: h.usecase.IsFavorite(houseID),
		Count:      h.usecase.Count(),
	}))
}

func bindFavorite(c *gin.Context) (request.FavoriteRequest, bool) {
	var payload request.FavoriteRequest
	if err := c.ShouldBindJSON(&payload); err != nil || strings.TrimSpace(payload.HouseID) == "" {
		c.JSON(errInvalidFavoritePayload.HTTPStatus, errInvalidFavoritePayload.ToHTTPError())
		return payload, false
	}
	return payload, true
}

func writeFavorError(c *gin.Context, err error) {
	appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	if errors.Is(err, usecase.ErrInvalidHouseID) {
		appErr = errInvalidFavoritePayload
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
