package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"my_trip/internal/adapter/http/handlers/mocks"
	"my_trip/internal/domain/entities"
	"my_trip/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newFavorRouter(uc *mocks.MockIFavorUseCase) *gin.Engine {
	h := NewFavorHandler(uc)
	r := gin.New()
	r.GET("/v1/favorites", h.ListFavorites)
	r.POST("/v1/favorites", h.AddFavorite)
	r.POST("/v1/favorites/toggle", h.ToggleFavorite)
	r.DELETE("/v1/favorites/:houseId", h.RemoveFavorite)
	r.DELETE("/v1/favorites", h.ClearFavorites)
	return r
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type favoriteState struct {
	HouseID    string `json:"houseId"`
	IsFavorite bool   `json:"isFavorite"`
	Count      int    `json:"count"`
}

func TestFavorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFavorUseCase(ctrl)
		uc.EXPECT().List().Return([]entities.Favorite{
			{HouseData: entities.HouseData{HouseID: "h1"}, FavorTime: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		})

		w := serve(newFavorRouter(uc), http.MethodGet, "/v1/favorites", "")
		var got []entities.Favorite
		decodeData(t, w, &got)
		if len(got) != 1 || got[0].HouseID != "h1" || got[0].FavorTime.Year() != 2024 {
			t.Fatalf("unexpected favorites: %+v", got)
		}
	})

	t.Run("add", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFavorUseCase(ctrl)
		uc.EXPECT().Add(gomock.Any(), gomock.AssignableToTypeOf(entities.HouseData{})).Return(true, nil)
		uc.EXPECT().IsFavorite("h1").Return(true)
		uc.EXPECT().Count().Return(1)

		w := serve(newFavorRouter(uc), http.MethodPost, "/v1/favorites", `{"houseId":"h1","houseName":"Loft"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got favoriteState
		decodeData(t, w, &got)
		if got != (favoriteState{HouseID: "h1", IsFavorite: true, Count: 1}) {
			t.Fatalf("unexpected state: %+v", got)
		}
	})

	t.Run("add without house id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFavorUseCase(ctrl)

		w := serve(newFavorRouter(uc), http.MethodPost, "/v1/favorites", `{"houseName":"Loft"}`)
		if w.Code != http.StatusBadRequest || errorCode(t, w) != "INVALID_FAVORITE_INPUT" {
			t.Fatalf("expected 400 INVALID_FAVORITE_INPUT, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("toggle error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFavorUseCase(ctrl)
		uc.EXPECT().Toggle(gomock.Any(), gomock.Any()).Return(false, errors.New("disk"))

		w := serve(newFavorRouter(uc), http.MethodPost, "/v1/favorites/toggle", `{"houseId":"h1"}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("toggle invalid id from usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFavorUseCase(ctrl)
		uc.EXPECT().Toggle(gomock.Any(), gomock.Any()).Return(false, usecase.ErrInvalidHouseID)

		w := serve(newFavorRouter(uc), http.MethodPost, "/v1/favorites/toggle", `{"houseId":"h1"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("remove and clear", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFavorUseCase(ctrl)
		uc.EXPECT().Remove(gomock.Any(), "h1").Return(true)
		uc.EXPECT().IsFavorite("h1").Return(false)
		uc.EXPECT().Count().Return(0)
		uc.EXPECT().Clear(gomock.Any())

		r := newFavorRouter(uc)
		w := serve(r, http.MethodDelete, "/v1/favorites/h1", "")
		var got favoriteState
		decodeData(t, w, &got)
		if got.IsFavorite || got.HouseID != "h1" {
			t.Fatalf("unexpected state: %+v", got)
		}

		w = serve(r, http.MethodDelete, "/v1/favorites", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestPing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/v1/ping", Ping)

	w := serve(r, http.MethodGet, "/v1/ping", "")
	if w.Code != http.StatusOK || w.Body.String() != `{"message":"pong"}` {
		t.Fatalf("unexpected ping response: %d %s", w.Code, w.Body.String())
	}
}
