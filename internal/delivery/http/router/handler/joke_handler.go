package handler

import (
	"net/http"

	"gatehouse/internal/delivery/http/response"
	"gatehouse/internal/errors"
	"gatehouse/internal/usecase"

	"github.com/labstack/echo/v4"
)

// JokeHandler serves the protected joke collection. It must sit behind the access gate.
type JokeHandler struct {
	uc usecase.JokeUsecase
}

func NewJokeHandler(uc usecase.JokeUsecase) *JokeHandler {
	return &JokeHandler{uc: uc}
}

// List answers 200 with a bare JSON array of jokes.
func (h *JokeHandler) List(c echo.Context) error {
	jokes, err := h.uc.ListJokes(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, jokes)
}
