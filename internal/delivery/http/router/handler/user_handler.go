// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"gatehouse/internal/delivery/http/response"
	domainerrors "gatehouse/internal/domain/errors"
	"gatehouse/internal/errors"
	"gatehouse/internal/infra/metrics"
	"gatehouse/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandler serves registration and login.
type UserHandler struct {
	uc      usecase.UserUsecase
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	Usecase usecase.UserUsecase
	Logger  *slog.Logger
	Metrics *metrics.Metrics `optional:"true"`
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		uc:      params.Usecase,
		logger:  params.Logger,
		metrics: params.Metrics,
	}
}

// Register handles POST /auth/register and answers 201 {"username"}.
func (h *UserHandler) Register(c echo.Context) error {
	input := new(usecase.RegisterInput)
	if err := c.Bind(input); err != nil {
		h.observeRegistration(domainerrors.ErrInvalidRequestBody)

		return domainerrors.ErrInvalidRequestBody.WithDetails(err.Error())
	}

	output, err := h.uc.Register(c.Request().Context(), input)
	h.observeRegistration(err)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, output)
}

// Login handles POST /auth/login and answers 200 {"message", "token"}.
func (h *UserHandler) Login(c echo.Context) error {
	input := new(usecase.LoginInput)
	if err := c.Bind(input); err != nil {
		h.observeLogin(domainerrors.ErrInvalidRequestBody)

		return domainerrors.ErrInvalidRequestBody.WithDetails(err.Error())
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	h.observeLogin(err)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, output)
}

func (h *UserHandler) observeRegistration(err error) {
	if h.metrics != nil {
		h.metrics.ObserveRegistration(metrics.Outcome(err))
	}
}

func (h *UserHandler) observeLogin(err error) {
	if h.metrics != nil {
		h.metrics.ObserveLogin(metrics.Outcome(err))
	}
}
