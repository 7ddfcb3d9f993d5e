package http

import (
	"github.com/achabill/blog/internal/logger"
	"github.com/achabill/blog/internal/service"
	"github.com/achabill/blog/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.RequestValidator

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		validator: validators.NewRequestValidator(),
		logger:    logger,
	}
}
