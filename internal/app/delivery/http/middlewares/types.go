package middlewares

import (
	"careslot-service/internal/app/config"
	"careslot-service/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	AdminAuth      contracts.AdminAuthChecker
	InternalConfig *config.InternalConfig
}

func New(logger *zap.Logger, adminAuth contracts.AdminAuthChecker, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:            logger,
		AdminAuth:      adminAuth,
		InternalConfig: internalConfig,
	}
}
