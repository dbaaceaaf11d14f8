package config

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Bootstrap bundles everything the wiring step needs.
type Bootstrap struct {
	Router         *chi.Mux
	Logger         *zap.Logger
	DriverConfig   *DriverConfig
	InternalConfig *InternalConfig
}
