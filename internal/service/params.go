package service

import (
	"github.com/braintap/kpi-engine/internal/config"
	"github.com/braintap/kpi-engine/internal/domain/dataset"
	"github.com/braintap/kpi-engine/internal/logger"
)

// ServiceParams bundles the dependencies shared by all services.
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration
	Store  *dataset.Store
}
