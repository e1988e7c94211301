package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/braintap/kpi-engine/internal/api/dto"
	"github.com/braintap/kpi-engine/internal/logger"
	"github.com/braintap/kpi-engine/internal/service"
	"github.com/braintap/kpi-engine/internal/types"
)

type MetricsHandler struct {
	metricsService service.MetricsService
	logger         *logger.Logger
}

func NewMetricsHandler(
	metricsService service.MetricsService,
	logger *logger.Logger,
) *MetricsHandler {
	return &MetricsHandler{
		metricsService: metricsService,
		logger:         logger,
	}
}

// GetView serves GET /v1/metrics/:view?start=...&end=... — the metrics
// snapshot for one view over an optional inclusive date window.
func (h *MetricsHandler) GetView(c *gin.Context) {
	start, err := dto.ParseRangeBound(c.Query("start"))
	if err != nil {
		c.Error(err)
		return
	}
	end, err := dto.ParseRangeBound(c.Query("end"))
	if err != nil {
		c.Error(err)
		return
	}

	req := dto.MetricsRequest{
		View:  types.ViewKind(c.Param("view")),
		Range: types.DateRange{Start: start, End: end},
	}

	// Optional column selection for the view's record table, validated by
	// the service against the view's allow-list.
	if columns := c.QueryArray("columns"); len(columns) > 0 {
		req.Columns = columns
	}

	response, err := h.metricsService.GetView(c.Request.Context(), req)
	if err != nil {
		h.logger.Errorw("failed to compute metrics view",
			"view", req.View,
			"error", err,
		)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}
