package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/braintap/kpi-engine/internal/api/dto"
	ierr "github.com/braintap/kpi-engine/internal/errors"
	"github.com/braintap/kpi-engine/internal/types"
)

// MetricsService computes the metrics snapshot for a requested view over a
// user-selected date window.
type MetricsService interface {
	GetView(ctx context.Context, req dto.MetricsRequest) (*dto.ViewResponse, error)
}

type metricsService struct {
	ServiceParams
	cache *gocache.Cache
	now   func() time.Time
}

// NewMetricsService creates a new metrics service.
func NewMetricsService(params ServiceParams) MetricsService {
	var c *gocache.Cache
	if params.Config != nil && params.Config.Cache.Enabled {
		c = gocache.New(params.Config.Cache.TTL, 2*params.Config.Cache.TTL)
	}
	return &metricsService{
		ServiceParams: params,
		cache:         c,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// GetView dispatches to the per-view computation. Every computation is a
// pure function over the immutable snapshot, so results are memoized per
// (view, range) while the cache TTL lasts.
func (s *metricsService) GetView(ctx context.Context, req dto.MetricsRequest) (*dto.ViewResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	cacheKey := s.cacheKey(req)
	if s.cache != nil {
		if cached, ok := s.cache.Get(cacheKey); ok {
			return cached.(*dto.ViewResponse), nil
		}
	}

	displayColumns := types.DisplayColumns(req.View)
	if len(req.Columns) > 0 {
		displayColumns = req.Columns
	}

	response := &dto.ViewResponse{
		View:           req.View,
		Range:          req.Range,
		DisplayColumns: displayColumns,
	}

	switch req.View {
	case types.ViewSummary:
		response.Summary = s.getSummary(ctx)
	case types.ViewRevenue:
		response.Revenue = s.getRevenue(ctx, req.Range)
	case types.ViewCustomers:
		response.Customers = s.getCustomers(ctx, req.Range)
	case types.ViewSubscriptions:
		subs, rng := s.getSubscriptions(ctx, req.Range)
		response.Subscriptions = subs
		response.Range = rng
	case types.ViewPayment:
		response.Payment = s.getPayment(ctx, req.Range)
	case types.ViewFinancial:
		response.Financial = s.getFinancial(ctx, req.Range)
	default:
		return nil, ierr.NewErrorf("unknown view: %s", req.View).
			WithHintf("View %q is not a supported view selector", string(req.View)).
			Mark(ierr.ErrUnknownView)
	}

	if s.cache != nil {
		s.cache.Set(cacheKey, response, gocache.DefaultExpiration)
	}
	return response, nil
}

func (s *metricsService) cacheKey(req dto.MetricsRequest) string {
	start, end := "", ""
	if req.Range.Start != nil {
		start = req.Range.Start.Format(time.RFC3339)
	}
	if req.Range.End != nil {
		end = req.Range.End.Format(time.RFC3339)
	}
	return fmt.Sprintf("%s:%s:%s:%s", req.View, start, end, strings.Join(req.Columns, ","))
}
