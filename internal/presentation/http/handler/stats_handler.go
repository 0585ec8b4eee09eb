package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/lakshmiplex/canteen-api/internal/application/service"
	"github.com/lakshmiplex/canteen-api/internal/presentation/http/dto/request"
	"github.com/lakshmiplex/canteen-api/internal/presentation/http/dto/response"
)

// StatsHandler serves the sales statistics endpoints.
type StatsHandler struct {
	statsService *service.StatsService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GetCategoryStats handles GET /stats/categories?from=&to=
func (h *StatsHandler) GetCategoryStats(c *gin.Context) {
	var query request.StatsRangeQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "from and to dates are required (YYYY-MM-DD)")
		return
	}
	from, to, err := query.Range()
	if err != nil {
		response.BadRequest(c, "dates must be in YYYY-MM-DD format")
		return
	}

	result, err := h.statsService.GetCategoryStats(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Category statistics retrieved successfully", result)
}

// GetDailyPayments handles GET /stats/daily-payments?from=&to=
func (h *StatsHandler) GetDailyPayments(c *gin.Context) {
	var query request.StatsRangeQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "from and to dates are required (YYYY-MM-DD)")
		return
	}
	from, to, err := query.Range()
	if err != nil {
		response.BadRequest(c, "dates must be in YYYY-MM-DD format")
		return
	}

	result, err := h.statsService.GetDailyPayments(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Daily payment statistics retrieved successfully", result)
}

// GenerateReport handles POST /stats/report?from=&to=
func (h *StatsHandler) GenerateReport(c *gin.Context) {
	var query request.StatsRangeQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "from and to dates are required (YYYY-MM-DD)")
		return
	}
	from, to, err := query.Range()
	if err != nil {
		response.BadRequest(c, "dates must be in YYYY-MM-DD format")
		return
	}

	result, err := h.statsService.GenerateReport(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Sales statistics report generated successfully", result)
}
