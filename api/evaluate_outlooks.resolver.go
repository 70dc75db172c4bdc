package api

import (
	"fmt"
	"net/http"

	"outlookengine/internal/domain"

	"github.com/gin-gonic/gin"
)

type evaluateOutlooksRequest struct {
	Horizon *string `json:"horizon"`
}

type evaluateOutlooksResponse struct {
	Results []domain.CycleResult `json:"results"`
	Error   *string              `json:"error,omitempty"`
}

func (h ApiHandler) evaluateOutlooks(c *gin.Context) {
	if h.EvaluateLimiter != nil && !h.EvaluateLimiter.Allow() {
		returnErrorJsonCode(fmt.Errorf("too many evaluation requests - try again later"), c, http.StatusTooManyRequests)
		return
	}

	var requestBody evaluateOutlooksRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&requestBody); err != nil {
			returnErrorJsonCode(err, c, http.StatusBadRequest)
			return
		}
	}

	ctx := c.Request.Context()

	if requestBody.Horizon != nil {
		horizon, err := domain.ParseHorizon(*requestBody.Horizon)
		if err != nil {
			returnErrorJsonCode(err, c, http.StatusBadRequest)
			return
		}
		result, err := h.OutlookEvaluationApp.EvaluateHorizon(ctx, horizon)
		if result == nil {
			returnErrorJson(fmt.Errorf("failed to evaluate %s outlook: %w", horizon, err), c)
			return
		}
		out := evaluateOutlooksResponse{Results: []domain.CycleResult{*result}}
		if err != nil {
			out.Error = strPtr(err.Error())
		}
		c.JSON(200, out)
		return
	}

	results, err := h.OutlookEvaluationApp.EvaluateAll(ctx)
	if results == nil {
		returnErrorJson(fmt.Errorf("failed to evaluate outlooks: %w", err), c)
		return
	}

	// per-horizon failures are reported inline; the other horizons'
	// results are still valid
	out := evaluateOutlooksResponse{Results: results}
	if err != nil {
		out.Error = strPtr(err.Error())
	}
	c.JSON(200, out)
}
