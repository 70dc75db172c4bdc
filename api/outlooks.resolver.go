package api

import (
	"fmt"
	"net/http"
	"strconv"

	"outlookengine/internal/domain"

	"github.com/gin-gonic/gin"
)

func (h ApiHandler) getOutlooks(c *gin.Context) {
	outlooks, err := h.OutlookService.List()
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, outlooks)
}

func horizonParam(c *gin.Context) (domain.Horizon, bool) {
	horizon, err := domain.ParseHorizon(c.Param("horizon"))
	if err != nil {
		returnErrorJsonCode(err, c, http.StatusBadRequest)
		return "", false
	}
	return horizon, true
}

func (h ApiHandler) getOutlook(c *gin.Context) {
	horizon, ok := horizonParam(c)
	if !ok {
		return
	}

	outlook, err := h.OutlookService.Get(horizon)
	if err != nil {
		returnRepositoryError(err, c)
		return
	}

	c.JSON(200, outlook)
}

func (h ApiHandler) getOutlookHistory(c *gin.Context) {
	horizon, ok := horizonParam(c)
	if !ok {
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			returnErrorJsonCode(fmt.Errorf("invalid limit %q", raw), c, http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	history, err := h.OutlookService.ListHistory(horizon, limit)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, history)
}
