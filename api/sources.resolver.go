package api

import (
	"errors"
	"fmt"
	"net/http"

	"outlookengine/internal/domain"
	"outlookengine/internal/repository"
	l2_service "outlookengine/internal/service/l2"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h ApiHandler) addSource(c *gin.Context) {
	var requestBody l2_service.SourceInput
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, http.StatusBadRequest)
		return
	}

	source, err := h.SourceService.Add(c.Request.Context(), requestBody)
	if err != nil {
		returnErrorJsonCode(err, c, http.StatusBadRequest)
		return
	}

	c.JSON(200, source)
}

func (h ApiHandler) updateSourceScores(c *gin.Context) {
	sourceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid source id: %w", err), c, http.StatusBadRequest)
		return
	}

	var requestBody domain.CredibilityDimensions
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, http.StatusBadRequest)
		return
	}

	source, err := h.SourceService.UpdateScores(c.Request.Context(), sourceID, requestBody)
	if errors.Is(err, repository.ErrNotFound) {
		returnErrorJsonCode(err, c, http.StatusNotFound)
		return
	} else if err != nil {
		returnErrorJsonCode(err, c, http.StatusBadRequest)
		return
	}

	c.JSON(200, source)
}
