package api

import (
	"errors"
	"net/http"

	"outlookengine/internal/repository"
	l2_service "outlookengine/internal/service/l2"

	"github.com/gin-gonic/gin"
)

func (h ApiHandler) addDocument(c *gin.Context) {
	var requestBody l2_service.DocumentInput
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, http.StatusBadRequest)
		return
	}

	evidence, err := h.DocumentIngestService.Ingest(c.Request.Context(), requestBody)
	if errors.Is(err, repository.ErrNotFound) {
		returnErrorJsonCode(err, c, http.StatusNotFound)
		return
	} else if err != nil {
		returnErrorJsonCode(err, c, http.StatusBadRequest)
		return
	}

	c.JSON(200, evidence)
}
