package api

import (
	"bytes"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"outlookengine/internal/app"
	"outlookengine/internal/db/models/postgres/public/model"
	"outlookengine/internal/logger"
	"outlookengine/internal/repository"
	l2_service "outlookengine/internal/service/l2"
	l3_service "outlookengine/internal/service/l3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

type ApiHandler struct {
	Db                    *sql.DB
	ApiRequestRepository  repository.ApiRequestRepository
	OutlookService        l3_service.OutlookService
	OutlookEvaluationApp  app.OutlookEvaluationApp
	SourceService         l2_service.SourceService
	DocumentIngestService l2_service.DocumentIngestService
	JwtDecodeToken        string
	EvaluateLimiter       *rate.Limiter
	Port                  int
}

func int64Ptr(i int64) *int64 {
	return &i
}
func int32Ptr(i int32) *int32 {
	return &i
}
func strPtr(s string) *string {
	return &s
}

// NewEvaluateLimiter allows a short burst of manual evaluations, then
// one every 30 seconds.
func NewEvaluateLimiter() *rate.Limiter {
	return rate.NewLimiter(rate.Every(30*time.Second), 2)
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddlware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to outlook engine"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/usageStats", m.getUsageStats)

	router.GET("/outlooks", m.getOutlooks)
	router.GET("/outlooks/:horizon", m.getOutlook)
	router.GET("/outlooks/:horizon/history", m.getOutlookHistory)

	operator := router.Group("/", m.authMiddleware)
	operator.POST("/outlooks/evaluate", m.evaluateOutlooks)
	operator.POST("/sources", m.addSource)
	operator.PUT("/sources/:id/scores", m.updateSourceScores)
	operator.POST("/documents", m.addDocument)

	return router
}

func (m ApiHandler) getUsageStats(c *gin.Context) {
	stats, err := repository.GetUsageStats(m.Db)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (m ApiHandler) StartApi(port int) error {
	return m.InitializeRouterEngine().Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, http.StatusInternalServerError)
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.FromContext(c.Request.Context()).Error(err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

// returnRepositoryError maps a missing row to 404 and anything else to 500.
func returnRepositoryError(err error, c *gin.Context) {
	if errors.Is(err, repository.ErrNotFound) {
		returnErrorJsonCode(err, c, http.StatusNotFound)
		return
	}
	returnErrorJson(err, c)
}

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r responseBodyWriter) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (m ApiHandler) logRequestMiddlware(ctx *gin.Context) {
	lg := logger.FromContext(ctx.Request.Context()).With("method", ctx.Request.Method, "route", ctx.FullPath())
	ctx.Request = ctx.Request.WithContext(logger.WithLogger(ctx.Request.Context(), lg))

	w := &responseBodyWriter{body: &bytes.Buffer{}, ResponseWriter: ctx.Writer}
	ctx.Writer = w

	body, err := ctx.GetRawData()
	if err != nil {
		lg.Warnf("failed to get raw data: %v", err)
	}
	ctx.Request.Body = io.NopCloser(bytes.NewReader(body))

	start := time.Now().UTC()
	req, err := m.ApiRequestRepository.Add(m.Db, model.APIRequest{
		IPAddress:   strPtr(ctx.ClientIP()),
		Method:      ctx.Request.Method,
		Route:       ctx.Request.URL.Path,
		RequestBody: strPtr(string(body)),
		StartTs:     start,
	})
	if err != nil {
		lg.Warn(err)
	}

	ctx.Next()

	if req != nil {
		if subject := ctx.GetString(subjectContextKey); subject != "" {
			req.Subject = strPtr(subject)
		}
		req.DurationMs = int64Ptr(time.Since(start).Milliseconds())
		req.StatusCode = int32Ptr(int32(ctx.Writer.Status()))
		req.ResponseBody = strPtr(w.body.String())

		err = m.ApiRequestRepository.Update(m.Db, *req)
		if err != nil {
			lg.Warn(err)
		}
	}
}
