// Package router configures the HTTP router and attaches the API routes.
package router

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	v1 "github.com/umuryango/backend/internal/controllers/v1"
	"github.com/umuryango/backend/internal/httperror"
	"github.com/umuryango/backend/internal/httputil"
)

// This is set at build time, see Makefile.
var version = "0.0.0"

// Config sets up the router and its middlewares.
func Config() (*gin.Engine, error) {
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, httperror.Error{Message: "This HTTP method is not allowed for the endpoint you called"})
	})
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, l zerolog.Logger) zerolog.Logger {
			return l.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	if err := registerPrometheusMetrics(); err != nil {
		return nil, err
	}
	r.Use(MetricsMiddleware())

	// CORS settings
	allowOrigins, ok := os.LookupEnv("CORS_ALLOW_ORIGINS")
	if ok {
		log.Debug().Str("CORS Allowed Origins", allowOrigins).Msg("Router")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     strings.Fields(allowOrigins),
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PUT", "PATCH", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	log.Info().Str("version", version).Msg("Router")

	return r, nil
}

// AttachRoutes attaches the API routes to the router group that is passed in.
// Separating this from Config() allows tests to attach the routes to a fresh
// engine with their own controller.
func AttachRoutes(co v1.Controller, group *gin.RouterGroup) {
	group.GET("", GetRoot)
	group.OPTIONS("", OptionsRoot)
	group.GET("/version", GetVersion)
	group.OPTIONS("/version", OptionsVersion)
	group.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// pprof performance profiles
	enablePprof, ok := os.LookupEnv("ENABLE_PPROF")
	if ok && enablePprof == "true" {
		pprof.RouteRegister(group, "debug/pprof")
	}

	// API v1 setup
	apiv1 := group.Group("/v1")
	{
		apiv1.GET("", GetV1)
		apiv1.DELETE("", co.Cleanup)
		apiv1.OPTIONS("", OptionsV1)
	}

	co.RegisterMonthRoutes(apiv1.Group("/months"))
	co.RegisterDayRoutes(apiv1.Group("/days"))
	co.RegisterImportExportRoutes(apiv1)
	co.RegisterBackupRoutes(apiv1.Group("/backups"))
}

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Version string `json:"version" example:"https://example.com/version"`
	Metrics string `json:"metrics" example:"https://example.com/metrics"`
	V1      string `json:"v1" example:"https://example.com/v1"`
}

// GetRoot returns the link list of the API
//
//	@Summary		API root
//	@Description	Entrypoint for the API, listing all endpoints
//	@Tags			General
//	@Success		200	{object}	RootResponse
//	@Router			/ [get]
func GetRoot(c *gin.Context) {
	url := httputil.RequestHost(c)

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Version: url + "/version",
			Metrics: url + "/metrics",
			V1:      httputil.RequestPathV1(c),
		},
	})
}

type VersionResponse struct {
	Data VersionObject `json:"data"`
}

type VersionObject struct {
	Version string `json:"version" example:"1.1.0"`
}

// GetVersion returns the software version
//
//	@Summary		API version
//	@Description	Returns the software version of the API
//	@Tags			General
//	@Success		200	{object}	VersionResponse
//	@Router			/version [get]
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{
		Data: VersionObject{
			Version: version,
		},
	})
}

// OptionsRoot returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/ [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}

// OptionsVersion returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/version [options]
func OptionsVersion(c *gin.Context) {
	httputil.OptionsGet(c)
}

type V1Response struct {
	Links V1Links `json:"links"`
}

type V1Links struct {
	Months  string `json:"months" example:"https://example.com/v1/months"`
	Days    string `json:"days" example:"https://example.com/v1/days"`
	Export  string `json:"export" example:"https://example.com/v1/export"`
	Import  string `json:"import" example:"https://example.com/v1/import"`
	Backups string `json:"backups" example:"https://example.com/v1/backups"`
}

// GetV1 returns the v1 API link list
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			General
//	@Success		200	{object}	V1Response
//	@Router			/v1 [get]
func GetV1(c *gin.Context) {
	c.JSON(http.StatusOK, V1Response{
		Links: V1Links{
			Months:  httputil.RequestPathV1(c) + "/months",
			Days:    httputil.RequestPathV1(c) + "/days",
			Export:  httputil.RequestPathV1(c) + "/export",
			Import:  httputil.RequestPathV1(c) + "/import",
			Backups: httputil.RequestPathV1(c) + "/backups",
		},
	})
}

// OptionsV1 returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/v1 [options]
func OptionsV1(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}
