package httputil

import (
	"errors"
	"io"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

var (
	ErrRequestBodyEmpty = errors.New("the request body must not be empty")
	ErrInvalidBody      = errors.New("the body of your request contains invalid or un-parseable data. Please check and try again")
)

// RequestHost returns the host the client requested, honoring the
// x-forwarded-proto, x-forwarded-host and x-forwarded-prefix headers a
// reverse proxy sets.
func RequestHost(c *gin.Context) string {
	scheme := "http"
	if c.Request.Header.Get("x-forwarded-proto") == "https" {
		scheme = "https"
	}

	host := c.Request.Host
	var forwardedPrefix string

	xForwardedHost := c.Request.Header.Get("x-forwarded-host")
	if xForwardedHost != "" {
		host = xForwardedHost

		forwardedPrefix = c.Request.Header.Get("x-forwarded-prefix")
	}

	return scheme + "://" + host + forwardedPrefix
}

// RequestPathV1 returns the URL with the prefix for API v1.
func RequestPathV1(c *gin.Context) string {
	return RequestHost(c) + "/v1"
}

// BindData binds the JSON request body to the struct passed in.
func BindData(c *gin.Context, data interface{}) error {
	if err := c.ShouldBindJSON(&data); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrRequestBodyEmpty
		}

		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return ErrInvalidBody
	}

	return nil
}
