package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func OptionsGet(c *gin.Context) {
	c.Header("allow", "GET")
	c.Status(http.StatusNoContent)
}

func OptionsPost(c *gin.Context) {
	c.Header("allow", "POST")
	c.Status(http.StatusNoContent)
}

func OptionsGetDelete(c *gin.Context) {
	c.Header("allow", "GET, DELETE")
	c.Status(http.StatusNoContent)
}

func OptionsGetPost(c *gin.Context) {
	c.Header("allow", "GET, POST")
	c.Status(http.StatusNoContent)
}

func OptionsPostPut(c *gin.Context) {
	c.Header("allow", "POST, PUT")
	c.Status(http.StatusNoContent)
}

func OptionsDelete(c *gin.Context) {
	c.Header("allow", "DELETE")
	c.Status(http.StatusNoContent)
}

func OptionsPatch(c *gin.Context) {
	c.Header("allow", "PATCH")
	c.Status(http.StatusNoContent)
}
