package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Cleanup permanently deletes all data
//
//	@Summary		Delete everything
//	@Description	Permanently deletes all months, the history and the active session. Requires the confirmation query parameter.
//	@Tags			v1
//	@Success		204
//	@Failure		400	{object}	httperror.Error
//	@Failure		500	{object}	httperror.Error
//	@Param			confirm	query	string	false	"Confirmation to delete all data. Must have the value 'yes-please-delete-everything'"
//	@Router			/v1 [delete]
func (co Controller) Cleanup(c *gin.Context) {
	var params struct {
		Confirm string `form:"confirm"`
	}

	err := c.Bind(&params)
	if err != nil || params.Confirm != "yes-please-delete-everything" {
		abort(c, errCleanupConfirmation)
		return
	}

	if err := co.Store.Clear(); err != nil {
		abort(c, err)
		return
	}

	co.Service.Reset()

	c.Status(http.StatusNoContent)
}
