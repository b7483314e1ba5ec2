package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/umuryango/backend/internal/httputil"
	"github.com/umuryango/backend/internal/models"
)

// OptionsContributorList returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
//	@Tags			Contributors
//	@Success		204
//	@Param			id	path	string	true	"Month ID formatted as YYYY-M"
//	@Router			/v1/months/{id}/contributors [options]
func (co Controller) OptionsContributorList(c *gin.Context) {
	if _, ok := parseMonthID(c); !ok {
		return
	}

	httputil.OptionsPost(c)
}

// OptionsContributorDetail returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
//	@Tags			Contributors
//	@Success		204
//	@Param			id				path	string	true	"Month ID formatted as YYYY-M"
//	@Param			contributorId	path	string	true	"ID of the contributor"
//	@Router			/v1/months/{id}/contributors/{contributorId} [options]
func (co Controller) OptionsContributorDetail(c *gin.Context) {
	if _, ok := parseMonthID(c); !ok {
		return
	}

	httputil.OptionsPatch(c)
}

// CreateContributor adds a contributor to a month
//
//	@Summary		Create contributor
//	@Description	Adds a contributor to the month. The amount counts as paid immediately.
//	@Tags			Contributors
//	@Accept			json
//	@Produce		json
//	@Success		201	{object}	ContributorResponse
//	@Failure		400	{object}	httperror.Error
//	@Failure		500	{object}	httperror.Error
//	@Param			id			path	string				true	"Month ID formatted as YYYY-M"
//	@Param			contributor	body	ContributorEditable	true	"Contributor"
//	@Router			/v1/months/{id}/contributors [post]
func (co Controller) CreateContributor(c *gin.Context) {
	m, ok := parseMonthID(c)
	if !ok {
		return
	}

	var data ContributorEditable
	if err := httputil.BindData(c, &data); err != nil {
		abort(c, err)
		return
	}

	if err := data.validate(); err != nil {
		abort(c, err)
		return
	}

	contributor, err := co.Service.AddContributor(m, strings.TrimSpace(data.Name), data.Amount)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusCreated, ContributorResponse{Data: contributor})
}

// UpdateContributor updates a contributor of a month
//
//	@Summary		Update contributor
//	@Description	Updates the fields of a contributor that are set in the request and recomputes its remaining amount.
//	@Tags			Contributors
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	ContributorResponse
//	@Failure		400	{object}	httperror.Error
//	@Failure		404	{object}	httperror.Error
//	@Failure		500	{object}	httperror.Error
//	@Param			id				path	string					true	"Month ID formatted as YYYY-M"
//	@Param			contributorId	path	string					true	"ID of the contributor"
//	@Param			contributor		body	models.ContributorUpdate	true	"Contributor"
//	@Router			/v1/months/{id}/contributors/{contributorId} [patch]
func (co Controller) UpdateContributor(c *gin.Context) {
	m, ok := parseMonthID(c)
	if !ok {
		return
	}

	var data models.ContributorUpdate
	if err := httputil.BindData(c, &data); err != nil {
		abort(c, err)
		return
	}

	contributor, err := co.Service.UpdateContributor(m, c.Param("contributorId"), data)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, ContributorResponse{Data: contributor})
}
