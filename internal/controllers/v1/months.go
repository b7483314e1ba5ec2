package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/umuryango/backend/internal/budget"
	"github.com/umuryango/backend/internal/httputil"
	"github.com/umuryango/backend/internal/models"
	"github.com/umuryango/backend/internal/types"
)

type MonthListResponse struct {
	Data MonthList `json:"data"`
}

// MonthList is the selectable months together with the current one.
type MonthList struct {
	Current budget.MonthSelection   `json:"current"`
	Months  []budget.MonthSelection `json:"months"`
}

type MonthResponse struct {
	Data models.MonthlyBudget `json:"data"`
}

type MonthDatesResponse struct {
	Data MonthDates `json:"data"`
}

// MonthDates are all dates of a month and the subset that is still editable.
type MonthDates struct {
	Dates         []types.Date `json:"dates"`
	EditableDates []types.Date `json:"editableDates"`
}

type ContributorResponse struct {
	Data models.Contributor `json:"data"`
}

// parseMonthID parses the month id from the request path.
func parseMonthID(c *gin.Context) (types.Month, bool) {
	m, err := types.ParseMonthID(c.Param("id"))
	if err != nil {
		abort(c, errInvalidMonthID)
		return types.Month{}, false
	}

	return m, true
}

// RegisterMonthRoutes registers the routes for months with
// the RouterGroup that is passed.
func (co Controller) RegisterMonthRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsMonthList)
		r.GET("", co.GetMonths)
	}

	{
		r.OPTIONS("/:id", co.OptionsMonthDetail)
		r.GET("/:id", co.GetMonth)
		r.OPTIONS("/:id/dates", co.OptionsMonthDates)
		r.GET("/:id/dates", co.GetMonthDates)
		r.OPTIONS("/:id/contributors", co.OptionsContributorList)
		r.POST("/:id/contributors", co.CreateContributor)
		r.OPTIONS("/:id/contributors/:contributorId", co.OptionsContributorDetail)
		r.PATCH("/:id/contributors/:contributorId", co.UpdateContributor)
	}
}

// OptionsMonthList returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
//	@Tags			Months
//	@Success		204
//	@Router			/v1/months [options]
func (co Controller) OptionsMonthList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// OptionsMonthDetail returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
//	@Tags			Months
//	@Success		204
//	@Param			id	path	string	true	"Month ID formatted as YYYY-M"
//	@Router			/v1/months/{id} [options]
func (co Controller) OptionsMonthDetail(c *gin.Context) {
	if _, ok := parseMonthID(c); !ok {
		return
	}

	httputil.OptionsGet(c)
}

// OptionsMonthDates returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
//	@Tags			Months
//	@Success		204
//	@Param			id	path	string	true	"Month ID formatted as YYYY-M"
//	@Router			/v1/months/{id}/dates [options]
func (co Controller) OptionsMonthDates(c *gin.Context) {
	if _, ok := parseMonthID(c); !ok {
		return
	}

	httputil.OptionsGet(c)
}

// GetMonths returns the months available for planning
//
//	@Summary		List months
//	@Description	Returns the months available for planning and the current month.
//	@Tags			Months
//	@Produce		json
//	@Success		200	{object}	MonthListResponse
//	@Failure		500	{object}	httperror.Error
//	@Router			/v1/months [get]
func (co Controller) GetMonths(c *gin.Context) {
	months, err := co.Service.AvailableMonths()
	if err != nil {
		abort(c, err)
		return
	}

	current := co.Service.CurrentMonth()

	c.JSON(http.StatusOK, MonthListResponse{
		Data: MonthList{
			Current: budget.NewMonthSelection(current),
			Months:  months,
		},
	})
}

// GetMonth returns the budget of one month
//
//	@Summary		Get month
//	@Description	Returns the budget of the month and makes it the active month. A month that has never been planned starts out empty.
//	@Tags			Months
//	@Produce		json
//	@Success		200	{object}	MonthResponse
//	@Failure		400	{object}	httperror.Error
//	@Failure		500	{object}	httperror.Error
//	@Param			id	path	string	true	"Month ID formatted as YYYY-M"
//	@Router			/v1/months/{id} [get]
func (co Controller) GetMonth(c *gin.Context) {
	m, ok := parseMonthID(c)
	if !ok {
		return
	}

	b, err := co.Service.SelectMonth(m)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, MonthResponse{Data: b})
}

// GetMonthDates returns the dates of one month
//
//	@Summary		Get month dates
//	@Description	Returns every date of the month and the subset that can still be edited.
//	@Tags			Months
//	@Produce		json
//	@Success		200	{object}	MonthDatesResponse
//	@Failure		400	{object}	httperror.Error
//	@Param			id	path	string	true	"Month ID formatted as YYYY-M"
//	@Router			/v1/months/{id}/dates [get]
func (co Controller) GetMonthDates(c *gin.Context) {
	m, ok := parseMonthID(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, MonthDatesResponse{
		Data: MonthDates{
			Dates:         co.Service.MonthDates(m),
			EditableDates: co.Service.EditableDates(m),
		},
	})
}
