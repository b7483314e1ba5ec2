package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/umuryango/backend/internal/httputil"
	"github.com/umuryango/backend/internal/models"
	"github.com/umuryango/backend/internal/types"
)

type DayResponse struct {
	Data *models.DayBudget `json:"data"`
}

// parseDate parses the date from the request path.
func parseDate(c *gin.Context) (types.Date, bool) {
	date, err := types.ParseDate(c.Param("date"))
	if err != nil {
		abort(c, errInvalidDate)
		return types.Date{}, false
	}

	return date, true
}

// selectOwningMonth makes the month the date belongs to the active one.
// Every day request carries its date, so the session always follows the
// request instead of requiring a prior month load.
func (co Controller) selectOwningMonth(c *gin.Context, date types.Date) bool {
	if _, err := co.Service.SelectMonth(date.Month()); err != nil {
		abort(c, err)
		return false
	}

	return true
}

// RegisterDayRoutes registers the routes for days with
// the RouterGroup that is passed.
func (co Controller) RegisterDayRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("/:date", co.OptionsDayDetail)
		r.GET("/:date", co.GetDay)
		r.OPTIONS("/:date/validate", co.OptionsDayValidate)
		r.POST("/:date/validate", co.ValidateDay)
		r.OPTIONS("/:date/duplicate", co.OptionsDayDuplicate)
		r.POST("/:date/duplicate", co.DuplicateDay)
		r.OPTIONS("/:date/meals/:type/items", co.OptionsMealItemList)
		r.POST("/:date/meals/:type/items", co.CreateMealItem)
		r.PUT("/:date/meals/:type/items", co.ReplaceMealItems)
		r.OPTIONS("/:date/meals/:type/items/:itemId", co.OptionsMealItemDetail)
		r.DELETE("/:date/meals/:type/items/:itemId", co.DeleteMealItem)
	}
}

// OptionsDayDetail returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
//	@Tags			Days
//	@Success		204
//	@Param			date	path	string	true	"Date formatted as YYYY-MM-DD"
//	@Router			/v1/days/{date} [options]
func (co Controller) OptionsDayDetail(c *gin.Context) {
	if _, ok := parseDate(c); !ok {
		return
	}

	httputil.OptionsGet(c)
}

// OptionsDayValidate returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
//	@Tags			Days
//	@Success		204
//	@Param			date	path	string	true	"Date formatted as YYYY-MM-DD"
//	@Router			/v1/days/{date}/validate [options]
func (co Controller) OptionsDayValidate(c *gin.Context) {
	if _, ok := parseDate(c); !ok {
		return
	}

	httputil.OptionsPost(c)
}

// OptionsDayDuplicate returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
//	@Tags			Days
//	@Success		204
//	@Param			date	path	string	true	"Date formatted as YYYY-MM-DD"
//	@Router			/v1/days/{date}/duplicate [options]
func (co Controller) OptionsDayDuplicate(c *gin.Context) {
	if _, ok := parseDate(c); !ok {
		return
	}

	httputil.OptionsPost(c)
}

// OptionsMealItemList returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
//	@Tags			Days
//	@Success		204
//	@Param			date	path	string	true	"Date formatted as YYYY-MM-DD"
//	@Param			type	path	string	true	"Meal type (morning, noon, evening)"
//	@Router			/v1/days/{date}/meals/{type}/items [options]
func (co Controller) OptionsMealItemList(c *gin.Context) {
	if _, ok := parseDate(c); !ok {
		return
	}

	httputil.OptionsPostPut(c)
}

// OptionsMealItemDetail returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
//	@Tags			Days
//	@Success		204
//	@Param			date	path	string	true	"Date formatted as YYYY-MM-DD"
//	@Param			type	path	string	true	"Meal type (morning, noon, evening)"
//	@Param			itemId	path	string	true	"ID of the meal item"
//	@Router			/v1/days/{date}/meals/{type}/items/{itemId} [options]
func (co Controller) OptionsMealItemDetail(c *gin.Context) {
	if _, ok := parseDate(c); !ok {
		return
	}

	httputil.OptionsDelete(c)
}

// GetDay returns the budget of one day
//
//	@Summary		Get day
//	@Description	Returns the day's budget within its month. The data is null when the day has never been planned.
//	@Tags			Days
//	@Produce		json
//	@Success		200	{object}	DayResponse
//	@Failure		400	{object}	httperror.Error
//	@Failure		500	{object}	httperror.Error
//	@Param			date	path	string	true	"Date formatted as YYYY-MM-DD"
//	@Router			/v1/days/{date} [get]
func (co Controller) GetDay(c *gin.Context) {
	date, ok := parseDate(c)
	if !ok {
		return
	}

	if !co.selectOwningMonth(c, date) {
		return
	}

	c.JSON(http.StatusOK, DayResponse{Data: co.Service.GetDay(date)})
}

// CreateMealItem adds an item to a meal
//
//	@Summary		Create meal item
//	@Description	Adds an item to the named meal of the day, creating the day as needed.
//	@Tags			Days
//	@Accept			json
//	@Produce		json
//	@Success		201	{object}	DayResponse
//	@Failure		400	{object}	httperror.Error
//	@Failure		500	{object}	httperror.Error
//	@Param			date	path	string				true	"Date formatted as YYYY-MM-DD"
//	@Param			type	path	string				true	"Meal type (morning, noon, evening)"
//	@Param			item	body	MealItemEditable	true	"Meal item"
//	@Router			/v1/days/{date}/meals/{type}/items [post]
func (co Controller) CreateMealItem(c *gin.Context) {
	date, ok := parseDate(c)
	if !ok {
		return
	}

	var data MealItemEditable
	if err := httputil.BindData(c, &data); err != nil {
		abort(c, err)
		return
	}

	if err := data.validate(); err != nil {
		abort(c, err)
		return
	}

	if !co.selectOwningMonth(c, date) {
		return
	}

	day, err := co.Service.AddMealItem(date, models.MealType(c.Param("type")), data.model())
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusCreated, DayResponse{Data: &day})
}

// ReplaceMealItems replaces all items of a meal
//
//	@Summary		Replace meal items
//	@Description	Replaces the whole item list of the named meal. Every item gets a fresh ID. This backs pasting copied meals.
//	@Tags			Days
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	DayResponse
//	@Failure		400	{object}	httperror.Error
//	@Failure		500	{object}	httperror.Error
//	@Param			date	path	string				true	"Date formatted as YYYY-MM-DD"
//	@Param			type	path	string				true	"Meal type (morning, noon, evening)"
//	@Param			items	body	MealItemsEditable	true	"Meal items"
//	@Router			/v1/days/{date}/meals/{type}/items [put]
func (co Controller) ReplaceMealItems(c *gin.Context) {
	date, ok := parseDate(c)
	if !ok {
		return
	}

	var data MealItemsEditable
	if err := httputil.BindData(c, &data); err != nil {
		abort(c, err)
		return
	}

	if err := data.validate(); err != nil {
		abort(c, err)
		return
	}

	day, err := co.Service.ReplaceMealItems(date, models.MealType(c.Param("type")), data.models())
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, DayResponse{Data: &day})
}

// DeleteMealItem removes an item from a meal
//
//	@Summary		Delete meal item
//	@Description	Removes the item from the named meal of the day. Removing from a day that does not exist does nothing.
//	@Tags			Days
//	@Produce		json
//	@Success		200	{object}	DayResponse
//	@Failure		400	{object}	httperror.Error
//	@Failure		500	{object}	httperror.Error
//	@Param			date	path	string	true	"Date formatted as YYYY-MM-DD"
//	@Param			type	path	string	true	"Meal type (morning, noon, evening)"
//	@Param			itemId	path	string	true	"ID of the meal item"
//	@Router			/v1/days/{date}/meals/{type}/items/{itemId} [delete]
func (co Controller) DeleteMealItem(c *gin.Context) {
	date, ok := parseDate(c)
	if !ok {
		return
	}

	if !co.selectOwningMonth(c, date) {
		return
	}

	day, err := co.Service.RemoveMealItem(date, models.MealType(c.Param("type")), c.Param("itemId"))
	if err != nil {
		abort(c, err)
		return
	}

	if day.ID == "" {
		c.JSON(http.StatusOK, DayResponse{Data: nil})
		return
	}

	c.JSON(http.StatusOK, DayResponse{Data: &day})
}

// DuplicateDay copies meals onto a day
//
//	@Summary		Duplicate day
//	@Description	Replaces the day's three meals with copies of the source meals. Meal types without source items become empty.
//	@Tags			Days
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	DayResponse
//	@Failure		400	{object}	httperror.Error
//	@Failure		500	{object}	httperror.Error
//	@Param			date	path	string		true	"Date formatted as YYYY-MM-DD"
//	@Param			day		body	DayEditable	true	"Source meals"
//	@Router			/v1/days/{date}/duplicate [post]
func (co Controller) DuplicateDay(c *gin.Context) {
	date, ok := parseDate(c)
	if !ok {
		return
	}

	var data DayEditable
	if err := httputil.BindData(c, &data); err != nil {
		abort(c, err)
		return
	}

	day, err := co.Service.DuplicateFullDay(date, data.Meals)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, DayResponse{Data: &day})
}

// ValidateDay validates a day
//
//	@Summary		Validate day
//	@Description	Marks the day as validated. Validated days count into the consumed budget and can no longer be edited. Validating twice does nothing.
//	@Tags			Days
//	@Produce		json
//	@Success		200	{object}	DayResponse
//	@Failure		400	{object}	httperror.Error
//	@Failure		500	{object}	httperror.Error
//	@Param			date	path	string	true	"Date formatted as YYYY-MM-DD"
//	@Router			/v1/days/{date}/validate [post]
func (co Controller) ValidateDay(c *gin.Context) {
	date, ok := parseDate(c)
	if !ok {
		return
	}

	if !co.selectOwningMonth(c, date) {
		return
	}

	day, err := co.Service.ValidateDay(date)
	if err != nil {
		abort(c, err)
		return
	}

	// An absent day stays absent, validation does not create days.
	if day.ID == "" {
		c.JSON(http.StatusOK, DayResponse{Data: nil})
		return
	}

	c.JSON(http.StatusOK, DayResponse{Data: &day})
}
