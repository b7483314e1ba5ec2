package v1_test

import (
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	v1 "github.com/umuryango/backend/internal/controllers/v1"
	"github.com/umuryango/backend/internal/models"
	"github.com/umuryango/backend/test"
)

// createTestItem adds a meal item and returns the updated day.
func (suite *TestSuiteStandard) createTestItem(date, meal, name string, price int64, expectedStatus ...int) v1.DayResponse {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := v1.MealItemEditable{Name: name, Price: decimal.NewFromInt(price)}
	recorder := suite.request(http.MethodPost, fmt.Sprintf("/v1/days/%s/meals/%s/items", date, meal), body)
	test.AssertHTTPStatus(suite.T(), &recorder, expectedStatus...)

	var response v1.DayResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	return response
}

func (suite *TestSuiteStandard) TestGetDayUnplanned() {
	recorder := suite.request(http.MethodGet, "/v1/days/2025-03-10", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.DayResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Nil(suite.T(), response.Data)
}

func (suite *TestSuiteStandard) TestGetDayInvalidDate() {
	recorder := suite.request(http.MethodGet, "/v1/days/10.03.2025", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCreateMealItem() {
	response := suite.createTestItem("2025-03-10", "noon", "Riz", 2500)

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), "2025-03-10", response.Data.ID)
	assert.Equal(suite.T(), models.StatusPlanned, response.Data.Status)
	assert.True(suite.T(), response.Data.Total.Equal(decimal.NewFromInt(2500)))

	noon := response.Data.Meal(models.MealNoon)
	require.NotNil(suite.T(), noon)
	require.Len(suite.T(), noon.Items, 1)
	assert.Equal(suite.T(), "Riz", noon.Items[0].Name)
	assert.NotEmpty(suite.T(), noon.Items[0].ID)

	// The day is readable afterwards
	recorder := suite.request(http.MethodGet, "/v1/days/2025-03-10", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var get v1.DayResponse
	test.DecodeResponse(suite.T(), &recorder, &get)
	require.NotNil(suite.T(), get.Data)
	assert.True(suite.T(), get.Data.Total.Equal(decimal.NewFromInt(2500)))
}

func (suite *TestSuiteStandard) TestCreateMealItemValidation() {
	// Unknown meal type
	suite.createTestItem("2025-03-10", "brunch", "Crêpes", 1000, http.StatusBadRequest)

	// Empty name
	suite.createTestItem("2025-03-10", "noon", "   ", 1000, http.StatusBadRequest)

	// Price must be positive
	suite.createTestItem("2025-03-10", "noon", "Riz", 0, http.StatusBadRequest)
	suite.createTestItem("2025-03-10", "noon", "Riz", -100, http.StatusBadRequest)

	// Past days are read-only
	suite.createTestItem("2025-03-06", "noon", "Riz", 2500, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCreateMealItemEmptyBody() {
	recorder := suite.request(http.MethodPost, "/v1/days/2025-03-10/meals/noon/items", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	assert.Equal(suite.T(), "the request body must not be empty", test.DecodeError(suite.T(), recorder.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestDeleteMealItem() {
	response := suite.createTestItem("2025-03-10", "noon", "Riz", 2500)
	itemID := response.Data.Meal(models.MealNoon).Items[0].ID

	recorder := suite.request(http.MethodDelete, "/v1/days/2025-03-10/meals/noon/items/"+itemID, nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var after v1.DayResponse
	test.DecodeResponse(suite.T(), &recorder, &after)
	require.NotNil(suite.T(), after.Data)
	assert.Empty(suite.T(), after.Data.Meal(models.MealNoon).Items)
	assert.Equal(suite.T(), models.StatusPending, after.Data.Status)
}

func (suite *TestSuiteStandard) TestDeleteMealItemAbsentDay() {
	recorder := suite.request(http.MethodDelete, "/v1/days/2025-03-10/meals/noon/items/whatever", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.DayResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Nil(suite.T(), response.Data)
}

func (suite *TestSuiteStandard) TestReplaceMealItems() {
	suite.createTestItem("2025-03-10", "noon", "Riz", 2500)

	body := v1.MealItemsEditable{Items: []v1.MealItemEditable{
		{Name: "Poisson", Price: decimal.NewFromInt(4000)},
		{Name: "Légumes", Price: decimal.NewFromInt(1500)},
	}}

	recorder := suite.request(http.MethodPut, "/v1/days/2025-03-10/meals/noon/items", body)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.DayResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Data)
	assert.Len(suite.T(), response.Data.Meal(models.MealNoon).Items, 2)
	assert.True(suite.T(), response.Data.Total.Equal(decimal.NewFromInt(5500)))
}

func (suite *TestSuiteStandard) TestReplaceMealItemsValidation() {
	body := v1.MealItemsEditable{Items: []v1.MealItemEditable{
		{Name: "", Price: decimal.NewFromInt(4000)},
	}}

	recorder := suite.request(http.MethodPut, "/v1/days/2025-03-10/meals/noon/items", body)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestValidateDay() {
	suite.createTestItem("2025-03-10", "noon", "Riz", 2500)

	recorder := suite.request(http.MethodPost, "/v1/days/2025-03-10/validate", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.DayResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Data)
	assert.True(suite.T(), response.Data.Validated)
	assert.Equal(suite.T(), models.StatusValidated, response.Data.Status)

	// The consumed budget follows the validation
	var month v1.MonthResponse
	recorder = suite.request(http.MethodGet, "/v1/months/2025-3", nil)
	test.DecodeResponse(suite.T(), &recorder, &month)
	assert.True(suite.T(), month.Data.ConsumedBudget.Equal(decimal.NewFromInt(2500)))

	// Validated days reject further edits
	suite.createTestItem("2025-03-10", "noon", "Extra", 1000, http.StatusBadRequest)

	// Validating again changes nothing
	recorder = suite.request(http.MethodPost, "/v1/days/2025-03-10/validate", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
}

func (suite *TestSuiteStandard) TestValidateAbsentDay() {
	recorder := suite.request(http.MethodPost, "/v1/days/2025-03-10/validate", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.DayResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Nil(suite.T(), response.Data)
}

func (suite *TestSuiteStandard) TestDuplicateDay() {
	source := suite.createTestItem("2025-03-10", "noon", "Riz", 2500)

	body := v1.DayEditable{Meals: source.Data.Meals}
	recorder := suite.request(http.MethodPost, "/v1/days/2025-03-11/duplicate", body)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.DayResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), "2025-03-11", response.Data.ID)
	assert.Len(suite.T(), response.Data.Meal(models.MealNoon).Items, 1)
	assert.Empty(suite.T(), response.Data.Meal(models.MealEvening).Items)
	assert.True(suite.T(), response.Data.Total.Equal(decimal.NewFromInt(2500)))
}

func (suite *TestSuiteStandard) TestDuplicateDayIntoPast() {
	source := suite.createTestItem("2025-03-10", "noon", "Riz", 2500)

	body := v1.DayEditable{Meals: source.Data.Meals}
	recorder := suite.request(http.MethodPost, "/v1/days/2025-03-06/duplicate", body)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestOptionsDays() {
	for _, path := range []string{
		"/v1/days/2025-03-10",
		"/v1/days/2025-03-10/validate",
		"/v1/days/2025-03-10/duplicate",
		"/v1/days/2025-03-10/meals/noon/items",
		"/v1/days/2025-03-10/meals/noon/items/some-id",
	} {
		recorder := suite.request(http.MethodOptions, path, nil)
		assert.Equal(suite.T(), http.StatusNoContent, recorder.Code, "OPTIONS %s", path)
	}

	recorder := suite.request(http.MethodOptions, "/v1/days/not-a-date", nil)
	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}
