package v1_test

import (
	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	v1 "github.com/umuryango/backend/internal/controllers/v1"
	"github.com/umuryango/backend/internal/storage"
	"github.com/umuryango/backend/test"
)

func (suite *TestSuiteStandard) TestGetMonths() {
	recorder := suite.request(http.MethodGet, "/v1/months", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.MonthListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Equal(suite.T(), "2025-3", response.Data.Current.ID)
	assert.Equal(suite.T(), "mars 2025", response.Data.Current.DisplayName)
	assert.Len(suite.T(), response.Data.Months, 12)
	assert.Equal(suite.T(), "2026-2", response.Data.Months[0].ID)
}

func (suite *TestSuiteStandard) TestGetMonth() {
	recorder := suite.request(http.MethodGet, "/v1/months/2025-3", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.MonthResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Equal(suite.T(), "2025-3", response.Data.ID)
	assert.Equal(suite.T(), "mars", response.Data.Month)
	assert.Equal(suite.T(), 2025, response.Data.Year)
	assert.Empty(suite.T(), response.Data.Days)
}

func (suite *TestSuiteStandard) TestGetMonthInvalidID() {
	for _, id := range []string{"2025-13", "2025-0", "march", "2025-03-07"} {
		recorder := suite.request(http.MethodGet, "/v1/months/"+id, nil)
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	}
}

func (suite *TestSuiteStandard) TestGetMonthNoDB() {
	suite.CloseDB()

	recorder := suite.request(http.MethodGet, "/v1/months/2025-3", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}

func (suite *TestSuiteStandard) TestGetMonthCorruptRecord() {
	require.Nil(suite.T(), suite.store.Set(storage.MonthKey("2025-3"), "{ not json"))

	// A record the backend cannot read is not the client's fault
	recorder := suite.request(http.MethodGet, "/v1/months/2025-3", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}

func (suite *TestSuiteStandard) TestGetMonthDates() {
	recorder := suite.request(http.MethodGet, "/v1/months/2025-3/dates", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.MonthDatesResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Len(suite.T(), response.Data.Dates, 31)

	// Today is March 7th, the 7th through the 31st remain editable
	assert.Len(suite.T(), response.Data.EditableDates, 25)
	assert.Equal(suite.T(), "2025-03-07", response.Data.EditableDates[0].String())
}

func (suite *TestSuiteStandard) TestOptionsMonths() {
	recorder := suite.request(http.MethodOptions, "/v1/months", nil)
	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
	assert.Equal(suite.T(), "GET", recorder.Header().Get("allow"))

	recorder = suite.request(http.MethodOptions, "/v1/months/2025-3", nil)
	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)

	recorder = suite.request(http.MethodOptions, "/v1/months/nonsense", nil)
	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)

	recorder = suite.request(http.MethodOptions, "/v1/months/2025-3/dates", nil)
	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}
