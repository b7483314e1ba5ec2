package v1_test

import (
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	v1 "github.com/umuryango/backend/internal/controllers/v1"
	"github.com/umuryango/backend/test"
)

func (suite *TestSuiteStandard) createTestContributor(name string, amount int64, expectedStatus ...int) v1.ContributorResponse {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := v1.ContributorEditable{Name: name, Amount: decimal.NewFromInt(amount)}
	recorder := suite.request(http.MethodPost, "/v1/months/2025-3/contributors", body)
	test.AssertHTTPStatus(suite.T(), &recorder, expectedStatus...)

	var response v1.ContributorResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	return response
}

func (suite *TestSuiteStandard) TestCreateContributorWithoutBudget() {
	suite.createTestContributor("Alice", 5000, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCreateContributor() {
	suite.createTestItem("2025-03-10", "noon", "Riz", 2500)

	response := suite.createTestContributor("Alice", 5000)

	assert.NotEmpty(suite.T(), response.Data.ID)
	assert.Equal(suite.T(), "Alice", response.Data.Name)
	assert.True(suite.T(), response.Data.TotalContribution.Equal(decimal.NewFromInt(5000)))

	// The entered amount counts as paid
	assert.True(suite.T(), response.Data.PaidAmount.Equal(decimal.NewFromInt(5000)))
	assert.True(suite.T(), response.Data.RemainingAmount.IsZero())

	var month v1.MonthResponse
	recorder := suite.request(http.MethodGet, "/v1/months/2025-3", nil)
	test.DecodeResponse(suite.T(), &recorder, &month)
	require.Len(suite.T(), month.Data.Contributors, 1)
}

func (suite *TestSuiteStandard) TestCreateContributorValidation() {
	suite.createTestItem("2025-03-10", "noon", "Riz", 2500)

	suite.createTestContributor("  ", 5000, http.StatusBadRequest)
	suite.createTestContributor("Alice", 0, http.StatusBadRequest)
	suite.createTestContributor("Alice", -100, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestUpdateContributor() {
	suite.createTestItem("2025-03-10", "noon", "Riz", 2500)
	created := suite.createTestContributor("Alice", 5000)

	body := map[string]any{"totalContribution": "8000"}
	recorder := suite.request(http.MethodPatch, "/v1/months/2025-3/contributors/"+created.Data.ID, body)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ContributorResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.True(suite.T(), response.Data.TotalContribution.Equal(decimal.NewFromInt(8000)))
	assert.True(suite.T(), response.Data.RemainingAmount.Equal(decimal.NewFromInt(3000)))
}

func (suite *TestSuiteStandard) TestUpdateContributorNotFound() {
	recorder := suite.request(http.MethodPatch, "/v1/months/2025-3/contributors/no-such-id", map[string]any{"name": "Bob"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestOptionsContributors() {
	recorder := suite.request(http.MethodOptions, "/v1/months/2025-3/contributors", nil)
	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
	assert.Equal(suite.T(), "POST", recorder.Header().Get("allow"))

	recorder = suite.request(http.MethodOptions, "/v1/months/2025-3/contributors/some-id", nil)
	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
	assert.Equal(suite.T(), "PATCH", recorder.Header().Get("allow"))
}
