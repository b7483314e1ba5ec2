package v1_test

import (
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	v1 "github.com/umuryango/backend/internal/controllers/v1"
	"github.com/umuryango/backend/internal/importer"
	"github.com/umuryango/backend/test"
)

func (suite *TestSuiteStandard) export() importer.Document {
	recorder := suite.request(http.MethodGet, "/v1/export", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ExportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	return response.Data
}

func (suite *TestSuiteStandard) TestExportEmpty() {
	doc := suite.export()

	assert.Equal(suite.T(), importer.DocumentVersion, doc.Version)
	assert.Equal(suite.T(), testNow, doc.ExportDate)
	require.NotNil(suite.T(), doc.BudgetHistory)
	assert.Empty(suite.T(), doc.MonthlyBudgets)
}

func (suite *TestSuiteStandard) TestExport() {
	suite.createTestItem("2025-03-10", "noon", "Riz", 2500)

	doc := suite.export()

	require.Contains(suite.T(), doc.MonthlyBudgets, "2025-3")
	assert.Len(suite.T(), doc.MonthlyBudgets["2025-3"].Days, 1)
	assert.NotNil(suite.T(), doc.BudgetHistory.Get("2025-3"))
}

func (suite *TestSuiteStandard) TestImportRoundTrip() {
	suite.createTestItem("2025-03-10", "noon", "Riz", 2500)

	doc := suite.export()
	data, err := json.Marshal(doc)
	require.Nil(suite.T(), err)

	// Wipe everything, then import the document again
	recorder := suite.request(http.MethodDelete, "/v1?confirm=yes-please-delete-everything", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	body, headers := test.MultipartFile(suite.T(), "export.json", data)
	recorder = suite.request(http.MethodPost, "/v1/import", body, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ImportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), 1, response.Data.MonthsImported)
	assert.Equal(suite.T(), 1, response.Data.MonthsTotal)

	// The planned day is back
	var day v1.DayResponse
	recorder = suite.request(http.MethodGet, "/v1/days/2025-03-10", nil)
	test.DecodeResponse(suite.T(), &recorder, &day)
	require.NotNil(suite.T(), day.Data)
	assert.True(suite.T(), day.Data.Total.Equal(decimal.NewFromInt(2500)))
}

func (suite *TestSuiteStandard) TestImportNoFile() {
	recorder := suite.request(http.MethodPost, "/v1/import", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	assert.Equal(suite.T(), "you must send a file to this endpoint", test.DecodeError(suite.T(), recorder.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestImportWrongSuffix() {
	body, headers := test.MultipartFile(suite.T(), "export.csv", []byte("a,b,c"))
	recorder := suite.request(http.MethodPost, "/v1/import", body, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	assert.Equal(suite.T(), "this endpoint only supports .json files", test.DecodeError(suite.T(), recorder.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestImportInvalidDocument() {
	suite.createTestItem("2025-03-10", "noon", "Riz", 2500)
	before := suite.export()

	tests := []struct {
		name    string
		content string
	}{
		{"corrupt.json", "][ not json"},
		{"wrong-format.json", `{"someOtherApp":true}`},
	}

	for _, tt := range tests {
		body, headers := test.MultipartFile(suite.T(), tt.name, []byte(tt.content))
		recorder := suite.request(http.MethodPost, "/v1/import", body, headers)
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	}

	// A rejected import leaves the state untouched
	after := suite.export()
	assert.Equal(suite.T(), before.MonthlyBudgets, after.MonthlyBudgets)
}

func (suite *TestSuiteStandard) TestImportMergesConflicts() {
	suite.createTestItem("2025-03-10", "noon", "Riz", 2500)

	// A foreign document with a different plan for the same day
	doc := suite.export()
	foreign := doc.MonthlyBudgets["2025-3"]
	foreign.Days[0].Meals[1].Items[0].Price = decimal.NewFromInt(9000)
	foreign.Days[0].Meals[1].Recalculate()
	foreign.Days[0].Recalculate()
	doc.MonthlyBudgets["2025-3"] = foreign

	data, err := json.Marshal(doc)
	require.Nil(suite.T(), err)

	body, headers := test.MultipartFile(suite.T(), "foreign.json", data)
	recorder := suite.request(http.MethodPost, "/v1/import", body, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ImportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), 1, response.Data.ConflictsResolved)

	// The session sees the merged state right away
	var day v1.DayResponse
	recorder = suite.request(http.MethodGet, "/v1/days/2025-03-10", nil)
	test.DecodeResponse(suite.T(), &recorder, &day)
	require.NotNil(suite.T(), day.Data)
	assert.True(suite.T(), day.Data.Total.Equal(decimal.NewFromInt(9000)))
}

func (suite *TestSuiteStandard) TestOptionsImportExport() {
	recorder := suite.request(http.MethodOptions, "/v1/export", nil)
	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
	assert.Equal(suite.T(), "GET", recorder.Header().Get("allow"))

	recorder = suite.request(http.MethodOptions, "/v1/import", nil)
	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
	assert.Equal(suite.T(), "POST", recorder.Header().Get("allow"))
}
