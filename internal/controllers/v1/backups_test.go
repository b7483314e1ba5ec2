package v1_test

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	v1 "github.com/umuryango/backend/internal/controllers/v1"
	"github.com/umuryango/backend/test"
)

func (suite *TestSuiteStandard) createTestBackup() v1.BackupResponse {
	recorder := suite.request(http.MethodPost, "/v1/backups", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.BackupResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	return response
}

func (suite *TestSuiteStandard) TestCreateBackup() {
	suite.createTestItem("2025-03-10", "noon", "Riz", 2500)

	backup := suite.createTestBackup()
	assert.Equal(suite.T(), "umuryango_budget_2025-03-07.json", backup.Data.Name)

	// The file exists on disk
	_, err := os.Stat(filepath.Join(suite.backupDir, backup.Data.Name))
	assert.Nil(suite.T(), err)
}

func (suite *TestSuiteStandard) TestListBackups() {
	recorder := suite.request(http.MethodGet, "/v1/backups", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BackupListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Empty(suite.T(), response.Data)

	suite.createTestBackup()

	recorder = suite.request(http.MethodGet, "/v1/backups", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), []string{"umuryango_budget_2025-03-07.json"}, response.Data)
}

func (suite *TestSuiteStandard) TestRestoreBackup() {
	suite.createTestItem("2025-03-10", "noon", "Riz", 2500)
	backup := suite.createTestBackup()

	// Wipe everything, then restore
	recorder := suite.request(http.MethodDelete, "/v1?confirm=yes-please-delete-everything", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = suite.request(http.MethodPost, "/v1/backups/"+backup.Data.Name+"/restore", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ImportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), 1, response.Data.MonthsTotal)

	var day v1.DayResponse
	recorder = suite.request(http.MethodGet, "/v1/days/2025-03-10", nil)
	test.DecodeResponse(suite.T(), &recorder, &day)
	require.NotNil(suite.T(), day.Data)
	assert.True(suite.T(), day.Data.Total.Equal(decimal.NewFromInt(2500)))
}

func (suite *TestSuiteStandard) TestRestoreBackupNotFound() {
	recorder := suite.request(http.MethodPost, "/v1/backups/umuryango_budget_1999-01-01.json/restore", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestRestoreBackupInvalidName() {
	recorder := suite.request(http.MethodPost, "/v1/backups/notes.txt/restore", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestOptionsBackups() {
	recorder := suite.request(http.MethodOptions, "/v1/backups", nil)
	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
	assert.Equal(suite.T(), "GET, POST", recorder.Header().Get("allow"))

	recorder = suite.request(http.MethodOptions, "/v1/backups/some.json/restore", nil)
	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
	assert.Equal(suite.T(), "POST", recorder.Header().Get("allow"))
}
