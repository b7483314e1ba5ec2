package v1

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/umuryango/backend/internal/backup"
	"github.com/umuryango/backend/internal/httputil"
	"github.com/umuryango/backend/internal/importer"
)

type BackupListResponse struct {
	Data []string `json:"data"`
}

type BackupResponse struct {
	Data BackupInfo `json:"data"`
}

// BackupInfo names a backup file that was written.
type BackupInfo struct {
	Name string `json:"name" example:"umuryango_budget_2025-03-07.json"`
}

// RegisterBackupRoutes registers the routes for backups with
// the RouterGroup that is passed.
func (co Controller) RegisterBackupRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsBackupList)
		r.GET("", co.GetBackups)
		r.POST("", co.CreateBackup)
		r.OPTIONS("/:name/restore", co.OptionsBackupRestore)
		r.POST("/:name/restore", co.RestoreBackup)
	}
}

// OptionsBackupList returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
//	@Tags			Backups
//	@Success		204
//	@Router			/v1/backups [options]
func (co Controller) OptionsBackupList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// OptionsBackupRestore returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
//	@Tags			Backups
//	@Success		204
//	@Param			name	path	string	true	"Name of the backup file"
//	@Router			/v1/backups/{name}/restore [options]
func (co Controller) OptionsBackupRestore(c *gin.Context) {
	httputil.OptionsPost(c)
}

// GetBackups lists the backups on disk
//
//	@Summary		List backups
//	@Description	Returns the names of all backup files, newest first.
//	@Tags			Backups
//	@Produce		json
//	@Success		200	{object}	BackupListResponse
//	@Failure		500	{object}	httperror.Error
//	@Router			/v1/backups [get]
func (co Controller) GetBackups(c *gin.Context) {
	names, err := co.Backups.List()
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, BackupListResponse{Data: names})
}

// CreateBackup writes the current state to a backup file
//
//	@Summary		Create backup
//	@Description	Writes the full export document to a dated file in the backup directory. A backup created on the same day replaces the earlier one.
//	@Tags			Backups
//	@Produce		json
//	@Success		201	{object}	BackupResponse
//	@Failure		500	{object}	httperror.Error
//	@Router			/v1/backups [post]
func (co Controller) CreateBackup(c *gin.Context) {
	doc, err := importer.Export(co.Store, co.Service.Now().UTC())
	if err != nil {
		abort(c, err)
		return
	}

	data, err := json.Marshal(doc)
	if err != nil {
		abort(c, err)
		return
	}

	name := backup.FileName(co.Service.Now())
	if err := co.Backups.Save(name, data); err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusCreated, BackupResponse{Data: BackupInfo{Name: name}})
}

// RestoreBackup merges a backup file into the local state
//
//	@Summary		Restore backup
//	@Description	Imports the named backup file with the same merge rules as a document upload.
//	@Tags			Backups
//	@Produce		json
//	@Success		200	{object}	ImportResponse
//	@Failure		400	{object}	httperror.Error
//	@Failure		404	{object}	httperror.Error
//	@Failure		500	{object}	httperror.Error
//	@Param			name	path	string	true	"Name of the backup file"
//	@Router			/v1/backups/{name}/restore [post]
func (co Controller) RestoreBackup(c *gin.Context) {
	data, err := co.Backups.Load(c.Param("name"))
	if err != nil {
		abort(c, err)
		return
	}

	result, err := co.importDocument(data)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, ImportResponse{Data: result})
}
