package v1

import (
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/umuryango/backend/internal/httputil"
	"github.com/umuryango/backend/internal/importer"
)

type ExportResponse struct {
	Data importer.Document `json:"data"`
}

type ImportResponse struct {
	Data importer.Result `json:"data"`
}

// getUploadedFile returns the form file and handles potential errors.
func getUploadedFile(c *gin.Context, suffix string) (multipart.File, error) {
	formFile, err := c.FormFile("file")
	if formFile == nil {
		return nil, errNoFilePost
	}
	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(formFile.Filename, suffix) {
		return nil, errWrongFileSuffix
	}

	f, err := formFile.Open()
	if err != nil {
		return nil, err
	}

	return f, nil
}

// RegisterImportExportRoutes registers the routes for export and import
// with the RouterGroup that is passed.
func (co Controller) RegisterImportExportRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("/export", co.OptionsExport)
		r.GET("/export", co.GetExport)
		r.OPTIONS("/import", co.OptionsImport)
		r.POST("/import", co.Import)
	}
}

// OptionsExport returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
//	@Tags			ImportExport
//	@Success		204
//	@Router			/v1/export [options]
func (co Controller) OptionsExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// OptionsImport returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
//	@Tags			ImportExport
//	@Success		204
//	@Router			/v1/import [options]
func (co Controller) OptionsImport(c *gin.Context) {
	httputil.OptionsPost(c)
}

// GetExport returns the full state as a portable document
//
//	@Summary		Export
//	@Description	Returns the budget history and every month as one document that can be imported elsewhere.
//	@Tags			ImportExport
//	@Produce		json
//	@Success		200	{object}	ExportResponse
//	@Failure		500	{object}	httperror.Error
//	@Router			/v1/export [get]
func (co Controller) GetExport(c *gin.Context) {
	doc, err := importer.Export(co.Store, co.Service.Now().UTC())
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, ExportResponse{Data: doc})
}

// Import merges an uploaded document into the local state
//
//	@Summary		Import
//	@Description	Merges an export document into the local state. Local validated days win over foreign unvalidated ones, otherwise the document wins. A file that is not a valid export changes nothing.
//	@Tags			ImportExport
//	@Accept			multipart/form-data
//	@Produce		json
//	@Success		200	{object}	ImportResponse
//	@Failure		400	{object}	httperror.Error
//	@Failure		500	{object}	httperror.Error
//	@Param			file	formData	file	true	"The export document"
//	@Router			/v1/import [post]
func (co Controller) Import(c *gin.Context) {
	f, err := getUploadedFile(c, ".json")
	if err != nil {
		abort(c, err)
		return
	}

	data, err := io.ReadAll(f)
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

// importDocument parses and merges a document through the service.
// Shared between import and backup restore.
func (co Controller) importDocument(data []byte) (importer.Result, error) {
	doc, err := importer.Parse(data)
	if err != nil {
		return importer.Result{}, err
	}

	return co.Service.Import(doc)
}
