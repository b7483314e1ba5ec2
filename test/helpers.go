// Package test contains helpers for HTTP tests.
package test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/umuryango/backend/internal/httperror"
)

// TmpFile returns the path to a unique file to be used in tests
func TmpFile(t *testing.T) string {
	dir := t.TempDir()
	return filepath.Join(dir, uuid.New().String())
}

// Request is a helper method to simplify making a HTTP request for tests.
func Request(r *gin.Engine, t *testing.T, method, url string, body any, headers ...map[string]string) httptest.ResponseRecorder {
	var byteBuffer *bytes.Buffer

	// If the body is a string, convert it to bytes
	if body == nil {
		byteBuffer = new(bytes.Buffer)
	} else if reflect.TypeOf(body).Kind() == reflect.String {
		byteBuffer = bytes.NewBufferString(body.(string))
	} else if reflect.TypeOf(body).Kind() == reflect.Struct || reflect.TypeOf(body).Kind() == reflect.Map {
		byteStr, err := json.Marshal(body)
		if err != nil {
			assert.Fail(t, "Request body could not be marshalled from struct input", err)
		}
		byteBuffer = bytes.NewBuffer(byteStr)
	} else {
		// Assume we got sent a *bytes.Buffer for e.g. a file
		byteBuffer = body.(*bytes.Buffer)
	}

	recorder := httptest.NewRecorder()
	req, _ := http.NewRequest(method, url, byteBuffer)

	for _, headerMap := range headers {
		for header, value := range headerMap {
			req.Header.Set(header, value)
		}
	}

	r.ServeHTTP(recorder, req)

	return *recorder
}

// MultipartFile wraps content into a multipart body for file upload requests.
//
// The body is returned as a buffer and a map for the HTTP request headers.
func MultipartFile(t *testing.T, name string, content []byte) (*bytes.Buffer, map[string]string) {
	body := new(bytes.Buffer)

	mw := multipart.NewWriter(body)

	w, err := mw.CreateFormFile("file", name)
	if err != nil {
		assert.Fail(t, err.Error())
	}

	if _, err := io.Copy(w, bytes.NewReader(content)); err != nil {
		assert.Fail(t, err.Error())
	}

	mw.Close()

	return body, map[string]string{"Content-Type": mw.FormDataContentType()}
}

// DecodeResponse decodes an HTTP response into a target struct.
func DecodeResponse(t *testing.T, r *httptest.ResponseRecorder, target any) {
	err := json.Unmarshal(r.Body.Bytes(), &target)
	if err != nil {
		assert.FailNow(t, "Parsing error", "Unable to parse response from server %q into %v, '%v', Request ID: %s", r.Body, reflect.TypeOf(target), err, r.Result().Header.Get("x-request-id"))
	}
}

// AssertHTTPStatus verifies that the HTTP response status is correct
func AssertHTTPStatus(t *testing.T, r *httptest.ResponseRecorder, expectedStatus ...int) {
	require.Contains(t, expectedStatus, r.Code, "HTTP status is wrong. Request ID: '%s' Response body: %s", r.Result().Header.Get("x-request-id"), r.Body.String())
}

// DecodeError returns the error message of a response.
func DecodeError(t *testing.T, s []byte) string {
	var r httperror.Error
	if err := json.Unmarshal(s, &r); err != nil {
		assert.Fail(t, "Not valid JSON!", "%s", s)
	}

	return r.Message
}
