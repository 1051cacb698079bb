package controllerImp

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmhub/database"
	"farmhub/pkg/variety/repositoryImp"
	"farmhub/pkg/variety/service"
	"farmhub/pkg/variety/serviceImp"
)

func newServer(t *testing.T) *echo.Echo {
	db := database.OpenTest(t)
	h := New(serviceImp.NewVarietyService(repositoryImp.New(db)))
	e := echo.New()
	e.GET("/api/varieties", h.List)
	e.POST("/api/varieties", h.Create)
	e.GET("/api/varieties/:id", h.Get)
	e.PUT("/api/varieties/:id", h.Update)
	e.DELETE("/api/varieties/:id", h.Delete)
	e.POST("/api/varieties/import", h.Import)
	e.GET("/api/price-list", h.PriceList)
	return e
}

func upload(e *echo.Echo, filename, content string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, _ := mw.CreateFormFile("file", filename)
	_, _ = fw.Write([]byte(content))
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/varieties/import", &buf)
	req.Header.Set(echo.HeaderContentType, mw.FormDataContentType())
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestImportAndPriceList(t *testing.T) {
	e := newServer(t)

	rec := upload(e, "catalog.csv", "name,days_to_harvest,price_per_bunch\nMethi,30,20\nPalak,abc,15\n")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var res service.ImportResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, 1, res.Created)
	assert.Equal(t, 1, res.Skipped)
	assert.Len(t, res.Errors, 1)

	rec = upload(e, "catalog.csv", "name,price_per_bunch\nMethi,25\n")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, 0, res.Created)
	assert.Equal(t, 1, res.Updated)

	req := httptest.NewRequest(http.MethodGet, "/api/price-list", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	var prices []service.PriceEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &prices))
	require.Len(t, prices, 1)
	assert.Equal(t, "Methi", prices[0].Name)
	require.NotNil(t, prices[0].PricePerBunch)
	assert.Equal(t, 25.0, *prices[0].PricePerBunch)
}

func TestImportRejectsBadFiles(t *testing.T) {
	e := newServer(t)

	rec := upload(e, "catalog.txt", "name\nMethi\n")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = upload(e, "catalog.csv", "colour,size\nred,big\n")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/varieties/import", strings.NewReader(""))
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVarietyCRUD(t *testing.T) {
	e := newServer(t)
	send := func(method, path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	rec := send(http.MethodPost, "/api/varieties", `{"name":"Coriander","days_to_harvest":40,"price_per_kg":120}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var v struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	id := itoa(v.ID)

	rec = send(http.MethodPost, "/api/varieties", `{"name":"Coriander"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = send(http.MethodGet, "/api/varieties/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = send(http.MethodPut, "/api/varieties/"+id, `{"name":"Coriander","days_to_harvest":45}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"days_to_harvest":45`)

	rec = send(http.MethodDelete, "/api/varieties/"+id, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = send(http.MethodGet, "/api/varieties/"+id, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func itoa(id uint) string {
	b, _ := json.Marshal(id)
	return string(b)
}
