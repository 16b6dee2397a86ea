package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/MarKarl30/UTS-BackEnd-Prog/core"
	"github.com/MarKarl30/UTS-BackEnd-Prog/mocks"
	"github.com/MarKarl30/UTS-BackEnd-Prog/models"
)

func setupProducts(r *gin.Engine, svc *mocks.ProductServiceMock) {
	h := NewProductHandler(svc)
	r.POST("/products", h.CreateProduct)
	r.GET("/products", h.ListProducts)
	r.GET("/products/:sku", h.GetProduct)
	r.PUT("/products/:sku", h.UpdateProduct)
	r.DELETE("/products/:sku", h.DeleteProduct)
}

func TestCreateProduct_Created(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc := new(mocks.ProductServiceMock)
	setupProducts(r, svc)

	req := models.CreateProductRequest{
		SKU: "SKU-1", ProductName: "Widget", Brand: "Acme", Price: 9.5, Category: "tools",
	}
	svc.On("CreateProduct", mock.Anything, req).
		Return(&models.PublicProduct{SKU: "SKU-1", ProductName: "Widget"}, nil)

	b, _ := json.Marshal(req)
	w := httptest.NewRecorder()
	httpReq := httptest.NewRequest(http.MethodPost, "/products", bytes.NewReader(b))
	httpReq.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, httpReq)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"sku":"SKU-1"`)
}

func TestCreateProduct_SKUConflict(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc := new(mocks.ProductServiceMock)
	setupProducts(r, svc)

	req := models.CreateProductRequest{
		SKU: "SKU-1", ProductName: "Widget", Brand: "Acme", Price: 9.5, Category: "tools",
	}
	svc.On("CreateProduct", mock.Anything, req).Return(nil, core.ErrConflict)

	b, _ := json.Marshal(req)
	w := httptest.NewRecorder()
	httpReq := httptest.NewRequest(http.MethodPost, "/products", bytes.NewReader(b))
	httpReq.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, httpReq)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGetProduct_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc := new(mocks.ProductServiceMock)
	setupProducts(r, svc)

	svc.On("GetProduct", mock.Anything, "missing").Return(nil, core.ErrNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products/missing", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListProducts_OK(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc := new(mocks.ProductServiceMock)
	setupProducts(r, svc)

	svc.On("ListProducts", mock.Anything, mock.Anything).
		Return(&core.QueryResult[models.PublicProduct]{
			Count: 1,
			Data:  []models.PublicProduct{{SKU: "SKU-1"}},
		}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products?search=wid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":1`)
}

func TestDeleteProduct_NoContent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc := new(mocks.ProductServiceMock)
	setupProducts(r, svc)

	svc.On("DeleteProduct", mock.Anything, "SKU-1").Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/products/SKU-1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}
