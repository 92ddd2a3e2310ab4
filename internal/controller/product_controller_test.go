package controller

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Badmus2018/gogdripsv1/internal/dto"
	"github.com/Badmus2018/gogdripsv1/pkg/errs"
	"github.com/Badmus2018/gogdripsv1/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProductService struct {
	addResp    dto.ProductResponse
	addErr     error
	lastAdd    *dto.ProductRequest
	detailResp dto.ProductDetailResponse
	detailErr  error
	updateResp dto.ProductResponse
	updateErr  error
	lastUpdate *dto.UpdateProductRequest
	deleteErr  error
}

func (s *stubProductService) AddProduct(ctx context.Context, data dto.ProductRequest) (dto.ProductResponse, error) {
	s.lastAdd = &data
	return s.addResp, s.addErr
}

func (s *stubProductService) GetProductByID(ctx context.Context, externalID string) (dto.ProductDetailResponse, error) {
	return s.detailResp, s.detailErr
}

func (s *stubProductService) GetProducts(ctx context.Context, filter dto.Filter) (response.PaginationResponse, error) {
	return response.PaginationResponse{}, nil
}

func (s *stubProductService) UpdateProduct(ctx context.Context, data dto.UpdateProductRequest) (dto.ProductResponse, error) {
	s.lastUpdate = &data
	return s.updateResp, s.updateErr
}

func (s *stubProductService) DeleteProductImages(ctx context.Context, externalID string, userRole string) error {
	return s.deleteErr
}

func (s *stubProductService) UploadImage(ctx context.Context, filename string, contents io.Reader, userRole string) (string, error) {
	return "", nil
}

func (s *stubProductService) ConsumeEvent() {}

func TestAddProductHandler(t *testing.T) {
	svc := &stubProductService{addResp: dto.ProductResponse{ID: "p1", Name: "Shirt"}}
	c := ProductController{service: svc}

	body := `{"name":"Shirt","description":"d","brand":"B","category":"Tops","price":"19.99","stock":"5"}`
	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	ctx := echo.New().NewContext(req, rec)

	err := c.AddProduct(ctx)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, svc.lastAdd)
	assert.Equal(t, "Shirt", svc.lastAdd.Name)
	assert.Equal(t, "19.99", svc.lastAdd.Price)
	assert.Equal(t, "5", svc.lastAdd.Stock)

	var envelope response.SuccessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "success", envelope.Status)
}

func TestAddProductHandlerForbidden(t *testing.T) {
	svc := &stubProductService{addErr: errs.ErrForbidden}
	c := ProductController{service: svc}

	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(`{"name":"Shirt"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	ctx := echo.New().NewContext(req, rec)

	require.NoError(t, c.AddProduct(ctx))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUpdateProductHandlerUsesPathID(t *testing.T) {
	svc := &stubProductService{updateResp: dto.ProductResponse{ID: "p1", Discount: 2.5}}
	c := ProductController{service: svc}

	req := httptest.NewRequest(http.MethodPut, "/products/p1", strings.NewReader(`{"discount":"2.5"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	ctx := echo.New().NewContext(req, rec)
	ctx.SetParamNames("id")
	ctx.SetParamValues("p1")

	require.NoError(t, c.UpdateProduct(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, svc.lastUpdate)
	assert.Equal(t, "p1", svc.lastUpdate.ID)
	require.NotNil(t, svc.lastUpdate.Discount)
	assert.Equal(t, "2.5", *svc.lastUpdate.Discount)
	assert.Nil(t, svc.lastUpdate.InStock)
	assert.Nil(t, svc.lastUpdate.Image)
}

func TestUpdateProductHandlerNotFound(t *testing.T) {
	svc := &stubProductService{updateErr: errs.ErrProductNotFound}
	c := ProductController{service: svc}

	req := httptest.NewRequest(http.MethodPut, "/products/missing", strings.NewReader(`{"isVisible":false}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	ctx := echo.New().NewContext(req, rec)
	ctx.SetParamNames("id")
	ctx.SetParamValues("missing")

	require.NoError(t, c.UpdateProduct(ctx))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var envelope response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "Product not found", envelope.Message)
}

func TestGetProductByIDHandlerNotFound(t *testing.T) {
	svc := &stubProductService{detailErr: errs.ErrProductNotFound}
	c := ProductController{service: svc}

	req := httptest.NewRequest(http.MethodGet, "/products/missing", nil)
	rec := httptest.NewRecorder()
	ctx := echo.New().NewContext(req, rec)
	ctx.SetParamNames("id")
	ctx.SetParamValues("missing")

	require.NoError(t, c.GetProductByID(ctx))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteProductImagesHandler(t *testing.T) {
	svc := &stubProductService{}
	c := ProductController{service: svc}

	req := httptest.NewRequest(http.MethodDelete, "/products/p1/images", nil)
	rec := httptest.NewRecorder()
	ctx := echo.New().NewContext(req, rec)
	ctx.SetParamNames("id")
	ctx.SetParamValues("p1")

	require.NoError(t, c.DeleteProductImages(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope response.SuccessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "All images deleted for product", envelope.Message)
}
