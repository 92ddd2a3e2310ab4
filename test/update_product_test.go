package test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Badmus2018/gogdripsv1/internal/dto"
	"github.com/Badmus2018/gogdripsv1/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) createProduct(payload dto.ProductRequest) dto.ProductResponse {
	reqBody, err := json.Marshal(payload)
	require.NoError(s.T(), err)

	req, err := http.NewRequest(http.MethodPost,
		fmt.Sprintf("http://localhost:%s/api/v1/products", s.app.Config.ServicePort),
		bytes.NewBuffer(reqBody),
	)
	require.NoError(s.T(), err)

	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+s.adminToken)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(s.T(), err)
	defer resp.Body.Close()

	require.Equal(s.T(), http.StatusOK, resp.StatusCode)

	var envelope response.SuccessResponse
	require.NoError(s.T(), json.NewDecoder(resp.Body).Decode(&envelope))

	dataBytes, err := json.Marshal(envelope.Data)
	require.NoError(s.T(), err)

	var product dto.ProductResponse
	require.NoError(s.T(), json.Unmarshal(dataBytes, &product))

	return product
}

func (s *IntegrationTestSuite) TestUpdateProduct() {
	created := s.createProduct(dto.ProductRequest{
		Name:        "Hoodie",
		Description: "warm",
		Brand:       "B",
		Category:    "Tops",
		Price:       "49.99",
		Stock:       "3",
		Image:       "x.png",
	})

	discount := "2.5"
	payload := dto.UpdateProductRequest{Discount: &discount}

	jsonPayload, err := json.Marshal(payload)
	require.NoError(s.T(), err)

	updateURL := fmt.Sprintf("http://localhost:%s/api/v1/products/%s", s.app.Config.ServicePort, created.ID)
	req, err := http.NewRequest(http.MethodPut, updateURL, bytes.NewBuffer(jsonPayload))
	require.NoError(s.T(), err)

	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+s.adminToken)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(s.T(), err)
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)

	var envelope response.SuccessResponse
	s.NoError(json.NewDecoder(resp.Body).Decode(&envelope))

	dataBytes, err := json.Marshal(envelope.Data)
	s.NoError(err)

	var updated dto.ProductResponse
	s.NoError(json.Unmarshal(dataBytes, &updated))

	s.Equal(2.5, updated.Discount)
	s.Equal("x.png", updated.Image, "fields absent from the payload must stay untouched")
	s.Equal(created.InStock, updated.InStock)
}

func (s *IntegrationTestSuite) TestUpdateProductUnknownID() {
	visible := false
	payload := dto.UpdateProductRequest{IsVisible: &visible}

	jsonPayload, err := json.Marshal(payload)
	require.NoError(s.T(), err)

	updateURL := fmt.Sprintf("http://localhost:%s/api/v1/products/%s", s.app.Config.ServicePort, "01J00000000000000000000000")
	req, err := http.NewRequest(http.MethodPut, updateURL, bytes.NewBuffer(jsonPayload))
	require.NoError(s.T(), err)

	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+s.adminToken)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(s.T(), err)
	defer resp.Body.Close()

	s.Equal(http.StatusNotFound, resp.StatusCode)
}
