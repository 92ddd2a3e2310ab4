package test

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Badmus2018/gogdripsv1/internal/dto"
	"github.com/Badmus2018/gogdripsv1/pkg/response"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestGetProductByID() {
	created := s.createProduct(dto.ProductRequest{
		Name:        "Sneakers",
		Description: "comfy",
		Brand:       "B",
		Category:    "Shoes",
		Price:       "89.99",
		Stock:       "2",
	})

	resp, err := http.Get(fmt.Sprintf("http://localhost:%s/api/v1/products/%s", s.app.Config.ServicePort, created.ID))
	require.NoError(s.T(), err)
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)

	var envelope response.SuccessResponse
	s.NoError(json.NewDecoder(resp.Body).Decode(&envelope))

	dataBytes, err := json.Marshal(envelope.Data)
	s.NoError(err)

	var detail dto.ProductDetailResponse
	s.NoError(json.Unmarshal(dataBytes, &detail))

	s.Equal(created.ID, detail.ID)
	s.Equal("Sneakers", detail.Name)
	s.NotNil(detail.Reviews)

	for i := 1; i < len(detail.Reviews); i++ {
		s.GreaterOrEqual(detail.Reviews[i-1].CreatedDate, detail.Reviews[i].CreatedDate)
	}
}

func (s *IntegrationTestSuite) TestGetProductByIDUnknown() {
	resp, err := http.Get(fmt.Sprintf("http://localhost:%s/api/v1/products/%s", s.app.Config.ServicePort, "01J00000000000000000000000"))
	require.NoError(s.T(), err)
	defer resp.Body.Close()

	s.Equal(http.StatusNotFound, resp.StatusCode)
}
