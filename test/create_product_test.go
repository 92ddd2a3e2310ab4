package test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Badmus2018/gogdripsv1/internal/dto"
	"github.com/Badmus2018/gogdripsv1/pkg/response"
	"github.com/labstack/echo/v4"
)

func (s *IntegrationTestSuite) Test_CreateProduct() {
	type TestCase struct {
		Name           string
		Request        dto.ProductRequest
		Token          string
		ExpectedStatus int
		AssertResponse func(s *IntegrationTestSuite, resp *http.Response)
	}

	testCases := []TestCase{
		{
			Name: "Valid request",
			Request: dto.ProductRequest{
				Name:        "Shirt",
				Description: "d",
				Brand:       "B",
				Category:    "Tops",
				Price:       "19.99",
				Stock:       "5",
			},
			Token:          s.adminToken,
			ExpectedStatus: http.StatusOK,
			AssertResponse: func(s *IntegrationTestSuite, resp *http.Response) {
				var envelope response.SuccessResponse
				s.NoError(json.NewDecoder(resp.Body).Decode(&envelope))

				dataBytes, err := json.Marshal(envelope.Data)
				s.NoError(err)

				var product dto.ProductResponse
				s.NoError(json.Unmarshal(dataBytes, &product))

				s.Equal(19.99, product.Price)
				s.Equal(int64(5), product.RemainingStock)
				s.True(product.InStock)
				s.Equal(float64(0), product.Discount)
				s.Equal(float64(0), product.Dmc)
				s.NotEmpty(product.ID)
			},
		},
		{
			Name: "Missing price",
			Request: dto.ProductRequest{
				Name:        "Shirt",
				Description: "d",
				Brand:       "B",
				Category:    "Tops",
				Stock:       "5",
			},
			Token:          s.adminToken,
			ExpectedStatus: http.StatusBadRequest,
		},
		{
			Name: "Missing name",
			Request: dto.ProductRequest{
				Description: "d",
				Brand:       "B",
				Category:    "Tops",
				Price:       "19.99",
			},
			Token:          s.adminToken,
			ExpectedStatus: http.StatusBadRequest,
		},
		{
			Name: "No token",
			Request: dto.ProductRequest{
				Name:        "Shirt",
				Description: "d",
				Brand:       "B",
				Category:    "Tops",
				Price:       "19.99",
			},
			ExpectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.Name, func() {
			reqBody, err := json.Marshal(tc.Request)
			s.NoError(err)

			req, err := http.NewRequest(http.MethodPost,
				fmt.Sprintf("http://localhost:%s/api/v1/products", s.app.Config.ServicePort),
				bytes.NewBuffer(reqBody),
			)
			s.NoError(err)

			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			if tc.Token != "" {
				req.Header.Set(echo.HeaderAuthorization, "Bearer "+tc.Token)
			}

			client := http.Client{}
			resp, err := client.Do(req)
			s.NoError(err)
			defer resp.Body.Close()

			s.Equal(tc.ExpectedStatus, resp.StatusCode)

			if tc.AssertResponse != nil {
				tc.AssertResponse(s, resp)
			}
		})
	}
}
