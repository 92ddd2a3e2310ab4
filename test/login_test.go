package test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Badmus2018/gogdripsv1/internal/dto"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestLoginUnknownAccount() {
	payload := dto.LoginRequest{
		Email:    "nobody@gogodrips.com",
		Password: "123456",
	}

	jsonPayload, err := json.Marshal(payload)
	require.NoError(s.T(), err)

	req, err := http.NewRequest(http.MethodPost,
		fmt.Sprintf("http://localhost:%s/api/v1/users/login", s.app.Config.ServicePort),
		bytes.NewBuffer(jsonPayload),
	)
	require.NoError(s.T(), err)

	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(s.T(), err)
	defer resp.Body.Close()

	s.Equal(http.StatusNotFound, resp.StatusCode)
}
