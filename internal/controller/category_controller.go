package controller

import (
	"github.com/Badmus2018/gogdripsv1/internal/service"
	"github.com/Badmus2018/gogdripsv1/pkg/response"
	"github.com/labstack/echo/v4"
)

type CategoryController struct {
	service service.CategoryService
}

func CreateCategoryController(e *echo.Group, service service.CategoryService) {
	cc := CategoryController{
		service: service,
	}
	e.GET("/categories", cc.GetCategories)
}

func (c *CategoryController) GetCategories(e echo.Context) error {
	resp, err := c.service.GetCategories(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}
