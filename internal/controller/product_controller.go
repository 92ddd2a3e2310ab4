package controller

import (
	"github.com/Badmus2018/gogdripsv1/internal/dto"
	"github.com/Badmus2018/gogdripsv1/internal/service"
	"github.com/Badmus2018/gogdripsv1/pkg/errs"
	"github.com/Badmus2018/gogdripsv1/pkg/response"
	"github.com/Badmus2018/gogdripsv1/pkg/utils"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type ProductController struct {
	service service.ProductService
}

func CreateProductController(e *echo.Group, service service.ProductService, isLoggedIn echo.MiddlewareFunc) {
	c := ProductController{
		service: service,
	}
	e.GET("/products", c.GetProducts, isLoggedIn)
	e.GET("/products/:id", c.GetProductByID)
	e.POST("/products", c.AddProduct, isLoggedIn)
	e.PUT("/products", c.UpdateProduct, isLoggedIn)
	e.PUT("/products/:id", c.UpdateProduct, isLoggedIn)
	e.DELETE("/products/:id/images", c.DeleteProductImages, isLoggedIn)
	e.POST("/uploads", c.UploadImage, isLoggedIn)
}

func (c *ProductController) AddProduct(e echo.Context) error {
	_, _, role := utils.ExtractTokenUser(e)

	payload := dto.ProductRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
		return response.WriteErrorResponse(e, errs.ErrValidation, nil)
	}

	payload.UserRole = role

	resp, err := c.service.AddProduct(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *ProductController) GetProductByID(e echo.Context) error {
	id := e.Param("id")

	resp, err := c.service.GetProductByID(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *ProductController) GetProducts(e echo.Context) error {
	filter := dto.Filter{}
	err := e.Bind(&filter)
	if err != nil {
		log.Error().Err(err).Str("component", "GetProducts").Msg("")
	}

	resp, err := c.service.GetProducts(e.Request().Context(), filter)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully retrieved products record", resp)
}

func (c *ProductController) UpdateProduct(e echo.Context) error {
	_, _, role := utils.ExtractTokenUser(e)

	payload := dto.UpdateProductRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateProduct").Msg("")
		return response.WriteErrorResponse(e, errs.ErrValidation, nil)
	}

	// the edit form routes by path id; the legacy caller sends id in the body
	if id := e.Param("id"); id != "" {
		payload.ID = id
	}
	payload.UserRole = role

	resp, err := c.service.UpdateProduct(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *ProductController) DeleteProductImages(e echo.Context) error {
	_, _, role := utils.ExtractTokenUser(e)

	id := e.Param("id")

	err := c.service.DeleteProductImages(e.Request().Context(), id, role)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "All images deleted for product", nil)
}

func (c *ProductController) UploadImage(e echo.Context) error {
	_, _, role := utils.ExtractTokenUser(e)

	fileHeader, err := e.FormFile("file")
	if err != nil {
		log.Error().Err(err).Str("component", "UploadImage").Msg("")
		return response.WriteErrorResponse(e, errs.ErrValidation, nil)
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Error().Err(err).Str("component", "UploadImage").Msg("")
		return response.WriteErrorResponse(e, errs.ErrInternalServer, nil)
	}
	defer file.Close()

	url, err := c.service.UploadImage(e.Request().Context(), fileHeader.Filename, file, role)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", dto.UploadResponse{URL: url})
}
