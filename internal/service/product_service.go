package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/Badmus2018/gogdripsv1/config"
	"github.com/Badmus2018/gogdripsv1/internal/domain"
	"github.com/Badmus2018/gogdripsv1/internal/dto"
	"github.com/Badmus2018/gogdripsv1/internal/infrastructure/imagestore"
	"github.com/Badmus2018/gogdripsv1/internal/repository"
	"github.com/Badmus2018/gogdripsv1/pkg/errs"
	"github.com/Badmus2018/gogdripsv1/pkg/response"
	"github.com/Badmus2018/gogdripsv1/pkg/utils"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
	"gopkg.in/gomail.v2"
)

type ProductService interface {
	AddProduct(ctx context.Context, data dto.ProductRequest) (resp dto.ProductResponse, err error)
	GetProductByID(ctx context.Context, externalID string) (resp dto.ProductDetailResponse, err error)
	GetProducts(ctx context.Context, filter dto.Filter) (resp response.PaginationResponse, err error)
	UpdateProduct(ctx context.Context, data dto.UpdateProductRequest) (resp dto.ProductResponse, err error)
	DeleteProductImages(ctx context.Context, externalID string, userRole string) (err error)
	UploadImage(ctx context.Context, filename string, contents io.Reader, userRole string) (url string, err error)
	ConsumeEvent()
}

type ProductServiceImpl struct {
	repo          repository.ProductRepository
	config        config.Config
	kafkaProducer *kafka.Conn
	kafkaReader   *kafka.Reader
	imageStore    imagestore.Client
}

func CreateNewProductService(repo repository.ProductRepository, config config.Config, kafkaProducer *kafka.Conn, kafkaReader *kafka.Reader, imageStore imagestore.Client) ProductService {
	return &ProductServiceImpl{repo: repo, config: config, kafkaProducer: kafkaProducer, kafkaReader: kafkaReader, imageStore: imageStore}
}

// parseAmount applies the admin-form numeric convention: blank means zero,
// anything else must parse to a non-negative float.
func parseAmount(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}

	val, err := strconv.ParseFloat(raw, 64)
	if err != nil || val < 0 {
		return 0, errs.ErrValidation
	}

	return val, nil
}

func parseCount(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}

	val, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || val < 0 {
		return 0, errs.ErrValidation
	}

	return val, nil
}

func (s *ProductServiceImpl) AddProduct(ctx context.Context, data dto.ProductRequest) (resp dto.ProductResponse, err error) {
	if data.UserRole != domain.RoleAdmin {
		return resp, errs.ErrForbidden
	}

	if data.Name == "" || data.Description == "" || data.Brand == "" || data.Category == "" {
		return resp, errs.ErrValidation
	}

	if strings.TrimSpace(data.Price) == "" {
		return resp, errs.ErrValidation
	}

	price, err := parseAmount(data.Price)
	if err != nil {
		return resp, err
	}

	dmc, err := parseAmount(data.Dmc)
	if err != nil {
		return resp, err
	}

	discount, err := parseAmount(data.Discount)
	if err != nil {
		return resp, err
	}

	stock, err := parseCount(data.Stock)
	if err != nil {
		return resp, err
	}

	isVisible := true
	if data.IsVisible != nil {
		isVisible = *data.IsVisible
	}

	// remaining stock mirrors stock at creation and in_stock is derived from
	// it; any caller-supplied inStock flag is ignored here.
	remainingStock := stock

	product := domain.Product{
		ExternalID:     ulid.Make().String(),
		Name:           data.Name,
		Description:    data.Description,
		Brand:          data.Brand,
		Category:       data.Category,
		Price:          price,
		Dmc:            dmc,
		Discount:       discount,
		Stock:          stock,
		RemainingStock: remainingStock,
		InStock:        remainingStock > 0,
		IsVisible:      isVisible,
		Image:          data.Image,
	}

	_, err = s.repo.AddProduct(ctx, product)
	if err != nil {
		return resp, err
	}

	created, err := s.repo.GetProductByExternalID(ctx, product.ExternalID)
	if err != nil {
		return resp, err
	}

	resp = toProductResponse(created)

	s.publishEvent("product_created", resp)

	return resp, nil
}

func (s *ProductServiceImpl) GetProductByID(ctx context.Context, externalID string) (resp dto.ProductDetailResponse, err error) {
	if externalID == "" {
		return resp, errs.ErrProductNotFound
	}

	product, err := s.repo.GetProductByExternalID(ctx, externalID)
	if err != nil {
		return resp, err
	}

	if product.ID == 0 {
		return resp, errs.ErrProductNotFound
	}

	reviews, err := s.repo.GetProductReviews(ctx, product.ID)
	if err != nil {
		return resp, err
	}

	resp.ProductResponse = toProductResponse(product)
	resp.Reviews = make([]dto.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		resp.Reviews = append(resp.Reviews, dto.ReviewResponse{
			ID:          review.ID,
			Rating:      review.Rating,
			Comment:     review.Comment,
			CreatedDate: review.CreatedAt,
			User: dto.ReviewAuthor{
				ExternalID: review.ExternalID,
				Name:       review.UserName,
				Email:      review.UserEmail,
			},
		})
	}

	return resp, nil
}

func (s *ProductServiceImpl) GetProducts(ctx context.Context, filter dto.Filter) (resp response.PaginationResponse, err error) {
	data, err := s.repo.GetProducts(ctx, filter)
	if err != nil {
		return
	}

	count, err := s.repo.CountProducts(ctx, filter)
	if err != nil {
		return
	}

	records := make([]dto.ProductResponse, 0, len(data))
	for _, product := range data {
		records = append(records, toProductResponse(product))
	}

	resp.Records = records
	resp.Metadata.TotalCount = uint64(count)
	resp.Metadata.Page = uint64(filter.Page)
	resp.Metadata.Limit = filter.Limit

	return
}

func (s *ProductServiceImpl) UpdateProduct(ctx context.Context, data dto.UpdateProductRequest) (resp dto.ProductResponse, err error) {
	if data.UserRole != domain.RoleAdmin {
		return resp, errs.ErrForbidden
	}

	if data.ID == "" {
		return resp, errs.ErrValidation
	}

	current, err := s.repo.GetProductByExternalID(ctx, data.ID)
	if err != nil {
		return resp, err
	}

	if current.ID == 0 {
		return resp, errs.ErrProductNotFound
	}

	fields := domain.ProductUpdate{
		InStock:   data.InStock,
		IsVisible: data.IsVisible,
		Image:     data.Image,
	}

	if data.Discount != nil {
		discount, parseErr := parseAmount(*data.Discount)
		if parseErr != nil {
			return resp, parseErr
		}
		fields.Discount = &discount
	}

	if err = s.repo.UpdateProduct(ctx, data.ID, fields); err != nil {
		return resp, err
	}

	if data.Image != nil && current.Image != "" && *data.Image != current.Image {
		s.cleanupStoredImage(ctx, current.ExternalID, current.Image)
	}

	updated, err := s.repo.GetProductByExternalID(ctx, data.ID)
	if err != nil {
		return resp, err
	}

	return toProductResponse(updated), nil
}

func (s *ProductServiceImpl) DeleteProductImages(ctx context.Context, externalID string, userRole string) (err error) {
	if userRole != domain.RoleAdmin {
		return errs.ErrForbidden
	}

	if externalID == "" {
		return errs.ErrValidation
	}

	current, err := s.repo.GetProductByExternalID(ctx, externalID)
	if err != nil {
		return err
	}

	if current.ID == 0 {
		return errs.ErrProductNotFound
	}

	empty := ""
	if err = s.repo.UpdateProduct(ctx, externalID, domain.ProductUpdate{Image: &empty}); err != nil {
		return err
	}

	if current.Image != "" {
		s.cleanupStoredImage(ctx, externalID, current.Image)
	}

	return nil
}

func (s *ProductServiceImpl) UploadImage(ctx context.Context, filename string, contents io.Reader, userRole string) (string, error) {
	if userRole != domain.RoleAdmin {
		return "", errs.ErrForbidden
	}

	if s.imageStore == nil {
		return "", errs.ErrUpload
	}

	url, err := s.imageStore.Upload(ctx, filename, contents)
	if err != nil {
		log.Error().Err(err).Str("component", "UploadImage").Msg("")
		return "", errs.ErrUpload
	}

	return url, nil
}

// cleanupStoredImage removes a no-longer-referenced file from the image
// store. Failures leave an orphaned file behind, which is accepted: the
// product row has already been updated and is not rolled back.
func (s *ProductServiceImpl) cleanupStoredImage(ctx context.Context, externalID string, url string) {
	if s.imageStore == nil {
		return
	}

	if err := s.imageStore.Delete(ctx, url); err != nil {
		log.Warn().Err(err).
			Str("component", "ImageCleanup").
			Str("product_id", externalID).
			Str("url", url).
			Msg("ImageCleanupFailed")
	}
}

func (s *ProductServiceImpl) publishEvent(eventType string, data interface{}) {
	if s.kafkaProducer == nil {
		return
	}

	kafkaMsg := dto.KafkaMessage{
		EventType: eventType,
		Data:      data,
	}

	jsonMsg, err := json.Marshal(kafkaMsg)
	if err != nil {
		log.Error().Err(err).Str("component", "publishEvent").Msg("")
		return
	}

	var writeErr error
	maxRetries := 3
	for i := 0; i < maxRetries; i++ {
		writeErr = s.writeKafkaMessage(jsonMsg)
		if writeErr == nil {
			return
		}
		log.Error().Err(writeErr).Str("component", "publishEvent").Msgf("Failed to write Kafka message (attempt %d/%d)", i+1, maxRetries)
		time.Sleep(time.Second * time.Duration(i+1))
	}

	// broker trouble never fails the originating admin request
	log.Error().Err(writeErr).Str("component", "publishEvent").Msgf("Giving up on Kafka message after %d attempts", maxRetries)
}

func (s *ProductServiceImpl) writeKafkaMessage(msg []byte) error {
	_, err := s.kafkaProducer.WriteMessages(
		kafka.Message{
			Value: msg,
		},
	)
	return err
}

func (s *ProductServiceImpl) ConsumeEvent() {
	for {
		msg, err := s.kafkaReader.ReadMessage(context.Background())
		if err != nil {
			log.Error().Err(err).Str("component", "ConsumeEvent").Msg("Error reading Kafka message")
			continue
		}

		var receivedMsg dto.KafkaMessage
		if err := json.Unmarshal(msg.Value, &receivedMsg); err != nil {
			log.Error().Err(err).Str("component", "ConsumeEvent").Msg("Error unmarshalling Kafka message")
			continue
		}

		switch receivedMsg.EventType {
		case "product_created":
			var productData dto.ProductResponse
			dataBytes, err := json.Marshal(receivedMsg.Data)
			if err != nil {
				log.Error().Err(err).Str("component", "ConsumeEvent").Msg("")
				continue
			}
			if err := json.Unmarshal(dataBytes, &productData); err != nil {
				log.Error().Err(err).Str("component", "ConsumeEvent").Msg("")
				continue
			}

			if err := s.notifyProductCreated(productData); err != nil {
				log.Error().Err(err).Str("component", "ConsumeEvent").Msg("Failed to relay product notification")
				continue
			}

			log.Info().Str("component", "ConsumeEvent").Str("product_id", productData.ID).Msg("Product notification relayed")
		default:
			log.Info().Str("component", "ConsumeEvent").Msgf("Unknown event type: %s", receivedMsg.EventType)
		}
	}
}

func (s *ProductServiceImpl) notifyProductCreated(data dto.ProductResponse) error {
	if s.config.SMTPConfig.OpsMailbox == "" {
		return nil
	}

	message := gomail.NewMessage()
	message.SetHeader("From", s.config.SMTPConfig.Sender)
	message.SetHeader("To", s.config.SMTPConfig.OpsMailbox)
	message.SetHeader("Subject", fmt.Sprintf("New product listed: %s", data.Name))
	message.SetBody("text/plain", fmt.Sprintf("%s (%s / %s) was added to the catalog at price %.2f with %d units in stock.", data.Name, data.Brand, data.Category, data.Price, data.Stock))

	return utils.SendEmail(message, s.config.SMTPConfig.Sender, s.config.SMTPConfig.Password, s.config.SMTPConfig.Server, s.config.SMTPConfig.Port)
}

func toProductResponse(product domain.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:             product.ExternalID,
		Name:           product.Name,
		Description:    product.Description,
		Brand:          product.Brand,
		Category:       product.Category,
		Price:          product.Price,
		Dmc:            product.Dmc,
		Discount:       product.Discount,
		Stock:          product.Stock,
		RemainingStock: product.RemainingStock,
		InStock:        product.InStock,
		IsVisible:      product.IsVisible,
		Image:          product.Image,
		CreatedDate:    product.CreatedAt,
	}
}
