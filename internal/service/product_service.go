package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/grazeweb/my-eshop-app/config"
	"github.com/grazeweb/my-eshop-app/internal/domain"
	"github.com/grazeweb/my-eshop-app/internal/dto"
	"github.com/grazeweb/my-eshop-app/internal/repository"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"

	pkgdto "github.com/grazeweb/my-eshop-app/pkg/dto"
	"github.com/grazeweb/my-eshop-app/pkg/errs"
	"github.com/grazeweb/my-eshop-app/pkg/response"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductServiceImpl struct {
	productRepo repository.ProductRepository
	searchRepo  repository.ProductSearchRepository
	config      config.Config
	kafkaReader *kafka.Reader
	publisher   EventPublisher
}

func CreateProductService(productRepo repository.ProductRepository, searchRepo repository.ProductSearchRepository, config config.Config, kafkaReader *kafka.Reader, publisher EventPublisher) ProductService {
	return &ProductServiceImpl{
		productRepo: productRepo,
		searchRepo:  searchRepo,
		config:      config,
		kafkaReader: kafkaReader,
		publisher:   publisher,
	}
}

func toProductResponse(data domain.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:            data.ID.Hex(),
		Name:          data.Name,
		Description:   data.Description,
		Price:         data.Price,
		OriginalPrice: data.OriginalPrice,
		Badge:         data.Badge,
		ShippingFee:   data.ShippingFee,
		Image:         data.Image,
		Images:        data.Images,
		CategoryID:    data.CategoryID,
		Featured:      data.Featured,
		Rating:        data.Rating,
		Stock:         data.Stock,
		UnitsSold:     data.UnitsSold,
	}
}

func (s *ProductServiceImpl) AddProduct(ctx context.Context, data dto.ProductRequest) (err error) {
	now := time.Now().Unix()
	productID, err := s.productRepo.AddProduct(ctx, domain.Product{
		Name:          data.Name,
		Description:   data.Description,
		Price:         data.Price,
		OriginalPrice: data.OriginalPrice,
		Badge:         data.Badge,
		ShippingFee:   data.ShippingFee,
		Image:         data.Image,
		Images:        data.Images,
		CategoryID:    data.CategoryID,
		Featured:      data.Featured,
		Stock:         data.Stock,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		return
	}

	product, err := s.productRepo.GetProductByID(ctx, productID.Hex())
	if err != nil {
		return
	}

	return publishEvent(s.publisher, eventProductUpserted, productID.Hex(), toProductResponse(product))
}

func (s *ProductServiceImpl) UpdateProduct(ctx context.Context, data dto.ProductRequest) (err error) {
	objectID, err := primitive.ObjectIDFromHex(data.ID)
	if err != nil {
		return errs.ErrNotFound
	}

	err = s.productRepo.UpdateProduct(ctx, domain.Product{
		ID:            objectID,
		Name:          data.Name,
		Description:   data.Description,
		Price:         data.Price,
		OriginalPrice: data.OriginalPrice,
		Badge:         data.Badge,
		ShippingFee:   data.ShippingFee,
		Image:         data.Image,
		Images:        data.Images,
		CategoryID:    data.CategoryID,
		Featured:      data.Featured,
		Stock:         data.Stock,
		UpdatedAt:     time.Now().Unix(),
	})
	if err != nil {
		return
	}

	product, err := s.productRepo.GetProductByID(ctx, data.ID)
	if err != nil {
		return
	}

	return publishEvent(s.publisher, eventProductUpserted, data.ID, toProductResponse(product))
}

func (s *ProductServiceImpl) DeleteProduct(ctx context.Context, id string) (err error) {
	err = s.productRepo.DeleteProduct(ctx, id)
	if err != nil {
		return
	}

	// Orders and reviews keep their denormalized product snapshots; only
	// the search index entry goes away with the product.
	return publishEvent(s.publisher, eventProductDeleted, id, dto.ProductResponse{ID: id})
}

func (s *ProductServiceImpl) GetProductByID(ctx context.Context, id string) (data dto.ProductResponse, err error) {
	product, err := s.productRepo.GetProductByID(ctx, id)
	if err != nil {
		return
	}

	return toProductResponse(product), nil
}

// SearchProducts serves the storefront listing from the Elasticsearch read
// model.
func (s *ProductServiceImpl) SearchProducts(ctx context.Context, filter pkgdto.Filter) (resp response.PaginationResponse, err error) {
	records, count, err := s.searchRepo.SearchProducts(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "SearchProducts").Msg("")
		return resp, errs.ErrInternalServer
	}

	resp.Metadata = response.PaginationMetadata{
		TotalCount: int64(count),
		Page:       filter.Page,
		Limit:      filter.Limit,
	}
	resp.Records = records

	return
}

// GetProducts reads from MongoDB directly; the back-office needs the source
// of truth, not the eventually consistent index.
func (s *ProductServiceImpl) GetProducts(ctx context.Context, filter pkgdto.Filter) (resp response.PaginationResponse, err error) {
	products, count, err := s.productRepo.GetProducts(ctx, filter)
	if err != nil {
		return
	}

	records := make([]dto.ProductResponse, 0, len(products))
	for _, product := range products {
		records = append(records, toProductResponse(product))
	}

	resp.Metadata = response.PaginationMetadata{
		TotalCount: count,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}
	resp.Records = records

	return
}

func (s *ProductServiceImpl) GetCategories(ctx context.Context) (data []dto.CategoryResponse, err error) {
	categories, err := s.productRepo.GetCategories(ctx)
	if err != nil {
		return
	}

	for _, category := range categories {
		data = append(data, dto.CategoryResponse{ID: category.ID, Name: category.Name})
	}

	return data, nil
}

// reindexOrderProducts refreshes the search documents for every product an
// order touched, picking up the new stock and units-sold counters.
func (s *ProductServiceImpl) reindexOrderProducts(ctx context.Context, order dto.OrderResponse) error {
	ids := make([]string, 0, len(order.Items))
	for _, item := range order.Items {
		ids = append(ids, item.ProductID)
	}

	products, err := s.productRepo.GetProductsByIDs(ctx, ids)
	if err != nil {
		return err
	}

	for _, product := range products {
		if err := s.searchRepo.IndexProduct(ctx, toProductResponse(product)); err != nil {
			return err
		}
	}

	return nil
}

// ConsumeEvents keeps the Elasticsearch read model in sync with product
// mutations published on the event stream.
func (s *ProductServiceImpl) ConsumeEvents() {
	for {
		msg, err := s.kafkaReader.ReadMessage(context.Background())
		if err != nil {
			log.Error().Err(err).Str("component", "ConsumeEvents").Msg("")
			continue
		}

		var receivedMsg dto.KafkaMessage
		if err := json.Unmarshal(msg.Value, &receivedMsg); err != nil {
			log.Error().Err(err).Str("component", "ConsumeEvents").Msg("")
			continue
		}

		switch receivedMsg.EventType {
		case eventProductUpserted:
			var product dto.ProductResponse
			dataBytes, err := json.Marshal(receivedMsg.Data)
			if err != nil {
				log.Error().Err(err).Str("component", "ConsumeEvents").Msg("")
				continue
			}

			if err := json.Unmarshal(dataBytes, &product); err != nil {
				log.Error().Err(err).Str("component", "ConsumeEvents").Msg("")
				continue
			}

			if err := s.searchRepo.IndexProduct(context.Background(), product); err != nil {
				log.Error().Err(err).Str("component", "ConsumeEvents").Msg("")
				continue
			}
		case eventProductDeleted:
			var product dto.ProductResponse
			dataBytes, err := json.Marshal(receivedMsg.Data)
			if err != nil {
				log.Error().Err(err).Str("component", "ConsumeEvents").Msg("")
				continue
			}

			if err := json.Unmarshal(dataBytes, &product); err != nil {
				log.Error().Err(err).Str("component", "ConsumeEvents").Msg("")
				continue
			}

			if err := s.searchRepo.DeleteProduct(context.Background(), product.ID); err != nil {
				log.Error().Err(err).Str("component", "ConsumeEvents").Msg("")
				continue
			}
		case eventOrderCreated, eventOrderStatusUpdated:
			var order dto.OrderResponse
			dataBytes, err := json.Marshal(receivedMsg.Data)
			if err != nil {
				log.Error().Err(err).Str("component", "ConsumeEvents").Msg("")
				continue
			}

			if err := json.Unmarshal(dataBytes, &order); err != nil {
				log.Error().Err(err).Str("component", "ConsumeEvents").Msg("")
				continue
			}

			if err := s.reindexOrderProducts(context.Background(), order); err != nil {
				log.Error().Err(err).Str("component", "ConsumeEvents").Msg("")
				continue
			}
		case eventReviewAdded:
			// Published for downstream consumers; nothing to sync here.
		default:
			log.Info().Str("component", "ConsumeEvents").Str("event_type", receivedMsg.EventType).Msg("unknown event type")
		}
	}
}
