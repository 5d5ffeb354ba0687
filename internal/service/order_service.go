package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/grazeweb/my-eshop-app/config"
	"github.com/grazeweb/my-eshop-app/internal/domain"
	"github.com/grazeweb/my-eshop-app/internal/dto"
	"github.com/grazeweb/my-eshop-app/internal/repository"
	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"

	pkgdto "github.com/grazeweb/my-eshop-app/pkg/dto"
	"github.com/grazeweb/my-eshop-app/pkg/errs"
	"github.com/grazeweb/my-eshop-app/pkg/response"
)

type OrderServiceImpl struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	config      config.Config
	publisher   EventPublisher
	mailer      Mailer
}

func CreateOrderService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository, config config.Config, publisher EventPublisher, mailer Mailer) OrderService {
	return &OrderServiceImpl{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		config:      config,
		publisher:   publisher,
		mailer:      mailer,
	}
}

func toOrderResponse(data domain.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:              data.ID.Hex(),
		OrderNumber:     data.OrderNumber,
		UserID:          data.UserID,
		CustomerName:    data.CustomerName,
		CustomerEmail:   data.CustomerEmail,
		Items:           data.Items,
		TotalAmount:     data.TotalAmount,
		ShippingAddress: data.ShippingAddress,
		Status:          string(data.Status),
		PaymentMethod:   data.PaymentMethod,
		CreatedAt:       data.CreatedAt,
	}
}

// CreateOrder writes the order and decrements every line's stock inside one
// transaction, so a failed decrement rolls the whole checkout back instead
// of leaving a placed order next to untouched stock.
func (s *OrderServiceImpl) CreateOrder(ctx context.Context, req dto.OrderRequest, cart domain.Cart) (resp dto.OrderResponse, err error) {
	if len(cart.Items) == 0 {
		return resp, errs.ErrEmptyCart
	}

	orderNumber := req.OrderNumber
	if orderNumber == "" {
		number, err := uuid.NewV7()
		if err != nil {
			return resp, fmt.Errorf("error generating order number: %v", err)
		}
		orderNumber = number.String()
	} else {
		// A retried submit with the same order number returns the order
		// that was already placed. The number must belong to the same
		// user, otherwise a guessed number would expose someone else's
		// order.
		existing, err := s.orderRepo.GetOrderByNumber(ctx, orderNumber)
		if err == nil {
			if existing.UserID != req.UserID {
				return resp, errs.ErrDuplicateOrder
			}
			return toOrderResponse(existing), nil
		}
		if err != errs.ErrNotFound {
			return resp, err
		}
	}

	items := make([]domain.OrderItem, 0, len(cart.Items))
	for _, line := range cart.Items {
		items = append(items, domain.OrderItem{
			ProductID:   line.ProductID,
			Name:        line.Name,
			Price:       line.Price,
			Image:       line.Image,
			Quantity:    line.Quantity,
			ShippingFee: line.ShippingFee,
		})
	}

	totals := cart.Totals(s.config.ShippingConfig.Policy, s.config.ShippingConfig.FlatFee)
	now := time.Now().Unix()

	order := domain.Order{
		OrderNumber:   orderNumber,
		UserID:        req.UserID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Items:         items,
		TotalAmount:   totals.Total,
		ShippingAddress: domain.ShippingAddress{
			FirstName: req.ShippingAddress.FirstName,
			LastName:  req.ShippingAddress.LastName,
			Address:   req.ShippingAddress.Address,
			City:      req.ShippingAddress.City,
			Zip:       req.ShippingAddress.Zip,
		},
		Status:        domain.OrderStatusProcessing,
		PaymentMethod: domain.PaymentMethodCashOnDelivery,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err = s.orderRepo.HandleTrx(ctx, func(trxCtx context.Context) error {
		for _, item := range items {
			product, err := s.productRepo.GetProductByID(trxCtx, item.ProductID)
			if err != nil {
				return err
			}

			if product.Stock < item.Quantity {
				return errs.ErrInsufficientStock
			}

			if err := s.productRepo.DecrementProductStock(trxCtx, item.ProductID, item.Quantity); err != nil {
				return err
			}
		}

		orderID, err := s.orderRepo.AddOrder(trxCtx, order)
		if err != nil {
			return err
		}

		order.ID = orderID
		return nil
	})
	if err != nil {
		return resp, err
	}

	resp = toOrderResponse(order)

	if err := publishEvent(s.publisher, eventOrderCreated, orderNumber, resp); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CreateOrder").Msg("")
	}

	s.sendOrderConfirmation(ctx, order)

	return resp, nil
}

func (s *OrderServiceImpl) sendOrderConfirmation(ctx context.Context, order domain.Order) {
	if order.CustomerEmail == "" || s.config.SMTPConfig.Host == "" {
		return
	}

	message := gomail.NewMessage()
	message.SetHeader("From", s.config.SMTPConfig.Sender)
	message.SetHeader("To", order.CustomerEmail)
	message.SetHeader("Subject", fmt.Sprintf("Order %s confirmed", order.OrderNumber))
	message.SetBody("text/plain", fmt.Sprintf("Hi %s,\n\nThank you for your purchase. Your order %s has been placed and is being processed. Total: %.2f (%s).\n\n%s", order.CustomerName, order.OrderNumber, order.TotalAmount, order.PaymentMethod, s.config.StoreName))

	// Confirmation mail is best effort; the order already exists.
	if err := s.mailer.Send(message); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "sendOrderConfirmation").Msg("")
	}
}

func (s *OrderServiceImpl) GetOrderByID(ctx context.Context, id string, userID string, isAdmin bool) (resp dto.OrderResponse, err error) {
	order, err := s.orderRepo.GetOrderByID(ctx, id)
	if err != nil {
		return
	}

	if !isAdmin && order.UserID != userID {
		return resp, errs.ErrNotFound
	}

	return toOrderResponse(order), nil
}

func (s *OrderServiceImpl) GetUserOrders(ctx context.Context, userID string) (resp []dto.OrderResponse, err error) {
	orders, err := s.orderRepo.GetOrdersByUserID(ctx, userID)
	if err != nil {
		return
	}

	for _, order := range orders {
		resp = append(resp, toOrderResponse(order))
	}

	return resp, nil
}

func (s *OrderServiceImpl) GetOrders(ctx context.Context, filter pkgdto.Filter) (resp response.PaginationResponse, err error) {
	orders, count, err := s.orderRepo.GetOrders(ctx, filter)
	if err != nil {
		return
	}

	records := make([]dto.OrderResponse, 0, len(orders))
	for _, order := range orders {
		records = append(records, toOrderResponse(order))
	}

	resp.Metadata = response.PaginationMetadata{
		TotalCount: count,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}
	resp.Records = records

	return
}

// UpdateOrderStatus enforces the order lifecycle. The Delivered transition
// increments each line's units-sold inside the same transaction as the
// guarded status write, so it can happen at most once per order.
func (s *OrderServiceImpl) UpdateOrderStatus(ctx context.Context, req dto.OrderStatusRequest) (err error) {
	newStatus := domain.OrderStatus(req.Status)
	if !newStatus.IsValid() {
		return errs.ErrInvalidOrderStatus
	}

	order, err := s.orderRepo.GetOrderByID(ctx, req.OrderID)
	if err != nil {
		return
	}

	if !order.Status.CanTransitionTo(newStatus) {
		return errs.ErrInvalidStatusTransition
	}

	if newStatus == domain.OrderStatusDelivered {
		err = s.orderRepo.HandleTrx(ctx, func(trxCtx context.Context) error {
			if err := s.orderRepo.UpdateOrderStatus(trxCtx, req.OrderID, order.Status, newStatus); err != nil {
				return err
			}

			for _, item := range order.Items {
				if err := s.productRepo.IncrementProductUnitsSold(trxCtx, item.ProductID, item.Quantity); err != nil {
					// The product may have been deleted since purchase;
					// there is no counter left to keep.
					if err == errs.ErrNotFound {
						continue
					}
					return err
				}
			}

			return nil
		})
	} else {
		err = s.orderRepo.UpdateOrderStatus(ctx, req.OrderID, order.Status, newStatus)
	}
	if err != nil {
		return
	}

	order.Status = newStatus
	if err := publishEvent(s.publisher, eventOrderStatusUpdated, order.OrderNumber, toOrderResponse(order)); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateOrderStatus").Msg("")
	}

	return nil
}

func (s *OrderServiceImpl) HasPurchasedProduct(ctx context.Context, userID string, productID string) (bool, error) {
	return s.orderRepo.HasDeliveredOrderWithProduct(ctx, userID, productID)
}

func (s *OrderServiceImpl) GetAccountSummary(ctx context.Context, userID string) (resp dto.AccountSummaryResponse, err error) {
	orders, err := s.orderRepo.GetOrdersByUserID(ctx, userID)
	if err != nil {
		return
	}

	resp.OrderCount = int64(len(orders))
	for _, order := range orders {
		for _, item := range order.Items {
			resp.ProductsOwned += item.Quantity
		}
	}

	return resp, nil
}
