package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"jewelry-storefront/internal/cart"
	"jewelry-storefront/internal/model"
	"jewelry-storefront/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrNotAuthenticated = errors.New("user must be logged in to place an order")
	ErrShippingRequired = errors.New("shipping information is required")
	ErrEmptyCart        = errors.New("cart is empty")
)

type OrderService interface {
	// Checkout validates preconditions, writes the order with an item
	// snapshot per cart line, then clears the cart. Precondition failures
	// perform no writes at all.
	Checkout(ctx context.Context, userID string, c *cart.Store, paymentDetails map[string]any) (*model.Order, error)
	GetByID(ctx context.Context, orderID string) (*model.Order, error)
	GetUserOrders(ctx context.Context, userID string) ([]*model.Order, error)
	GetAllOrders(ctx context.Context) ([]*model.Order, error)
}

type orderServiceImpl struct {
	orderRepo repository.OrderRepository
	shipping  ShippingStore
}

func NewOrderService(orderRepo repository.OrderRepository, shipping ShippingStore) OrderService {
	return &orderServiceImpl{
		orderRepo: orderRepo,
		shipping:  shipping,
	}
}

func (s *orderServiceImpl) Checkout(ctx context.Context, userID string, c *cart.Store, paymentDetails map[string]any) (*model.Order, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}

	info, err := s.shipping.Load(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load shipping info: %w", err)
	}
	if info == nil {
		return nil, ErrShippingRequired
	}

	items := c.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	shippingJSON, err := json.Marshal(info)
	if err != nil {
		return nil, fmt.Errorf("marshal shipping info: %w", err)
	}

	if paymentDetails == nil {
		paymentDetails = map[string]any{}
	}
	paymentJSON, err := json.Marshal(paymentDetails)
	if err != nil {
		return nil, fmt.Errorf("marshal payment details: %w", err)
	}

	order := &model.Order{
		ID:              uuid.NewString(),
		UserID:          userID,
		TotalAmount:     c.Total(),
		ShippingAddress: string(shippingJSON),
		PaymentDetails:  string(paymentJSON),
		Status:          model.OrderStatusPaid,
		CreatedAt:       time.Now(),
	}

	// snapshot copy of the cart lines, detached from the live cart
	orderItems := make([]*model.OrderItem, 0, len(items))
	for _, it := range items {
		orderItems = append(orderItems, &model.OrderItem{
			OrderID:   order.ID,
			ProductID: it.ID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
			ImageURL:  it.ImageURL,
		})
	}

	if err := s.orderRepo.CreateWithItems(ctx, order, orderItems); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	if err := c.Clear(ctx); err != nil {
		return nil, fmt.Errorf("clear cart: %w", err)
	}

	// shipping info is kept for repeat purchases, cleared only explicitly
	return order, nil
}

func (s *orderServiceImpl) GetByID(ctx context.Context, orderID string) (*model.Order, error) {
	return s.orderRepo.FindByID(ctx, orderID)
}

func (s *orderServiceImpl) GetUserOrders(ctx context.Context, userID string) ([]*model.Order, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}
	return s.orderRepo.FindByUser(ctx, userID)
}

func (s *orderServiceImpl) GetAllOrders(ctx context.Context) ([]*model.Order, error) {
	return s.orderRepo.FindAll(ctx)
}
