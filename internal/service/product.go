package service

import (
	"context"
	"fmt"
	"strings"

	"jewelry-storefront/internal/model"
	"jewelry-storefront/internal/repository"
	"jewelry-storefront/internal/storage"

	"github.com/google/uuid"
)

type ProductService interface {
	List(ctx context.Context) ([]*model.Product, error)
	Get(ctx context.Context, productID string) (*model.Product, error)
	Create(ctx context.Context, product *model.Product) error
	Update(ctx context.Context, product *model.Product) error
	// Delete removes the product row and best-effort deletes its image.
	Delete(ctx context.Context, productID string) error
}

type productServiceImpl struct {
	productRepo repository.ProductRepository
	uploader    *storage.Uploader
}

func NewProductService(productRepo repository.ProductRepository, uploader *storage.Uploader) ProductService {
	return &productServiceImpl{
		productRepo: productRepo,
		uploader:    uploader,
	}
}

func (s *productServiceImpl) List(ctx context.Context) ([]*model.Product, error) {
	return s.productRepo.FindAll(ctx)
}

func (s *productServiceImpl) Get(ctx context.Context, productID string) (*model.Product, error) {
	return s.productRepo.FindByID(ctx, productID)
}

func (s *productServiceImpl) Create(ctx context.Context, product *model.Product) error {
	if strings.TrimSpace(product.Name) == "" {
		return fmt.Errorf("product name is required")
	}
	if product.ID == "" {
		product.ID = uuid.NewString()
	}

	return s.productRepo.Create(ctx, product)
}

func (s *productServiceImpl) Update(ctx context.Context, product *model.Product) error {
	existing, err := s.productRepo.FindByID(ctx, product.ID)
	if err != nil {
		return err
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return err
	}

	// replaced image is cleaned up in the background path, never fatal
	if existing.ImageURL != "" && existing.ImageURL != product.ImageURL {
		s.uploader.Delete(ctx, existing.ImageURL)
	}
	return nil
}

func (s *productServiceImpl) Delete(ctx context.Context, productID string) error {
	existing, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return err
	}

	if err := s.productRepo.Delete(ctx, productID); err != nil {
		return err
	}

	if existing.ImageURL != "" {
		s.uploader.Delete(ctx, existing.ImageURL)
	}
	return nil
}
