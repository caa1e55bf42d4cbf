package services

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"time"

	"github.com/brtkwt/BestStoreAPI/domain"
)

// CatalogPageSize is the number of products per listing page
const CatalogPageSize = 5

// categories is the fixed set of product categories
var categories = []string{"Phones", "Computers", "Accessories", "Printers", "Cameras", "Other"}

// CatalogServiceImpl implements domain.CatalogService
type CatalogServiceImpl struct {
	productRepo domain.ProductRepository
	storage     domain.FileStorage
}

// NewCatalogService creates a new catalog service
func NewCatalogService(productRepo domain.ProductRepository, storage domain.FileStorage) domain.CatalogService {
	return &CatalogServiceImpl{
		productRepo: productRepo,
		storage:     storage,
	}
}

// Categories implements domain.CatalogService
func (s *CatalogServiceImpl) Categories() []string {
	out := make([]string, len(categories))
	copy(out, categories)
	return out
}

// List implements domain.CatalogService
func (s *CatalogServiceImpl) List(ctx context.Context, q domain.ProductQuery) (*domain.ProductPage, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Order != "asc" {
		q.Order = "desc"
	}

	products, total, err := s.productRepo.List(ctx, q, CatalogPageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return &domain.ProductPage{
		Products:   products,
		TotalPages: int(math.Ceil(float64(total) / CatalogPageSize)),
		PageSize:   CatalogPageSize,
		Page:       q.Page,
	}, nil
}

// Get implements domain.CatalogService
func (s *CatalogServiceImpl) Get(ctx context.Context, id uint) (*domain.Product, error) {
	return s.productRepo.FindByID(ctx, id)
}

// Create implements domain.CatalogService
func (s *CatalogServiceImpl) Create(ctx context.Context, in domain.ProductInput, image *domain.ImageUpload) (*domain.Product, error) {
	if !s.validCategory(in.Category) {
		return nil, domain.ErrInvalidCategory
	}
	if image == nil {
		return nil, domain.ErrImageRequired
	}

	imageFileName := newImageFileName(image.FileName)
	if err := s.storage.Save(ctx, imageFileName, image.Data); err != nil {
		return nil, fmt.Errorf("failed to store product image: %w", err)
	}

	product := &domain.Product{
		Name:          in.Name,
		Brand:         in.Brand,
		Category:      in.Category,
		Price:         in.Price,
		Description:   in.Description,
		ImageFileName: imageFileName,
		CreatedAt:     time.Now(),
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

// Update implements domain.CatalogService. When a replacement image is given
// the old file is removed after the new one is stored.
func (s *CatalogServiceImpl) Update(ctx context.Context, id uint, in domain.ProductInput, image *domain.ImageUpload) (*domain.Product, error) {
	if !s.validCategory(in.Category) {
		return nil, domain.ErrInvalidCategory
	}

	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	imageFileName := product.ImageFileName
	if image != nil {
		imageFileName = newImageFileName(image.FileName)
		if err := s.storage.Save(ctx, imageFileName, image.Data); err != nil {
			return nil, fmt.Errorf("failed to store product image: %w", err)
		}
		if err := s.storage.Delete(ctx, product.ImageFileName); err != nil {
			return nil, fmt.Errorf("failed to delete old product image: %w", err)
		}
	}

	product.Name = in.Name
	product.Brand = in.Brand
	product.Category = in.Category
	product.Price = in.Price
	product.Description = in.Description
	product.ImageFileName = imageFileName

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return product, nil
}

// Delete implements domain.CatalogService
func (s *CatalogServiceImpl) Delete(ctx context.Context, id uint) error {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.storage.Delete(ctx, product.ImageFileName); err != nil {
		return fmt.Errorf("failed to delete product image: %w", err)
	}

	return s.productRepo.Delete(ctx, id)
}

func (s *CatalogServiceImpl) validCategory(category string) bool {
	for _, c := range categories {
		if c == category {
			return true
		}
	}
	return false
}

// newImageFileName derives a stored name from the upload time, keeping only
// the extension of the client-supplied name.
func newImageFileName(original string) string {
	now := time.Now()
	return fmt.Sprintf("%s%03d%s", now.Format("20060102150405"), now.Nanosecond()/1e6, filepath.Ext(original))
}
