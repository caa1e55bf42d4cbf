package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/brtkwt/BestStoreAPI/domain"
)

// ProductRepositoryImpl implements domain.ProductRepository using GORM
type ProductRepositoryImpl struct {
	db *gorm.DB
}

// DBProduct represents the database model for Product (with GORM tags)
type DBProduct struct {
	ID            uint    `gorm:"primaryKey"`
	Name          string  `gorm:"size:100;index"`
	Brand         string  `gorm:"size:100"`
	Category      string  `gorm:"size:100;index"`
	Price         float64 `gorm:"index"`
	Description   string
	ImageFileName string    `gorm:"size:100"`
	CreatedAt     time.Time `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBProduct) TableName() string {
	return "products"
}

// sortColumns whitelists the sortable fields; anything else falls back to id
var sortColumns = map[string]string{
	"id":         "id",
	"name":       "name",
	"brand":      "brand",
	"category":   "category",
	"price":      "price",
	"created_at": "created_at",
	"createdat":  "created_at",
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) domain.ProductRepository {
	return &ProductRepositoryImpl{db: db}
}

// List implements domain.ProductRepository
func (r *ProductRepositoryImpl) List(ctx context.Context, q domain.ProductQuery, pageSize int) ([]*domain.Product, int64, error) {
	tx := r.db.WithContext(ctx).Model(&DBProduct{})

	if q.Search != "" {
		tx = tx.Where("name LIKE ? OR description LIKE ?", "%"+q.Search+"%", "%"+q.Search+"%")
	}
	if q.Category != "" {
		tx = tx.Where("category = ?", q.Category)
	}
	if q.MinPrice != nil {
		tx = tx.Where("price >= ?", *q.MinPrice)
	}
	if q.MaxPrice != nil {
		tx = tx.Where("price <= ?", *q.MaxPrice)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column, ok := sortColumns[q.Sort]
	if !ok {
		column = "id"
	}
	direction := "DESC"
	if q.Order == "asc" {
		direction = "ASC"
	}

	var dbProducts []DBProduct
	err := tx.Order(column + " " + direction).
		Offset((q.Page - 1) * pageSize).
		Limit(pageSize).
		Find(&dbProducts).Error
	if err != nil {
		return nil, 0, err
	}

	products := make([]*domain.Product, 0, len(dbProducts))
	for i := range dbProducts {
		products = append(products, r.dbToDomain(&dbProducts[i]))
	}
	return products, total, nil
}

// FindByID implements domain.ProductRepository
func (r *ProductRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	var dbProduct DBProduct
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbProduct).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbProduct), nil
}

// Create implements domain.ProductRepository
func (r *ProductRepositoryImpl) Create(ctx context.Context, product *domain.Product) error {
	dbProduct := r.domainToDB(product)
	if err := r.db.WithContext(ctx).Create(dbProduct).Error; err != nil {
		return err
	}
	product.ID = dbProduct.ID
	product.CreatedAt = dbProduct.CreatedAt
	return nil
}

// Update implements domain.ProductRepository
func (r *ProductRepositoryImpl) Update(ctx context.Context, product *domain.Product) error {
	return r.db.WithContext(ctx).Save(r.domainToDB(product)).Error
}

// Delete implements domain.ProductRepository
func (r *ProductRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&DBProduct{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepositoryImpl) domainToDB(p *domain.Product) *DBProduct {
	return &DBProduct{
		ID:            p.ID,
		Name:          p.Name,
		Brand:         p.Brand,
		Category:      p.Category,
		Price:         p.Price,
		Description:   p.Description,
		ImageFileName: p.ImageFileName,
		CreatedAt:     p.CreatedAt,
	}
}

func (r *ProductRepositoryImpl) dbToDomain(p *DBProduct) *domain.Product {
	return &domain.Product{
		ID:            p.ID,
		Name:          p.Name,
		Brand:         p.Brand,
		Category:      p.Category,
		Price:         p.Price,
		Description:   p.Description,
		ImageFileName: p.ImageFileName,
		CreatedAt:     p.CreatedAt,
	}
}
