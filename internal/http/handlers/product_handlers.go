package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/brtkwt/BestStoreAPI/domain"
)

// ProductHandlers handles catalog HTTP requests
type ProductHandlers struct {
	catalogSvc domain.CatalogService
}

// NewProductHandlers creates new product handlers
func NewProductHandlers(catalogSvc domain.CatalogService) *ProductHandlers {
	return &ProductHandlers{catalogSvc: catalogSvc}
}

// ProductForm represents the multipart product fields
type ProductForm struct {
	Name        string  `form:"name" binding:"required,max=100"`
	Brand       string  `form:"brand" binding:"required,max=100"`
	Category    string  `form:"category" binding:"required"`
	Price       float64 `form:"price" binding:"required,gte=0"`
	Description string  `form:"description"`
}

// Categories lists the fixed product categories
func (h *ProductHandlers) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalogSvc.Categories())
}

// List returns a filtered, sorted, paginated product page
func (h *ProductHandlers) List(c *gin.Context) {
	q := domain.ProductQuery{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Sort:     c.DefaultQuery("sort", "id"),
		Order:    c.DefaultQuery("order", "desc"),
	}

	if v := c.Query("min_price"); v != "" {
		if p, err := strconv.ParseFloat(v, 64); err == nil {
			q.MinPrice = &p
		}
	}
	if v := c.Query("max_price"); v != "" {
		if p, err := strconv.ParseFloat(v, 64); err == nil {
			q.MaxPrice = &p
		}
	}
	if v := c.Query("page"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			q.Page = p
		}
	}

	page, err := h.catalogSvc.List(c.Request.Context(), q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list products"})
		return
	}

	c.JSON(http.StatusOK, page)
}

// Get returns a single product
func (h *ProductHandlers) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	product, err := h.catalogSvc.Get(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load product"})
		return
	}

	c.JSON(http.StatusOK, product)
}

// Create adds a catalog item with its image (admin only)
func (h *ProductHandlers) Create(c *gin.Context) {
	var form ProductForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	image, err := h.imageUpload(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "The image file is required"})
		return
	}
	defer image.close()

	product, err := h.catalogSvc.Create(c.Request.Context(), domain.ProductInput{
		Name:        form.Name,
		Brand:       form.Brand,
		Category:    form.Category,
		Price:       form.Price,
		Description: form.Description,
	}, image.upload)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCategory):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please select a valid category"})
		case errors.Is(err, domain.ErrImageRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "The image file is required"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		}
		return
	}

	c.JSON(http.StatusOK, product)
}

// Update replaces a catalog item, optionally with a new image (admin only)
func (h *ProductHandlers) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	var form ProductForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var upload *domain.ImageUpload
	image, err := h.imageUpload(c)
	if err == nil {
		defer image.close()
		upload = image.upload
	}

	product, err := h.catalogSvc.Update(c.Request.Context(), uint(id), domain.ProductInput{
		Name:        form.Name,
		Brand:       form.Brand,
		Category:    form.Category,
		Price:       form.Price,
		Description: form.Description,
	}, upload)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProductNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domain.ErrInvalidCategory):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please select a valid category"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		}
		return
	}

	c.JSON(http.StatusOK, product)
}

// Delete removes a catalog item and its image (admin only)
func (h *ProductHandlers) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	if err := h.catalogSvc.Delete(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}

	c.Status(http.StatusOK)
}

type openedUpload struct {
	upload *domain.ImageUpload
	close  func()
}

func (h *ProductHandlers) imageUpload(c *gin.Context) (*openedUpload, error) {
	header, err := c.FormFile("image_file")
	if err != nil {
		return nil, err
	}
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	return &openedUpload{
		upload: &domain.ImageUpload{FileName: header.Filename, Data: f},
		close:  func() { f.Close() },
	}, nil
}
