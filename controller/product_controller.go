package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"swiftcart/database"
	"swiftcart/model"
	"swiftcart/schema"
)

type ProductController struct {
	db *gorm.DB
}

func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{db: db}
}

func (ctl *ProductController) CreateProduct(c *gin.Context) {
	var in schema.ProductCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	sess := database.NewSession(c.Request.Context(), ctl.db)
	defer sess.Close()

	var vendor model.Vendor
	if err := sess.Tx().First(&vendor, in.VendorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Vendor not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Database error."})
		return
	}

	var count int64
	if err := sess.Tx().Model(&model.Product{}).Where("slug = ?", in.Slug).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Database error."})
		return
	}
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Product slug already taken."})
		return
	}

	published := true
	if in.IsPublished != nil {
		published = *in.IsPublished
	}

	product := model.Product{
		VendorID:        in.VendorID,
		Name:            in.Name,
		Title:           in.Title,
		Slug:            in.Slug,
		Description:     in.Description,
		Price:           in.Price,
		CompareAtPrice:  in.CompareAtPrice,
		FlashPrice:      in.FlashPrice,
		StockQuantity:   in.StockQuantity,
		IsPublished:     published,
		IsFlashSale:     in.IsFlashSale,
		FlashSaleEndsAt: in.FlashSaleEndsAt,
	}
	for i, url := range in.Images {
		product.Images = append(product.Images, model.ProductImage{URL: url, Position: i})
	}

	if err := sess.Add(&product); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Product slug already taken."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to create product."})
		return
	}
	if err := sess.Commit(); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Product slug already taken."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to create product."})
		return
	}

	c.JSON(http.StatusCreated, schema.NewProductRead(&product))
}

func (ctl *ProductController) GetProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid product id."})
		return
	}

	var product model.Product
	err = ctl.db.Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}).First(&product, uint(id)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Product not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Database error."})
		return
	}
	c.JSON(http.StatusOK, schema.NewProductRead(&product))
}

func (ctl *ProductController) ListProducts(c *gin.Context) {
	q := ctl.db.Model(&model.Product{}).Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	})

	if v := c.Query("vendor_id"); v != "" {
		vendorID, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid vendor_id."})
			return
		}
		q = q.Where("vendor_id = ?", uint(vendorID))
	}
	if p := c.Query("published"); p != "" {
		published, err := strconv.ParseBool(p)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid published filter."})
			return
		}
		q = q.Where("is_published = ?", published)
	}

	var products []model.Product
	if err := q.Order("id ASC").Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Database error."})
		return
	}

	out := make([]schema.ProductRead, 0, len(products))
	for i := range products {
		out = append(out, schema.NewProductRead(&products[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (ctl *ProductController) UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid product id."})
		return
	}

	var in schema.ProductUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	fields := map[string]any{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Title != nil {
		fields["title"] = *in.Title
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.Price != nil {
		fields["price"] = *in.Price
	}
	if in.CompareAtPrice != nil {
		fields["compare_at_price"] = *in.CompareAtPrice
	}
	if in.FlashPrice != nil {
		fields["flash_price"] = *in.FlashPrice
	}
	if in.StockQuantity != nil {
		fields["stock_quantity"] = *in.StockQuantity
	}
	if in.IsPublished != nil {
		fields["is_published"] = *in.IsPublished
	}
	if in.IsFlashSale != nil {
		fields["is_flash_sale"] = *in.IsFlashSale
	}
	if in.FlashSaleEndsAt != nil {
		fields["flash_sale_ends_at"] = *in.FlashSaleEndsAt
	}
	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "No fields to update."})
		return
	}

	res := ctl.db.Model(&model.Product{}).Where("id = ?", uint(id)).Updates(fields)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to update product."})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Product not found."})
		return
	}

	var product model.Product
	if err := ctl.db.Preload("Images").First(&product, uint(id)).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Database error."})
		return
	}
	c.JSON(http.StatusOK, schema.NewProductRead(&product))
}

func (ctl *ProductController) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid product id."})
		return
	}

	res := ctl.db.Delete(&model.Product{}, uint(id))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to delete product."})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Product not found."})
		return
	}
	c.Status(http.StatusNoContent)
}

// BulkImport loads products from an uploaded Excel sheet. Expected columns
// on Sheet1, after a header row: name, title, slug, price, stock_quantity.
// Invalid rows are skipped and reported, valid rows are committed together.
func (ctl *ProductController) BulkImport(c *gin.Context) {
	vendorID, err := strconv.ParseUint(c.PostForm("vendor_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid or missing vendor_id."})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Excel file is required."})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Unable to open Excel file."})
		return
	}
	defer file.Close()

	xl, err := excelize.OpenReader(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Failed to parse Excel file."})
		return
	}
	defer xl.Close()

	rows, err := xl.GetRows("Sheet1")
	if err != nil || len(rows) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Excel must have at least one row of data."})
		return
	}

	sess := database.NewSession(c.Request.Context(), ctl.db)
	defer sess.Close()

	var vendor model.Vendor
	if err := sess.Tx().First(&vendor, uint(vendorID)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Vendor not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Database error."})
		return
	}

	var created int
	var skipped []string
	seen := map[string]bool{}
	for i, row := range rows[1:] {
		line := i + 2
		if len(row) < 5 {
			skipped = append(skipped, fmt.Sprintf("row %d: incomplete", line))
			continue
		}
		name := strings.TrimSpace(row[0])
		title := strings.TrimSpace(row[1])
		slug := strings.TrimSpace(row[2])
		if len(name) < 2 || len(title) < 2 || slug == "" {
			skipped = append(skipped, fmt.Sprintf("row %d: missing name, title, or slug", line))
			continue
		}
		// Over-long values would fail the insert and abort the batch, so
		// they are skipped like any other bad row.
		if len(name) > 100 || len(title) > 100 || len(slug) > 120 {
			skipped = append(skipped, fmt.Sprintf("row %d: name, title, or slug too long", line))
			continue
		}
		price, err := strconv.ParseFloat(row[3], 64)
		if err != nil || price <= 0 {
			skipped = append(skipped, fmt.Sprintf("row %d: invalid price %q", line, row[3]))
			continue
		}
		stock, err := strconv.Atoi(row[4])
		if err != nil || stock < 0 {
			skipped = append(skipped, fmt.Sprintf("row %d: invalid stock %q", line, row[4]))
			continue
		}

		// A failed insert would abort the whole transaction, so duplicate
		// slugs are checked up front.
		var dup int64
		if err := sess.Tx().Model(&model.Product{}).Where("slug = ?", slug).Count(&dup).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "Database error."})
			return
		}
		if dup > 0 || seen[slug] {
			skipped = append(skipped, fmt.Sprintf("row %d: slug %q already taken", line, slug))
			continue
		}
		seen[slug] = true

		product := model.Product{
			VendorID:      uint(vendorID),
			Name:          name,
			Title:         title,
			Slug:          slug,
			Price:         price,
			StockQuantity: stock,
			IsPublished:   true,
		}
		if err := sess.Add(&product); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to import products."})
			return
		}
		created++
	}

	if err := sess.Commit(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to import products."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"created": created,
		"skipped": skipped,
	})
}
