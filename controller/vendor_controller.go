package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"swiftcart/database"
	"swiftcart/model"
	"swiftcart/schema"
)

type VendorController struct {
	db *gorm.DB
}

func NewVendorController(db *gorm.DB) *VendorController {
	return &VendorController{db: db}
}

// CreateVendor onboards a seller profile for an existing user. One vendor
// per user and a unique store slug, both backed by unique indexes.
func (ctl *VendorController) CreateVendor(c *gin.Context) {
	var in schema.VendorCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	sess := database.NewSession(c.Request.Context(), ctl.db)
	defer sess.Close()

	var owner model.User
	if err := sess.Tx().First(&owner, in.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "User not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Database error."})
		return
	}

	var count int64
	if err := sess.Tx().Model(&model.Vendor{}).Where("user_id = ?", in.UserID).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Database error."})
		return
	}
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "User already has a vendor profile."})
		return
	}

	if err := sess.Tx().Model(&model.Vendor{}).Where("store_slug = ?", in.StoreSlug).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Database error."})
		return
	}
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Store slug already taken."})
		return
	}

	vendor := model.Vendor{
		UserID:        in.UserID,
		StoreName:     in.StoreName,
		StoreSlug:     in.StoreSlug,
		Address:       in.Address,
		ContactNumber: in.ContactNumber,
		Description:   in.Description,
		LogoURL:       in.LogoURL,
		BannerURL:     in.BannerURL,
	}
	if err := sess.Add(&vendor); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Vendor already exists for this user or slug."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to create vendor."})
		return
	}
	if err := sess.Commit(); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Vendor already exists for this user or slug."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to create vendor."})
		return
	}
	if err := sess.Refresh(&vendor); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to load created vendor."})
		return
	}

	c.JSON(http.StatusCreated, schema.NewVendorRead(&vendor))
}

func (ctl *VendorController) GetVendor(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid vendor id."})
		return
	}

	var vendor model.Vendor
	if err := ctl.db.First(&vendor, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Vendor not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Database error."})
		return
	}
	c.JSON(http.StatusOK, schema.NewVendorRead(&vendor))
}

func (ctl *VendorController) ApproveVendor(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid vendor id."})
		return
	}

	now := time.Now().UTC()
	res := ctl.db.Model(&model.Vendor{}).Where("id = ?", uint(id)).Updates(map[string]any{
		"is_approved": true,
		"approved_at": now,
	})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to approve vendor."})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Vendor not found."})
		return
	}

	var vendor model.Vendor
	if err := ctl.db.First(&vendor, uint(id)).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Database error."})
		return
	}
	c.JSON(http.StatusOK, schema.NewVendorRead(&vendor))
}

func (ctl *VendorController) DeleteVendor(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid vendor id."})
		return
	}

	res := ctl.db.Delete(&model.Vendor{}, uint(id))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to delete vendor."})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Vendor not found."})
		return
	}
	c.Status(http.StatusNoContent)
}
