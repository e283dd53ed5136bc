package controller

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"swiftcart/database"
	"swiftcart/model"
	"swiftcart/schema"
	"swiftcart/utils"
)

type UserController struct {
	db *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{db: db}
}

// CreateUser registers a new account. The duplicate-email pre-check is a
// fast path only; the unique index on users.email is what actually closes
// the race, surfacing as a duplicated-key error at insert time.
func (ctl *UserController) CreateUser(c *gin.Context) {
	var in schema.UserCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}
	if err := in.ValidatePassword(); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	role := in.Role
	if role == "" {
		role = model.RoleCustomer
	}

	sess := database.NewSession(c.Request.Context(), ctl.db)
	defer sess.Close()

	var existing model.User
	err := sess.Tx().Where("email = ?", email).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Email already registered."})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Database error."})
		return
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to hash password."})
		return
	}

	user := model.User{
		FirstName:    utils.TitleCase(in.FirstName),
		LastName:     utils.TitleCase(in.LastName),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := sess.Add(&user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Email already registered."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to create user."})
		return
	}
	if err := sess.Commit(); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Email already registered."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to create user."})
		return
	}
	if err := sess.Refresh(&user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to load created user."})
		return
	}

	c.JSON(http.StatusCreated, schema.NewUserRead(&user))
}

func (ctl *UserController) GetUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid user id."})
		return
	}

	var user model.User
	if err := ctl.db.First(&user, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "User not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Database error."})
		return
	}
	c.JSON(http.StatusOK, schema.NewUserRead(&user))
}

func (ctl *UserController) DeleteUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid user id."})
		return
	}

	res := ctl.db.Delete(&model.User{}, uint(id))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to delete user."})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"detail": "User not found."})
		return
	}
	c.Status(http.StatusNoContent)
}

// Me is a placeholder until authentication lands.
func (ctl *UserController) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "This endpoint will return the current authenticated user's details.",
	})
}
