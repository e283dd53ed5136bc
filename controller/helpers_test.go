package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"swiftcart/database"
	"swiftcart/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

// setupRouter registers the API routes under test against a fresh engine.
func setupRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	users := NewUserController(db)
	vendors := NewVendorController(db)
	products := NewProductController(db)

	api := r.Group("/api")
	api.POST("/users/create", users.CreateUser)
	api.GET("/users/me", users.Me)
	api.GET("/users/:id", users.GetUser)
	api.DELETE("/users/:id", users.DeleteUser)

	api.POST("/vendors/create", vendors.CreateVendor)
	api.GET("/vendors/:id", vendors.GetVendor)
	api.PATCH("/vendors/:id/approve", vendors.ApproveVendor)
	api.DELETE("/vendors/:id", vendors.DeleteVendor)

	api.POST("/products/create", products.CreateProduct)
	api.POST("/products/bulk", products.BulkImport)
	api.GET("/products", products.ListProducts)
	api.GET("/products/:id", products.GetProduct)
	api.PUT("/products/:id", products.UpdateProduct)
	api.DELETE("/products/:id", products.DeleteProduct)

	return r
}

func performJSON(t *testing.T, router *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req, err := http.NewRequest(method, path, &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func seedUser(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()
	u := &model.User{
		FirstName:    "Seed",
		LastName:     "User",
		Email:        email,
		PasswordHash: "$argon2id$stub",
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedVendor(t *testing.T, db *gorm.DB, userID uint, slug string) *model.Vendor {
	t.Helper()
	v := &model.Vendor{
		UserID:        userID,
		StoreName:     "Seed Store",
		StoreSlug:     slug,
		Address:       "1 Main Street",
		ContactNumber: "1234567",
	}
	require.NoError(t, db.Create(v).Error)
	return v
}
