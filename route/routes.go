package route

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"swiftcart/controller"
)

func RegisterRoutes(router *gin.Engine, db *gorm.DB) {
	users := controller.NewUserController(db)
	vendors := controller.NewVendorController(db)
	products := controller.NewProductController(db)

	api := router.Group("/api")
	{
		userGroup := api.Group("/users")
		{
			userGroup.POST("/create", users.CreateUser)
			userGroup.GET("/me", users.Me)
			userGroup.GET("/:id", users.GetUser)
			userGroup.DELETE("/:id", users.DeleteUser)
		}

		vendorGroup := api.Group("/vendors")
		{
			vendorGroup.POST("/create", vendors.CreateVendor)
			vendorGroup.GET("/:id", vendors.GetVendor)
			vendorGroup.PATCH("/:id/approve", vendors.ApproveVendor)
			vendorGroup.DELETE("/:id", vendors.DeleteVendor)
		}

		productGroup := api.Group("/products")
		{
			productGroup.POST("/create", products.CreateProduct)
			productGroup.POST("/bulk", products.BulkImport)
			productGroup.GET("", products.ListProducts)
			productGroup.GET("/:id", products.GetProduct)
			productGroup.PUT("/:id", products.UpdateProduct)
			productGroup.DELETE("/:id", products.DeleteProduct)
		}
	}

	router.GET("/", liveness)
	api.GET("", liveness)
	router.GET("/check_db", checkDB(db))
}

func liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Swiftcart core API is running."})
}

func checkDB(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var result int
		if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "Database unreachable."})
			return
		}
		c.JSON(http.StatusOK, gin.H{"db_connection": result})
	}
}
