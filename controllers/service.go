// controllers/service.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"homeservice-backend/models"
	"homeservice-backend/utils"
)

// CreateServiceInput defines the expected JSON structure for creating a
// service offering
type CreateServiceInput struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" binding:"required"`
}

type ServiceController struct {
	DB  *gorm.DB
	Log *zap.Logger
}

// GetServices retrieves the whole catalog (public)
func (sc *ServiceController) GetServices(c *gin.Context) {
	var services []models.Service
	if err := sc.DB.Find(&services).Error; err != nil {
		sc.Log.Error("failed to fetch services", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch services")
		return
	}

	c.JSON(http.StatusOK, services)
}

// CreateService adds a service to the catalog. There is no update or
// delete surface for services.
func (sc *ServiceController) CreateService(c *gin.Context) {
	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Required: name (string), price (non-negative number), description (optional)")
		return
	}
	if *input.Price < 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Required: name (string), price (non-negative number), description (optional)")
		return
	}

	service := models.Service{
		Name:        input.Name,
		Description: input.Description,
		Price:       *input.Price,
	}

	if err := sc.DB.Create(&service).Error; err != nil {
		sc.Log.Error("failed to create service", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service")
		return
	}

	sc.Log.Info("created service", zap.String("serviceId", service.ID.String()), zap.String("name", service.Name))
	c.JSON(http.StatusCreated, service)
}
