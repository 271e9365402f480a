package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"immat-api/services"
	"immat-api/utils"
)

type MotorcycleController struct {
	service *services.MotorcycleService
}

func NewMotorcycleController(service *services.MotorcycleService) *MotorcycleController {
	return &MotorcycleController{service: service}
}

func (mc *MotorcycleController) GetMotorcycles(c *gin.Context) {
	motorcycles, err := mc.service.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch motorcycles")
		return
	}

	c.JSON(http.StatusOK, motorcycles)
}

func (mc *MotorcycleController) GetMotorcycle(c *gin.Context) {
	motorcycle, err := mc.service.GetByFrameNumber(c.Request.Context(), c.Param("frameNumber"))
	if err != nil {
		respondError(c, err, "Failed to fetch motorcycle")
		return
	}

	c.JSON(http.StatusOK, motorcycle)
}

// CreateMotorcycles accepts one record or an array of records.
func (mc *MotorcycleController) CreateMotorcycles(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "Could not read request body")
		return
	}

	count, err := mc.service.BulkInsert(c.Request.Context(), body)
	if err != nil {
		respondError(c, err, "Failed to save motorcycles")
		return
	}

	utils.SendCreated(c, "Motorcycles added successfully", count)
}

func (mc *MotorcycleController) UpdateMotorcycle(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "Could not read request body")
		return
	}

	if err := mc.service.UpdateByFrameNumber(c.Request.Context(), c.Param("frameNumber"), body); err != nil {
		respondError(c, err, "Failed to update motorcycle")
		return
	}

	utils.SendSuccess(c, "Motorcycle updated successfully")
}
