package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"immat-api/services"
	"immat-api/utils"
)

type ProvinceController struct {
	service *services.ProvinceService
}

func NewProvinceController(service *services.ProvinceService) *ProvinceController {
	return &ProvinceController{service: service}
}

func (pc *ProvinceController) GetProvinces(c *gin.Context) {
	provinces, err := pc.service.ListProvinces(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch provinces")
		return
	}

	c.JSON(http.StatusOK, provinces)
}

func (pc *ProvinceController) GetCities(c *gin.Context) {
	cities, err := pc.service.ListCities(c.Request.Context(), c.Query("province"))
	if err != nil {
		if errors.Is(err, services.ErrMissingParameter) {
			utils.SendError(c, http.StatusBadRequest, "Missing province parameter")
			return
		}
		respondError(c, err, "Failed to fetch cities")
		return
	}

	c.JSON(http.StatusOK, cities)
}
