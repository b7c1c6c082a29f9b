package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/periodictables/reservation-app/models"
	"github.com/periodictables/reservation-app/utils"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GetDashboardStats -> reservation counts by status plus table occupancy.
func (dc *DashboardController) GetDashboardStats(c *gin.Context) {
	reservations := map[string]int64{}
	for _, status := range []string{
		models.StatusBooked, models.StatusSeated, models.StatusFinished, models.StatusCancelled,
	} {
		var count int64
		if err := dc.DB.Model(&models.Reservation{}).
			Where("status = ?", status).Count(&count).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		reservations[status] = count
	}

	var freeCount, occupiedCount int64
	if err := dc.DB.Model(&models.Table{}).
		Where("status = ?", models.TableFree).Count(&freeCount).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := dc.DB.Model(&models.Table{}).
		Where("status = ?", models.TableOccupied).Count(&occupiedCount).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Dashboard stats", gin.H{
		"reservations": reservations,
		"tables": gin.H{
			"free":     freeCount,
			"occupied": occupiedCount,
			"total":    freeCount + occupiedCount,
		},
	})
}
