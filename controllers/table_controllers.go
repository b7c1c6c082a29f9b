package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/periodictables/reservation-app/models"
	"github.com/periodictables/reservation-app/utils"
	"github.com/periodictables/reservation-app/validation"
)

type TableController struct {
	DB *gorm.DB
}

func NewTableController(db *gorm.DB) *TableController {
	return &TableController{DB: db}
}

type tableRequest struct {
	Data *validation.TableForm `json:"data"`
}

type seatRequest struct {
	Data *struct {
		ReservationID *uint `json:"reservation_id"`
	} `json:"data"`
}

// CreateTable -> adds a new table, starting out free.
func (tc *TableController) CreateTable(c *gin.Context) {
	var req tableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Data == nil {
		utils.RespondError(c, http.StatusBadRequest, ErrMissingData)
		return
	}

	if violations := validation.Table(req.Data); len(violations) > 0 {
		utils.RespondViolations(c, violations)
		return
	}

	table := models.Table{
		TableName: *req.Data.TableName,
		Capacity:  *req.Data.Capacity,
		Status:    models.TableFree,
	}
	if err := tc.DB.Create(&table).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New table created: %s (capacity=%d)", table.TableName, table.Capacity)
	utils.RespondData(c, http.StatusCreated, table)
}

// GetAllTables -> every table, ordered by name.
func (tc *TableController) GetAllTables(c *gin.Context) {
	var tables []models.Table
	if err := tc.DB.Order("table_name asc").Find(&tables).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondData(c, http.StatusOK, tables)
}

// SeatReservation -> places a booked reservation at a free table with enough
// capacity. The occupy itself is a conditional update so two concurrent seat
// requests for the same table cannot both win.
func (tc *TableController) SeatReservation(c *gin.Context) {
	tableID := c.Param("table_id")

	var req seatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Data == nil {
		utils.RespondError(c, http.StatusBadRequest, ErrMissingData)
		return
	}
	if req.Data.ReservationID == nil {
		utils.RespondViolations(c, []string{"Field required: 'reservation_id'"})
		return
	}

	var table models.Table
	if err := tc.DB.First(&table, tableID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound,
			fmt.Errorf("table_id %s does not exist", tableID))
		return
	}

	var reservation models.Reservation
	if err := tc.DB.First(&reservation, *req.Data.ReservationID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound,
			fmt.Errorf("reservation_id %d does not exist", *req.Data.ReservationID))
		return
	}

	if violations := validation.Seat(&table, &reservation); len(violations) > 0 {
		utils.RespondViolations(c, violations)
		return
	}

	err := tc.DB.Transaction(func(tx *gorm.DB) error {
		occupy := tx.Model(&models.Table{}).
			Where("id = ? AND status = ?", table.ID, models.TableFree).
			Updates(map[string]interface{}{
				"status":         models.TableOccupied,
				"reservation_id": reservation.ID,
			})
		if occupy.Error != nil {
			return occupy.Error
		}
		if occupy.RowsAffected == 0 {
			return fmt.Errorf("table %s is currently occupied", table.TableName)
		}

		seat := tx.Model(&models.Reservation{}).
			Where("id = ? AND status = ?", reservation.ID, models.StatusBooked).
			Update("status", models.StatusSeated)
		if seat.Error != nil {
			return seat.Error
		}
		if seat.RowsAffected == 0 {
			return fmt.Errorf("reservation %d is no longer booked", reservation.ID)
		}
		return nil
	})
	if err != nil {
		// A lost race surfaces here as a state conflict, not a server fault.
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := tc.DB.First(&table, table.ID).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Reservation %d seated at table %s", reservation.ID, table.TableName)
	utils.RespondData(c, http.StatusOK, table)
}

// FinishTable -> frees an occupied table and moves its reservation to
// finished.
func (tc *TableController) FinishTable(c *gin.Context) {
	tableID := c.Param("table_id")

	var table models.Table
	if err := tc.DB.First(&table, tableID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound,
			fmt.Errorf("table_id %s does not exist", tableID))
		return
	}

	if !table.Occupied() {
		utils.RespondError(c, http.StatusBadRequest,
			fmt.Errorf("table %s is not occupied", table.TableName))
		return
	}

	reservationID := table.ReservationID
	err := tc.DB.Transaction(func(tx *gorm.DB) error {
		free := tx.Model(&models.Table{}).
			Where("id = ? AND status = ?", table.ID, models.TableOccupied).
			Updates(map[string]interface{}{
				"status":         models.TableFree,
				"reservation_id": nil,
			})
		if free.Error != nil {
			return free.Error
		}
		if free.RowsAffected == 0 {
			return fmt.Errorf("table %s is not occupied", table.TableName)
		}

		if reservationID != nil {
			return tx.Model(&models.Reservation{}).
				Where("id = ?", *reservationID).
				Update("status", models.StatusFinished).Error
		}
		return nil
	})
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := tc.DB.First(&table, table.ID).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Table %s freed", table.TableName)
	utils.RespondData(c, http.StatusOK, table)
}
