package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/periodictables/reservation-app/models"
	"github.com/periodictables/reservation-app/utils"
	"github.com/periodictables/reservation-app/validation"
)

// ErrMissingData rejects bodies that lack the {"data": {...}} envelope.
var ErrMissingData = errors.New("Body must include a data object")

type ReservationController struct {
	DB *gorm.DB
}

func NewReservationController(db *gorm.DB) *ReservationController {
	return &ReservationController{DB: db}
}

type reservationRequest struct {
	Data *validation.ReservationForm `json:"data"`
}

type statusRequest struct {
	Data *struct {
		Status string `json:"status"`
	} `json:"data"`
}

// ListReservations -> dashboard listing, filtered by date or mobile-number
// prefix. Finished reservations never appear in the response.
func (rc *ReservationController) ListReservations(c *gin.Context) {
	date := c.Query("date")
	mobile := c.Query("mobile_number")

	query := rc.DB.Model(&models.Reservation{})
	switch {
	case date != "":
		query = query.Where("reservation_date = ?", date).
			Order("reservation_time asc")
	case mobile != "":
		query = query.Where("mobile_number LIKE ?", mobile+"%").
			Order("reservation_date asc, reservation_time asc")
	default:
		query = query.Order("reservation_date asc, reservation_time asc")
	}

	var reservations []models.Reservation
	if err := query.Find(&reservations).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	visible := make([]models.Reservation, 0, len(reservations))
	for _, r := range reservations {
		if !r.Finished() {
			visible = append(visible, r)
		}
	}

	utils.RespondData(c, http.StatusOK, visible)
}

// GetReservationByID -> single reservation or 404.
func (rc *ReservationController) GetReservationByID(c *gin.Context) {
	id := c.Param("reservation_id")

	var reservation models.Reservation
	if err := rc.DB.First(&reservation, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound,
			fmt.Errorf("reservation_id %s does not exist", id))
		return
	}

	utils.RespondData(c, http.StatusOK, reservation)
}

// CreateReservation -> validates the proposed reservation and persists it as
// booked.
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var req reservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Data == nil {
		utils.RespondError(c, http.StatusBadRequest, ErrMissingData)
		return
	}

	if violations := validation.Reservation(req.Data, time.Now()); len(violations) > 0 {
		utils.RespondViolations(c, violations)
		return
	}

	form := req.Data
	reservation := models.Reservation{
		FirstName:       *form.FirstName,
		LastName:        *form.LastName,
		MobileNumber:    *form.MobileNumber,
		People:          *form.People,
		ReservationDate: *form.ReservationDate,
		ReservationTime: *form.ReservationTime,
		Status:          models.StatusBooked,
	}

	if err := rc.DB.Create(&reservation).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New reservation %d: %s %s, party of %d on %s %s",
		reservation.ID, reservation.FirstName, reservation.LastName,
		reservation.People, reservation.ReservationDate, reservation.ReservationTime)
	utils.RespondData(c, http.StatusCreated, reservation)
}

// EditReservation -> full field replacement, permitted only while the
// reservation is still booked.
func (rc *ReservationController) EditReservation(c *gin.Context) {
	id := c.Param("reservation_id")

	var reservation models.Reservation
	if err := rc.DB.First(&reservation, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound,
			fmt.Errorf("reservation_id %s does not exist", id))
		return
	}

	var req reservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Data == nil {
		utils.RespondError(c, http.StatusBadRequest, ErrMissingData)
		return
	}

	violations := validation.Reservation(req.Data, time.Now())
	if !reservation.Editable() {
		violations = append(violations,
			fmt.Sprintf("only a booked reservation may be edited; this one is %s", reservation.Status))
	}
	if len(violations) > 0 {
		utils.RespondViolations(c, violations)
		return
	}

	form := req.Data
	reservation.FirstName = *form.FirstName
	reservation.LastName = *form.LastName
	reservation.MobileNumber = *form.MobileNumber
	reservation.People = *form.People
	reservation.ReservationDate = *form.ReservationDate
	reservation.ReservationTime = *form.ReservationTime

	if err := rc.DB.Save(&reservation).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Reservation %d edited", reservation.ID)
	utils.RespondData(c, http.StatusOK, reservation)
}

// UpdateReservationStatus -> applies a state-machine-checked status change.
// Cancelling a seated reservation also frees its table; an occupied table
// must never point at a non-seated reservation.
func (rc *ReservationController) UpdateReservationStatus(c *gin.Context) {
	id := c.Param("reservation_id")

	var reservation models.Reservation
	if err := rc.DB.First(&reservation, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound,
			fmt.Errorf("reservation_id %s does not exist", id))
		return
	}

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Data == nil {
		utils.RespondError(c, http.StatusBadRequest, ErrMissingData)
		return
	}

	requested := req.Data.Status
	if violations := validation.ReservationStatus(reservation.Status, requested); len(violations) > 0 {
		utils.RespondViolations(c, violations)
		return
	}

	wasSeated := reservation.Status == models.StatusSeated
	err := rc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Reservation{}).
			Where("id = ?", reservation.ID).
			Update("status", requested).Error; err != nil {
			return err
		}
		if requested == models.StatusCancelled && wasSeated {
			return tx.Model(&models.Table{}).
				Where("reservation_id = ?", reservation.ID).
				Updates(map[string]interface{}{
					"status":         models.TableFree,
					"reservation_id": nil,
				}).Error
		}
		return nil
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Reservation %d status: %s -> %s", reservation.ID, reservation.Status, requested)
	utils.RespondData(c, http.StatusOK, gin.H{"status": requested})
}
