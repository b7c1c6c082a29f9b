package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/periodictables/reservation-app/models"
	"github.com/periodictables/reservation-app/router"
	"github.com/periodictables/reservation-app/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// TestReservationLifecycle walks the main flow:
// 1. Create a reservation (booked)
// 2. Create a table
// 3. Seat the reservation (table occupied, reservation seated)
// 4. Finish the table (table free, reservation finished)
// 5. Finished reservation drops off the dashboard listing
// 6. Staff dashboard stats reflect the outcome
func TestReservationLifecycle(t *testing.T) {
	db := setupIntegrationDB(t)
	r := router.SetupRouter(db)

	date := nextOpenDate()

	// 1. Create reservation
	reservationID := createReservation(t, r, date)

	// 2. Create table
	tableID := createTable(t, r)

	// 3. Seat
	seatBody, _ := json.Marshal(map[string]interface{}{
		"data": map[string]interface{}{"reservation_id": reservationID},
	})
	w := perform(r, http.MethodPut, fmt.Sprintf("/tables/%d/seat", tableID),
		bytes.NewBuffer(seatBody), "")
	assert.Equal(t, http.StatusOK, w.Code)

	var reservation models.Reservation
	db.First(&reservation, reservationID)
	assert.Equal(t, models.StatusSeated, reservation.Status)

	// 4. Finish
	w = perform(r, http.MethodDelete, fmt.Sprintf("/tables/%d/seat", tableID), nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	var table models.Table
	db.First(&table, tableID)
	assert.Equal(t, models.TableFree, table.Status)
	assert.Nil(t, table.ReservationID)

	db.First(&reservation, reservationID)
	assert.Equal(t, models.StatusFinished, reservation.Status)

	// 5. Finished reservations are not listed
	w = perform(r, http.MethodGet, "/reservations?date="+date, nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	var listResponse map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResponse))
	assert.Empty(t, listResponse["data"])

	// 6. Stats
	token := registerAndLogin(t, r)
	w = perform(r, http.MethodGet, "/admin/dashboard/stats", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)

	var statsResponse map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &statsResponse))
	stats := statsResponse["data"].(map[string]interface{})
	reservations := stats["reservations"].(map[string]interface{})
	assert.Equal(t, float64(1), reservations[models.StatusFinished])
	tables := stats["tables"].(map[string]interface{})
	assert.Equal(t, float64(1), tables["free"])
}

func setupIntegrationDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	err = db.AutoMigrate(&models.User{}, &models.Reservation{}, &models.Table{})
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func nextOpenDate() string {
	d := time.Now().AddDate(0, 0, 1)
	for d.Weekday() == time.Tuesday {
		d = d.AddDate(0, 0, 1)
	}
	return d.Format("2006-01-02")
}

func perform(r *gin.Engine, method, url string, body *bytes.Buffer, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, url, nil)
	} else {
		req = httptest.NewRequest(method, url, body)
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createReservation(t *testing.T, r *gin.Engine, date string) uint {
	body, _ := json.Marshal(map[string]interface{}{
		"data": map[string]interface{}{
			"first_name":       "Ann",
			"last_name":        "Lee",
			"mobile_number":    "5551234567",
			"people":           2,
			"reservation_date": date,
			"reservation_time": "18:00",
		},
	})
	w := perform(r, http.MethodPost, "/reservations", bytes.NewBuffer(body), "")
	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, models.StatusBooked, data["status"])
	return uint(data["reservation_id"].(float64))
}

func createTable(t *testing.T, r *gin.Engine) uint {
	body, _ := json.Marshal(map[string]interface{}{
		"data": map[string]interface{}{"table_name": "Bar 1", "capacity": 2},
	})
	w := perform(r, http.MethodPost, "/tables", bytes.NewBuffer(body), "")
	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	return uint(data["table_id"].(float64))
}

func registerAndLogin(t *testing.T, r *gin.Engine) string {
	register, _ := json.Marshal(map[string]string{
		"name": "Test Admin", "email": "admin@example.com",
		"password": "secret123", "role": "admin",
	})
	w := perform(r, http.MethodPost, "/register", bytes.NewBuffer(register), "")
	assert.Equal(t, http.StatusCreated, w.Code)

	login, _ := json.Marshal(map[string]string{
		"email": "admin@example.com", "password": "secret123",
	})
	w = perform(r, http.MethodPost, "/login", bytes.NewBuffer(login), "")
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	return data["token"].(string)
}
