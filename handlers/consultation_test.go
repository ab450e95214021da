package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	calendarRepo "enersense/database/repository/calendar"
	deskRepo "enersense/database/repository/desk"
	"enersense/services/desk"
	"enersense/services/slotbook"
	"enersense/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestApp(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	slotBookService := slotbook.NewDefaultSlotBook(calendarRepo.NewMemoryBookingRepo())
	captureRepo, err := deskRepo.NewFileDeskRepo(t.TempDir())
	require.NoError(t, err)
	deskService := desk.NewDefaultDeskService(captureRepo)

	consultationHandler := NewConsultationHandler(slotBookService, utils.GetLogger())
	deskHandler := NewDeskHandler(deskService, utils.GetLogger())

	router := gin.New()
	router.POST("/api/consultations", consultationHandler.ScheduleConsultation)
	router.GET("/api/consultations/slots/:date", consultationHandler.GetAvailableSlots)
	router.POST("/api/desk/leads", deskHandler.RecordLead)
	router.POST("/api/desk/feedback", deskHandler.RecordFeedback)
	return router
}

func postJSON(router *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestScheduleConsultation(t *testing.T) {
	router := setupTestApp(t)

	booking := map[string]string{
		"date":        "2025-10-22",
		"time":        "11:00",
		"client_name": "Sarah Nader",
		"topic":       "energy optimization",
	}

	tests := []struct {
		name       string
		payload    map[string]string
		wantStatus int
	}{
		{
			name:       "books a free slot",
			payload:    booking,
			wantStatus: http.StatusCreated,
		},
		{
			name: "rejects a taken slot",
			payload: map[string]string{
				"date":        "2025-10-22",
				"time":        "11:00",
				"client_name": "Hadi Nader",
				"topic":       "solar setup",
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "rejects a malformed date",
			payload: map[string]string{
				"date":        "October 22",
				"time":        "11:00",
				"client_name": "Sarah Nader",
				"topic":       "solar setup",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "rejects an off-grid time",
			payload: map[string]string{
				"date":        "2025-10-22",
				"time":        "11:30",
				"client_name": "Sarah Nader",
				"topic":       "solar setup",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "rejects missing fields",
			payload: map[string]string{
				"date": "2025-10-22",
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(router, "/api/consultations", tt.payload)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestGetAvailableSlots(t *testing.T) {
	router := setupTestApp(t)

	w := postJSON(router, "/api/consultations", map[string]string{
		"date":        "2025-10-22",
		"time":        "11:00",
		"client_name": "Sarah Nader",
		"topic":       "energy optimization",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/consultations/slots/2025-10-22", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Date      string   `json:"date"`
		Available []string `json:"available"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2025-10-22", resp.Date)
	assert.Equal(t, []string{"09:00", "10:00", "12:00", "13:00", "14:00", "15:00", "16:00"}, resp.Available)

	// Bad date in the path is a 400, not a 500.
	req = httptest.NewRequest(http.MethodGet, "/api/consultations/slots/someday", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeskEndpoints(t *testing.T) {
	router := setupTestApp(t)

	w := postJSON(router, "/api/desk/leads", map[string]string{
		"name":    "Sarah Nader",
		"email":   "sarah@example.com",
		"message": "Interested in monitoring",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["message"], "Sarah Nader")

	// Missing required fields are rejected before anything is written.
	w = postJSON(router, "/api/desk/leads", map[string]string{"name": "Sarah Nader"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(router, "/api/desk/feedback", map[string]string{
		"question": "Do you cover wind farms?",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
}
