package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	pkgErrors "study-slot-scheduler/pkg/errors"
	"study-slot-scheduler/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestOK(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	response.OK(c, gin.H{"message": "done"})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["message"] != "done" {
		t.Errorf("unexpected message: %q", body["message"])
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
		wantDetails string
	}{
		{
			name:        "plain error defaults to 400",
			err:         errors.New("date is required"),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "date is required",
		},
		{
			name:        "http error keeps status",
			err:         pkgErrors.NewHTTPError(http.StatusInternalServerError, "authentication failed"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "authentication failed",
		},
		{
			name:        "http error keeps details",
			err:         pkgErrors.NewHTTPErrorWithDetails(http.StatusBadRequest, "invalid date", "parsing time"),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "invalid date",
			wantDetails: "parsing time",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			response.Error(c, tt.err)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}

			var body response.ErrResp
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid JSON body: %v", err)
			}
			if body.Error != tt.wantMessage {
				t.Errorf("expected error %q, got %q", tt.wantMessage, body.Error)
			}
			if body.Details != tt.wantDetails {
				t.Errorf("expected details %q, got %q", tt.wantDetails, body.Details)
			}
		})
	}
}

func TestInternalError(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	response.InternalError(c, errors.New("token expired"))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}

	var body response.ErrResp
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body.Error != response.DefaultErrorMessage {
		t.Errorf("expected generic message, got %q", body.Error)
	}
	if body.Details != "token expired" {
		t.Errorf("expected underlying error in details, got %q", body.Details)
	}
}
