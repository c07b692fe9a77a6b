package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"study-slot-scheduler/internal/middleware"
	"study-slot-scheduler/internal/schedule"
	scheduleHTTP "study-slot-scheduler/internal/schedule/delivery/http"
	"study-slot-scheduler/pkg/log"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeUseCase records calls; handlers must never reach it on validation errors.
type fakeUseCase struct {
	calls         []string
	addAllInput   schedule.AddAllInput
	getEventsErr  error
	addAllErr     error
	removeAllErr  error
	removeAllOut  schedule.RemoveAllOutput
	addAllOut     schedule.AddAllOutput
	getEventsOut  schedule.GetEventsOutput
	sheetNamesOut []string
}

func (f *fakeUseCase) SheetNames(ctx context.Context) []string {
	f.calls = append(f.calls, "SheetNames")
	return f.sheetNamesOut
}

func (f *fakeUseCase) GetEvents(ctx context.Context, input schedule.GetEventsInput) (schedule.GetEventsOutput, error) {
	f.calls = append(f.calls, "GetEvents")
	return f.getEventsOut, f.getEventsErr
}

func (f *fakeUseCase) AddAll(ctx context.Context, input schedule.AddAllInput) (schedule.AddAllOutput, error) {
	f.calls = append(f.calls, "AddAll")
	f.addAllInput = input
	return f.addAllOut, f.addAllErr
}

func (f *fakeUseCase) RemoveAll(ctx context.Context, input schedule.RemoveAllInput) (schedule.RemoveAllOutput, error) {
	f.calls = append(f.calls, "RemoveAll")
	return f.removeAllOut, f.removeAllErr
}

func newRouter(uc schedule.UseCase) *gin.Engine {
	router := gin.New()
	h := scheduleHTTP.New(log.NewNop(), uc)
	scheduleHTTP.RegisterRoutes(router.Group(""), h, middleware.New(log.NewNop(), 1000))
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRead(t *testing.T) {
	t.Run("Ping", func(t *testing.T) {
		router := newRouter(&fakeUseCase{})
		w := doJSON(t, router, http.MethodGet, "/events?action=ping", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("Get sheet names", func(t *testing.T) {
		uc := &fakeUseCase{sheetNamesOut: []string{"an", "minh"}}
		router := newRouter(uc)

		w := doJSON(t, router, http.MethodGet, "/events?action=getSheetNames", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body struct {
			SheetNames []string `json:"sheetNames"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if len(body.SheetNames) != 2 {
			t.Errorf("expected 2 names, got %v", body.SheetNames)
		}
	})

	t.Run("Missing action", func(t *testing.T) {
		uc := &fakeUseCase{}
		router := newRouter(uc)

		w := doJSON(t, router, http.MethodGet, "/events", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if len(uc.calls) != 0 {
			t.Errorf("expected no use case calls, got %v", uc.calls)
		}
	})

	t.Run("Get events requires sheetName and date", func(t *testing.T) {
		uc := &fakeUseCase{}
		router := newRouter(uc)

		w := doJSON(t, router, http.MethodGet, "/events?action=getEvents&sheetName=minh", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if len(uc.calls) != 0 {
			t.Errorf("expected no use case calls, got %v", uc.calls)
		}
	})

	t.Run("Get events happy path", func(t *testing.T) {
		uc := &fakeUseCase{}
		router := newRouter(uc)

		w := doJSON(t, router, http.MethodGet, "/events?action=getEvents&sheetName=minh&date=2025-01-10", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), `"events"`) {
			t.Errorf("expected events field, got %s", w.Body.String())
		}
	})
}

func TestWrite(t *testing.T) {
	t.Run("Malformed JSON yields 400 with no external work", func(t *testing.T) {
		uc := &fakeUseCase{}
		router := newRouter(uc)

		w := doJSON(t, router, http.MethodPost, "/events?name=minh", `{"action": "addAll",`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if len(uc.calls) != 0 {
			t.Errorf("expected no use case calls, got %v", uc.calls)
		}
	})

	t.Run("Missing name", func(t *testing.T) {
		uc := &fakeUseCase{}
		router := newRouter(uc)

		w := doJSON(t, router, http.MethodPost, "/events",
			`{"action":"addAll","selectedDate":"2025-01-10"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if len(uc.calls) != 0 {
			t.Errorf("expected no use case calls, got %v", uc.calls)
		}
	})

	t.Run("Missing action", func(t *testing.T) {
		uc := &fakeUseCase{}
		router := newRouter(uc)

		w := doJSON(t, router, http.MethodPost, "/events?name=minh",
			`{"selectedDate":"2025-01-10"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("No dates", func(t *testing.T) {
		uc := &fakeUseCase{}
		router := newRouter(uc)

		w := doJSON(t, router, http.MethodPost, "/events?name=minh", `{"action":"addAll"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if len(uc.calls) != 0 {
			t.Errorf("expected no use case calls, got %v", uc.calls)
		}
	})

	t.Run("Add all happy path", func(t *testing.T) {
		uc := &fakeUseCase{addAllOut: schedule.AddAllOutput{
			Created: 1,
			Message: "1 events added successfully",
		}}
		router := newRouter(uc)

		w := doJSON(t, router, http.MethodPost, "/events?name=minh",
			`{"action":"addAll","events":[{"title":"Math"}],"dates":["2025-01-10"]}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), "1 events added successfully") {
			t.Errorf("expected success message, got %s", w.Body.String())
		}

		if uc.addAllInput.SheetName != "minh" {
			t.Errorf("expected sheet name minh, got %q", uc.addAllInput.SheetName)
		}
		if len(uc.addAllInput.Slots) != 1 || uc.addAllInput.Slots[0].Title != "Math" {
			t.Errorf("unexpected slots: %v", uc.addAllInput.Slots)
		}
		if len(uc.addAllInput.Selection.Dates) != 1 {
			t.Errorf("unexpected dates: %v", uc.addAllInput.Selection.Dates)
		}
	})

	t.Run("Unknown sheet name maps to 400 with named message", func(t *testing.T) {
		uc := &fakeUseCase{addAllErr: schedule.ErrUnknownSheetName}
		router := newRouter(uc)

		w := doJSON(t, router, http.MethodPost, "/events?name=ghost",
			`{"action":"addAll","selectedDate":"2025-01-10"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "Invalid or missing calendar ID for ghost") {
			t.Errorf("expected named error message, got %s", w.Body.String())
		}
	})

	t.Run("Remove all reports deletions", func(t *testing.T) {
		uc := &fakeUseCase{removeAllOut: schedule.RemoveAllOutput{
			Deleted: 3,
			PerDate: map[string]int{"2025-01-10": 3, "2025-01-11": 0},
			Message: "3 events deleted successfully",
		}}
		router := newRouter(uc)

		w := doJSON(t, router, http.MethodPost, "/events?name=minh",
			`{"action":"removeAll","dates":["2025-01-10","2025-01-11"]}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body struct {
			Deleted int            `json:"deleted"`
			PerDate map[string]int `json:"perDate"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if body.Deleted != 3 {
			t.Errorf("expected 3 deleted, got %d", body.Deleted)
		}
		if body.PerDate["2025-01-10"] != 3 {
			t.Errorf("expected per-date breakdown, got %v", body.PerDate)
		}
	})

	t.Run("Unknown write action", func(t *testing.T) {
		uc := &fakeUseCase{}
		router := newRouter(uc)

		w := doJSON(t, router, http.MethodPost, "/events?name=minh",
			`{"action":"explodeAll","selectedDate":"2025-01-10"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if len(uc.calls) != 0 {
			t.Errorf("expected no use case calls, got %v", uc.calls)
		}
	})
}
