package http

import (
	"time"

	"study-slot-scheduler/internal/schedule"
)

// Dispatch actions.
const (
	actionPing          = "ping"
	actionGetSheetNames = "getSheetNames"
	actionGetEvents     = "getEvents"
	actionAddAll        = "addAll"
	actionRemoveAll     = "removeAll"
)

// --- Request DTOs ---

type getEventsReq struct {
	SheetName string `form:"sheetName" binding:"required"`
	Date      string `form:"date"      binding:"required"`
}

func (r getEventsReq) toInput() schedule.GetEventsInput {
	return schedule.GetEventsInput{
		SheetName: r.SheetName,
		Date:      r.Date,
	}
}

type slotReq struct {
	Title     string `json:"title"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type writeReq struct {
	Name          string    `json:"-"` // populated from the name query parameter
	Action        string    `json:"action"`
	Events        []slotReq `json:"events"`
	BulkTitles    string    `json:"bulkTitles"`
	Dates         []string  `json:"dates"`
	SelectedDate  string    `json:"selectedDate"`
	RangeEndDate  string    `json:"rangeEndDate"`
	IsRangeMode   bool      `json:"isRangeMode"`
	EventDuration int       `json:"eventDuration"`
}

func (r writeReq) selection() schedule.DateSelection {
	return schedule.DateSelection{
		Dates:        r.Dates,
		SelectedDate: r.SelectedDate,
		RangeEndDate: r.RangeEndDate,
		RangeMode:    r.IsRangeMode,
	}
}

func (r writeReq) toAddAllInput() schedule.AddAllInput {
	slots := make([]schedule.SlotInput, 0, len(r.Events))
	for _, ev := range r.Events {
		slots = append(slots, schedule.SlotInput{
			Title:     ev.Title,
			StartTime: ev.StartTime,
			EndTime:   ev.EndTime,
		})
	}
	return schedule.AddAllInput{
		SheetName:   r.Name,
		Slots:       slots,
		BulkTitles:  r.BulkTitles,
		Selection:   r.selection(),
		DurationMin: r.EventDuration,
	}
}

func (r writeReq) toRemoveAllInput() schedule.RemoveAllInput {
	return schedule.RemoveAllInput{
		SheetName: r.Name,
		Selection: r.selection(),
	}
}

// --- Response DTOs ---

type pingResp struct {
	Message string `json:"message"`
}

type sheetNamesResp struct {
	SheetNames []string `json:"sheetNames"`
}

type slotResp struct {
	Title      string    `json:"title"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
	VideoURL   string    `json:"videoUrl,omitempty"`
	VideoURLEn string    `json:"videoUrlEn,omitempty"`
	TimeZone   string    `json:"timeZone"`
}

type getEventsResp struct {
	Events []slotResp `json:"events"`
}

func (h *handler) newGetEventsResp(out schedule.GetEventsOutput) getEventsResp {
	events := make([]slotResp, len(out.Events))
	for i, s := range out.Events {
		events[i] = slotResp{
			Title:      s.Title,
			StartTime:  s.StartTime,
			EndTime:    s.EndTime,
			VideoURL:   s.VideoURL,
			VideoURLEn: s.VideoURLEn,
			TimeZone:   s.TimeZone,
		}
	}
	return getEventsResp{Events: events}
}

type messageResp struct {
	Message string         `json:"message"`
	Added   int            `json:"added,omitempty"`
	Deleted int            `json:"deleted,omitempty"`
	PerDate map[string]int `json:"perDate,omitempty"`
}

func (h *handler) newAddAllResp(out schedule.AddAllOutput) messageResp {
	return messageResp{
		Message: out.Message,
		Added:   out.Created,
	}
}

func (h *handler) newRemoveAllResp(out schedule.RemoveAllOutput) messageResp {
	return messageResp{
		Message: out.Message,
		Deleted: out.Deleted,
		PerDate: out.PerDate,
	}
}
