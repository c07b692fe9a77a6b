package http

import (
	"github.com/gin-gonic/gin"

	"study-slot-scheduler/pkg/response"
)

// Read godoc
// @Summary     Read schedule data
// @Description Dispatches on the action query parameter: ping, getSheetNames, or getEvents.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       action    query string true  "ping | getSheetNames | getEvents"
// @Param       sheetName query string false "Sheet name (getEvents)"
// @Param       date      query string false "Date YYYY-MM-DD (getEvents)"
// @Success     200 {object} getEventsResp
// @Failure     400 {object} response.ErrResp "Bad Request"
// @Failure     500 {object} response.ErrResp "Internal Server Error"
// @Router      /events [GET]
func (h *handler) Read(c *gin.Context) {
	ctx := c.Request.Context()

	switch c.Query("action") {
	case actionPing:
		response.OK(c, pingResp{Message: "study slot scheduler is running"})

	case actionGetSheetNames:
		response.OK(c, sheetNamesResp{SheetNames: h.uc.SheetNames(ctx)})

	case actionGetEvents:
		req, err := h.processGetEventsReq(c)
		if err != nil {
			response.Error(c, err)
			return
		}

		output, err := h.uc.GetEvents(ctx, req.toInput())
		if err != nil {
			h.l.Errorf(ctx, "uc.GetEvents: %v", err)
			response.Error(c, h.mapError(err, req.SheetName))
			return
		}

		response.OK(c, h.newGetEventsResp(output))

	default:
		response.Error(c, errMissingAction)
	}
}

// Write godoc
// @Summary     Mutate schedule data
// @Description Dispatches on the body action field: addAll creates events and mirrors the sheet, removeAll bulk-deletes and clears it.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       name query string   true "Sheet name"
// @Param       body body  writeReq true "Action payload"
// @Success     200 {object} messageResp
// @Failure     400 {object} response.ErrResp "Bad Request"
// @Failure     500 {object} response.ErrResp "Internal Server Error"
// @Router      /events [POST]
func (h *handler) Write(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processWriteReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	switch req.Action {
	case actionAddAll:
		output, err := h.uc.AddAll(ctx, req.toAddAllInput())
		if err != nil {
			h.l.Errorf(ctx, "uc.AddAll: %v", err)
			response.Error(c, h.mapError(err, req.Name))
			return
		}
		response.OK(c, h.newAddAllResp(output))

	case actionRemoveAll:
		output, err := h.uc.RemoveAll(ctx, req.toRemoveAllInput())
		if err != nil {
			h.l.Errorf(ctx, "uc.RemoveAll: %v", err)
			response.Error(c, h.mapError(err, req.Name))
			return
		}
		response.OK(c, h.newRemoveAllResp(output))

	default:
		response.Error(c, errUnknownAction)
	}
}
