package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "study-slot-scheduler/pkg/errors"
)

// processGetEventsReq binds and validates the getEvents query parameters.
func (h *handler) processGetEventsReq(c *gin.Context) (getEventsReq, error) {
	var req getEventsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, pkgErrors.NewValidationError("sheetName and date are required")
	}
	return req, nil
}

// processWriteReq binds and validates the write request body + name query
// parameter. Validation happens before any external work: a malformed body or
// missing field never reaches the Google APIs.
func (h *handler) processWriteReq(c *gin.Context) (writeReq, error) {
	var req writeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPErrorWithDetails(400, "malformed JSON body", err.Error())
	}

	req.Name = c.Query("name")
	if req.Name == "" {
		return req, errMissingName
	}
	if req.Action == "" {
		return req, errMissingAction
	}
	if len(req.Dates) == 0 && req.SelectedDate == "" {
		return req, errNoDates
	}
	return req, nil
}
