package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/wb-go/wbf/ginext"
)

// GetImages lists the processing history, newest first.
func (h *Handler) GetImages(c *ginext.Context) {
	limitStr := c.DefaultQuery("limit", "20")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		WriteJSONError(c, fmt.Errorf("limit must be a positive number"), http.StatusBadRequest)
		return
	}

	records, err := h.DB.GetRecords(c.Request.Context(), limit)
	if err != nil {
		WriteJSONError(c, err, http.StatusInternalServerError)
		return
	}

	count, err := h.DB.GetCountRecords(c.Request.Context())
	if err != nil {
		WriteJSONError(c, err, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, ginext.H{
		"count":  count,
		"images": records,
	})
}
