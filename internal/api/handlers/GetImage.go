package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) GetImage(c *ginext.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		WriteJSONError(c, err, http.StatusBadRequest)
		return
	}

	rec, err := h.DB.GetRecord(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, ginext.H{
				"error": "not found",
			})
			return
		}
		WriteJSONError(c, err, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, rec)
}
