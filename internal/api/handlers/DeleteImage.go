package handlers

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/wb-go/wbf/ginext"
)

// DeleteImage removes the original blob first and only then the history row.
// If the blob removal fails the row stays, so the gallery never references a
// blob whose fate is unknown.
func (h *Handler) DeleteImage(c *ginext.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		WriteJSONError(c, err, http.StatusBadRequest)
		return
	}

	rec, err := h.DB.GetRecord(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteJSONError(c, fmt.Errorf("not found"), http.StatusNotFound)
			return
		}
		WriteJSONError(c, err, http.StatusInternalServerError)
		return
	}

	objectName, err := h.ImageStorage.ObjectNameFromURL(rec.OriginalURL)
	if err != nil {
		WriteJSONError(c, err, http.StatusInternalServerError)
		return
	}

	if err := h.ImageStorage.Delete(c.Request.Context(), objectName); err != nil {
		WriteJSONError(c, err, http.StatusInternalServerError)
		return
	}

	if err := h.DB.DeleteRecord(c.Request.Context(), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteJSONError(c, fmt.Errorf("not found"), http.StatusNotFound)
			return
		}
		WriteJSONError(c, err, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, ginext.H{
		"result": "image delete",
	})
}
