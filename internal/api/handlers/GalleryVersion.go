package handlers

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

// GalleryVersion reports the refresh counter; clients refetch the gallery when
// it changes.
func (h *Handler) GalleryVersion(c *ginext.Context) {
	c.JSON(http.StatusOK, ginext.H{
		"version": h.Refresh.Version(),
	})
}
