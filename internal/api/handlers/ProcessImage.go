package handlers

import (
	"fmt"
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"ImageStyler/internal/model"
	"ImageStyler/internal/transform"
)

// ProcessImage is the JSON boundary for clients that already uploaded the
// original themselves: it derives the rendering URL for a public URL and a set
// of options. A failed history insert does not downgrade the response.
func (h *Handler) ProcessImage(c *ginext.Context) {
	var req model.ProcessImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		WriteJSONError(c, err, http.StatusBadRequest)
		return
	}

	if req.PublicURL == "" {
		WriteJSONError(c, fmt.Errorf("publicUrl is required"), http.StatusBadRequest)
		return
	}
	if req.Options == nil {
		WriteJSONError(c, fmt.Errorf("options is required"), http.StatusBadRequest)
		return
	}

	opts := *req.Options
	if opts.Color == "" {
		opts.Color = transform.ColorNone
	}
	if opts.Shape == "" {
		opts.Shape = transform.ShapeNone
	}

	res, err := h.Pipeline.Process(c.Request.Context(), req.PublicURL, opts, req.WatermarkText)
	if err != nil {
		WriteJSONError(c, err, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, model.ProcessImageResponse{ProcessedURL: res.ProcessedURL})
}
