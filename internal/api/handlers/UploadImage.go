package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"ImageStyler/internal/transform"
)

// UploadImage runs the whole pipeline server-side: it stores the original in
// the blob store, derives the rendering URL from the selected options and
// records the pair in history.
func (h *Handler) UploadImage(c *ginext.Context) {
	fileHeader, err := c.FormFile("img")
	if err != nil {
		WriteJSONError(c, err, http.StatusBadRequest)
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !slices.Contains([]string{".png", ".jpeg", ".jpg"}, ext) {
		WriteJSONError(c, fmt.Errorf("unsupported format, only PNG or JPG allowed"), http.StatusBadRequest)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		WriteJSONError(c, err, http.StatusBadRequest)
		return
	}
	defer file.Close()

	objectName := fmt.Sprintf("uploads/%d-%s%s", time.Now().UnixMilli(), uuid.New().String(), ext)

	err = h.ImageStorage.Upload(c.Request.Context(), file, objectName, fileHeader.Size)
	if err != nil {
		WriteJSONError(c, err, http.StatusInternalServerError)
		return
	}

	originalURL := h.ImageStorage.PublicURL(objectName)

	opts := optionsFromForm(c)
	watermarkText := c.DefaultPostForm("watermark_text", transform.DefaultWatermarkText)

	res, err := h.Pipeline.Process(c.Request.Context(), originalURL, opts, watermarkText)
	if err != nil {
		WriteJSONError(c, err, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, ginext.H{
		"originalUrl":  originalURL,
		"processedUrl": res.ProcessedURL,
		"id":           res.RecordID,
	})
}

func optionsFromForm(c *ginext.Context) transform.Options {
	opts := transform.NewOptions()

	switch color := transform.ColorFilter(c.DefaultPostForm("color", string(transform.ColorNone))); color {
	case transform.ColorGrayscale, transform.ColorSepia, transform.ColorCartoonify:
		opts.SetColor(color)
	}

	if c.PostForm("watermark") == "true" {
		opts.ToggleWatermark()
	}

	if transform.Shape(c.PostForm("shape")) == transform.ShapeCircle {
		opts.ToggleShape()
	}

	return opts
}
