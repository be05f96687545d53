package api

import (
	"github.com/wb-go/wbf/ginext"

	"ImageStyler/internal/api/handlers"
)

func SetupRoutes(h *handlers.Handler, g *ginext.Engine) {
	g.Use(ginext.Logger(), ginext.Recovery())
	g.LoadHTMLGlob("web/*.html")

	g.POST("/upload", h.UploadImage)
	g.POST("/process-image", h.ProcessImage)
	g.GET("/image/:id", h.GetImage)
	g.GET("/images", h.GetImages)
	g.DELETE("/image/:id", h.DeleteImage)
	g.GET("/gallery/version", h.GalleryVersion)
	g.GET("/", h.Home)
}
