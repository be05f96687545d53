package handlers

import (
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"ImageStyler/internal/repository"
	"ImageStyler/internal/service"
)

type Handler struct {
	DB           repository.Storager
	ImageStorage repository.ImageStore
	Pipeline     *service.Pipeline
	Refresh      *service.RefreshSignal
}

func NewHandler(db repository.Storager, i repository.ImageStore, p *service.Pipeline, r *service.RefreshSignal) *Handler {
	return &Handler{DB: db, ImageStorage: i, Pipeline: p, Refresh: r}
}

func WriteJSONError(c *ginext.Context, err error, status int) {
	zlog.Logger.Error().Msg(err.Error())
	c.JSON(status, ginext.H{
		"error": err.Error(),
	})
}
