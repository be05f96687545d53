package app

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/segmentio/kafka-go"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"ImageStyler/internal/model"
	"ImageStyler/internal/repository"
	"ImageStyler/internal/service"
)

type App struct {
	Host         string
	Handler      *ginext.Engine
	DB           repository.Storager
	Consumer     repository.EventConsumer
	Producer     repository.EventProducer
	ImageStorage repository.ImageStore
	Refresh      *service.RefreshSignal
}

func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup

	serv := http.Server{
		Addr:    a.Host,
		Handler: a.Handler,
	}

	eventCh := make(chan kafka.Message, 100)

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := serv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Logger.Error().Msgf("Server listen error: %s", err.Error())
			cancel()
			return
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		a.Consumer.ConsumeEvents(ctx, eventCh)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		var event model.ProcessedEvent
		for msg := range eventCh {
			err := json.Unmarshal(msg.Value, &event)
			if err != nil {
				zlog.Logger.Error().Msgf("Unmarshal event error: %s", err.Error())
				continue
			}

			version := a.Refresh.Bump()
			zlog.Logger.Info().Msgf("Record %d processed, gallery version %d", event.RecordID, version)

			err = a.Consumer.CommitOffset(ctx, msg)
			if err != nil {
				zlog.Logger.Error().Msgf("Commit message error: %s", err.Error())
				continue
			}
		}
	}()

	<-ctx.Done()

	zlog.Logger.Info().Msg("App shutdown...")

	err := serv.Shutdown(ctx)
	if err != nil {
		zlog.Logger.Error().Msgf("Server shutdown error: %s", err.Error())
	}

	wg.Wait()

	err = a.DB.Close()
	if err != nil {
		zlog.Logger.Error().Msgf("DB close error: %v", err)
	}

	err = a.Consumer.Close()
	if err != nil {
		zlog.Logger.Error().Msgf("Consumer close error: %v", err)
	}

	err = a.Producer.Close()
	if err != nil {
		zlog.Logger.Error().Msgf("Producer close error: %v", err)
	}

	return nil
}
