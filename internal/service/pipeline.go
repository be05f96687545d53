package service

import (
	"context"

	"github.com/wb-go/wbf/zlog"

	"ImageStyler/internal/model"
	"ImageStyler/internal/repository"
	"ImageStyler/internal/transform"
)

// Pipeline derives the rendering URL for an uploaded original and records the
// original/processed pair in the history table.
type Pipeline struct {
	DB             repository.Storager
	Producer       repository.EventProducer
	RenderEndpoint string
}

func NewPipeline(db repository.Storager, producer repository.EventProducer, renderEndpoint string) *Pipeline {
	return &Pipeline{DB: db, Producer: producer, RenderEndpoint: renderEndpoint}
}

// Result reports a finished pipeline run. PersistWarning is set when the
// processed URL was derived but recording it in history failed; the run still
// counts as a success.
type Result struct {
	RecordID       int
	ProcessedURL   string
	PersistWarning error
}

// Process compiles the directive path, composes the fetch URL, persists the
// record and publishes a refresh event. Persisting and publishing are
// best-effort: the processed URL is already valid without them.
func (p *Pipeline) Process(ctx context.Context, originalURL string, opts transform.Options, watermarkText string) (Result, error) {
	directivePath := transform.CompilePath(opts, watermarkText)

	processedURL, err := transform.ComposeFetchURL(p.RenderEndpoint, directivePath, originalURL)
	if err != nil {
		return Result{}, err
	}

	res := Result{ProcessedURL: processedURL}

	id, err := p.DB.CreateRecord(ctx, model.RecordInCreate{
		OriginalURL:  originalURL,
		ProcessedURL: processedURL,
	})
	if err != nil {
		zlog.Logger.Error().Msgf("Create record error: %s", err.Error())
		res.PersistWarning = err
		return res, nil
	}
	res.RecordID = id

	if p.Producer != nil {
		if err := p.Producer.Publish(ctx, model.ProcessedEvent{RecordID: id, ProcessedURL: processedURL}); err != nil {
			zlog.Logger.Error().Msgf("Publish processed event error: %s", err.Error())
		}
	}

	return res, nil
}
