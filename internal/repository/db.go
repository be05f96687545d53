package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/zlog"

	"ImageStyler/internal/model"
)

type Storager interface {
	CreateRecord(ctx context.Context, rec model.RecordInCreate) (int, error)
	GetRecord(ctx context.Context, id int) (model.ImageRecord, error)
	GetRecords(ctx context.Context, limit int) ([]model.ImageRecord, error)
	GetCountRecords(ctx context.Context) (int, error)
	DeleteRecord(ctx context.Context, id int) error

	Close() error
}

type Storage struct {
	DB *dbpg.DB
}

func NewStorage(dsn string) (*Storage, error) {
	opts := dbpg.Options{
		MaxOpenConns:    10,
		MaxIdleConns:    10,
		ConnMaxLifetime: 1 * time.Minute,
	}
	db, err := dbpg.New(dsn, nil, &opts)
	if err != nil {
		return nil, err
	}
	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Master.Close()
}

func (s *Storage) CreateRecord(ctx context.Context, rec model.RecordInCreate) (int, error) {
	query := `INSERT INTO processed_images (original_url, processed_url, created_at)
				VALUES ($1, $2, $3)
				RETURNING id`
	var id int
	res := s.DB.QueryRowContext(ctx, query, rec.OriginalURL, rec.ProcessedURL, time.Now())
	if res.Err() != nil {
		return 0, res.Err()
	}
	if err := res.Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (s *Storage) GetRecord(ctx context.Context, id int) (model.ImageRecord, error) {
	query := `SELECT id, created_at, original_url, processed_url
				FROM processed_images
				WHERE id=$1`
	var rec model.ImageRecord
	res := s.DB.QueryRowContext(ctx, query, id)
	if err := res.Scan(&rec.ID, &rec.CreatedAt, &rec.OriginalURL, &rec.ProcessedURL); err != nil {
		return model.ImageRecord{}, err
	}
	return rec, nil
}

func (s *Storage) GetRecords(ctx context.Context, limit int) ([]model.ImageRecord, error) {
	query := `SELECT id, created_at, original_url, processed_url
				FROM processed_images
				ORDER BY created_at DESC, id DESC
				LIMIT $1`
	res, err := s.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}

	defer func() {
		if err := res.Close(); err != nil {
			zlog.Logger.Error().Msg(err.Error())
		}
	}()

	records := make([]model.ImageRecord, 0)
	for res.Next() {
		var temp model.ImageRecord
		err := res.Scan(&temp.ID, &temp.CreatedAt, &temp.OriginalURL, &temp.ProcessedURL)
		if err != nil {
			return nil, err
		}
		records = append(records, temp)
	}
	return records, res.Err()
}

func (s *Storage) GetCountRecords(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM processed_images`
	res := s.DB.QueryRowContext(ctx, query)
	if err := res.Err(); err != nil {
		return 0, err
	}

	var count int
	if err := res.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (s *Storage) DeleteRecord(ctx context.Context, id int) error {
	query := `DELETE
				FROM processed_images
				WHERE id=$1`
	res, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}
