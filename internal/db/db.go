package db

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")

type PostgresDB struct {
	DB *gorm.DB
}

func NewPostgresDB(dsn string) (*PostgresDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:          logger.Default.LogMode(logger.Warn),
		CreateBatchSize: 200,
	})
	if err != nil {
		return &PostgresDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &PostgresDB{
		DB: db,
	}, nil
}

func (f *PostgresDB) MigrateTable(tbl ...any) error {
	err := f.DB.AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

// Upsert inserts the records, updating all mutable columns on primary-key
// conflict. Re-running with identical input changes no column values.
func (f *PostgresDB) Upsert(ctx context.Context, records any) error {
	if err := requireSlicePtr(records); err != nil {
		return err
	}
	if reflect.ValueOf(records).Elem().Len() == 0 {
		return nil
	}

	err := f.DB.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(records).Error
	if err != nil {
		return fmt.Errorf("upsert to table: %w", err)
	}
	return nil
}

// Insert appends records without conflict handling, for append-only
// diagnostic tables.
func (f *PostgresDB) Insert(ctx context.Context, records any) error {
	if err := requireSlicePtr(records); err != nil {
		return err
	}
	if reflect.ValueOf(records).Elem().Len() == 0 {
		return nil
	}

	if err := f.DB.WithContext(ctx).Create(records).Error; err != nil {
		return fmt.Errorf("insert to table: %w", err)
	}
	return nil
}

// Seed inserts the records only when the table is still empty.
func (f *PostgresDB) Seed(ctx context.Context, records any) error {
	if err := requireSlicePtr(records); err != nil {
		return err
	}

	slice := reflect.ValueOf(records).Elem()
	if slice.Len() == 0 {
		return nil
	}

	var count int64
	elemType := slice.Index(0).Interface()
	if err := f.DB.WithContext(ctx).Model(elemType).Count(&count).Error; err != nil {
		return fmt.Errorf("get model count: %w", err)
	}

	if count > 0 {
		return nil
	}

	if err := f.DB.WithContext(ctx).Create(records).Error; err != nil {
		return fmt.Errorf("insert to table: %w", err)
	}

	return nil
}

func (f *PostgresDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.DB.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

func (f *PostgresDB) GetAllBy(ctx context.Context, column string, value any, entity any) error {
	tx := f.DB.WithContext(ctx).Where(fmt.Sprintf("%s IN ?", column), value).Find(entity)
	if tx.Error != nil {
		return fmt.Errorf("getting records by %q: %w", column, tx.Error)
	}
	return nil
}

func (f *PostgresDB) ListAll(ctx context.Context, entity any) error {
	if err := f.DB.WithContext(ctx).Find(entity).Error; err != nil {
		return fmt.Errorf("listing records: %w", err)
	}
	return nil
}

func requireSlicePtr(records any) error {
	v := reflect.ValueOf(records)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("records type must be pointer to a slice: %T", records)
	}
	return nil
}
