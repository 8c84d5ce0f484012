// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/models"
)

const (
	tableRecords = "snapshot_records"
	tableStamps  = "snapshot_stamps"

	// upsertChunk keeps a single INSERT well below SQLite's bound parameter
	// limit (5 columns per row).
	upsertChunk = 100

	upsertRecordSuffix = "ON CONFLICT (store_id, collection, record_id) DO UPDATE SET payload = excluded.payload"
	upsertStampSuffix  = "ON CONFLICT (store_id, collection) DO UPDATE SET stamp = excluded.stamp, delete_activity = excluded.delete_activity"
)

// snapshotRepository is the SQL implementation of [SnapshotRepository]. The
// same statements run on SQLite and PostgreSQL; only the placeholder format
// differs.
type snapshotRepository struct {
	*DB
	logger *logger.Logger
}

// NewSnapshotRepository constructs a [SnapshotRepository] backed by db.
func NewSnapshotRepository(db *DB, log *logger.Logger) SnapshotRepository {
	return &snapshotRepository{DB: db, logger: log}
}

// UpsertRecords implements [SnapshotRepository]. Records that already exist
// keep their position; new records are numbered after the current maximum.
// Within one call the last occurrence of an id wins.
func (r *snapshotRepository) UpsertRecords(ctx context.Context, storeID string, collection models.Collection, records []SnapshotRecord) error {
	if len(records) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)
	records = dedupeRecords(records)

	err := r.withRetry(ctx, "UpsertRecords", func(ctx context.Context) error {
		return r.inTx(ctx, func(tx *sql.Tx) error {
			next, err := r.nextPosition(ctx, tx, storeID, collection)
			if err != nil {
				return err
			}
			return r.insertRecords(ctx, tx, storeID, collection, records, next)
		})
	})
	if err != nil {
		log.Err(err).
			Str("func", "snapshotRepository.UpsertRecords").
			Str("store_id", storeID).
			Str("collection", collection.String()).
			Int("records", len(records)).
			Msg("failed to upsert snapshot records")
		return err
	}

	return nil
}

// ReplaceRecords implements [SnapshotRepository]. The collection's rows are
// deleted and records inserted from position zero in one transaction.
func (r *snapshotRepository) ReplaceRecords(ctx context.Context, storeID string, collection models.Collection, records []SnapshotRecord) error {
	records = dedupeRecords(records)

	err := r.withRetry(ctx, "ReplaceRecords", func(ctx context.Context) error {
		return r.inTx(ctx, func(tx *sql.Tx) error {
			query, args, err := r.builder().
				Delete(tableRecords).
				Where(sq.Eq{"store_id": storeID}).
				Where(sq.Eq{"collection": string(collection)}).
				ToSql()
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}
			if _, err = tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
			return r.insertRecords(ctx, tx, storeID, collection, records, 0)
		})
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "snapshotRepository.ReplaceRecords").
			Str("store_id", storeID).
			Str("collection", collection.String()).
			Int("records", len(records)).
			Msg("failed to replace snapshot records")
		return err
	}

	return nil
}

// insertRecords writes records in chunks, numbering them from next.
func (r *snapshotRepository) insertRecords(ctx context.Context, tx *sql.Tx, storeID string, collection models.Collection, records []SnapshotRecord, next int64) error {
	for start := 0; start < len(records); start += upsertChunk {
		end := min(start+upsertChunk, len(records))

		ins := r.builder().
			Insert(tableRecords).
			Columns("store_id", "collection", "record_id", "position", "payload")
		for i, rec := range records[start:end] {
			ins = ins.Values(storeID, string(collection), rec.ID, next+int64(start+i), string(rec.Payload))
		}

		query, args, err := ins.Suffix(upsertRecordSuffix).ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}
	return nil
}

func (r *snapshotRepository) nextPosition(ctx context.Context, tx *sql.Tx, storeID string, collection models.Collection) (int64, error) {
	query, args, err := r.builder().
		Select("COALESCE(MAX(position), -1)").
		From(tableRecords).
		Where(sq.Eq{"store_id": storeID}).
		Where(sq.Eq{"collection": string(collection)}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var maxPos int64
	if err = tx.QueryRowContext(ctx, query, args...).Scan(&maxPos); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return maxPos + 1, nil
}

// DeleteRecord implements [SnapshotRepository]. Deleting a missing record is
// not an error.
func (r *snapshotRepository) DeleteRecord(ctx context.Context, storeID string, collection models.Collection, id string) error {
	query, args, err := r.builder().
		Delete(tableRecords).
		Where(sq.Eq{"store_id": storeID}).
		Where(sq.Eq{"collection": string(collection)}).
		Where(sq.Eq{"record_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.withRetry(ctx, "DeleteRecord", func(ctx context.Context) error {
		if _, execErr := r.DB.ExecContext(ctx, query, args...); execErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "snapshotRepository.DeleteRecord").
			Str("store_id", storeID).
			Str("record_id", id).
			Msg("failed to delete snapshot record")
		return err
	}
	return nil
}

// SaveStamps implements [SnapshotRepository].
func (r *snapshotRepository) SaveStamps(ctx context.Context, storeID string, collection models.Collection, stamp, deleteActivity models.Stamp) error {
	query, args, err := r.builder().
		Insert(tableStamps).
		Columns("store_id", "collection", "stamp", "delete_activity").
		Values(storeID, string(collection), stamp.String(), deleteActivity.String()).
		Suffix(upsertStampSuffix).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.withRetry(ctx, "SaveStamps", func(ctx context.Context) error {
		if _, execErr := r.DB.ExecContext(ctx, query, args...); execErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "snapshotRepository.SaveStamps").
			Str("store_id", storeID).
			Str("collection", collection.String()).
			Msg("failed to save snapshot stamps")
		return err
	}
	return nil
}

// LoadRecords implements [SnapshotRepository].
func (r *snapshotRepository) LoadRecords(ctx context.Context, storeID string, collection models.Collection) ([]SnapshotRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder().
		Select("record_id", "payload").
		From(tableRecords).
		Where(sq.Eq{"store_id": storeID}).
		Where(sq.Eq{"collection": string(collection)}).
		OrderBy("position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "snapshotRepository.LoadRecords").
			Str("store_id", storeID).
			Msg("failed to execute query for snapshot records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]SnapshotRecord, 0, 64)
	for rows.Next() {
		var rec SnapshotRecord
		if err = rows.Scan(&rec.ID, &rec.Payload); err != nil {
			log.Err(err).
				Str("func", "snapshotRepository.LoadRecords").
				Str("store_id", storeID).
				Msg("failed to scan snapshot row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

// LoadStamps implements [SnapshotRepository].
func (r *snapshotRepository) LoadStamps(ctx context.Context, storeID string, collection models.Collection) (models.Stamp, models.Stamp, error) {
	query, args, err := r.builder().
		Select("stamp", "delete_activity").
		From(tableStamps).
		Where(sq.Eq{"store_id": storeID}).
		Where(sq.Eq{"collection": string(collection)}).
		ToSql()
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var stamp, deleteActivity string
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&stamp, &deleteActivity)
	if errors.Is(err, sql.ErrNoRows) {
		return "", "", ErrSnapshotNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "snapshotRepository.LoadStamps").
			Str("store_id", storeID).
			Msg("failed to load snapshot stamps")
		return "", "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return models.Stamp(stamp), models.Stamp(deleteActivity), nil
}

// ClearStore implements [SnapshotRepository]. Both tables are cleared in a
// single transaction.
func (r *snapshotRepository) ClearStore(ctx context.Context, storeID string) error {
	err := r.withRetry(ctx, "ClearStore", func(ctx context.Context) error {
		return r.inTx(ctx, func(tx *sql.Tx) error {
			for _, table := range []string{tableRecords, tableStamps} {
				query, args, err := r.builder().Delete(table).Where(sq.Eq{"store_id": storeID}).ToSql()
				if err != nil {
					return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
				}
				if _, err = tx.ExecContext(ctx, query, args...); err != nil {
					return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
				}
			}
			return nil
		})
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "snapshotRepository.ClearStore").
			Str("store_id", storeID).
			Msg("failed to clear store snapshot")
		return err
	}
	return nil
}

// inTx runs fn inside a transaction, committing on success and rolling back
// otherwise.
func (r *snapshotRepository) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	if err = fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}

// dedupeRecords keeps the first position and the last payload of every id.
func dedupeRecords(records []SnapshotRecord) []SnapshotRecord {
	index := make(map[string]int, len(records))
	out := make([]SnapshotRecord, 0, len(records))
	for _, rec := range records {
		if i, ok := index[rec.ID]; ok {
			out[i] = rec
			continue
		}
		index[rec.ID] = len(out)
		out = append(out, rec)
	}
	return out
}
