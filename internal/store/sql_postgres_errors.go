// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells withRetry what to do with a failed snapshot
// statement.
type ErrorClassification int

const (
	// NonRetryable failures are returned to the caller as is.
	NonRetryable ErrorClassification = iota
	// Retryable failures are attempted again with backoff.
	Retryable
)

// ErrorClassificator decides whether a failed statement is worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// PostgresErrorClassifier classifies pgx errors by SQLSTATE.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return NonRetryable
	}
	return ClassifyPgError(pgErr)
}

// ClassifyPgError reports whether a snapshot write or read may succeed on a
// second attempt. Two devices persisting the same store race on the
// snapshot_records upsert, so rollbacks of class 40 and lock timeouts are
// retried along with lost connections and a restarting server. Constraint and
// schema errors stay NonRetryable: the statement itself is wrong.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	code := pgErr.Code
	switch {
	case pgerrcode.IsConnectionException(code),
		pgerrcode.IsTransactionRollback(code):
		return Retryable
	}

	switch code {
	case pgerrcode.LockNotAvailable,
		pgerrcode.TooManyConnections,
		pgerrcode.AdminShutdown,
		pgerrcode.CannotConnectNow:
		return Retryable
	}
	return NonRetryable
}
