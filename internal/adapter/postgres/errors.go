package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/KunitakeHyuga/Hackathon/internal/domain"
)

// SQLSTATE codes the repositories care about.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeStringTooLong       = "22001"
	codeInvalidText         = "22P02"
	codeSerialization       = "40001"
	codeDeadlock            = "40P01"
	codeAdminShutdown       = "57P01"
	classConnection         = "08"
)

// MapError wraps err with the affected row and translates driver failures
// into domain errors. id 0 means the row has no id yet. Context errors are
// wrapped unchanged so callers can still match them.
func MapError(err error, entity string, id int64) error {
	if err == nil {
		return nil
	}

	subject := entity
	if id != 0 {
		subject = fmt.Sprintf("%s %d", entity, id)
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", subject, err)
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", subject, domain.ErrNotFound)
	}
	if kind := classify(err); kind != nil {
		return fmt.Errorf("%s: %w: %w", subject, kind, err)
	}
	return fmt.Errorf("%s: %w", subject, err)
}

// classify returns the domain error for err, or nil when it has none.
func classify(err error) error {
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) || pgconn.Timeout(err) {
		return domain.ErrStoreUnavailable
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}
	switch pgErr.Code {
	case codeUniqueViolation, codeSerialization, codeDeadlock:
		return domain.ErrConflict
	case codeForeignKeyViolation:
		return domain.ErrInvalidReference
	case codeCheckViolation, codeStringTooLong, codeInvalidText:
		return domain.ErrValidation
	case codeAdminShutdown:
		return domain.ErrStoreUnavailable
	}
	if len(pgErr.Code) >= 2 && pgErr.Code[:2] == classConnection {
		return domain.ErrStoreUnavailable
	}
	return nil
}
