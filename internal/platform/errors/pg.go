package errors

import (
	"context"
	stderrs "errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes the services care about
const (
	pgUniqueViolation       = "23505"
	pgForeignKeyViolation   = "23503"
	pgNotNullViolation      = "23502"
	pgCheckViolation        = "23514"
	pgInvalidText           = "22P02"
	pgSerializationFailure  = "40001"
	pgDeadlockDetected      = "40P01"
	pgLockNotAvailable      = "55P03"
	pgReadOnlyTransaction   = "25006"
	pgCannotConnectNow      = "57P03"
	pgQueryCanceled         = "57014"
	pgAdminShutdown         = "57P01"
	pgTooManyConnections    = "53300"
	pgConnectionFailure     = "08006"
	pgConnectionDoesntExist = "08003"
)

var pgCodes = map[string]ErrorCode{
	pgUniqueViolation:       ErrorCodeDuplicateKey,
	pgForeignKeyViolation:   ErrorCodeInvalidArgument,
	pgNotNullViolation:      ErrorCodeValidation,
	pgCheckViolation:        ErrorCodeValidation,
	pgInvalidText:           ErrorCodeInvalidArgument,
	pgReadOnlyTransaction:   ErrorCodeUnavailable,
	pgCannotConnectNow:      ErrorCodeUnavailable,
	pgAdminShutdown:         ErrorCodeUnavailable,
	pgTooManyConnections:    ErrorCodeUnavailable,
	pgConnectionFailure:     ErrorCodeUnavailable,
	pgConnectionDoesntExist: ErrorCodeUnavailable,
	pgQueryCanceled:         ErrorCodeTimeout,
}

// ExtractPgError returns the *pgconn.PgError at the root of err
func ExtractPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if stderrs.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// IsSQLState reports whether err is a Postgres error with SQLSTATE code
func IsSQLState(err error, code string) bool {
	pgErr, ok := ExtractPgError(err)
	return ok && pgErr.Code == code
}

// IsDuplicateKey reports a unique violation
func IsDuplicateKey(err error) bool { return IsSQLState(err, pgUniqueViolation) }

// ConstraintOf returns the violated constraint name, if any
func ConstraintOf(err error) string {
	if pgErr, ok := ExtractPgError(err); ok {
		return pgErr.ConstraintName
	}
	return ""
}

// DBErrorCode maps a Postgres error to an ErrorCode; ok is false for non Postgres errors
func DBErrorCode(err error) (ErrorCode, bool) {
	pgErr, ok := ExtractPgError(err)
	if !ok {
		return ErrorCodeUnknown, false
	}
	if c, hit := pgCodes[pgErr.Code]; hit {
		return c, true
	}
	return ErrorCodeDB, true
}

// FromPostgres wraps err with a code derived from its SQLSTATE
func FromPostgres(err error, msg string) error {
	if err == nil {
		return nil
	}
	code, ok := DBErrorCode(err)
	if !ok {
		code = ErrorCodeDB
	}
	return Wrap(err, code, msg)
}

// IsRetryable reports contention errors worth another attempt
// local cancellation is never retryable
func IsRetryable(err error) bool {
	if err == nil || stderrs.Is(err, context.Canceled) || stderrs.Is(err, context.DeadlineExceeded) {
		return false
	}
	if pgErr, ok := ExtractPgError(err); ok {
		switch pgErr.Code {
		case pgSerializationFailure, pgDeadlockDetected, pgLockNotAvailable:
			return true
		}
		return false
	}
	s := strings.ToLower(Root(err).Error())
	for _, frag := range []string{
		"commit unexpectedly resulted in rollback",
		"deadlock detected",
		"could not serialize access",
		"canceling statement due to lock timeout",
	} {
		if strings.Contains(s, frag) {
			return true
		}
	}
	return false
}
