package domain

import (
	perr "seatime/internal/platform/errors"
)

// Sentinels returned by the seatime service; match with errors.Is
var (
	ErrVesselNotFound     = perr.New(perr.ErrorCodeNotFound, "vessel not found")
	ErrVesselNotActive    = perr.New(perr.ErrorCodeConflict, "vessel is not actively tracked")
	ErrDuplicateVessel    = perr.New(perr.ErrorCodeDuplicateKey, "vessel with this mmsi already registered")
	ErrEntryNotFound      = perr.New(perr.ErrorCodeNotFound, "sea time entry not found")
	ErrAlreadyResolved    = perr.New(perr.ErrorCodeConflict, "sea time entry already resolved")
	ErrNotConfirmable     = perr.New(perr.ErrorCodeValidation, "sea time entry is not confirmable")
	ErrEntryOpen          = perr.New(perr.ErrorCodeValidation, "sea time entry is still open")
	ErrInvalidServiceType = perr.New(perr.ErrorCodeValidation, "unknown service type")
)
