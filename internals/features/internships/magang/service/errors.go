// internals/features/internships/magang/service/errors.go
package service

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	helper "magangku_backend/internals/helpers"
)

/*
Taksonomi error lifecycle. Semua operasi service mengembalikan salah satu dari:

  - ValidationError  → 422, pesan per-field
  - PermissionError  → 403
  - InvalidStateError→ 400, pesan user-facing (transisi tidak sah dari status sekarang)
  - StorageError     → 502, gagal tulis/hapus attachment
  - NotFoundError    → 404

Controller memetakan lewat errors.As; tidak ada retry otomatis.
*/

type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string { return "validasi gagal" }

func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string][]string{field: {msg}}}
}

func NewValidationFromValidator(err error) *ValidationError {
	if ve, ok := err.(validator.ValidationErrors); ok {
		return &ValidationError{Fields: helper.TranslateValidationErrors(ve)}
	}
	return &ValidationError{Fields: map[string][]string{"_": {"Input tidak valid"}}}
}

type PermissionError struct {
	Msg string
}

func (e *PermissionError) Error() string { return e.Msg }

func NewPermissionError(msg string) *PermissionError { return &PermissionError{Msg: msg} }

type InvalidStateError struct {
	Msg string
}

func (e *InvalidStateError) Error() string { return e.Msg }

func NewInvalidStateError(format string, args ...any) *InvalidStateError {
	return &InvalidStateError{Msg: fmt.Sprintf(format, args...)}
}

type StorageError struct {
	Op  string // upload | delete
	Err error
}

func (e *StorageError) Error() string { return fmt.Sprintf("storage %s gagal: %v", e.Op, e.Err) }
func (e *StorageError) Unwrap() error { return e.Err }

type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string { return e.Msg }

func NewNotFoundError(msg string) *NotFoundError { return &NotFoundError{Msg: msg} }

// IsTaxonomyError true kalau err termasuk taksonomi di atas (bukan error infra mentah).
func IsTaxonomyError(err error) bool {
	var ve *ValidationError
	var pe *PermissionError
	var se *InvalidStateError
	var st *StorageError
	var nf *NotFoundError
	return errors.As(err, &ve) || errors.As(err, &pe) || errors.As(err, &se) ||
		errors.As(err, &st) || errors.As(err, &nf)
}
