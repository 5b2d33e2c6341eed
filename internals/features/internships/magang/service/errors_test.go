package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationErrorFields(t *testing.T) {
	err := NewValidationError("internship_end_date", "Tanggal selesai harus setelah tanggal mulai.")

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, []string{"Tanggal selesai harus setelah tanggal mulai."}, ve.Fields["internship_end_date"])
}

func TestInvalidStateErrorMessage(t *testing.T) {
	err := NewInvalidStateError("Transisi %s → %s tidak diizinkan", "PENDING", "COMPLETED")
	assert.Equal(t, "Transisi PENDING → COMPLETED tidak diizinkan", err.Error())
}

func TestStorageErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("koneksi OSS putus")
	err := &StorageError{Op: "upload", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "upload")
}

func TestIsTaxonomyError(t *testing.T) {
	assert.True(t, IsTaxonomyError(NewValidationError("x", "y")))
	assert.True(t, IsTaxonomyError(NewPermissionError("tidak boleh")))
	assert.True(t, IsTaxonomyError(NewInvalidStateError("nope")))
	assert.True(t, IsTaxonomyError(&StorageError{Op: "delete", Err: errors.New("x")}))
	assert.True(t, IsTaxonomyError(NewNotFoundError("hilang")))

	// error infra mentah bukan bagian taksonomi
	assert.False(t, IsTaxonomyError(errors.New("pq: connection refused")))
	assert.False(t, IsTaxonomyError(nil))

	// tetap terdeteksi meski dibungkus
	wrapped := fmt.Errorf("approve: %w", NewPermissionError("bukan admin"))
	assert.True(t, IsTaxonomyError(wrapped))
}
