package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSubjectTypeValid(t *testing.T) {
	assert.True(t, SubjectUser.Valid())
	assert.True(t, SubjectInternship.Valid())
	assert.False(t, SubjectType("COMPANY").Valid())
	assert.False(t, SubjectType("").Valid())
}

func TestSubjectConstructors(t *testing.T) {
	id := uuid.New()

	u := UserSubject(id)
	assert.Equal(t, SubjectUser, u.Type)
	assert.Equal(t, id, u.ID)

	i := InternshipSubject(id)
	assert.Equal(t, SubjectInternship, i.Type)
	assert.Equal(t, id, i.ID)
}
