package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func iptr(v int) *int { return &v }

func TestProgressStatusLabel(t *testing.T) {
	cases := []struct {
		score *int
		want  string
	}{
		{nil, "Belum Dinilai"},
		{iptr(100), "Sangat Baik"},
		{iptr(85), "Sangat Baik"},
		{iptr(84), "Baik"},
		{iptr(75), "Baik"},
		{iptr(74), "Cukup"},
		{iptr(65), "Cukup"},
		{iptr(64), "Perlu Perbaikan"},
		{iptr(0), "Perlu Perbaikan"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ProgressStatusLabel(tc.score))
	}
}

func TestFinalGradeLetter(t *testing.T) {
	cases := []struct {
		score *int
		want  string
	}{
		{nil, "Belum Dinilai"},
		{iptr(90), "A"},
		{iptr(85), "A"},
		{iptr(84), "B"},
		{iptr(75), "B"},
		{iptr(74), "C"},
		{iptr(65), "C"},
		{iptr(64), "D"},
		{iptr(10), "D"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FinalGradeLetter(tc.score))
	}
}

func TestSupervisionDerivedLabels(t *testing.T) {
	s := &InternshipSupervisionModel{
		SupervisionProgressScore: iptr(80),
		SupervisionFinalScore:    iptr(88),
	}
	assert.Equal(t, "Baik", s.GetProgressStatus())
	assert.Equal(t, "A", s.GetFinalGrade())

	empty := &InternshipSupervisionModel{}
	assert.Equal(t, "Belum Dinilai", empty.GetProgressStatus())
	assert.Equal(t, "Belum Dinilai", empty.GetFinalGrade())
}

func TestAttendanceStatusValid(t *testing.T) {
	for _, s := range []AttendanceStatus{AttendanceHadir, AttendanceIzin, AttendanceSakit, AttendanceTidakHadir} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, AttendanceStatus("ALPHA").Valid())
}

func TestSupervisionTypeValid(t *testing.T) {
	assert.True(t, SupervisionOnline.Valid())
	assert.True(t, SupervisionOffline.Valid())
	assert.True(t, SupervisionHybrid.Valid())
	assert.False(t, SupervisionType("REMOTE").Valid())
}
