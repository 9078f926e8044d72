package hostapi

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestIsHostSuccess(t *testing.T) {
	tests := []struct {
		name   string
		code   string
		status string
		want   bool
	}{
		{"code 00 alone", "00", "", true},
		{"code 00 with failed status", "00", "failed", true},
		{"status success alone", "", "success", true},
		{"status SUCCESS uppercase", "99", "SUCCESS", true},
		{"status Success mixed case", "99", "Success", true},
		{"both success", "00", "success", true},
		{"both failure", "99", "failed", false},
		{"both empty", "", "", false},
		{"code 0 is not 00", "0", "", false},
		{"code 000 is not 00", "000", "", false},
		{"status successful is not success", "", "successful", false},
		{"whitespace status", "", " success", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsHostSuccess(tt.code, tt.status))
		})
	}
}

func TestHostID(t *testing.T) {
	id := uuid.MustParse("a1b2c3d4-e5f6-7890-abcd-ef0123456789")

	got := HostID(id)
	assert.Equal(t, "A1B2C3D4-E5F6-7890-ABCD-EF0123456789", got)
	assert.NotContains(t, got, "{")
	assert.NotContains(t, got, "}")
}

func TestHostIDPtr(t *testing.T) {
	assert.Nil(t, hostIDPtr(nil))

	id := uuid.MustParse("11111111-1111-1111-1111-11111111111a")
	got := hostIDPtr(&id)
	assert.NotNil(t, got)
	assert.Equal(t, "11111111-1111-1111-1111-11111111111A", *got)
}

func TestEnvelopeIsSuccess(t *testing.T) {
	m := &MutationResponse{Code: "00", Status: "failed"}
	assert.True(t, m.IsSuccess())

	s := &SimpleResponse{Code: "99", Status: "success"}
	assert.True(t, s.IsSuccess())

	d := &DetailResponse{Code: "99", Status: "error"}
	assert.False(t, d.IsSuccess())
}
