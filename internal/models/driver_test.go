package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDriverInputNormalize(t *testing.T) {
	in := DriverInput{Name: "Jane", LicenseNumber: "DL-1"}
	assert.NoError(t, in.Normalize())
	assert.Equal(t, StatusAvailable, in.Status)
	assert.Equal(t, DefaultPIN, in.PIN)

	in = DriverInput{Status: "asleep"}
	assert.ErrorIs(t, in.Normalize(), ErrInvalidStatus)
}

func TestValidatePIN(t *testing.T) {
	for _, pin := range []string{"1234", "00000", "999999"} {
		assert.NoError(t, ValidatePIN(pin), pin)
	}
	for _, pin := range []string{"", "123", "1234567", "12a4", " 1234", "١٢٣٤"} {
		assert.ErrorIs(t, ValidatePIN(pin), ErrInvalidPIN, pin)
	}
}

func TestDriverPatchApply(t *testing.T) {
	d := Driver{Name: "Jane", Phone: "555-0111", LicenseNumber: "DL-1", Status: StatusBusy, PIN: "1234"}
	pin := "9999"
	patch := DriverPatch{PIN: &pin}

	assert.False(t, patch.Empty())
	assert.NoError(t, patch.Validate())
	patch.Apply(&d)

	assert.Equal(t, Driver{Name: "Jane", Phone: "555-0111", LicenseNumber: "DL-1", Status: StatusBusy, PIN: "9999"}, d)
	assert.True(t, DriverPatch{}.Empty())
}

func TestPatchColumnsOnlySetFields(t *testing.T) {
	pin := "9999"
	assert.Equal(t, map[string]interface{}{"pin": "9999"}, DriverPatch{PIN: &pin}.Columns())

	status := StatusOffline
	assert.Equal(t, map[string]interface{}{"status": "offline"}, DriverPatch{Status: &status}.Columns())

	phone := "555-0100"
	assert.Equal(t, map[string]interface{}{"phone": "555-0100"}, CompanyPatch{Phone: &phone}.Columns())
}
