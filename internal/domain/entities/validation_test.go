package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zatekoja/physiodesk/backend/internal/domain/entities"
)

func intPtr(v int) *int { return &v }

func TestAppointment_Validate(t *testing.T) {
	valid := entities.Appointment{
		PatientID: "p1",
		Date:      "2024-06-12",
		StartTime: "10:00",
		EndTime:   "10:45",
		Status:    entities.AppointmentStatusScheduled,
	}
	assert.NoError(t, valid.Validate())

	bad := valid
	bad.Date = "12.06.2024"
	assert.Error(t, bad.Validate())

	bad = valid
	bad.Status = "postponed"
	assert.Error(t, bad.Validate())
}

func TestSession_Validate(t *testing.T) {
	valid := entities.Session{PatientID: "p1", Duration: 45, TreatmentNotes: "Germe", PainLevel: intPtr(3)}
	assert.NoError(t, valid.Validate())

	bad := valid
	bad.PainLevel = intPtr(0)
	assert.Error(t, bad.Validate())

	bad = valid
	bad.PainLevel = nil
	assert.NoError(t, bad.Validate(), "pain level is optional")
}

func TestPayment_Validate(t *testing.T) {
	draft := entities.Payment{PatientID: "p1", Amount: 500, DueDate: "2024-06-13"}
	assert.NoError(t, draft.ValidateDraft())
	assert.Error(t, draft.Validate(), "status and currency are required once stored")

	draft.Status = entities.PaymentStatusPending
	draft.Currency = "TRY"
	assert.NoError(t, draft.Validate())
}

func TestAppointmentRequest_Validate(t *testing.T) {
	valid := entities.AppointmentRequest{FirstName: "Zeynep", LastName: "Kaya", Phone: "1", PreferredDate: "2024-06-20"}
	assert.NoError(t, valid.Validate())

	valid.Phone = " "
	assert.Error(t, valid.Validate())
}
