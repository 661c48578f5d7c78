package records

import (
	"github.com/zatekoja/physiodesk/backend/internal/domain/entities"
	"github.com/zatekoja/physiodesk/backend/internal/domain/providers"
	"github.com/zatekoja/physiodesk/backend/internal/domain/repositories"
)

// Slot names. The full key is the configured prefix followed by the slot name.
const (
	SlotPatients     = "patients"
	SlotAppointments = "appointments"
	SlotSessions     = "sessions"
	SlotPayments     = "payments"
	SlotRequests     = "requests"
	SlotSettings     = "settings"
)

// SlotKeys returns every storage key used by the clinic for prefix
func SlotKeys(prefix string) []string {
	return []string{
		prefix + SlotPatients,
		prefix + SlotAppointments,
		prefix + SlotSessions,
		prefix + SlotPayments,
		prefix + SlotRequests,
		prefix + SlotSettings,
	}
}

// NewCollections wires one repository per slot on a shared store
func NewCollections(store providers.KeyValueStore, prefix string, opts ...Option) repositories.Collections {
	return repositories.Collections{
		Patients:     NewCollectionAdapter[entities.Patient](store, prefix+SlotPatients, opts...),
		Appointments: NewCollectionAdapter[entities.Appointment](store, prefix+SlotAppointments, opts...),
		Sessions:     NewCollectionAdapter[entities.Session](store, prefix+SlotSessions, opts...),
		Payments:     NewCollectionAdapter[entities.Payment](store, prefix+SlotPayments, opts...),
		Requests:     NewCollectionAdapter[entities.AppointmentRequest](store, prefix+SlotRequests, opts...),
		Settings:     NewSettingsAdapter(store, prefix+SlotSettings),
	}
}
