package background

import (
	"github.com/shreya029/foodshare/metrics"
)

// ReconcileReservations is a background job to release donations left
// reserved by a reservation whose request was never written or was removed
// without releasing it
func (m *BackgroundManager) ReconcileReservations() error {
	n, err := m.store.ReconcileReservations()
	if err != nil {
		log.WithError(err).Error("reconcile reservations")
		return err
	}

	metrics.ObserveBackground(TaskReconcileReservations, n)
	return nil
}
