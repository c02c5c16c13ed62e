package background

import (
	"github.com/shreya029/foodshare/metrics"
)

// ExpireFoodItems is a background job to mark available food items whose
// expiry date has passed
func (m *BackgroundManager) ExpireFoodItems() error {
	n, err := m.store.ExpireFoodItems(m.now())
	if err != nil {
		log.WithError(err).Error("expire food items")
		return err
	}

	if n > 0 {
		log.Infof("%d food items expired", n)
	}
	metrics.ObserveBackground(TaskExpireFoodItems, n)
	return nil
}
