package metrics

import (
	"github.com/osse101/HabitInventory_Go/internal/domain"
	"github.com/osse101/HabitInventory_Go/internal/payload"
)

// RecordDecode updates the decode counters for one successful decode.
func RecordDecode(items *domain.UserItems, report payload.Report) {
	if report.Degraded() {
		PayloadsDecoded.WithLabelValues(ResultDegraded).Inc()
	} else {
		PayloadsDecoded.WithLabelValues(ResultOK).Inc()
	}

	for _, d := range report.Degradations {
		FieldDegradations.WithLabelValues(d.Field).Inc()
	}

	for itemType, n := range items.Counts() {
		OwnedItemsDecoded.WithLabelValues(itemType.String()).Add(float64(n))
	}
}

// RecordStructuralError counts a payload that was not an object.
func RecordStructuralError() {
	PayloadsDecoded.WithLabelValues(ResultStructural).Inc()
}
