package repository

import "errors"

// ErrSlotConflict is returned when a candidate entry overlaps a neighboring
// entry on the same date.
var ErrSlotConflict = errors.New("the chosen date and time conflict with an existing entry")
