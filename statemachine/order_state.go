package statemachine

import (
	"errors"

	"food-marketplace-api/models"
)

// lifecycle is the forward ordering an order moves through. Cancelled sits
// outside the list: it is reachable from any non-terminal status.
var lifecycle = []models.OrderStatus{
	models.StatusPending,
	models.StatusConfirmed,
	models.StatusPreparing,
	models.StatusOutForDelivery,
	models.StatusDelivered,
}

var terminal = map[models.OrderStatus]bool{
	models.StatusDelivered: true,
	models.StatusCancelled: true,
}

// rank returns the position of status in the forward lifecycle, -1 for
// cancelled or unknown values.
func rank(status models.OrderStatus) int {
	for i, s := range lifecycle {
		if s == status {
			return i
		}
	}
	return -1
}

// IsValid reports whether status is a member of the enumerated set.
func IsValid(status models.OrderStatus) bool {
	return status == models.StatusCancelled || rank(status) >= 0
}

// IsTerminal reports whether status accepts no further transitions.
func IsTerminal(status models.OrderStatus) bool {
	return terminal[status]
}

// ValidNextStatuses returns all statuses reachable from the given one.
func ValidNextStatuses(from models.OrderStatus) []models.OrderStatus {
	if terminal[from] {
		return nil
	}
	var nexts []models.OrderStatus
	for i, s := range lifecycle {
		if i > rank(from) {
			nexts = append(nexts, s)
		}
	}
	nexts = append(nexts, models.StatusCancelled)
	return nexts
}

// CanTransition checks that to is a known status and that the move goes
// forward in the lifecycle, or into cancelled from a non-terminal status.
func CanTransition(from, to models.OrderStatus) error {
	if !IsValid(to) {
		return errors.New("unknown status '" + string(to) + "'")
	}
	if terminal[from] {
		return errors.New("order is already " + string(from) + " and accepts no further transitions")
	}
	if to == models.StatusCancelled {
		return nil
	}
	if rank(to) > rank(from) {
		return nil
	}
	return errors.New("cannot move from " + string(from) + " to " + string(to) +
		": transitions only move forward through the lifecycle")
}
