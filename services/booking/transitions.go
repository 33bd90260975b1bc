package booking

import "mazdoor/models"

// transitionGraph lists the legal next statuses from each current status.
// Completed and cancelled are terminal. Disputed admits only the admin
// override edges, enforced separately in allowedForRole.
var transitionGraph = map[string][]string{
	models.BookingPending:    {models.BookingConfirmed, models.BookingCancelled},
	models.BookingConfirmed:  {models.BookingInProgress, models.BookingCancelled},
	models.BookingInProgress: {models.BookingCompleted, models.BookingDisputed},
	models.BookingDisputed:   {models.BookingCompleted, models.BookingCancelled},
}

// ValidTransition reports whether the edge current→next exists in the graph.
func ValidTransition(current, next string) bool {
	for _, s := range transitionGraph[current] {
		if s == next {
			return true
		}
	}
	return false
}

// allowedForRole reports whether the acting role may perform the edge.
// Workers drive the service forward, either side may cancel or dispute, and
// only an admin resolves a dispute.
func allowedForRole(current, next, role string) bool {
	if role == models.RoleAdmin {
		return true
	}
	if current == models.BookingDisputed {
		return false
	}
	switch next {
	case models.BookingConfirmed, models.BookingInProgress, models.BookingCompleted:
		return role == models.RoleWorker
	case models.BookingCancelled, models.BookingDisputed:
		return role == models.RoleWorker || role == models.RoleCustomer
	}
	return false
}
