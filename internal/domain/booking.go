package domain

// Booking references its user and flight by id only. The service performs
// no existence or duplicate checks; the storage layer is the arbiter.
type Booking struct {
	ID       int64 `json:"id"`
	UserID   int64 `json:"user_id"`
	FlightID int64 `json:"flight_id"`
}
