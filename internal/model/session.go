package model

// SessionSlot is a scheduled, capacity-limited time window for museum
// attendance. Counters are only ever mutated through the conditional
// reserve statement in the session repository, which keeps the intended
// invariant available + reserved + sold == total and available >= 0.
//
// NOTE: SessionDate and SessionTime are kept in DB string form
// ("2006-01-02" and "15:04:05") because the checkout form submits them in
// exactly that shape and the lookup is an exact match.
type SessionSlot struct {
	ID               uint64 // session_schedule.id
	SessionDate      string // session_schedule.session_date ("YYYY-MM-DD")
	SessionTime      string // session_schedule.session_time ("HH:MM:SS")
	TotalTickets     uint32 // session_schedule.total_tickets
	AvailableTickets uint32 // session_schedule.available_tickets
	ReservedTickets  uint32 // session_schedule.reserved_tickets
	SoldTickets      uint32 // session_schedule.sold_tickets
	IsActive         bool   // session_schedule.is_active
}
