package domain

// Event type names shared between publishers and subscribers
const (
	EventTypeDigResolved      = "dig.resolved"
	EventTypeItemDiscovered   = "item.discovered"
	EventTypeMemoryDiscovered = "memory.discovered"
	EventTypeBoostArmed       = "boost.armed"
	EventTypeAllowanceReset   = "allowance.reset"
)
