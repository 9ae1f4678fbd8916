package service

type State int

const (
	StateIdle State = iota
	StateCheckingLocationEnabled
	StateRequestingPermission
	StateAwaitingFix
	StateFetching
	StateDisplaying
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCheckingLocationEnabled:
		return "checking_location_enabled"
	case StateRequestingPermission:
		return "requesting_permission"
	case StateAwaitingFix:
		return "awaiting_fix"
	case StateFetching:
		return "fetching"
	case StateDisplaying:
		return "displaying"
	default:
		return "unknown"
	}
}
