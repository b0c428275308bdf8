package component

// Chaser drives a hostile's horizontal pursuit of the player.
// Damage is the single source of truth for what a contact deals; the contact
// path reads it from here rather than carrying its own constant.
type Chaser struct {
	Speed        float64 // units per second
	StopDistance float64 // hold position inside this horizontal range
	Clearance    float64 // lift above sampled ground height
	Damage       int

	Spent bool // consumed by its first contact
}
