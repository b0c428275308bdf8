package component

// Pickup kinds. Coins score through the session controller; hearts heal the
// player directly.
const (
	PickupCoin  = "coin"
	PickupHeart = "heart"
)

// Pickup is a passive collectible. Value is the coin amount for coin pickups
// and the heal amount for heart pickups. Angle is cosmetic only.
type Pickup struct {
	Kind      string
	Value     int
	SpinSpeed float64 // radians per second
	Angle     float64

	// Collected guards against a second report when contact and removal
	// land in the same frame.
	Collected bool
}
