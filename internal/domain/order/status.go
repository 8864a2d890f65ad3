package order

import "errors"

var ErrInvalidStatusTransition = errors.New("food status may only advance")

// FoodStatus tracks meal preparation for the order tied to a charging visit.
type FoodStatus string

const (
	StatusPending  FoodStatus = "pending"
	StatusCooking  FoodStatus = "cooking"
	StatusReady    FoodStatus = "ready"
	StatusPickedUp FoodStatus = "picked_up"
)

var statusRank = map[FoodStatus]int{
	StatusPending:  0,
	StatusCooking:  1,
	StatusReady:    2,
	StatusPickedUp: 3,
}

var statusMessage = map[FoodStatus]string{
	StatusPending:  "Your meal is not being cooked yet.",
	StatusCooking:  "Your meal is now being cooked.",
	StatusReady:    "Your meal is ready.",
	StatusPickedUp: "Your meal was successfully picked up.",
}

func (s FoodStatus) String() string {
	return string(s)
}

func (s FoodStatus) IsValid() bool {
	_, ok := statusRank[s]
	return ok
}

// Message is the human-readable text pushed to the customer alongside a
// status change.
func (s FoodStatus) Message() string {
	return statusMessage[s]
}

// Advance validates the monotonic pending → cooking → ready → picked_up
// progression. Skipping ahead is allowed; going backwards is not.
func (s FoodStatus) Advance(next FoodStatus) (FoodStatus, error) {
	nextRank, ok := statusRank[next]
	if !ok {
		return s, ErrInvalidStatusTransition
	}
	if nextRank <= statusRank[s] {
		return s, ErrInvalidStatusTransition
	}
	return next, nil
}
