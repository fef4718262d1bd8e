package constants

// Belt levels, in promotion order. The order index is also used by the
// analytics belt distribution so White always comes first.
var BeltLevels = []string{"White", "Blue", "Purple", "Brown", "Black"}

func BeltOrder(belt string) int {
	for i, b := range BeltLevels {
		if b == belt {
			return i + 1
		}
	}
	return len(BeltLevels) + 1
}

// Fallback class when a check-in does not land inside any scheduled slot.
const (
	OpenMatClassName  = "Open Mat"
	OpenMatInstructor = "Open"
)
