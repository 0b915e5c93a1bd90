package scoring

// PointsMultiplier converts a template's 1-10 base value into awarded points.
// Frequency multipliers and streak/early/verification bonuses exist in the
// reward schema but are not part of the active award path.
const PointsMultiplier = 10

// AwardPoints maps a task's base points value to the points actually awarded.
// Output is always a non-negative integer.
func AwardPoints(basePointsValue int) int {
	if basePointsValue < 0 {
		return 0
	}
	return basePointsValue * PointsMultiplier
}
