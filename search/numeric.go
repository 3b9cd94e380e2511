package search

// Epsilon is the tolerance applied to every cost comparison. Costs are
// IEEE-754 doubles accumulated over many additions; a fixed tolerance
// keeps queue ordering stable when two different summation orders reach
// the same mathematical value.
const Epsilon = 1e-10

// Less reports a < b beyond tolerance.
func Less(a, b float64) bool { return a < b-Epsilon }

// Greater reports a > b beyond tolerance.
func Greater(a, b float64) bool { return a > b+Epsilon }

// Eq reports that a and b are equal within tolerance.
func Eq(a, b float64) bool { return !Less(a, b) && !Greater(a, b) }
