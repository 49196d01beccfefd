// Package market derives reproducible synthetic demand signals for grid
// cells. All numbers come from a deterministic string hash so the same cell
// always renders the same market picture, across restarts and across
// processes.
package market

// Hash maps an arbitrary seed string to a stable pseudo-random value in
// [0, 1). The algorithm itself is part of the contract: a 32-bit signed
// rolling hash (h = h*31 + codepoint, wrapping), normalized by
// abs(h) / 2147483647. Do not swap it for a stdlib hash; every downstream
// market figure depends on its exact bit behavior.
func Hash(seed string) float64 {
	var h int32
	for _, r := range seed {
		h = h*31 + int32(r)
	}

	// Widen before negating: abs(MinInt32) stays negative in 32 bits.
	v := int64(h)
	if v < 0 {
		v = -v
	}

	return float64(v) / 2147483647
}

// Channel returns an independent pseudo-random channel for the same logical
// seed. Channels are obtained by suffixing the seed rather than by advancing
// a stream generator, so each one is reproducible on its own and does not
// depend on evaluation order.
func Channel(seed, name string) float64 {
	return Hash(seed + name)
}
