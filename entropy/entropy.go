// Package entropy estimates the information content of byte buffers.
//
// The estimate is the order-0 Shannon entropy: the average number of bits
// per byte under the buffer's own empirical byte-frequency distribution.
// It is the theoretical floor for any order-0 coder and a good predictor
// of how far a general-purpose codec can shrink a payload.
package entropy

import "math"

// Histogram counts the occurrences of each byte value in data.
func Histogram(data []byte) [256]int {
	var counts [256]int
	for _, b := range data {
		counts[b]++
	}

	return counts
}

// Estimate computes the order-0 Shannon entropy of data in bits per byte.
//
// The result always falls in [0, 8]: a buffer repeating a single byte value
// measures exactly 0, a buffer of n equally frequent values measures
// log2(n), and a large uniformly random buffer approaches 8. An empty
// buffer measures 0 by convention since no distribution exists for it.
func Estimate(data []byte) float64 {
	if len(data) == 0 {
		return 0.0
	}

	counts := Histogram(data)
	total := float64(len(data))

	e := 0.0
	for _, count := range counts {
		if count == 0 {
			continue
		}
		p := float64(count) / total
		e -= p * math.Log2(p)
	}

	return e
}
