package timeline

import (
	"math"
	"strings"
)

// charReveal returns the first round(p * len(target)) runes of target.
// Counting runes keeps multibyte text from being cut mid-character.
func charReveal(target string, p float64) string {
	runes := []rune(target)
	n := int(math.Round(p * float64(len(runes))))
	if n <= 0 {
		return ""
	}
	if n >= len(runes) {
		return target
	}
	return string(runes[:n])
}

// wordReveal reveals target word by word, splitting and rejoining on sep.
func wordReveal(target, sep string, p float64) string {
	if sep == "" {
		sep = " "
	}
	words := strings.Split(target, sep)
	n := int(math.Round(p * float64(len(words))))
	if n <= 0 {
		return ""
	}
	if n >= len(words) {
		return target
	}
	return strings.Join(words[:n], sep)
}
