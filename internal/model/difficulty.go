package model

import (
	"fmt"
	"strings"
)

// Difficulty selects which automated strategy plays a seat
type Difficulty string

const (
	DifficultyRandom   Difficulty = "random"
	DifficultyTactical Difficulty = "tactical"
	DifficultyPerfect  Difficulty = "perfect"
)

// DisplayName returns a human-readable label for a difficulty
func (d Difficulty) DisplayName() string {
	switch d {
	case DifficultyRandom:
		return "Easy"
	case DifficultyTactical:
		return "Smart"
	case DifficultyPerfect:
		return "Impossible"
	default:
		return string(d)
	}
}

// ValidDifficulties returns all difficulties, easiest first
func ValidDifficulties() []Difficulty {
	return []Difficulty{DifficultyRandom, DifficultyTactical, DifficultyPerfect}
}

// ParseDifficulty accepts a difficulty name, its display name, or its
// 1-based menu number
func ParseDifficulty(s string) (Difficulty, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for i, d := range ValidDifficulties() {
		if needle == string(d) || needle == strings.ToLower(d.DisplayName()) || needle == fmt.Sprint(i+1) {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
}
