package random

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type RandomSuite struct {
	suite.Suite
}

func TestRandomSuite(t *testing.T) {
	suite.Run(t, new(RandomSuite))
}

func (s *RandomSuite) TestIntnInRange() {
	r := New()
	seen := make(map[int]bool)
	for range 1000 {
		v := r.Intn(4)
		s.GreaterOrEqual(v, 0)
		s.Less(v, 4)
		seen[v] = true
	}
	s.Len(seen, 4)
}

func (s *RandomSuite) TestIntnNonPositive() {
	r := New()
	s.Zero(r.Intn(0))
	s.Zero(r.Intn(-3))
}

func (s *RandomSuite) TestSameSeedSameSequence() {
	a, b := NewWithSeed(1, 2), NewWithSeed(1, 2)
	for range 50 {
		s.Equal(a.Intn(9), b.Intn(9))
	}
}
