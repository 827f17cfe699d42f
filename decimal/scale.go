package decimal

import (
	"fmt"
)

// MaxPlaces is the largest number of fractional digits a Scale may declare.
const MaxPlaces = 9

// Scale fixes the number of implied fractional digits of a Decimal type.
// Implementations are expected to be empty structs:
//
//	type Price struct{}
//
//	func (Price) Places() int { return 8 }
//
// Places must return a constant between 0 and MaxPlaces.
type Scale interface {
	Places() int
}

// Predefined scales.
type (
	Places0 struct{}
	Places1 struct{}
	Places2 struct{}
	Places3 struct{}
	Places4 struct{}
	Places5 struct{}
	Places6 struct{}
	Places7 struct{}
	Places8 struct{}
	Places9 struct{}
)

func (Places0) Places() int { return 0 }
func (Places1) Places() int { return 1 }
func (Places2) Places() int { return 2 }
func (Places3) Places() int { return 3 }
func (Places4) Places() int { return 4 }
func (Places5) Places() int { return 5 }
func (Places6) Places() int { return 6 }
func (Places7) Places() int { return 7 }
func (Places8) Places() int { return 8 }
func (Places9) Places() int { return 9 }

// places returns the digits of S. A Scale outside [0, MaxPlaces] is a
// programming error and panics.
func places[S Scale]() int {
	var s S

	p := s.Places()
	if p < 0 || p > MaxPlaces {
		panic(fmt.Sprintf("decimal: %T declares %d places, want 0 to %d", s, p, MaxPlaces))
	}

	return p
}
