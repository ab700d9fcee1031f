package fx

import "fmt"

// Sum returns the (possibly rounded) sum of the given decimals.
// The sum of no decimals is 0.
//
// Sum returns an error if the integer part of the result has
// more than [MaxPrec] digits.
func Sum(values ...Fx) (Fx, error) {
	var sum Fx
	for _, v := range values {
		var err error
		sum, err = sum.add(v)
		if err != nil {
			return Fx{}, fmt.Errorf("computing sum: %w", err)
		}
	}
	return sum, nil
}

// Prod returns the (possibly rounded) product of the given decimals.
// The product of no decimals is 1.
//
// Prod returns an error if the integer part of the result has
// more than [MaxPrec] digits.
func Prod(values ...Fx) (Fx, error) {
	prod := newUnsafe(false, 1, 0)
	for _, v := range values {
		var err error
		prod, err = prod.mul(v)
		if err != nil {
			return Fx{}, fmt.Errorf("computing product: %w", err)
		}
	}
	return prod, nil
}
