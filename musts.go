package fx

import "fmt"

// MustAdd is like [Fx.Add] but panics if the sum cannot be computed.
func (d Fx) MustAdd(e Fx) Fx {
	f, err := d.Add(e)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v) failed: %v", e, err))
	}
	return f
}

// MustSub is like [Fx.Sub] but panics if the difference cannot be computed.
func (d Fx) MustSub(e Fx) Fx {
	f, err := d.Sub(e)
	if err != nil {
		panic(fmt.Sprintf("MustSub(%v) failed: %v", e, err))
	}
	return f
}

// MustMul is like [Fx.Mul] but panics if the product cannot be computed.
func (d Fx) MustMul(e Fx) Fx {
	f, err := d.Mul(e)
	if err != nil {
		panic(fmt.Sprintf("MustMul(%v) failed: %v", e, err))
	}
	return f
}

// MustQuo is like [Fx.Quo] but panics if the quotient cannot be computed.
func (d Fx) MustQuo(e Fx) Fx {
	f, err := d.Quo(e)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", e, err))
	}
	return f
}

// MustMod is like [Fx.Mod] but panics if the remainder cannot be computed.
func (d Fx) MustMod(e Fx) Fx {
	f, err := d.Mod(e)
	if err != nil {
		panic(fmt.Sprintf("MustMod(%v) failed: %v", e, err))
	}
	return f
}

// MustPow is like [Fx.Pow] but panics if the power cannot be computed.
func (d Fx) MustPow(power int) Fx {
	f, err := d.Pow(power)
	if err != nil {
		panic(fmt.Sprintf("MustPow(%v) failed: %v", power, err))
	}
	return f
}
