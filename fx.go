package fx

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Fx is a fixed-point decimal number.
// It is represented as a sign, an unsigned integer coefficient, and
// a scale giving the number of digits after the decimal point.
// The zero value of Fx is the number 0 with scale 0 and is ready to use.
type Fx struct {
	neg   bool // indicates whether the number is negative
	scale int8 // position of the floating decimal point
	coef  fint // numeric value without decimal point
}

const (
	MaxPrec  = 19      // maximum length of the coefficient in decimal digits
	MaxScale = MaxPrec // maximum number of digits after the decimal point
	maxCoef  = maxFint // maximum absolute value of the coefficient
)

var (
	// ErrInvalidFormat is returned when a text cannot be parsed as a decimal.
	ErrInvalidFormat = errors.New("invalid decimal format")

	// ErrDivisionByZero is returned when a divisor is zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrOverflow is returned when a result does not fit MaxPrec digits.
	ErrOverflow = errors.New("coefficient overflow")

	errScaleRange      = errors.New("scale out of range")
	errInexactDivision = errors.New("inexact division")
)

func newUnsafe(neg bool, coef fint, scale int) Fx {
	if coef == 0 {
		neg = false
	}
	return Fx{neg: neg, coef: coef, scale: int8(scale)}
}

func newSafe(neg bool, coef fint, scale int) (Fx, error) {
	switch {
	case scale < 0 || scale > MaxScale:
		return Fx{}, errScaleRange
	case coef > maxCoef:
		return Fx{}, ErrOverflow
	}
	return newUnsafe(neg, coef, scale), nil
}

// newFromFint creates a new decimal from an uint64 coefficient
// rescaling it if necessary.
func newFromFint(neg bool, coef fint, scale int) (Fx, error) {
	var ok bool
	switch {
	case scale < 0:
		coef, ok = coef.lsh(-scale)
		if !ok {
			return Fx{}, ErrOverflow
		}
		scale = 0
	case scale > MaxScale:
		coef = coef.rshHalfEven(scale - MaxScale)
		scale = MaxScale
	}
	return newSafe(neg, coef, scale)
}

// newFromBint creates a new decimal from a *big.Int coefficient
// rescaling it if necessary.
func newFromBint(neg bool, coef *bint, scale int) (Fx, error) {
	prec := coef.prec()
	if prec-scale > MaxPrec {
		return Fx{}, ErrOverflow
	}
	switch {
	case scale < 0:
		coef.lsh(coef, -scale)
		scale = 0
	case scale >= prec && scale > MaxScale: // no integer part
		coef.rshHalfEven(coef, scale-MaxScale)
		scale = MaxScale
	case prec > scale && prec > MaxPrec: // there is an integer part
		coef.rshHalfEven(coef, prec-MaxPrec)
		scale = scale - (prec - MaxPrec)
	}
	// Handle the rare case when rshHalfEven rounded
	// a 19-digit coefficient to a 20-digit coefficient.
	if coef.hasPrec(MaxPrec + 1) {
		return newFromBint(neg, coef, scale)
	}
	return newSafe(neg, coef.fint(), scale)
}

// New returns a decimal equal to coef / 10^scale.
//
// New returns an error if the scale is negative or greater than [MaxScale].
func New(coef int64, scale int) (Fx, error) {
	var neg bool
	var ucoef uint64
	if coef < 0 {
		neg = true
		ucoef = uint64(-(coef + 1)) + 1
	} else {
		ucoef = uint64(coef)
	}
	return newSafe(neg, fint(ucoef), scale)
}

// MustNew is like [New] but panics if the decimal cannot be constructed.
// It simplifies safe initialization of global variables holding decimals.
func MustNew(coef int64, scale int) Fx {
	d, err := New(coef, scale)
	if err != nil {
		panic(fmt.Sprintf("New(%v, %v) failed: %v", coef, scale, err))
	}
	return d
}

// Zero returns a decimal with a value of 0, having the same scale as decimal d.
func (d Fx) Zero() Fx {
	return newUnsafe(false, 0, d.Scale())
}

// One returns a decimal with a value of 1, having the same scale as decimal d.
func (d Fx) One() Fx {
	return newUnsafe(false, pow10[d.Scale()], d.Scale())
}

// ULP (Unit in the Last Place) returns the smallest representable positive
// difference between two decimals with the same scale as decimal d.
func (d Fx) ULP() Fx {
	return newUnsafe(false, 1, d.Scale())
}

// Parse converts a string to a (possibly rounded) decimal.
// The input may have a leading sign, must have at least one digit,
// and may have a fractional part and an exponent:
//
//	number  = [sign] digits [period digits] [exponent]
//	sign    = '+' | '-'
//	period  = '.'
//	exponent = ('e' | 'E') [sign] digits
//
// Parse removes leading zeros from the integer part of the input string,
// but tries to maintain trailing zeros in the fractional part to preserve scale.
//
// Parse returns an error if:
//   - the string contains any whitespaces;
//   - the string is longer than 331 bytes;
//   - the exponent is less than -2 * [MaxScale] or greater than 2 * [MaxScale];
//   - the string does not represent a valid decimal number;
//   - the integer part of the result has more than [MaxPrec] digits.
func Parse(s string) (Fx, error) {
	if len(s) > 331 {
		return Fx{}, fmt.Errorf("parsing decimal: %w: %v bytes", ErrInvalidFormat, len(s))
	}
	d, err := parseFast(s)
	if err != nil {
		d, err = parseSlow(s)
		if err != nil {
			return Fx{}, fmt.Errorf("parsing decimal: %w", err)
		}
	}
	return d, nil
}

func parseFast(s string) (Fx, error) {
	var (
		pos      int
		width    int
		neg      bool
		coef     fint
		scale    int
		hasCoef  bool
		eneg     bool
		exp      int
		hasExp   bool
		hasPoint bool
		ok       bool
	)
	width = len(s)

	// Sign
	switch {
	case pos == width:
		// skip
	case s[pos] == '-':
		neg = true
		pos++
	case s[pos] == '+':
		pos++
	}

	// Coefficient
	for pos < width && (s[pos] == '.' || ('0' <= s[pos] && s[pos] <= '9')) {
		if s[pos] == '.' {
			if hasPoint {
				return Fx{}, fmt.Errorf("%w: unexpected character %q", ErrInvalidFormat, s[pos])
			}
			hasPoint = true
			pos++
			continue
		}
		coef, ok = coef.fsa(1, s[pos]-'0')
		if !ok {
			return Fx{}, ErrOverflow
		}
		hasCoef = true
		if hasPoint {
			scale++
			if scale > 2*MaxScale {
				return Fx{}, ErrOverflow
			}
		}
		pos++
	}
	if !hasCoef {
		return Fx{}, fmt.Errorf("%w: no coefficient", ErrInvalidFormat)
	}

	// Exponent
	if pos < width && (s[pos] == 'e' || s[pos] == 'E') {
		pos++
		// Sign
		switch {
		case pos == width:
			// skip
		case s[pos] == '-':
			eneg = true
			pos++
		case s[pos] == '+':
			pos++
		}
		// Digits
		for pos < width && '0' <= s[pos] && s[pos] <= '9' {
			exp = exp*10 + int(s[pos]-'0')
			if exp > 2*MaxScale {
				return Fx{}, fmt.Errorf("%w: exponent out of range", ErrOverflow)
			}
			hasExp = true
			pos++
		}
		if !hasExp {
			return Fx{}, fmt.Errorf("%w: no exponent digits", ErrInvalidFormat)
		}
	}
	if pos != width {
		return Fx{}, fmt.Errorf("%w: unexpected character %q", ErrInvalidFormat, s[pos])
	}

	if eneg {
		scale = scale + exp
	} else {
		scale = scale - exp
	}
	return newFromFint(neg, coef, scale)
}

func parseSlow(s string) (Fx, error) {
	var (
		pos      int
		width    int
		neg      bool
		scale    int
		hasCoef  bool
		eneg     bool
		exp      int
		hasExp   bool
		hasPoint bool
	)
	width = len(s)
	coef := getBint()
	defer putBint(coef)
	coef.setFint(0)

	// Sign
	switch {
	case pos == width:
		// skip
	case s[pos] == '-':
		neg = true
		pos++
	case s[pos] == '+':
		pos++
	}

	// Coefficient
	for pos < width && (s[pos] == '.' || ('0' <= s[pos] && s[pos] <= '9')) {
		if s[pos] == '.' {
			if hasPoint {
				return Fx{}, fmt.Errorf("%w: unexpected character %q", ErrInvalidFormat, s[pos])
			}
			hasPoint = true
			pos++
			continue
		}
		coef.fsa(coef, 1, fint(s[pos]-'0'))
		if !hasPoint && coef.hasPrec(2*MaxPrec) {
			return Fx{}, ErrOverflow
		}
		hasCoef = true
		if hasPoint {
			scale++
			if scale > 2*MaxScale {
				return Fx{}, ErrOverflow
			}
		}
		pos++
	}
	if !hasCoef {
		return Fx{}, fmt.Errorf("%w: no coefficient", ErrInvalidFormat)
	}

	// Exponent
	if pos < width && (s[pos] == 'e' || s[pos] == 'E') {
		pos++
		// Sign
		switch {
		case pos == width:
			// skip
		case s[pos] == '-':
			eneg = true
			pos++
		case s[pos] == '+':
			pos++
		}
		// Digits
		for pos < width && '0' <= s[pos] && s[pos] <= '9' {
			exp = exp*10 + int(s[pos]-'0')
			if exp > 2*MaxScale {
				return Fx{}, fmt.Errorf("%w: exponent out of range", ErrOverflow)
			}
			hasExp = true
			pos++
		}
		if !hasExp {
			return Fx{}, fmt.Errorf("%w: no exponent digits", ErrInvalidFormat)
		}
	}

	if pos != width {
		return Fx{}, fmt.Errorf("%w: unexpected character %q", ErrInvalidFormat, s[pos])
	}

	if eneg {
		scale = scale + exp
	} else {
		scale = scale - exp
	}
	return newFromBint(neg, coef, scale)
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding decimals.
func MustParse(s string) Fx {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("Parse(%q) failed: %v", s, err))
	}
	return d
}

// NewFromFloat64 converts a float to a (possibly rounded) decimal.
//
// NewFromFloat64 returns an error if:
//   - the float is a special value (NaN or Inf);
//   - the integer part of the result has more than [MaxPrec] digits.
func NewFromFloat64(f float64) (Fx, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Fx{}, fmt.Errorf("converting float: %w: special value %v", ErrInvalidFormat, f)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	d, err := Parse(s)
	if err != nil {
		return Fx{}, fmt.Errorf("converting float: %w", errors.Unwrap(err))
	}
	return d, nil
}

// String implements the [fmt.Stringer] interface and returns
// a string representation of the decimal.
// The returned string does not use scientific or engineering notation and
// is formatted as "-1234567890.123456789".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Fx) String() string {
	var buf [24]byte
	pos := len(buf) - 1
	coef := d.Coef()
	scale := d.Scale()

	// Coefficient
	for {
		buf[pos] = byte(coef%10) + '0'
		pos--
		coef /= 10
		if scale > 0 {
			scale--
			// Decimal point
			if scale == 0 {
				buf[pos] = '.'
				pos--
				// Leading 0
				if coef == 0 {
					buf[pos] = '0'
					pos--
				}
			}
		}
		if coef == 0 && scale == 0 {
			break
		}
	}

	// Sign
	if d.IsNeg() {
		buf[pos] = '-'
		pos--
	}

	return string(buf[pos+1:])
}

// Float64 returns the nearest binary floating-point number rounded
// using [rounding half to even] (banker's rounding).
//
// This conversion may lose data, as float64 has a smaller precision
// than the decimal type.
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func (d Fx) Float64() (f float64, ok bool) {
	f, err := strconv.ParseFloat(d.String(), 64)
	return f, err == nil
}

// Int64 returns the integer part of the decimal, truncated toward zero.
//
// If the integer part does not fit the int64 range, Int64 returns false.
func (d Fx) Int64() (i int64, ok bool) {
	whole := d.coef.rshDown(d.Scale())
	if d.IsNeg() {
		switch {
		case whole > 1<<63:
			return 0, false
		case whole == 1<<63:
			return math.MinInt64, true
		}
		return -int64(whole), true
	}
	if whole > math.MaxInt64 {
		return 0, false
	}
	return int64(whole), true
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *Fx) UnmarshalText(text []byte) error {
	var err error
	*d, err = Parse(string(text))
	return err
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// Also see method [Fx.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d Fx) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	%s, %v: -1234.567890
//	%q:    "-1234.567890"
//	%f:     -1234.567890
//
// The '-' format flag can be used with all verbs.
// The '0' format flag can be used with all verbs except %q.
//
// Precision is only supported for the %f verb.
// The default precision is equal to the actual scale of the decimal.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
//
//gocyclo:ignore
func (d Fx) Format(state fmt.State, verb rune) {
	// Rescaling
	var tzeroes int
	if verb == 'f' || verb == 'F' {
		scale := d.Scale()
		if precision, ok := state.Precision(); ok {
			scale = precision
		}
		if scale < d.Scale() {
			d = d.Round(scale)
		} else {
			tzeroes = scale - d.Scale()
		}
	}

	// Integer and fractional digits
	var intdigs, fracdigs int
	fracdigs = d.Scale()
	if dprec := d.Prec(); dprec > fracdigs {
		intdigs = dprec - fracdigs
	}
	if d.WithinOne() {
		intdigs++ // leading 0
	}

	// Decimal point
	var dpoint int
	if fracdigs > 0 || tzeroes > 0 {
		dpoint = 1
	}

	// Arithmetic sign
	var rsign int
	if d.IsNeg() || state.Flag('+') || state.Flag(' ') {
		rsign = 1
	}

	// Openinig and closing quotes
	var lquote, tquote int
	if verb == 'q' || verb == 'Q' {
		lquote, tquote = 1, 1
	}

	// Calculating padding
	width := lquote + rsign + intdigs + dpoint + fracdigs + tzeroes + tquote
	var lspaces, lzeroes, tspaces int
	if stateWidth, ok := state.Width(); ok && stateWidth > width {
		switch {
		case state.Flag('-'):
			tspaces = stateWidth - width
		case state.Flag('0') && verb != 'q' && verb != 'Q':
			lzeroes = stateWidth - width
		default:
			lspaces = stateWidth - width
		}
		width = stateWidth
	}

	buf := make([]byte, width)
	pos := width - 1

	// Trailing spaces
	for i := 0; i < tspaces; i++ {
		buf[pos] = ' '
		pos--
	}

	// Closing quote
	if tquote > 0 {
		buf[pos] = '"'
		pos--
	}

	// Trailing zeros
	for i := 0; i < tzeroes; i++ {
		buf[pos] = '0'
		pos--
	}

	// Fractional digits
	coef := d.Coef()
	for i := 0; i < fracdigs; i++ {
		buf[pos] = byte(coef%10) + '0'
		pos--
		coef /= 10
	}

	// Decimal point
	if dpoint > 0 {
		buf[pos] = '.'
		pos--
	}

	// Integer digits
	for i := 0; i < intdigs; i++ {
		buf[pos] = byte(coef%10) + '0'
		pos--
		coef /= 10
	}

	// Leading zeros
	for i := 0; i < lzeroes; i++ {
		buf[pos] = '0'
		pos--
	}

	// Arithmetic sign
	if rsign > 0 {
		if d.IsNeg() {
			buf[pos] = '-'
		} else if state.Flag(' ') {
			buf[pos] = ' '
		} else {
			buf[pos] = '+'
		}
		pos--
	}

	// Opening quote
	if lquote > 0 {
		buf[pos] = '"'
		pos--
	}

	// Leading spaces
	for i := 0; i < lspaces; i++ {
		buf[pos] = ' '
		pos--
	}

	// Writing result
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'f', 'F':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte(string(verb)))
		state.Write([]byte("(fx.Fx="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}

// Prec returns the number of digits in the coefficient.
func (d Fx) Prec() int {
	return d.coef.prec()
}

// Coef returns the coefficient of the decimal.
// Also see method [Fx.Prec].
func (d Fx) Coef() uint64 {
	return uint64(d.coef)
}

// Scale returns the number of digits after the decimal point.
func (d Fx) Scale() int {
	return int(d.scale)
}

// MinScale returns the smallest scale that the decimal can be rescaled to
// without rounding.
// Also see method [Fx.Trim].
func (d Fx) MinScale() int {
	// Special case: no scale
	if d.Scale() == 0 || d.IsZero() {
		return 0
	}
	// General case
	z := d.coef.ntz()
	if z > d.Scale() {
		return 0
	}
	return d.Scale() - z
}

// IsInt returns true if there are no significant digits after the decimal point.
func (d Fx) IsInt() bool {
	return d.coef%pow10[d.Scale()] == 0
}

// IsOne returns:
//
//	true  if d = -1 or d = 1
//	false otherwise
func (d Fx) IsOne() bool {
	return d.coef == pow10[d.Scale()]
}

// WithinOne returns:
//
//	true  if -1 < d < 1
//	false otherwise
func (d Fx) WithinOne() bool {
	return d.coef < pow10[d.Scale()]
}

// Round returns a decimal rounded to the given number of digits after
// the decimal point using [rounding half to even] (banker's rounding).
// If the given scale is negative, it is redefined to zero.
// Round does not pad the result with zeros, so the scale of the result
// never exceeds the scale of d.
// Also see method [Fx.Pad].
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func (d Fx) Round(scale int) Fx {
	if scale < 0 {
		scale = 0
	}
	if scale >= d.Scale() {
		return d
	}
	coef := d.coef.rshHalfEven(d.Scale() - scale)
	return newUnsafe(d.neg, coef, scale)
}

// Pad returns a decimal zero-padded to the given number of digits after
// the decimal point. If the total number of digits would exceed [MaxPrec]
// or the scale would exceed [MaxScale], Pad appends as many zeros as fit.
// Also see method [Fx.Trim].
func (d Fx) Pad(scale int) Fx {
	if scale > MaxScale {
		scale = MaxScale
	}
	if scale <= d.Scale() {
		return d
	}
	shift := scale - d.Scale()
	if room := MaxPrec - d.Prec(); shift > room {
		shift = room
	}
	coef, ok := d.coef.lsh(shift)
	if !ok {
		return d
	}
	return newUnsafe(d.neg, coef, d.Scale()+shift)
}

// Trunc returns a decimal truncated to the given number of digits after
// the decimal point using [rounding toward zero].
// If the given scale is negative, it is redefined to zero.
// Trunc does not pad the result with zeros.
//
// [rounding toward zero]: https://en.wikipedia.org/wiki/Rounding#Rounding_toward_zero
func (d Fx) Trunc(scale int) Fx {
	if scale < 0 {
		scale = 0
	}
	if scale >= d.Scale() {
		return d
	}
	coef := d.coef.rshDown(d.Scale() - scale)
	return newUnsafe(d.neg, coef, scale)
}

// Trim returns a decimal with trailing zeros removed up to the given
// number of digits after the decimal point.
// If the given scale is negative, it is redefined to zero.
// Also see method [Fx.Pad].
func (d Fx) Trim(scale int) Fx {
	if scale < 0 {
		scale = 0
	}
	if m := d.MinScale(); scale < m {
		scale = m
	}
	if scale >= d.Scale() {
		return d
	}
	coef := d.coef.rshDown(d.Scale() - scale)
	return newUnsafe(d.neg, coef, scale)
}

// Ceil returns a decimal rounded up to the given number of digits after
// the decimal point using [rounding toward positive infinity].
// If the given scale is negative, it is redefined to zero.
// Ceil does not pad the result with zeros.
// Also see method [Fx.Floor].
//
// [rounding toward positive infinity]: https://en.wikipedia.org/wiki/Rounding#Rounding_up
func (d Fx) Ceil(scale int) Fx {
	if scale < 0 {
		scale = 0
	}
	if scale >= d.Scale() {
		return d
	}
	var coef fint
	if d.IsNeg() {
		coef = d.coef.rshDown(d.Scale() - scale)
	} else {
		coef = d.coef.rshUp(d.Scale() - scale)
	}
	return newUnsafe(d.neg, coef, scale)
}

// Floor returns a decimal rounded down to the given number of digits after
// the decimal point using [rounding toward negative infinity].
// If the given scale is negative, it is redefined to zero.
// Floor does not pad the result with zeros.
// Also see method [Fx.Ceil].
//
// [rounding toward negative infinity]: https://en.wikipedia.org/wiki/Rounding#Rounding_down
func (d Fx) Floor(scale int) Fx {
	if scale < 0 {
		scale = 0
	}
	if scale >= d.Scale() {
		return d
	}
	var coef fint
	if d.IsNeg() {
		coef = d.coef.rshUp(d.Scale() - scale)
	} else {
		coef = d.coef.rshDown(d.Scale() - scale)
	}
	return newUnsafe(d.neg, coef, scale)
}

// Neg returns a decimal with the opposite sign.
func (d Fx) Neg() Fx {
	return newUnsafe(!d.neg, d.coef, d.Scale())
}

// Abs returns the absolute value of the decimal.
func (d Fx) Abs() Fx {
	return newUnsafe(false, d.coef, d.Scale())
}

// CopySign returns a decimal with the same sign as decimal e.
// CopySign treats 0 as positive.
// Also see method [Fx.Neg].
func (d Fx) CopySign(e Fx) Fx {
	switch {
	case d.Sign() == 0:
		return d
	case d.Sign() != e.Sign() && e.Sign() != 0:
		return d.Neg()
	}
	return d
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d = 0
//	+1 if d > 0
func (d Fx) Sign() int {
	switch {
	case d.neg:
		return -1
	case d.coef == 0:
		return 0
	}
	return 1
}

// IsPos returns:
//
//	true  if d > 0
//	false otherwise
func (d Fx) IsPos() bool {
	return d.Sign() > 0
}

// IsNeg returns:
//
//	true  if d < 0
//	false otherwise
func (d Fx) IsNeg() bool {
	return d.Sign() < 0
}

// IsZero returns:
//
//	true  if d = 0
//	false otherwise
func (d Fx) IsZero() bool {
	return d.Sign() == 0
}

// Mul returns the (possibly rounded) product of decimals d and e.
//
// Mul returns an error if the integer part of the result has
// more than [MaxPrec] digits.
func (d Fx) Mul(e Fx) (Fx, error) {
	f, err := d.mul(e)
	if err != nil {
		return Fx{}, fmt.Errorf("computing [%v * %v]: %w", d, e, err)
	}
	return f, nil
}

func (d Fx) mul(e Fx) (Fx, error) {
	f, err := mulFast(d, e)
	if err != nil {
		f, err = mulSlow(d, e)
	}
	return f, err
}

func mulFast(d, e Fx) (Fx, error) {
	dcoef, ecoef := d.coef, e.coef

	// Coefficient
	coef, ok := dcoef.mul(ecoef)
	if !ok {
		return Fx{}, ErrOverflow
	}

	// Sign
	neg := d.neg != e.neg

	// Scale
	scale := d.Scale() + e.Scale()

	return newFromFint(neg, coef, scale)
}

func mulSlow(d, e Fx) (Fx, error) {
	dcoef := getBint()
	defer putBint(dcoef)
	dcoef.setFint(d.coef)

	ecoef := getBint()
	defer putBint(ecoef)
	ecoef.setFint(e.coef)

	// Coefficient
	dcoef.mul(dcoef, ecoef)

	// Sign
	neg := d.neg != e.neg

	// Scale
	scale := d.Scale() + e.Scale()

	return newFromBint(neg, dcoef, scale)
}

// Pow returns the (possibly rounded) decimal raised to the given integer power.
//
// Pow returns an error if:
//   - the integer part of the result has more than [MaxPrec] digits;
//   - the decimal is 0 and the power is negative.
func (d Fx) Pow(power int) (Fx, error) {
	f, err := d.pow(power)
	if err != nil {
		return Fx{}, fmt.Errorf("computing [%v^%v]: %w", d, power, err)
	}
	return f, nil
}

func (d Fx) pow(power int) (Fx, error) {
	// Special case: power of 0
	if power == 0 {
		return newUnsafe(false, 1, 0), nil
	}

	// General case
	f, err := d.pow(power / 2)
	if err != nil {
		return Fx{}, err
	}
	f, err = f.mul(f)
	if err != nil {
		return Fx{}, err
	}
	switch {
	case power%2 == 0:
		return f, nil
	case power > 0:
		return f.mul(d)
	}
	return f.quo(d)
}

// Inv returns the (possibly rounded) multiplicative inverse of the decimal.
//
// Inv returns an error if:
//   - the integer part of the result has more than [MaxPrec] digits;
//   - the decimal is 0.
func (d Fx) Inv() (Fx, error) {
	one := newUnsafe(false, 1, 0)
	f, err := one.quo(d)
	if err != nil {
		return Fx{}, fmt.Errorf("inverting %v: %w", d, err)
	}
	return f, nil
}

// Add returns the (possibly rounded) sum of decimals d and e.
//
// Add returns an error if the integer part of the result has
// more than [MaxPrec] digits.
func (d Fx) Add(e Fx) (Fx, error) {
	f, err := d.add(e)
	if err != nil {
		return Fx{}, fmt.Errorf("computing [%v + %v]: %w", d, e, err)
	}
	return f, nil
}

// Sub returns the (possibly rounded) difference of decimals d and e.
//
// Sub returns an error if the integer part of the result has
// more than [MaxPrec] digits.
func (d Fx) Sub(e Fx) (Fx, error) {
	f, err := d.add(e.Neg())
	if err != nil {
		return Fx{}, fmt.Errorf("computing [%v - %v]: %w", d, e, err)
	}
	return f, nil
}

// SubAbs returns the (possibly rounded) absolute difference of decimals d and e.
//
// SubAbs returns an error if the integer part of the result has
// more than [MaxPrec] digits.
func (d Fx) SubAbs(e Fx) (Fx, error) {
	f, err := d.add(e.Neg())
	if err != nil {
		return Fx{}, fmt.Errorf("computing [abs(%v - %v)]: %w", d, e, err)
	}
	return f.Abs(), nil
}

func (d Fx) add(e Fx) (Fx, error) {
	f, err := addFast(d, e)
	if err != nil {
		f, err = addSlow(d, e)
	}
	return f, err
}

func addFast(d, e Fx) (Fx, error) {
	dcoef, ecoef := d.coef, e.coef

	// Alignment
	var ok bool
	switch {
	case d.Scale() == e.Scale():
		// skip
	case d.Scale() > e.Scale():
		ecoef, ok = ecoef.lsh(d.Scale() - e.Scale())
	default:
		dcoef, ok = dcoef.lsh(e.Scale() - d.Scale())
	}
	if d.Scale() != e.Scale() && !ok {
		return Fx{}, ErrOverflow
	}

	// Sign
	var neg bool
	if ecoef < dcoef {
		neg = d.neg
	} else {
		neg = e.neg
	}

	// Coefficient
	var coef fint
	if d.neg != e.neg {
		coef = dcoef.dist(ecoef)
	} else {
		coef, ok = dcoef.add(ecoef)
		if !ok {
			return Fx{}, ErrOverflow
		}
	}

	// Scale
	scale := d.Scale()
	if e.Scale() > scale {
		scale = e.Scale()
	}

	return newFromFint(neg, coef, scale)
}

func addSlow(d, e Fx) (Fx, error) {
	dcoef := getBint()
	defer putBint(dcoef)
	dcoef.setFint(d.coef)

	ecoef := getBint()
	defer putBint(ecoef)
	ecoef.setFint(e.coef)

	// Alignment
	switch {
	case d.Scale() == e.Scale():
		// skip
	case d.Scale() > e.Scale():
		ecoef.lsh(ecoef, d.Scale()-e.Scale())
	default:
		dcoef.lsh(dcoef, e.Scale()-d.Scale())
	}

	// Sign
	var neg bool
	if dcoef.cmp(ecoef) > 0 {
		neg = d.neg
	} else {
		neg = e.neg
	}

	// Coefficient
	if d.neg != e.neg {
		dcoef.dist(dcoef, ecoef)
	} else {
		dcoef.add(dcoef, ecoef)
	}

	// Scale
	scale := d.Scale()
	if e.Scale() > scale {
		scale = e.Scale()
	}

	return newFromBint(neg, dcoef, scale)
}

// Quo returns the (possibly rounded) quotient of decimals d and e.
// The scale of the result is the difference of the scales of d and e,
// extended with as many significant digits as fit [MaxPrec] when the
// division is inexact, and reduced by removing trailing zeros otherwise.
//
// Quo returns an error if:
//   - the integer part of the result has more than [MaxPrec] digits;
//   - the divisor is 0.
func (d Fx) Quo(e Fx) (Fx, error) {
	f, err := d.quo(e)
	if err != nil {
		return Fx{}, fmt.Errorf("computing [%v / %v]: %w", d, e, err)
	}
	return f, nil
}

func (d Fx) quo(e Fx) (Fx, error) {
	// Special case: zero divisor
	if e.IsZero() {
		return Fx{}, ErrDivisionByZero
	}

	// Special case: zero dividend
	if d.IsZero() {
		scale := d.Scale() - e.Scale()
		if scale < 0 {
			scale = 0
		}
		return newSafe(false, 0, scale)
	}

	// General case
	f, err := quoFast(d, e)
	if err != nil {
		f, err = quoSlow(d, e)
		if err != nil {
			return Fx{}, err
		}
	}

	// Trailing zeros
	scale := d.Scale() - e.Scale()
	if scale < 0 {
		scale = 0
	}
	return f.Trim(scale), nil
}

func quoFast(d, e Fx) (Fx, error) {
	dcoef, ecoef := d.coef, e.coef

	// Scale
	scale := d.Scale() - e.Scale()

	// Dividend alignment
	var ok bool
	if p := MaxPrec - dcoef.prec(); p > 0 {
		dcoef, ok = dcoef.lsh(p)
		if !ok {
			return Fx{}, ErrOverflow
		}
		scale = scale + p
	}

	// Divisor alignment
	if t := ecoef.ntz(); t > 0 {
		ecoef = ecoef.rshDown(t)
		scale = scale + t
	}

	// Coefficient
	coef, ok := dcoef.quo(ecoef)
	if !ok {
		return Fx{}, errInexactDivision
	}

	// Sign
	neg := d.neg != e.neg

	return newFromFint(neg, coef, scale)
}

func quoSlow(d, e Fx) (Fx, error) {
	dcoef := getBint()
	defer putBint(dcoef)
	dcoef.setFint(d.coef)

	ecoef := getBint()
	defer putBint(ecoef)
	ecoef.setFint(e.coef)

	// Scale
	scale := 2 * MaxScale

	// Dividend alignment
	dcoef.lsh(dcoef, scale+e.Scale()-d.Scale())

	// Coefficient
	dcoef.quo(dcoef, ecoef)

	// Sign
	neg := d.neg != e.neg

	return newFromBint(neg, dcoef, scale)
}

// QuoRem returns the whole and remainder parts of the quotient of
// decimals d and e, such that:
//
//	q = (d / e) rounded toward negative infinity to an integer
//	r = d - e * q
//
// With this (floored) definition the sign of the remainder always
// matches the sign of the divisor, so for example -7 mod 3 = 2.
//
// QuoRem returns an error if:
//   - the integer part of the quotient has more than [MaxPrec] digits;
//   - the divisor is 0.
func (d Fx) QuoRem(e Fx) (q, r Fx, err error) {
	q, r, err = d.quoRem(e)
	if err != nil {
		return Fx{}, Fx{}, fmt.Errorf("computing quotient and remainder of [%v / %v]: %w", d, e, err)
	}
	return q, r, nil
}

func (d Fx) quoRem(e Fx) (q, r Fx, err error) {
	// Whole part, rounded toward negative infinity
	f, err := d.quo(e)
	if err != nil {
		return Fx{}, Fx{}, err
	}
	q = f.Floor(0)

	// Remainder
	p, err := q.mul(e)
	if err != nil {
		return Fx{}, Fx{}, err
	}
	r, err = d.add(p.Neg())
	if err != nil {
		return Fx{}, Fx{}, err
	}
	return q, r, nil
}

// FloorQuo returns the quotient of decimals d and e rounded toward
// negative infinity to an integer.
// Also see method [Fx.QuoRem].
//
// FloorQuo returns an error if:
//   - the integer part of the quotient has more than [MaxPrec] digits;
//   - the divisor is 0.
func (d Fx) FloorQuo(e Fx) (Fx, error) {
	q, _, err := d.quoRem(e)
	if err != nil {
		return Fx{}, fmt.Errorf("computing [%v // %v]: %w", d, e, err)
	}
	return q, nil
}

// Mod returns the floored remainder of the division of decimals d and e.
// The sign of the result always matches the sign of the divisor.
// Also see method [Fx.QuoRem].
//
// Mod returns an error if the divisor is 0.
func (d Fx) Mod(e Fx) (Fx, error) {
	_, r, err := d.quoRem(e)
	if err != nil {
		return Fx{}, fmt.Errorf("computing [%v mod %v]: %w", d, e, err)
	}
	return r, nil
}

// Max returns the larger decimal.
// Also see method [Fx.CmpTotal].
func (d Fx) Max(e Fx) Fx {
	if d.CmpTotal(e) >= 0 {
		return d
	}
	return e
}

// Min returns the smaller decimal.
// Also see method [Fx.CmpTotal].
func (d Fx) Min(e Fx) Fx {
	if d.CmpTotal(e) <= 0 {
		return d
	}
	return e
}

// CmpTotal compares the representation of decimals and returns:
//
//	-1 if d < e
//	-1 if d = e and d.scale > e.scale
//	 0 if d = e and d.scale = e.scale
//	+1 if d = e and d.scale < e.scale
//	+1 if d > e
//
// Also see method [Fx.Cmp].
func (d Fx) CmpTotal(e Fx) int {
	switch d.Cmp(e) {
	case -1:
		return -1
	case 1:
		return 1
	}
	switch {
	case d.Scale() > e.Scale():
		return -1
	case d.Scale() < e.Scale():
		return 1
	}
	return 0
}

// Equal compares decimals and returns:
//
//	true  if d = e
//	false otherwise
//
// Decimals representing the same numeric value are equal even if their
// scales differ, so 2.0 is equal to 2.
func (d Fx) Equal(e Fx) bool {
	return d.Cmp(e) == 0
}

// Less compares decimals and returns:
//
//	true  if d < e
//	false otherwise
func (d Fx) Less(e Fx) bool {
	return d.Cmp(e) < 0
}

// Cmp numerically compares decimals and returns:
//
//	-1 if d < e
//	 0 if d = e
//	+1 if d > e
func (d Fx) Cmp(e Fx) int {
	// Special case: different signs
	switch {
	case d.Sign() > e.Sign():
		return 1
	case d.Sign() < e.Sign():
		return -1
	}

	// General case
	r, err := cmpFast(d, e)
	if err != nil {
		r = cmpSlow(d, e)
	}
	return r
}

func cmpFast(d, e Fx) (int, error) {
	dcoef, ecoef := d.coef, e.coef

	// Alignment
	var ok bool
	switch {
	case d.Scale() == e.Scale():
		// skip
	case d.Scale() > e.Scale():
		ecoef, ok = ecoef.lsh(d.Scale() - e.Scale())
	default:
		dcoef, ok = dcoef.lsh(e.Scale() - d.Scale())
	}
	if d.Scale() != e.Scale() && !ok {
		return 0, ErrOverflow
	}

	// Comparison
	switch {
	case dcoef > ecoef:
		return d.Sign(), nil
	case ecoef > dcoef:
		return -e.Sign(), nil
	}
	return 0, nil
}

func cmpSlow(d, e Fx) int {
	dcoef := getBint()
	defer putBint(dcoef)
	dcoef.setFint(d.coef)

	ecoef := getBint()
	defer putBint(ecoef)
	ecoef.setFint(e.coef)

	// Alignment
	switch {
	case d.Scale() == e.Scale():
		// skip
	case d.Scale() > e.Scale():
		ecoef.lsh(ecoef, d.Scale()-e.Scale())
	default:
		dcoef.lsh(dcoef, e.Scale()-d.Scale())
	}

	// Comparison
	switch dcoef.cmp(ecoef) {
	case 1:
		return d.Sign()
	case -1:
		return -e.Sign()
	}
	return 0
}
