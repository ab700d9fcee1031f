/*
Package fx implements immutable fixed-point decimal numbers.
It is designed for financial and accounting calculations where binary
floating point is not acceptable.

# Representation

[Fx] is a struct with three fields:

  - Sign: a boolean indicating whether the decimal is negative.
  - Coefficient: an unsigned integer representing the numeric value of the decimal
    without the decimal point.
  - Scale: a non-negative integer indicating the position of the decimal point
    within the coefficient.
    For example, a decimal with a coefficient of 12345 and a scale of 2 represents
    the value 123.45.
    The range of allowed values for the scale is from 0 to 19.

The numerical value of a decimal is calculated as:

  - -Coefficient / 10^Scale, if Sign is true.
  - Coefficient / 10^Scale, if Sign is false.

In this approach, the same numeric value can have multiple representations.
For example, 1, 1.0, and 1.00 all represent the same value but have different
scales and coefficients.
[Fx.Cmp] and [Fx.Equal] compare numeric values and treat such decimals as equal,
while [Fx.CmpTotal] also takes the representation into account.

# Constraints

The coefficient is limited to 19 decimal digits, so the range of a decimal is
determined by its scale.
Here are the ranges for frequently used scales:

	| Example      | Scale | Minimum                              | Maximum                             |
	| ------------ | ----- | ------------------------------------ | ----------------------------------- |
	| Japanese Yen | 0     | -9,999,999,999,999,999,999           | 9,999,999,999,999,999,999           |
	| US Dollar    | 2     |    -99,999,999,999,999,999.99        |    99,999,999,999,999,999.99        |
	| Bitcoin      | 8     |            -99,999,999,999.99999999  |            99,999,999,999.99999999  |

[Subnormal numbers] are not supported.
Consequently, decimals between -0.00000000000000000005 and 0.00000000000000000005
inclusive are rounded to 0.

Special values such as [NaN], [Infinity], or [negative zeros] are not supported.
This ensures that arithmetic operations always produce either valid decimals
or errors.

# Conversions

The package provides methods for converting decimals:

  - from/to string:
    [Parse], [Fx.String], [Fx.Format].
  - from/to float64:
    [NewFromFloat64], [Fx.Float64].
  - from/to int64:
    [New], [Fx.Int64].

See the documentation for each method for more details.

# Operations

Each arithmetic operation is carried out in two steps:

 1. The operation is initially performed using uint64 arithmetic.
    If no overflow occurs, the exact result is immediately returned.
    If an overflow does occur, the operation proceeds to step 2.

 2. The operation is repeated with increased precision using [big.Int] arithmetic.
    The result is then rounded to 19 digits.
    If no significant digits are lost during rounding, the inexact result is returned.
    If any significant digit is lost, an overflow error is returned.

All digits in the integer part of a result are significant, while digits in the
fractional part are insignificant and are rounded using half-to-even rounding.

# Rounding

Implicit rounding is applied when a result exceeds 19 digits.
In such cases, the result is rounded to 19 digits using half-to-even rounding.
This method ensures that rounding errors are evenly distributed between rounding up
and rounding down.

In addition to implicit rounding, the package provides several methods for
explicit rounding:

  - half-to-even rounding:
    [Fx.Round].
  - rounding towards positive infinity:
    [Fx.Ceil].
  - rounding towards negative infinity:
    [Fx.Floor].
  - rounding towards zero:
    [Fx.Trunc].

[Fx.QuoRem], [Fx.FloorQuo], and [Fx.Mod] implement floored division, so the sign
of a remainder always matches the sign of the divisor.

See the documentation for each method for more details.

# Errors

All methods are panic-free and pure, except for the Must methods, which panic
instead of returning an error.
Errors are returned in the following cases:

  - Invalid Format.
    [Parse], [NewFromFloat64], and [Fx.Scan] wrap [ErrInvalidFormat] when the
    input cannot be interpreted as a decimal.

  - Division by Zero.
    Unlike the standard library, [Fx.Quo], [Fx.QuoRem], [Fx.Mod], and [Fx.Inv]
    do not panic when dividing by 0.
    Instead, they wrap [ErrDivisionByZero].

  - Overflow.
    Unlike standard integers, there is no "wrap around" for decimals at certain
    sizes.
    When the integer part of a result does not fit 19 digits, arithmetic
    operations wrap [ErrOverflow].

Errors are not returned in the following cases:

  - Underflow.
    Arithmetic operations do not return an error in case of decimal underflow.
    If the result is a decimal between -0.00000000000000000005 and
    0.00000000000000000005 inclusive, it will be rounded to 0.

Use [errors.Is] to test which kind of error occurred.

[Infinity]: https://en.wikipedia.org/wiki/Infinity#Computing
[Subnormal numbers]: https://en.wikipedia.org/wiki/Subnormal_number
[NaN]: https://en.wikipedia.org/wiki/NaN
[big.Int]: https://pkg.go.dev/math/big#Int
[negative zeros]: https://en.wikipedia.org/wiki/Signed_zero
[errors.Is]: https://pkg.go.dev/errors#Is
*/
package fx
