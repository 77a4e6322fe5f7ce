/*
Package floatdec implements exact decimal decomposition of float64 values.
It is specifically designed for number formatting: it turns a binary
floating-point value into its shortest decimal digits once, and then lets
those digits be rounded and rendered in plain, scientific, or engineering
notation without ever touching binary arithmetic again.

# Representation

[Decimal] is a struct with three fields:

  - Sign: a boolean indicating whether the value is negative.
  - Digits: a string holding the significant decimal digits of the value,
    most significant digit first.
  - Exponent: an integer indicating the power of ten applied to the digits.
    For example, the digits "563" with an exponent of 2 represent the
    value 56300, and with an exponent of -4 the value 0.0563.

The numerical value of a decimal is calculated as:

  - -Digits * 10^Exponent, if Sign is true.
  - Digits * 10^Exponent, if Sign is false.

Every decimal is kept in canonical form: the digit string of a nonzero
value neither starts nor ends with '0', and zero is reduced to the single
digit "0" with exponent 0.
Canonical form makes the representation of every value unique, so two
decimals are numerically equal if and only if they are equal with the ==
operator, with one deliberate exception: 0 and -0 differ only in their
sign flag.

Unlike float64, a decimal has no limit on precision or magnitude other
than the exponent fitting into the int32 range, so rounding a decimal
never loses digits to binary representation error.

# Decomposition

[Decompose] converts a finite float64 into the decimal that round-trips:
the digits of the result are the shortest digit string that converts back
to exactly the original value.
For example, Decompose(0.1) yields the digits "1" and the exponent -1,
not the 55 digits of the exact binary expansion of the float64 nearest
to 0.1.
The decomposition is exact in both directions: [Decimal.Float64] returns
the original value bit for bit, including the sign of a [negative zero].

[NaN] and [Infinity] cannot be decomposed and are reported as errors.

# Rounding

Decimals are rounded explicitly, always using "half to even" rule, also
known as "banker's rounding":

  - [Decimal.MaxPrec] limits the number of significant digits.
  - [Decimal.Round] limits the decimal place of the last significant
    digit.

Both operations keep the result canonical, so rounding 199 to two
significant digits yields the single digit "2" with exponent 2, and both
preserve the sign even when every significant digit is rounded away.

# Notations

A decimal can be rendered in three notations:

  - [Decimal.Plain]: all digits laid out around the decimal point,
    for example "56300" or "0.00971".
  - [Decimal.Scientific]: one digit in front of the decimal point and an
    "E<n>" suffix, for example "5.63E4".
  - [Decimal.Engineering]: one to three digits in front of the decimal
    point and an exponent that is a multiple of three, for example
    "56.3E3".

The scientific and engineering notations omit the exponent suffix when
the exponent is zero, and every notation can append the decimal
placeholder ".0" to values without fractional digits, so that the text
always reads as a floating-point number.
[Decimal.String] is shorthand for the plain notation without the
placeholder, and [Decimal.Format] exposes all three notations through
fmt verbs.

# Conversions

The package provides functions and methods for converting decimals:

  - from float64:
    [Decompose], [MustDecompose].
  - from digits and an exponent:
    [New], [MustNew].
  - to float64:
    [Decimal.Float64].
  - to [decimal.Decimal]:
    [Decimal.Decimal].
  - to string:
    [Decimal.String], [Decimal.Plain], [Decimal.Scientific],
    [Decimal.Engineering], [Decimal.Format].

See the documentation for each method for more details.

# Errors

All methods are panic-free and pure, except the Must variants, which
panic instead of returning an error.
Errors are returned in the following cases:

  - Special values.
    [Decompose] returns an error for [NaN] and [Infinity], so every
    constructed decimal holds a finite value.

  - Invalid digits.
    [New] returns an error if the digit string is empty or contains a
    character other than '0' to '9'.

  - Out of range.
    [New] returns an error if the canonical exponent is out of range,
    and [Decimal.MaxPrec] returns an error if the requested precision
    is less than 1.

Rounding and rendering never fail: [Decimal.Round] and the notation
methods are total for every valid decimal.

[Infinity]: https://en.wikipedia.org/wiki/Infinity#Computing
[NaN]: https://en.wikipedia.org/wiki/NaN
[negative zero]: https://en.wikipedia.org/wiki/Signed_zero
*/
package floatdec
