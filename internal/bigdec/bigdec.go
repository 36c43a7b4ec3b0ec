// Package bigdec implements exact arithmetic on arbitrary-length decimal
// strings. Values never leave string form, so inputs beyond the int64/float64
// range are handled without loss.
package bigdec

import (
	"fmt"
	"strconv"
)

// ErrInvalidNumber is returned when an input is not a non-empty string of
// ASCII decimal digits.
var ErrInvalidNumber = fmt.Errorf("value must be a non-empty string of decimal digits")

// Check reports whether s is a valid decimal-string value. Leading zeros are
// permitted.
func Check(s string) error {
	if len(s) == 0 {
		return ErrInvalidNumber
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return ErrInvalidNumber
		}
	}
	return nil
}

// Add returns s + n as a decimal string. s must be a valid decimal string and
// n must be non-negative; a negative n is a programmer error and panics.
// The carry is split digit-by-digit so intermediate sums never overflow.
func Add(s string, n int64) string {
	if n < 0 {
		panic("bigdec: Add called with negative increment")
	}
	if err := Check(s); err != nil {
		panic("bigdec: Add called with invalid value: " + strconv.Quote(s))
	}

	buf := []byte(s)
	carry := n
	for i := len(buf) - 1; i >= 0 && carry > 0; i-- {
		sum := int64(buf[i]-'0') + carry%10
		carry = carry/10 + sum/10
		buf[i] = byte(sum%10) + '0'
	}
	if carry > 0 {
		return strconv.FormatInt(carry, 10) + string(buf)
	}
	return string(buf)
}

// Mod returns s mod m by folding digits left to right, so values of any
// length reduce without conversion. m must be positive (panics otherwise)
// and small enough that m*10 fits in int64. Returns ErrInvalidNumber if s
// contains a non-digit or is empty.
func Mod(s string, m int64) (int64, error) {
	if m <= 0 {
		panic("bigdec: Mod called with non-positive modulus")
	}
	if len(s) == 0 {
		return 0, ErrInvalidNumber
	}
	var acc int64
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, ErrInvalidNumber
		}
		acc = (acc*10 + int64(s[i]-'0')) % m
	}
	return acc, nil
}
