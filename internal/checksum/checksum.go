// Package checksum implements the mod 11 account number check.
package checksum

// Modulus is the divisor a valid weighted sum must be a multiple of.
const Modulus = 11

// WeightedSum weights each digit by its 1-based position counted from the
// right and returns the total. Every byte must be an ASCII digit.
func WeightedSum(account string) int {
	sum := 0
	n := len(account)
	for i := 0; i < n; i++ {
		sum += (n - i) * int(account[i]-'0')
	}
	return sum
}

// Valid reports whether the weighted sum of account is divisible by Modulus.
func Valid(account string) bool {
	return WeightedSum(account)%Modulus == 0
}
