package utils

// CeilDiv retorna o teto da divisão inteira a/b. b não pode ser zero.
func CeilDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a > 0) == (b > 0) {
		q++
	}
	return q
}
