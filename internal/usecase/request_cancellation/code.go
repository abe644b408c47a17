package request_cancellation

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// generateCode генерирует случайный числовой код заданной длины.
// Использует crypto/rand: код выполняет роль одноразового пароля,
// предсказуемый генератор здесь недопустим.
func generateCode(digits int) (string, error) {
	max := big.NewInt(1)
	for i := 0; i < digits; i++ {
		max.Mul(max, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("%w: failed to generate code: %v", ErrInternal, err)
	}

	// Ведущие нули сохраняются: "0042" - валидный четырехзначный код
	return fmt.Sprintf("%0*d", digits, n), nil
}
