package request_cancellation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCode(t *testing.T) {
	for _, digits := range []int{4, 6, 8} {
		// Длина кода фиксирована: ведущие нули сохраняются
		for i := 0; i < 50; i++ {
			code, err := generateCode(digits)
			require.NoError(t, err)
			require.Len(t, code, digits)

			for _, r := range code {
				assert.True(t, r >= '0' && r <= '9', "code %q contains non-digit %q", code, r)
			}
		}
	}
}
