//go:build unit

package vercode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salon-booking/internal/pkg/vercode"
)

func TestCryptoGenerator_Generate(t *testing.T) {
	gen := vercode.NewCryptoGenerator()

	t.Run("produces only digits at the requested length", func(t *testing.T) {
		for _, length := range []int{4, 6, 8} {
			code, err := gen.Generate(length)
			require.NoError(t, err)
			require.Len(t, code, length)
			for _, r := range code {
				assert.True(t, r >= '0' && r <= '9', "unexpected rune %q in %q", r, code)
			}
		}
	})

	t.Run("rejects non-positive lengths", func(t *testing.T) {
		_, err := gen.Generate(0)
		assert.Error(t, err)

		_, err = gen.Generate(-3)
		assert.Error(t, err)
	})
}
