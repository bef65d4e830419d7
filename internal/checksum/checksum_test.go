package checksum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLuhnAcceptsValidValues(t *testing.T) {
	for _, value := range []any{79927398713, int64(79927398713), uint64(79927398713), "79927398713", "046454286", "0"} {
		assert.True(t, Luhn(value), "value %v", value)
	}
}

func TestLuhnRejectsInvalidValues(t *testing.T) {
	values := []any{
		72723846,
		"72723846",
		"abc",
		"",
		"7992-7398713",
		-79927398713,
		map[string]string{"a": "b"},
		[]int{1, 2, 3},
		3.5,
		nil,
	}
	for _, value := range values {
		assert.False(t, Luhn(value), "value %v", value)
	}
}

func TestLuhnDigitsDetectsSingleDigitChange(t *testing.T) {
	valid := "79927398713"
	for i := range valid {
		for d := byte('0'); d <= '9'; d++ {
			if d == valid[i] {
				continue
			}
			changed := valid[:i] + string(d) + valid[i+1:]
			assert.False(t, LuhnDigits(changed), "changed %s", changed)
		}
	}
}

func TestMod11(t *testing.T) {
	digits := []int{6, 6, 3, 2, 5, 6, 0, 1, 7, 0, 0}
	assert.Equal(t, 2, Mod11(digits, []int{10, 9, 8, 7, 6, 5, 4, 3, 2}))

	digits[9] = 2
	assert.Equal(t, 6, Mod11(digits, []int{11, 10, 9, 8, 7, 6, 5, 4, 3, 2}))

	assert.Equal(t, 0, Mod11([]int{0, 0}, []int{2, 3}))
}
