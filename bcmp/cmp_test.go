package bcmp

import (
	"bytes"
	"cmp"
	"encoding/binary"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBytes(t *testing.T) {
	assert := assert.New(t)

	const num = 10 * 10000
	testData := make([][]byte, 0, num)
	source := rand.New(rand.NewPCG(1, 2))

	// gen random data.
	for i := 0; i < num; i++ {
		bytes := make([]byte, 8)
		binary.BigEndian.PutUint64(bytes, source.Uint64())
		testData = append(testData, bytes)
	}

	f := Func[[]byte](Bytes)
	for i := 1; i < len(testData); i++ {
		a := testData[i-1]
		b := testData[i]

		assert.Equal(bytes.Compare(a, b), Bytes(a, b))
		assert.Equal(bytes.Compare(a, b) < 0, Less(f, a, b))
		assert.Equal(bytes.Compare(a, b) <= 0, LessEqual(f, a, b))
		assert.Equal(bytes.Equal(a, b), Equal(f, a, b))

		_min := Min(f, a, b)
		assert.True(LessEqual(f, _min, a))
		assert.True(LessEqual(f, _min, b))

		_max := Max(f, a, b)
		assert.True(LessEqual(f, a, _max))
		assert.True(LessEqual(f, b, _max))

		target := []byte{100, 101, 102}
		assert.Equal(
			bytes.Compare(a, target) <= 0 && bytes.Compare(target, b) <= 0,
			Between(f, target, a, b),
		)
	}
}

func TestReverse(t *testing.T) {
	assert := assert.New(t)
	f := Reverse(Func[int](cmp.Compare[int]))

	assert.True(Less(f, 2, 1))
	assert.False(Less(f, 1, 2))
	assert.True(Equal(f, 3, 3))
	assert.Equal(2, Min(f, 1, 2))
	assert.Equal(1, Max(f, 1, 2))
}
