package buffers

import (
	"encoding/hex"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPadding(t *testing.T) {
	assert.Equal(t, 0, Padding(0))
	assert.Equal(t, 3, Padding(1))
	assert.Equal(t, 2, Padding(2))
	assert.Equal(t, 1, Padding(3))
	assert.Equal(t, 0, Padding(4))
	assert.Equal(t, 8, Aligned(5))
}

func TestBytesBuffer_AppendString(t *testing.T) {
	t.Run("padding invariant", func(t *testing.T) {
		for l := 0; l < 12; l++ {
			str := strings.Repeat("x", l)
			buf := NewBytesBuffer()
			buf.AppendString(str)
			assert.Equal(t, Aligned(4+l+1), buf.Len(), "length %d", l)

			r := NewBytesReader(buf.Bytes())
			result, err := r.NextString()
			assert.NoError(t, err)
			assert.Equal(t, str, result)
			assert.Equal(t, buf.Len(), r.Offset())
			assert.Equal(t, 0, r.Offset()%WordSize)
		}
	})

	t.Run("layout", func(t *testing.T) {
		buf := NewBytesBuffer()
		buf.AppendString("wl_shm")
		fmt.Println(hex.Dump(buf.Bytes()))
		expected := make([]byte, 4, 12)
		ByteOrder.PutUint32(expected, 7)
		expected = append(expected, 'w', 'l', '_', 's', 'h', 'm', 0, 0)
		assert.Equal(t, expected, buf.Bytes())
	})

	t.Run("followed by uint", func(t *testing.T) {
		buf := NewBytesBuffer()
		buf.AppendString("wl_compositor")
		buf.AppendUint32(4)
		r := NewBytesReader(buf.Bytes())
		str, err := r.NextString()
		assert.NoError(t, err)
		assert.Equal(t, "wl_compositor", str)
		version, err := r.NextUint32()
		assert.NoError(t, err)
		assert.Equal(t, uint32(4), version)
		assert.Equal(t, 0, r.Remaining())
	})
}

func TestBytesBuffer_AppendArray(t *testing.T) {
	buf := NewBytesBuffer()
	buf.AppendArray([]byte{1, 2, 3, 4, 5})
	buf.AppendInt32(-7)
	assert.Equal(t, 4+8+4, buf.Len())

	r := NewBytesReader(buf.Bytes())
	array, err := r.NextBytes()
	assert.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4, 5}, array)
	i, err := r.NextInt32()
	assert.NoError(t, err)
	assert.Equal(t, int32(-7), i)
}

func TestBytesBuffer_PutUint32(t *testing.T) {
	buf := NewBytesBuffer()
	buf.AppendUint32(0)
	buf.AppendUint32(0)
	buf.PutUint32(4, 0xdeadbeef)
	r := NewBytesReader(buf.Bytes())
	_, _ = r.NextUint32()
	v, err := r.NextUint32()
	assert.NoError(t, err)
	assert.Equal(t, uint32(0xdeadbeef), v)

	buf.Reset()
	assert.Equal(t, 0, buf.Len())
}

func BenchmarkBuffer_AppendUint32(b *testing.B) {
	b.Run("un-allocated 4 bytes uint32", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			buf := NewBytesBuffer()
			buf.AppendUint32(2)
		}
	})

	b.Run("reused 400 bytes uint32", func(b *testing.B) {
		b.ReportAllocs()
		buf := NewBytesBuffer()
		for i := 0; i < b.N; i++ {
			buf.Reset()
			for x := 0; x < 100; x++ {
				buf.AppendUint32(2)
			}
		}
	})
}

func BenchmarkBuffer_AppendString(b *testing.B) {
	b.Run("reused interface name", func(b *testing.B) {
		b.ReportAllocs()
		buf := NewBytesBuffer()
		for i := 0; i < b.N; i++ {
			buf.Reset()
			buf.AppendString("zwlr_layer_shell_v1")
		}
	})
}
