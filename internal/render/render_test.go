package render

import (
	"bytes"
	"errors"
	"testing"

	"github.com/qdm12/ip-filter/internal/ipv4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Lines(t *testing.T) {
	t.Parallel()

	addresses := []ipv4.Address{
		ipv4.MustParse("10.0.12.11"),
		ipv4.MustParse("1.2.3.004"),
	}

	lines := Lines(addresses)

	assert.Equal(t, []string{"10.0.12.11", "1.2.3.004"}, lines)
	assert.Equal(t, []string{}, Lines(nil))
}

func Test_Write(t *testing.T) {
	t.Parallel()

	buffer := bytes.NewBuffer(nil)
	addresses := []ipv4.Address{
		ipv4.MustParse("10.0.12.11"),
		ipv4.MustParse("1.2.3.004"),
	}

	err := Write(buffer, addresses)

	require.NoError(t, err)
	assert.Equal(t, "10.0.12.11\n1.2.3.004\n", buffer.String())
}

type failingWriter struct{}

var errTest = errors.New("test error")

func (failingWriter) Write([]byte) (int, error) { return 0, errTest }

func Test_Write_error(t *testing.T) {
	t.Parallel()

	err := Write(failingWriter{}, []ipv4.Address{ipv4.MustParse("1.2.3.4")})

	assert.ErrorIs(t, err, errTest)
	assert.EqualError(t, err, "flushing lines: test error")
}
