package crypto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_RandIntn(t *testing.T) {
	for i := 0; i < 1000; i++ {
		v := RandIntn(10)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 10)
	}
}

func Test_RandRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		v := RandRange(5, 8)
		require.GreaterOrEqual(t, v, 5)
		require.Less(t, v, 8)
	}
}

func Test_RandFloat64(t *testing.T) {
	for i := 0; i < 1000; i++ {
		v := RandFloat64()
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
	}
}
