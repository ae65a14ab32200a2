package signing_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/curve25519"

	"github.com/caveman99/CustomCrypto/internal/domain"
	"github.com/caveman99/CustomCrypto/internal/metrics"
)

func curveBase(priv domain.X25519Private) (domain.X25519Public, error) {
	pub, err := curve25519.X25519(priv[:], curve25519.Basepoint)
	if err != nil {
		return domain.X25519Public{}, err
	}
	return domain.MustX25519Public(pub), nil
}

// counterValue sums every series of the named counter.
func counterValue(t *testing.T, m *metrics.Metrics, name string) float64 {
	t.Helper()
	families, err := m.Registry().Gather()
	require.NoError(t, err)
	var total float64
	for _, f := range families {
		if f.GetName() != name {
			continue
		}
		for _, metric := range f.GetMetric() {
			total += metric.GetCounter().GetValue()
		}
	}
	return total
}
