package crypto

import (
	"bytes"
	"crypto/rand"
	"errors"
	"testing"
)

func TestRNGHealthCheckAcceptsRealCSPRNG(t *testing.T) {
	if err := RNGHealthCheck(rand.Reader); err != nil {
		t.Errorf("RNGHealthCheck(rand.Reader) = %v, want nil", err)
	}
}

func TestRNGHealthCheckRejectsAllZero(t *testing.T) {
	zero := bytes.NewReader(make([]byte, HealthCheckSampleSize*2))
	if err := RNGHealthCheck(zero); !errors.Is(err, ErrRNGUnhealthy) {
		t.Errorf("RNGHealthCheck(all-zero) = %v, want ErrRNGUnhealthy", err)
	}
}

type repeatingReader struct {
	pattern []byte
}

func (r repeatingReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = r.pattern[i%len(r.pattern)]
	}
	return len(p), nil
}

func TestRNGHealthCheckRejectsRepeatedSample(t *testing.T) {
	rng := repeatingReader{pattern: []byte{0x42}}
	if err := RNGHealthCheck(rng); !errors.Is(err, ErrRNGUnhealthy) {
		t.Errorf("RNGHealthCheck(repeating) = %v, want ErrRNGUnhealthy", err)
	}
}
