package prometheus

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func gatherValue(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatal(err)
	}
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		m := mf.GetMetric()[0]
		switch {
		case m.GetCounter() != nil:
			return m.GetCounter().GetValue()
		case m.GetGauge() != nil:
			return m.GetGauge().GetValue()
		case m.GetHistogram() != nil:
			return m.GetHistogram().GetSampleSum()
		}
	}
	t.Fatalf("metric %q not found", name)
	return 0
}

func TestCounter(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)

	c.IncCounter("test_counter", 1)
	c.IncCounter("test_counter", 2)

	if got := gatherValue(t, reg, "test_counter"); got != 3 {
		t.Errorf("counter = %v, want 3", got)
	}
}

func TestGauge(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)

	c.SetGauge("test_gauge", 10)
	c.SetGauge("test_gauge", 7)

	if got := gatherValue(t, reg, "test_gauge"); got != 7 {
		t.Errorf("gauge = %v, want 7", got)
	}
}

func TestHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)

	c.ObserveHistogram("test_histogram", 0.5)
	c.ObserveHistogram("test_histogram", 1.5)

	if got := gatherValue(t, reg, "test_histogram"); got != 2 {
		t.Errorf("histogram sum = %v, want 2", got)
	}
}

func TestAlreadyRegistered(t *testing.T) {
	reg := prometheus.NewRegistry()
	a := New(reg)
	b := New(reg)

	a.IncCounter("shared_counter", 1)
	b.IncCounter("shared_counter", 1)

	if got := gatherValue(t, reg, "shared_counter"); got != 2 {
		t.Errorf("counter = %v, want 2", got)
	}
}
