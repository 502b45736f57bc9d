package ratelimit

import "testing"

func TestAllowWithinBurst(t *testing.T) {
	l := New()
	for i := 0; i < 5; i++ {
		if !l.Allow("ip1", 5, 1) {
			t.Fatalf("request %d should be allowed within burst", i)
		}
	}
	if l.Allow("ip1", 5, 1) {
		t.Fatalf("request over burst should be denied")
	}
}

func TestKeysAreIndependent(t *testing.T) {
	l := New()
	for i := 0; i < 3; i++ {
		l.Allow("ip1", 3, 1)
	}
	if l.Allow("ip1", 3, 1) {
		t.Fatalf("ip1 should be exhausted")
	}
	if !l.Allow("ip2", 3, 1) {
		t.Fatalf("ip2 should be unaffected")
	}
}
