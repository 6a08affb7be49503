package version

import "testing"

func TestString(t *testing.T) {
	if got := String(); got != "dev (commit: unknown, built: unknown)" {
		t.Errorf("String() = %q", got)
	}
}
