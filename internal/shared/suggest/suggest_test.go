package suggest

import "testing"

func TestClosest(t *testing.T) {
	codes := []string{"AW", "WW", "ELW", "HMC", "RKB", "GGWABL", "GGWWBL", "CIIIGG"}

	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"ELV", "ELW", true},
		{"elw", "ELW", true},
		{"HMX", "HMC", true},
		{"GGWABX", "GGWABL", true},
		{"CIIGG", "CIIIGG", true},
		{"", "", false},
		{"QQQQQQQQQQ", "", false},
	}

	for _, tt := range tests {
		got, ok := Closest(tt.in, codes)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("Closest(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
