package dataset

import "testing"

func TestNormalizeProtocol(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"tcp", "TCP"},
		{" Udp ", "UDP"},
		{"ICMP", "ICMP"},
		{"6", "TCP"},
		{"17", "UDP"},
		{"1", "ICMPv4"},
		{"253", "253"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeProtocol(tt.input); got != tt.want {
			t.Errorf("NormalizeProtocol(%q) = %q; want %q", tt.input, got, tt.want)
		}
	}
}
