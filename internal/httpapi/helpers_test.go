package httpapi

import "testing"

func TestParseBoolQuery(t *testing.T) {
	cases := []struct {
		value        string
		defaultValue bool
		want         bool
	}{
		{"true", false, true},
		{"TRUE", false, true},
		{"True", false, true},
		{" true ", false, true},
		{"false", false, false},
		{"false", true, false},
		{"1", false, false},
		{"t", false, false},
		{"yes", false, false},
		{"", false, false},
		{"", true, true},
		{"   ", true, true},
	}

	for _, tc := range cases {
		if got := parseBoolQuery(tc.value, tc.defaultValue); got != tc.want {
			t.Fatalf("parseBoolQuery(%q, %v) = %v, want %v", tc.value, tc.defaultValue, got, tc.want)
		}
	}
}
