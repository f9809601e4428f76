package dates

import "testing"

func TestToWire(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "valid", in: "2024-05-01", want: "01.05.2024"},
		{name: "empty", in: "", want: ""},
		{name: "wrong separators", in: "2024.05.01", want: ""},
		{name: "short year", in: "24-05-01", want: ""},
		{name: "letters", in: "yyyy-mm-dd", want: ""},
		{name: "missing part", in: "2024-05", want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ToWire(tc.in); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestToInput(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "valid", in: "01.05.2024", want: "2024-05-01"},
		{name: "already iso", in: "2024-05-01", want: "2024-05-01"},
		{name: "empty", in: "", want: ""},
		{name: "garbage", in: "next tuesday", want: ""},
		{name: "short day", in: "1.05.2024", want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ToInput(tc.in); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	dates := []string{"2024-05-01", "1999-12-31", "2031-01-09"}
	for _, iso := range dates {
		if got := ToInput(ToWire(iso)); got != iso {
			t.Fatalf("round trip broke %q into %q", iso, got)
		}
	}
}
