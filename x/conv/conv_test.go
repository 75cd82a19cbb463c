package conv

import "testing"

func TestHex32(t *testing.T) {
	tests := []struct {
		in   uint32
		want string
	}{
		{0, "0x0"},
		{0x868, "0x868"},
		{0x70003000, "0x70003000"},
		{0xffffffff, "0xffffffff"},
	}
	for _, tt := range tests {
		if got := Hex32(tt.in); got != tt.want {
			t.Fatalf("Hex32(%#x)=%q want %q", tt.in, got, tt.want)
		}
	}
}

func TestItoa(t *testing.T) {
	for in, want := range map[int]string{0: "0", 7: "7", 127: "127", -1: "-1", -4000: "-4000"} {
		if got := Itoa(in); got != want {
			t.Fatalf("Itoa(%d)=%q want %q", in, got, want)
		}
	}
}

func TestAppendKeepsPrefix(t *testing.T) {
	got := string(AppendInt(AppendHex32([]byte("reg="), 0x14), 3))
	if got != "reg=0x143" {
		t.Fatalf("got %q", got)
	}
}

func TestHex64(t *testing.T) {
	if got := Hex64(0x1_7000_0000); got != "0x170000000" {
		t.Fatalf("Hex64=%q", got)
	}
	if got := Hex64(^uint64(0)); got != "0xffffffffffffffff" {
		t.Fatalf("Hex64(max)=%q", got)
	}
}
