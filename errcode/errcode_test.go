package errcode

import (
	"errors"
	"fmt"
	"testing"
)

func TestCodesAreStableStrings(t *testing.T) {
	cases := map[string]Code{
		"unsupported":         Unsupported,
		"invalid_params":      InvalidParams,
		"invalid_pin_group":   InvalidPinGroup,
		"invalid_drive_group": InvalidDriveGroup,
		"invalid_func":        InvalidFunc,
		"out_of_range":        OutOfRange,
		"locked":              Locked,
		"unknown_soc":         UnknownSoC,
		"unknown_board":       UnknownBoard,
	}
	for want, c := range cases {
		if c.Error() != want {
			t.Fatalf("code %q mismatch: got %q", want, c.Error())
		}
	}
}

func TestOf(t *testing.T) {
	if got := Of(nil); got != OK {
		t.Fatalf("Of(nil)=%q", got)
	}
	if got := Of(Locked); got != Locked {
		t.Fatalf("Of(Locked)=%q", got)
	}
	if got := Of(New(OutOfRange, "set_slwf", "4")); got != OutOfRange {
		t.Fatalf("Of(*E)=%q", got)
	}
	if got := Of(errors.New("boom")); got != Error {
		t.Fatalf("Of(plain)=%q", got)
	}
}

func TestIndexKeepsCodeAndCause(t *testing.T) {
	cause := New(InvalidFunc, "set_func", "uartd")
	err := Index("config_pingrp_table", 3, cause)

	if Of(err) != InvalidFunc {
		t.Fatalf("code lost: %v", err)
	}
	if !errors.Is(err, InvalidFunc) {
		t.Fatalf("errors.Is did not match bare code: %v", err)
	}
	var e *E
	if !errors.As(err, &e) || e.Msg != "entry 3" {
		t.Fatalf("unexpected wrapper: %#v", e)
	}
	if !errors.Is(fmt.Errorf("outer: %w", err), cause) {
		t.Fatalf("cause not reachable through wrapping")
	}
	want := "config_pingrp_table: entry 3: set_func: invalid_func: uartd"
	if err.Error() != want {
		t.Fatalf("Error()=%q want %q", err.Error(), want)
	}
}

func TestErrorNamesCodeOnce(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"bare", New(Locked, "set_func", "0x3000"), "set_func: locked: 0x3000"},
		{"plain cause", &E{C: Error, Op: "mmio_map", Msg: "0x70000000+4096", Err: errors.New("permission denied")},
			"mmio_map: error: 0x70000000+4096: permission denied"},
		{"bare code cause", &E{C: Unsupported, Op: "mmio_map", Err: Unsupported}, "mmio_map: unsupported"},
		{"different code cause", &E{C: InvalidParams, Op: "parse", Err: New(OutOfRange, "level", "7")},
			"parse: invalid_params: level: out_of_range: 7"},
		{"nested index", Index("apply", 1, Index("config_pingrp_table", 2, New(InvalidPinGroup, "config_pingrp", "999"))),
			"apply: entry 1: config_pingrp_table: entry 2: config_pingrp: invalid_pin_group: 999"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Fatalf("Error()=%q want %q", got, tt.want)
			}
		})
	}
}
