package errcode

import "tegra-pinmux/x/conv"

// Code is a stable, machine-readable error identifier.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK                Code = "ok"
	Unsupported       Code = "unsupported"
	InvalidParams     Code = "invalid_params"
	InvalidPinGroup   Code = "invalid_pin_group"
	InvalidDriveGroup Code = "invalid_drive_group"
	InvalidFunc       Code = "invalid_func"
	OutOfRange        Code = "out_of_range"
	Locked            Code = "locked"
	UnknownSoC        Code = "unknown_soc"
	UnknownBoard      Code = "unknown_board"

	Error Code = "error" // generic fallback
)

// E keeps context and a cause alongside a Code.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

// Error renders "op: code: msg: cause". The code is left out when the
// cause already reports it, so wrapped chains name it once.
func (e *E) Error() string {
	var b []byte
	add := func(part string) {
		if part == "" {
			return
		}
		if len(b) > 0 {
			b = append(b, ": "...)
		}
		b = append(b, part...)
	}
	add(e.Op)
	if e.Err == nil || Of(e.Err) != e.C {
		add(string(e.C))
	}
	add(e.Msg)
	if e.Err != nil {
		add(e.Err.Error())
	}
	return string(b)
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Is lets errors.Is match an *E against its bare Code.
func (e *E) Is(target error) bool {
	c, ok := target.(Code)
	return ok && c == e.C
}

// New returns an *E for op with a formatted message.
func New(c Code, op, msg string) *E {
	return &E{C: c, Op: op, Msg: msg}
}

// Index wraps err with the position of the table entry that produced it.
// The code of err is preserved.
func Index(op string, i int, err error) error {
	return &E{C: Of(err), Op: op, Msg: "entry " + conv.Itoa(i), Err: err}
}

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	if x, ok := err.(coder); ok {
		return x.Code()
	}
	return Error
}
