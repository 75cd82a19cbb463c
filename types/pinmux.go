package types

// ------------------------
// Pinmux configuration document
// ------------------------

// PinmuxConfig is the JSON form of a board's pinmux tables. Group and
// function names use the device-tree spelling ("sdmmc1_clk_pz0", "sdmmc1").
type PinmuxConfig struct {
	SoC         string            `json:"soc"`             // e.g. "tegra124"
	Board       string            `json:"board,omitempty"` // informational
	PinGroups   []PinGroupEntry   `json:"pingroups"`
	DriveGroups []DriveGroupEntry `json:"drivegroups,omitempty"`
}

// PinGroupEntry is one pin-group record. Empty strings mean "leave alone"
// except for Pull, where empty means no pull.
type PinGroupEntry struct {
	Group    string `json:"group"`
	Function string `json:"function,omitempty"`
	Pull     string `json:"pull,omitempty"`    // "none","up","down"
	Tristate bool   `json:"tristate"`          // true => tristated
	IO       string `json:"io,omitempty"`      // "input","output"
	Lock     string `json:"lock,omitempty"`    // "enable","disable"
	OD       string `json:"od,omitempty"`      // "enable","disable"
	IOReset  string `json:"ioreset,omitempty"` // "enable","disable"
	RcvSel   string `json:"rcv_sel,omitempty"` // "normal","high"
}

// DriveGroupEntry is one drive-group record. Absent fields are left alone.
type DriveGroupEntry struct {
	Group       string `json:"group"`
	SlewFalling *int   `json:"slew_falling,omitempty"` // 0..3
	SlewRising  *int   `json:"slew_rising,omitempty"`  // 0..3
	DriveUp     *int   `json:"drive_up,omitempty"`     // 0..127
	DriveDown   *int   `json:"drive_down,omitempty"`   // 0..127
	LPMD        string `json:"lpmd,omitempty"`         // "x8","x4","x2","x"
	Schmitt     string `json:"schmitt,omitempty"`      // "enable","disable"
	HSM         string `json:"hsm,omitempty"`          // "enable","disable"
}
