// Package baremetal accesses the pinmux registers directly, for TinyGo
// firmware running without an operating system.
package baremetal
