// Package mmio maps the APB_MISC pinmux window through /dev/mem.
package mmio
