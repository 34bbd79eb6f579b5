//go:build !release

package assert

const isEnabled = true
