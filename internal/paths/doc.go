// Package paths resolves where the validation CLI looks for its
// configuration, following the XDG base directory layout via
// github.com/adrg/xdg.
package paths
