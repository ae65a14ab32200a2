//go:build !linux

package entropy

func systemSource() Source { return Portable() }
