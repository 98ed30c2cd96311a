//go:build !unix

package stack

func unameInfo() (sysname, release, machine string) {
	return fallbackUname()
}
