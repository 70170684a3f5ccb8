//go:build !windows

package main_test

import (
	"os"
	"testing"

	"fortio.org/testscript"
	main "kalc.io/kalc"
)

func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"kalc": main.Main,
	}))
}

func TestKalcCli(t *testing.T) {
	testscript.Run(t, testscript.Params{Dir: "./"})
}
