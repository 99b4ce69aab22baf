package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(append([]string{"--log-level=error"}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestQuoRemCommand(t *testing.T) {
	for _, tc := range []struct {
		args []string
		out  string
	}{
		{[]string{"quorem", "--euclid=false", "--base=10", "--", "-7", "2"}, "-3\n-1\n"},
		{[]string{"quorem", "--euclid=true", "--base=10", "--", "-7", "2"}, "-4\n1\n"},
		{[]string{"quorem", "--euclid=false", "--base=16", "0x100", "0x10"}, "0x10\n0x0\n"},
	} {
		t.Run(strings.Join(tc.args, " "), func(t *testing.T) {
			tt := assert.WrapTB(t)
			out, err := execute(t, tc.args...)
			tt.MustOK(err)
			tt.MustEqual(tc.out, out)
		})
	}
}

func TestQuoRemCommandErrors(t *testing.T) {
	tt := assert.WrapTB(t)

	_, err := execute(t, "quorem", "--euclid=false", "--base=10", "1", "0")
	tt.MustAssert(err != nil)

	_, err = execute(t, "quorem", "--euclid=false", "--base=7", "1", "1")
	tt.MustAssert(err != nil)

	_, err = execute(t, "quorem", "--euclid=false", "--base=10", "zz", "1")
	tt.MustAssert(err != nil)
}

func TestTraceCommand(t *testing.T) {
	tt := assert.WrapTB(t)
	out, err := execute(t, "trace", "--pad=4", "--dump=true", "0x1000000000000000000000000", "3")
	tt.MustOK(err)
	tt.MustAssert(strings.Contains(out, "Digits"), out)
}

func TestFuzzCommand(t *testing.T) {
	tt := assert.WrapTB(t)
	dir := t.TempDir()

	var files []string
	for i, in := range [][]byte{
		{},
		{7, 2},
		{1, 0},
		{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x80, 0, 0, 0, 0, 0, 0, 0, 1},
	} {
		file := filepath.Join(dir, string(rune('a'+i)))
		tt.MustOK(os.WriteFile(file, in, 0o600))
		files = append(files, file)
	}

	_, err := execute(t, append([]string{"fuzz", "--max-bytes=1024"}, files...)...)
	tt.MustOK(err)
}

func TestCheckQuoRemBytes(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustOK(checkQuoRemBytes([]byte{100}, []byte{7}))
	tt.MustOK(checkQuoRemBytes([]byte{100}, []byte{0}))
	tt.MustOK(checkQuoRemBytes(nil, nil))
	tt.MustOK(checkQuoRemBytes([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9}, []byte{0, 0, 1}))
}

func TestSplitInputOddLength(t *testing.T) {
	tt := assert.WrapTB(t)
	xb, yb := splitInput([]byte{0x10, 0x00, 0x01})
	tt.MustEqual([]byte{0x10}, xb)
	tt.MustEqual([]byte{0x00}, yb)

	// y reads as 0, so this is a division by zero, which the check accepts.
	tt.MustOK(checkQuoRemBytes(xb, yb))

	xb, yb = splitInput([]byte{7, 2})
	tt.MustEqual([]byte{7}, xb)
	tt.MustEqual([]byte{2}, yb)
}
