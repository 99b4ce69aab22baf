// Package assert checks internal invariants of the division engine.
//
// A failed check is a bug in ctnum, not a condition the caller can handle, so
// it panics with a *Violation instead of returning an error. Returning a
// wrong quotient silently would be worse than crashing.
//
// Checks must only be used on conditions that hold for every correct input;
// the branch is then never taken and leaks nothing about the operands.
package assert

// Copyright (c) 2017 Blake Williams <code@shabbyrobe.org>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

import (
	"fmt"
	"path/filepath"
	"runtime"
)

// frameDepth is the number of frames to strip off the callstack when reporting the line
// where a violation occurred.
const frameDepth = 2

// Violation is the panic value raised by a failed check.
type Violation struct {
	File string
	Line int
	Msg  string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("ctnum: invariant violated at %s:%d: %s", v.File, v.Line, v.Msg)
}

// True panics if the condition is false.
func True(condition bool, msg string, v ...interface{}) {
	if !condition {
		fail(fmt.Sprintf(msg, v...))
	}
}

// Zero panics if w is nonzero. It is used for carries and borrows that the
// algorithm guarantees can't happen.
func Zero(w uint64, what string) {
	if w != 0 {
		fail(fmt.Sprintf("%s: expected 0, found %d", what, w))
	}
}

// EqualInt panics if exp != act.
func EqualInt(exp, act int, what string) {
	if exp != act {
		fail(fmt.Sprintf("%s: expected %d, found %d", what, exp, act))
	}
}

func fail(msg string) {
	_, file, line, _ := runtime.Caller(frameDepth)
	panic(&Violation{File: filepath.Base(file), Line: line, Msg: msg})
}
