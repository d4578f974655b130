// Copyright (c) 2013 Kyle Isom <kyle@tyrfingr.is>
// Copyright (c) 2012 The Go Authors. All rights reserved.
//
// Redistribution and use in source and binary forms, with or without
// modification, are permitted provided that the following conditions are
// met:
//
//    * Redistributions of source code must retain the above copyright
// notice, this list of conditions and the following disclaimer.
//    * Redistributions in binary form must reproduce the above
// copyright notice, this list of conditions and the following disclaimer
// in the documentation and/or other materials provided with the
// distribution.
//    * Neither the name of Google Inc. nor the names of its
// contributors may be used to endorse or promote products derived from
// this software without specific prior written permission.
//
// THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
// "AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
// LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
// A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
// OWNER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
// SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
// LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
// DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
// THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
// (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
// OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

// Package log is a minimal structured, leveled logger for the
// ecies-tool command. Output goes to a colorized terminal format when
// stderr is a TTY and to a plain key=value format otherwise.
package log

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/go-stack/stack"
	"github.com/mattn/go-colorable"
	isatty "github.com/mattn/go-isatty"
)

// Level is a log severity.
type Level int

const (
	LvlError Level = iota
	LvlWarn
	LvlInfo
	LvlDebug
)

var levelNames = map[Level]string{
	LvlError: "ERROR",
	LvlWarn:  "WARN",
	LvlInfo:  "INFO",
	LvlDebug: "DEBUG",
}

var levelColors = map[Level]*color.Color{
	LvlError: color.New(color.FgRed, color.Bold),
	LvlWarn:  color.New(color.FgYellow),
	LvlInfo:  color.New(color.FgGreen),
	LvlDebug: color.New(color.FgCyan),
}

// Logger writes leveled records with caller context to an output stream.
type Logger struct {
	mu       sync.Mutex
	out      io.Writer
	term     bool
	minLevel Level
}

// Root is the package-level default logger, writing to os.Stderr.
var Root = New(os.Stderr)

// New builds a Logger around w, auto-detecting whether w is a terminal
// that supports ANSI color (via mattn/go-isatty) and wrapping it with
// mattn/go-colorable so color codes render correctly on Windows
// consoles too.
func New(w io.Writer) *Logger {
	term := false
	if f, ok := w.(*os.File); ok {
		term = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		if term {
			w = colorable.NewColorable(f)
		}
	}
	return &Logger{out: w, term: term, minLevel: LvlInfo}
}

// SetLevel sets the minimum level that will be emitted.
func (l *Logger) SetLevel(lvl Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.minLevel = lvl
}

func (l *Logger) log(lvl Level, msg string, ctx ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if lvl > l.minLevel {
		return
	}

	call := stack.Caller(2)
	ts := time.Now().Format("15:04:05.000")

	if l.term {
		c := levelColors[lvl]
		fmt.Fprintf(l.out, "%s %s %-28s %s", ts, c.Sprintf("%-5s", levelNames[lvl]), msg, formatCtx(ctx))
		fmt.Fprintf(l.out, " %s\n", color.New(color.Faint).Sprintf("caller=%+v", call))
		return
	}

	fmt.Fprintf(l.out, "t=%s lvl=%s msg=%q%s caller=%+v\n", ts, levelNames[lvl], msg, formatCtx(ctx), call)
}

func formatCtx(ctx []interface{}) string {
	s := ""
	for i := 0; i+1 < len(ctx); i += 2 {
		s += fmt.Sprintf(" %v=%v", ctx[i], ctx[i+1])
	}
	return s
}

func (l *Logger) Error(msg string, ctx ...interface{}) { l.log(LvlError, msg, ctx...) }
func (l *Logger) Warn(msg string, ctx ...interface{})  { l.log(LvlWarn, msg, ctx...) }
func (l *Logger) Info(msg string, ctx ...interface{})  { l.log(LvlInfo, msg, ctx...) }
func (l *Logger) Debug(msg string, ctx ...interface{}) { l.log(LvlDebug, msg, ctx...) }

func Error(msg string, ctx ...interface{}) { Root.log(LvlError, msg, ctx...) }
func Warn(msg string, ctx ...interface{})  { Root.log(LvlWarn, msg, ctx...) }
func Info(msg string, ctx ...interface{})  { Root.log(LvlInfo, msg, ctx...) }
func Debug(msg string, ctx ...interface{}) { Root.log(LvlDebug, msg, ctx...) }
