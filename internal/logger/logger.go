// Copyright (C) 2014 Jakob Borg. All rights reserved. Use of this source code
// is governed by an MIT-style license that can be found in the LICENSE file.

// Package logger implements a small leveled logger in the style the
// teacher codebase uses for its own binaries: a thin wrapper around the
// standard library's log.Logger, with per-facility debug toggles instead
// of a generic structured-logging façade.
package logger

import (
	"fmt"
	"log"
	"os"
	"sync"
)

// LogLevel identifies the severity of a message.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
)

// Handler receives every message at exactly the level it was registered for.
type Handler func(l LogLevel, msg string)

// Recorder is the logging interface; *Logger and *Facility below both
// implement it, so callers may supply any implementation.
type Recorder interface {
	Debugf(format string, args ...interface{})
	Debugln(args ...interface{})
	Infof(format string, args ...interface{})
	Infoln(args ...interface{})
	Warnf(format string, args ...interface{})
	Warnln(args ...interface{})
}

// logCore holds the state shared by a *Logger: output, handlers and the
// per-facility debug toggles.
type logCore struct {
	mut      sync.Mutex
	std      *log.Logger
	handlers map[LogLevel][]Handler
	debug    map[string]bool
}

// Logger is the concrete, process-wide logger type.
type Logger struct {
	core *logCore
}

// New creates a standalone logger writing to stderr. Most callers should
// use Default instead.
func New() *Logger {
	return newLogger(os.Stderr)
}

func newLogger(w interface{ Write([]byte) (int, error) }) *Logger {
	return &Logger{
		core: &logCore{
			std:      log.New(w, "", log.LstdFlags),
			handlers: make(map[LogLevel][]Handler),
			debug:    make(map[string]bool),
		},
	}
}

// Default is the process-wide logger, built once, mirroring the
// teacher's singleton-style shared services (cf. the Huffman codec in
// lib/huffman).
var Default = New()

func (l *Logger) SetFlags(flag int) { l.core.std.SetFlags(flag) }
func (l *Logger) SetPrefix(p string) { l.core.std.SetPrefix(p) }

// AddHandler registers h to be called for every message at exactly level.
func (l *Logger) AddHandler(level LogLevel, h Handler) {
	l.core.mut.Lock()
	defer l.core.mut.Unlock()
	l.core.handlers[level] = append(l.core.handlers[level], h)
}

// SetDebug toggles debug-level output for a named facility.
func (l *Logger) SetDebug(facility string, enabled bool) {
	l.core.mut.Lock()
	defer l.core.mut.Unlock()
	l.core.debug[facility] = enabled
}

func (l *Logger) isDebug(facility string) bool {
	l.core.mut.Lock()
	defer l.core.mut.Unlock()
	return l.core.debug[facility]
}

func (l *Logger) log(level LogLevel, msg string) {
	l.core.std.Output(3, msg)
	l.core.mut.Lock()
	hs := append([]Handler(nil), l.core.handlers[level]...)
	l.core.mut.Unlock()
	for _, h := range hs {
		h(level, msg)
	}
}

func (l *Logger) Debugf(format string, args ...interface{}) { l.log(LevelDebug, fmt.Sprintf(format, args...)) }
func (l *Logger) Debugln(args ...interface{})                { l.log(LevelDebug, fmt.Sprintln(args...)) }
func (l *Logger) Infof(format string, args ...interface{})  { l.log(LevelInfo, fmt.Sprintf(format, args...)) }
func (l *Logger) Infoln(args ...interface{})                 { l.log(LevelInfo, fmt.Sprintln(args...)) }
func (l *Logger) Warnf(format string, args ...interface{})  { l.log(LevelWarn, fmt.Sprintf(format, args...)) }
func (l *Logger) Warnln(args ...interface{})                 { l.log(LevelWarn, fmt.Sprintln(args...)) }

// Facility is a logger bound to a name, used so lib/master, lib/query and
// lib/fanout can each be toggled independently via SetDebug.
type Facility struct {
	parent *Logger
	name   string
}

// NewFacility returns a Facility bound to name on the default logger.
func NewFacility(name string) *Facility {
	return &Facility{parent: Default, name: name}
}

func (f *Facility) Debugf(format string, args ...interface{}) {
	if f.parent.isDebug(f.name) {
		f.parent.Debugf("%s: "+format, append([]interface{}{f.name}, args...)...)
	}
}

func (f *Facility) Debugln(args ...interface{}) {
	if f.parent.isDebug(f.name) {
		f.parent.Debugln(append([]interface{}{f.name + ":"}, args...)...)
	}
}

func (f *Facility) Infof(format string, args ...interface{}) { f.parent.Infof(format, args...) }
func (f *Facility) Infoln(args ...interface{})                { f.parent.Infoln(args...) }
func (f *Facility) Warnf(format string, args ...interface{}) { f.parent.Warnf(format, args...) }
func (f *Facility) Warnln(args ...interface{})                { f.parent.Warnln(args...) }
