// Copyright (c) 2026, svgmorph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx implements structured log handling and provides
// global log and print verbosity levels.
package logx

import (
	"fmt"
	"log/slog"
	"strings"
)

// UserLevel is the verbosity [slog.Level] that the user has selected,
// typically through a -v or -vv command line flag, or a log-level
// config option. It defaults to [slog.LevelInfo]. It is set in
// [SetDefaultLogger], which should be called whenever it changes.
var UserLevel = defaultUserLevel

// SetLevelFromString sets [UserLevel] from the given string,
// which must be one of debug, info, warn, or error
// (case insensitive). It calls [SetDefaultLogger].
func SetLevelFromString(level string) error {
	switch strings.ToLower(level) {
	case "debug":
		UserLevel = slog.LevelDebug
	case "info":
		UserLevel = slog.LevelInfo
	case "warn", "warning":
		UserLevel = slog.LevelWarn
	case "error":
		UserLevel = slog.LevelError
	default:
		return fmt.Errorf("logx: unknown log level %q", level)
	}
	SetDefaultLogger()
	return nil
}

// PrintDebug prints the given message to stdout if [UserLevel] is
// [slog.LevelDebug] or lower.
func PrintDebug(a ...any) {
	if UserLevel <= slog.LevelDebug {
		fmt.Println(a...)
	}
}

// PrintInfo prints the given message to stdout if [UserLevel] is
// [slog.LevelInfo] or lower.
func PrintInfo(a ...any) {
	if UserLevel <= slog.LevelInfo {
		fmt.Println(a...)
	}
}

// PrintfDebug formats and prints the given message to stdout if
// [UserLevel] is [slog.LevelDebug] or lower.
func PrintfDebug(format string, a ...any) {
	if UserLevel <= slog.LevelDebug {
		fmt.Printf(format, a...)
	}
}

// PrintfInfo formats and prints the given message to stdout if
// [UserLevel] is [slog.LevelInfo] or lower.
func PrintfInfo(format string, a ...any) {
	if UserLevel <= slog.LevelInfo {
		fmt.Printf(format, a...)
	}
}
