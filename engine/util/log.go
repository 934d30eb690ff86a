package util

import (
	"fmt"
	"io"
	"os"
)

var GLOBAL_LOG_LEVEL = LogLevelInfo
var GLOBAL_LOG_CATEGORIES = LogTileMap | LogPathfinding | LogCollision | LogView | LogVoxel | LogSystem

var logOutput io.Writer = os.Stderr

type LogLevel int

const (
	LogLevelError LogLevel = 1 << iota
	LogLevelWarning
	LogLevelInfo
	LogLevelDebug
)

type LogCategory int

const (
	LogTileMap LogCategory = 1 << iota
	LogPathfinding
	LogCollision
	LogView
	LogVoxel
	LogSystem
)

// SetLogOutput redirects all log lines and returns the previous writer.
func SetLogOutput(w io.Writer) io.Writer {
	previous := logOutput
	logOutput = w
	return previous
}

func log(cat LogCategory, lvl LogLevel, txt string) {
	if lvl > GLOBAL_LOG_LEVEL {
		return
	}
	if GLOBAL_LOG_CATEGORIES&cat == 0 {
		return
	}
	fmt.Fprintln(logOutput, txt)
}

func LogMapInfo(txt string) {
	log(LogTileMap, LogLevelInfo, txt)
}

func LogMapDebug(txt string) {
	log(LogTileMap, LogLevelDebug, txt)
}

func LogMapWarning(txt string) {
	log(LogTileMap, LogLevelWarning, txt)
}

func LogMapError(txt string) {
	log(LogTileMap, LogLevelError, txt)
}

func LogPathDebug(txt string) {
	log(LogPathfinding, LogLevelDebug, txt)
}

func LogPathWarning(txt string) {
	log(LogPathfinding, LogLevelWarning, txt)
}

func LogCollisionDebug(txt string) {
	log(LogCollision, LogLevelDebug, txt)
}

func LogViewDebug(txt string) {
	log(LogView, LogLevelDebug, txt)
}

func LogViewError(txt string) {
	log(LogView, LogLevelError, txt)
}

func LogVoxelError(txt string) {
	log(LogVoxel, LogLevelError, txt)
}

func LogSystemInfo(txt string) {
	log(LogSystem, LogLevelInfo, txt)
}
