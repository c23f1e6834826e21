package internal

import (
	"runtime"
	"strings"
)

const modulePath = "github.com/zhamlin/pathroute"

// inPackage reports whether the function name belongs to this module.
// The examples module nested under it counts as a caller.
func inPackage(fnName string) bool {
	rest, ok := strings.CutPrefix(fnName, modulePath)
	if !ok {
		return false
	}

	if rest, ok = strings.CutPrefix(rest, "/"); ok {
		return rest != "examples" && !strings.HasPrefix(rest, "examples/") &&
			!strings.HasPrefix(rest, "examples.")
	}
	return strings.HasPrefix(rest, ".")
}

type CallerInfo struct {
	File string
	Line int
}

func (c CallerInfo) IsZero() bool {
	return c.File == "" && c.Line == 0
}

// GetCaller returns the first caller outside of this module, skipping
// skip frames. Frames from test files inside the module count as
// callers.
func GetCaller(skip int) CallerInfo {
	const maxChecks = 10

	// skip this func
	skip++

	for i := range maxChecks {
		pc, file, line, ok := runtime.Caller(skip + i)
		if !ok {
			continue
		}

		fn := runtime.FuncForPC(pc)
		if fn == nil {
			continue
		}

		inPackge := inPackage(fn.Name())
		inLocalTestFile := inPackge && strings.Contains(file, "_test")

		foundCaller := !inPackge || inLocalTestFile
		if foundCaller {
			return CallerInfo{
				File: file,
				Line: line,
			}
		}
	}

	return CallerInfo{}
}
