package utils

import (
	"fmt"
	"runtime"
	"strings"
)

// PanicTrace 拼接 panic 值和调用栈，skip 为需要跳过的栈帧数
func PanicTrace(err any, skip int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v\n", err)
	for i := skip; ; i++ {
		pc, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}
		fn := "?"
		if f := runtime.FuncForPC(pc); f != nil {
			fn = f.Name()
		}
		fmt.Fprintf(&b, "%s\n\t%s:%d\n", fn, file, line)
	}
	return b.String()
}
