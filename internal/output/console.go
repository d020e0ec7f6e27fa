package output

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/daryltucker/rectcalc/internal/model"
)

var emphasis = color.New(color.Bold, color.FgCyan).SprintFunc()

// FormatBlock renders a result as the multi-line console block:
//
//	nameless
//	    length = 355
//	    width = 263
//	    perimeter = 2 * (355 + 263) = 1236.0
//	    area = 355 * 263 = 93365.0
func FormatBlock(res model.Result, source string) string {
	var b strings.Builder
	b.WriteString(emphasis(source))
	fmt.Fprintf(&b, "\n    length = %s", res.Length)
	fmt.Fprintf(&b, "\n    width = %s", res.Width)
	if res.Perimeter.IsValid() {
		fmt.Fprintf(&b, "\n    perimeter = 2 * (%s + %s) = %s", res.Length, res.Width, res.Perimeter.Decimal())
	} else {
		b.WriteString("\n    perimeter = null")
	}
	if res.Area.IsValid() {
		fmt.Fprintf(&b, "\n    area = %s * %s = %s", res.Length, res.Width, res.Area.Decimal())
	} else {
		b.WriteString("\n    area = null")
	}
	return b.String()
}
