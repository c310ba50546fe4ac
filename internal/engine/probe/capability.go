package probe

import (
	"context"
	"fmt"
	"strings"

	"go.trai.ch/envkit/internal/core/ports"
)

// CheckLibWithHeaderExpr compiles and runs a program that includes headers,
// links libs and prints expr as an integer. It reports true only when the
// program runs and prints something other than 0.
func CheckLibWithHeaderExpr(ctx context.Context, cc ports.CheckContext, libs, headers []string, language, expr string) bool {
	lib := ""
	if len(libs) > 0 {
		lib = libs[0]
	}
	cc.Message(fmt.Sprintf("Checking for %s library %s... ", strings.ToUpper(language), lib))

	ok, out := cc.RunProg(ctx, checkSource(headers, expr), "."+language, libs)
	if !ok || strings.TrimSpace(out) == "0" {
		cc.Result(false)
		return false
	}
	cc.Result(true)
	return true
}

func checkSource(headers []string, expr string) string {
	var b strings.Builder
	b.WriteString("\n")
	for _, h := range append([]string{"stdio.h"}, headers...) {
		fmt.Fprintf(&b, "#include <%s>\n", h)
	}
	fmt.Fprintf(&b, "\nint main() {\n    printf(\"%%d\\n\", (int)(%s));\n    return 0;\n}\n", expr)
	return b.String()
}
