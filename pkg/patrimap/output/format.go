package output

import (
	"fmt"
	"strings"
)

// Percent formats a canonical percentage with two decimals, e.g. "45.50%".
func Percent(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}

var mdEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"[", `\[`,
	"]", `\]`,
	"#", `\#`,
	"<", `\<`,
	">", `\>`,
	"|", `\|`,
)

// escapeMarkdown keeps spreadsheet text from being read as markup.
func escapeMarkdown(s string) string {
	return mdEscaper.Replace(s)
}
