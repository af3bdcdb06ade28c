package display

import (
	"fmt"
	"io"

	"github.com/backmassage/assetnamer/internal/term"
)

const banner = `   __ _ ___ ___  ___| |_ _ __   __ _ _ __ ___   ___ _ __
  / _` + "`" + ` / __/ __|/ _ \ __| '_ \ / _` + "`" + ` | '_ ` + "`" + ` _ \ / _ \ '__|
 | (_| \__ \__ \  __/ |_| | | | (_| | | | | | |  __/ |
  \__,_|___/___/\___|\__|_| |_|\__,_|_| |_| |_|\___|_|
`

// PrintBanner writes the ASCII art banner to w; Magenta when colors are enabled.
func PrintBanner(w io.Writer) {
	fmt.Fprint(w, term.Paint(term.Magenta, banner))
	if term.Enabled() {
		fmt.Fprintln(w)
	}
}
