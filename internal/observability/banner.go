package observability

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

const (
	colorReset    = "\033[0m"
	colorNeonCyan = "\033[96m"
)

func termWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 80
	}
	return w
}

func PrintBanner() {
	banner := `
 _    _____   ___    _   ______
| |  / /   | /   |  / | / /  _/
| | / / /| |/ /| | /  |/ // /
| |/ / ___ / ___ |/ /|  // /
|___/_/  |_/  |_/_/ |_/___/

     >> SPEAK AND BE HEARD <<
`

	width := termWidth()
	lines := strings.Split(banner, "\n")

	for _, l := range lines {
		padding := (width - len(l)) / 2
		if padding < 0 {
			padding = 0
		}
		fmt.Printf("%s%s%s\n", strings.Repeat(" ", padding), colorNeonCyan+l, colorReset)
	}
}
