package output

import "fmt"

const bannerArt = `
  ___ _ __ ___   __| | |_   _
 / __| '_ ` + "`" + ` _ \ / _` + "`" + ` | | | | |
| (__| | | | | | (_| | | |_| |
 \___|_| |_| |_|\__,_|_|\__, |
                        |___/`

// Banner returns the styled welcome banner shown at startup and after the
// clear command.
func (p *Printer) Banner(version string) string {
	s := p.styles
	return s.Banner.Render(bannerArt) + "\n" +
		s.Muted.Render(fmt.Sprintf("cmdly v%s - type 'help' for commands, 'exit' to leave", version))
}
