package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog/log"
)

// printMarkdown renders md for the terminal and prints it. The raw markdown is
// printed when it cannot be rendered.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		log.Warn().Err(err).Msg("markdown renderer unavailable")
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		log.Warn().Err(err).Msg("rendering markdown")
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
