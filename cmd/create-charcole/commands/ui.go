package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/charcoles/charcole/cmd/create-charcole/generator"

	"github.com/charmbracelet/lipgloss"
)

var (
	brand   = lipgloss.Color("#F97316")
	success = lipgloss.Color("#22C55E")
	warning = lipgloss.Color("#EAB308")
	subtle  = lipgloss.Color("#6B7280")
)

var styles = struct {
	banner   lipgloss.Style
	question lipgloss.Style
	muted    lipgloss.Style
	ok       lipgloss.Style
	warn     lipgloss.Style
	heading  lipgloss.Style
	box      lipgloss.Style
	command  lipgloss.Style
}{
	banner:   lipgloss.NewStyle().Bold(true).Foreground(brand),
	question: lipgloss.NewStyle().Bold(true).Foreground(brand),
	muted:    lipgloss.NewStyle().Foreground(subtle),
	ok:       lipgloss.NewStyle().Foreground(success),
	warn:     lipgloss.NewStyle().Foreground(warning),
	heading:  lipgloss.NewStyle().Bold(true),
	box:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(brand).Padding(0, 2),
	command:  lipgloss.NewStyle().Foreground(brand),
}

func printBanner(w io.Writer) {
	fmt.Fprintln(w, styles.banner.Render("create-charcole")+styles.muted.Render("  Express.js API scaffolding"))
	fmt.Fprintln(w)
}

func yesNo(b bool) string {
	if b {
		return styles.ok.Render("yes")
	}
	return styles.muted.Render("no")
}

func printSummary(w io.Writer, opts *generator.Options) {
	lang := "TypeScript"
	if opts.Language == "js" {
		lang = "JavaScript"
	}
	lines := []string{
		styles.heading.Render(opts.Name),
		fmt.Sprintf("Language  %s", lang),
		fmt.Sprintf("Auth      %s", yesNo(opts.Features.Auth)),
		fmt.Sprintf("Swagger   %s", yesNo(opts.Features.Swagger)),
	}
	fmt.Fprintln(w, styles.box.Render(strings.Join(lines, "\n")))
	fmt.Fprintln(w)
}

func printResult(w io.Writer, res *generator.Result) {
	fmt.Fprintln(w, styles.ok.Render("✔ Project created in "+res.Path))
	if len(res.Warnings) > 0 {
		fmt.Fprintln(w, styles.warn.Render(fmt.Sprintf("  %d step(s) finished with warnings, see the log above.", len(res.Warnings))))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, styles.heading.Render("Next steps"))
	fmt.Fprintln(w, "  "+styles.command.Render("cd "+res.Path))
	if !res.Installed {
		fmt.Fprintln(w, "  "+styles.command.Render(res.PackageManager+" install"))
	}
	fmt.Fprintln(w, "  "+styles.command.Render(runScript(res.PackageManager, "dev")))
	fmt.Fprintln(w)
}

func runScript(pm, script string) string {
	if pm == "npm" {
		return "npm run " + script
	}
	return pm + " " + script
}
