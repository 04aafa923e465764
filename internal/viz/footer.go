package viz

import "strings"

type Link struct {
	Label string
	Title string
	URL   string
}

var FooterLines = []string{
	"Welcome to the r/longrange TOP Gun calculator.",
	"This calculator is based on the TOP (Theory of Precision) Gun formula published by Applied Ballistics in Modern Advancements in Long Range Shooting, Vol 3.",
	"This tool is provided for free by the moderator team of r/Longrange to help answer shooter questions and manage expectations for the precision (group size) of a given rifle.",
	"Results from this tool are an estimate only, and rely on the use of a rifle and optic in good condition with no mechanical issues (scope problems, loose screws, etc) and commercial match grade ammo or comparable hand loads.",
}

var FooterLinks = []Link{
	{Label: "Community", Title: "reddit/r/longrange", URL: "https://reddit.com/r/longrange"},
	{Label: "Original", Title: "TOP Gun Calculator Spreadsheet", URL: "https://docs.google.com/spreadsheets/d/1S0DMLcmj-Jvag5NwKrVAQUR2eOwpWTozy28jTVe998g/"},
}

// Hyperlink wraps text in an OSC 8 escape so supporting terminals make it
// clickable.
func Hyperlink(text, url string) string {
	return "\x1b]8;;" + url + "\x1b\\" + text + "\x1b]8;;\x1b\\"
}

// Footer renders the credits wrapped to width. Links are emitted as OSC 8
// hyperlinks when links is set, otherwise as "title <url>".
func Footer(width int, st Styles, links bool) string {
	var b strings.Builder
	for _, line := range FooterLines {
		for _, l := range Wrap(line, width) {
			b.WriteString(st.Dim.Render(l) + "\n")
		}
	}
	parts := make([]string, len(FooterLinks))
	for i, l := range FooterLinks {
		text := l.Title + " <" + l.URL + ">"
		if links {
			text = Hyperlink(l.Title, l.URL)
		}
		parts[i] = st.Muted.Render(l.Label+":") + " " + st.Link.Render(text)
	}
	b.WriteString(strings.Join(parts, st.Dim.Render("  |  ")))
	return b.String()
}

// Wrap breaks s on spaces so no line exceeds width runes where possible.
func Wrap(s string, width int) []string {
	if width <= 0 {
		return []string{s}
	}
	var lines []string
	var cur strings.Builder
	curLen := 0
	for _, word := range strings.Fields(s) {
		n := len([]rune(word))
		if curLen > 0 && curLen+1+n > width {
			lines = append(lines, cur.String())
			cur.Reset()
			curLen = 0
		}
		if curLen > 0 {
			cur.WriteByte(' ')
			curLen++
		}
		cur.WriteString(word)
		curLen += n
	}
	if curLen > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}
