package render

import "strings"

// PlainText flattens the document to the text a clipboard copy of the
// rendered container would produce.
func (d Document) PlainText() string {
	var b strings.Builder

	b.WriteString(d.Header.Name + "\n")
	b.WriteString(d.Header.Title + "\n")
	for _, c := range d.Header.Contact {
		b.WriteString(c + "\n")
	}

	for _, sec := range d.Sections {
		b.WriteString("\n" + sec.Title + "\n")

		if len(sec.Inline) > 0 {
			b.WriteString(strings.Join(sec.Inline, "  ") + "\n")
		}
		for _, p := range sec.Paragraphs {
			b.WriteString(p + "\n")
		}
		for _, item := range sec.Items {
			if item.Heading != "" {
				b.WriteString(item.Heading + "\n")
			}
			if item.Subheading != "" {
				b.WriteString(item.Subheading + "\n")
			}
			if item.Meta != "" {
				b.WriteString(item.Meta + "\n")
			}
			for _, l := range item.Lines {
				b.WriteString(l + "\n")
			}
			for _, bl := range item.Bullets {
				b.WriteString("- " + bl + "\n")
			}
		}
	}

	return b.String()
}
