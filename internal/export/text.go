// Package export packages the rendered document for download. Exports
// read the document only; they never mutate the resume or the preview
// state, and always operate at zoom 1.
package export

import (
	"strings"

	"resume-builder/internal/render"
)

// TextFile is a downloadable plain-text packaging of the rendered
// container.
type TextFile struct {
	Filename string
	Content  []byte
}

func PlainText(doc render.Document, fullName string) TextFile {
	return TextFile{
		Filename: TextFilename(fullName),
		Content:  []byte(doc.PlainText()),
	}
}

// TextFilename mirrors the original download name:
// "{FullName with spaces underscored}_Resume.txt".
func TextFilename(fullName string) string {
	name := strings.TrimSpace(fullName)
	if name == "" {
		name = "resume"
	}
	name = strings.Join(strings.Fields(name), "_")
	return name + "_Resume.txt"
}
