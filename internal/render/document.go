package render

// ContainerID identifies the rendered container so exports can address
// it without re-deriving the resume.
const ContainerID = "resume-preview"

// Document is the rendered tree: a header plus the ordered sections
// that survived the visibility rule. It is read-only once built.
type Document struct {
	Template TemplateID
	Header   Header
	Sections []Section
}

type Header struct {
	Name    string
	Title   string
	Contact []string
}

type Section struct {
	Title      string
	Paragraphs []string
	Inline     []string
	Items      []Item
}

// Item is one dated/bulleted entry inside a section. Lines are plain
// detail rows; Bullets render as a list.
type Item struct {
	Heading    string
	Subheading string
	Meta       string
	Lines      []string
	Bullets    []string
}
