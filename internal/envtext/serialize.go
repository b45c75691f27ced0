package envtext

import "strings"

// Renderer builds env text from variables, writing a section header each
// time the section differs from the previously written variable's.
type Renderer struct {
	b       strings.Builder
	prev    string
	written bool
}

// WriteRaw appends text verbatim.
func (r *Renderer) WriteRaw(s string) {
	r.b.WriteString(s)
}

// Write appends v as a key=value line, preceded by a header when its
// section changes. A variable without a section never gets a header.
func (r *Renderer) Write(v Variable) {
	if v.HasSection() && (!r.written || v.Section != r.prev) {
		if r.b.Len() > 0 {
			r.b.WriteString("\n")
		}
		r.b.WriteString(Header(v.Section))
		r.b.WriteString("\n")
	}
	r.b.WriteString(v.Key)
	r.b.WriteString("=")
	r.b.WriteString(v.Value)
	r.b.WriteString("\n")

	r.prev = v.Section
	r.written = true
}

func (r *Renderer) String() string {
	return r.b.String()
}

// Serialize renders vars as env text. Duplicate keys are all written.
func Serialize(vars []Variable) string {
	var r Renderer
	for _, v := range vars {
		r.Write(v)
	}
	return r.String()
}
