package envtext

// Variable is one assignment from an env document.
type Variable struct {
	Key   string
	Value string

	// Section is the name of the nearest header above the assignment.
	// Empty when no header has been seen yet.
	Section string
}

// HasSection reports whether the variable appeared under a section header.
func (v Variable) HasSection() bool {
	return v.Section != ""
}

// Sections returns the distinct section names in order of first appearance.
func Sections(vars []Variable) []string {
	seen := make(map[string]bool)
	var names []string
	for _, v := range vars {
		if !v.HasSection() || seen[v.Section] {
			continue
		}
		seen[v.Section] = true
		names = append(names, v.Section)
	}
	return names
}

// Keys returns the distinct keys in order of first appearance.
func Keys(vars []Variable) []string {
	seen := make(map[string]bool)
	var keys []string
	for _, v := range vars {
		if seen[v.Key] {
			continue
		}
		seen[v.Key] = true
		keys = append(keys, v.Key)
	}
	return keys
}

// InSection returns the variables belonging to the named section.
func InSection(vars []Variable, name string) []Variable {
	var out []Variable
	for _, v := range vars {
		if v.HasSection() && v.Section == name {
			out = append(out, v)
		}
	}
	return out
}

// WithKeys returns the variables whose key is one of keys, in document order.
func WithKeys(vars []Variable, keys ...string) []Variable {
	wanted := make(map[string]bool, len(keys))
	for _, k := range keys {
		wanted[k] = true
	}

	var out []Variable
	for _, v := range vars {
		if wanted[v.Key] {
			out = append(out, v)
		}
	}
	return out
}

// ToMap flattens vars into a key/value map. Later duplicates win.
func ToMap(vars []Variable) map[string]string {
	m := make(map[string]string, len(vars))
	for _, v := range vars {
		m[v.Key] = v.Value
	}
	return m
}
