package dom

import "strings"

// ClassList manipulates the class attribute of an element, mirroring the
// browser's DOMTokenList.
type ClassList struct {
	el *Element
}

// Values returns the class tokens in attribute order.
func (c ClassList) Values() []string {
	raw, _ := c.el.Attr("class")
	return strings.Fields(raw)
}

// Contains reports whether every name is present.
func (c ClassList) Contains(names ...string) bool {
	if len(names) == 0 {
		return false
	}
	have := c.Values()
	for _, name := range names {
		found := false
		for _, token := range have {
			if token == name {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Add appends missing names.
func (c ClassList) Add(names ...string) {
	tokens := c.Values()
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || containsToken(tokens, name) {
			continue
		}
		tokens = append(tokens, name)
	}
	c.set(tokens)
}

// Remove deletes names when present.
func (c ClassList) Remove(names ...string) {
	tokens := c.Values()
	out := tokens[:0]
	for _, token := range tokens {
		if containsToken(names, token) {
			continue
		}
		out = append(out, token)
	}
	c.set(out)
}

// Toggle flips name and returns whether it is present afterwards.
func (c ClassList) Toggle(name string) bool {
	if c.Contains(name) {
		c.Remove(name)
		return false
	}
	c.Add(name)
	return true
}

func (c ClassList) set(tokens []string) {
	if c.el == nil {
		return
	}
	if len(tokens) == 0 {
		c.el.RemoveAttr("class")
		return
	}
	c.el.SetAttr("class", strings.Join(tokens, " "))
}

func containsToken(tokens []string, name string) bool {
	for _, token := range tokens {
		if token == name {
			return true
		}
	}
	return false
}
