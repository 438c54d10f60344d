package dom

import "strings"

// Matcher selects elements during Find/FindAll/Closest.
type Matcher func(*Element) bool

// HasClass matches elements carrying every class name (".a.b").
func HasClass(names ...string) Matcher {
	return func(el *Element) bool {
		return el.ClassList().Contains(names...)
	}
}

// HasTag matches elements by tag name.
func HasTag(tag string) Matcher {
	tag = strings.ToLower(tag)
	return func(el *Element) bool {
		return el.Tag() == tag
	}
}

// HasAttr matches elements with the attribute set to value.
func HasAttr(name, value string) Matcher {
	return func(el *Element) bool {
		v, ok := el.Attr(name)
		return ok && v == value
	}
}

// All combines matchers with logical AND.
func All(matchers ...Matcher) Matcher {
	return func(el *Element) bool {
		for _, m := range matchers {
			if !m(el) {
				return false
			}
		}
		return true
	}
}
