package entity

import "sort"

// Code is a stored snippet addressed by its key.
type Code struct {
	Key     string `json:"key" yaml:"key"`
	Content string `json:"content" yaml:"content"`
}

func NewCode(key, content string) Code {
	return Code{Key: key, Content: content}
}

type Codes []Code

// Keys returns the keys in server order.
func (c Codes) Keys() []string {
	keys := make([]string, len(c))
	for i, code := range c {
		keys[i] = code.Key
	}

	return keys
}

func (c Codes) Find(key string) (Code, bool) {
	for _, code := range c {
		if code.Key == key {
			return code, true
		}
	}

	return Code{}, false
}

// Sorted returns a copy ordered by key.
func (c Codes) Sorted() Codes {
	sorted := make(Codes, len(c))
	copy(sorted, c)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Key < sorted[j].Key
	})

	return sorted
}
