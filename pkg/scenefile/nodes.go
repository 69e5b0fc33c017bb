package scenefile

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/chewxy/sexp"
)

// S-expression navigation helpers

// listItems converts an s-expression list to a Go slice.
func listItems(s sexp.Sexp) []sexp.Sexp {
	var items []sexp.Sexp
	for s != nil && !s.IsLeaf() && s.LeafCount() > 0 {
		head := s.Head()
		if head == nil {
			break
		}
		items = append(items, head)
		s = s.Tail()
	}
	return items
}

// atom returns the text of a leaf, without surrounding quotes.
func atom(s sexp.Sexp) (string, bool) {
	if s == nil || !s.IsLeaf() {
		return "", false
	}
	return strings.Trim(fmt.Sprint(s), `"`), true
}

// keyOf returns the leading symbol of a list such as (at 1 2).
func keyOf(s sexp.Sexp) string {
	items := listItems(s)
	if len(items) == 0 {
		return ""
	}
	key, _ := atom(items[0])
	return key
}

// findNode returns the first child list of s whose key matches.
func findNode(s sexp.Sexp, key string) (sexp.Sexp, bool) {
	for _, item := range listItems(s) {
		if item != nil && !item.IsLeaf() && keyOf(item) == key {
			return item, true
		}
	}
	return nil, false
}

// findAllNodes returns every child list of s whose key matches.
func findAllNodes(s sexp.Sexp, key string) []sexp.Sexp {
	var out []sexp.Sexp
	for _, item := range listItems(s) {
		if item != nil && !item.IsLeaf() && keyOf(item) == key {
			out = append(out, item)
		}
	}
	return out
}

// values returns the atoms following the key of a list.
func values(s sexp.Sexp) ([]string, error) {
	items := listItems(s)
	if len(items) == 0 {
		return nil, fmt.Errorf("expected list")
	}
	out := make([]string, 0, len(items)-1)
	for i, item := range items[1:] {
		v, ok := atom(item)
		if !ok {
			return nil, fmt.Errorf("(%s): expected atom at index %d", keyOf(s), i+1)
		}
		out = append(out, v)
	}
	return out, nil
}

// stringField reads (key value) from the children of s.
func stringField(s sexp.Sexp, key string) (string, error) {
	node, ok := findNode(s, key)
	if !ok {
		return "", fmt.Errorf("missing (%s)", key)
	}
	vals, err := values(node)
	if err != nil {
		return "", err
	}
	if len(vals) != 1 {
		return "", fmt.Errorf("(%s): want 1 value, got %d", key, len(vals))
	}
	return vals[0], nil
}

// floatsField reads (key a b ...) with exactly n numeric values.
func floatsField(s sexp.Sexp, key string, n int) ([]float64, error) {
	node, ok := findNode(s, key)
	if !ok {
		return nil, fmt.Errorf("missing (%s)", key)
	}
	vals, err := values(node)
	if err != nil {
		return nil, err
	}
	if len(vals) != n {
		return nil, fmt.Errorf("(%s): want %d values, got %d", key, n, len(vals))
	}
	out := make([]float64, n)
	for i, v := range vals {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("(%s): failed to parse float %q: %w", key, v, err)
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("(%s): %q is not a finite number", key, v)
		}
		out[i] = f
	}
	return out, nil
}

// intField reads (key n).
func intField(s sexp.Sexp, key string) (int, error) {
	str, err := stringField(s, key)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(str)
	if err != nil {
		return 0, fmt.Errorf("(%s): failed to parse int %q: %w", key, str, err)
	}
	return v, nil
}

// boolField reads (key yes|no); a missing node yields def.
func boolField(s sexp.Sexp, key string, def bool) (bool, error) {
	if _, ok := findNode(s, key); !ok {
		return def, nil
	}
	str, err := stringField(s, key)
	if err != nil {
		return false, err
	}
	switch str {
	case "yes":
		return true, nil
	case "no":
		return false, nil
	}
	return false, fmt.Errorf("(%s): want yes or no, got %q", key, str)
}
