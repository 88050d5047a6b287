// Package catalog holds the fixed list of products that can be weighed.
package catalog

import "strings"

// AllProducts is the filter sentinel meaning "no product filter".
const AllProducts = "all"

type Entry struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

var entries = []Entry{
	{Key: "a", Name: "tomate"},
	{Key: "b", Name: "cebola"},
	{Key: "c", Name: "cenoura"},
	{Key: "d", Name: "melão"},
	{Key: "e", Name: "manga"},
	{Key: "f", Name: "abacate"},
	{Key: "g", Name: "beterraba"},
	{Key: "h", Name: "goiaba"},
	{Key: "i", Name: "chuchu"},
	{Key: "j", Name: "pepino"},
	{Key: "l", Name: "pocam"},
	{Key: "m", Name: "laranja"},
	{Key: "n", Name: "batata"},
	{Key: "o", Name: "repolho"},
	{Key: "p", Name: "coco"},
	{Key: "q", Name: "limão"},
	{Key: "r", Name: "maracujá"},
	{Key: "s", Name: "pêra"},
	{Key: "t", Name: "kiwí"},
}

// Entries returns a copy of the catalog in key order.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Names returns the product names in key order.
func Names() []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func Lookup(key string) (string, bool) {
	for _, e := range entries {
		if e.Key == key {
			return e.Name, true
		}
	}
	return "", false
}

func Contains(name string) bool {
	for _, e := range entries {
		if e.Name == name {
			return true
		}
	}
	return false
}

// Resolve accepts either a catalog key or a product name and returns the name.
func Resolve(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if name, ok := Lookup(s); ok {
		return name, true
	}
	if Contains(s) {
		return s, true
	}
	return "", false
}

// IsAll reports whether filter selects every product.
func IsAll(filter string) bool {
	f := strings.TrimSpace(filter)
	return f == "" || strings.EqualFold(f, AllProducts)
}
