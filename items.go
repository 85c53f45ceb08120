package yabel

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/exp/slices"
)

// Item is one decoded or constructed bencode value. The variant set is closed:
// String, Integer, List and Dictionary are the only implementations.
type Item interface {
	// AsString returns the byte string if the item is a byte string.
	AsString() (String, bool)
	// AsInteger returns the integer if the item is an integer.
	AsInteger() (Integer, bool)
	// AsList returns the list if the item is a list.
	AsList() (List, bool)
	// AsDictionary returns the dictionary if the item is a dictionary.
	AsDictionary() (Dictionary, bool)

	appendTo(dst []byte) []byte
}

// String is a bencode byte string. It is not required to hold valid text.
// Strings produced by the decoder share their backing array with the input
// buffer; use Copy for a string which outlives it.
type String []byte

// Integer is a bencode integer.
type Integer int64

// List is an ordered sequence of items.
type List []Item

// Pair is a single dictionary entry.
type Pair struct {
	Key   String
	Value Item
}

// Dictionary maps byte-string keys to items. Entries are held sorted by key
// in ascending byte order at all times, so iteration and encoding always see
// the canonical ordering no matter how the dictionary was built.
type Dictionary struct {
	pairs []Pair
}

func (s String) AsString() (String, bool)         { return s, true }
func (s String) AsInteger() (Integer, bool)       { return 0, false }
func (s String) AsList() (List, bool)             { return nil, false }
func (s String) AsDictionary() (Dictionary, bool) { return Dictionary{}, false }

func (i Integer) AsString() (String, bool)         { return nil, false }
func (i Integer) AsInteger() (Integer, bool)       { return i, true }
func (i Integer) AsList() (List, bool)             { return nil, false }
func (i Integer) AsDictionary() (Dictionary, bool) { return Dictionary{}, false }

func (l List) AsString() (String, bool)         { return nil, false }
func (l List) AsInteger() (Integer, bool)       { return 0, false }
func (l List) AsList() (List, bool)             { return l, true }
func (l List) AsDictionary() (Dictionary, bool) { return Dictionary{}, false }

func (d Dictionary) AsString() (String, bool)         { return nil, false }
func (d Dictionary) AsInteger() (Integer, bool)       { return 0, false }
func (d Dictionary) AsList() (List, bool)             { return nil, false }
func (d Dictionary) AsDictionary() (Dictionary, bool) { return d, true }

// Copy returns a String with its own copy of the underlying bytes.
func (s String) Copy() String {
	return append(String(nil), s...)
}

// Compare orders two strings in ascending byte order.
func (s String) Compare(t String) int {
	return bytes.Compare(s, t)
}

// Equal reports whether two strings hold the same bytes.
func (s String) Equal(t String) bool {
	return bytes.Equal(s, t)
}

// String renders the bytes as text when they are valid UTF-8 and as hex
// otherwise.
func (s String) String() string {
	if utf8.Valid(s) {
		return string(s)
	}
	return fmt.Sprintf("%x", []byte(s))
}

// Bool returns i1e-style integers for booleans.
func Bool(b bool) Integer {
	if b {
		return 1
	}
	return 0
}

// NewDictionary builds a dictionary from the given pairs. Pairs may appear in
// any order; a later pair with an equal key overwrites the earlier one.
func NewDictionary(pairs ...Pair) Dictionary {
	var d Dictionary
	for _, p := range pairs {
		d.Set(p.Key, p.Value)
	}
	return d
}

// FromMap builds a dictionary from a native map.
func FromMap(m map[string]Item) Dictionary {
	var d Dictionary
	for k, v := range m {
		d.Set(String(k), v)
	}
	return d
}

// Len returns the number of entries.
func (d Dictionary) Len() int {
	return len(d.pairs)
}

// Get returns the value stored under key.
func (d Dictionary) Get(key String) (Item, bool) {
	i, found := d.search(key)
	if !found {
		return nil, false
	}
	return d.pairs[i].Value, true
}

// Set stores value under key, replacing any existing entry.
func (d *Dictionary) Set(key String, value Item) {
	i, found := d.search(key)
	if found {
		d.pairs[i].Value = value
		return
	}
	d.pairs = slices.Insert(d.pairs, i, Pair{Key: key, Value: value})
}

// Delete removes the entry stored under key and reports whether it existed.
func (d *Dictionary) Delete(key String) bool {
	i, found := d.search(key)
	if !found {
		return false
	}
	d.pairs = slices.Delete(d.pairs, i, i+1)
	return true
}

// Keys returns the keys in ascending byte order.
func (d Dictionary) Keys() []String {
	keys := make([]String, len(d.pairs))
	for i, p := range d.pairs {
		keys[i] = p.Key
	}
	return keys
}

// Pairs returns the entries in ascending key order.
func (d Dictionary) Pairs() []Pair {
	return slices.Clone(d.pairs)
}

func (d Dictionary) search(key String) (int, bool) {
	return slices.BinarySearchFunc(d.pairs, key, func(p Pair, k String) int {
		return bytes.Compare(p.Key, k)
	})
}

// Compare orders two items in shortlex order of their encodings: shorter
// encodings sort first, equal-length encodings sort bytewise.
func Compare(a, b Item) int {
	abytes := Encode(a)
	bbytes := Encode(b)
	if len(abytes) < len(bbytes) {
		return -1
	} else if len(abytes) > len(bbytes) {
		return 1
	}
	return bytes.Compare(abytes, bbytes)
}

// Equal reports whether two items encode to the same bytes.
func Equal(a, b Item) bool {
	return bytes.Equal(Encode(a), Encode(b))
}
