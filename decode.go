package yabel

import (
	"bytes"
	"strconv"
)

// Setting selects a decoder behavior.
type Setting int

const (
	// SortedDictionaries allows only sorted dictionaries. This is the default.
	SortedDictionaries Setting = iota
	// UnsortedDictionaries allows sorted and unsorted dictionaries. The
	// original key ordering of an unsorted input is not preserved in the
	// decoded dictionary.
	UnsortedDictionaries
)

// Decoder reads a sequence of items from a byte buffer.
type Decoder struct {
	buf           []byte
	pos           int
	allowUnsorted bool
}

// NewDecoder constructs a Decoder positioned at the start of buf.
func NewDecoder(buf []byte) *Decoder {
	return &Decoder{buf: buf}
}

// Setting applies a setting to the decoder and returns it for chaining.
func (d *Decoder) Setting(s Setting) *Decoder {
	switch s {
	case SortedDictionaries:
		d.allowUnsorted = false
	case UnsortedDictionaries:
		d.allowUnsorted = true
	}
	return d
}

// Pos returns the current cursor position. After a failed decode this is the
// position at which the malformed item was found.
func (d *Decoder) Pos() int {
	return d.pos
}

// Decode parses items from the buffer until it is exhausted. A buffer may
// hold any number of concatenated top-level values, including none. The first
// malformed item aborts the whole decode.
func (d *Decoder) Decode() ([]Item, error) {
	var items []Item
	for d.pos < len(d.buf) {
		item, err := d.decodeItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// Decode parses all items in buf with the given settings applied.
func Decode(buf []byte, settings ...Setting) ([]Item, error) {
	d := NewDecoder(buf)
	for _, s := range settings {
		d.Setting(s)
	}
	return d.Decode()
}

// decodeItem dispatches on the next unconsumed byte.
func (d *Decoder) decodeItem() (Item, error) {
	switch b := d.buf[d.pos]; {
	case b >= '0' && b <= '9':
		return d.decodeString()
	case b == numberStart:
		return d.decodeInteger()
	case b == listStart:
		return d.decodeList()
	case b == dictStart:
		return d.decodeDictionary()
	default:
		return nil, &UnexpectedByteError{Byte: b}
	}
}

// readBytes consumes bytes up to and including the next stop byte and returns
// the bytes before it.
func (d *Decoder) readBytes(stop byte) ([]byte, error) {
	i := bytes.IndexByte(d.buf[d.pos:], stop)
	if i < 0 {
		return nil, ErrUnexpectedEndOfBuffer
	}
	b := d.buf[d.pos : d.pos+i]
	d.pos += i + 1
	return b, nil
}

func (d *Decoder) decodeString() (String, error) {
	prefix, err := d.readBytes(bytesLengthSep)
	if err != nil {
		return nil, err
	}
	length, err := parseInt(prefix)
	if err != nil {
		return nil, err
	}
	// A negative or overlong declared length reaches past the buffer either
	// way; reject it before slicing.
	if length < 0 || length > int64(len(d.buf)-d.pos) {
		return nil, ErrUnexpectedEndOfBuffer
	}
	s := String(d.buf[d.pos : d.pos+int(length)])
	d.pos += int(length)
	return s, nil
}

func (d *Decoder) decodeInteger() (Integer, error) {
	d.pos++
	text, err := d.readBytes(bencodeEnd)
	if err != nil {
		return 0, err
	}
	n, err := parseInt(text)
	if err != nil {
		return 0, err
	}
	return Integer(n), nil
}

func (d *Decoder) decodeList() (List, error) {
	d.pos++
	items := List{}
	for d.pos < len(d.buf) {
		if d.buf[d.pos] == bencodeEnd {
			d.pos++
			return items, nil
		}
		item, err := d.decodeItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return nil, ErrUnexpectedEndOfBuffer
}

func (d *Decoder) decodeDictionary() (Dictionary, error) {
	d.pos++
	var dict Dictionary
	var prev String
	first := true
	for d.pos < len(d.buf) {
		if d.buf[d.pos] == bencodeEnd {
			d.pos++
			return dict, nil
		}
		keyItem, err := d.decodeItem()
		if err != nil {
			return Dictionary{}, err
		}
		key, ok := keyItem.AsString()
		if !ok {
			return Dictionary{}, ErrInvalidDictionaryKey
		}
		// Equal keys are allowed; the later entry wins.
		if !d.allowUnsorted && !first && key.Compare(prev) < 0 {
			return Dictionary{}, ErrUnsortedDictionary
		}
		if d.pos >= len(d.buf) {
			return Dictionary{}, ErrUnexpectedEndOfBuffer
		}
		value, err := d.decodeItem()
		if err != nil {
			return Dictionary{}, err
		}
		dict.Set(key, value)
		prev, first = key, false
	}
	return Dictionary{}, ErrUnexpectedEndOfBuffer
}

// parseInt parses bencode integer text. The checks run in a fixed order:
// leading zeros first, then negative zero, then the numeric parse, so "-03"
// reports leading zeros rather than any later failure.
func parseInt(text []byte) (int64, error) {
	digits := text
	if len(digits) > 0 && digits[0] == 0x2d {
		digits = digits[1:]
	}
	if len(digits) >= 2 && digits[0] == 0x30 {
		return 0, ErrLeadingZeros
	}
	if len(text) == 2 && text[0] == 0x2d && text[1] == 0x30 {
		return 0, ErrNegativeZero
	}
	n, err := strconv.ParseInt(string(text), 10, 64)
	if err != nil {
		return 0, ErrInvalidData
	}
	return n, nil
}
