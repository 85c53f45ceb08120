package yabel

import "strconv"

// Encode serializes items to canonical bencode bytes, concatenated in order.
// Encoding never fails: integers always render in canonical decimal form and
// dictionaries emit their entries in their always-sorted iteration order, even
// when the dictionary came from an unsorted-input decode.
func Encode(items ...Item) []byte {
	var dst []byte
	for _, item := range items {
		dst = item.appendTo(dst)
	}
	return dst
}

func (s String) appendTo(dst []byte) []byte {
	dst = strconv.AppendInt(dst, int64(len(s)), 10)
	dst = append(dst, bytesLengthSep)
	return append(dst, s...)
}

func (i Integer) appendTo(dst []byte) []byte {
	dst = append(dst, numberStart)
	dst = strconv.AppendInt(dst, int64(i), 10)
	return append(dst, bencodeEnd)
}

func (l List) appendTo(dst []byte) []byte {
	dst = append(dst, listStart)
	for _, item := range l {
		dst = item.appendTo(dst)
	}
	return append(dst, bencodeEnd)
}

func (d Dictionary) appendTo(dst []byte) []byte {
	dst = append(dst, dictStart)
	for _, p := range d.pairs {
		dst = p.Key.appendTo(dst)
		dst = p.Value.appendTo(dst)
	}
	return append(dst, bencodeEnd)
}
