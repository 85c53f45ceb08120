package yabel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeString(t *testing.T) {
	require := require.New(t)

	require.Equal([]byte("0:"), Encode(String("")))
	require.Equal([]byte("16:sixteencharslong"), Encode(String("sixteencharslong")))
	require.Equal([]byte("4:spam"), Encode(String("spam")))
}

func TestEncodeInteger(t *testing.T) {
	require := require.New(t)

	require.Equal([]byte("i1234567890e"), Encode(Integer(1234567890)))
	require.Equal([]byte("i0e"), Encode(Integer(0)))
	require.Equal([]byte("i-50e"), Encode(Integer(-50)))
}

func TestEncodeList(t *testing.T) {
	require := require.New(t)

	require.Equal([]byte("le"), Encode(List{}))
	require.Equal([]byte("li1337e5:stuffe"), Encode(List{Integer(1337), String("stuff")}))
	require.Equal([]byte("llll3:fooeeee"), Encode(List{List{List{List{String("foo")}}}}))
}

func TestEncodeDictionary(t *testing.T) {
	require := require.New(t)

	require.Equal([]byte("de"), Encode(Dictionary{}))

	d := NewDictionary(Pair{Key: String("foo"), Value: List{Integer(34), String("bar"), Integer(-50)}})
	require.Equal([]byte("d3:fooli34e3:bari-50eee"), Encode(d))
}

func TestEncodeDictionarySortsKeys(t *testing.T) {
	require := require.New(t)

	// Construction order does not matter; the output is always sorted.
	d := NewDictionary(
		Pair{Key: String("foo"), Value: Integer(42)},
		Pair{Key: String("bar"), Value: String("spam")},
	)
	require.Equal([]byte("d3:bar4:spam3:fooi42ee"), Encode(d))
}

func TestEncodeUnsortedDecodeYieldsSortedBytes(t *testing.T) {
	require := require.New(t)

	items, err := Decode([]byte("d2:ccle2:bblee"), UnsortedDictionaries)
	require.Nil(err)
	require.Equal([]byte("d2:bble2:ccle"), Encode(items[0]))
}

func TestEncodeSequence(t *testing.T) {
	require := require.New(t)

	require.Equal([]byte("3:foo4:barr"), Encode(String("foo"), String("barr")))
}

func TestEncodeIsPure(t *testing.T) {
	require := require.New(t)

	d := NewDictionary(Pair{Key: String("a"), Value: List{Integer(1), Integer(2)}})
	first := Encode(d)
	second := Encode(d)
	require.Equal(first, second)
}

func TestRoundTrip(t *testing.T) {
	require := require.New(t)

	tree := NewDictionary(
		Pair{Key: String("announce"), Value: String("http://tracker.example/announce")},
		Pair{Key: String("info"), Value: NewDictionary(
			Pair{Key: String("length"), Value: Integer(524288)},
			Pair{Key: String("name"), Value: String("example")},
			Pair{Key: String("pieces"), Value: String([]byte{0xde, 0xad, 0xbe, 0xef})},
		)},
		Pair{Key: String("extras"), Value: List{Integer(-7), String("x"), List{}}},
	)

	encoded := Encode(tree)
	items, err := Decode(encoded)
	require.Nil(err)
	require.Len(items, 1)
	require.True(Equal(tree, items[0]))
	require.Equal(encoded, Encode(items[0]))
}

func TestRoundTripMultipleValues(t *testing.T) {
	require := require.New(t)

	input := []byte("3:foo4:barri42ele4:spame")
	items, err := Decode(input)
	require.Nil(err)
	require.Len(items, 4)
	require.Equal(input, Encode(items...))
}
