package piglatin_test

import (
	"testing"

	"axlab.dev/lessons/pkg/piglatin"
	"axlab.dev/lessons/tester"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestTransform(t *testing.T) {
	test := require.New(t)
	test.Equal("appleway", piglatin.Transform("apple"))
	test.Equal("ananabay", piglatin.Transform("banana"))
	test.Equal("yskay", piglatin.Transform("sky"))
	test.Equal("ellohay orldway", piglatin.Transform("Hello World"))
	test.Equal("eggway", piglatin.Transform("EGG"))
}

func TestTransformWithoutVowels(t *testing.T) {
	test := require.New(t)
	test.Equal("pfft", piglatin.Transform("pfft"))
	test.Equal("BCD", piglatin.Transform("BCD"))
	test.Equal("123 oneway", piglatin.Transform("123 one"))
}

func TestTransformSpaces(t *testing.T) {
	test := require.New(t)
	test.Equal("", piglatin.Transform(""))
	test.Equal(" ", piglatin.Transform(" "))
	test.Equal("appleway  ananabay", piglatin.Transform("apple  banana"))
	test.Equal(" appleway ", piglatin.Transform(" apple "))
	test.Equal("ello,hay", piglatin.Transform("hello,"))
	test.Equal("ab\tcay", piglatin.Transform("cab\t"))
}

func TestTransformAny(t *testing.T) {
	test := require.New(t)
	test.Equal(42, piglatin.TransformAny(42))
	test.Nil(piglatin.TransformAny(nil))
	test.Equal(true, piglatin.TransformAny(true))
	test.Equal("appleway", piglatin.TransformAny("apple"))
}

func TestFirstVowel(t *testing.T) {
	words := []string{"apple", "banana", "sky", "rhythm", "SCHOOL", "pfft", "", "über"}
	got := make([]int, 0, len(words))
	for _, it := range words {
		got = append(got, piglatin.FirstVowel(it))
	}

	want := []int{0, 1, 2, 2, 3, -1, -1, 3}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FirstVowel mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, "erübay", piglatin.Word("über"))
}

func TestIdempotent(t *testing.T) {
	input := "The quick brown fox"
	require.Equal(t, piglatin.Transform(input), piglatin.Transform(input))
}

func TestSentencesGolden(t *testing.T) {
	tester.CheckEach(t, "testdata/words", piglatin.Transform)
}
