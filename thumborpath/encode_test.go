package thumborpath

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name    string
		parts   []string
		filters []string
		expect  string
	}{
		{name: "empty"},
		{name: "empty tokens", parts: []string{"", ""}, filters: []string{""}, expect: ""},
		{name: "parts only", parts: []string{"meta", "fit-in/30x30", "smart"}, expect: "meta/fit-in/30x30/smart"},
		{name: "filters only", filters: []string{"quality(80)", "autoJpg()"}, expect: "filters:quality(80):autoJpg()"},
		{
			name:    "parts and filters",
			parts:   []string{"10x10:30x30", "-30x-40"},
			filters: []string{"format(webp)"},
			expect:  "10x10:30x30/-30x-40/filters:format(webp)",
		},
		{
			name:    "duplicate filters",
			filters: []string{"grayscale()", "grayscale()", "quality(80)", "grayscale()"},
			expect:  "filters:grayscale():quality(80)",
		},
		{name: "duplicate parts kept", parts: []string{"smart", "smart"}, expect: "smart/smart"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expect, Encode(test.parts, test.filters))
		})
	}
}

func TestEncodeSlashes(t *testing.T) {
	tokens := []string{"", "meta", "smart", "30x30", "left", "top", "quality(80)", "grayscale()"}
	r := rand.New(rand.NewSource(1))
	pick := func() (res []string) {
		for i := r.Intn(5); i > 0; i-- {
			res = append(res, tokens[r.Intn(len(tokens))])
		}
		return
	}
	for i := 0; i < 500; i++ {
		op := Encode(pick(), pick())
		assert.NotContains(t, op, "//")
		assert.False(t, strings.HasPrefix(op, "/"), op)
		assert.False(t, strings.HasSuffix(op, "/"), op)
	}
}

func TestGenerate(t *testing.T) {
	assert.Equal(t, "http://localhost/unsafe/react-day-picker.png",
		Generate("http://localhost", "", "react-day-picker.png", nil))
	assert.Equal(t, "http://localhost/unsafe/30x30/react-day-picker.png",
		Generate("http://localhost", "30x30", "react-day-picker.png", nil))

	signer := NewDefaultSigner("1234")
	op := "fit-in/30x30/filters:quality(80)"
	assert.Equal(t,
		"http://localhost/"+signer.Sign(op, "img.png")+"/fit-in/30x30/filters:quality(80)/img.png",
		Generate("http://localhost", op, "img.png", signer))
	assert.Equal(t,
		"http://localhost/"+signer.Sign("", "img.png")+"/img.png",
		Generate("http://localhost", "", "img.png", signer))
}
