package translate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestSetLanguage(t *testing.T) {
	assert := assert.New(t)

	saved := printer.Load()
	t.Cleanup(func() { printer.Store(saved) })

	table := [...]struct {
		tags []language.Tag
		tag  language.Tag
	}{
		{tags: []language.Tag{language.Korean}, tag: language.Korean},
		{tags: []language.Tag{language.MustParse("ko-KR")}, tag: language.Korean},
		{tags: []language.Tag{language.German}, tag: language.AmericanEnglish},
		{tags: nil, tag: language.AmericanEnglish},
		{tags: []language.Tag{language.BritishEnglish}, tag: language.AmericanEnglish},
	}

	for n, entry := range table {
		assert.Equal(entry.tag, SetLanguage(entry.tags...), "%d", n)
	}
}

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	saved := printer.Load()
	t.Cleanup(func() { printer.Store(saved) })

	SetLanguage(language.AmericanEnglish)
	assert.Equal("result (binary): 1101", From("result (binary): %v", "1101"))
	assert.Equal("unregistered 7", From("unregistered %v", 7))

	SetLanguage(language.Korean)
	assert.Equal("결과 (이진수): 1101", From("result (binary): %v", "1101"))
	assert.Equal("unregistered 7", From("unregistered %v", 7))
}

func TestCatalog(t *testing.T) {
	assert := assert.New(t)

	for key, msg := range korean {
		assert.Equal(strings.Count(key, "%"), strings.Count(msg, "%"), "%q", key)
	}
}
