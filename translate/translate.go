// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package translate localizes every user visible string: traces, reports
// and error messages. Keys are en-US Sprintf() formats.
package translate

import (
	"log"
	"sync/atomic"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Supported languages. The first entry is the fallback.
var Supported = []language.Tag{
	language.AmericanEnglish,
	language.Korean,
}

var matcher = language.NewMatcher(Supported)

var printer atomic.Pointer[message.Printer]

func init() {
	registerKorean()

	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("abacus: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	var tags []language.Tag
	for _, loc := range locales {
		tag, err := language.Parse(loc)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
	}

	SetLanguage(tags...)
}

// SetLanguage overrides the detected locale with the best supported match.
// Sentinel errors keep the text of the locale they were created under.
func SetLanguage(tags ...language.Tag) (tag language.Tag) {
	_, index, _ := matcher.Match(tags...)
	tag = Supported[index]

	printer.Store(message.NewPrinter(tag))

	return
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Load().Sprintf(key, args...)
}
