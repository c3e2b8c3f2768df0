// Package ssml готовит текст к озвучиванию.
package ssml

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxSpeechLength задаёт, сколько символов платформа принимает в одной реплике.
const MaxSpeechLength = 7000

const ellipsis = "…"

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Wrap экранирует спецсимволы разметки и оборачивает текст в speak
// со средней скоростью речи.
func Wrap(text string) string {
	return "<speak><prosody rate='medium'>" + escaper.Replace(text) + "</prosody></speak>"
}

// Truncate обрезает текст длиннее limit символов и добавляет многоточие.
// Вызывать на сыром тексте, до Wrap.
func Truncate(text string, limit int) string {
	if utf8.RuneCountInString(text) <= limit {
		return text
	}

	keep := limit - 20
	if keep < 0 {
		keep = 0
	}

	runes := []rune(text)
	return strings.TrimRightFunc(string(runes[:keep]), unicode.IsSpace) + ellipsis
}
