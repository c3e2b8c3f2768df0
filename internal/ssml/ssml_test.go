package ssml

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	testCases := []struct {
		name string
		text string
		want string
	}{
		{
			name: "empty",
			text: "",
			want: "<speak><prosody rate='medium'></prosody></speak>",
		},
		{
			name: "plain",
			text: "Bom dia",
			want: "<speak><prosody rate='medium'>Bom dia</prosody></speak>",
		},
		{
			name: "markup",
			text: "a < b && c > d",
			want: "<speak><prosody rate='medium'>a &lt; b &amp;&amp; c &gt; d</prosody></speak>",
		},
		{
			name: "already_escaped",
			text: "&amp;",
			want: "<speak><prosody rate='medium'>&amp;amp;</prosody></speak>",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Wrap(tc.text))
		})
	}
}

func TestWrapLeavesNoRawMarkup(t *testing.T) {
	inputs := []string{"<break time='1s'/>", "Tom & Jerry", ">>><<<", "</speak>"}

	for _, in := range inputs {
		out := Wrap(in)
		body := strings.TrimSuffix(strings.TrimPrefix(out, "<speak><prosody rate='medium'>"), "</prosody></speak>")

		assert.NotContains(t, body, "<")
		assert.NotContains(t, body, ">")
		assert.Equal(t, strings.Count(body, "&"), strings.Count(body, "&amp;")+strings.Count(body, "&lt;")+strings.Count(body, "&gt;"))
	}
}

func TestTruncate(t *testing.T) {
	t.Run("short_text_untouched", func(t *testing.T) {
		text := strings.Repeat("a", MaxSpeechLength)
		assert.Equal(t, text, Truncate(text, MaxSpeechLength))
	})

	t.Run("long_text_cut", func(t *testing.T) {
		text := strings.Repeat("a", MaxSpeechLength+1)
		got := Truncate(text, MaxSpeechLength)

		assert.LessOrEqual(t, utf8.RuneCountInString(got), MaxSpeechLength)
		assert.True(t, strings.HasSuffix(got, "…"))
		assert.Equal(t, MaxSpeechLength-20+1, utf8.RuneCountInString(got))
	})

	t.Run("trailing_space_trimmed", func(t *testing.T) {
		text := strings.Repeat("a", 25) + "     " + strings.Repeat("b", 20)
		assert.Equal(t, strings.Repeat("a", 25)+"…", Truncate(text, 48))
	})

	t.Run("counts_characters", func(t *testing.T) {
		text := strings.Repeat("ç", 30)
		got := Truncate(text, 30)
		assert.Equal(t, text, got)

		got = Truncate(text, 25)
		assert.Equal(t, strings.Repeat("ç", 5)+"…", got)
	})
}
