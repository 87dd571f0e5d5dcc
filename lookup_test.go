package yadict

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectLookup(t *testing.T) {
	body := `{
		"head": {},
		"def": [
			{
				"text": "time",
				"pos": "noun",
				"ts": "taɪm",
				"tr": [
					{"text": "время", "pos": "noun"},
					{"text": "раз"}
				]
			},
			{
				"text": "time",
				"pos": "verb",
				"tr": []
			}
		]
	}`

	result, err := projectLookup([]byte(body))
	require.NoError(t, err)
	require.Len(t, result, 2)

	first := result[0]
	assert.Equal(t, "time", first.Headword.Text)
	require.NotNil(t, first.Headword.PartOfSpeech)
	assert.Equal(t, "noun", *first.Headword.PartOfSpeech)
	require.NotNil(t, first.Headword.Transcription)
	assert.Equal(t, "taɪm", *first.Headword.Transcription)

	require.Len(t, first.Translations, 2)
	assert.Equal(t, "время", first.Translations[0].Text)
	require.NotNil(t, first.Translations[0].PartOfSpeech)
	assert.Equal(t, "noun", *first.Translations[0].PartOfSpeech)
	assert.Nil(t, first.Translations[0].Transcription)
	assert.Equal(t, "раз", first.Translations[1].Text)
	assert.Nil(t, first.Translations[1].PartOfSpeech)
	assert.Nil(t, first.Translations[1].Transcription)

	second := result[1]
	assert.Equal(t, "time", second.Headword.Text)
	assert.Nil(t, second.Headword.Transcription)
	assert.Empty(t, second.Translations, "empty tr array is a valid empty translation list")
}

func TestProjectLookup_NoDefinitions(t *testing.T) {
	result, err := projectLookup([]byte(`{"def":[]}`))
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestProjectLookup_InvalidShape(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "top level not an object", body: `["def"]`},
		{name: "missing def", body: `{"head":{}}`},
		{name: "def is null", body: `{"def":null}`},
		{name: "def not an array", body: `{"def":{}}`},
		{name: "definition not an object", body: `{"def":["time"]}`},
		{name: "missing headword text", body: `{"def":[{"pos":"noun","tr":[]}]}`},
		{name: "empty headword text", body: `{"def":[{"text":"","tr":[]}]}`},
		{name: "headword text not a string", body: `{"def":[{"text":7,"tr":[]}]}`},
		{name: "missing tr", body: `{"def":[{"text":"time"}]}`},
		{name: "tr is null", body: `{"def":[{"text":"time","tr":null}]}`},
		{name: "tr not an array", body: `{"def":[{"text":"time","tr":{}}]}`},
		{name: "translation not an object", body: `{"def":[{"text":"time","tr":["время"]}]}`},
		{name: "missing translation text", body: `{"def":[{"text":"time","tr":[{"pos":"noun"}]}]}`},
		{name: "pos not a string", body: `{"def":[{"text":"time","pos":1,"tr":[]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := projectLookup([]byte(tt.body))
			assert.ErrorIs(t, err, ErrInvalidDataFormat)
			assert.Nil(t, result, "no partial result on shape violation")
		})
	}
}

func TestProjectLookup_ParseError(t *testing.T) {
	_, err := projectLookup([]byte(`{"def":`))

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.NotNil(t, parseErr.Unwrap())
}
