package yadict

import (
	"context"
	"encoding/json"
	"net/url"
)

// Word is a single lexical item: the looked-up word or one of its
// translations. PartOfSpeech and Transcription are nil when the service
// omitted them, never defaulted to the empty string.
type Word struct {
	Text          string
	PartOfSpeech  *string
	Transcription *string
}

// Definition is one sense of the looked-up word together with its
// translation candidates, in service order (roughly ranked by relevance).
type Definition struct {
	Headword     Word
	Translations []Word
}

// LookupResult is the full structured answer for one lookup call.
type LookupResult []Definition

// Wire shape of the lookup response. Pointers distinguish an absent field
// from a present-but-empty one; required fields are validated during
// projection, so a type mismatch or a missing def/tr/text fails the call.
type lookupResponse struct {
	Def *[]definitionEntry `json:"def"`
}

type definitionEntry struct {
	wordEntry
	Tr *[]wordEntry `json:"tr"`
}

type wordEntry struct {
	Text *string `json:"text"`
	Pos  *string `json:"pos"`
	Ts   *string `json:"ts"`
}

// word applies the shared extraction rule: text is mandatory and non-empty,
// pos and ts carry over as-is.
func (w *wordEntry) word() (Word, error) {
	if w.Text == nil || *w.Text == "" {
		return Word{}, ErrInvalidDataFormat
	}
	return Word{
		Text:          *w.Text,
		PartOfSpeech:  w.Pos,
		Transcription: w.Ts,
	}, nil
}

// LookupRaw looks text up in the given language pair (e.g. "en-ru") and
// returns the response as an undecoded JSON object, for callers that need
// fields the typed model does not carry.
func (c *Client) LookupRaw(ctx context.Context, lang, text string) (json.RawMessage, error) {
	body, err := c.lookup(ctx, lang, text)
	if err != nil {
		return nil, err
	}

	var object map[string]json.RawMessage
	if err := json.Unmarshal(body, &object); err != nil {
		return nil, classifyDecodeError(err)
	}

	return json.RawMessage(body), nil
}

// Lookup looks text up in the given language pair and projects the response
// into the typed model. The projection is strict: a missing def, tr or text
// anywhere in the document fails the whole call with ErrInvalidDataFormat,
// it never returns a partial result.
func (c *Client) Lookup(ctx context.Context, lang, text string) (LookupResult, error) {
	body, err := c.lookup(ctx, lang, text)
	if err != nil {
		return nil, err
	}
	return projectLookup(body)
}

func (c *Client) lookup(ctx context.Context, lang, text string) ([]byte, error) {
	q := url.Values{}
	q.Set("key", c.token)
	q.Set("lang", lang)
	q.Set("text", text)

	return c.fetchJSON(ctx, c.endpoint("lookup")+"?"+q.Encode())
}

func projectLookup(body []byte) (LookupResult, error) {
	var resp lookupResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, classifyDecodeError(err)
	}
	if resp.Def == nil {
		return nil, ErrInvalidDataFormat
	}

	result := make(LookupResult, 0, len(*resp.Def))
	for _, entry := range *resp.Def {
		headword, err := entry.word()
		if err != nil {
			return nil, err
		}
		if entry.Tr == nil {
			return nil, ErrInvalidDataFormat
		}

		translations := make([]Word, 0, len(*entry.Tr))
		for _, tr := range *entry.Tr {
			word, err := tr.word()
			if err != nil {
				return nil, err
			}
			translations = append(translations, word)
		}

		result = append(result, Definition{
			Headword:     headword,
			Translations: translations,
		})
	}

	return result, nil
}
