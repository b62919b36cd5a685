package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnwrapEnvelopeNonJSONPassthrough(t *testing.T) {
	inputs := []string{
		"plain text response",
		"almost {json but not",
		"",
		"## Executive Summary\nBody",
	}
	for _, in := range inputs {
		p := UnwrapEnvelope(in)
		assert.False(t, p.IsObject())
		assert.Equal(t, in, p.Text)
	}
}

func TestUnwrapEnvelopeFieldPriority(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{`{"response":"A","result":"B","text":"C","message":"D"}`, "A"},
		{`{"result":"B","text":"C"}`, "B"},
		{`{"text":"C","message":"D"}`, "C"},
		{`{"message":"D"}`, "D"},
	}
	for _, tc := range cases {
		p := UnwrapEnvelope(tc.raw)
		assert.False(t, p.IsObject())
		assert.Equal(t, tc.want, p.Text)
	}
}

func TestUnwrapEnvelopeBareJSONString(t *testing.T) {
	p := UnwrapEnvelope(`"just a string"`)
	assert.False(t, p.IsObject())
	assert.Equal(t, "just a string", p.Text)
}

func TestUnwrapEnvelopeObjectField(t *testing.T) {
	p := UnwrapEnvelope(`{"response":{"marketOverview":{"marketSize":"big"}}}`)
	assert.True(t, p.IsObject())
	assert.Contains(t, p.Object, "marketOverview")
}

func TestUnwrapEnvelopeStructuredPassthrough(t *testing.T) {
	// An object already shaped like an analysis result bypasses the
	// text path entirely.
	p := UnwrapEnvelope(`{"marketOverview":{"marketSize":"big"},"recommendations":["a"]}`)
	assert.True(t, p.IsObject())
	assert.Contains(t, p.Object, "marketOverview")
}

func TestUnwrapEnvelopeUnknownObjectKeepsRaw(t *testing.T) {
	raw := `{"foo":"bar"}`
	p := UnwrapEnvelope(raw)
	assert.False(t, p.IsObject())
	assert.Equal(t, raw, p.Text)
}

func TestUnwrapEnvelopeBareArrayKeepsRaw(t *testing.T) {
	raw := `[1,2,3]`
	p := UnwrapEnvelope(raw)
	assert.False(t, p.IsObject())
	assert.Equal(t, raw, p.Text)
}

func TestUnwrapEnvelopeNonStringField(t *testing.T) {
	// A numeric payload field is re-serialized rather than dropped.
	p := UnwrapEnvelope(`{"response":42}`)
	assert.False(t, p.IsObject())
	assert.Equal(t, "42", p.Text)
}
