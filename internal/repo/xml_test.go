package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCDATA(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "apple", "<![CDATA[apple]]>"},
		{"near miss", "app]] > < [] &le", "<![CDATA[app]] > < [] &le]]>"},
		{"terminator split", "app]]>le", "<![CDATA[app]]]]><![CDATA[>le]]>"},
		{"empty", "", "<![CDATA[]]>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CDATA(tt.in))
		})
	}
}

func TestCDATA_NoTerminatorIsVerbatim(t *testing.T) {
	for _, text := range []string{"hello", "a & b < c", "line1\nline2", "]] >"} {
		assert.Equal(t, "<![CDATA["+text+"]]>", CDATA(text))
	}
}

func TestEscapeXML(t *testing.T) {
	assert.Equal(t, "a &amp;&lt;&gt;&quot; b", escapeXML(`a &<>" b`))
}
