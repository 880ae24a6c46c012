package handoff

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigits(t *testing.T) {
	assert.Equal(t, "33612345678", Digits("+33 (6) 12-34.56.78"))
	assert.Equal(t, "", Digits("n/a"))
	// non-ASCII digits are not valid in a wa.me link
	assert.Equal(t, "33", Digits("+33 ٠٦١٢٣٤"))
}

func TestWhatsAppLink(t *testing.T) {
	link, err := WhatsAppLink("+238 991 23 45")
	require.NoError(t, err)
	assert.Equal(t, "https://wa.me/2389912345", link)

	_, err = WhatsAppLink("  ")
	assert.ErrorIs(t, err, ErrNoPhone)
}

func TestSystemClipboard(t *testing.T) {
	orig := clipboardWriteAll
	defer func() { clipboardWriteAll = orig }()

	var copied string
	clipboardWriteAll = func(text string) error {
		copied = text
		return nil
	}
	require.NoError(t, SystemClipboard{}.WriteAll("Bonjour"))
	assert.Equal(t, "Bonjour", copied)

	failure := errors.New("no clipboard utility")
	clipboardWriteAll = func(string) error { return failure }
	assert.ErrorIs(t, SystemClipboard{}.WriteAll("x"), failure)
}

func TestQRCode(t *testing.T) {
	out, err := QRCode("https://wa.me/33612345678")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
