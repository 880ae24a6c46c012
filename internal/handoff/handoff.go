// Package handoff moves a composed message out of the assistant: onto the
// system clipboard and into a messaging app chat opened by deep link.
package handoff

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/skip2/go-qrcode"
)

// ErrNoPhone is returned when the recipient has no usable phone number
var ErrNoPhone = errors.New("recipient has no phone number")

const whatsAppBaseURL = "https://wa.me/"

// clipboardWriteAll is a package-level variable to allow mocking in tests.
var clipboardWriteAll = clipboard.WriteAll

// Clipboard receives copied text
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the OS clipboard
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	if err := clipboardWriteAll(text); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}

// Digits keeps only the ASCII digits of a phone number
func Digits(phone string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
}

// WhatsAppLink builds the chat link for phone. The message itself is not part
// of the link; it is expected on the clipboard.
func WhatsAppLink(phone string) (string, error) {
	digits := Digits(phone)
	if digits == "" {
		return "", ErrNoPhone
	}
	return whatsAppBaseURL + digits, nil
}

// QRCode renders link as a QR code printable in a terminal
func QRCode(link string) (string, error) {
	q, err := qrcode.New(link, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("failed to generate QR code: %w", err)
	}
	return q.ToSmallString(false), nil
}
