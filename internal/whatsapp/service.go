package whatsapp

import (
	"context"
	"fmt"
	"os"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
	"github.com/skip2/go-qrcode"
	"go.mau.fi/whatsmeow"
	"go.mau.fi/whatsmeow/proto/waE2E"
	"go.mau.fi/whatsmeow/store/sqlstore"
	"go.mau.fi/whatsmeow/types"
	"go.mau.fi/whatsmeow/types/events"

	"visit-assistant/internal/handoff"
)

type Config struct {
	DataDir string
	// CountryCode replaces the leading 0 of national numbers, e.g. "33"
	CountryCode string
}

// Service sends messages through a WhatsApp account linked as a companion device
type Service struct {
	client *whatsmeow.Client
	cfg    *Config
	log    zerolog.Logger
}

// NewService creates a new WhatsApp service
func NewService(cfg *Config) (*Service, error) {
	ctx := context.Background()
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("component", "WhatsApp").Logger()

	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	// Use nil logger - sqlstore will use a no-op logger by default
	container, err := sqlstore.New(ctx, "sqlite3", fmt.Sprintf("file:%s/whatsmeow.db?_foreign_keys=on", cfg.DataDir), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create database: %w", err)
	}

	deviceStore, err := container.GetFirstDevice(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get device: %w", err)
	}

	// Use nil logger - whatsmeow will use a no-op logger by default
	client := whatsmeow.NewClient(deviceStore, nil)

	service := &Service{
		client: client,
		cfg:    cfg,
		log:    logger,
	}

	client.AddEventHandler(func(evt interface{}) {
		service.eventHandler(evt)
	})

	return service, nil
}

// NormalizePhoneNumber turns a phone number into the international digits WhatsApp expects.
// A national number starting with a single 0 gets countryCode in place of the 0;
// a 00 international prefix is dropped.
func NormalizePhoneNumber(phoneNumber, countryCode string) string {
	phoneNumber = handoff.Digits(phoneNumber)

	switch {
	case strings.HasPrefix(phoneNumber, "00"):
		phoneNumber = phoneNumber[2:]
	case strings.HasPrefix(phoneNumber, "0") && countryCode != "":
		phoneNumber = countryCode + phoneNumber[1:]
	}

	// Numbers already carrying the country code sometimes keep the national 0
	if countryCode != "" && strings.HasPrefix(phoneNumber, countryCode+"0") {
		phoneNumber = countryCode + phoneNumber[len(countryCode)+1:]
	}

	return phoneNumber
}

// IsLinked reports whether a device session exists
func (s *Service) IsLinked() bool {
	return s.client.Store.ID != nil
}

// Connect connects to WhatsApp, printing a login QR code when no device is linked yet
func (s *Service) Connect() error {
	if s.client.Store.ID == nil {
		qrChan, _ := s.client.GetQRChannel(context.Background())
		err := s.client.Connect()
		if err != nil {
			return fmt.Errorf("failed to connect: %w", err)
		}
		for evt := range qrChan {
			if evt.Event == "code" {
				q, err := qrcode.New(evt.Code, qrcode.Medium)
				if err != nil {
					fmt.Printf("QR Code: %s\n", evt.Code)
					fmt.Println("Please scan this QR code with WhatsApp to connect.")
				} else {
					fmt.Println("\n" + q.ToSmallString(false))
					fmt.Println("📱 Please scan the QR code above with WhatsApp:")
					fmt.Println("   1. Open WhatsApp on your phone")
					fmt.Println("   2. Go to Settings > Linked Devices")
					fmt.Println("   3. Tap 'Link a Device'")
					fmt.Println("   4. Scan the QR code shown above")
				}
			} else {
				s.log.Info().Str("event", evt.Event).Msg("Login event")
			}
		}
	} else {
		err := s.client.Connect()
		if err != nil {
			return fmt.Errorf("failed to connect: %w", err)
		}
	}
	return nil
}

// Disconnect disconnects from WhatsApp
func (s *Service) Disconnect() {
	s.client.Disconnect()
}

// SendMessage sends a text message to phoneNumber
func (s *Service) SendMessage(ctx context.Context, phoneNumber, message string) error {
	if !s.client.IsConnected() {
		return fmt.Errorf("not connected to WhatsApp")
	}

	phoneNumber = NormalizePhoneNumber(phoneNumber, s.cfg.CountryCode)
	if phoneNumber == "" {
		return handoff.ErrNoPhone
	}

	// Verify the number is on WhatsApp before sending
	resp, err := s.client.IsOnWhatsApp(ctx, []string{"+" + phoneNumber})
	if err != nil {
		return fmt.Errorf("failed to verify number on WhatsApp: %w", err)
	}
	if len(resp) == 0 || !resp[0].IsIn {
		return fmt.Errorf("number %s is not registered on WhatsApp", phoneNumber)
	}

	// Use the verified JID from WhatsApp
	jid := resp[0].JID
	if jid.IsEmpty() {
		jid = types.NewJID(phoneNumber, types.DefaultUserServer)
	}

	s.log.Debug().Str("jid", jid.String()).Str("phone", phoneNumber).Msg("Attempting to send message")

	sent, err := s.client.SendMessage(ctx, jid, &waE2E.Message{
		Conversation: &message,
	})
	if err != nil {
		return fmt.Errorf("failed to send message to %s: %w", phoneNumber, err)
	}

	s.log.Info().Str("id", sent.ID).Time("timestamp", sent.Timestamp).Str("phone", phoneNumber).Msg("Message sent")
	return nil
}

func (s *Service) eventHandler(evt interface{}) {
	switch evt.(type) {
	case *events.Connected:
		s.log.Info().Msg("Connected to WhatsApp")
	case *events.Disconnected:
		s.log.Info().Msg("Disconnected from WhatsApp")
	case *events.LoggedOut:
		s.log.Info().Msg("Logged out from WhatsApp")
	}
}
