// Package templates resolves message templates: a built-in default per key,
// shadowed by a user-saved override when one exists.
package templates

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"visit-assistant/internal/i18n"
	"visit-assistant/internal/models"
)

// Persistence stores the custom overrides
type Persistence interface {
	GetCustomTemplate(key models.TemplateKey) (string, bool)
	SaveCustomTemplate(key models.TemplateKey, text string) error
	DeleteCustomTemplate(key models.TemplateKey) error
}

type Store struct {
	custom Persistence
	log    zerolog.Logger
}

var defaults = map[models.Language]map[models.MessageType]map[models.Role]string{
	models.LanguageFR: defaultsFR,
	models.LanguageCV: defaultsCV,
}

// NewStore creates a template store over the given override persistence
func NewStore(custom Persistence, log zerolog.Logger) *Store {
	return &Store{
		custom: custom,
		log:    log,
	}
}

// Default returns the built-in template for the key
func Default(key models.TemplateKey) (string, bool) {
	text, ok := defaults[key.Language][key.Type][key.Role]
	return text, ok
}

// Keys returns every key that has a built-in default, sorted
func Keys() []models.TemplateKey {
	var keys []models.TemplateKey
	for lang, types := range defaults {
		for mt, roles := range types {
			for role := range roles {
				keys = append(keys, models.TemplateKey{Language: lang, Type: mt, Role: role})
			}
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].String() < keys[j].String()
	})
	return keys
}

// Get returns the template text for the key and whether it is a custom override.
// A key with neither override nor default yields the locale's "template unavailable" text.
func (s *Store) Get(lang models.Language, mt models.MessageType, role models.Role) (string, bool) {
	key := models.TemplateKey{Language: lang, Type: mt, Role: role}

	if text, ok := s.custom.GetCustomTemplate(key); ok {
		return text, true
	}
	if text, ok := Default(key); ok {
		return text, false
	}

	s.log.Error().Str("key", key.String()).Msg("No template for key")
	return i18n.For(lang).TemplateUnavailable, false
}

// Save stores text as the override for the key
func (s *Store) Save(lang models.Language, mt models.MessageType, role models.Role, text string) error {
	key := models.TemplateKey{Language: lang, Type: mt, Role: role}
	if err := s.custom.SaveCustomTemplate(key, text); err != nil {
		return fmt.Errorf("failed to save template %s: %w", key, err)
	}
	s.log.Info().Str("key", key.String()).Msg("Custom template saved")
	return nil
}

// Delete removes the override so the key reverts to its default
func (s *Store) Delete(lang models.Language, mt models.MessageType, role models.Role) error {
	key := models.TemplateKey{Language: lang, Type: mt, Role: role}
	if err := s.custom.DeleteCustomTemplate(key); err != nil {
		return fmt.Errorf("failed to delete template %s: %w", key, err)
	}
	s.log.Info().Str("key", key.String()).Msg("Custom template deleted")
	return nil
}
