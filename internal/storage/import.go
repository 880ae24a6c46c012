package storage

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"visit-assistant/internal/models"
)

const importDateLayout = "2006-01-02"

type importFile struct {
	Visits []importVisit `yaml:"visits"`
}

type importVisit struct {
	Date          string              `yaml:"date"`
	Time          string              `yaml:"time"`
	Congregation  string              `yaml:"congregation"`
	LocationType  models.LocationType `yaml:"location_type"`
	Accommodation string              `yaml:"accommodation"`
	Meals         string              `yaml:"meals"`
	Speaker       models.Speaker      `yaml:"speaker"`
	Host          *models.Host        `yaml:"host"`
}

// ImportFile adds every visit listed in a YAML file and returns how many were added.
// The file is validated as a whole before anything is stored.
func (s *Storage) ImportFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read import file: %w", err)
	}

	var f importFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return 0, fmt.Errorf("failed to parse import file: %w", err)
	}

	visits := make([]models.Visit, len(f.Visits))
	for i := range f.Visits {
		applyDefaultGenders(&f.Visits[i])
		iv := f.Visits[i]
		date, err := time.Parse(importDateLayout, iv.Date)
		if err != nil {
			return 0, fmt.Errorf("visit %d: invalid date %q: %w", i+1, iv.Date, err)
		}
		if iv.Speaker.Name == "" {
			return 0, fmt.Errorf("visit %d: speaker name is required", i+1)
		}
		if err := validateGenders(iv); err != nil {
			return 0, fmt.Errorf("visit %d: %w", i+1, err)
		}
		visits[i] = models.Visit{
			CongregationName: iv.Congregation,
			Date:             date,
			Time:             iv.Time,
			LocationType:     iv.LocationType,
			Accommodation:    iv.Accommodation,
			Meals:            iv.Meals,
		}
		if visits[i].CongregationName == "" {
			visits[i].CongregationName = iv.Speaker.Congregation
		}
	}

	for i, iv := range f.Visits {
		if _, err := s.AddVisit(visits[i], iv.Speaker, iv.Host); err != nil {
			return i, err
		}
	}
	return len(f.Visits), nil
}

func applyDefaultGenders(iv *importVisit) {
	if iv.Speaker.Gender == "" {
		iv.Speaker.Gender = models.GenderMale
	}
	if iv.Host != nil && iv.Host.Gender == "" {
		iv.Host.Gender = models.GenderMale
	}
}

func validateGenders(iv importVisit) error {
	switch iv.Speaker.Gender {
	case models.GenderMale, models.GenderFemale:
	default:
		return fmt.Errorf("invalid speaker gender %q", iv.Speaker.Gender)
	}
	if iv.Host == nil {
		return nil
	}
	switch iv.Host.Gender {
	case models.GenderMale, models.GenderFemale, models.GenderCouple:
		return nil
	default:
		return fmt.Errorf("invalid host gender %q", iv.Host.Gender)
	}
}
