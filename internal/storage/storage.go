package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"visit-assistant/internal/models"
)

// ErrNotFound is returned when a requested record does not exist
var ErrNotFound = errors.New("not found")

type customTemplate struct {
	Key  models.TemplateKey `json:"key"`
	Text string             `json:"text"`
}

// document is the on-disk layout of the data file
type document struct {
	Profile   *models.CongregationProfile `json:"profile,omitempty"`
	Visits    []models.Visit              `json:"visits"`
	Speakers  []models.Speaker            `json:"speakers"`
	Hosts     []models.Host               `json:"hosts"`
	Templates []customTemplate            `json:"templates"`
}

type Storage struct {
	mu   sync.RWMutex
	doc  document
	file string
}

// NewStorage creates a new storage instance
func NewStorage(filePath string) (*Storage, error) {
	s := &Storage{
		file: filePath,
	}

	// Load existing data if file exists
	if _, err := os.Stat(filePath); err == nil {
		if err := s.load(); err != nil {
			return nil, fmt.Errorf("failed to load storage: %w", err)
		}
	}

	return s, nil
}

// AddVisit stores a visit with its speaker and optional host.
// IDs are assigned when empty; the visit host name follows the host record.
func (s *Storage) AddVisit(visit models.Visit, speaker models.Speaker, host *models.Host) (models.Visit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if visit.ID == "" {
		visit.ID = uuid.NewString()
	}
	if visit.Status == "" {
		visit.Status = models.VisitScheduled
	}
	if visit.LocationType == "" {
		visit.LocationType = models.LocationInPerson
	}
	if visit.CreatedAt.IsZero() {
		visit.CreatedAt = time.Now()
	}
	if visit.Communications == nil {
		visit.Communications = make(models.CommunicationStatus)
	}

	if speaker.ID == "" {
		speaker.ID = uuid.NewString()
	}
	speaker.VisitID = visit.ID
	if visit.SpeakerName == "" {
		visit.SpeakerName = speaker.Name
	}

	next := s.doc.clone()
	visit.HostName = models.NoHost
	if host != nil {
		if host.ID == "" {
			host.ID = uuid.NewString()
		}
		host.VisitID = visit.ID
		visit.HostName = host.Name
		next.Hosts = append(next.Hosts, *host)
	}

	next.Visits = append(next.Visits, visit)
	next.Speakers = append(next.Speakers, speaker)
	if err := s.commit(next); err != nil {
		return models.Visit{}, err
	}
	return cloneVisit(visit), nil
}

// GetVisit retrieves a visit by ID
func (s *Storage) GetVisit(id string) (*models.Visit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, v := range s.doc.Visits {
		if v.ID == id {
			c := cloneVisit(v)
			return &c, nil
		}
	}
	return nil, fmt.Errorf("visit %s: %w", id, ErrNotFound)
}

// GetAllVisits returns all visits sorted by date
func (s *Storage) GetAllVisits() []models.Visit {
	s.mu.RLock()
	defer s.mu.RUnlock()

	visits := make([]models.Visit, 0, len(s.doc.Visits))
	for _, v := range s.doc.Visits {
		visits = append(visits, cloneVisit(v))
	}
	sortByDate(visits)
	return visits
}

// GetUpcomingVisits returns scheduled visits dated on or after the day of now.
// Visit dates are calendar days, so they are compared by year, month and day
// whatever the location of now.
func (s *Storage) GetUpcomingVisits(now time.Time) []models.Visit {
	today := calendarDay(now)

	var result []models.Visit
	for _, v := range s.GetAllVisits() {
		if v.Status == models.VisitScheduled && !calendarDay(v.Date).Before(today) {
			result = append(result, v)
		}
	}
	return result
}

// GetVisitsSince returns the visits that are not cancelled and dated on or
// after the day of since, past ones included
func (s *Storage) GetVisitsSince(since time.Time) []models.Visit {
	first := calendarDay(since)

	var result []models.Visit
	for _, v := range s.GetAllVisits() {
		if v.Status != models.VisitCancelled && !calendarDay(v.Date).Before(first) {
			result = append(result, v)
		}
	}
	return result
}

// GetVisitsWithoutHost returns upcoming scheduled visits that still need a host
func (s *Storage) GetVisitsWithoutHost(now time.Time) []models.Visit {
	var result []models.Visit
	for _, v := range s.GetUpcomingVisits(now) {
		if !v.HasHost() && v.LocationType == models.LocationInPerson {
			result = append(result, v)
		}
	}
	return result
}

// UpdateVisitStatus changes the lifecycle status of a visit
func (s *Storage) UpdateVisitStatus(id string, status models.VisitStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, v := range s.doc.Visits {
		if v.ID == id {
			next := s.doc.clone()
			next.Visits[i].Status = status
			return s.commit(next)
		}
	}
	return fmt.Errorf("visit %s: %w", id, ErrNotFound)
}

// AssignHost sets or replaces the host of a visit
func (s *Storage) AssignHost(visitID string, host models.Host) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, v := range s.doc.Visits {
		if v.ID == visitID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("visit %s: %w", visitID, ErrNotFound)
	}

	if host.ID == "" {
		host.ID = uuid.NewString()
	}
	host.VisitID = visitID

	next := s.doc.clone()
	replaced := false
	for i, h := range next.Hosts {
		if h.VisitID == visitID {
			next.Hosts[i] = host
			replaced = true
			break
		}
	}
	if !replaced {
		next.Hosts = append(next.Hosts, host)
	}
	next.Visits[idx].HostName = host.Name
	return s.commit(next)
}

// GetSpeaker returns the speaker of a visit
func (s *Storage) GetSpeaker(visitID string) (*models.Speaker, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, sp := range s.doc.Speakers {
		if sp.VisitID == visitID {
			return &sp, nil
		}
	}
	return nil, fmt.Errorf("speaker for visit %s: %w", visitID, ErrNotFound)
}

// GetHost returns the host of a visit
func (s *Storage) GetHost(visitID string) (*models.Host, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, h := range s.doc.Hosts {
		if h.VisitID == visitID {
			return &h, nil
		}
	}
	return nil, fmt.Errorf("host for visit %s: %w", visitID, ErrNotFound)
}

// SetCommunication records a sent message on a visit. Setting an entry that
// already exists overwrites its time.
func (s *Storage) SetCommunication(visitID string, mt models.MessageType, role models.Role, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, v := range s.doc.Visits {
		if v.ID == visitID {
			next := s.doc.clone()
			next.Visits[i].Communications.Set(mt, role, at)
			return s.commit(next)
		}
	}
	return fmt.Errorf("visit %s: %w", visitID, ErrNotFound)
}

// GetProfile returns the congregation profile and whether one was saved
func (s *Storage) GetProfile() (models.CongregationProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.doc.Profile == nil {
		return models.CongregationProfile{}, false
	}
	return *s.doc.Profile, true
}

// SaveProfile replaces the congregation profile
func (s *Storage) SaveProfile(profile models.CongregationProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.doc.clone()
	next.Profile = &profile
	return s.commit(next)
}

// GetCustomTemplate returns the saved override for a key
func (s *Storage) GetCustomTemplate(key models.TemplateKey) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.doc.Templates {
		if t.Key == key {
			return t.Text, true
		}
	}
	return "", false
}

// SaveCustomTemplate stores the override for a key
func (s *Storage) SaveCustomTemplate(key models.TemplateKey, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.doc.clone()
	for i, t := range next.Templates {
		if t.Key == key {
			next.Templates[i].Text = text
			return s.commit(next)
		}
	}
	next.Templates = append(next.Templates, customTemplate{Key: key, Text: text})
	return s.commit(next)
}

// DeleteCustomTemplate removes the override for a key, if any
func (s *Storage) DeleteCustomTemplate(key models.TemplateKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.doc.Templates {
		if t.Key == key {
			next := s.doc.clone()
			next.Templates = append(next.Templates[:i], next.Templates[i+1:]...)
			return s.commit(next)
		}
	}
	return nil
}

// commit writes next to file and makes it the current document only once the
// write succeeded. Callers hold the write lock.
func (s *Storage) commit(next document) error {
	if err := s.save(next); err != nil {
		return err
	}
	s.doc = next
	return nil
}

func (s *Storage) save(doc document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal data: %w", err)
	}

	// Ensure directory exists
	dir := filepath.Dir(s.file)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(s.file, data, 0644); err != nil {
		return fmt.Errorf("failed to write data: %w", err)
	}
	return nil
}

func (s *Storage) load() error {
	data, err := os.ReadFile(s.file)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	if len(data) == 0 {
		s.doc = document{}
		return nil
	}

	if err := json.Unmarshal(data, &s.doc); err != nil {
		return fmt.Errorf("failed to unmarshal data: %w", err)
	}

	return nil
}

// clone deep-copies the document so a mutation can be written before it is kept
func (d document) clone() document {
	c := document{
		Visits:    make([]models.Visit, len(d.Visits)),
		Speakers:  append([]models.Speaker(nil), d.Speakers...),
		Hosts:     append([]models.Host(nil), d.Hosts...),
		Templates: append([]customTemplate(nil), d.Templates...),
	}
	for i, v := range d.Visits {
		c.Visits[i] = cloneVisit(v)
	}
	if d.Profile != nil {
		p := *d.Profile
		c.Profile = &p
	}
	return c
}

func cloneVisit(v models.Visit) models.Visit {
	comms := make(models.CommunicationStatus, len(v.Communications))
	for mt, roles := range v.Communications {
		for role, at := range roles {
			comms.Set(mt, role, at)
		}
	}
	v.Communications = comms
	return v
}

func calendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func sortByDate(visits []models.Visit) {
	sort.SliceStable(visits, func(i, j int) bool {
		return visits[i].Date.Before(visits[j].Date)
	})
}
