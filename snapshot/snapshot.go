// Package snapshot loads and caches immutable point-in-time copies of the
// patient, consultation and appointment collections. Aggregators only ever
// see these snapshots, never live store state.
package snapshot

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/imdcare/reports-api/databases"
	"github.com/imdcare/reports-api/models"
)

// Databases bundles the collections a snapshot is built from
type Databases struct {
	Patients      databases.PatientDatabase
	Consultations databases.ConsultationDatabase
	Appointments  databases.AppointmentDatabase
}

// Snapshot is one immutable fetch batch
type Snapshot struct {
	Patients      []models.Patient
	Consultations []models.Consultation
	Appointments  []models.Appointment
	FetchedAt     time.Time
}

// Store holds the latest snapshot and refreshes it on demand. Only one fetch
// batch runs at a time; a refresh requested while another is in flight waits
// for that run instead of stacking a second batch behind it.
type Store struct {
	db Databases

	mu       sync.RWMutex
	current  *Snapshot
	inflight chan struct{}
	lastErr  error
}

// NewStore initializes a snapshot store over the given databases
func NewStore(db Databases) *Store {
	return &Store{db: db}
}

// Current returns the latest snapshot, or nil when nothing has been fetched yet
func (s *Store) Current() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// LastRefresh returns when the current snapshot was fetched
func (s *Store) LastRefresh() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return time.Time{}
	}
	return s.current.FetchedAt
}

// Load returns the current snapshot, fetching one first if none exists. When
// a refresh is already in flight, Load waits for it so a cold start never
// observes an empty store.
func (s *Store) Load(ctx context.Context) (*Snapshot, error) {
	if snap := s.Current(); snap != nil {
		return snap, nil
	}
	if err := s.Refresh(ctx); err != nil {
		return nil, err
	}
	if snap := s.Current(); snap != nil {
		return snap, nil
	}
	return nil, errors.New("snapshot store is empty after refresh")
}

// Refresh fetches all three collections as one concurrent batch and swaps in
// the new snapshot. If a refresh is already in flight the call waits for that
// run and returns its result rather than issuing another fetch batch.
func (s *Store) Refresh(ctx context.Context) error {
	s.mu.Lock()
	if s.inflight != nil {
		done := s.inflight
		s.mu.Unlock()
		zap.S().Debug("snapshot refresh already in flight, waiting for it")
		select {
		case <-done:
		case <-ctx.Done():
			return ctx.Err()
		}
		s.mu.RLock()
		err := s.lastErr
		s.mu.RUnlock()
		return err
	}
	done := make(chan struct{})
	s.inflight = done
	s.mu.Unlock()

	err := s.fetch(ctx)

	s.mu.Lock()
	s.lastErr = err
	s.inflight = nil
	s.mu.Unlock()
	close(done)
	return err
}

func (s *Store) fetch(ctx context.Context) error {
	var (
		wg            sync.WaitGroup
		patients      []models.Patient
		consultations []models.Consultation
		appointments  []models.Appointment
		errs          [3]error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		patients, errs[0] = s.db.Patients.Find(ctx, bson.M{})
	}()
	go func() {
		defer wg.Done()
		consultations, errs[1] = s.db.Consultations.Find(ctx, bson.M{})
	}()
	go func() {
		defer wg.Done()
		appointments, errs[2] = s.db.Appointments.Find(ctx, bson.M{})
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			zap.S().With(err).Error("snapshot refresh failed")
			return err
		}
	}

	s.mu.Lock()
	s.current = &Snapshot{
		Patients:      patients,
		Consultations: consultations,
		Appointments:  appointments,
		FetchedAt:     time.Now(),
	}
	s.mu.Unlock()

	zap.S().Debugw("snapshot refreshed",
		"patients", len(patients),
		"consultations", len(consultations),
		"appointments", len(appointments),
	)
	return nil
}
