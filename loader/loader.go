package loader

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"time"

	"hotel-forecast/logger"
	"hotel-forecast/models"
)

var log = logger.New("Loader")

// Snapshot is the raw content of both input tables at one point in time.
type Snapshot struct {
	DailyName    string
	Daily        []byte
	ForecastName string
	Forecast     []byte
	Fingerprint  string
}

// Loader reads and parses the two input tables.
type Loader struct {
	daily    Source
	forecast Source
}

// NewLoader builds a Loader over the historical bookings and forecast sources.
func NewLoader(daily, forecast Source) *Loader {
	return &Loader{daily: daily, forecast: forecast}
}

// ReadSnapshot reads both sources without parsing them.
func (l *Loader) ReadSnapshot(ctx context.Context) (*Snapshot, error) {
	daily, err := l.daily.Read(ctx)
	if err != nil {
		return nil, err
	}
	forecast, err := l.forecast.Read(ctx)
	if err != nil {
		return nil, err
	}
	return &Snapshot{
		DailyName:    l.daily.Name(),
		Daily:        daily,
		ForecastName: l.forecast.Name(),
		Forecast:     forecast,
		Fingerprint:  Fingerprint(daily, forecast),
	}, nil
}

// Load reads and parses both tables. Either both succeed or an error is returned.
func (l *Loader) Load(ctx context.Context) (*models.Tables, error) {
	snap, err := l.ReadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return Parse(snap)
}

// Parse decodes a snapshot into typed tables.
func Parse(snap *Snapshot) (*models.Tables, error) {
	daily, err := ParseDailyBookings(snap.DailyName, snap.Daily)
	if err != nil {
		return nil, err
	}
	forecast, err := ParseForecast(snap.ForecastName, snap.Forecast)
	if err != nil {
		return nil, err
	}

	log.Infof("Parsed %d daily rows and %d forecast rows (fingerprint=%.12s)", len(daily), len(forecast), snap.Fingerprint)
	return &models.Tables{
		Daily:       daily,
		Forecast:    forecast,
		Fingerprint: snap.Fingerprint,
		LoadedAt:    time.Now().UTC(),
	}, nil
}

// Fingerprint hashes the contents of both tables. Each part is length-prefixed
// so moving bytes between the two tables changes the result.
func Fingerprint(daily, forecast []byte) string {
	h := sha256.New()
	var size [8]byte
	for _, part := range [][]byte{daily, forecast} {
		binary.BigEndian.PutUint64(size[:], uint64(len(part)))
		h.Write(size[:])
		h.Write(part)
	}
	return hex.EncodeToString(h.Sum(nil))
}
