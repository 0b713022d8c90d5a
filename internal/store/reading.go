package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/lasif-tools/cli/internal/domain"
)

const selectColumns = `id, job_id, event_name, network, station, channel,
	kind_id, status_id, path, latitude, longitude, elevation, created_at`

func scanRecord(rows *sql.Rows) (Record, error) {
	var (
		r        Record
		ts       string
		kindID   int
		statusID int
	)

	if err := rows.Scan(
		&r.ID,
		&r.JobID,
		&r.EventName,
		&r.Network,
		&r.Station,
		&r.Channel,
		&kindID,
		&statusID,
		&r.Path,
		&r.Latitude,
		&r.Longitude,
		&r.Elevation,
		&ts,
	); err != nil {
		return Record{}, err
	}

	r.Kind = Kind(kindID)
	r.Status = Status(statusID)

	parsed, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return Record{}, fmt.Errorf("parse created_at %q: %w", ts, err)
	}
	r.CreatedAt = parsed

	return r, nil
}

// ListByEvent returns every ledger row for one event, newest first.
func (s *Store) ListByEvent(eventName string) ([]Record, error) {
	rows, err := s.db.Query(
		`SELECT `+selectColumns+` FROM downloads
		 WHERE event_name = ? ORDER BY created_at DESC, id DESC`,
		eventName,
	)
	if err != nil {
		return nil, fmt.Errorf("list downloads: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// HasArtifact reports whether a successful download of the given artifact
// is already recorded.
func (s *Store) HasArtifact(eventName, network, station, channel string, kind Kind) (bool, error) {
	var count int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM downloads
		 WHERE event_name = ? AND network = ? AND station = ? AND channel = ?
		   AND kind_id = ? AND status_id = ?`,
		eventName, network, station, channel, int(kind), int(StatusDownloaded),
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("query artifact: %w", err)
	}
	return count > 0, nil
}

// StationsForEvent returns the distinct stations with successfully
// downloaded artifacts for one event, sorted by identifier. Coordinates
// come from whichever row recorded them; HasCoordinates is false when no
// row did.
func (s *Store) StationsForEvent(eventName string) ([]domain.Station, error) {
	rows, err := s.db.Query(
		`SELECT network, station, MAX(latitude), MAX(longitude), MAX(elevation)
		 FROM downloads
		 WHERE event_name = ? AND status_id = ?
		 GROUP BY network, station
		 ORDER BY network, station`,
		eventName, int(StatusDownloaded),
	)
	if err != nil {
		return nil, fmt.Errorf("list stations: %w", err)
	}
	defer rows.Close()

	var out []domain.Station
	for rows.Next() {
		var (
			st         domain.Station
			la, lo, el sql.NullFloat64
		)
		if err := rows.Scan(&st.Network, &st.Code, &la, &lo, &el); err != nil {
			return nil, err
		}
		if la.Valid && lo.Valid {
			st.Latitude = la.Float64
			st.Longitude = lo.Float64
			st.Elevation = el.Float64
			st.HasCoordinates = true
		}
		out = append(out, st)
	}
	return out, rows.Err()
}
