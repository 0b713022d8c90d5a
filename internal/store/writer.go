package store

import (
	"time"

	"github.com/lasif-tools/cli/internal/log"
)

// Insert adds one ledger row, replacing an earlier attempt for the same
// artifact. Re-downloading a channel updates the old row instead of
// accumulating duplicates.
func (s *Store) Insert(r Record) error {
	createdAt := r.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := s.db.Exec(
		`INSERT INTO downloads
		 (job_id, event_name, network, station, channel, kind_id, status_id, path,
		  latitude, longitude, elevation, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(event_name, network, station, channel, kind_id)
		 DO UPDATE SET
			job_id = excluded.job_id,
			status_id = excluded.status_id,
			path = excluded.path,
			latitude = COALESCE(excluded.latitude, downloads.latitude),
			longitude = COALESCE(excluded.longitude, downloads.longitude),
			elevation = COALESCE(excluded.elevation, downloads.elevation),
			created_at = excluded.created_at`,
		r.JobID,
		r.EventName,
		r.Network,
		r.Station,
		r.Channel,
		int(r.Kind),
		int(r.Status),
		r.Path,
		r.Latitude,
		r.Longitude,
		r.Elevation,
		createdAt.Format(time.RFC3339),
	)
	if err != nil {
		log.Error("store: insert record failed: %v (event=%s, station=%s.%s)",
			err, r.EventName, r.Network, r.Station)
	}
	return err
}
