package storage

import (
	"fmt"
	"time"
)

// Achievement is the progress of a player toward one achievement.
type Achievement struct {
	ID        string
	Percent   float64
	UpdatedAt time.Time
}

// Completed reports whether the achievement is unlocked.
func (a Achievement) Completed() bool {
	return a.Percent >= 100
}

// ReportProgress records achievement progress, clamped to [0, 100].
// Progress never decreases.
func (s *Store) ReportProgress(playerID, achievementID string, percent float64) error {
	percent = min(max(percent, 0), 100)
	_, err := s.db.Exec(
		`INSERT INTO achievements (player_id, achievement_id, percent) VALUES (?, ?, ?)
		 ON CONFLICT(player_id, achievement_id) DO UPDATE SET
			percent = MAX(achievements.percent, excluded.percent),
			updated_at = CASE WHEN excluded.percent > achievements.percent
				THEN CURRENT_TIMESTAMP ELSE achievements.updated_at END`,
		playerID, achievementID, percent,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save achievement: %w", err)
	}
	return nil
}

// Achievements lists the progress of a player, ordered by id.
func (s *Store) Achievements(playerID string) ([]Achievement, error) {
	rows, err := s.db.Query(
		`SELECT achievement_id, percent, updated_at
		 FROM achievements
		 WHERE player_id = ?
		 ORDER BY achievement_id`,
		playerID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query achievements: %w", err)
	}
	defer rows.Close()

	var list []Achievement
	for rows.Next() {
		var a Achievement
		var updated any
		if err := rows.Scan(&a.ID, &a.Percent, &updated); err != nil {
			return nil, fmt.Errorf("storage: cannot scan achievement: %w", err)
		}
		a.UpdatedAt = parseTime(updated)
		list = append(list, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return list, nil
}
