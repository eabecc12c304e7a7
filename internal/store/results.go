package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// ResultRecord is a completed assessment result as persisted. The raw
// answers ride along as JSON so a reviewer can audit how a score came
// about.
type ResultRecord struct {
	SessionID      string
	BatteryID      string
	BatteryName    string
	TotalScore     int
	MaxScore       int
	Interpretation string
	Answers        map[string]string
	CreatedAt      time.Time
}

// ResultRepo persists completed assessment results. Writing happens
// once per scored session; the engine itself never touches storage.
type ResultRepo interface {
	// Save stores one completed result.
	Save(ctx context.Context, rec *ResultRecord) error

	// Recent returns the most recent results, newest first.
	// limit <= 0 means no limit.
	Recent(ctx context.Context, limit int) ([]ResultRecord, error)
}

type resultRepo struct {
	db *sql.DB
}

func (r *resultRepo) Save(ctx context.Context, rec *ResultRecord) error {
	answers, err := json.Marshal(rec.Answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}
	created := rec.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	_, err = r.db.ExecContext(ctx, `INSERT INTO results
		(session_id, battery_id, battery_name, total_score, max_score, interpretation, answers_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.SessionID, rec.BatteryID, rec.BatteryName,
		rec.TotalScore, rec.MaxScore, rec.Interpretation,
		string(answers), created.Unix())
	if err != nil {
		return fmt.Errorf("save result: %w", err)
	}
	return nil
}

func (r *resultRepo) Recent(ctx context.Context, limit int) ([]ResultRecord, error) {
	q := `SELECT session_id, battery_id, battery_name, total_score, max_score, interpretation, answers_json, created_at
		FROM results ORDER BY created_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	var out []ResultRecord
	for rows.Next() {
		var rec ResultRecord
		var answersJSON string
		var createdUnix int64
		if err := rows.Scan(&rec.SessionID, &rec.BatteryID, &rec.BatteryName,
			&rec.TotalScore, &rec.MaxScore, &rec.Interpretation,
			&answersJSON, &createdUnix); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		if err := json.Unmarshal([]byte(answersJSON), &rec.Answers); err != nil {
			rec.Answers = map[string]string{}
		}
		rec.CreatedAt = time.Unix(createdUnix, 0)
		out = append(out, rec)
	}
	return out, rows.Err()
}
