package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"pika_mood/internal/models"
)

type MoodStorage struct {
	pool *pgxpool.Pool
}

func NewMoodStorage(pool *pgxpool.Pool) *MoodStorage {
	return &MoodStorage{
		pool: pool,
	}
}

func (db_ms *MoodStorage) Init(ctx context.Context) error {
	op := "internal/storage/mood.go Init"

	sql_query := `
	CREATE TABLE IF NOT EXISTS mood_records (
		id UUID PRIMARY KEY,
		owner_id TEXT NOT NULL,
		day DATE NOT NULL,
		date TIMESTAMPTZ NOT NULL,
		mood TEXT NOT NULL,
		journal_text TEXT,
		weather TEXT,
		social_tag TEXT,
		intensity DOUBLE PRECISION,
		updated_at TIMESTAMPTZ NOT NULL,
		UNIQUE (owner_id, day)
	);
	`

	if _, err := db_ms.pool.Exec(ctx, sql_query); err != nil {
		return fmt.Errorf("failed to create mood_records table in %s: %w", op, err)
	}

	return nil
}

// SaveMood upserts the record for (owner, calendar day). The server
// timestamp written to updated_at makes the latest write authoritative.
func (db_ms *MoodStorage) SaveMood(ctx context.Context, rec *models.MoodRecord) error {
	op := "internal/storage/mood.go SaveMood"

	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	rec.UpdatedAt = time.Now()

	sql_query := `
	INSERT INTO mood_records
	(id, owner_id, day, date, mood, journal_text, weather, social_tag, intensity, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	ON CONFLICT (owner_id, day) DO UPDATE SET
	date = EXCLUDED.date,
	mood = EXCLUDED.mood,
	journal_text = EXCLUDED.journal_text,
	weather = EXCLUDED.weather,
	social_tag = EXCLUDED.social_tag,
	intensity = EXCLUDED.intensity,
	updated_at = EXCLUDED.updated_at;
	`

	_, err := db_ms.pool.Exec(
		ctx,
		sql_query,
		rec.ID,
		rec.OwnerID,
		rec.DayKey(),
		rec.Date,
		string(rec.Mood),
		rec.JournalText,
		weatherString(rec.Weather),
		tagString(rec.SocialTag),
		rec.Intensity,
		rec.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to save mood in %s: %w", op, err)
	}

	return nil
}

func (db_ms *MoodStorage) FetchAllMoods(ctx context.Context, ownerID string) ([]models.MoodRecord, error) {
	op := "internal/storage/mood.go FetchAllMoods"

	sql_query := `
	SELECT id, owner_id, date, mood, journal_text, weather, social_tag, intensity, updated_at
	FROM mood_records
	WHERE owner_id = $1
	ORDER BY date DESC;
	`

	rows, err := db_ms.pool.Query(ctx, sql_query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch moods in %s: %w", op, err)
	}
	defer rows.Close()

	records := []models.MoodRecord{}

	for rows.Next() {
		rec := models.MoodRecord{}
		var mood string
		var weather, tag *string

		err := rows.Scan(
			&rec.ID,
			&rec.OwnerID,
			&rec.Date,
			&mood,
			&rec.JournalText,
			&weather,
			&tag,
			&rec.Intensity,
			&rec.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan mood row in %s: %w", op, err)
		}

		rec.Mood, err = models.ParseMoodCategory(mood)
		if err != nil {
			return nil, fmt.Errorf("corrupt mood row in %s: %w", op, err)
		}
		if weather != nil {
			w := models.WeatherType(*weather)
			rec.Weather = &w
		}
		if tag != nil {
			t := models.SocialTag(*tag)
			rec.SocialTag = &t
		}

		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read mood rows in %s: %w", op, err)
	}

	return records, nil
}

func weatherString(w *models.WeatherType) *string {
	if w == nil {
		return nil
	}
	s := string(*w)
	return &s
}

func tagString(t *models.SocialTag) *string {
	if t == nil {
		return nil
	}
	s := string(*t)
	return &s
}
