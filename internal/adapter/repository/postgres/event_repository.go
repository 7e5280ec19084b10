package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/srgjo27/campus_event/internal/core/domain"
)

const eventColumns = `e.id, e.title, e.description, e.starts_at, e.location, e.capacity, e.price,
	e.image_url, e.status, e.created_by, u.name, e.created_at, e.updated_at`

type EventRepository struct {
	db *sql.DB
}

func NewEventRepository(db *sql.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(ctx context.Context, event *domain.Event) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback()

	query := `
	INSERT INTO events (id, title, description, starts_at, location, capacity, price, image_url, status, created_by, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err = tx.ExecContext(ctx, query,
		event.ID, event.Title, event.Description, event.StartsAt, event.Location, event.Capacity,
		event.Price, event.ImageURL, event.Status, event.CreatedBy, event.CreatedAt, event.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}

	if err := insertEventCategories(ctx, tx, event.ID, event.Categories); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func insertEventCategories(ctx context.Context, tx *sql.Tx, eventID uuid.UUID, cats []domain.Category) error {
	if len(cats) == 0 {
		return nil
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO event_category_relations (event_id, category_id) VALUES ($1, $2)`)
	if err != nil {
		return fmt.Errorf("failed to prepare category statement: %w", err)
	}

	defer stmt.Close()

	for _, c := range cats {
		if _, err := stmt.ExecContext(ctx, eventID, c.ID); err != nil {
			return fmt.Errorf("failed to link category %s: %w", c.ID, err)
		}
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	query := `
	SELECT ` + eventColumns + `
	FROM events e
	JOIN users u ON u.id = e.created_by
	WHERE e.id = $1
	`

	event, err := scanEvent(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	if err := r.attachCategories(ctx, []*domain.Event{event}); err != nil {
		return nil, err
	}

	return event, nil
}

func (r *EventRepository) GetPublishedDetail(ctx context.Context, id uuid.UUID) (*domain.EventDetail, error) {
	query := `
	SELECT ` + eventColumns + `,
		(SELECT COUNT(*) FROM event_registrations r WHERE r.event_id = e.id)
	FROM events e
	JOIN users u ON u.id = e.created_by
	WHERE e.id = $1 AND e.status = $2
	`

	var detail domain.EventDetail
	event, err := scanEvent(r.db.QueryRowContext(ctx, query, id, domain.EventPublished), &detail.RegisteredCount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event detail: %w", err)
	}

	if err := r.attachCategories(ctx, []*domain.Event{event}); err != nil {
		return nil, err
	}

	detail.Event = *event

	return &detail, nil
}

func (r *EventRepository) ListPublished(ctx context.Context, filter domain.EventFilter) ([]domain.Event, error) {
	where := []string{"e.status = $1"}
	args := []any{domain.EventPublished}

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Search != "" {
		p := arg("%" + filter.Search + "%")
		where = append(where, fmt.Sprintf("(e.title ILIKE %[1]s OR e.description ILIKE %[1]s OR e.location ILIKE %[1]s)", p))
	}

	if filter.Category != "" {
		where = append(where, fmt.Sprintf(`EXISTS (
		SELECT 1 FROM event_category_relations ecr
		JOIN categories c ON c.id = ecr.category_id
		WHERE ecr.event_id = e.id AND c.name ILIKE %s)`, arg(filter.Category)))
	}

	if filter.From != nil {
		where = append(where, "e.starts_at >= "+arg(filter.From.UTC()))
	}

	if filter.To != nil {
		where = append(where, "e.starts_at <= "+arg(filter.To.UTC()))
	}

	query := `
	SELECT ` + eventColumns + `
	FROM events e
	JOIN users u ON u.id = e.created_by
	WHERE ` + strings.Join(where, " AND ") + `
	ORDER BY e.starts_at ASC
	LIMIT ` + arg(filter.Limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	defer rows.Close()

	var ptrs []*domain.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}

		ptrs = append(ptrs, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate events: %w", err)
	}

	if err := r.attachCategories(ctx, ptrs); err != nil {
		return nil, err
	}

	events := make([]domain.Event, 0, len(ptrs))
	for _, e := range ptrs {
		events = append(events, *e)
	}

	return events, nil
}

func (r *EventRepository) Update(ctx context.Context, event *domain.Event, replaceCategories bool) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback()

	if _, err := lockEvent(ctx, tx, event.ID); err != nil {
		return err
	}

	if event.Capacity != nil {
		var count int
		err = tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM event_registrations WHERE event_id = $1`, event.ID).Scan(&count)
		if err != nil {
			return fmt.Errorf("failed to count registrations: %w", err)
		}

		if *event.Capacity < count {
			return fmt.Errorf("%w: capacity %d is below the %d registrations already made", domain.ErrValidation, *event.Capacity, count)
		}
	}

	query := `
	UPDATE events
	SET title = $1,
		description = $2,
		starts_at = $3,
		location = $4,
		capacity = $5,
		price = $6,
		image_url = $7,
		status = $8,
		updated_at = $9
	WHERE id = $10
	`

	result, err := tx.ExecContext(ctx, query,
		event.Title, event.Description, event.StartsAt, event.Location, event.Capacity,
		event.Price, event.ImageURL, event.Status, event.UpdatedAt, event.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return domain.ErrEventNotFound
	}

	if replaceCategories {
		if _, err := tx.ExecContext(ctx, `DELETE FROM event_category_relations WHERE event_id = $1`, event.ID); err != nil {
			return fmt.Errorf("failed to clear event categories: %w", err)
		}

		if err := insertEventCategories(ctx, tx, event.ID, event.Categories); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Delete removes the event with its registrations and category links.
func (r *EventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM event_registrations WHERE event_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete event registrations: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM event_category_relations WHERE event_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete event categories: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return domain.ErrEventNotFound
	}

	return tx.Commit()
}

func (r *EventRepository) attachCategories(ctx context.Context, events []*domain.Event) error {
	if len(events) == 0 {
		return nil
	}

	byID := make(map[uuid.UUID]*domain.Event, len(events))
	ids := make([]uuid.UUID, 0, len(events))
	for _, e := range events {
		e.Categories = []domain.Category{}
		byID[e.ID] = e
		ids = append(ids, e.ID)
	}

	query := `
	SELECT ecr.event_id, c.id, c.kind, c.name, c.created_at, c.updated_at
	FROM event_category_relations ecr
	JOIN categories c ON c.id = ecr.category_id
	WHERE ecr.event_id = ANY($1)
	ORDER BY c.name
	`

	rows, err := r.db.QueryContext(ctx, query, idList(ids))
	if err != nil {
		return fmt.Errorf("failed to load event categories: %w", err)
	}

	defer rows.Close()

	for rows.Next() {
		var eventID uuid.UUID
		var c domain.Category
		if err := rows.Scan(&eventID, &c.ID, &c.Kind, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return fmt.Errorf("failed to scan event category: %w", err)
		}

		if e, ok := byID[eventID]; ok {
			e.Categories = append(e.Categories, c)
		}
	}

	return rows.Err()
}

func scanEvent(row rowScanner, extra ...any) (*domain.Event, error) {
	var e domain.Event
	var capacity sql.NullInt64
	var imageURL sql.NullString

	dest := []any{
		&e.ID, &e.Title, &e.Description, &e.StartsAt, &e.Location, &capacity, &e.Price,
		&imageURL, &e.Status, &e.CreatedBy, &e.OrganizerName, &e.CreatedAt, &e.UpdatedAt,
	}

	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}

	e.Capacity = nullInt(capacity)
	e.ImageURL = nullString(imageURL)
	e.StartsAt = e.StartsAt.UTC()
	e.CreatedAt = e.CreatedAt.UTC()
	e.UpdatedAt = e.UpdatedAt.UTC()

	return &e, nil
}
