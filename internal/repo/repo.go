package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

type Profile struct {
	ID           int        `json:"id"`
	Login        string     `json:"login"`
	Email        string     `json:"email"`
	Description  string     `json:"description"`
	AvatarURL    string     `json:"avatar_url"`
	IsPremium    bool       `json:"is_premium"`
	PremiumUntil *time.Time `json:"premium_until,omitempty"`
}

// Calculation is one saved evaluation: the tool kind plus the raw input and
// result documents, kept verbatim for replay and report generation.
type Calculation struct {
	ID        int             `json:"id"`
	Tool      string          `json:"tool"`
	Input     json.RawMessage `json:"input"`
	Result    json.RawMessage `json:"result"`
	CreatedAt time.Time       `json:"created_at"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetByLogin(ctx context.Context, login string) (int, string, error)
	GetProfileByID(ctx context.Context, id int) (Profile, error)
	UpdateProfile(ctx context.Context, id int, login, description string) (int64, error)
	UpdateAvatar(ctx context.Context, id int, url string) error
	SaveCalculation(ctx context.Context, userID int, tool string, input, result json.RawMessage) (int, error)
	ListCalculations(ctx context.Context, userID int, limit int) ([]Calculation, error)
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresDB(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresRepository) GetByLogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

func (r *PostgresRepository) GetProfileByID(ctx context.Context, id int) (Profile, error) {
	var p Profile
	var desc, avatar sql.NullString
	query := "SELECT id, login, email, description, avatar_url, is_premium, premium_until FROM users WHERE id=$1"
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&p.ID, &p.Login, &p.Email, &desc, &avatar, &p.IsPremium, &p.PremiumUntil)
	if err != nil {
		return Profile{}, err
	}
	p.Description = desc.String
	p.AvatarURL = avatar.String
	return p, nil
}

func (r *PostgresRepository) UpdateProfile(ctx context.Context, id int, login, description string) (int64, error) {
	query := "UPDATE users SET login=$2, description=$3 WHERE id=$1"
	res, err := r.db.ExecContext(ctx, query, id, login, description)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *PostgresRepository) UpdateAvatar(ctx context.Context, id int, url string) error {
	_, err := r.db.ExecContext(ctx, "UPDATE users SET avatar_url=$2 WHERE id=$1", id, url)
	return err
}

func (r *PostgresRepository) SaveCalculation(ctx context.Context, userID int, tool string, input, result json.RawMessage) (int, error) {
	var id int
	query := "INSERT INTO calculations (user_id, tool, input, result) VALUES ($1, $2, $3, $4) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, userID, tool, input, result).Scan(&id)
	return id, err
}

func (r *PostgresRepository) ListCalculations(ctx context.Context, userID int, limit int) ([]Calculation, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	query := "SELECT id, tool, input, result, created_at FROM calculations WHERE user_id=$1 ORDER BY created_at DESC LIMIT $2"
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Calculation
	for rows.Next() {
		var c Calculation
		if err := rows.Scan(&c.ID, &c.Tool, &c.Input, &c.Result, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
