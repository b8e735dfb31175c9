package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"dev-quizz/internal/domain"
	"dev-quizz/internal/repository/models"
	"dev-quizz/internal/util"
)

const userColumns = `ID, GOOGLE_ID, EMAIL, NAME, IMAGE, CREATED_AT, UPDATED_AT`

// sqlxUserRepository implements domain.UserRepository using sqlx.
type sqlxUserRepository struct {
	db DBTX
}

// NewSQLXUserRepository creates a new instance of sqlxUserRepository.
func NewSQLXUserRepository(db DBTX) domain.UserRepository {
	return &sqlxUserRepository{db: db}
}

func toDomainUser(m *models.User) *domain.User {
	if m == nil {
		return nil
	}
	return &domain.User{
		ID:        m.ID,
		GoogleID:  m.GoogleID,
		Email:     m.Email,
		Name:      m.Name.String,
		Image:     m.Image.String,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func fromDomainUser(u *domain.User) *models.User {
	if u == nil {
		return nil
	}
	return &models.User{
		ID:        u.ID,
		GoogleID:  u.GoogleID,
		Email:     u.Email,
		Name:      util.StringToNullString(u.Name),
		Image:     util.StringToNullString(u.Image),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// CreateUser inserts a new user into the database.
func (r *sqlxUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	if user == nil {
		return fmt.Errorf("cannot create nil user")
	}
	if user.ID == "" {
		user.ID = util.NewULID()
	}
	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	m := fromDomainUser(user)
	query := `INSERT INTO USERS (ID, GOOGLE_ID, EMAIL, NAME, IMAGE, CREATED_AT, UPDATED_AT)
		VALUES (:1, :2, :3, :4, :5, :6, :7)`

	_, err := GetExecutor(ctx, r.db).ExecContext(ctx, query,
		m.ID, m.GoogleID, m.Email, m.Name, m.Image, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		// ORA-00001 surfaces here when GOOGLE_ID or EMAIL already exist
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUserByGoogleID retrieves a user by their Google ID.
func (r *sqlxUserRepository) GetUserByGoogleID(ctx context.Context, googleID string) (*domain.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM USERS WHERE GOOGLE_ID = :1`, googleID)
}

// GetUserByID retrieves a user by their internal ID.
func (r *sqlxUserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM USERS WHERE ID = :1`, userID)
}

func (r *sqlxUserRepository) getOne(ctx context.Context, query string, arg string) (*domain.User, error) {
	var user models.User
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &user, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return toDomainUser(&user), nil
}

// UpdateUser updates the profile fields Google may have changed.
func (r *sqlxUserRepository) UpdateUser(ctx context.Context, user *domain.User) error {
	if user == nil {
		return fmt.Errorf("cannot update nil user")
	}
	user.UpdatedAt = time.Now()
	m := fromDomainUser(user)

	query := `UPDATE USERS SET EMAIL = :1, NAME = :2, IMAGE = :3, UPDATED_AT = :4 WHERE ID = :5`
	result, err := GetExecutor(ctx, r.db).ExecContext(ctx, query, m.Email, m.Name, m.Image, m.UpdatedAt, m.ID)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
