package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/quizdeck/quizdeck/internal/quiz"
)

// UserStore backs local accounts in the users table.
type UserStore struct{ db *sql.DB }

func NewUserStore(db *sql.DB) *UserStore { return &UserStore{db: db} }

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// Register creates a local account with a bcrypt-hashed password. A taken
// username or email is invalid input, not a server fault.
func (s *UserStore) Register(ctx context.Context, username, email, password string) (User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return User{}, fmt.Errorf("username, email and password required: %w", quiz.ErrInvalidInput)
	}

	var exist int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM users WHERE username=$1 OR email=$2`, username, email).Scan(&exist)
	if err == nil {
		return User{}, fmt.Errorf("user already exists: %w", quiz.ErrInvalidInput)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}
	u := User{ID: uuid.NewString(), Username: username, Email: email, Role: quiz.RoleUser}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO users (id,username,email,password_hash,role,created_at) VALUES ($1,$2,$3,$4,$5,$6)`,
		u.ID, u.Username, u.Email, string(hash), u.Role, time.Now().Unix())
	if err != nil {
		return User{}, err
	}
	return u, nil
}

// Login verifies credentials and returns the actor. The login name may be a
// username or an email. Any mismatch is the same Unauthenticated outcome so
// the response does not leak which half was wrong.
func (s *UserStore) Login(ctx context.Context, login, password string) (quiz.Actor, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id,username,role,password_hash FROM users WHERE username=$1 OR email=$1`, login)
	var actor quiz.Actor
	var hash string
	if err := row.Scan(&actor.ID, &actor.Username, &actor.Role, &hash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return quiz.Actor{}, fmt.Errorf("invalid credentials: %w", quiz.ErrUnauthenticated)
		}
		return quiz.Actor{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return quiz.Actor{}, fmt.Errorf("invalid credentials: %w", quiz.ErrUnauthenticated)
	}
	return actor, nil
}

func (s *UserStore) GetByID(ctx context.Context, id string) (User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id,username,email,role FROM users WHERE id=$1`, id)
	var u User
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Role); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, fmt.Errorf("user %s: %w", id, quiz.ErrNotFound)
		}
		return User{}, err
	}
	return u, nil
}

// EnsureAdmin seeds the admin account from env config if it is missing.
// passHash is an already-bcrypt'd password; empty disables seeding.
func (s *UserStore) EnsureAdmin(ctx context.Context, username, passHash string) error {
	if username == "" || passHash == "" {
		return nil
	}
	var exist int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM users WHERE username=$1`, username).Scan(&exist)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO users (id,username,email,password_hash,role,created_at) VALUES ($1,$2,$3,$4,$5,$6)`,
		uuid.NewString(), username, username+"@local", passHash, quiz.RoleAdmin, time.Now().Unix())
	return err
}
