// Package storage persists player accounts and chip balances in Redis.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

const (
	userKeyPrefix = "user:"

	minUsernameLen = 3
	minPasswordLen = 6

	// starting bankroll granted at registration
	signupChips = 1000
)

// Account validation and lookup errors, mapped to HTTP statuses by the
// REST layer.
var (
	ErrUsernameTooShort = fmt.Errorf("username must be at least %d characters", minUsernameLen)
	ErrPasswordTooShort = fmt.Errorf("password must be at least %d characters", minPasswordLen)
	ErrUserExists       = errors.New("username already taken")
	ErrUserNotFound     = errors.New("user not found")
	ErrBadCredentials   = errors.New("invalid username or password")
)

// Account is a stored player account.
type Account struct {
	Username string `redis:"username"` // display form, original casing
	Chips    int    `redis:"chips"`
	Created  int64  `redis:"created"`
}

// RedisStore persists accounts as one Redis hash per user, keyed by the
// lowercased username so logins are case-insensitive.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates the account store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func userKey(username string) string {
	return userKeyPrefix + strings.ToLower(strings.TrimSpace(username))
}

// Register creates an account with a bcrypt-hashed password and the
// starting bankroll.
func (rs *RedisStore) Register(ctx context.Context, username, password string) (*Account, error) {
	username = strings.TrimSpace(username)
	if len(username) < minUsernameLen {
		return nil, ErrUsernameTooShort
	}
	if len(password) < minPasswordLen {
		return nil, ErrPasswordTooShort
	}

	key := userKey(username)
	exists, err := rs.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("checking username: %w", err)
	}
	if exists > 0 {
		return nil, ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	acct := &Account{
		Username: username,
		Chips:    signupChips,
		Created:  time.Now().Unix(),
	}
	err = rs.client.HSet(ctx, key, map[string]any{
		"username": acct.Username,
		"hash":     string(hash),
		"chips":    acct.Chips,
		"created":  acct.Created,
	}).Err()
	if err != nil {
		return nil, fmt.Errorf("storing account: %w", err)
	}
	return acct, nil
}

// Authenticate verifies a username/password pair and returns the account.
// A missing user and a wrong password are indistinguishable to the caller.
func (rs *RedisStore) Authenticate(ctx context.Context, username, password string) (*Account, error) {
	cmd := rs.client.HGetAll(ctx, userKey(username))
	fields, err := cmd.Result()
	if err != nil {
		return nil, fmt.Errorf("loading account: %w", err)
	}
	if len(fields) == 0 {
		return nil, ErrBadCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(fields["hash"]), []byte(password)) != nil {
		return nil, ErrBadCredentials
	}

	var acct Account
	if err := cmd.Scan(&acct); err != nil {
		return nil, fmt.Errorf("decoding account: %w", err)
	}
	return &acct, nil
}

// GetAccount loads an account without checking credentials.
func (rs *RedisStore) GetAccount(ctx context.Context, username string) (*Account, error) {
	var acct Account
	key := userKey(username)

	exists, err := rs.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("checking username: %w", err)
	}
	if exists == 0 {
		return nil, ErrUserNotFound
	}

	if err := rs.client.HGetAll(ctx, key).Scan(&acct); err != nil {
		return nil, fmt.Errorf("decoding account: %w", err)
	}
	return &acct, nil
}

// GetBalance returns the stored chip balance.
func (rs *RedisStore) GetBalance(ctx context.Context, username string) (int, error) {
	acct, err := rs.GetAccount(ctx, username)
	if err != nil {
		return 0, err
	}
	return acct.Chips, nil
}

// SetBalance overwrites the stored chip balance.
func (rs *RedisStore) SetBalance(ctx context.Context, username string, chips int) error {
	key := userKey(username)
	exists, err := rs.client.Exists(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("checking username: %w", err)
	}
	if exists == 0 {
		return ErrUserNotFound
	}
	return rs.client.HSet(ctx, key, "chips", chips).Err()
}

// AddBalance adjusts the stored chip balance by delta, which may be
// negative. The balance never drops below zero.
func (rs *RedisStore) AddBalance(ctx context.Context, username string, delta int) (int, error) {
	chips, err := rs.GetBalance(ctx, username)
	if err != nil {
		return 0, err
	}
	chips += delta
	if chips < 0 {
		chips = 0
	}
	if err := rs.SetBalance(ctx, username, chips); err != nil {
		return 0, err
	}
	return chips, nil
}
