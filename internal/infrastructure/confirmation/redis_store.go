package confirmation

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	domainerrors "github.com/reviewhub/reviewhub-backend/internal/domain/errors"
)

const codeLength = 6

// RedisStore implementa ports.ConfirmationStore sobre Redis.
//
// O código nunca é guardado em claro: persiste-se o hash bcrypt com
// TTL, e cada código aceita um número limitado de tentativas de
// verificação antes de ser invalidado.
type RedisStore struct {
	client      *redis.Client
	keyPrefix   string
	codeTTL     time.Duration
	maxAttempts int
}

type challenge struct {
	CodeHash  string    `json:"code_hash"`
	ExpiresAt time.Time `json:"expires_at"`
	Attempts  int       `json:"attempts"`
}

// NewRedisStore cria um novo RedisStore
func NewRedisStore(client *redis.Client, codeTTL time.Duration, maxAttempts int) *RedisStore {
	if codeTTL <= 0 {
		codeTTL = 15 * time.Minute
	}
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	return &RedisStore{
		client:      client,
		keyPrefix:   "reviewhub:confirmation",
		codeTTL:     codeTTL,
		maxAttempts: maxAttempts,
	}
}

// Issue gera e persiste um código de uso único para o usuário.
// Um código anterior ainda pendente é substituído.
func (s *RedisStore) Issue(ctx context.Context, userID string) (string, error) {
	if userID == "" {
		return "", errors.New("user id is required")
	}

	code, err := generateNumericCode(codeLength)
	if err != nil {
		return "", fmt.Errorf("generate confirmation code: %w", err)
	}

	codeHash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash confirmation code: %w", err)
	}

	raw, err := json.Marshal(challenge{
		CodeHash:  string(codeHash),
		ExpiresAt: time.Now().UTC().Add(s.codeTTL),
	})
	if err != nil {
		return "", err
	}

	if err := s.client.Set(ctx, s.key(userID), raw, s.codeTTL).Err(); err != nil {
		return "", err
	}

	return code, nil
}

// Verify compara o código enviado com o esperado e o consome quando
// bate. Erros retornados: ErrConfirmationCodeExpired quando não há
// código pendente, ErrTooManyCodeAttempts quando o limite de
// tentativas estourou, ErrInvalidConfirmationCode quando não bate.
func (s *RedisStore) Verify(ctx context.Context, userID, code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return domainerrors.ErrInvalidConfirmationCode
	}

	key := s.key(userID)
	raw, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domainerrors.ErrConfirmationCodeExpired
	}
	if err != nil {
		return err
	}

	var ch challenge
	if err := json.Unmarshal(raw, &ch); err != nil {
		return fmt.Errorf("unmarshal confirmation challenge: %w", err)
	}

	if time.Now().UTC().After(ch.ExpiresAt) {
		_ = s.client.Del(ctx, key).Err()
		return domainerrors.ErrConfirmationCodeExpired
	}

	if ch.Attempts >= s.maxAttempts {
		_ = s.client.Del(ctx, key).Err()
		return domainerrors.ErrTooManyCodeAttempts
	}

	if bcrypt.CompareHashAndPassword([]byte(ch.CodeHash), []byte(code)) != nil {
		ch.Attempts++
		if ch.Attempts >= s.maxAttempts {
			_ = s.client.Del(ctx, key).Err()
		} else if updated, marshalErr := json.Marshal(ch); marshalErr == nil {
			if ttl, ttlErr := s.client.TTL(ctx, key).Result(); ttlErr == nil && ttl > 0 {
				_ = s.client.Set(ctx, key, updated, ttl).Err()
			}
		}
		return domainerrors.ErrInvalidConfirmationCode
	}

	// Código de uso único: consumir ao validar
	return s.client.Del(ctx, key).Err()
}

func (s *RedisStore) key(userID string) string {
	return fmt.Sprintf("%s:%s", s.keyPrefix, userID)
}

func generateNumericCode(length int) (string, error) {
	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		b.WriteByte(byte('0' + n.Int64()))
	}
	return b.String(), nil
}
