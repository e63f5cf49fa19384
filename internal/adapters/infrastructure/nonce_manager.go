package infrastructure

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"

	"weatherblock.app/pkg/errors"
)

const nonceLength = 10

// NonceManager issues and verifies short-lived action tokens. Time is split
// into ticks of half the lifetime; a token stays valid for the tick it was
// issued in and the one after, so its age is between lifetime/2 and lifetime.
type NonceManager struct {
	secret   []byte
	tickSize time.Duration
	now      func() time.Time
}

// NewNonceManager creates a manager signing with secret. now defaults to
// time.Now.
func NewNonceManager(secret string, lifetime time.Duration, now func() time.Time) (*NonceManager, error) {
	if secret == "" {
		return nil, errors.NewConfigurationError("nonce secret cannot be empty", nil)
	}
	if lifetime < 2*time.Second {
		return nil, errors.NewConfigurationError("nonce lifetime must be at least 2 seconds", nil)
	}
	if now == nil {
		now = time.Now
	}

	return &NonceManager{
		secret:   []byte(secret),
		tickSize: lifetime / 2,
		now:      now,
	}, nil
}

// Create returns a nonce for action valid from now
func (m *NonceManager) Create(action string) string {
	return m.token(m.tick(), action)
}

// Verify reports whether nonce was issued for action within the lifetime
func (m *NonceManager) Verify(nonce, action string) bool {
	if len(nonce) != nonceLength {
		return false
	}

	current := m.tick()
	for _, tick := range []int64{current, current - 1} {
		if hmac.Equal([]byte(nonce), []byte(m.token(tick, action))) {
			return true
		}
	}
	return false
}

func (m *NonceManager) tick() int64 {
	return m.now().UnixNano()/int64(m.tickSize) + 1
}

func (m *NonceManager) token(tick int64, action string) string {
	mac := hmac.New(sha256.New, m.secret)
	mac.Write([]byte(strconv.FormatInt(tick, 10)))
	mac.Write([]byte{'|'})
	mac.Write([]byte(action))
	return hex.EncodeToString(mac.Sum(nil))[:nonceLength]
}
