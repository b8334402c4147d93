package middleware

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"

	"holidaze/internal/app/commands"
	"holidaze/internal/domain/auth"
)

// ErrIdempotencyMismatch is returned when a key is reused for a different
// request than the one it was first recorded with.
var ErrIdempotencyMismatch = errors.New("middleware: idempotency key reused with a different request")

// IdempotentCommand is a command a client may resend under the same
// Idempotency-Key. Replay rebuilds the stored result in the type the
// command's handler returns.
type IdempotentCommand interface {
	commands.Command
	IdempotencyKey() string
	Replay(payload []byte) (any, error)
}

// IdempotencyRecord is the stored outcome of one successful command.
// Fingerprint hashes the command that produced it.
type IdempotencyRecord struct {
	Key         string
	Fingerprint string
	Payload     []byte
	OccurredAt  time.Time
}

type IdempotencyStore interface {
	Get(ctx context.Context, key string) (IdempotencyRecord, bool, error)
	Save(ctx context.Context, rec IdempotencyRecord) error
}

// ReplayJSON decodes payload into a fresh *T. An empty payload yields a zero *T.
func ReplayJSON[T any](payload []byte) (any, error) {
	out := new(T)
	if len(payload) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return nil, errors.Wrap(err, "idempotency: decode stored result")
	}
	return out, nil
}

// fingerprint hashes the command as it would be sent again.
func fingerprint(cmd commands.Command) (string, error) {
	raw, err := json.Marshal(cmd)
	if err != nil {
		return "", errors.Wrapf(err, "idempotency: fingerprint %s", cmd.Key())
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:]), nil
}

// idempotencyKey namespaces a client key by user and command, so one user's
// key can never replay another user's result.
func idempotencyKey(ctx context.Context, cmd commands.Command, clientKey string) string {
	key := cmd.Key() + ":" + clientKey
	if s, ok := auth.SessionFromContext(ctx); ok {
		if owner := s.Owner(); owner != "" {
			return owner + ":" + key
		}
		return string(s.Token) + ":" + key
	}
	return key
}

// Idempotency answers a repeated key with the result of the first successful
// run. Failures are not stored, so the client may retry with the same key.
// Reusing a key for a different request fails with ErrIdempotencyMismatch.
func Idempotency(store IdempotencyStore, now func() time.Time) CommandMiddleware {
	if store == nil {
		panic("middleware: idempotency store required")
	}
	if now == nil {
		now = time.Now
	}
	return func(next commands.Bus) commands.Bus {
		return commandFunc(func(ctx context.Context, cmd commands.Command) (any, error) {
			ic, ok := cmd.(IdempotentCommand)
			if !ok || ic.IdempotencyKey() == "" {
				return next.Dispatch(ctx, cmd)
			}
			key := idempotencyKey(ctx, cmd, ic.IdempotencyKey())
			sum, err := fingerprint(cmd)
			if err != nil {
				return nil, err
			}

			switch rec, found, err := store.Get(ctx, key); {
			case err != nil:
				return nil, errors.Wrapf(err, "idempotency: lookup %s", key)
			case found && rec.Fingerprint != sum:
				return nil, ErrIdempotencyMismatch
			case found:
				return ic.Replay(rec.Payload)
			}

			result, err := next.Dispatch(ctx, cmd)
			if err != nil {
				return nil, err
			}
			rec := IdempotencyRecord{Key: key, Fingerprint: sum, OccurredAt: now().UTC()}
			if result != nil {
				if rec.Payload, err = json.Marshal(result); err != nil {
					return nil, errors.Wrapf(err, "idempotency: encode result of %s", cmd.Key())
				}
			}
			if err := store.Save(ctx, rec); err != nil {
				return nil, errors.Wrapf(err, "idempotency: save %s", key)
			}
			return result, nil
		})
	}
}
