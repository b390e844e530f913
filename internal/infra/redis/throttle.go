package redis

import (
	"context"
	"time"

	"salon-booking/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

var ErrThrottled = errs.New("too many requests")

// SendThrottle guards the send-code endpoint with two independent limits:
// a per-contact resend window and a fixed-window counter per client key.
type SendThrottle struct {
	rdb          *redis.Client
	resendWindow time.Duration
	sendLimit    int
	sendWindow   time.Duration
}

var fixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

func NewSendThrottle(rdb *redis.Client, resendWindow time.Duration, sendLimit int, sendWindow time.Duration) *SendThrottle {
	return &SendThrottle{
		rdb:          rdb,
		resendWindow: resendWindow,
		sendLimit:    sendLimit,
		sendWindow:   sendWindow,
	}
}

// ReserveResend claims the resend slot for a contact. Returns ErrThrottled
// while a previous claim is still inside the window.
func (t *SendThrottle) ReserveResend(ctx context.Context, contact string) error {
	if t.resendWindow <= 0 {
		return nil
	}
	ok, err := t.rdb.SetNX(ctx, "vercode:resend:"+contact, 1, t.resendWindow).Result()
	if err != nil {
		return errs.Wrap(err, "failed to reserve resend slot")
	}
	if !ok {
		return ErrThrottled
	}
	return nil
}

// AllowSend enforces the fixed-window limit for a client key, typically the
// caller's IP.
func (t *SendThrottle) AllowSend(ctx context.Context, clientKey string) error {
	if t.sendLimit <= 0 {
		return nil
	}
	res, err := fixedWindowScript.Run(ctx, t.rdb, []string{"vercode:rate:" + clientKey}, t.sendWindow.Milliseconds()).Int64()
	if err != nil {
		return errs.Wrap(err, "failed to run rate limit script")
	}
	if res > int64(t.sendLimit) {
		return ErrThrottled
	}
	return nil
}
