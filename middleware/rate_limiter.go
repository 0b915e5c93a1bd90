package middleware

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/shashank-padala/insurus-sub000/utils"
)

type timestamps []int64 // unix nanos

func nowUnix() int64 { return time.Now().UnixNano() }

// IPRateLimiter is a per-IP fixed-window limiter with trusted-proxy support.
// In-memory by design: the only endpoints behind it are auth endpoints where
// a single-instance window is good enough.
type IPRateLimiter struct {
	maxReq      int
	window      time.Duration
	mu          sync.Mutex
	state       map[string]timestamps
	trustedCIDR []string
}

func NewIPRateLimiter(maxReq int, window time.Duration, trustedProxies []string) *IPRateLimiter {
	l := &IPRateLimiter{
		maxReq:      maxReq,
		window:      window,
		state:       make(map[string]timestamps),
		trustedCIDR: trustedProxies,
	}
	go l.cleanupLoop()
	return l
}

// clientIP honors X-Forwarded-For / X-Real-IP only when the remote address
// is inside one of the trusted CIDRs or IPs.
func clientIP(r *http.Request, trustedCIDR []string) string {
	remoteHost, _, _ := net.SplitHostPort(r.RemoteAddr)
	remoteIP := net.ParseIP(remoteHost)
	trusted := false
	for _, cidr := range trustedCIDR {
		cidr = strings.TrimSpace(cidr)
		if cidr == "" {
			continue
		}
		if strings.Contains(cidr, "/") {
			if _, ipnet, err := net.ParseCIDR(cidr); err == nil && remoteIP != nil && ipnet.Contains(remoteIP) {
				trusted = true
				break
			}
			continue
		}
		if ip := net.ParseIP(cidr); ip != nil && remoteIP != nil && ip.Equal(remoteIP) {
			trusted = true
			break
		}
	}
	if trusted {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			parts := strings.Split(xff, ",")
			if len(parts) > 0 {
				return strings.TrimSpace(parts[0])
			}
		}
		if xr := r.Header.Get("X-Real-IP"); xr != "" {
			return strings.TrimSpace(xr)
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (l *IPRateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r, l.trustedCIDR)
		now := nowUnix()
		cutoff := now - int64(l.window)

		l.mu.Lock()
		var filtered timestamps
		for _, ts := range l.state[ip] {
			if ts >= cutoff {
				filtered = append(filtered, ts)
			}
		}
		filtered = append(filtered, now)
		l.state[ip] = filtered
		count := len(filtered)
		l.mu.Unlock()

		remaining := l.maxReq - count
		if remaining < 0 {
			remaining = 0
		}
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", l.maxReq))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))

		if count > l.maxReq {
			retryAfter := int(l.window.Seconds())
			if len(filtered) > 0 {
				oldest := filtered[0]
				if sec := int((oldest + int64(l.window) - now) / 1e9); sec > 0 {
					retryAfter = sec
				} else {
					retryAfter = 1
				}
			}
			w.Header().Set("Retry-After", fmt.Sprintf("%d", retryAfter))
			utils.WriteJSON(w, http.StatusTooManyRequests, utils.APIResponse{
				Success: false,
				Message: "Too many requests, try again later",
				Data:    map[string]interface{}{"retry_after_seconds": retryAfter},
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (l *IPRateLimiter) cleanupLoop() {
	tick := time.NewTicker(time.Minute)
	defer tick.Stop()
	for range tick.C {
		l.mu.Lock()
		cutoff := nowUnix() - int64(l.window)
		for k, arr := range l.state {
			var filtered timestamps
			for _, ts := range arr {
				if ts >= cutoff {
					filtered = append(filtered, ts)
				}
			}
			if len(filtered) == 0 {
				delete(l.state, k)
			} else {
				l.state[k] = filtered
			}
		}
		l.mu.Unlock()
	}
}

// Account lockout for failed logins. Redis-backed when configured so lockout
// holds across instances; in-memory otherwise.
var (
	loginMu   sync.Mutex
	failedMap = make(map[string]int)
	lockMap   = make(map[string]int64)
)

func lockoutDuration(failures int) time.Duration {
	switch {
	case failures >= 5:
		return 30 * time.Minute
	case failures == 4:
		return 15 * time.Minute
	case failures == 3:
		return 5 * time.Minute
	default:
		return 0
	}
}

func IsAccountLocked(userID uint) (bool, time.Duration) {
	if utils.RedisClient != nil {
		ttl, err := utils.RedisClient.TTL(context.Background(), fmt.Sprintf("login:lock:u:%d", userID)).Result()
		if err == nil && ttl > 0 {
			return true, ttl
		}
		return false, 0
	}
	loginMu.Lock()
	defer loginMu.Unlock()
	key := fmt.Sprintf("u:%d", userID)
	until := lockMap[key]
	if until == 0 {
		return false, 0
	}
	now := nowUnix()
	if until > now {
		return true, time.Duration(until - now)
	}
	delete(lockMap, key)
	failedMap[key] = 0
	return false, 0
}

func RecordFailedLogin(userID uint) {
	if utils.RedisClient != nil {
		ctx := context.Background()
		failKey := fmt.Sprintf("login:fail:u:%d", userID)
		failures, err := utils.RedisClient.Incr(ctx, failKey).Result()
		if err == nil {
			_, _ = utils.RedisClient.Expire(ctx, failKey, 30*time.Minute).Result()
			if d := lockoutDuration(int(failures)); d > 0 {
				_ = utils.RedisClient.Set(ctx, fmt.Sprintf("login:lock:u:%d", userID), "1", d).Err()
			}
			return
		}
		// fall through to in-memory on redis error
	}
	loginMu.Lock()
	defer loginMu.Unlock()
	key := fmt.Sprintf("u:%d", userID)
	failedMap[key]++
	if d := lockoutDuration(failedMap[key]); d > 0 {
		lockMap[key] = nowUnix() + int64(d)
	}
}

func ResetFailedLogin(userID uint) {
	if utils.RedisClient != nil {
		ctx := context.Background()
		_, _ = utils.RedisClient.Del(ctx,
			fmt.Sprintf("login:fail:u:%d", userID),
			fmt.Sprintf("login:lock:u:%d", userID)).Result()
		return
	}
	loginMu.Lock()
	defer loginMu.Unlock()
	key := fmt.Sprintf("u:%d", userID)
	delete(lockMap, key)
	failedMap[key] = 0
}
