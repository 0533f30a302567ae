package middleware

import "time"

// SetRateLimit swaps the limiter settings and clears its store; call the returned func to restore them.
func SetRateLimit(w time.Duration, l int) func() {
	rateLimiterLock.Lock()
	oldWindow, oldLimit := window, limit
	window, limit = w, l
	clients = make(map[string]*client)
	rateLimiterLock.Unlock()

	return func() {
		rateLimiterLock.Lock()
		window, limit = oldWindow, oldLimit
		clients = make(map[string]*client)
		rateLimiterLock.Unlock()
	}
}
