package auth_http

import (
	"net/http"
	"time"
)

type CookieSettings struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

func (c CookieSettings) sessionCookie(value string) *http.Cookie {
	return &http.Cookie{
		Name:     c.Name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(c.TTL / time.Second),
	}
}

func (c CookieSettings) expiredCookie() *http.Cookie {
	return &http.Cookie{
		Name:     c.Name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	}
}
