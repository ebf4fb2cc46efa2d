package auth

import (
	"net/http"
	"os"
	"time"
)

func cookieDomain() string {
	return os.Getenv("COOKIE_DOMAIN")
}

func SetAuthCookies(w http.ResponseWriter, accessToken, refreshToken string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "jwt",
		Value:    accessToken,
		Path:     "/",
		Domain:   cookieDomain(),
		Expires:  time.Now().Add(AccessTokenDuration),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     "refresh_jwt",
		Value:    refreshToken,
		Path:     "/",
		Domain:   cookieDomain(),
		Expires:  time.Now().Add(RefreshTokenDuration),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

func ClearAuthCookies(w http.ResponseWriter) {
	for _, name := range []string{"jwt", "refresh_jwt"} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			Domain:   cookieDomain(),
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   true,
			SameSite: http.SameSiteNoneMode,
		})
	}
}
