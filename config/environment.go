package config

import "os"

type Environment struct {
	IsDevelopment bool
	Domain        string
	CookieSecure  bool
}

// LoadEnvironment derives deployment settings from COOKIE_DOMAIN. No domain
// means local development: cookies stay on localhost and skip the Secure flag.
func LoadEnvironment() Environment {
	domain := os.Getenv("COOKIE_DOMAIN")

	isDev := domain == ""
	if isDev {
		domain = "localhost"
	}

	return Environment{
		IsDevelopment: isDev,
		Domain:        domain,
		CookieSecure:  !isDev,
	}
}
