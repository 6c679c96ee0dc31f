package sfapi

// BaseURLs maps a country/environment code to its service host.
var BaseURLs = map[string]string{
	"sk":         "https://moja.superfaktura.sk",
	"cz":         "https://moje.superfaktura.cz",
	"at":         "https://meine.superfaktura.at",
	"sandbox-sk": "https://sandbox.superfaktura.sk",
	"sandbox-cz": "https://sandbox.superfaktura.cz",
}

// ResolveBaseURL returns the service URL for a deployment. An explicit URL is
// returned unchanged; otherwise the country code is looked up in BaseURLs.
// Unknown codes fail with a ConfigurationError naming the code. No network
// access is performed.
func ResolveBaseURL(explicitURL, country string) (string, error) {
	if explicitURL != "" {
		return explicitURL, nil
	}

	if country == "" {
		country = DefaultCountry
	}

	baseURL, ok := BaseURLs[country]
	if !ok {
		return "", newUnknownCountryError(country)
	}

	return baseURL, nil
}
