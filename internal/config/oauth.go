package config

// OAuthClientConfig mirrors the Google OAuth client credentials JSON for an
// installed application. The yaml tags let it live inside the main config
// file; the json tags produce the shape google.ConfigFromJSON expects.
type OAuthClientConfig struct {
	Installed OAuthClientDetails `yaml:"installed" json:"installed"`
}

// OAuthClientDetails holds the fields of the credentials document
type OAuthClientDetails struct {
	ClientID     string   `yaml:"clientID" json:"client_id"`
	ProjectID    string   `yaml:"projectID" json:"project_id"`
	AuthURI      string   `yaml:"authURI" json:"auth_uri"`
	TokenURI     string   `yaml:"tokenURI" json:"token_uri"`
	ClientSecret string   `yaml:"clientSecret" json:"client_secret"`
	RedirectURIs []string `yaml:"redirectURIs" json:"redirect_uris"`
}
