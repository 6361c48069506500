package environment

import "strings"

// Environment represents the application environment.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// Parse normalizes name. Short aliases map to their full form, an empty name
// means Development and unknown names are kept lowercased.
func Parse(name string) Environment {
	switch n := strings.ToLower(strings.TrimSpace(name)); n {
	case "", "dev", string(Development):
		return Development
	case "stage", string(Staging):
		return Staging
	case "prod", string(Production):
		return Production
	default:
		return Environment(n)
	}
}

func (e Environment) IsDevelopment() bool { return e == Development }
func (e Environment) IsStaging() bool     { return e == Staging }
func (e Environment) IsProduction() bool  { return e == Production }

// IsDeployed reports whether e is a shared environment (staging or
// production) where logs are machine-read.
func (e Environment) IsDeployed() bool {
	return e == Staging || e == Production
}

func (e Environment) String() string {
	return string(e)
}
