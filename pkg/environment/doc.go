// Package environment names the deployment environment a host runs in and
// normalizes the spellings found in configuration ("prod", "stage", "dev").
//
//	env := environment.Parse(os.Getenv("UIW_ENV"))
//	if env.IsProduction() {
//		// JSON logs, info level
//	}
package environment
