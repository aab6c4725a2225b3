// Package environment names the deployment environments a service can run in
// and normalises the short aliases operators tend to type ("prod", "stage",
// "dev").
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//	if env.IsProduction() {
//	    // ...
//	}
//
// Unknown or empty values parse as Development.
package environment
