// Package environment names the deployment stages and carries the active
// one through request contexts.
//
//	env := environment.Parse(cfg.Env)
//	r.Use(environment.Middleware(env))
//
//	if environment.FromContext(r.Context()).IsProduction() {
//		// hide internal error details
//	}
package environment
