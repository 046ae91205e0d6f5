// Package config loads the service configuration.
//
// Sources, lowest precedence first:
//
//  1. built-in defaults
//  2. a YAML file, named by CONFIG_FILE or found as ./config.yaml
//  3. a .env file, which only fills variables not already set
//  4. SHOWCASE_* environment variables, with "." in keys replaced by "_"
//
// Example:
//
//	SHOWCASE_REDIS_HOST=redis SHOWCASE_QDRANT_PORT=6334 ./server
//
// The demo points and query vector can only be set from a YAML file:
//
//	server:
//	  demo:
//	    query_vector: [0.2, 0.3, 0.4, 0.5]
package config
