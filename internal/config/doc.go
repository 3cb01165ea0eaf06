// Package config loads lvseq command-line settings from the environment,
// an optional .env file and struct-tag defaults.
//
// Every field is reachable as LVSEQ_<SECTION>_<FIELD>, e.g.
// LVSEQ_LOG_LEVEL=debug or LVSEQ_MATCH_ALGORITHM=jaro-winkler.
// Command-line flags override whatever is loaded here.
package config
