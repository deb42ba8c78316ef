package config

// Version is the current stoch-coc version.
// Set at build time via -ldflags or by writing to this file.
var Version = "0.3.0"

// DefaultDefsFile is the definitions-library file the CLI looks for
// when --defs is not given.
const DefaultDefsFile = "defs.yaml"
