package internal

// Version is the application version, overridden at build time
var Version = "0.1.0"
