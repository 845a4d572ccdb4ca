// Package bootstrap wires configuration sources, typed resolution, and
// validation into one explicit startup step. It replaces hidden import-time
// environment loading with a single Load call made by the process entry
// point before anything else runs.
package bootstrap
