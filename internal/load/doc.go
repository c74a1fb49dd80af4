// Package load reads tables from files in one of several source formats:
// step data tables of gherkin feature files, CSV, YAML and JSON.
package load
