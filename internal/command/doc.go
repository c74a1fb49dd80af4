// Package command builds the tablediff command line application.
package command
