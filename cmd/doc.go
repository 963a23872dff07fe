// Package cmd defines the Cobra command tree for the application.
// The root command only reports that no command was given; `install` runs the
// interactive release picker and installs the chosen asset.
package cmd
