// Package main is the entry point for the resuffix CLI.
package main

import "resuffix.dev/pkg/resuffix/cmd"

func main() {
	cmd.Execute()
}
