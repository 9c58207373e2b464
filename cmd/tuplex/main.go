// SPDX-License-Identifier: MIT

// Command tuplex renders and counts value compositions described in YAML.
//
//	tuplex render -f matrix.yaml --format json --limit 20
//	tuplex count -f matrix.yaml
//	tuplex version
package main

import "os"

func main() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
