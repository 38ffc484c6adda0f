// Command runtype checks documents against the built-in codec catalog.
//
//	runtype codecs
//	runtype check --codec person people.yaml other.json
//	runtype schema --codec tree
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	a := &app{out: os.Stdout, errOut: os.Stderr}
	if err := newRootCmd(a).Execute(); err != nil {
		if !errors.Is(err, errInvalid) {
			fmt.Fprintf(os.Stderr, "runtype: %v\n", err)
		}
		os.Exit(1)
	}
}
