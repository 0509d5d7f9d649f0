package main

import (
	"fmt"
	"os"

	"github.com/variantworks/variant-go/pkg/variant/schema"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <typesets.yaml> [...]\n", os.Args[0])
		os.Exit(2)
	}

	registry := schema.NewRegistry()
	for _, path := range os.Args[1:] {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read %s: %v\n", path, err)
			os.Exit(1)
		}
		if err := registry.LoadYAML(data); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load %s: %v\n", path, err)
			os.Exit(1)
		}
	}

	for _, name := range registry.Names() {
		set, _ := registry.Get(name)
		fmt.Printf("%s: %s\n", name, set)
	}
	fmt.Printf("%d type set(s) valid\n", registry.Count())
}
