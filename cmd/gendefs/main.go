package main

import "github.com/fuchsia-tools/gendefs/cmd/gendefs/internal"

func main() {
	internal.Execute()
}
