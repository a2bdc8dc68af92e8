package main

import (
	"ArchiveCatalog/internal/cli"
)

func main() {
	cli.Execute()
}
